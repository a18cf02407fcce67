package stores

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/akikr/fenix-ingestion/pkg/db/models"
	"github.com/akikr/fenix-ingestion/pkg/enums"
	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
	"github.com/akikr/fenix-ingestion/pkg/query"
)

var sortFields = map[string]string{
	"updatedAt": "updated_at",
	"createdAt": "created_at",
}

// Repository handles website persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to website operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new website row under the given organization.
func (r *Repository) Create(ctx context.Context, tenantID uuid.UUID, req CreateStoreRequest) (*models.Store, error) {
	store := req.ToModel(tenantID)
	if err := r.db.WithContext(ctx).Create(store).Error; err != nil {
		return nil, err
	}
	return store, nil
}

// FindByID loads a website by UUID within the organization scope.
func (r *Repository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Store, error) {
	var store models.Store
	if err := r.db.WithContext(ctx).
		Where("store_id = ? AND tenant_id = ?", id, tenantID).
		First(&store).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// Lookup pages websites matching id exactly and code/domain by
// substring within the organization. Every criterion is optional; with
// none given the whole organization pages out.
func (r *Repository) Lookup(ctx context.Context, tenantID uuid.UUID, params LookupParams) (*query.Result[models.Store], error) {
	filter := query.NewFilter().
		Scope("tenant_id", tenantID).
		Contains("store_code", params.Code).
		Contains("domain", params.Domain)
	if params.StoreID != nil {
		filter.Equals("store_id", *params.StoreID)
	}
	sort := query.Order{Column: "updated_at", Descending: true}

	qb := r.db.WithContext(ctx).Model(&models.Store{})
	return query.Run[models.Store](qb, filter, sort, params.Page)
}

// Save persists the provided website.
func (r *Repository) Save(ctx context.Context, store *models.Store) error {
	if store == nil {
		return fmt.Errorf("store is required")
	}
	return r.db.WithContext(ctx).Save(store).Error
}

// Search runs the filtered, sorted, paginated website listing scoped to
// one organization.
func (r *Repository) Search(ctx context.Context, params SearchParams) (*query.Result[models.Store], error) {
	filter := query.NewFilter().
		Scope("tenant_id", params.TenantID).
		Contains("store_code", params.Code).
		Contains("domain", params.Domain).
		DateRange("created_at", params.From, params.To)

	if params.Status != "" {
		status, err := enums.ParseEntityStatus(params.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidFilter, fmt.Sprintf("invalid status value: %s", params.Status))
		}
		filter.Equals("status", status)
	}
	if params.Platform != "" {
		platform, err := enums.ParseStorePlatform(params.Platform)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidFilter, fmt.Sprintf("invalid platform value: %s", params.Platform))
		}
		filter.Equals("platform", platform)
	}

	sort, err := query.ParseSort(params.Sort, sortFields)
	if err != nil {
		return nil, err
	}

	qb := r.db.WithContext(ctx).Model(&models.Store{})
	return query.Run[models.Store](qb, filter, sort, params.Page)
}
