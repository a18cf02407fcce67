package tenants

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

// Repository handles organization persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to organization operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new organization row.
func (r *Repository) Create(ctx context.Context, req CreateTenantRequest) (*models.Tenant, error) {
	tenant := req.ToModel()
	if err := r.db.WithContext(ctx).Create(tenant).Error; err != nil {
		return nil, err
	}
	return tenant, nil
}

// FindByID loads an organization by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.WithContext(ctx).Where("tenant_id = ?", id).First(&tenant).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// SearchByExternalID pages organizations whose external identifier
// matches exactly. Zero matches is an empty page, not an error.
func (r *Repository) SearchByExternalID(ctx context.Context, externalID string, page query.Params) (*query.Result[models.Tenant], error) {
	filter := query.NewFilter().Scope("external_id", externalID)
	sort := query.Order{Column: "updated_at", Descending: true}

	qb := r.db.WithContext(ctx).Model(&models.Tenant{})
	return query.Run[models.Tenant](qb, filter, sort, page)
}

// Save persists the provided organization.
func (r *Repository) Save(ctx context.Context, tenant *models.Tenant) error {
	if tenant == nil {
		return fmt.Errorf("tenant is required")
	}
	return r.db.WithContext(ctx).Save(tenant).Error
}

// Search runs the filtered, sorted, paginated organization listing.
func (r *Repository) Search(ctx context.Context, params SearchParams) (*query.Result[models.Tenant], error) {
	filter := query.NewFilter().
		Contains("tenant_name", params.Name).
		DateRange("created_at", params.From, params.To)

	if params.Status != "" {
		status, err := enums.ParseEntityStatus(params.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidFilter, fmt.Sprintf("invalid status value: %s", params.Status))
		}
		filter.Equals("status", status)
	}

	sort, err := query.ParseSort(params.Sort, sortFields)
	if err != nil {
		return nil, err
	}

	qb := r.db.WithContext(ctx).Model(&models.Tenant{})
	return query.Run[models.Tenant](qb, filter, sort, params.Page)
}
