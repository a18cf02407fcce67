package fulfillments

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

// Repository handles fulfillment persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to fulfillment operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new fulfillment row under the given order.
func (r *Repository) Create(ctx context.Context, tenantID, orderID uuid.UUID, req CreateFulfillmentRequest) (*models.Fulfillment, error) {
	fulfillment := req.ToModel(tenantID, orderID)
	if err := r.db.WithContext(ctx).Create(fulfillment).Error; err != nil {
		return nil, err
	}
	return fulfillment, nil
}

// FindByID loads a fulfillment by UUID within the order scope.
func (r *Repository) FindByID(ctx context.Context, orderID, id uuid.UUID) (*models.Fulfillment, error) {
	var fulfillment models.Fulfillment
	if err := r.db.WithContext(ctx).
		Where("fulfillment_id = ? AND order_id = ?", id, orderID).
		First(&fulfillment).Error; err != nil {
		return nil, err
	}
	return &fulfillment, nil
}

// Get loads a fulfillment by primary key alone, for callers that carry
// no order scope of their own.
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*models.Fulfillment, error) {
	var fulfillment models.Fulfillment
	if err := r.db.WithContext(ctx).
		Where("fulfillment_id = ?", id).
		First(&fulfillment).Error; err != nil {
		return nil, err
	}
	return &fulfillment, nil
}

// SearchByExternalID pages fulfillments whose platform identifier
// contains the given fragment, within the order scope.
func (r *Repository) SearchByExternalID(ctx context.Context, orderID uuid.UUID, externalID string, page query.Params) (*query.Result[models.Fulfillment], error) {
	filter := query.NewFilter().
		Scope("order_id", orderID).
		Contains("external_fulfillment_id", externalID)
	sort := query.Order{Column: "updated_at", Descending: true}

	qb := r.db.WithContext(ctx).Model(&models.Fulfillment{})
	return query.Run[models.Fulfillment](qb, filter, sort, page)
}

// Save persists the provided fulfillment.
func (r *Repository) Save(ctx context.Context, fulfillment *models.Fulfillment) error {
	if fulfillment == nil {
		return fmt.Errorf("fulfillment is required")
	}
	return r.db.WithContext(ctx).Omit("Tracking").Save(fulfillment).Error
}

// Search runs the filtered, sorted, paginated fulfillment listing
// scoped to one order.
func (r *Repository) Search(ctx context.Context, params SearchParams) (*query.Result[models.Fulfillment], error) {
	filter := query.NewFilter().
		Scope("order_id", params.OrderID).
		Contains("carrier", params.Carrier).
		DateRange("created_at", params.From, params.To)

	if params.Status != "" {
		status, err := enums.ParseFulfillmentStatus(params.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidFilter, fmt.Sprintf("invalid status value: %s", params.Status))
		}
		filter.Equals("fulfillment_status", status)
	}

	sort, err := query.ParseSort(params.Sort, sortFields)
	if err != nil {
		return nil, err
	}

	qb := r.db.WithContext(ctx).Model(&models.Fulfillment{})
	return query.Run[models.Fulfillment](qb, filter, sort, params.Page)
}
