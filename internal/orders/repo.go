package orders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/akikr/fenix-ingestion/pkg/db/models"
	"github.com/akikr/fenix-ingestion/pkg/enums"
	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
	"github.com/akikr/fenix-ingestion/pkg/query"
)

// Orders sort on the platform-reported timestamps, not the ingestion
// clock.
var sortFields = map[string]string{
	"updatedAt": "order_updated_at",
	"createdAt": "order_created_at",
}

// Columns refreshed when an ingest hits an existing natural key.
var upsertColumns = []string{
	"external_order_number",
	"order_status",
	"financial_status",
	"fulfillment_status",
	"customer_email",
	"order_total_amount",
	"currency",
	"order_created_at",
	"order_updated_at",
	"raw_payload_json",
}

// Repository handles order persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to order operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts the order or refreshes the existing row sharing its
// (tenant, store, externalOrderId) key. Line items are replaced
// wholesale on every ingest.
func (r *Repository) Upsert(ctx context.Context, tenantID, storeID uuid.UUID, req CreateOrderRequest) (*models.Order, error) {
	order := req.ToModel(tenantID, storeID)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Omit("Items", "Fulfillments").
			Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "tenant_id"},
					{Name: "store_id"},
					{Name: "external_order_id"},
				},
				DoUpdates: clause.AssignmentColumns(upsertColumns),
			}).
			Create(order).Error; err != nil {
			return err
		}

		// On conflict the generated id is discarded; reload the
		// canonical row.
		if err := tx.
			Where("tenant_id = ? AND store_id = ? AND external_order_id = ?", tenantID, storeID, req.ExternalOrderID).
			First(order).Error; err != nil {
			return err
		}

		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		for _, item := range req.Items {
			row := &models.OrderItem{
				ID:        uuid.New(),
				OrderID:   order.ID,
				SKU:       item.SKU,
				Title:     item.Title,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, *row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// FindByID loads an order with its line items.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// SearchByExternal pages orders whose platform identifiers contain the
// given fragments, within the organization (and optionally website)
// scope. Both identifier criteria are optional.
func (r *Repository) SearchByExternal(ctx context.Context, params ExternalLookupParams) (*query.Result[models.Order], error) {
	filter := query.NewFilter().
		Scope("tenant_id", params.TenantID).
		Contains("external_order_id", params.ExternalOrderID).
		Contains("external_order_number", params.ExternalOrderNumber)
	if params.StoreID != nil {
		filter.Scope("store_id", *params.StoreID)
	}
	sort := query.Order{Column: "order_updated_at", Descending: true}

	qb := r.db.WithContext(ctx).Model(&models.Order{})
	return query.Run[models.Order](qb, filter, sort, params.Page)
}

// Save persists the provided order.
func (r *Repository) Save(ctx context.Context, order *models.Order) error {
	if order == nil {
		return fmt.Errorf("order is required")
	}
	return r.db.WithContext(ctx).Omit("Items", "Fulfillments").Save(order).Error
}

// Search runs the filtered, sorted, paginated order listing scoped to
// one organization.
func (r *Repository) Search(ctx context.Context, params SearchParams) (*query.Result[models.Order], error) {
	filter := query.NewFilter().
		Scope("tenant_id", params.TenantID).
		DateRange("order_created_at", params.From, params.To)

	if params.StoreID != nil {
		filter.Scope("store_id", *params.StoreID)
	}
	if params.Status != "" {
		status, err := enums.ParseOrderStatus(params.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidFilter, fmt.Sprintf("invalid status value: %s", params.Status))
		}
		filter.Equals("order_status", status)
	}
	if params.FinancialStatus != "" {
		status, err := enums.ParseFinancialStatus(params.FinancialStatus)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidFilter, fmt.Sprintf("invalid financialStatus value: %s", params.FinancialStatus))
		}
		filter.Equals("financial_status", status)
	}
	if params.FulfillmentStatus != "" {
		status, err := enums.ParseOrderFulfillmentStatus(params.FulfillmentStatus)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidFilter, fmt.Sprintf("invalid fulfillmentStatus value: %s", params.FulfillmentStatus))
		}
		filter.Equals("fulfillment_status", status)
	}

	sort, err := query.ParseSort(params.Sort, sortFields)
	if err != nil {
		return nil, err
	}

	qb := r.db.WithContext(ctx).Model(&models.Order{})
	return query.Run[models.Order](qb, filter, sort, params.Page)
}
