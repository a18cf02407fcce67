package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akikr/fenix-ingestion/pkg/enums"
)

// Order is an ingested commerce order. (tenant_id, store_id,
// external_order_id) is the upsert natural key.
type Order struct {
	ID       uuid.UUID `gorm:"column:order_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"column:tenant_id;type:uuid;not null;index;uniqueIndex:ux_orders_natural_key,priority:1"`
	StoreID  uuid.UUID `gorm:"column:store_id;type:uuid;not null;index;uniqueIndex:ux_orders_natural_key,priority:2"`

	ExternalOrderID     string  `gorm:"column:external_order_id;not null;size:128;uniqueIndex:ux_orders_natural_key,priority:3"`
	ExternalOrderNumber *string `gorm:"column:external_order_number;size:128"`

	OrderStatus       enums.OrderStatus            `gorm:"column:order_status;not null;size:20"`
	FinancialStatus   enums.FinancialStatus        `gorm:"column:financial_status;not null;size:32"`
	FulfillmentStatus enums.OrderFulfillmentStatus `gorm:"column:fulfillment_status;not null;size:20"`

	CustomerEmail *string         `gorm:"column:customer_email;size:320"`
	TotalAmount   decimal.Decimal `gorm:"column:order_total_amount;type:numeric(12,2);not null"`
	Currency      *string         `gorm:"column:currency;size:3"`

	// Platform-reported timestamps, distinct from the ingestion clock.
	OrderCreatedAt *time.Time `gorm:"column:order_created_at"`
	OrderUpdatedAt *time.Time `gorm:"column:order_updated_at"`
	IngestedAt     time.Time  `gorm:"column:ingested_at;not null;autoCreateTime"`

	RawPayload *string `gorm:"column:raw_payload_json;type:jsonb"`

	Items        []OrderItem   `gorm:"foreignKey:OrderID"`
	Fulfillments []Fulfillment `gorm:"foreignKey:OrderID"`
}

// TableName overrides the default pluralization.
func (Order) TableName() string {
	return "orders"
}

// OrderItem is a line item on an ingested order.
type OrderItem struct {
	ID      uuid.UUID `gorm:"column:order_item_id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID uuid.UUID `gorm:"column:order_id;type:uuid;not null;index"`

	SKU       *string         `gorm:"column:sku;size:128"`
	Title     string          `gorm:"column:title;not null;size:255"`
	Quantity  int             `gorm:"column:quantity;not null"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2);not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName overrides the default pluralization.
func (OrderItem) TableName() string {
	return "order_items"
}
