package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/akikr/fenix-ingestion/pkg/enums"
)

// Fulfillment is a shipment-level record under one order.
type Fulfillment struct {
	ID       uuid.UUID `gorm:"column:fulfillment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID uuid.UUID `gorm:"column:tenant_id;type:uuid;not null;index"`
	OrderID  uuid.UUID `gorm:"column:order_id;type:uuid;not null;index"`

	ExternalFulfillmentID string                  `gorm:"column:external_fulfillment_id;not null;size:128"`
	Status                enums.FulfillmentStatus `gorm:"column:fulfillment_status;not null;size:20"`
	Carrier               *string                 `gorm:"column:carrier;size:64"`
	ServiceLevel          *string                 `gorm:"column:service_level;size:64"`
	ShipFromLocation      *string                 `gorm:"column:ship_from_location;size:255"`

	ShippedAt   *time.Time `gorm:"column:shipped_at"`
	DeliveredAt *time.Time `gorm:"column:delivered_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	RawPayload *string `gorm:"column:raw_payload_json;type:jsonb"`

	Tracking []Tracking `gorm:"foreignKey:FulfillmentID"`
}

// TableName overrides the default pluralization.
func (Fulfillment) TableName() string {
	return "fulfillments"
}
