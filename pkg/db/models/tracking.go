package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/akikr/fenix-ingestion/pkg/enums"
)

// Tracking is a carrier tracking record under one fulfillment.
type Tracking struct {
	ID            uuid.UUID `gorm:"column:tracking_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID      uuid.UUID `gorm:"column:tenant_id;type:uuid;not null;index"`
	FulfillmentID uuid.UUID `gorm:"column:fulfillment_id;type:uuid;not null;index"`

	TrackingNumber string               `gorm:"column:tracking_number;not null;size:128"`
	TrackingURL    *string              `gorm:"column:tracking_url;size:1024"`
	Carrier        *string              `gorm:"column:carrier;size:64"`
	Status         enums.TrackingStatus `gorm:"column:tracking_status;not null;size:20"`
	IsPrimary      bool                 `gorm:"column:is_primary;not null;default:false"`
	LastEventAt    *time.Time           `gorm:"column:last_event_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Events []TrackingEvent `gorm:"foreignKey:TrackingID"`
}

// TableName overrides the default pluralization.
func (Tracking) TableName() string {
	return "tracking"
}

// TrackingEvent is a single carrier scan event.
type TrackingEvent struct {
	ID         uuid.UUID `gorm:"column:tracking_event_id;type:uuid;default:gen_random_uuid();primaryKey"`
	TrackingID uuid.UUID `gorm:"column:tracking_id;type:uuid;not null;index"`

	Status      enums.TrackingStatus `gorm:"column:status;not null;size:20"`
	Description *string              `gorm:"column:description;size:512"`
	Location    *string              `gorm:"column:location;size:255"`
	EventAt     time.Time            `gorm:"column:event_at;not null"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName overrides the default pluralization.
func (TrackingEvent) TableName() string {
	return "tracking_events"
}
