package fulfillments

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/akikr/fenix-ingestion/pkg/db/models"
	"github.com/akikr/fenix-ingestion/pkg/enums"
	"github.com/akikr/fenix-ingestion/pkg/query"
)

// FulfillmentDTO is the fulfillment wire representation.
type FulfillmentDTO struct {
	ID                    uuid.UUID               `json:"id"`
	TenantID              uuid.UUID               `json:"organizationId"`
	OrderID               uuid.UUID               `json:"orderId"`
	ExternalFulfillmentID string                  `json:"externalFulfillmentId"`
	Status                enums.FulfillmentStatus `json:"status"`
	Carrier               *string                 `json:"carrier,omitempty"`
	ServiceLevel          *string                 `json:"serviceLevel,omitempty"`
	ShipFromLocation      *string                 `json:"shipFromLocation,omitempty"`
	ShippedAt             *time.Time              `json:"shippedAt,omitempty"`
	DeliveredAt           *time.Time              `json:"deliveredAt,omitempty"`
	CreatedAt             time.Time               `json:"createdAt"`
	UpdatedAt             time.Time               `json:"updatedAt"`
}

// CreateFulfillmentRequest holds creation-time data for a fulfillment.
type CreateFulfillmentRequest struct {
	ExternalFulfillmentID string          `json:"externalFulfillmentId" validate:"required,max=128"`
	Status                *string         `json:"status,omitempty" validate:"omitempty,oneof=CREATED SHIPPED DELIVERED CANCELLED FAILED UNKNOWN"`
	Carrier               *string         `json:"carrier,omitempty" validate:"omitempty,max=64"`
	ServiceLevel          *string         `json:"serviceLevel,omitempty" validate:"omitempty,max=64"`
	ShipFromLocation      *string         `json:"shipFromLocation,omitempty" validate:"omitempty,max=255"`
	ShippedAt             *time.Time      `json:"shippedAt,omitempty"`
	DeliveredAt           *time.Time      `json:"deliveredAt,omitempty"`
	RawPayload            json.RawMessage `json:"rawPayload,omitempty"`
}

// UpdateFulfillmentRequest replaces the mutable fulfillment fields.
type UpdateFulfillmentRequest struct {
	Status           string     `json:"status" validate:"required,oneof=CREATED SHIPPED DELIVERED CANCELLED FAILED UNKNOWN"`
	Carrier          *string    `json:"carrier,omitempty" validate:"omitempty,max=64"`
	ServiceLevel     *string    `json:"serviceLevel,omitempty" validate:"omitempty,max=64"`
	ShipFromLocation *string    `json:"shipFromLocation,omitempty" validate:"omitempty,max=255"`
	ShippedAt        *time.Time `json:"shippedAt,omitempty"`
	DeliveredAt      *time.Time `json:"deliveredAt,omitempty"`
}

// PatchFulfillmentRequest carries optional fields; blanks leave the
// stored value untouched.
type PatchFulfillmentRequest struct {
	Status           string     `json:"status,omitempty"`
	Carrier          *string    `json:"carrier,omitempty"`
	ServiceLevel     *string    `json:"serviceLevel,omitempty"`
	ShipFromLocation *string    `json:"shipFromLocation,omitempty"`
	ShippedAt        *time.Time `json:"shippedAt,omitempty"`
	DeliveredAt      *time.Time `json:"deliveredAt,omitempty"`
}

// SearchParams are the fulfillment listing filters within one order.
type SearchParams struct {
	OrderID uuid.UUID
	Status  string
	Carrier string
	From    string
	To      string
	Sort    string
	Page    query.Params
}

// FromModel maps the persisted fulfillment into a DTO.
func FromModel(m *models.Fulfillment) *FulfillmentDTO {
	if m == nil {
		return nil
	}
	return &FulfillmentDTO{
		ID:                    m.ID,
		TenantID:              m.TenantID,
		OrderID:               m.OrderID,
		ExternalFulfillmentID: m.ExternalFulfillmentID,
		Status:                m.Status,
		Carrier:               m.Carrier,
		ServiceLevel:          m.ServiceLevel,
		ShipFromLocation:      m.ShipFromLocation,
		ShippedAt:             m.ShippedAt,
		DeliveredAt:           m.DeliveredAt,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from the creation request, supplying
// defaults.
func (c CreateFulfillmentRequest) ToModel(tenantID, orderID uuid.UUID) *models.Fulfillment {
	model := &models.Fulfillment{
		ID:                    uuid.New(),
		TenantID:              tenantID,
		OrderID:               orderID,
		ExternalFulfillmentID: c.ExternalFulfillmentID,
		Status:                enums.FulfillmentStatusCreated,
		Carrier:               c.Carrier,
		ServiceLevel:          c.ServiceLevel,
		ShipFromLocation:      c.ShipFromLocation,
		ShippedAt:             c.ShippedAt,
		DeliveredAt:           c.DeliveredAt,
	}
	if c.Status != nil {
		model.Status = enums.FulfillmentStatus(*c.Status)
	}
	if len(c.RawPayload) > 0 {
		raw := string(c.RawPayload)
		model.RawPayload = &raw
	}
	return model
}
