package tracking

import (
	"time"

	"github.com/google/uuid"

	"github.com/akikr/fenix-ingestion/pkg/db/models"
	"github.com/akikr/fenix-ingestion/pkg/enums"
	"github.com/akikr/fenix-ingestion/pkg/query"
)

// TrackingDTO is the tracking wire representation.
type TrackingDTO struct {
	ID             uuid.UUID            `json:"id"`
	TenantID       uuid.UUID            `json:"organizationId"`
	FulfillmentID  uuid.UUID            `json:"fulfillmentId"`
	TrackingNumber string               `json:"trackingNumber"`
	TrackingURL    *string              `json:"trackingUrl,omitempty"`
	Carrier        *string              `json:"carrier,omitempty"`
	Status         enums.TrackingStatus `json:"status"`
	IsPrimary      bool                 `json:"isPrimary"`
	LastEventAt    *time.Time           `json:"lastEventAt,omitempty"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
	Events         []TrackingEventDTO   `json:"events,omitempty"`
}

// TrackingEventDTO is one carrier scan event on the wire.
type TrackingEventDTO struct {
	ID          uuid.UUID            `json:"id"`
	Status      enums.TrackingStatus `json:"status"`
	Description *string              `json:"description,omitempty"`
	Location    *string              `json:"location,omitempty"`
	EventAt     time.Time            `json:"eventAt"`
}

// CreateTrackingRequest holds creation-time data for a tracking record.
type CreateTrackingRequest struct {
	TrackingNumber string                       `json:"trackingNumber" validate:"required,max=128"`
	TrackingURL    *string                      `json:"trackingUrl,omitempty" validate:"omitempty,max=1024"`
	Carrier        *string                      `json:"carrier,omitempty" validate:"omitempty,max=64"`
	Status         *string                      `json:"status,omitempty" validate:"omitempty,oneof=LABEL_CREATED IN_TRANSIT OUT_FOR_DELIVERY DELIVERED EXCEPTION UNKNOWN"`
	IsPrimary      *bool                        `json:"isPrimary,omitempty"`
	LastEventAt    *time.Time                   `json:"lastEventAt,omitempty"`
	Events         []CreateTrackingEventRequest `json:"events,omitempty" validate:"dive"`
}

// CreateTrackingEventRequest is one ingested scan event.
type CreateTrackingEventRequest struct {
	Status      string    `json:"status" validate:"required,oneof=LABEL_CREATED IN_TRANSIT OUT_FOR_DELIVERY DELIVERED EXCEPTION UNKNOWN"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=512"`
	Location    *string   `json:"location,omitempty" validate:"omitempty,max=255"`
	EventAt     time.Time `json:"eventAt" validate:"required"`
}

// UpdateTrackingRequest replaces the mutable tracking fields.
type UpdateTrackingRequest struct {
	TrackingNumber string     `json:"trackingNumber" validate:"required,max=128"`
	TrackingURL    *string    `json:"trackingUrl,omitempty" validate:"omitempty,max=1024"`
	Carrier        *string    `json:"carrier,omitempty" validate:"omitempty,max=64"`
	Status         string     `json:"status" validate:"required,oneof=LABEL_CREATED IN_TRANSIT OUT_FOR_DELIVERY DELIVERED EXCEPTION UNKNOWN"`
	IsPrimary      *bool      `json:"isPrimary,omitempty"`
	LastEventAt    *time.Time `json:"lastEventAt,omitempty"`
}

// PatchTrackingRequest carries optional fields; blanks leave the stored
// value untouched.
type PatchTrackingRequest struct {
	TrackingNumber string     `json:"trackingNumber,omitempty"`
	TrackingURL    *string    `json:"trackingUrl,omitempty"`
	Carrier        *string    `json:"carrier,omitempty"`
	Status         string     `json:"status,omitempty"`
	IsPrimary      *bool      `json:"isPrimary,omitempty"`
	LastEventAt    *time.Time `json:"lastEventAt,omitempty"`
}

// SearchParams are the tracking listing filters within one fulfillment.
type SearchParams struct {
	FulfillmentID  uuid.UUID
	TrackingNumber string
	Carrier        string
	Status         string
	From           string
	To             string
	Sort           string
	Page           query.Params
}

// LookupParams narrow tracking records within one fulfillment by
// carrier reference.
type LookupParams struct {
	TrackingNumber string
	Carrier        string
	Page           query.Params
}

// FromModel maps the persisted tracking record into a DTO.
func FromModel(m *models.Tracking) *TrackingDTO {
	if m == nil {
		return nil
	}
	dto := &TrackingDTO{
		ID:             m.ID,
		TenantID:       m.TenantID,
		FulfillmentID:  m.FulfillmentID,
		TrackingNumber: m.TrackingNumber,
		TrackingURL:    m.TrackingURL,
		Carrier:        m.Carrier,
		Status:         m.Status,
		IsPrimary:      m.IsPrimary,
		LastEventAt:    m.LastEventAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	for i := range m.Events {
		event := &m.Events[i]
		dto.Events = append(dto.Events, TrackingEventDTO{
			ID:          event.ID,
			Status:      event.Status,
			Description: event.Description,
			Location:    event.Location,
			EventAt:     event.EventAt,
		})
	}
	return dto
}

// ToModel prepares the GORM model from the creation request, supplying
// defaults. Scan events are attached by the repository.
func (c CreateTrackingRequest) ToModel(tenantID, fulfillmentID uuid.UUID) *models.Tracking {
	model := &models.Tracking{
		ID:             uuid.New(),
		TenantID:       tenantID,
		FulfillmentID:  fulfillmentID,
		TrackingNumber: c.TrackingNumber,
		TrackingURL:    c.TrackingURL,
		Carrier:        c.Carrier,
		Status:         enums.TrackingStatusLabelCreated,
		LastEventAt:    c.LastEventAt,
	}
	if c.Status != nil {
		model.Status = enums.TrackingStatus(*c.Status)
	}
	if c.IsPrimary != nil {
		model.IsPrimary = *c.IsPrimary
	}
	return model
}
