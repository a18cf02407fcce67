package tenants

import (
	"time"

	"github.com/google/uuid"

	"github.com/akikr/fenix-ingestion/pkg/db/models"
	"github.com/akikr/fenix-ingestion/pkg/enums"
	"github.com/akikr/fenix-ingestion/pkg/query"
)

// TenantDTO is the organization wire representation.
type TenantDTO struct {
	ID         uuid.UUID          `json:"id"`
	ExternalID string             `json:"externalId"`
	Name       string             `json:"name"`
	Status     enums.EntityStatus `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// CreateTenantRequest holds creation-time data for a new organization.
type CreateTenantRequest struct {
	ExternalID string  `json:"externalId" validate:"required,max=255"`
	Name       string  `json:"name" validate:"required,max=255"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// UpdateTenantRequest replaces the mutable organization fields.
type UpdateTenantRequest struct {
	ExternalID string  `json:"externalId" validate:"required,max=255"`
	Name       string  `json:"name" validate:"required,max=255"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// PatchTenantRequest carries optional fields; blanks leave the stored
// value untouched.
type PatchTenantRequest struct {
	ExternalID string `json:"externalId,omitempty"`
	Name       string `json:"name,omitempty"`
	Status     string `json:"status,omitempty"`
}

// SearchParams are the organization listing filters.
type SearchParams struct {
	Name   string
	Status string
	From   string
	To     string
	Sort   string
	Page   query.Params
}

// FromModel maps the persisted tenant into a DTO.
func FromModel(m *models.Tenant) *TenantDTO {
	if m == nil {
		return nil
	}
	return &TenantDTO{
		ID:         m.ID,
		ExternalID: m.ExternalID,
		Name:       m.Name,
		Status:     m.Status,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from the creation request, supplying
// defaults.
func (c CreateTenantRequest) ToModel() *models.Tenant {
	model := &models.Tenant{
		ID:         uuid.New(),
		ExternalID: c.ExternalID,
		Name:       c.Name,
		Status:     enums.EntityStatusActive,
	}
	if c.Status != nil {
		model.Status = enums.EntityStatus(*c.Status)
	}
	return model
}
