package stores

import (
	"time"

	"github.com/google/uuid"

	"github.com/akikr/fenix-ingestion/pkg/db/models"
	"github.com/akikr/fenix-ingestion/pkg/enums"
	"github.com/akikr/fenix-ingestion/pkg/query"
)

// StoreDTO is the website wire representation.
type StoreDTO struct {
	ID        uuid.UUID           `json:"id"`
	TenantID  uuid.UUID           `json:"organizationId"`
	Code      string              `json:"code"`
	Name      string              `json:"name"`
	Domain    *string             `json:"domain,omitempty"`
	Platform  enums.StorePlatform `json:"platform"`
	Timezone  *string             `json:"timezone,omitempty"`
	Currency  *string             `json:"currency,omitempty"`
	Status    enums.EntityStatus  `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// CreateStoreRequest holds creation-time data for a new website.
type CreateStoreRequest struct {
	Code     string  `json:"code" validate:"required,max=100"`
	Name     string  `json:"name" validate:"required,max=255"`
	Domain   *string `json:"domain,omitempty" validate:"omitempty,max=255"`
	Platform string  `json:"platform" validate:"required,oneof=SHOPIFY NETSUITE CUSTOM MAGENTO OTHER"`
	Timezone *string `json:"timezone,omitempty" validate:"omitempty,max=64"`
	Currency *string `json:"currency,omitempty" validate:"omitempty,len=3"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// UpdateStoreRequest replaces the mutable website fields.
type UpdateStoreRequest struct {
	Code     string  `json:"code" validate:"required,max=100"`
	Name     string  `json:"name" validate:"required,max=255"`
	Domain   *string `json:"domain,omitempty" validate:"omitempty,max=255"`
	Platform string  `json:"platform" validate:"required,oneof=SHOPIFY NETSUITE CUSTOM MAGENTO OTHER"`
	Timezone *string `json:"timezone,omitempty" validate:"omitempty,max=64"`
	Currency *string `json:"currency,omitempty" validate:"omitempty,len=3"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// PatchStoreRequest carries optional fields; blanks leave the stored
// value untouched.
type PatchStoreRequest struct {
	Code     string  `json:"code,omitempty"`
	Name     string  `json:"name,omitempty"`
	Domain   *string `json:"domain,omitempty"`
	Platform string  `json:"platform,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
	Currency *string `json:"currency,omitempty"`
	Status   string  `json:"status,omitempty"`
}

// SearchParams are the website listing filters within one organization.
type SearchParams struct {
	TenantID uuid.UUID
	Code     string
	Domain   string
	Platform string
	Status   string
	From     string
	To       string
	Sort     string
	Page     query.Params
}

// LookupParams narrow the website search within one organization. Id
// matches exactly; code and domain match by substring.
type LookupParams struct {
	StoreID *uuid.UUID
	Code    string
	Domain  string
	Page    query.Params
}

// FromModel maps the persisted store into a DTO.
func FromModel(m *models.Store) *StoreDTO {
	if m == nil {
		return nil
	}
	return &StoreDTO{
		ID:        m.ID,
		TenantID:  m.TenantID,
		Code:      m.Code,
		Name:      m.Name,
		Domain:    m.Domain,
		Platform:  m.Platform,
		Timezone:  m.Timezone,
		Currency:  m.Currency,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ToModel prepares the GORM model from the creation request, supplying
// defaults.
func (c CreateStoreRequest) ToModel(tenantID uuid.UUID) *models.Store {
	model := &models.Store{
		ID:       uuid.New(),
		TenantID: tenantID,
		Code:     c.Code,
		Name:     c.Name,
		Domain:   c.Domain,
		Platform: enums.StorePlatform(c.Platform),
		Timezone: c.Timezone,
		Currency: c.Currency,
		Status:   enums.EntityStatusActive,
	}
	if c.Status != nil {
		model.Status = enums.EntityStatus(*c.Status)
	}
	return model
}
