package orders

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akikr/fenix-ingestion/pkg/db/models"
	"github.com/akikr/fenix-ingestion/pkg/enums"
	"github.com/akikr/fenix-ingestion/pkg/query"
)

// OrderDTO is the order wire representation.
type OrderDTO struct {
	ID                  uuid.UUID                    `json:"id"`
	TenantID            uuid.UUID                    `json:"organizationId"`
	StoreID             uuid.UUID                    `json:"websiteId"`
	ExternalOrderID     string                       `json:"externalOrderId"`
	ExternalOrderNumber *string                      `json:"externalOrderNumber,omitempty"`
	Status              enums.OrderStatus            `json:"status"`
	FinancialStatus     enums.FinancialStatus        `json:"financialStatus"`
	FulfillmentStatus   enums.OrderFulfillmentStatus `json:"fulfillmentStatus"`
	CustomerEmail       *string                      `json:"customerEmail,omitempty"`
	TotalAmount         decimal.Decimal              `json:"totalAmount"`
	Currency            *string                      `json:"currency,omitempty"`
	OrderCreatedAt      *time.Time                   `json:"orderCreatedAt,omitempty"`
	OrderUpdatedAt      *time.Time                   `json:"orderUpdatedAt,omitempty"`
	IngestedAt          time.Time                    `json:"ingestedAt"`
	Items               []OrderItemDTO               `json:"items,omitempty"`
}

// OrderItemDTO is a line item on the wire.
type OrderItemDTO struct {
	ID        uuid.UUID       `json:"id"`
	SKU       *string         `json:"sku,omitempty"`
	Title     string          `json:"title"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateOrderRequest is the ingestion payload. POST is an upsert keyed
// on (organization, website, externalOrderId).
type CreateOrderRequest struct {
	OrganizationID      uuid.UUID          `json:"organizationId" validate:"required"`
	WebsiteID           uuid.UUID          `json:"websiteId" validate:"required"`
	ExternalOrderID     string             `json:"externalOrderId" validate:"required,max=128"`
	ExternalOrderNumber *string            `json:"externalOrderNumber,omitempty" validate:"omitempty,max=128"`
	Status              *string            `json:"status,omitempty" validate:"omitempty,oneof=CREATED CANCELLED CLOSED"`
	FinancialStatus     *string            `json:"financialStatus,omitempty" validate:"omitempty,oneof=UNKNOWN PENDING PAID PARTIALLY_PAID REFUNDED PARTIALLY_REFUNDED VOIDED"`
	FulfillmentStatus   *string            `json:"fulfillmentStatus,omitempty" validate:"omitempty,oneof=UNFULFILLED PARTIAL FULFILLED CANCELLED UNKNOWN"`
	CustomerEmail       *string            `json:"customerEmail,omitempty" validate:"omitempty,email"`
	TotalAmount         decimal.Decimal    `json:"totalAmount"`
	Currency            *string            `json:"currency,omitempty" validate:"omitempty,len=3"`
	OrderCreatedAt      *time.Time         `json:"orderCreatedAt,omitempty"`
	OrderUpdatedAt      *time.Time         `json:"orderUpdatedAt,omitempty"`
	RawPayload          json.RawMessage    `json:"rawPayload,omitempty"`
	Items               []OrderItemRequest `json:"items,omitempty" validate:"dive"`
}

// OrderItemRequest is one ingested line item.
type OrderItemRequest struct {
	SKU       *string         `json:"sku,omitempty" validate:"omitempty,max=128"`
	Title     string          `json:"title" validate:"required,max=255"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// UpdateOrderRequest replaces the mutable order fields.
type UpdateOrderRequest struct {
	ExternalOrderNumber *string         `json:"externalOrderNumber,omitempty" validate:"omitempty,max=128"`
	Status              string          `json:"status" validate:"required,oneof=CREATED CANCELLED CLOSED"`
	FinancialStatus     string          `json:"financialStatus" validate:"required,oneof=UNKNOWN PENDING PAID PARTIALLY_PAID REFUNDED PARTIALLY_REFUNDED VOIDED"`
	FulfillmentStatus   string          `json:"fulfillmentStatus" validate:"required,oneof=UNFULFILLED PARTIAL FULFILLED CANCELLED UNKNOWN"`
	CustomerEmail       *string         `json:"customerEmail,omitempty" validate:"omitempty,email"`
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	Currency            *string         `json:"currency,omitempty" validate:"omitempty,len=3"`
	OrderUpdatedAt      *time.Time      `json:"orderUpdatedAt,omitempty"`
}

// PatchOrderRequest carries optional fields; blanks leave the stored
// value untouched.
type PatchOrderRequest struct {
	ExternalOrderNumber *string          `json:"externalOrderNumber,omitempty"`
	Status              string           `json:"status,omitempty"`
	FinancialStatus     string           `json:"financialStatus,omitempty"`
	FulfillmentStatus   string           `json:"fulfillmentStatus,omitempty"`
	CustomerEmail       *string          `json:"customerEmail,omitempty"`
	TotalAmount         *decimal.Decimal `json:"totalAmount,omitempty"`
	Currency            *string          `json:"currency,omitempty"`
	OrderUpdatedAt      *time.Time       `json:"orderUpdatedAt,omitempty"`
}

// SearchParams are the order listing filters. TenantID is mandatory;
// StoreID narrows to one website when present.
type SearchParams struct {
	TenantID          uuid.UUID
	StoreID           *uuid.UUID
	Status            string
	FinancialStatus   string
	FulfillmentStatus string
	From              string
	To                string
	Sort              string
	Page              query.Params
}

// ExternalLookupParams narrow the order search by platform
// identifiers, matched as substrings.
type ExternalLookupParams struct {
	TenantID            uuid.UUID
	StoreID             *uuid.UUID
	ExternalOrderID     string
	ExternalOrderNumber string
	Page                query.Params
}

// FromModel maps the persisted order into a DTO.
func FromModel(m *models.Order) *OrderDTO {
	if m == nil {
		return nil
	}
	dto := &OrderDTO{
		ID:                  m.ID,
		TenantID:            m.TenantID,
		StoreID:             m.StoreID,
		ExternalOrderID:     m.ExternalOrderID,
		ExternalOrderNumber: m.ExternalOrderNumber,
		Status:              m.OrderStatus,
		FinancialStatus:     m.FinancialStatus,
		FulfillmentStatus:   m.FulfillmentStatus,
		CustomerEmail:       m.CustomerEmail,
		TotalAmount:         m.TotalAmount,
		Currency:            m.Currency,
		OrderCreatedAt:      m.OrderCreatedAt,
		OrderUpdatedAt:      m.OrderUpdatedAt,
		IngestedAt:          m.IngestedAt,
	}
	for i := range m.Items {
		item := &m.Items[i]
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:        item.ID,
			SKU:       item.SKU,
			Title:     item.Title,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return dto
}

// ToModel prepares the GORM model from the ingestion payload, supplying
// defaults. Line items are attached by the repository.
func (c CreateOrderRequest) ToModel(tenantID, storeID uuid.UUID) *models.Order {
	model := &models.Order{
		ID:                  uuid.New(),
		TenantID:            tenantID,
		StoreID:             storeID,
		ExternalOrderID:     c.ExternalOrderID,
		ExternalOrderNumber: c.ExternalOrderNumber,
		OrderStatus:         enums.OrderStatusCreated,
		FinancialStatus:     enums.FinancialStatusUnknown,
		FulfillmentStatus:   enums.OrderFulfillmentStatusUnfulfilled,
		CustomerEmail:       c.CustomerEmail,
		TotalAmount:         c.TotalAmount,
		Currency:            c.Currency,
		OrderCreatedAt:      c.OrderCreatedAt,
		OrderUpdatedAt:      c.OrderUpdatedAt,
	}
	if c.Status != nil {
		model.OrderStatus = enums.OrderStatus(*c.Status)
	}
	if c.FinancialStatus != nil {
		model.FinancialStatus = enums.FinancialStatus(*c.FinancialStatus)
	}
	if c.FulfillmentStatus != nil {
		model.FulfillmentStatus = enums.OrderFulfillmentStatus(*c.FulfillmentStatus)
	}
	if len(c.RawPayload) > 0 {
		raw := string(c.RawPayload)
		model.RawPayload = &raw
	}
	return model
}
