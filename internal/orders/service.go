package orders

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/akikr/fenix-ingestion/pkg/db"
	"github.com/akikr/fenix-ingestion/pkg/db/models"
	"github.com/akikr/fenix-ingestion/pkg/enums"
	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
	"github.com/akikr/fenix-ingestion/pkg/query"
)

type orderRepository interface {
	Upsert(ctx context.Context, tenantID, storeID uuid.UUID, req CreateOrderRequest) (*models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	SearchByExternal(ctx context.Context, params ExternalLookupParams) (*query.Result[models.Order], error)
	Save(ctx context.Context, order *models.Order) error
	Search(ctx context.Context, params SearchParams) (*query.Result[models.Order], error)
}

type tenantReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
}

type storeReader interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Store, error)
}

// Service exposes order ingestion and lookup. Listing operations
// resolve the organization (and website when given) before touching
// order rows.
type Service interface {
	Ingest(ctx context.Context, req CreateOrderRequest) (*OrderDTO, error)
	Search(ctx context.Context, params SearchParams) (*query.Result[OrderDTO], error)
	SearchByExternal(ctx context.Context, params ExternalLookupParams) (*query.Result[OrderDTO], error)
	GetByID(ctx context.Context, id uuid.UUID) (*OrderDTO, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*OrderDTO, error)
	Patch(ctx context.Context, id uuid.UUID, req PatchOrderRequest) (*OrderDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo    orderRepository
	tenants tenantReader
	stores  storeReader
}

// NewService builds an order service with the provided repositories.
func NewService(repo orderRepository, tenants tenantReader, stores storeReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if tenants == nil {
		return nil, fmt.Errorf("tenant reader required")
	}
	if stores == nil {
		return nil, fmt.Errorf("store reader required")
	}
	return &service{repo: repo, tenants: tenants, stores: stores}, nil
}

func (s *service) Ingest(ctx context.Context, req CreateOrderRequest) (*OrderDTO, error) {
	if err := s.resolveScope(ctx, req.OrganizationID, &req.WebsiteID); err != nil {
		return nil, err
	}

	order, err := s.repo.Upsert(ctx, req.OrganizationID, req.WebsiteID, req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "ingest order")
	}
	return FromModel(order), nil
}

func (s *service) Search(ctx context.Context, params SearchParams) (*query.Result[OrderDTO], error) {
	if err := s.resolveScope(ctx, params.TenantID, params.StoreID); err != nil {
		return nil, err
	}

	result, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	return mapResult(result), nil
}

// SearchByExternal pages orders matching the platform identifier
// fragments. No match yields an empty page.
func (s *service) SearchByExternal(ctx context.Context, params ExternalLookupParams) (*query.Result[OrderDTO], error) {
	if err := s.resolveScope(ctx, params.TenantID, params.StoreID); err != nil {
		return nil, err
	}

	result, err := s.repo.SearchByExternal(ctx, params)
	if err != nil {
		return nil, err
	}
	return mapResult(result), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(order), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateOrderRequest) (*OrderDTO, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	order.ExternalOrderNumber = req.ExternalOrderNumber
	order.OrderStatus = enums.OrderStatus(req.Status)
	order.FinancialStatus = enums.FinancialStatus(req.FinancialStatus)
	order.FulfillmentStatus = enums.OrderFulfillmentStatus(req.FulfillmentStatus)
	order.CustomerEmail = req.CustomerEmail
	order.TotalAmount = req.TotalAmount
	order.Currency = req.Currency
	if req.OrderUpdatedAt != nil {
		order.OrderUpdatedAt = req.OrderUpdatedAt
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "update order")
	}
	return FromModel(order), nil
}

func (s *service) Patch(ctx context.Context, id uuid.UUID, req PatchOrderRequest) (*OrderDTO, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ExternalOrderNumber != nil {
		order.ExternalOrderNumber = req.ExternalOrderNumber
	}
	if strings.TrimSpace(req.Status) != "" {
		status, err := enums.ParseOrderStatus(req.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status value: %s", req.Status))
		}
		order.OrderStatus = status
	}
	if strings.TrimSpace(req.FinancialStatus) != "" {
		status, err := enums.ParseFinancialStatus(req.FinancialStatus)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid financialStatus value: %s", req.FinancialStatus))
		}
		order.FinancialStatus = status
	}
	if strings.TrimSpace(req.FulfillmentStatus) != "" {
		status, err := enums.ParseOrderFulfillmentStatus(req.FulfillmentStatus)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid fulfillmentStatus value: %s", req.FulfillmentStatus))
		}
		order.FulfillmentStatus = status
	}
	if req.CustomerEmail != nil {
		order.CustomerEmail = req.CustomerEmail
	}
	if req.TotalAmount != nil {
		order.TotalAmount = *req.TotalAmount
	}
	if req.Currency != nil {
		order.Currency = req.Currency
	}
	if req.OrderUpdatedAt != nil {
		order.OrderUpdatedAt = req.OrderUpdatedAt
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "patch order")
	}
	return FromModel(order), nil
}

// Delete cancels the order. Deleting an already cancelled order is a
// no-op success.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return err
	}
	if order.OrderStatus == enums.OrderStatusCancelled {
		return nil
	}

	order.OrderStatus = enums.OrderStatusCancelled
	if err := s.repo.Save(ctx, order); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "delete order")
	}
	return nil
}

// resolveScope loads the organization and, when given, the website
// within it. Website resolution happens against the tenant scope so a
// website id belonging to another organization reads as missing.
func (s *service) resolveScope(ctx context.Context, tenantID uuid.UUID, storeID *uuid.UUID) error {
	if _, err := s.tenants.FindByID(ctx, tenantID); err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("organization not found with id: %s", tenantID))
		}
		return pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "find organization")
	}
	if storeID == nil {
		return nil
	}
	if _, err := s.stores.FindByID(ctx, tenantID, *storeID); err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("website not found with id: %s", *storeID))
		}
		return pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "find website")
	}
	return nil
}

func (s *service) findOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("order not found with id: %s", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "find order")
	}
	return order, nil
}

func mapResult(res *query.Result[models.Order]) *query.Result[OrderDTO] {
	out := &query.Result[OrderDTO]{
		Items:         make([]OrderDTO, 0, len(res.Items)),
		Page:          res.Page,
		Size:          res.Size,
		TotalElements: res.TotalElements,
		TotalPages:    res.TotalPages,
		HasNext:       res.HasNext,
	}
	for i := range res.Items {
		out.Items = append(out.Items, *FromModel(&res.Items[i]))
	}
	return out
}
