package fulfillments

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

type fulfillmentRepository interface {
	Create(ctx context.Context, tenantID, orderID uuid.UUID, req CreateFulfillmentRequest) (*models.Fulfillment, error)
	FindByID(ctx context.Context, orderID, id uuid.UUID) (*models.Fulfillment, error)
	SearchByExternalID(ctx context.Context, orderID uuid.UUID, externalID string, page query.Params) (*query.Result[models.Fulfillment], error)
	Save(ctx context.Context, fulfillment *models.Fulfillment) error
	Search(ctx context.Context, params SearchParams) (*query.Result[models.Fulfillment], error)
}

type orderReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

// Service exposes fulfillment operations. Every operation resolves the
// parent order before touching fulfillment rows; the tenant scope is
// inherited from the order.
type Service interface {
	Create(ctx context.Context, orderID uuid.UUID, req CreateFulfillmentRequest) (*FulfillmentDTO, error)
	Search(ctx context.Context, params SearchParams) (*query.Result[FulfillmentDTO], error)
	SearchByExternalID(ctx context.Context, orderID uuid.UUID, externalID string, page query.Params) (*query.Result[FulfillmentDTO], error)
	GetByID(ctx context.Context, orderID, id uuid.UUID) (*FulfillmentDTO, error)
	Update(ctx context.Context, orderID, id uuid.UUID, req UpdateFulfillmentRequest) (*FulfillmentDTO, error)
	Patch(ctx context.Context, orderID, id uuid.UUID, req PatchFulfillmentRequest) (*FulfillmentDTO, error)
	Delete(ctx context.Context, orderID, id uuid.UUID) error
}

type service struct {
	repo   fulfillmentRepository
	orders orderReader
}

// NewService builds a fulfillment service with the provided
// repositories.
func NewService(repo fulfillmentRepository, orders orderReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("fulfillment repository required")
	}
	if orders == nil {
		return nil, fmt.Errorf("order reader required")
	}
	return &service{repo: repo, orders: orders}, nil
}

func (s *service) Create(ctx context.Context, orderID uuid.UUID, req CreateFulfillmentRequest) (*FulfillmentDTO, error) {
	order, err := s.resolveOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	fulfillment, err := s.repo.Create(ctx, order.TenantID, orderID, req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "create fulfillment")
	}
	return FromModel(fulfillment), nil
}

func (s *service) Search(ctx context.Context, params SearchParams) (*query.Result[FulfillmentDTO], error) {
	if _, err := s.resolveOrder(ctx, params.OrderID); err != nil {
		return nil, err
	}

	result, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	return mapResult(result), nil
}

// SearchByExternalID pages fulfillments matching the platform
// identifier fragment. No match yields an empty page.
func (s *service) SearchByExternalID(ctx context.Context, orderID uuid.UUID, externalID string, page query.Params) (*query.Result[FulfillmentDTO], error) {
	if strings.TrimSpace(externalID) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "externalFulfillmentId is required")
	}
	if _, err := s.resolveOrder(ctx, orderID); err != nil {
		return nil, err
	}

	result, err := s.repo.SearchByExternalID(ctx, orderID, externalID, page)
	if err != nil {
		return nil, err
	}
	return mapResult(result), nil
}

func (s *service) GetByID(ctx context.Context, orderID, id uuid.UUID) (*FulfillmentDTO, error) {
	fulfillment, err := s.findFulfillment(ctx, orderID, id)
	if err != nil {
		return nil, err
	}
	return FromModel(fulfillment), nil
}

func (s *service) Update(ctx context.Context, orderID, id uuid.UUID, req UpdateFulfillmentRequest) (*FulfillmentDTO, error) {
	fulfillment, err := s.findFulfillment(ctx, orderID, id)
	if err != nil {
		return nil, err
	}

	fulfillment.Status = enums.FulfillmentStatus(req.Status)
	fulfillment.Carrier = req.Carrier
	fulfillment.ServiceLevel = req.ServiceLevel
	fulfillment.ShipFromLocation = req.ShipFromLocation
	fulfillment.ShippedAt = req.ShippedAt
	fulfillment.DeliveredAt = req.DeliveredAt

	if err := s.repo.Save(ctx, fulfillment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "update fulfillment")
	}
	return FromModel(fulfillment), nil
}

func (s *service) Patch(ctx context.Context, orderID, id uuid.UUID, req PatchFulfillmentRequest) (*FulfillmentDTO, error) {
	fulfillment, err := s.findFulfillment(ctx, orderID, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Status) != "" {
		status, err := enums.ParseFulfillmentStatus(req.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status value: %s", req.Status))
		}
		fulfillment.Status = status
	}
	if req.Carrier != nil {
		fulfillment.Carrier = req.Carrier
	}
	if req.ServiceLevel != nil {
		fulfillment.ServiceLevel = req.ServiceLevel
	}
	if req.ShipFromLocation != nil {
		fulfillment.ShipFromLocation = req.ShipFromLocation
	}
	if req.ShippedAt != nil {
		fulfillment.ShippedAt = req.ShippedAt
	}
	if req.DeliveredAt != nil {
		fulfillment.DeliveredAt = req.DeliveredAt
	}

	if err := s.repo.Save(ctx, fulfillment); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "patch fulfillment")
	}
	return FromModel(fulfillment), nil
}

// Delete cancels the fulfillment. Deleting an already cancelled
// fulfillment is a no-op success.
func (s *service) Delete(ctx context.Context, orderID, id uuid.UUID) error {
	fulfillment, err := s.findFulfillment(ctx, orderID, id)
	if err != nil {
		return err
	}
	if fulfillment.Status == enums.FulfillmentStatusCancelled {
		return nil
	}

	fulfillment.Status = enums.FulfillmentStatusCancelled
	if err := s.repo.Save(ctx, fulfillment); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "delete fulfillment")
	}
	return nil
}

func (s *service) resolveOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("order not found with id: %s", orderID))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "find order")
	}
	return order, nil
}

func (s *service) findFulfillment(ctx context.Context, orderID, id uuid.UUID) (*models.Fulfillment, error) {
	if _, err := s.resolveOrder(ctx, orderID); err != nil {
		return nil, err
	}

	fulfillment, err := s.repo.FindByID(ctx, orderID, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("fulfillment not found with id: %s", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "find fulfillment")
	}
	return fulfillment, nil
}

func mapResult(res *query.Result[models.Fulfillment]) *query.Result[FulfillmentDTO] {
	out := &query.Result[FulfillmentDTO]{
		Items:         make([]FulfillmentDTO, 0, len(res.Items)),
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
