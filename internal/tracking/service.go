package tracking

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

type trackingRepository interface {
	Create(ctx context.Context, tenantID, fulfillmentID uuid.UUID, req CreateTrackingRequest) (*models.Tracking, error)
	FindByID(ctx context.Context, fulfillmentID, id uuid.UUID) (*models.Tracking, error)
	Lookup(ctx context.Context, fulfillmentID uuid.UUID, params LookupParams) (*query.Result[models.Tracking], error)
	Save(ctx context.Context, record *models.Tracking) error
	Search(ctx context.Context, params SearchParams) (*query.Result[models.Tracking], error)
}

type fulfillmentReader interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Fulfillment, error)
}

// Service exposes tracking operations. Every operation resolves the
// parent fulfillment before touching tracking rows; the tenant scope is
// inherited from the fulfillment.
type Service interface {
	Create(ctx context.Context, fulfillmentID uuid.UUID, req CreateTrackingRequest) (*TrackingDTO, error)
	Search(ctx context.Context, params SearchParams) (*query.Result[TrackingDTO], error)
	Lookup(ctx context.Context, fulfillmentID uuid.UUID, params LookupParams) (*query.Result[TrackingDTO], error)
	GetByID(ctx context.Context, fulfillmentID, id uuid.UUID) (*TrackingDTO, error)
	Update(ctx context.Context, fulfillmentID, id uuid.UUID, req UpdateTrackingRequest) (*TrackingDTO, error)
	Patch(ctx context.Context, fulfillmentID, id uuid.UUID, req PatchTrackingRequest) (*TrackingDTO, error)
	Delete(ctx context.Context, fulfillmentID, id uuid.UUID) error
}

type service struct {
	repo         trackingRepository
	fulfillments fulfillmentReader
}

// NewService builds a tracking service with the provided repositories.
func NewService(repo trackingRepository, fulfillments fulfillmentReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("tracking repository required")
	}
	if fulfillments == nil {
		return nil, fmt.Errorf("fulfillment reader required")
	}
	return &service{repo: repo, fulfillments: fulfillments}, nil
}

func (s *service) Create(ctx context.Context, fulfillmentID uuid.UUID, req CreateTrackingRequest) (*TrackingDTO, error) {
	fulfillment, err := s.resolveFulfillment(ctx, fulfillmentID)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.Create(ctx, fulfillment.TenantID, fulfillmentID, req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "create tracking")
	}
	return FromModel(record), nil
}

func (s *service) Search(ctx context.Context, params SearchParams) (*query.Result[TrackingDTO], error) {
	if _, err := s.resolveFulfillment(ctx, params.FulfillmentID); err != nil {
		return nil, err
	}

	result, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	return mapResult(result), nil
}

// Lookup pages tracking records matched by carrier reference. No match
// yields an empty page.
func (s *service) Lookup(ctx context.Context, fulfillmentID uuid.UUID, params LookupParams) (*query.Result[TrackingDTO], error) {
	if _, err := s.resolveFulfillment(ctx, fulfillmentID); err != nil {
		return nil, err
	}

	result, err := s.repo.Lookup(ctx, fulfillmentID, params)
	if err != nil {
		return nil, err
	}
	return mapResult(result), nil
}

func (s *service) GetByID(ctx context.Context, fulfillmentID, id uuid.UUID) (*TrackingDTO, error) {
	record, err := s.findTracking(ctx, fulfillmentID, id)
	if err != nil {
		return nil, err
	}
	return FromModel(record), nil
}

func (s *service) Update(ctx context.Context, fulfillmentID, id uuid.UUID, req UpdateTrackingRequest) (*TrackingDTO, error) {
	record, err := s.findTracking(ctx, fulfillmentID, id)
	if err != nil {
		return nil, err
	}

	record.TrackingNumber = req.TrackingNumber
	record.TrackingURL = req.TrackingURL
	record.Carrier = req.Carrier
	record.Status = enums.TrackingStatus(req.Status)
	if req.IsPrimary != nil {
		record.IsPrimary = *req.IsPrimary
	}
	if req.LastEventAt != nil {
		record.LastEventAt = req.LastEventAt
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "update tracking")
	}
	return FromModel(record), nil
}

func (s *service) Patch(ctx context.Context, fulfillmentID, id uuid.UUID, req PatchTrackingRequest) (*TrackingDTO, error) {
	record, err := s.findTracking(ctx, fulfillmentID, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.TrackingNumber) != "" {
		record.TrackingNumber = req.TrackingNumber
	}
	if req.TrackingURL != nil {
		record.TrackingURL = req.TrackingURL
	}
	if req.Carrier != nil {
		record.Carrier = req.Carrier
	}
	if strings.TrimSpace(req.Status) != "" {
		status, err := enums.ParseTrackingStatus(req.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status value: %s", req.Status))
		}
		record.Status = status
	}
	if req.IsPrimary != nil {
		record.IsPrimary = *req.IsPrimary
	}
	if req.LastEventAt != nil {
		record.LastEventAt = req.LastEventAt
	}

	if err := s.repo.Save(ctx, record); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "patch tracking")
	}
	return FromModel(record), nil
}

// Delete marks the tracking record as terminal. Deleting an already
// terminal record is a no-op success.
func (s *service) Delete(ctx context.Context, fulfillmentID, id uuid.UUID) error {
	record, err := s.findTracking(ctx, fulfillmentID, id)
	if err != nil {
		return err
	}
	if record.Status == enums.TrackingStatusException {
		return nil
	}

	record.Status = enums.TrackingStatusException
	if err := s.repo.Save(ctx, record); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "delete tracking")
	}
	return nil
}

func (s *service) resolveFulfillment(ctx context.Context, fulfillmentID uuid.UUID) (*models.Fulfillment, error) {
	fulfillment, err := s.fulfillments.Get(ctx, fulfillmentID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("fulfillment not found with id: %s", fulfillmentID))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "find fulfillment")
	}
	return fulfillment, nil
}

func (s *service) findTracking(ctx context.Context, fulfillmentID, id uuid.UUID) (*models.Tracking, error) {
	if _, err := s.resolveFulfillment(ctx, fulfillmentID); err != nil {
		return nil, err
	}

	record, err := s.repo.FindByID(ctx, fulfillmentID, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("tracking not found with id: %s", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "find tracking")
	}
	return record, nil
}

func mapResult(res *query.Result[models.Tracking]) *query.Result[TrackingDTO] {
	out := &query.Result[TrackingDTO]{
		Items:         make([]TrackingDTO, 0, len(res.Items)),
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
