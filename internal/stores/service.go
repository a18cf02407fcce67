package stores

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

type storeRepository interface {
	Create(ctx context.Context, tenantID uuid.UUID, req CreateStoreRequest) (*models.Store, error)
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Store, error)
	Lookup(ctx context.Context, tenantID uuid.UUID, params LookupParams) (*query.Result[models.Store], error)
	Save(ctx context.Context, store *models.Store) error
	Search(ctx context.Context, params SearchParams) (*query.Result[models.Store], error)
}

type tenantReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
}

// Service exposes website operations. Every operation resolves the
// owning organization before touching website rows.
type Service interface {
	Create(ctx context.Context, tenantID uuid.UUID, req CreateStoreRequest) (*StoreDTO, error)
	Search(ctx context.Context, params SearchParams) (*query.Result[StoreDTO], error)
	Lookup(ctx context.Context, tenantID uuid.UUID, params LookupParams) (*query.Result[StoreDTO], error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*StoreDTO, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateStoreRequest) (*StoreDTO, error)
	Patch(ctx context.Context, tenantID, id uuid.UUID, req PatchStoreRequest) (*StoreDTO, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type service struct {
	repo    storeRepository
	tenants tenantReader
}

// NewService builds a website service with the provided repositories.
func NewService(repo storeRepository, tenants tenantReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("store repository required")
	}
	if tenants == nil {
		return nil, fmt.Errorf("tenant reader required")
	}
	return &service{repo: repo, tenants: tenants}, nil
}

func (s *service) Create(ctx context.Context, tenantID uuid.UUID, req CreateStoreRequest) (*StoreDTO, error) {
	if err := s.resolveTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	store, err := s.repo.Create(ctx, tenantID, req)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "website already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "create website")
	}
	return FromModel(store), nil
}

func (s *service) Search(ctx context.Context, params SearchParams) (*query.Result[StoreDTO], error) {
	if err := s.resolveTenant(ctx, params.TenantID); err != nil {
		return nil, err
	}

	result, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	return mapResult(result), nil
}

// Lookup pages websites matching the given criteria. No match yields
// an empty page.
func (s *service) Lookup(ctx context.Context, tenantID uuid.UUID, params LookupParams) (*query.Result[StoreDTO], error) {
	if err := s.resolveTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	result, err := s.repo.Lookup(ctx, tenantID, params)
	if err != nil {
		return nil, err
	}
	return mapResult(result), nil
}

func (s *service) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*StoreDTO, error) {
	store, err := s.findStore(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return FromModel(store), nil
}

func (s *service) Update(ctx context.Context, tenantID, id uuid.UUID, req UpdateStoreRequest) (*StoreDTO, error) {
	store, err := s.findStore(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	store.Code = req.Code
	store.Name = req.Name
	store.Domain = req.Domain
	store.Platform = enums.StorePlatform(req.Platform)
	store.Timezone = req.Timezone
	store.Currency = req.Currency
	if req.Status != nil {
		store.Status = enums.EntityStatus(*req.Status)
	}

	if err := s.repo.Save(ctx, store); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "update website")
	}
	return FromModel(store), nil
}

func (s *service) Patch(ctx context.Context, tenantID, id uuid.UUID, req PatchStoreRequest) (*StoreDTO, error) {
	store, err := s.findStore(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Code) != "" {
		store.Code = req.Code
	}
	if strings.TrimSpace(req.Name) != "" {
		store.Name = req.Name
	}
	if req.Domain != nil {
		store.Domain = req.Domain
	}
	if strings.TrimSpace(req.Platform) != "" {
		platform, err := enums.ParseStorePlatform(req.Platform)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid platform value: %s", req.Platform))
		}
		store.Platform = platform
	}
	if req.Timezone != nil {
		store.Timezone = req.Timezone
	}
	if req.Currency != nil {
		store.Currency = req.Currency
	}
	if strings.TrimSpace(req.Status) != "" {
		status, err := enums.ParseEntityStatus(req.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status value: %s", req.Status))
		}
		store.Status = status
	}

	if err := s.repo.Save(ctx, store); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "patch website")
	}
	return FromModel(store), nil
}

// Delete deactivates the website. Deleting an already inactive website
// is a no-op success.
func (s *service) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	store, err := s.findStore(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if store.Status == enums.EntityStatusInactive {
		return nil
	}

	store.Status = enums.EntityStatusInactive
	if err := s.repo.Save(ctx, store); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "delete website")
	}
	return nil
}

func (s *service) resolveTenant(ctx context.Context, tenantID uuid.UUID) error {
	if _, err := s.tenants.FindByID(ctx, tenantID); err != nil {
		if db.IsNotFound(err) {
			return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("organization not found with id: %s", tenantID))
		}
		return pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "find organization")
	}
	return nil
}

func (s *service) findStore(ctx context.Context, tenantID, id uuid.UUID) (*models.Store, error) {
	if err := s.resolveTenant(ctx, tenantID); err != nil {
		return nil, err
	}

	store, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("website not found with id: %s", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "find website")
	}
	return store, nil
}

func mapResult(res *query.Result[models.Store]) *query.Result[StoreDTO] {
	out := &query.Result[StoreDTO]{
		Items:         make([]StoreDTO, 0, len(res.Items)),
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
