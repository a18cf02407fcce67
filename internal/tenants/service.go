package tenants

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

type tenantRepository interface {
	Create(ctx context.Context, req CreateTenantRequest) (*models.Tenant, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	SearchByExternalID(ctx context.Context, externalID string, page query.Params) (*query.Result[models.Tenant], error)
	Save(ctx context.Context, tenant *models.Tenant) error
	Search(ctx context.Context, params SearchParams) (*query.Result[models.Tenant], error)
}

// Service exposes organization operations.
type Service interface {
	Create(ctx context.Context, req CreateTenantRequest) (*TenantDTO, error)
	Search(ctx context.Context, params SearchParams) (*query.Result[TenantDTO], error)
	GetByID(ctx context.Context, id uuid.UUID) (*TenantDTO, error)
	SearchByExternalID(ctx context.Context, externalID string, page query.Params) (*query.Result[TenantDTO], error)
	Update(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*TenantDTO, error)
	Patch(ctx context.Context, id uuid.UUID, req PatchTenantRequest) (*TenantDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo tenantRepository
}

// NewService builds an organization service with the provided repository.
func NewService(repo tenantRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("tenant repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, req CreateTenantRequest) (*TenantDTO, error) {
	tenant, err := s.repo.Create(ctx, req)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "organization already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "create organization")
	}
	return FromModel(tenant), nil
}

func (s *service) Search(ctx context.Context, params SearchParams) (*query.Result[TenantDTO], error) {
	result, err := s.repo.Search(ctx, params)
	if err != nil {
		return nil, err
	}
	return mapResult(result), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*TenantDTO, error) {
	tenant, err := s.findTenant(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(tenant), nil
}

// SearchByExternalID pages organizations matching the external
// identifier. No match yields an empty page.
func (s *service) SearchByExternalID(ctx context.Context, externalID string, page query.Params) (*query.Result[TenantDTO], error) {
	result, err := s.repo.SearchByExternalID(ctx, externalID, page)
	if err != nil {
		return nil, err
	}
	return mapResult(result), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*TenantDTO, error) {
	tenant, err := s.findTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	tenant.ExternalID = req.ExternalID
	tenant.Name = req.Name
	if req.Status != nil {
		tenant.Status = enums.EntityStatus(*req.Status)
	}

	if err := s.repo.Save(ctx, tenant); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "update organization")
	}
	return FromModel(tenant), nil
}

func (s *service) Patch(ctx context.Context, id uuid.UUID, req PatchTenantRequest) (*TenantDTO, error) {
	tenant, err := s.findTenant(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.ExternalID) != "" {
		tenant.ExternalID = req.ExternalID
	}
	if strings.TrimSpace(req.Name) != "" {
		tenant.Name = req.Name
	}
	if strings.TrimSpace(req.Status) != "" {
		status, err := enums.ParseEntityStatus(req.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid status value: %s", req.Status))
		}
		tenant.Status = status
	}

	if err := s.repo.Save(ctx, tenant); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "patch organization")
	}
	return FromModel(tenant), nil
}

// Delete deactivates the organization. Deleting an already inactive
// organization is a no-op success.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	tenant, err := s.findTenant(ctx, id)
	if err != nil {
		return err
	}
	if tenant.Status == enums.EntityStatusInactive {
		return nil
	}

	tenant.Status = enums.EntityStatusInactive
	if err := s.repo.Save(ctx, tenant); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "delete organization")
	}
	return nil
}

func (s *service) findTenant(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("organization not found with id: %s", id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "find organization")
	}
	return tenant, nil
}

func mapResult(res *query.Result[models.Tenant]) *query.Result[TenantDTO] {
	out := &query.Result[TenantDTO]{
		Items:         make([]TenantDTO, 0, len(res.Items)),
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
