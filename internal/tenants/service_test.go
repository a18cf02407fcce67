package tenants

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/akikr/fenix-ingestion/pkg/db/models"
	"github.com/akikr/fenix-ingestion/pkg/enums"
	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
	"github.com/akikr/fenix-ingestion/pkg/query"
)

type stubTenantRepo struct {
	createFn           func(ctx context.Context, req CreateTenantRequest) (*models.Tenant, error)
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	searchByExternalFn func(ctx context.Context, externalID string, page query.Params) (*query.Result[models.Tenant], error)
	saveFn             func(ctx context.Context, tenant *models.Tenant) error
	searchFn           func(ctx context.Context, params SearchParams) (*query.Result[models.Tenant], error)
}

func (s *stubTenantRepo) Create(ctx context.Context, req CreateTenantRequest) (*models.Tenant, error) {
	return s.createFn(ctx, req)
}

func (s *stubTenantRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubTenantRepo) SearchByExternalID(ctx context.Context, externalID string, page query.Params) (*query.Result[models.Tenant], error) {
	return s.searchByExternalFn(ctx, externalID, page)
}

func (s *stubTenantRepo) Save(ctx context.Context, tenant *models.Tenant) error {
	return s.saveFn(ctx, tenant)
}

func (s *stubTenantRepo) Search(ctx context.Context, params SearchParams) (*query.Result[models.Tenant], error) {
	return s.searchFn(ctx, params)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := &stubTenantRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.GetByID(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPatchCoalescesBlankFields(t *testing.T) {
	existing := &models.Tenant{
		ID:         uuid.New(),
		ExternalID: "acme-1",
		Name:       "Acme",
		Status:     enums.EntityStatusActive,
	}

	var saved *models.Tenant
	repo := &stubTenantRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
			cpy := *existing
			return &cpy, nil
		},
		saveFn: func(ctx context.Context, tenant *models.Tenant) error {
			saved = tenant
			return nil
		},
	}
	svc, _ := NewService(repo)

	dto, err := svc.Patch(context.Background(), existing.ID, PatchTenantRequest{
		Name:   "Acme Corp",
		Status: "",
	})
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if saved.Name != "Acme Corp" {
		t.Fatalf("name not replaced: %q", saved.Name)
	}
	if saved.ExternalID != "acme-1" {
		t.Fatalf("blank externalId must be retained, got %q", saved.ExternalID)
	}
	if saved.Status != enums.EntityStatusActive {
		t.Fatalf("blank status must be retained, got %q", saved.Status)
	}
	if dto.Name != "Acme Corp" {
		t.Fatalf("dto name %q", dto.Name)
	}
}

func TestPatchRejectsInvalidStatus(t *testing.T) {
	repo := &stubTenantRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
			return &models.Tenant{ID: id, Status: enums.EntityStatusActive}, nil
		},
	}
	svc, _ := NewService(repo)

	_, err := svc.Patch(context.Background(), uuid.New(), PatchTenantRequest{Status: "BOGUS"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	status := enums.EntityStatusActive
	saveCalls := 0
	repo := &stubTenantRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
			return &models.Tenant{ID: id, Status: status}, nil
		},
		saveFn: func(ctx context.Context, tenant *models.Tenant) error {
			saveCalls++
			status = tenant.Status
			return nil
		},
	}
	svc, _ := NewService(repo)
	id := uuid.New()

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if status != enums.EntityStatusInactive {
		t.Fatalf("status = %q, want INACTIVE", status)
	}
	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if saveCalls != 1 {
		t.Fatalf("save calls = %d, want 1", saveCalls)
	}
}

func TestDeleteMissingTenant(t *testing.T) {
	repo := &stubTenantRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc, _ := NewService(repo)

	err := svc.Delete(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateMapsDuplicateKeyToConflict(t *testing.T) {
	repo := &stubTenantRepo{
		createFn: func(ctx context.Context, req CreateTenantRequest) (*models.Tenant, error) {
			return nil, errors.New(`duplicate key value violates unique constraint "ux_tenants_external_id"`)
		},
	}
	svc, _ := NewService(repo)

	_, err := svc.Create(context.Background(), CreateTenantRequest{ExternalID: "acme-1", Name: "Acme"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestSearchByExternalIDMapsPage(t *testing.T) {
	id := uuid.New()
	repo := &stubTenantRepo{
		searchByExternalFn: func(ctx context.Context, externalID string, page query.Params) (*query.Result[models.Tenant], error) {
			if externalID != "acme-1" {
				t.Fatalf("externalID = %q", externalID)
			}
			if page.Size != 10 {
				t.Fatalf("page size = %d", page.Size)
			}
			return &query.Result[models.Tenant]{
				Items:         []models.Tenant{{ID: id, ExternalID: externalID, Name: "Acme"}},
				Size:          10,
				TotalElements: 1,
				TotalPages:    1,
			}, nil
		},
	}
	svc, _ := NewService(repo)

	result, err := svc.SearchByExternalID(context.Background(), "acme-1", query.Params{Size: 10})
	if err != nil {
		t.Fatalf("SearchByExternalID: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].ID != id {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestSearchMapsResult(t *testing.T) {
	id := uuid.New()
	repo := &stubTenantRepo{
		searchFn: func(ctx context.Context, params SearchParams) (*query.Result[models.Tenant], error) {
			return &query.Result[models.Tenant]{
				Items:         []models.Tenant{{ID: id, Name: "Acme", Status: enums.EntityStatusActive}},
				Page:          0,
				Size:          50,
				TotalElements: 1,
				TotalPages:    1,
			}, nil
		},
	}
	svc, _ := NewService(repo)

	result, err := svc.Search(context.Background(), SearchParams{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].ID != id {
		t.Fatalf("unexpected result: %+v", result)
	}
}
