package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/akikr/fenix-ingestion/pkg/db/models"
	"github.com/akikr/fenix-ingestion/pkg/enums"
	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
	"github.com/akikr/fenix-ingestion/pkg/query"
)

type stubOrderRepo struct {
	upsertFn         func(ctx context.Context, tenantID, storeID uuid.UUID, req CreateOrderRequest) (*models.Order, error)
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	searchByExternalFn func(ctx context.Context, params ExternalLookupParams) (*query.Result[models.Order], error)
	saveFn           func(ctx context.Context, order *models.Order) error
	searchFn         func(ctx context.Context, params SearchParams) (*query.Result[models.Order], error)
}

func (s *stubOrderRepo) Upsert(ctx context.Context, tenantID, storeID uuid.UUID, req CreateOrderRequest) (*models.Order, error) {
	return s.upsertFn(ctx, tenantID, storeID, req)
}

func (s *stubOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubOrderRepo) SearchByExternal(ctx context.Context, params ExternalLookupParams) (*query.Result[models.Order], error) {
	return s.searchByExternalFn(ctx, params)
}

func (s *stubOrderRepo) Save(ctx context.Context, order *models.Order) error {
	return s.saveFn(ctx, order)
}

func (s *stubOrderRepo) Search(ctx context.Context, params SearchParams) (*query.Result[models.Order], error) {
	return s.searchFn(ctx, params)
}

type stubTenantReader struct {
	err error
}

func (s *stubTenantReader) FindByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Tenant{ID: id}, nil
}

type stubStoreReader struct {
	err error
}

func (s *stubStoreReader) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Store, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Store{ID: id, TenantID: tenantID}, nil
}

func TestIngestResolvesScopeFirst(t *testing.T) {
	svc, _ := NewService(&stubOrderRepo{}, &stubTenantReader{err: gorm.ErrRecordNotFound}, &stubStoreReader{})

	_, err := svc.Ingest(context.Background(), CreateOrderRequest{
		OrganizationID:  uuid.New(),
		WebsiteID:       uuid.New(),
		ExternalOrderID: "ord-1",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected organization not found, got %v", err)
	}
}

func TestIngestRejectsForeignWebsite(t *testing.T) {
	svc, _ := NewService(&stubOrderRepo{}, &stubTenantReader{}, &stubStoreReader{err: gorm.ErrRecordNotFound})

	_, err := svc.Ingest(context.Background(), CreateOrderRequest{
		OrganizationID:  uuid.New(),
		WebsiteID:       uuid.New(),
		ExternalOrderID: "ord-1",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected website not found, got %v", err)
	}
}

func TestSearchWithoutWebsiteSkipsStoreLookup(t *testing.T) {
	stores := &stubStoreReader{err: gorm.ErrRecordNotFound}
	repo := &stubOrderRepo{
		searchFn: func(ctx context.Context, params SearchParams) (*query.Result[models.Order], error) {
			return &query.Result[models.Order]{}, nil
		},
	}
	svc, _ := NewService(repo, &stubTenantReader{}, stores)

	if _, err := svc.Search(context.Background(), SearchParams{TenantID: uuid.New()}); err != nil {
		t.Fatalf("Search: %v", err)
	}
}

func TestPatchCoalescesOrderFields(t *testing.T) {
	email := "buyer@example.com"
	existing := &models.Order{
		ID:                uuid.New(),
		OrderStatus:       enums.OrderStatusCreated,
		FinancialStatus:   enums.FinancialStatusPending,
		FulfillmentStatus: enums.OrderFulfillmentStatusUnfulfilled,
		CustomerEmail:     &email,
		TotalAmount:       decimal.RequireFromString("10.00"),
	}

	var saved *models.Order
	repo := &stubOrderRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
			cpy := *existing
			return &cpy, nil
		},
		saveFn: func(ctx context.Context, order *models.Order) error {
			saved = order
			return nil
		},
	}
	svc, _ := NewService(repo, &stubTenantReader{}, &stubStoreReader{})

	_, err := svc.Patch(context.Background(), existing.ID, PatchOrderRequest{
		FinancialStatus: "PAID",
	})
	if err != nil {
		t.Fatalf("Patch: %v", err)
	}
	if saved.FinancialStatus != enums.FinancialStatusPaid {
		t.Fatalf("financialStatus = %q", saved.FinancialStatus)
	}
	if saved.OrderStatus != enums.OrderStatusCreated || *saved.CustomerEmail != email {
		t.Fatalf("untouched fields must be retained: %+v", saved)
	}
	if !saved.TotalAmount.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("totalAmount changed: %s", saved.TotalAmount)
	}
}

func TestPatchRejectsInvalidEnum(t *testing.T) {
	repo := &stubOrderRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
			return &models.Order{ID: id, OrderStatus: enums.OrderStatusCreated}, nil
		},
	}
	svc, _ := NewService(repo, &stubTenantReader{}, &stubStoreReader{})

	_, err := svc.Patch(context.Background(), uuid.New(), PatchOrderRequest{Status: "SHIPPED"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteCancelsOnce(t *testing.T) {
	status := enums.OrderStatusCreated
	saveCalls := 0
	repo := &stubOrderRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Order, error) {
			return &models.Order{ID: id, OrderStatus: status}, nil
		},
		saveFn: func(ctx context.Context, order *models.Order) error {
			saveCalls++
			status = order.OrderStatus
			return nil
		},
	}
	svc, _ := NewService(repo, &stubTenantReader{}, &stubStoreReader{})
	id := uuid.New()

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if status != enums.OrderStatusCancelled {
		t.Fatalf("status = %q", status)
	}
	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if saveCalls != 1 {
		t.Fatalf("save calls = %d, want 1", saveCalls)
	}
}
