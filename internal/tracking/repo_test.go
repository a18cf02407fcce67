package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/akikr/fenix-ingestion/pkg/enums"
	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
	"github.com/akikr/fenix-ingestion/pkg/query"
)

func setupTrackingTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`DROP TABLE IF EXISTS tracking_events`).Error)
	require.NoError(t, db.Exec(`DROP TABLE IF EXISTS tracking`).Error)
	require.NoError(t, db.Exec(`
CREATE TABLE tracking (
  tracking_id TEXT PRIMARY KEY,
  tenant_id TEXT NOT NULL,
  fulfillment_id TEXT NOT NULL,
  tracking_number TEXT NOT NULL,
  tracking_url TEXT,
  carrier TEXT,
  tracking_status TEXT NOT NULL,
  is_primary INTEGER NOT NULL DEFAULT 0,
  last_event_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`).Error)
	require.NoError(t, db.Exec(`
CREATE TABLE tracking_events (
  tracking_event_id TEXT PRIMARY KEY,
  tracking_id TEXT NOT NULL,
  status TEXT NOT NULL,
  description TEXT,
  location TEXT,
  event_at DATETIME NOT NULL,
  created_at DATETIME
);`).Error)
	return db
}

func TestRepositoryCreateWithEvents(t *testing.T) {
	db := setupTrackingTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()
	fulfillmentID := uuid.New()

	location := "Memphis, TN"
	created, err := repo.Create(ctx, tenantID, fulfillmentID, CreateTrackingRequest{
		TrackingNumber: "1Z999",
		Events: []CreateTrackingEventRequest{
			{Status: "IN_TRANSIT", Location: &location, EventAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, enums.TrackingStatusLabelCreated, created.Status)
	require.Len(t, created.Events, 1)

	found, err := repo.FindByID(ctx, fulfillmentID, created.ID)
	require.NoError(t, err)
	require.Len(t, found.Events, 1)
	assert.Equal(t, enums.TrackingStatusInTransit, found.Events[0].Status)
}

func TestRepositorySearchScopedToFulfillment(t *testing.T) {
	db := setupTrackingTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()
	fulfillmentA := uuid.New()
	fulfillmentB := uuid.New()

	_, err := repo.Create(ctx, tenantID, fulfillmentA, CreateTrackingRequest{TrackingNumber: "1Z111"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, tenantID, fulfillmentA, CreateTrackingRequest{TrackingNumber: "1Z222"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, tenantID, fulfillmentB, CreateTrackingRequest{TrackingNumber: "1Z333"})
	require.NoError(t, err)

	result, err := repo.Search(ctx, SearchParams{FulfillmentID: fulfillmentA, Sort: "createdAt,asc"})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	for _, item := range result.Items {
		assert.Equal(t, fulfillmentA, item.FulfillmentID)
	}

	result, err = repo.Search(ctx, SearchParams{FulfillmentID: fulfillmentA, TrackingNumber: "222", Sort: "createdAt,asc"})
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "1Z222", result.Items[0].TrackingNumber)
}

func TestRepositoryLookup(t *testing.T) {
	db := setupTrackingTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	tenantID := uuid.New()
	fulfillmentID := uuid.New()

	carrier := "UPS"
	created, err := repo.Create(ctx, tenantID, fulfillmentID, CreateTrackingRequest{
		TrackingNumber: "1Z999",
		Carrier:        &carrier,
	})
	require.NoError(t, err)

	page := query.Params{Size: 50}

	// Number matches on a fragment, not the full value.
	found, err := repo.Lookup(ctx, fulfillmentID, LookupParams{TrackingNumber: "Z99", Carrier: "UPS", Page: page})
	require.NoError(t, err)
	require.Len(t, found.Items, 1)
	assert.Equal(t, created.ID, found.Items[0].ID)

	miss, err := repo.Lookup(ctx, fulfillmentID, LookupParams{TrackingNumber: "1Z999", Carrier: "FedEx", Page: page})
	require.NoError(t, err)
	assert.Empty(t, miss.Items)

	_, err = repo.Lookup(ctx, fulfillmentID, LookupParams{Page: page})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}
