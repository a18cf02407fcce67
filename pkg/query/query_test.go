package query

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
)

type searchRecord struct {
	ID        string `gorm:"primaryKey"`
	TenantID  string
	Name      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (searchRecord) TableName() string {
	return "search_records"
}

func setupQueryTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`DROP TABLE IF EXISTS search_records`).Error)
	require.NoError(t, db.Exec(`
CREATE TABLE search_records (
  id TEXT PRIMARY KEY,
  tenant_id TEXT NOT NULL,
  name TEXT NOT NULL,
  status TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`).Error)
	return db
}

func seedRecord(t *testing.T, db *gorm.DB, tenantID, name, status string, createdAt time.Time) searchRecord {
	t.Helper()
	record := searchRecord{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Name:      name,
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, db.Create(&record).Error)
	return record
}

func TestFilterScopeExcludesOtherTenants(t *testing.T) {
	db := setupQueryTestDB(t)
	tenantA := uuid.NewString()
	tenantB := uuid.NewString()
	now := time.Now().UTC()

	seedRecord(t, db, tenantA, "acme-east", "ACTIVE", now)
	seedRecord(t, db, tenantA, "acme-west", "ACTIVE", now)
	seedRecord(t, db, tenantB, "rival", "ACTIVE", now)

	filter := NewFilter().Scope("tenant_id", tenantA)
	result, err := Run[searchRecord](db.Model(&searchRecord{}), filter, Order{Column: "created_at"}, Params{})
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	for _, item := range result.Items {
		assert.Equal(t, tenantA, item.TenantID)
	}
}

func TestFilterIdentityWhenNoOptionalFilters(t *testing.T) {
	db := setupQueryTestDB(t)
	tenantID := uuid.NewString()
	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		seedRecord(t, db, tenantID, "store", "ACTIVE", now.Add(time.Duration(i)*time.Minute))
	}

	scoped := NewFilter().Scope("tenant_id", tenantID)
	withNoops := NewFilter().
		Scope("tenant_id", tenantID).
		Contains("name", "").
		Contains("name", "   ").
		DateRange("created_at", "", "")

	base, err := Run[searchRecord](db.Model(&searchRecord{}), scoped, Order{Column: "created_at"}, Params{})
	require.NoError(t, err)
	filtered, err := Run[searchRecord](db.Model(&searchRecord{}), withNoops, Order{Column: "created_at"}, Params{})
	require.NoError(t, err)

	assert.Equal(t, base.TotalElements, filtered.TotalElements)
	assert.Len(t, filtered.Items, len(base.Items))
}

func TestFilterAndComposition(t *testing.T) {
	db := setupQueryTestDB(t)
	tenantID := uuid.NewString()
	now := time.Now().UTC()

	seedRecord(t, db, tenantID, "alpha", "ACTIVE", now)
	seedRecord(t, db, tenantID, "alpha", "INACTIVE", now)
	seedRecord(t, db, tenantID, "beta", "ACTIVE", now)

	run := func(f *Filter) *Result[searchRecord] {
		result, err := Run[searchRecord](db.Model(&searchRecord{}), f, Order{Column: "created_at"}, Params{})
		require.NoError(t, err)
		return result
	}

	byName := run(NewFilter().Scope("tenant_id", tenantID).Contains("name", "alpha"))
	byStatus := run(NewFilter().Scope("tenant_id", tenantID).Equals("status", "ACTIVE"))
	both := run(NewFilter().Scope("tenant_id", tenantID).Contains("name", "alpha").Equals("status", "ACTIVE"))

	assert.EqualValues(t, 2, byName.TotalElements)
	assert.EqualValues(t, 2, byStatus.TotalElements)
	assert.EqualValues(t, 1, both.TotalElements)
	assert.Equal(t, "alpha", both.Items[0].Name)
	assert.Equal(t, "ACTIVE", both.Items[0].Status)
}

func TestDateRangeRequiresBothBounds(t *testing.T) {
	db := setupQueryTestDB(t)
	tenantID := uuid.NewString()

	old := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	seedRecord(t, db, tenantID, "old", "ACTIVE", old)
	seedRecord(t, db, tenantID, "recent", "ACTIVE", recent)

	run := func(from, to string) *Result[searchRecord] {
		f := NewFilter().Scope("tenant_id", tenantID).DateRange("created_at", from, to)
		result, err := Run[searchRecord](db.Model(&searchRecord{}), f, Order{Column: "created_at"}, Params{})
		require.NoError(t, err)
		return result
	}

	// One-sided bounds are a no-op for the date dimension.
	assert.EqualValues(t, 2, run("2024-01-01T00:00:00", "").TotalElements)
	assert.EqualValues(t, 2, run("", "2024-01-01T00:00:00").TotalElements)

	bounded := run("2024-01-01T00:00:00", "2024-12-31T23:59:59")
	require.EqualValues(t, 1, bounded.TotalElements)
	assert.Equal(t, "recent", bounded.Items[0].Name)
}

func TestDateRangeRejectsMalformedTimestamps(t *testing.T) {
	db := setupQueryTestDB(t)

	f := NewFilter().Scope("tenant_id", uuid.NewString()).
		DateRange("created_at", "not-a-date", "2024-01-01T00:00:00")
	_, err := Run[searchRecord](db.Model(&searchRecord{}), f, Order{Column: "created_at"}, Params{})
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeInvalidFilter, typed.Code())
}

func TestRunPaginationTotals(t *testing.T) {
	db := setupQueryTestDB(t)
	tenantID := uuid.NewString()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		seedRecord(t, db, tenantID, "store", "ACTIVE", base.Add(time.Duration(i)*time.Hour))
	}

	filter := NewFilter().Scope("tenant_id", tenantID)

	first, err := Run[searchRecord](db.Model(&searchRecord{}), filter, Order{Column: "created_at"}, Params{Page: 0, Size: 3})
	require.NoError(t, err)
	assert.Len(t, first.Items, 3)
	assert.EqualValues(t, 7, first.TotalElements)
	assert.Equal(t, 3, first.TotalPages)
	assert.True(t, first.HasNext)

	last, err := Run[searchRecord](db.Model(&searchRecord{}), filter, Order{Column: "created_at"}, Params{Page: 2, Size: 3})
	require.NoError(t, err)
	assert.Len(t, last.Items, 1)
	assert.False(t, last.HasNext)
}

func TestRunSortDirection(t *testing.T) {
	db := setupQueryTestDB(t)
	tenantID := uuid.NewString()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	seedRecord(t, db, tenantID, "first", "ACTIVE", base)
	seedRecord(t, db, tenantID, "second", "ACTIVE", base.Add(time.Hour))

	filter := func() *Filter { return NewFilter().Scope("tenant_id", tenantID) }

	asc, err := Run[searchRecord](db.Model(&searchRecord{}), filter(), Order{Column: "created_at"}, Params{})
	require.NoError(t, err)
	assert.Equal(t, "first", asc.Items[0].Name)

	desc, err := Run[searchRecord](db.Model(&searchRecord{}), filter(), Order{Column: "created_at", Descending: true}, Params{})
	require.NoError(t, err)
	assert.Equal(t, "second", desc.Items[0].Name)
}

func TestParamsNormalize(t *testing.T) {
	normalized := Params{Page: -1, Size: 0}.Normalize()
	assert.Equal(t, DefaultPage, normalized.Page)
	assert.Equal(t, DefaultSize, normalized.Size)

	capped := Params{Page: 2, Size: 10_000}.Normalize()
	assert.Equal(t, MaxSize, capped.Size)
}
