package tracking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/akikr/fenix-ingestion/pkg/db/models"
	"github.com/akikr/fenix-ingestion/pkg/enums"
	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
	"github.com/akikr/fenix-ingestion/pkg/query"
)

var sortFields = map[string]string{
	"updatedAt": "updated_at",
	"createdAt": "created_at",
}

// Repository handles tracking persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to tracking operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new tracking row with its scan events under the
// given fulfillment.
func (r *Repository) Create(ctx context.Context, tenantID, fulfillmentID uuid.UUID, req CreateTrackingRequest) (*models.Tracking, error) {
	record := req.ToModel(tenantID, fulfillmentID)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Events").Create(record).Error; err != nil {
			return err
		}
		for _, event := range req.Events {
			row := &models.TrackingEvent{
				ID:          uuid.New(),
				TrackingID:  record.ID,
				Status:      enums.TrackingStatus(event.Status),
				Description: event.Description,
				Location:    event.Location,
				EventAt:     event.EventAt,
			}
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			record.Events = append(record.Events, *row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// FindByID loads a tracking record with its events within the
// fulfillment scope.
func (r *Repository) FindByID(ctx context.Context, fulfillmentID, id uuid.UUID) (*models.Tracking, error) {
	var record models.Tracking
	if err := r.db.WithContext(ctx).
		Preload("Events").
		Where("tracking_id = ? AND fulfillment_id = ?", id, fulfillmentID).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Lookup pages tracking records matching a number fragment (and
// optionally a carrier fragment) within the fulfillment.
func (r *Repository) Lookup(ctx context.Context, fulfillmentID uuid.UUID, params LookupParams) (*query.Result[models.Tracking], error) {
	if params.TrackingNumber == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "trackingNumber is required")
	}

	filter := query.NewFilter().
		Scope("fulfillment_id", fulfillmentID).
		Contains("tracking_number", params.TrackingNumber).
		Contains("carrier", params.Carrier)
	sort := query.Order{Column: "updated_at", Descending: true}

	qb := r.db.WithContext(ctx).Model(&models.Tracking{})
	return query.Run[models.Tracking](qb, filter, sort, params.Page)
}

// Save persists the provided tracking record.
func (r *Repository) Save(ctx context.Context, record *models.Tracking) error {
	if record == nil {
		return fmt.Errorf("tracking record is required")
	}
	return r.db.WithContext(ctx).Omit("Events").Save(record).Error
}

// Search runs the filtered, sorted, paginated tracking listing scoped
// to one fulfillment.
func (r *Repository) Search(ctx context.Context, params SearchParams) (*query.Result[models.Tracking], error) {
	filter := query.NewFilter().
		Scope("fulfillment_id", params.FulfillmentID).
		Contains("tracking_number", params.TrackingNumber).
		Contains("carrier", params.Carrier).
		DateRange("created_at", params.From, params.To)

	if params.Status != "" {
		status, err := enums.ParseTrackingStatus(params.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeInvalidFilter, fmt.Sprintf("invalid status value: %s", params.Status))
		}
		filter.Equals("tracking_status", status)
	}

	sort, err := query.ParseSort(params.Sort, sortFields)
	if err != nil {
		return nil, err
	}

	qb := r.db.WithContext(ctx).Model(&models.Tracking{})
	return query.Run[models.Tracking](qb, filter, sort, params.Page)
}
