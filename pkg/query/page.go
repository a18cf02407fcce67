package query

import (
	"gorm.io/gorm"

	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
)

const (
	// DefaultPage is the zero-based first page.
	DefaultPage = 0
	// DefaultSize is the standard page size when none is provided.
	DefaultSize = 50
	// MaxSize caps how many rows any search can request.
	MaxSize = 500
)

// Params holds offset pagination inputs from controllers.
type Params struct {
	Page int
	Size int
}

// Normalize enforces the configured defaults and caps.
func (p Params) Normalize() Params {
	if p.Page < 0 {
		p.Page = DefaultPage
	}
	if p.Size <= 0 {
		p.Size = DefaultSize
	}
	if p.Size > MaxSize {
		p.Size = MaxSize
	}
	return p
}

// Result is one page of records plus the totals the wire format carries.
type Result[T any] struct {
	Items         []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
	HasNext       bool
}

// Run applies the filter, then the sort, then offset pagination, and
// returns the page together with the total count. The query is
// read-only; any storage failure surfaces as a query-execution error.
func Run[T any](qb *gorm.DB, filter *Filter, sort Order, params Params) (*Result[T], error) {
	params = params.Normalize()

	base, err := filter.Apply(qb)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "counting records")
	}

	items := make([]T, 0, params.Size)
	err = base.Session(&gorm.Session{}).
		Order(sort.Clause()).
		Offset(params.Page * params.Size).
		Limit(params.Size).
		Find(&items).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeQueryExecution, err, "fetching records")
	}

	totalPages := int(total / int64(params.Size))
	if total%int64(params.Size) != 0 {
		totalPages++
	}

	return &Result[T]{
		Items:         items,
		Page:          params.Page,
		Size:          params.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		HasNext:       params.Page+1 < totalPages,
	}, nil
}
