package query

import (
	"strings"
	"time"

	"gorm.io/gorm"

	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
)

// Filter accumulates optional search predicates and composes them with
// logical AND. Absent filters contribute no constraint, so an empty
// filter is the identity over its scope. Building a filter performs no
// I/O; predicates are evaluated by the executor in page.go.
type Filter struct {
	conds []condition
	err   error
}

type condition struct {
	clause string
	args   []any
}

// NewFilter returns an empty conjunction.
func NewFilter() *Filter {
	return &Filter{}
}

// Scope adds a mandatory equality predicate. Every multi-tenant search
// must scope by tenant (and parent) before optional filters apply.
func (f *Filter) Scope(column string, value any) *Filter {
	f.conds = append(f.conds, condition{clause: column + " = ?", args: []any{value}})
	return f
}

// Equals adds an equality predicate. Callers guard presence; use it for
// enum filters that were already parsed and validated.
func (f *Filter) Equals(column string, value any) *Filter {
	return f.Scope(column, value)
}

// Contains adds a case-sensitive substring predicate (LIKE '%value%').
// Blank input is a no-op.
func (f *Filter) Contains(column string, value string) *Filter {
	if strings.TrimSpace(value) == "" {
		return f
	}
	f.conds = append(f.conds, condition{clause: column + " LIKE ?", args: []any{"%" + value + "%"}})
	return f
}

// DateRange adds a closed range predicate on the given timestamp
// column. Both bounds must be present for the range to take effect;
// supplying only one is a no-op for the date dimension. Malformed
// timestamps poison the filter with an invalid-filter error.
func (f *Filter) DateRange(column string, from, to string) *Filter {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return f
	}

	fromTime, err := ParseTimestamp(from)
	if err != nil {
		f.err = pkgerrors.Wrap(pkgerrors.CodeInvalidFilter, err, "invalid 'from' timestamp").
			WithDetails(map[string]string{"from": from})
		return f
	}
	toTime, err := ParseTimestamp(to)
	if err != nil {
		f.err = pkgerrors.Wrap(pkgerrors.CodeInvalidFilter, err, "invalid 'to' timestamp").
			WithDetails(map[string]string{"to": to})
		return f
	}

	f.conds = append(f.conds, condition{clause: column + " >= ?", args: []any{fromTime}})
	f.conds = append(f.conds, condition{clause: column + " <= ?", args: []any{toTime}})
	return f
}

// Err returns the first error recorded while building the filter.
func (f *Filter) Err() error {
	return f.err
}

// Apply folds the accumulated predicates onto the query builder.
func (f *Filter) Apply(qb *gorm.DB) (*gorm.DB, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, cond := range f.conds {
		qb = qb.Where(cond.clause, cond.args...)
	}
	return qb, nil
}

// Timestamp layouts accepted on the wire: ISO local date-times,
// interpreted as UTC. Go accepts fractional seconds on either layout.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTimestamp parses an ISO local date-time string as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, value, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
