package query

import (
	"strings"

	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
)

// Order is a translated sort: an internal column plus direction.
type Order struct {
	Column     string
	Descending bool
}

// Clause renders the ORDER BY fragment. Column always comes from an
// allow-list, never from raw input.
func (o Order) Clause() string {
	if o.Descending {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

// ParseSort translates a client token of the form "<field>,<direction>"
// through the per-resource allow-list. The direction defaults to
// ascending for anything other than case-insensitive "desc", including
// garbage input. An unrecognized field fails the request.
func ParseSort(token string, allowed map[string]string) (Order, error) {
	parts := strings.Split(token, ",")
	field := parts[0]

	column, ok := allowed[field]
	if !ok {
		return Order{}, pkgerrors.New(pkgerrors.CodeUnsupportedSort, "unsupported sort field").
			WithDetails(map[string]string{"field": field})
	}

	descending := len(parts) > 1 && strings.EqualFold(parts[1], "desc")
	return Order{Column: column, Descending: descending}, nil
}
