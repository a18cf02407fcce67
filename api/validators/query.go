package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
	"github.com/akikr/fenix-ingestion/pkg/query"
)

const DefaultSort = "updatedAt,desc"

func ParseQueryInt(r *http.Request, key string, defaultVal, min, max int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	if value < min || value > max {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter out of range").WithDetails(map[string]any{"field": key, "min": min, "max": max})
	}
	return value, nil
}

// ParsePagination reads page and size from the query string, applying
// the listing defaults when a parameter is absent.
func ParsePagination(r *http.Request) (query.Params, error) {
	page, err := ParseQueryInt(r, "page", query.DefaultPage, 0, 1<<30)
	if err != nil {
		return query.Params{}, err
	}
	size, err := ParseQueryInt(r, "size", query.DefaultSize, 1, query.MaxSize)
	if err != nil {
		return query.Params{}, err
	}
	return query.Params{Page: page, Size: size}.Normalize(), nil
}

// ParsePageParams reads page, size and sort from the query string, applying
// the listing defaults when a parameter is absent.
func ParsePageParams(r *http.Request) (query.Params, string, error) {
	params, err := ParsePagination(r)
	if err != nil {
		return query.Params{}, "", err
	}

	sort := strings.TrimSpace(r.URL.Query().Get("sort"))
	if sort == "" {
		sort = DefaultSort
	}
	return params, sort, nil
}
