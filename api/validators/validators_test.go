package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
	"github.com/akikr/fenix-ingestion/pkg/query"
)

type createPayload struct {
	Name       string `json:"name" validate:"required"`
	ExternalID string `json:"externalId" validate:"required"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	req := httptest.NewRequest("POST", "/organizations", strings.NewReader(`{"name":"Acme","externalId":"acme-1"}`))

	var dest createPayload
	if err := DecodeJSONBody(req, &dest); err != nil {
		t.Fatalf("DecodeJSONBody: %v", err)
	}
	if dest.Name != "Acme" || dest.ExternalID != "acme-1" {
		t.Fatalf("unexpected payload: %+v", dest)
	}
}

func TestDecodeJSONBodyMissingRequired(t *testing.T) {
	req := httptest.NewRequest("POST", "/organizations", strings.NewReader(`{"name":"Acme"}`))

	var dest createPayload
	err := DecodeJSONBody(req, &dest)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("details type %T", typed.Details())
	}
	if details["externalId"] != "is required" {
		t.Fatalf("details = %v", details)
	}
}

func TestDecodeJSONBodyUnknownField(t *testing.T) {
	req := httptest.NewRequest("POST", "/organizations", strings.NewReader(`{"name":"Acme","externalId":"a","bogus":true}`))

	var dest createPayload
	err := DecodeJSONBody(req, &dest)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest("GET", "/orders?page=3", nil)
	got, err := ParseQueryInt(req, "page", 0, 0, 100)
	if err != nil || got != 3 {
		t.Fatalf("got %d, err %v", got, err)
	}

	req = httptest.NewRequest("GET", "/orders", nil)
	got, err = ParseQueryInt(req, "page", 7, 0, 100)
	if err != nil || got != 7 {
		t.Fatalf("default: got %d, err %v", got, err)
	}

	req = httptest.NewRequest("GET", "/orders?page=abc", nil)
	if _, err = ParseQueryInt(req, "page", 0, 0, 100); pkgerrors.As(err) == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
}

func TestParsePagination(t *testing.T) {
	req := httptest.NewRequest("GET", "/orders", nil)
	params, err := ParsePagination(req)
	if err != nil {
		t.Fatalf("ParsePagination: %v", err)
	}
	if params != params.Normalize() {
		t.Fatalf("params not normalized: %+v", params)
	}
	if params.Page != query.DefaultPage || params.Size != query.DefaultSize {
		t.Fatalf("params = %+v", params)
	}

	req = httptest.NewRequest("GET", "/orders?page=1&size=5", nil)
	params, err = ParsePagination(req)
	if err != nil || params.Page != 1 || params.Size != 5 {
		t.Fatalf("params = %+v, err %v", params, err)
	}

	req = httptest.NewRequest("GET", "/orders?size=0", nil)
	if _, err = ParsePagination(req); pkgerrors.As(err) == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
}

func TestParsePageParamsDefaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/orders", nil)

	params, sort, err := ParsePageParams(req)
	if err != nil {
		t.Fatalf("ParsePageParams: %v", err)
	}
	if params.Page != query.DefaultPage || params.Size != query.DefaultSize {
		t.Fatalf("params = %+v", params)
	}
	if sort != DefaultSort {
		t.Fatalf("sort = %q", sort)
	}
}

func TestParsePageParamsExplicit(t *testing.T) {
	req := httptest.NewRequest("GET", "/orders?page=2&size=10&sort=createdAt,asc", nil)

	params, sort, err := ParsePageParams(req)
	if err != nil {
		t.Fatalf("ParsePageParams: %v", err)
	}
	if params.Page != 2 || params.Size != 10 || sort != "createdAt,asc" {
		t.Fatalf("params = %+v sort = %q", params, sort)
	}
}
