package query

import (
	"testing"

	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
)

var testAllowList = map[string]string{
	"updatedAt": "updated_at",
	"createdAt": "created_at",
}

func TestParseSortTranslatesField(t *testing.T) {
	order, err := ParseSort("updatedAt,desc", testAllowList)
	if err != nil {
		t.Fatalf("parse sort: %v", err)
	}
	if order.Column != "updated_at" || !order.Descending {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.Clause() != "updated_at DESC" {
		t.Fatalf("unexpected clause %q", order.Clause())
	}
}

func TestParseSortDirectionDefaultsToAscending(t *testing.T) {
	tests := []string{
		"createdAt",
		"createdAt,asc",
		"createdAt,ASC",
		"createdAt,descending",
		"createdAt,garbage",
		"createdAt,",
	}
	for _, token := range tests {
		order, err := ParseSort(token, testAllowList)
		if err != nil {
			t.Fatalf("parse %q: %v", token, err)
		}
		if order.Descending {
			t.Fatalf("token %q should sort ascending", token)
		}
	}
}

func TestParseSortDescCaseInsensitive(t *testing.T) {
	for _, token := range []string{"updatedAt,desc", "updatedAt,DESC", "updatedAt,Desc"} {
		order, err := ParseSort(token, testAllowList)
		if err != nil {
			t.Fatalf("parse %q: %v", token, err)
		}
		if !order.Descending {
			t.Fatalf("token %q should sort descending", token)
		}
	}
}

func TestParseSortRejectsUnknownField(t *testing.T) {
	_, err := ParseSort("totalAmount,desc", testAllowList)
	if err == nil {
		t.Fatal("expected unknown field to be rejected")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnsupportedSort {
		t.Fatalf("expected unsupported sort code, got %v", err)
	}
}
