package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/akikr/fenix-ingestion/api/responses"
	"github.com/akikr/fenix-ingestion/api/validators"
	"github.com/akikr/fenix-ingestion/internal/orders"
	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
	"github.com/akikr/fenix-ingestion/pkg/logger"
)

// OrderIngest accepts an order payload and upserts it by its
// (organization, website, externalOrderId) key.
func OrderIngest(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req orders.CreateOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.Ingest(r.Context(), req)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func OrderSearch(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scope, err := orderQueryScope(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		page, sort, err := validators.ParsePageParams(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		q := r.URL.Query()
		result, err := svc.Search(r.Context(), orders.SearchParams{
			TenantID:          scope.tenantID,
			StoreID:           scope.storeID,
			Status:            q.Get("status"),
			FinancialStatus:   q.Get("financialStatus"),
			FulfillmentStatus: q.Get("fulfillmentStatus"),
			From:              q.Get("from"),
			To:                q.Get("to"),
			Sort:              sort,
			Page:              page,
		})
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WritePaged(w, result)
	}
}

func OrderLookup(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scope, err := orderQueryScope(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		q := r.URL.Query()
		result, err := svc.SearchByExternal(r.Context(), orders.ExternalLookupParams{
			TenantID:            scope.tenantID,
			StoreID:             scope.storeID,
			ExternalOrderID:     strings.TrimSpace(q.Get("externalOrderId")),
			ExternalOrderNumber: strings.TrimSpace(q.Get("externalOrderNumber")),
			Page:                page,
		})
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WritePaged(w, result)
	}
}

func OrderGet(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "orderId")
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func OrderUpdate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "orderId")
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		var req orders.UpdateOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.Update(r.Context(), id, req)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func OrderPatch(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "orderId")
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		var req orders.PatchOrderRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.Patch(r.Context(), id, req)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func OrderDelete(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "orderId")
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

type orderScope struct {
	tenantID uuid.UUID
	storeID  *uuid.UUID
}

// Order listings carry their scope in the query string: orgId is
// mandatory, websiteId optional.
func orderQueryScope(r *http.Request) (orderScope, error) {
	q := r.URL.Query()

	rawOrg := strings.TrimSpace(q.Get("orgId"))
	if rawOrg == "" {
		return orderScope{}, pkgerrors.New(pkgerrors.CodeValidation, "orgId is required")
	}
	tenantID, err := uuid.Parse(rawOrg)
	if err != nil {
		return orderScope{}, invalidParam("orgId")
	}

	scope := orderScope{tenantID: tenantID}
	if raw := strings.TrimSpace(q.Get("websiteId")); raw != "" {
		storeID, err := uuid.Parse(raw)
		if err != nil {
			return orderScope{}, invalidParam("websiteId")
		}
		scope.storeID = &storeID
	}
	return scope, nil
}
