package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/akikr/fenix-ingestion/api/responses"
	"github.com/akikr/fenix-ingestion/api/validators"
	"github.com/akikr/fenix-ingestion/internal/fulfillments"
	"github.com/akikr/fenix-ingestion/pkg/logger"
)

func FulfillmentCreate(svc fulfillments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseUUIDParam(r, "orderId")
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		var req fulfillments.CreateFulfillmentRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.Create(r.Context(), orderID, req)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func FulfillmentSearch(svc fulfillments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseUUIDParam(r, "orderId")
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
		result, err := svc.Search(r.Context(), fulfillments.SearchParams{
			OrderID: orderID,
			Status:  q.Get("status"),
			Carrier: q.Get("carrier"),
			From:    q.Get("from"),
			To:      q.Get("to"),
			Sort:    sort,
			Page:    page,
		})
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WritePaged(w, result)
	}
}

func FulfillmentLookup(svc fulfillments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, err := parseUUIDParam(r, "orderId")
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		externalID := strings.TrimSpace(r.URL.Query().Get("externalFulfillmentId"))
		result, err := svc.SearchByExternalID(r.Context(), orderID, externalID, page)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WritePaged(w, result)
	}
}

func FulfillmentGet(svc fulfillments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, fulfillmentID, err := fulfillmentScope(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.GetByID(r.Context(), orderID, fulfillmentID)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func FulfillmentUpdate(svc fulfillments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, fulfillmentID, err := fulfillmentScope(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		var req fulfillments.UpdateFulfillmentRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.Update(r.Context(), orderID, fulfillmentID, req)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func FulfillmentPatch(svc fulfillments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, fulfillmentID, err := fulfillmentScope(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		var req fulfillments.PatchFulfillmentRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.Patch(r.Context(), orderID, fulfillmentID, req)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func FulfillmentDelete(svc fulfillments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID, fulfillmentID, err := fulfillmentScope(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), orderID, fulfillmentID); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

func fulfillmentScope(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	orderID, err := parseUUIDParam(r, "orderId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	fulfillmentID, err := parseUUIDParam(r, "fulfillmentId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return orderID, fulfillmentID, nil
}
