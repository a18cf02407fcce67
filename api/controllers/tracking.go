package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/akikr/fenix-ingestion/api/responses"
	"github.com/akikr/fenix-ingestion/api/validators"
	"github.com/akikr/fenix-ingestion/internal/tracking"
	"github.com/akikr/fenix-ingestion/pkg/logger"
)

func TrackingCreate(svc tracking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fulfillmentID, err := parseUUIDParam(r, "fulfillmentId")
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		var req tracking.CreateTrackingRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.Create(r.Context(), fulfillmentID, req)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func TrackingSearch(svc tracking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fulfillmentID, err := parseUUIDParam(r, "fulfillmentId")
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
		result, err := svc.Search(r.Context(), tracking.SearchParams{
			FulfillmentID:  fulfillmentID,
			TrackingNumber: q.Get("trackingNumber"),
			Carrier:        q.Get("carrier"),
			Status:         q.Get("status"),
			From:           q.Get("from"),
			To:             q.Get("to"),
			Sort:           sort,
			Page:           page,
		})
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WritePaged(w, result)
	}
}

func TrackingLookup(svc tracking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fulfillmentID, err := parseUUIDParam(r, "fulfillmentId")
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
		result, err := svc.Lookup(r.Context(), fulfillmentID, tracking.LookupParams{
			TrackingNumber: strings.TrimSpace(q.Get("trackingNumber")),
			Carrier:        strings.TrimSpace(q.Get("carrier")),
			Page:           page,
		})
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WritePaged(w, result)
	}
}

func TrackingGet(svc tracking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fulfillmentID, trackingID, err := trackingScope(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.GetByID(r.Context(), fulfillmentID, trackingID)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func TrackingUpdate(svc tracking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fulfillmentID, trackingID, err := trackingScope(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		var req tracking.UpdateTrackingRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.Update(r.Context(), fulfillmentID, trackingID, req)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func TrackingPatch(svc tracking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fulfillmentID, trackingID, err := trackingScope(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		var req tracking.PatchTrackingRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.Patch(r.Context(), fulfillmentID, trackingID, req)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func TrackingDelete(svc tracking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fulfillmentID, trackingID, err := trackingScope(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), fulfillmentID, trackingID); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

func trackingScope(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	fulfillmentID, err := parseUUIDParam(r, "fulfillmentId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	trackingID, err := parseUUIDParam(r, "trackingId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return fulfillmentID, trackingID, nil
}
