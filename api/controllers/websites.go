package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/akikr/fenix-ingestion/api/responses"
	"github.com/akikr/fenix-ingestion/api/validators"
	"github.com/akikr/fenix-ingestion/internal/stores"
	"github.com/akikr/fenix-ingestion/pkg/logger"
)

func WebsiteCreate(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgID, err := parseUUIDParam(r, "orgId")
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		var req stores.CreateStoreRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.Create(r.Context(), orgID, req)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func WebsiteSearch(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgID, err := parseUUIDParam(r, "orgId")
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
		result, err := svc.Search(r.Context(), stores.SearchParams{
			TenantID: orgID,
			Code:     q.Get("code"),
			Domain:   q.Get("domain"),
			Platform: q.Get("platform"),
			Status:   q.Get("status"),
			From:     q.Get("from"),
			To:       q.Get("to"),
			Sort:     sort,
			Page:     page,
		})
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WritePaged(w, result)
	}
}

func WebsiteLookup(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgID, err := parseUUIDParam(r, "orgId")
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
		params := stores.LookupParams{
			Code:   strings.TrimSpace(q.Get("code")),
			Domain: strings.TrimSpace(q.Get("domain")),
			Page:   page,
		}
		if raw := strings.TrimSpace(q.Get("websiteId")); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(logg, w, r, invalidParam("websiteId"))
				return
			}
			params.StoreID = &id
		}

		result, err := svc.Lookup(r.Context(), orgID, params)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WritePaged(w, result)
	}
}

func WebsiteGet(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgID, websiteID, err := websiteScope(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.GetByID(r.Context(), orgID, websiteID)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func WebsiteUpdate(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgID, websiteID, err := websiteScope(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		var req stores.UpdateStoreRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.Update(r.Context(), orgID, websiteID, req)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func WebsitePatch(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgID, websiteID, err := websiteScope(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		var req stores.PatchStoreRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.Patch(r.Context(), orgID, websiteID, req)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

func WebsiteDelete(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgID, websiteID, err := websiteScope(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		if err := svc.Delete(r.Context(), orgID, websiteID); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

func websiteScope(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	orgID, err := parseUUIDParam(r, "orgId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	websiteID, err := parseUUIDParam(r, "websiteId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return orgID, websiteID, nil
}
