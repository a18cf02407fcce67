package controllers

import (
	"net/http"
	"strings"

	"github.com/akikr/fenix-ingestion/api/responses"
	"github.com/akikr/fenix-ingestion/api/validators"
	"github.com/akikr/fenix-ingestion/internal/tenants"
	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
	"github.com/akikr/fenix-ingestion/pkg/logger"
)

func OrganizationCreate(svc tenants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tenants.CreateTenantRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		dto, err := svc.Create(r.Context(), req)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

func OrganizationSearch(svc tenants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, sort, err := validators.ParsePageParams(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		q := r.URL.Query()
		result, err := svc.Search(r.Context(), tenants.SearchParams{
			Name:   q.Get("name"),
			Status: q.Get("status"),
			From:   q.Get("from"),
			To:     q.Get("to"),
			Sort:   sort,
			Page:   page,
		})
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WritePaged(w, result)
	}
}

func OrganizationLookup(svc tenants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		externalID := strings.TrimSpace(r.URL.Query().Get("externalId"))
		if externalID == "" {
			responses.WriteError(logg, w, r, pkgerrors.New(pkgerrors.CodeValidation, "externalId is required"))
			return
		}

		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		result, err := svc.SearchByExternalID(r.Context(), externalID, page)
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}
		responses.WritePaged(w, result)
	}
}

func OrganizationGet(svc tenants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "orgId")
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

func OrganizationUpdate(svc tenants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "orgId")
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		var req tenants.UpdateTenantRequest
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

func OrganizationPatch(svc tenants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "orgId")
		if err != nil {
			responses.WriteError(logg, w, r, err)
			return
		}

		var req tenants.PatchTenantRequest
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

func OrganizationDelete(svc tenants.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUUIDParam(r, "orgId")
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
