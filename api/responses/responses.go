package responses

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	pkgerrors "github.com/akikr/fenix-ingestion/pkg/errors"
	"github.com/akikr/fenix-ingestion/pkg/logger"
	"github.com/akikr/fenix-ingestion/pkg/query"
	"github.com/akikr/fenix-ingestion/pkg/types"
)

const maxErrorMessageLen = 80

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteSuccessStatus(w, http.StatusOK, data)
}

func WriteSuccessStatus(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WritePaged converts a query result into the paged wire envelope.
func WritePaged[T any](w http.ResponseWriter, result *query.Result[T]) {
	payload := types.PagedResponse[T]{
		Data:          result.Items,
		Page:          result.Page,
		Size:          result.Size,
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
		HasNext:       result.HasNext,
	}
	if payload.Data == nil {
		payload.Data = []T{}
	}
	writeJSON(w, http.StatusOK, payload)
}

func WriteError(logg *logger.Logger, w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected error")
	}

	meta := pkgerrors.MetadataFor(typed.Code())

	msg := meta.PublicMessage
	switch typed.Code() {
	case pkgerrors.CodeValidation,
		pkgerrors.CodeInvalidFilter,
		pkgerrors.CodeUnsupportedSort,
		pkgerrors.CodeNotFound,
		pkgerrors.CodeConflict:
		if m := typed.Message(); m != "" {
			msg = m
		}
	}
	msg = truncate(msg, maxErrorMessageLen)

	payload := types.ErrorResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    meta.HTTPStatus,
		Error:     http.StatusText(meta.HTTPStatus),
		Message:   msg,
		Path:      r.URL.Path,
	}

	if logg != nil {
		dump := pkgerrors.Dump(err)

		fields := map[string]any{
			"error":         dump.TopMessage,
			"error_code":    dump.Code,
			"error_chain":   dump.Chain,
			"pg_code":       dump.PGCode,
			"pg_detail":     dump.PGDetail,
			"pg_message":    dump.PGMessage,
			"pg_table":      dump.PGTable,
			"pg_column":     dump.PGColumn,
			"pg_constraint": dump.PGConstraint,
			"path":          r.URL.Path,
		}

		ctx := logg.WithFields(r.Context(), fields)
		logg.Error(ctx, "request.error", err)
	}

	writeJSON(w, meta.HTTPStatus, payload)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf(`{"level":"error","msg":"failed to encode response","err":"%v"}`, err)
	}
}
