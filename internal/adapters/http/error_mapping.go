package httpadapter

import (
	"errors"
	"net/http"

	"github.com/kirillkom/brandboost/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput), domain.IsKind(err, domain.ErrMissingField):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrProductNotFound), domain.IsKind(err, domain.ErrExportNotFound):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrTemporary):
		return http.StatusServiceUnavailable
	case domain.IsKind(err, domain.ErrExportWrite):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	payload := map[string]string{"error": err.Error()}
	var missing *domain.MissingFieldError
	if errors.As(err, &missing) {
		payload["field"] = missing.Field
	}
	writeJSON(w, mapErrorToHTTPStatus(err), payload)
}
