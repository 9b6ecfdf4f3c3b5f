package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"mini-erp/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Response already committed; nothing useful left to do.
		return
	}
}

// writeError writes a generic error response.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{
		Error:   model.ErrCodeInternalError,
		Message: message,
	})
}

// writeDomainError maps a service error onto an HTTP status. Expected
// domain failures carry their code and human-readable reason; anything
// else is an internal error.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		logger.Debug().
			Str("code", domainErr.Code).
			Str("message", domainErr.Message).
			Msg("domain error")
		writeJSON(w, statusForCode(domainErr.Code), model.ErrorResponse{
			Error:   domainErr.Code,
			Message: domainErr.Message,
		})
		return
	}

	logger.Error().Err(err).Msg("unexpected handler error")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Error:   model.ErrCodeInternalError,
		Message: "internal server error",
	})
}

// statusForCode picks the HTTP status for a domain error code.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeProductNotFound,
		model.ErrCodeOrderNotFound,
		model.ErrCodeCouponNotFound,
		model.ErrCodeStockNotFound,
		model.ErrCodeLookupNotFound:
		return http.StatusNotFound
	case model.ErrCodeOutOfStock,
		model.ErrCodeInvalidTransition:
		return http.StatusConflict
	case model.ErrCodeLookupFailed:
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

// decodeJSON decodes a request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
