// Package handlers implements the HTTP endpoints.
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/gourav02/acda-org/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorBody struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

// writeError maps domain errors to the response taxonomy. Upstream and
// unexpected failures are logged with detail and surfaced generically.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if ve, ok := domain.AsValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error:   ve.Message,
			Code:    ve.Code,
			Details: ve.Details,
		})
		return
	}

	switch {
	case domain.IsUnauthorizedError(err):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Unauthorized"})
	case domain.IsNotFoundError(err):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Not found"})
	case domain.IsConflictError(err):
		writeJSON(w, http.StatusConflict, errorBody{Error: "Already exists"})
	case domain.IsRateLimitedError(err):
		writeJSON(w, http.StatusTooManyRequests, errorBody{
			Error: "Too many submissions. Please try again later.",
			Code:  "RATE_LIMIT_EXCEEDED",
		})
	case domain.IsUpstreamError(err):
		logger.Error("upstream failure", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "Upstream service unavailable"})
	default:
		logger.Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Error: "An error occurred while processing your request. Please try again later.",
			Code:  "INTERNAL_ERROR",
		})
	}
}
