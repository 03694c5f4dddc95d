package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/gourav02/acda-org/internal/adapters/http/middleware"
	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/services"
)

type ContactHandler struct {
	contact *services.ContactService
	logger  *zap.Logger
}

func NewContactHandler(contact *services.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{contact: contact, logger: logger}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var msg domain.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, h.logger, domain.NewValidationError("Invalid request body"))
		return
	}

	emailID, err := h.contact.Submit(r.Context(), middleware.ClientIP(r), msg)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Your application has been submitted successfully",
		"emailId": emailID,
	})
}
