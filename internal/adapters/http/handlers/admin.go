package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/ports"
	"github.com/gourav02/acda-org/internal/core/services"
)

type AdminHandler struct {
	admins   *services.AdminService
	sessions ports.SessionManager
	logger   *zap.Logger
}

func NewAdminHandler(admins *services.AdminService, sessions ports.SessionManager, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{admins: admins, sessions: sessions, logger: logger}
}

type createAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Create bootstraps an admin credential. The first admin can be created
// without a session; once one exists, further creations require one.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	count, err := h.admins.Count(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if count > 0 {
		if _, ok := h.sessions.Principal(r.Context()); !ok {
			writeError(w, h.logger, domain.ErrUnauthorized)
			return
		}
	}

	var req createAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, domain.NewValidationError("Invalid request body"))
		return
	}

	admin, err := h.admins.Create(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Info("admin user created", zap.String("username", admin.Username))

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Admin user created successfully",
		"admin": map[string]any{
			"id":        admin.ID,
			"username":  admin.Username,
			"createdAt": admin.CreatedAt,
		},
	})
}

// Count reports how many admins exist, so a fresh deployment can detect that
// setup is still needed.
func (h *AdminHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.admins.Count(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"count":       count,
		"setupNeeded": count == 0,
	})
}
