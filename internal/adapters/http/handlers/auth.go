package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/ports"
	"github.com/gourav02/acda-org/internal/core/services"
)

type AuthHandler struct {
	admins   *services.AdminService
	sessions ports.SessionManager
	logger   *zap.Logger
}

func NewAuthHandler(admins *services.AdminService, sessions ports.SessionManager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{admins: admins, sessions: sessions, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, domain.NewValidationError("Invalid request body"))
		return
	}

	admin, err := h.admins.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if domain.IsUnauthorizedError(err) {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "Invalid username or password"})
			return
		}
		writeError(w, h.logger, err)
		return
	}

	if err := h.sessions.SignIn(r.Context(), admin); err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Info("admin signed in", zap.String("username", admin.Username))

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user": domain.Principal{
			ID:   admin.ID.Hex(),
			Name: admin.Username,
		},
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(r.Context()); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Signed out",
	})
}

// Session reports whether the caller holds a valid admin session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	principal, ok := h.sessions.Principal(r.Context())
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          principal,
	})
}
