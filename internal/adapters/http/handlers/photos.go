package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/ports"
	"github.com/gourav02/acda-org/internal/core/services"
)

type PhotosHandler struct {
	photos   *services.PhotoService
	sessions ports.SessionManager
	logger   *zap.Logger
}

func NewPhotosHandler(photos *services.PhotoService, sessions ports.SessionManager, logger *zap.Logger) *PhotosHandler {
	return &PhotosHandler{photos: photos, sessions: sessions, logger: logger}
}

type uploadPhotoRequest struct {
	EventName string `json:"eventName"`
	Year      int    `json:"year"`
	ImageURL  string `json:"imageUrl"`
	PublicID  string `json:"publicId"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Format    string `json:"format,omitempty"`
}

// Upload records a photo the dashboard already pushed to the image host.
func (h *PhotosHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req uploadPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, domain.NewValidationError("Invalid request body"))
		return
	}

	var uploadedBy string
	if principal, ok := h.sessions.Principal(r.Context()); ok {
		uploadedBy = principal.Name
	}

	photo, err := h.photos.Create(r.Context(), services.UploadPhotoInput{
		EventName:  req.EventName,
		Year:       req.Year,
		ImageURL:   req.ImageURL,
		PublicID:   req.PublicID,
		Width:      req.Width,
		Height:     req.Height,
		Format:     req.Format,
		UploadedBy: uploadedBy,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Photo uploaded successfully",
		"photo": map[string]any{
			"id":        photo.ID,
			"eventName": photo.EventName,
			"year":      photo.Year,
			"imageUrl":  photo.ImageURL,
		},
	})
}

func (h *PhotosHandler) List(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	photos, err := h.photos.ListByYear(r.Context(), year)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(photos),
		"photos":  photos,
	})
}
