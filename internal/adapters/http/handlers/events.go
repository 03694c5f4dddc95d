package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/services"
)

// multipartMemory is how much of the form is buffered in memory; the rest
// spills to temp files.
const multipartMemory = 32 << 20

type EventsHandler struct {
	events *services.EventService
	logger *zap.Logger
}

func NewEventsHandler(events *services.EventService, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{events: events, logger: logger}
}

// Create handles the multipart event form: title, description, date,
// location, and up to the configured number of images.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, h.logger, domain.NewValidationError("Invalid multipart form"))
		return
	}

	date, err := parseEventDate(r.FormValue("date"))
	if err != nil {
		writeError(w, h.logger, domain.NewValidationError("Invalid date format"))
		return
	}

	in := services.CreateEventInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Date:        date,
		Location:    r.FormValue("location"),
	}

	var openFiles []multipart.File
	defer func() {
		for _, f := range openFiles {
			_ = f.Close()
		}
	}()

	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["images"] {
			f, err := fh.Open()
			if err != nil {
				writeError(w, h.logger, fmt.Errorf("opening upload %s: %w", fh.Filename, err))
				return
			}
			openFiles = append(openFiles, f)
			in.Images = append(in.Images, services.EventImage{
				Meta: domain.UploadFile{
					Name:        fh.Filename,
					Size:        fh.Size,
					ContentType: fh.Header.Get("Content-Type"),
				},
				Data: f,
			})
		}
	}

	event, err := h.events.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Event created successfully",
		"event":   event,
	})
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.events.Delete(r.Context(), r.URL.Query().Get("id")); err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Event deleted successfully",
	})
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	kind := domain.EventListKind(r.URL.Query().Get("type"))

	events, err := h.events.List(r.Context(), kind)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(events),
		"events":  events,
	})
}

// parseEventDate accepts the dashboard's date input format and RFC 3339.
func parseEventDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
