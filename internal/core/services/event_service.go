package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/ports"
)

// EventImage pairs an upload candidate's metadata with its byte stream.
type EventImage struct {
	Meta domain.UploadFile
	Data io.Reader
}

// CreateEventInput carries the parsed multipart event form.
type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
	Images      []EventImage
}

// EventService owns the event write path: batch validation, image host
// uploads with compensating cleanup, and persistence.
type EventService struct {
	store  ports.EventStore
	images ports.ImageHost
	limits domain.UploadLimits
	logger *zap.Logger
	now    func() time.Time
}

func NewEventService(store ports.EventStore, images ports.ImageHost, limits domain.UploadLimits, logger *zap.Logger, clock func() time.Time) (*EventService, error) {
	if store == nil {
		return nil, fmt.Errorf("event store is required")
	}
	if images == nil {
		return nil, fmt.Errorf("image host is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = time.Now
	}

	return &EventService{store: store, images: images, limits: limits, logger: logger, now: clock}, nil
}

// Create validates the form, uploads every image, then persists the event.
// If an upload or the persistence step fails after some assets were already
// uploaded, those assets are destroyed best-effort so nothing is leaked.
func (s *EventService) Create(ctx context.Context, in CreateEventInput) (*domain.Event, error) {
	if in.Title == "" || in.Description == "" || in.Date.IsZero() {
		return nil, domain.NewValidationError("Title, description, and date are required")
	}

	if len(in.Images) > 0 {
		files := make([]domain.UploadFile, len(in.Images))
		for i, img := range in.Images {
			files[i] = img.Meta
		}
		if err := ValidateBatch(files, s.limits); err != nil {
			return nil, err
		}
	}

	var urls, publicIDs []string
	for _, img := range in.Images {
		asset, err := s.images.Upload(ctx, img.Data)
		if err != nil {
			s.logger.Error("image upload failed", zap.String("file", img.Meta.Name), zap.Error(err))
			s.destroyAssets(ctx, publicIDs)
			return nil, fmt.Errorf("uploading %s: %w", img.Meta.Name, domain.ErrUpstream)
		}
		urls = append(urls, asset.URL)
		publicIDs = append(publicIDs, asset.PublicID)
	}

	now := s.now()
	event := &domain.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		ImageURLs:   urls,
		PublicIDs:   publicIDs,
		IsUpcoming:  !in.Date.Before(now),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Insert(ctx, event); err != nil {
		s.destroyAssets(ctx, publicIDs)
		return nil, fmt.Errorf("persisting event: %w", err)
	}

	return event, nil
}

// Delete removes the event and its remote assets. Asset cleanup is
// best-effort: a failed destroy is logged and the record is removed anyway.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("Event ID is required")
	}

	event, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}

	s.destroyAssets(ctx, event.PublicIDs)

	if err := s.store.Delete(ctx, id); err != nil {
		// A concurrent delete already removed the record; nothing left to do.
		if domain.IsNotFoundError(err) {
			return nil
		}
		return fmt.Errorf("deleting event: %w", err)
	}
	return nil
}

// List returns events matching kind, newest first. Unknown kinds fall back
// to all.
func (s *EventService) List(ctx context.Context, kind domain.EventListKind) ([]domain.Event, error) {
	switch kind {
	case domain.EventsUpcoming, domain.EventsPast:
	default:
		kind = domain.EventsAll
	}

	events, err := s.store.List(ctx, kind, s.now())
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	if events == nil {
		events = []domain.Event{}
	}
	return events, nil
}

func (s *EventService) destroyAssets(ctx context.Context, publicIDs []string) {
	for _, id := range publicIDs {
		if err := s.images.Destroy(ctx, id); err != nil {
			s.logger.Warn("failed to delete remote asset", zap.String("publicId", id), zap.Error(err))
		}
	}
}
