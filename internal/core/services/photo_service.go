package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/ports"
)

// UploadPhotoInput records a gallery image that the dashboard already pushed
// to the image host.
type UploadPhotoInput struct {
	EventName  string
	Year       int
	ImageURL   string
	PublicID   string
	Width      int
	Height     int
	Format     string
	UploadedBy string
}

// PhotoService manages gallery photo records.
type PhotoService struct {
	store ports.PhotoStore
	now   func() time.Time
}

func NewPhotoService(store ports.PhotoStore, clock func() time.Time) (*PhotoService, error) {
	if store == nil {
		return nil, fmt.Errorf("photo store is required")
	}
	if clock == nil {
		clock = time.Now
	}
	return &PhotoService{store: store, now: clock}, nil
}

func (s *PhotoService) Create(ctx context.Context, in UploadPhotoInput) (*domain.EventPhoto, error) {
	eventName := strings.TrimSpace(in.EventName)
	if eventName == "" || in.Year == 0 || in.ImageURL == "" || in.PublicID == "" {
		return nil, domain.NewValidationError("Missing required fields")
	}

	now := s.now()
	if in.Year < 1900 || in.Year > now.Year()+1 {
		return nil, domain.NewValidationError(fmt.Sprintf("Year must be between 1900 and %d", now.Year()+1))
	}

	uploadedBy := strings.TrimSpace(in.UploadedBy)
	if uploadedBy == "" {
		uploadedBy = "Admin"
	}

	photo := &domain.EventPhoto{
		EventName:  eventName,
		Year:       in.Year,
		ImageURL:   in.ImageURL,
		PublicID:   in.PublicID,
		Width:      in.Width,
		Height:     in.Height,
		Format:     in.Format,
		UploadedBy: uploadedBy,
		CreatedAt:  now,
	}

	if err := s.store.Insert(ctx, photo); err != nil {
		return nil, fmt.Errorf("persisting photo: %w", err)
	}
	return photo, nil
}

// ListByYear returns photos newest first; year zero means every year.
func (s *PhotoService) ListByYear(ctx context.Context, year int) ([]domain.EventPhoto, error) {
	photos, err := s.store.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("listing photos: %w", err)
	}
	if photos == nil {
		photos = []domain.EventPhoto{}
	}
	return photos, nil
}
