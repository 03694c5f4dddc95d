package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/ports"
)

const bcryptCost = 10

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// AdminService creates and verifies dashboard credentials.
type AdminService struct {
	store ports.AdminStore
	now   func() time.Time
}

func NewAdminService(store ports.AdminStore, clock func() time.Time) (*AdminService, error) {
	if store == nil {
		return nil, fmt.Errorf("admin store is required")
	}
	if clock == nil {
		clock = time.Now
	}
	return &AdminService{store: store, now: clock}, nil
}

func (s *AdminService) Create(ctx context.Context, username, password string) (*domain.Admin, error) {
	username = strings.ToLower(strings.TrimSpace(username))

	if username == "" || password == "" {
		return nil, domain.NewValidationError("Username and password are required")
	}
	if len(username) < 3 {
		return nil, domain.NewValidationError("Username must be at least 3 characters")
	}
	if len(username) > 50 {
		return nil, domain.NewValidationError("Username cannot exceed 50 characters")
	}
	if !usernamePattern.MatchString(username) && !emailPattern.MatchString(username) {
		return nil, domain.NewValidationError("Username must be letters, numbers, underscores, hyphens, or a valid email address")
	}
	if len(password) < 8 {
		return nil, domain.NewValidationError("Password must be at least 8 characters")
	}

	if _, err := s.store.FindByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("admin %q: %w", username, domain.ErrConflict)
	} else if !domain.IsNotFoundError(err) {
		return nil, fmt.Errorf("checking existing admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := s.now()
	admin := &domain.Admin{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Insert(ctx, admin); err != nil {
		return nil, fmt.Errorf("persisting admin: %w", err)
	}
	return admin, nil
}

// Authenticate verifies a credential pair. Unknown users and wrong passwords
// are indistinguishable to the caller.
func (s *AdminService) Authenticate(ctx context.Context, username, password string) (*domain.Admin, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, domain.NewValidationError("Please provide both username and password")
	}

	admin, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("looking up admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return admin, nil
}

func (s *AdminService) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}
