// Package ports defines the contracts that connect the core services to
// external collaborators.
package ports

import (
	"context"
	"time"

	"github.com/gourav02/acda-org/internal/core/domain"
)

type EventStore interface {
	Insert(ctx context.Context, event *domain.Event) error
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, kind domain.EventListKind, now time.Time) ([]domain.Event, error)
}

type PhotoStore interface {
	Insert(ctx context.Context, photo *domain.EventPhoto) error
	// ListByYear returns all photos when year is zero.
	ListByYear(ctx context.Context, year int) ([]domain.EventPhoto, error)
}

type AdminStore interface {
	Insert(ctx context.Context, admin *domain.Admin) error
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Count(ctx context.Context) (int64, error)
}
