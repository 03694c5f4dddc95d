package ports

import (
	"context"
	"io"

	"github.com/gourav02/acda-org/internal/core/domain"
)

// ImageHost is the remote image hosting collaborator.
type ImageHost interface {
	Upload(ctx context.Context, r io.Reader) (*domain.UploadedAsset, error)
	Destroy(ctx context.Context, publicID string) error
}

// Mailer delivers contact form notifications. It returns the provider's
// message id.
type Mailer interface {
	SendContactNotification(ctx context.Context, msg domain.ContactMessage) (string, error)
}

// SessionManager is the authentication collaborator. The core only consumes
// "a valid admin session is present"; token mechanics live in the adapter.
type SessionManager interface {
	Principal(ctx context.Context) (domain.Principal, bool)
	SignIn(ctx context.Context, admin *domain.Admin) error
	SignOut(ctx context.Context) error
}
