package ports

import (
	"context"
	"time"

	"github.com/gourav02/acda-org/internal/core/domain"
)

// LimiterStore keeps per-identifier submission timestamps. Allow drops
// entries older than now-window, then records now and returns true unless
// the identifier already has limit entries inside the window. A denied call
// records nothing.
type LimiterStore interface {
	Allow(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (allowed bool, count int, err error)
}

type RateLimiter interface {
	Allow(ctx context.Context, identifier string) (domain.Decision, error)
}
