package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/ports"
)

// RateLimiterService applies a sliding-window submission cap per client
// identifier on top of a LimiterStore.
type RateLimiterService struct {
	store ports.LimiterStore
	rule  domain.RateLimitRule
	now   func() time.Time
}

var _ ports.RateLimiter = (*RateLimiterService)(nil)

// NewRateLimiterService creates a new limiter. A nil clock defaults to
// time.Now.
func NewRateLimiterService(store ports.LimiterStore, rule domain.RateLimitRule, clock func() time.Time) (*RateLimiterService, error) {
	if store == nil {
		return nil, fmt.Errorf("limiter store is required")
	}
	if rule.Requests <= 0 || rule.Window <= 0 {
		return nil, fmt.Errorf("rate limit rule must have positive values")
	}
	if clock == nil {
		clock = time.Now
	}

	return &RateLimiterService{store: store, rule: rule, now: clock}, nil
}

// Allow records the submission and reports whether it is admitted. When the
// identifier already holds rule.Requests submissions inside the window, the
// call is denied without being recorded and ErrRateLimited is returned.
func (s *RateLimiterService) Allow(ctx context.Context, identifier string) (domain.Decision, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if identifier == "" {
		return domain.Decision{}, fmt.Errorf("identifier is required")
	}

	key := buildKey("ip", identifier)

	allowed, count, err := s.store.Allow(ctx, key, s.now(), s.rule.Window, s.rule.Requests)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("limiter store: %w", err)
	}

	decision := domain.Decision{Allowed: allowed, Identifier: identifier, CurrentCount: count}
	if !allowed {
		return decision, domain.ErrRateLimited
	}
	return decision, nil
}

func buildKey(prefix, identifier string) string {
	return fmt.Sprintf("ratelimit:%s:%s", prefix, identifier)
}
