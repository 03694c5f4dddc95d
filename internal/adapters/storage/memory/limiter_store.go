// Package memory provides the in-process limiter store. State is private to
// one instance and lost on restart; with multiple replicas each instance
// enforces its own window independently.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/gourav02/acda-org/internal/core/ports"
)

type LimiterStore struct {
	mu      sync.Mutex
	entries map[string][]time.Time
}

var _ ports.LimiterStore = (*LimiterStore)(nil)

func NewLimiterStore() *LimiterStore {
	return &LimiterStore{entries: make(map[string][]time.Time)}
}

// Allow prunes timestamps that have aged out of the window, then records now
// unless the key is already at the limit. Pruning happens lazily on every
// touch, which also bounds each entry to limit timestamps.
func (s *LimiterStore) Allow(_ context.Context, key string, now time.Time, window time.Duration, limit int) (bool, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[key][:0]
	for _, t := range s.entries[key] {
		if now.Sub(t) < window {
			kept = append(kept, t)
		}
	}

	if len(kept) >= limit {
		s.entries[key] = kept
		return false, len(kept), nil
	}

	kept = append(kept, now)
	s.entries[key] = kept
	return true, len(kept), nil
}
