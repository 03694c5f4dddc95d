// Package redis provides the Redis-backed limiter store, for deployments
// where the submission window must be shared across instances.
package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"

	"github.com/gourav02/acda-org/internal/core/ports"
)

const maxSortedSetScore = "+inf"

// LimiterStore keeps each identifier's submission timestamps in a sorted set
// scored by unix milliseconds.
type LimiterStore struct {
	client *redis.Client
}

var _ ports.LimiterStore = (*LimiterStore)(nil)

type Config struct {
	Addr     string
	Password string
	DB       int
}

func New(cfg Config) (*LimiterStore, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &LimiterStore{client: client}, nil
}

// NewWithClient wraps an existing client. The caller keeps ownership of it.
func NewWithClient(client *redis.Client) *LimiterStore {
	return &LimiterStore{client: client}
}

func (s *LimiterStore) Client() *redis.Client {
	return s.client
}

func (s *LimiterStore) Close() error {
	return s.client.Close()
}

func (s *LimiterStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Allow counts in-window members first so a denied submission is never
// recorded, then prunes and records in one transaction.
func (s *LimiterStore) Allow(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (bool, int, error) {
	minScore := strconv.FormatInt(now.Add(-window).UnixMilli(), 10)

	current, err := s.client.ZCount(ctx, key, minScore, maxSortedSetScore).Result()
	if err != nil {
		return false, 0, fmt.Errorf("counting submissions for %s: %w", key, err)
	}
	if current >= int64(limit) {
		return false, int(current), nil
	}

	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", minScore)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: uuid.NewString(),
	})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("recording submission for %s: %w", key, err)
	}

	return true, int(count.Val()), nil
}
