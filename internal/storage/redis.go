package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/samdwyer/skymanual/internal/generate"
)

const (
	resultKeyPrefix = "generation:"
	indexKey        = "generations"
)

// RedisStore keeps each result as a JSON value under generation:<id>, with a
// sorted set of IDs scored by creation time.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore connects to addr and checks the connection.
func NewRedisStore(ctx context.Context, addr string, ttl time.Duration, logger *slog.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	logger.Debug("connected to redis", "addr", addr)
	return &RedisStore{client: client, logger: logger, ttl: ttl}, nil
}

func resultKey(id uuid.UUID) string {
	return resultKeyPrefix + id.String()
}

// Save stores a result and indexes it.
func (s *RedisStore) Save(ctx context.Context, r *generate.Result) error {
	data, err := encode(r)
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKey(r.ID), data, s.ttl)
		pipe.ZAdd(ctx, indexKey, redis.Z{
			Score:  float64(r.CreatedAt.UnixMilli()),
			Member: r.ID.String(),
		})
		return nil
	})
	if err != nil {
		s.logger.Error("failed to save result", "id", r.ID, "error", err)
		return fmt.Errorf("failed to save result %s: %w", r.ID, err)
	}
	return nil
}

// Load returns the result stored under id.
func (s *RedisStore) Load(ctx context.Context, id uuid.UUID) (*generate.Result, error) {
	data, err := s.client.Get(ctx, resultKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load result %s: %w", id, err)
	}
	return decode(data)
}

// List returns summaries newest first. Index entries whose result has
// expired are dropped from the index.
func (s *RedisStore) List(ctx context.Context, limit int) ([]Summary, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	ids, err := s.client.ZRevRange(ctx, indexKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	var out []Summary
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("indexed id %q: %w", raw, err)
		}
		r, err := s.Load(ctx, id)
		if errors.Is(err, ErrNotFound) {
			s.client.ZRem(ctx, indexKey, raw)
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, summarize(r))
	}
	return out, nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
