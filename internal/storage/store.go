// Package storage persists generation results so they can be listed, shown
// and viewed after the generating process has exited.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/samdwyer/skymanual/internal/generate"
)

var (
	// ErrNotFound is returned when no result is stored under an ID.
	ErrNotFound = errors.New("result not found")
	// ErrBackendUnknown is returned by Open for an unsupported backend name.
	ErrBackendUnknown = errors.New("unknown storage backend")
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Summary is one line of the result history.
type Summary struct {
	ID        uuid.UUID `json:"id"`
	Seed      int64     `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
	Players   []string  `json:"players"`
}

// Store saves and loads generation results.
type Store interface {
	Save(ctx context.Context, r *generate.Result) error
	Load(ctx context.Context, id uuid.UUID) (*generate.Result, error)
	// List returns up to limit summaries, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]Summary, error)
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Backend    string
	SQLitePath string
	RedisAddr  string
	// RedisTTL expires stored results; zero keeps them forever.
	RedisTTL time.Duration
}

// Open returns the store named by cfg.Backend.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	switch cfg.Backend {
	case BackendSQLite, "":
		return OpenSQLite(ctx, cfg.SQLitePath, logger)
	case BackendRedis:
		return NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisTTL, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrBackendUnknown, cfg.Backend)
	}
}

func summarize(r *generate.Result) Summary {
	s := Summary{ID: r.ID, Seed: r.Seed, CreatedAt: r.CreatedAt}
	for _, p := range r.Players {
		s.Players = append(s.Players, fmt.Sprintf("%s (%s)", p.Name, p.Game))
	}
	return s
}

func encode(r *generate.Result) ([]byte, error) {
	if r == nil || r.ID == uuid.Nil {
		return nil, errors.New("result has no id")
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*generate.Result, error) {
	var r generate.Result
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return &r, nil
}
