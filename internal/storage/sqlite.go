package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/samdwyer/skymanual/internal/generate"
)

//go:embed schema.sql
var schema string

// SQLiteStore keeps results in a single SQLite file.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	logger.Debug("opened sqlite store", "path", path)
	return &SQLiteStore{db: db, logger: logger}, nil
}

// Save inserts or replaces a result.
func (s *SQLiteStore) Save(ctx context.Context, r *generate.Result) error {
	data, err := encode(r)
	if err != nil {
		return err
	}
	players, err := json.Marshal(summarize(r).Players)
	if err != nil {
		return fmt.Errorf("failed to marshal players: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO generations (id, seed, created_at, players, result) VALUES (?, ?, ?, ?, ?)`,
		r.ID.String(), r.Seed, r.CreatedAt.UTC().UnixMilli(), string(players), string(data))
	if err != nil {
		return fmt.Errorf("failed to save result %s: %w", r.ID, err)
	}
	s.logger.Debug("saved result", "id", r.ID)
	return nil
}

// Load returns the result stored under id.
func (s *SQLiteStore) Load(ctx context.Context, id uuid.UUID) (*generate.Result, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT result FROM generations WHERE id = ?`, id.String()).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load result %s: %w", id, err)
	}
	return decode([]byte(data))
}

// List returns summaries newest first.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Summary, error) {
	query := `SELECT id, seed, created_at, players FROM generations ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			id, players string
			created     int64
			sum         Summary
		)
		if err := rows.Scan(&id, &sum.Seed, &created, &players); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		if sum.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("stored id %q: %w", id, err)
		}
		sum.CreatedAt = time.UnixMilli(created).UTC()
		if err := json.Unmarshal([]byte(players), &sum.Players); err != nil {
			return nil, fmt.Errorf("failed to unmarshal players: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
