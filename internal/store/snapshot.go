package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/roach88/leetup/internal/catalog"
)

// ErrNoSnapshot indicates the cache holds no snapshot for the endpoint.
var ErrNoSnapshot = errors.New("no cached snapshot")

// Put replaces the cached snapshot for an endpoint in one transaction.
// The stored order is the slice order, so Get replays the fetch exactly.
func (s *Store) Put(ctx context.Context, endpoint string, problems []catalog.Problem, fetchedAt time.Time) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	defer tx.Rollback()

	// Replacing the snapshot row cascades the old problem rows away.
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM snapshots WHERE endpoint = ?`, endpoint); err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshots (endpoint, fetched_at) VALUES (?, ?)`,
		endpoint, fetchedAt.Unix()); err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}

	insert, err := tx.PrepareContext(ctx, `
		INSERT INTO problems
		(endpoint, position, id, title, title_slug, level, done, locked, starred)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	defer insert.Close()

	for i, p := range problems {
		if _, err := insert.ExecContext(ctx,
			endpoint, i, p.ID, p.Title, p.TitleSlug, p.Level, p.Done, p.Locked, p.Starred); err != nil {
			return fmt.Errorf("put snapshot: problem %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}

	return nil
}

// Get returns the cached snapshot for an endpoint in stored order, along
// with its fetch time. Returns ErrNoSnapshot when the endpoint has never
// been cached.
func (s *Store) Get(ctx context.Context, endpoint string) ([]catalog.Problem, time.Time, error) {
	var fetchedUnix int64
	err := s.db.QueryRowContext(ctx,
		`SELECT fetched_at FROM snapshots WHERE endpoint = ?`, endpoint).Scan(&fetchedUnix)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("get snapshot: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, title_slug, level, done, locked, starred
		FROM problems
		WHERE endpoint = ?
		ORDER BY position ASC
	`, endpoint)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("get snapshot: %w", err)
	}
	defer rows.Close()

	var problems []catalog.Problem
	for rows.Next() {
		var p catalog.Problem
		if err := rows.Scan(&p.ID, &p.Title, &p.TitleSlug, &p.Level, &p.Done, &p.Locked, &p.Starred); err != nil {
			return nil, time.Time{}, fmt.Errorf("get snapshot: %w", err)
		}
		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("get snapshot: %w", err)
	}

	return problems, time.Unix(fetchedUnix, 0), nil
}

// Clear drops the cached snapshot for an endpoint. Clearing an endpoint
// that was never cached is a no-op.
func (s *Store) Clear(ctx context.Context, endpoint string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE endpoint = ?`, endpoint); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}
	return nil
}
