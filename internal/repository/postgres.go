package repository

import (
	"context"
	"fmt"

	"tzlon-api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements conversion history storage on PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the conversions table if it does not exist yet
func (r *Repository) EnsureSchema(ctx context.Context) error {
	sql := `
		CREATE TABLE IF NOT EXISTS conversions (
			id BIGSERIAL PRIMARY KEY,
			kind VARCHAR(16) NOT NULL,
			input VARCHAR(64) NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			offset_hours DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS conversions_created_at_idx ON conversions (created_at DESC);
	`
	if _, err := r.db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// RecordConversion stores a single conversion
func (r *Repository) RecordConversion(ctx context.Context, entry models.HistoryEntry) error {
	sql := `
		INSERT INTO conversions (kind, input, longitude, offset_hours)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.Exec(ctx, sql, entry.Kind, entry.Input, entry.Longitude, entry.OffsetHours); err != nil {
		return fmt.Errorf("repository: failed to insert conversion: %w", err)
	}
	return nil
}

// ListRecent returns the latest conversions, newest first
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	sql := `
		SELECT
			id,
			kind,
			input,
			longitude,
			offset_hours,
			created_at
		FROM conversions
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute history query: %w", err)
	}
	defer rows.Close()

	entries := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		err := rows.Scan(
			&e.ID,
			&e.Kind,
			&e.Input,
			&e.Longitude,
			&e.OffsetHours,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan conversion: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return entries, nil
}
