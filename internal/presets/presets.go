// Package presets persists named instrument vectors ("scenario presets") in
// Postgres so a client can save and recall a shock vector across sessions.
package presets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// Preset is a named, persisted instrument vector.
type Preset struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Instruments map[string]float64 `json:"instruments"`
}

// Store wraps a pgx connection pool scoped to the instrument_presets table.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects to databaseURL and ensures the backing table exists.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("presets: connect: %w", err)
	}
	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS instrument_presets (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			instruments JSONB NOT NULL
		)
	`)
	return err
}

// Save inserts a new preset and returns its generated ID.
func (s *Store) Save(ctx context.Context, name string, instruments map[string]float64) (string, error) {
	id := uuid.NewString()
	raw, err := json.Marshal(instruments)
	if err != nil {
		return "", err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO instrument_presets (id, name, instruments) VALUES ($1, $2, $3)`,
		id, name, raw,
	)
	if err != nil {
		return "", fmt.Errorf("presets: save: %w", err)
	}
	return id, nil
}

// Get loads a preset by ID.
func (s *Store) Get(ctx context.Context, id string) (Preset, error) {
	var p Preset
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, instruments FROM instrument_presets WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &raw)
	if err == pgx.ErrNoRows {
		return Preset{}, fmt.Errorf("presets: no preset with id %s", id)
	}
	if err != nil {
		return Preset{}, fmt.Errorf("presets: get: %w", err)
	}
	if err := json.Unmarshal(raw, &p.Instruments); err != nil {
		return Preset{}, err
	}
	return p, nil
}

// List returns every saved preset, most recently saved first is not
// guaranteed without a timestamp column; callers sort client-side if needed.
func (s *Store) List(ctx context.Context) ([]Preset, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name, instruments FROM instrument_presets`)
	if err != nil {
		return nil, fmt.Errorf("presets: list: %w", err)
	}
	defer rows.Close()

	var out []Preset
	for rows.Next() {
		var p Preset
		var raw []byte
		if err := rows.Scan(&p.ID, &p.Name, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &p.Instruments); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	s.pool.Close()
}
