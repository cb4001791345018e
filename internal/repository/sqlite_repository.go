package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "blueprint-ai/backend/internal/errors"
	"blueprint-ai/backend/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveSession(ctx context.Context, id string, record *model.SessionRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal session record: %w", err)
	}
	query := `INSERT INTO sessions (id, created_at, updated_at, record) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET record = excluded.record, updated_at = excluded.updated_at`
	now := time.Now().UTC()
	_, err = r.db.ExecContext(ctx, query, id, record.CreatedAt, now, string(payload))
	return err
}

func (r *sqliteRepository) LoadLatestSession(ctx context.Context) (string, *model.SessionRecord, error) {
	query := "SELECT id, record FROM sessions ORDER BY updated_at DESC LIMIT 1"
	row := r.db.QueryRowContext(ctx, query)

	var id, payload string
	if err := row.Scan(&id, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, apperrors.ErrNotFound
		}
		return "", nil, err
	}

	var record model.SessionRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return "", nil, fmt.Errorf("stored session record is corrupt: %w", err)
	}
	return id, &record, nil
}

func (r *sqliteRepository) DeleteSession(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	return err
}
