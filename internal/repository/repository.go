package repository

import (
	"context"

	"blueprint-ai/backend/internal/model"
)

// Repository defines the interface for session persistence. The session is
// saved whole on every mutation so a browser reload can recover it; the
// record format is the same versioned shape used for file export.
type Repository interface {
	SaveSession(ctx context.Context, id string, record *model.SessionRecord) error
	LoadLatestSession(ctx context.Context) (string, *model.SessionRecord, error)
	DeleteSession(ctx context.Context, id string) error
}
