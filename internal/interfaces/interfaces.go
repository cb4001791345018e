package interfaces

import (
	"context"

	"blueprint-ai/backend/internal/model"
	"blueprint-ai/backend/internal/service"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// SessionService defines the contract for the prompt-building session.
type SessionService interface {
	Current() *model.Session
	StartSession(ctx context.Context, image string, stack model.TechStack) (*model.Session, error)
	UpdateSettings(ctx context.Context, stack model.TechStack) error
	GenerateInitial(ctx context.Context, customSystem string) (<-chan model.StreamChunk, error)
	SubmitTurn(ctx context.Context, req service.TurnRequest) (<-chan model.StreamChunk, error)
	Commit(ctx context.Context) error
	Revert(ctx context.Context, versionID int64) (*model.Session, error)
	UpdateDocument(ctx context.Context, content string) (*model.Session, error)
	ValidateActive(ctx context.Context) (string, error)
	Export() ([]byte, error)
	Import(ctx context.Context, data []byte) (*model.Session, error)
}

// SchemaService defines the contract for API schema summarization.
type SchemaService interface {
	Summarize(raw []byte) (string, error)
}
