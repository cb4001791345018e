package engine

import (
	"context"
	"fmt"
	"strings"

	apperrors "blueprint-ai/backend/internal/errors"
	"blueprint-ai/backend/internal/llm"
	"blueprint-ai/backend/internal/prompt"
)

// validationTemperature keeps critiques near-deterministic.
const validationTemperature = 0.1

// Validator reviews a finished document against the fixed rubric and
// returns the raw critique text, or the all-clear marker when the model
// found nothing to flag.
type Validator struct {
	provider  llm.Provider
	model     string
	maxTokens int
}

func NewValidator(provider llm.Provider, modelName string, maxTokens int) *Validator {
	return &Validator{provider: provider, model: modelName, maxTokens: maxTokens}
}

// Validate sends the document with the rubric. Critiques are bounded, so
// this is the one non-streaming model call in the system.
func (v *Validator) Validate(ctx context.Context, content string) (string, error) {
	if v.provider == nil {
		return "", apperrors.ErrNotConfigured
	}
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: document content", apperrors.ErrEmptyInput)
	}

	req := &llm.ChatRequest{
		Model: v.model,
		Messages: []llm.ChatMessage{
			{Role: "system", Content: llm.TextContent(prompt.ValidationSystem())},
			{Role: "user", Content: llm.TextContent(prompt.ValidationUserText(content))},
		},
		Temperature: validationTemperature,
		MaxTokens:   v.maxTokens,
	}

	critique, err := v.provider.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("validation: %w", err)
	}
	if critique == "" {
		return "", fmt.Errorf("validation: response carried no content")
	}
	return critique, nil
}
