package engine

import (
	"context"
	"fmt"

	apperrors "blueprint-ai/backend/internal/errors"
	"blueprint-ai/backend/internal/llm"
	"blueprint-ai/backend/internal/model"
	"blueprint-ai/backend/internal/prompt"
)

// Composer builds the first version of the document from a single source
// image and the tech-stack selection. The message is deterministic: a
// fixed analysis instruction plus the one image.
type Composer struct {
	provider  llm.Provider
	model     string
	maxTokens int
}

func NewComposer(provider llm.Provider, modelName string, maxTokens int) *Composer {
	return &Composer{provider: provider, model: modelName, maxTokens: maxTokens}
}

// ComposeResult is the outcome of an initial generation call.
type ComposeResult struct {
	Text      string
	Truncated bool
}

// GenerateInitial streams the first document version. SystemOverride, when
// non-empty, replaces the built-in system instruction entirely.
func (c *Composer) GenerateInitial(ctx context.Context, image string, stack model.TechStack, systemOverride string, onFragment func(string)) (*ComposeResult, error) {
	if c.provider == nil {
		return nil, apperrors.ErrNotConfigured
	}
	if image == "" {
		return nil, fmt.Errorf("%w: source image", apperrors.ErrMissingInput)
	}

	system := systemOverride
	if system == "" {
		system = prompt.InitialSystem(stack.Framework, stack.ComponentLibrary, stack.AppType)
	}

	req := &llm.ChatRequest{
		Model: c.model,
		Messages: []llm.ChatMessage{
			{Role: "system", Content: llm.TextContent(system)},
			{Role: "user", Content: llm.PartsContent(
				llm.TextPart(prompt.InitialUserText(stack.AppType, stack.Framework, stack.ComponentLibrary)),
				llm.ImagePart(image),
			)},
		},
		Temperature: stack.Temperature,
		MaxTokens:   c.maxTokens,
	}

	text, truncated, err := streamCompletion(ctx, c.provider, req, onFragment)
	if err != nil {
		return nil, fmt.Errorf("initial generation: %w", err)
	}
	if truncated {
		text += prompt.TruncationNotice
		if onFragment != nil {
			onFragment(prompt.TruncationNotice)
		}
	}
	return &ComposeResult{Text: text, Truncated: truncated}, nil
}
