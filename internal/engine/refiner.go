package engine

import (
	"context"
	"fmt"
	"strings"

	apperrors "blueprint-ai/backend/internal/errors"
	"blueprint-ai/backend/internal/llm"
	"blueprint-ai/backend/internal/model"
	"blueprint-ai/backend/internal/prompt"
)

// RefineOptions parameterizes one refinement turn.
type RefineOptions struct {
	Temperature      float64
	Framework        string
	ComponentLibrary string
	IsContinuation   bool
}

// RefineResult is the outcome of a completed refinement call. Text is the
// full accumulated reply, including the truncation notice when Truncated
// is set. Mode is a local sanity check on the reply's leading marker; it
// is reported, never enforced.
type RefineResult struct {
	Text      string
	Truncated bool
	Mode      model.ReplyMode
}

// Refiner drives the multi-turn refinement conversation: it selects the
// system instruction, assembles the message sequence from the base
// document, the turn history and the new turn, and streams the reply.
type Refiner struct {
	provider  llm.Provider
	model     string
	maxTokens int
}

func NewRefiner(provider llm.Provider, modelName string, maxTokens int) *Refiner {
	return &Refiner{provider: provider, model: modelName, maxTokens: maxTokens}
}

// Refine performs exactly one upstream call. Fragments are delivered to
// onFragment in arrival order; the caller accumulates them into the
// observable document. Upstream failures are wrapped with the call
// context and re-raised, never swallowed.
func (r *Refiner) Refine(ctx context.Context, baseDocument string, history []model.Turn, turn model.Turn, opts RefineOptions, onFragment func(string)) (*RefineResult, error) {
	if r.provider == nil {
		return nil, apperrors.ErrNotConfigured
	}
	if strings.TrimSpace(turn.Text) == "" && turn.Image == "" {
		return nil, apperrors.ErrEmptyInput
	}

	var system string
	if opts.IsContinuation {
		system = prompt.ContinuationSystem()
	} else {
		system = prompt.RefinementSystem(opts.Framework, opts.ComponentLibrary, baseDocument)
	}

	messages := make([]llm.ChatMessage, 0, len(history)+2)
	messages = append(messages, llm.ChatMessage{Role: "system", Content: llm.TextContent(system)})
	for _, prior := range history {
		messages = append(messages, turnMessage(prior))
	}
	messages = append(messages, turnMessage(turn))

	req := &llm.ChatRequest{
		Model:       r.model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   r.maxTokens,
	}

	text, truncated, err := streamCompletion(ctx, r.provider, req, onFragment)
	if err != nil {
		return nil, fmt.Errorf("refinement: %w", err)
	}
	if truncated {
		text += prompt.TruncationNotice
		if onFragment != nil {
			onFragment(prompt.TruncationNotice)
		}
	}

	mode := DetectMode(text, opts.IsContinuation)
	return &RefineResult{Text: text, Truncated: truncated, Mode: mode}, nil
}

// turnMessage maps one conversation turn to a single role-tagged message,
// special-cased per input kind. The same mapping applies whether the turn
// is replayed from history or submitted fresh, so tagged inputs look
// identical to the model on every call.
func turnMessage(turn model.Turn) llm.ChatMessage {
	if turn.Role == "assistant" {
		return llm.ChatMessage{Role: "assistant", Content: llm.TextContent(turn.Text)}
	}

	switch turn.Kind {
	case model.KindDeveloperSolution:
		return llm.ChatMessage{Role: "user", Content: llm.TextContent(prompt.DeveloperSolutionTag + " " + turn.Text)}
	case model.KindAPIDocument:
		return llm.ChatMessage{Role: "user", Content: llm.TextContent(prompt.APIDocumentTag + " " + turn.Text)}
	case model.KindDocumentUpload:
		text := turn.Text
		if text == "" {
			text = fmt.Sprintf("[User uploaded a document: %s]", turn.DocumentName)
		}
		return llm.ChatMessage{Role: "user", Content: llm.TextContent(text)}
	}

	if turn.Image != "" {
		return llm.ChatMessage{
			Role:    "user",
			Content: llm.PartsContent(llm.TextPart(turn.Text), llm.ImagePart(turn.Image)),
		}
	}
	return llm.ChatMessage{Role: "user", Content: llm.TextContent(turn.Text)}
}

// DetectMode inspects a reply's leading marker. An unrecognized marker on
// a non-continuation reply is reported as ambiguous rather than assumed
// correct.
func DetectMode(text string, isContinuation bool) model.ReplyMode {
	if isContinuation {
		return model.ModeContinuation
	}
	trimmed := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(trimmed, prompt.AnswerMarker):
		return model.ModeAnswer
	case strings.HasPrefix(trimmed, prompt.UpdateMarker):
		return model.ModeUpdate
	default:
		return model.ModeAmbiguous
	}
}
