// Package engine implements the prompt-building components: the initial
// composer, the conversational refinement engine and the document
// validator. Each owns the message assembly for one kind of model call;
// none of them retries; that belongs to the transport.
package engine

import (
	"context"

	"blueprint-ai/backend/internal/llm"
)

// streamCompletion runs one streaming completion, delivering fragments to
// onFragment in arrival order and accumulating them. It reports whether
// the model stopped because it hit its output-length ceiling.
func streamCompletion(ctx context.Context, provider llm.Provider, req *llm.ChatRequest, onFragment func(string)) (string, bool, error) {
	ch := make(chan llm.StreamChunk)
	go func() {
		_ = provider.CompleteStream(ctx, req, ch)
	}()

	var accumulated string
	var truncated, finished bool
	for chunk := range ch {
		if chunk.Err != nil {
			return accumulated, false, chunk.Err
		}
		if chunk.Content != "" {
			accumulated += chunk.Content
			if onFragment != nil {
				onFragment(chunk.Content)
			}
		}
		if chunk.Done {
			finished = true
			if chunk.FinishReason == llm.FinishReasonLength {
				truncated = true
			}
		}
	}
	// A close without a terminal chunk means the stream was cut off;
	// whatever accumulated is a partial reply, not a document.
	if !finished {
		if err := ctx.Err(); err != nil {
			return accumulated, false, err
		}
		return accumulated, false, &llm.APIError{Category: llm.CategoryNetwork, Message: "stream ended before completion"}
	}
	return accumulated, truncated, nil
}
