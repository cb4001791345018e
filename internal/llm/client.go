package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "blueprint-ai/backend/internal/errors"
)

// Provider defines the interface for talking to a chat-completion model.
type Provider interface {
	Complete(ctx context.Context, req *ChatRequest) (string, error)
	CompleteStream(ctx context.Context, req *ChatRequest, ch chan<- StreamChunk) error
}

// StreamChunk is a LOCAL type for the llm package: one increment of a
// streamed reply. Content fragments arrive in order; FinishReason is set on
// the chunk that ends the reply ("length" signals truncation). Err is set
// when the stream failed mid-flight.
type StreamChunk struct {
	Content      string
	FinishReason string
	Done         bool
	Err          error
}

// FinishReasonLength is the terminal reason signalling the model hit its
// output-length ceiling. Not a failure; callers treat it as partial success.
const FinishReasonLength = "length"

// ChatRequest is an OpenAI-style chat completion request.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	Stream      bool          `json:"stream,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type ChatMessage struct {
	Role    string  `json:"role"`
	Content Content `json:"content"`
}

// Content is either plain text or a multi-part body (text + inline images).
// It marshals to a JSON string in the plain case and to a part array
// otherwise, matching the upstream wire format.
type Content struct {
	Text  string
	Parts []ContentPart
}

type ContentPart struct {
	Type     string    `json:"type"` // "text" or "image_url"
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageRef `json:"image_url,omitempty"`
}

// ImageRef carries an inline data URI, never a remote URL.
type ImageRef struct {
	URL string `json:"url"`
}

func TextContent(text string) Content {
	return Content{Text: text}
}

func TextPart(text string) ContentPart {
	return ContentPart{Type: "text", Text: text}
}

func ImagePart(dataURI string) ContentPart {
	return ContentPart{Type: "image_url", ImageURL: &ImageRef{URL: dataURI}}
}

func PartsContent(parts ...ContentPart) Content {
	return Content{Parts: parts}
}

func (c Content) MarshalJSON() ([]byte, error) {
	if c.Parts != nil {
		return json.Marshal(c.Parts)
	}
	return json.Marshal(c.Text)
}

func (c *Content) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &c.Parts)
	}
	return json.Unmarshal(data, &c.Text)
}

// Config holds everything the client needs to reach the upstream provider.
// The API key lives only here, server-side.
type Config struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

type client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	retries int
	delay   time.Duration
}

// NewClient validates the configuration once, at construction time.
// A missing endpoint or credential is reported here as ErrNotConfigured;
// callers holding a nil Provider fail fast without re-probing.
func NewClient(cfg Config) (Provider, error) {
	if cfg.BaseURL == "" || cfg.APIKey == "" || cfg.APIKey == "YOUR_API_KEY_HERE" {
		return nil, fmt.Errorf("%w: base URL or API key missing", apperrors.ErrNotConfigured)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 1
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 500 * time.Millisecond
	}
	return &client{
		// Timeout covers the whole exchange for non-streaming calls; streamed
		// bodies are read without a client deadline so long generations are
		// not cut off mid-reply.
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		retries: cfg.RetryAttempts,
		delay:   cfg.RetryDelay,
	}, nil
}

// post sends one chat-completions request and classifies every failure
// mode at the point of detection. The caller owns the response body.
func (c *client) post(ctx context.Context, req *ChatRequest, httpClient *http.Client) (*http.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		category := CategoryNetwork
		if errors.Is(err, context.DeadlineExceeded) {
			category = CategoryTimeout
		}
		return nil, &APIError{Category: category, Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		apiErr := &APIError{
			Status:   resp.StatusCode,
			Category: classifyStatus(resp.StatusCode),
			Message:  string(respBody),
		}
		// The provider reports an over-long context as a 400 with a typed
		// error code in the body.
		if resp.StatusCode == http.StatusBadRequest && bytes.Contains(respBody, []byte("context_length_exceeded")) {
			apiErr.Category = CategoryContentLength
		}
		return nil, apiErr
	}
	return resp, nil
}

// postWithRetry performs bounded retries with increasing backoff for
// retryable categories. Non-retryable failures propagate immediately.
func (c *client) postWithRetry(ctx context.Context, req *ChatRequest, httpClient *http.Client) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		resp, err := c.post(ctx, req, httpClient)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var apiErr *APIError
		if !errors.As(err, &apiErr) || !apiErr.Retryable() {
			return nil, err
		}
		if attempt == c.retries-1 {
			break
		}
		select {
		case <-time.After(c.delay * time.Duration(attempt+1)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// Complete performs a non-streaming chat completion and returns the reply
// text. Used for short bounded calls such as document validation.
func (c *client) Complete(ctx context.Context, req *ChatRequest) (string, error) {
	req.Stream = false
	resp, err := c.postWithRetry(ctx, req, c.http)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &APIError{Category: CategoryNetwork, Message: err.Error()}
	}
	var parsed completionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("could not decode response: %s", string(respBody))
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("response carried no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

type streamChunkPayload struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// CompleteStream performs a streaming chat completion, delivering text
// fragments on ch in arrival order and closing it when the stream ends.
// Retries apply only to establishing the stream, never mid-stream.
func (c *client) CompleteStream(ctx context.Context, req *ChatRequest, ch chan<- StreamChunk) error {
	defer close(ch)
	req.Stream = true

	// No client-side deadline on the streaming exchange; cancellation comes
	// from ctx.
	resp, err := c.postWithRetry(ctx, req, &http.Client{})
	if err != nil {
		ch <- StreamChunk{Err: err}
		return err
	}
	defer resp.Body.Close()

	var finishReason string
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "[DONE]" {
			break
		}

		var chunk streamChunkPayload
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			decodeErr := fmt.Errorf("could not decode stream chunk: %w", err)
			select {
			case ch <- StreamChunk{Err: decodeErr}:
			case <-ctx.Done():
				reportCancel(ctx, ch)
				return ctx.Err()
			}
			return decodeErr
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if fr := chunk.Choices[0].FinishReason; fr != "" {
			finishReason = fr
		}
		content := chunk.Choices[0].Delta.Content
		if content == "" {
			continue
		}
		select {
		case ch <- StreamChunk{Content: content}:
		case <-ctx.Done():
			reportCancel(ctx, ch)
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		streamErr := &APIError{Category: CategoryNetwork, Message: err.Error()}
		select {
		case ch <- StreamChunk{Err: streamErr}:
		case <-ctx.Done():
			reportCancel(ctx, ch)
			return ctx.Err()
		}
		return streamErr
	}

	select {
	case ch <- StreamChunk{Done: true, FinishReason: finishReason}:
	case <-ctx.Done():
		reportCancel(ctx, ch)
		return ctx.Err()
	}
	return nil
}

// reportCancel hands the cancellation to the consumer if it is still
// receiving. Without it the closed channel would read as a clean end of
// stream and a partial reply would pass for a complete one.
func reportCancel(ctx context.Context, ch chan<- StreamChunk) {
	select {
	case ch <- StreamChunk{Err: ctx.Err()}:
	default:
	}
}
