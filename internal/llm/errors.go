package llm

import "fmt"

// Category classifies an upstream failure at the point it is detected.
// Downstream code branches on the category, never on message substrings.
type Category string

const (
	CategoryAuth          Category = "auth"
	CategoryRateLimit     Category = "rate_limit"
	CategoryTimeout       Category = "timeout"
	CategoryNetwork       Category = "network"
	CategoryServer        Category = "server"
	CategoryContentLength Category = "content_length"
	CategoryInvalid       Category = "invalid"
)

// APIError is a tagged upstream failure. Status is zero when the failure
// happened before an HTTP response was received.
type APIError struct {
	Status   int
	Category Category
	Message  string
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("upstream call failed (%s, status %d): %s", e.Category, e.Status, e.Message)
	}
	return fmt.Sprintf("upstream call failed (%s): %s", e.Category, e.Message)
}

// Retryable reports whether a bounded transport-level retry is appropriate.
// Authentication and validation failures fail immediately.
func (e *APIError) Retryable() bool {
	switch e.Category {
	case CategoryNetwork, CategoryTimeout, CategoryRateLimit, CategoryServer:
		return true
	}
	return false
}

// classifyStatus maps an HTTP status code to a failure category.
func classifyStatus(status int) Category {
	switch {
	case status == 401 || status == 403:
		return CategoryAuth
	case status == 408:
		return CategoryTimeout
	case status == 429:
		return CategoryRateLimit
	case status >= 500:
		return CategoryServer
	default:
		return CategoryInvalid
	}
}
