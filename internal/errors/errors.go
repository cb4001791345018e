package errors

import "errors"

// This package defines a centralized set of sentinel errors for the application.
// Using sentinel errors allows services to return specific, recognizable error types
// without coupling them to implementation details like HTTP status codes. The API
// layer can then use `errors.Is()` to check for these specific errors and map
// them to the correct HTTP responses.

var (
	// ErrNotConfigured signifies that the upstream AI endpoint or credential is
	// missing. It is determined once, when the transport client is constructed,
	// and every subsequent generation attempt fails fast with it.
	// This is typically mapped to a 503 Service Unavailable HTTP status.
	ErrNotConfigured = errors.New("ai client is not configured")

	// ErrEmptyInput signifies that a refinement turn carried neither text nor
	// an image. It is rejected before any upstream call is made.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrEmptyInput = errors.New("turn has no text and no image")

	// ErrMissingInput signifies that an operation requires a source image (or
	// other prerequisite input) that the session does not hold.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrMissingInput = errors.New("required input is missing")

	// ErrBusy signifies that a generation is already in flight for the session.
	// Callers must surface this to the user rather than queue the request.
	// This is typically mapped to a 409 Conflict HTTP status.
	ErrBusy = errors.New("a generation is already in progress")

	// ErrMalformedSchema signifies that an uploaded API document does not have
	// the expected top-level structure and cannot be summarized.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrMalformedSchema = errors.New("api document is malformed")

	// ErrIncompatibleSession signifies that a saved session record declares a
	// format version outside the supported set. The record is rejected whole;
	// live session state is never partially overwritten.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrIncompatibleSession = errors.New("session format version is not supported")

	// ErrNotFound signifies that a requested resource (a session record, a
	// document version) could not be located.
	// This is typically mapped to a 404 Not Found HTTP status.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that input data provided by a client failed
	// business rule validation.
	// This is typically mapped to a 400 Bad Request HTTP status.
	ErrValidation = errors.New("validation failed")

	// ErrInternal signifies an unexpected error on the server. This is a generic
	// error used to prevent leaking sensitive implementation details to the client.
	// This is typically mapped to a 500 Internal Server Error HTTP status.
	ErrInternal = errors.New("internal server error")
)
