// Package prompt holds the system instructions and fixed reply markers the
// engines send to the language model. The markers are part of the contract
// the instructions document to the model, so they live next to the
// templates that mention them.
package prompt

const (
	// AnswerMarker prefixes a reply that answers a question about the base
	// document without emitting a new document.
	AnswerMarker = "Answer:"

	// UpdateMarker prefixes a reply that carries the complete revised
	// document.
	UpdateMarker = "Updated Prompt:"

	// DeveloperSolutionTag prefixes turn content whose component names,
	// field names, API calls and validation rules are authoritative and must
	// overwrite vaguer inferred descriptions.
	DeveloperSolutionTag = "[DEVELOPER_SOLUTION]:"

	// APIDocumentTag prefixes a structured API summary produced by the
	// schema extractor. It only fills gaps; it never renames existing
	// fields.
	APIDocumentTag = "[API_DOCUMENT]:"

	// TruncationNotice is appended to accumulated output when the model
	// stopped for length. Callers detect it and may offer a continuation
	// turn.
	TruncationNotice = "\n\n---\n\n⚠️ **Output truncated by the length limit**\n\n---"

	// NoIssuesMarker is the all-clear result of a document validation.
	NoIssuesMarker = "✅ The prompt is well formed; no structural or content issues were found."
)
