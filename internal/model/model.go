package model

import "time"

// VersionSource tags how a document version came to exist.
type VersionSource string

const (
	SourceInitial  VersionSource = "initial"
	SourceRefined  VersionSource = "refined"
	SourceHistoric VersionSource = "historic"
	SourceEdited   VersionSource = "edited"
	SourceError    VersionSource = "error"
)

// InputKind tags how a user turn should be integrated by the refinement
// engine. The empty kind is ordinary text (optionally with an image).
type InputKind string

const (
	KindPlain             InputKind = ""
	KindDeveloperSolution InputKind = "developer-solution"
	KindAPIDocument       InputKind = "api-document"
	KindDocumentUpload    InputKind = "document-upload"
)

// DocumentVersion is an immutable, fully self-contained snapshot of the
// document. The version log is append-only; entries are never mutated or
// deleted after creation, and Content is always a complete document,
// never a diff.
type DocumentVersion struct {
	ID        int64         `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Content   string        `json:"content"`
	Source    VersionSource `json:"source"`
}

// Turn is one exchange in the refinement dialogue. Insertion order defines
// the model context order and is never reordered or deduplicated.
type Turn struct {
	Role         string    `json:"role"` // "user" or "assistant"
	Text         string    `json:"text"`
	Image        string    `json:"image,omitempty"` // inline data URI
	Kind         InputKind `json:"kind,omitempty"`
	DocumentName string    `json:"document_name,omitempty"` // set for document uploads
}

// TechStack is the user's technology selection for the generated document.
type TechStack struct {
	Framework        string  `json:"framework"`
	ComponentLibrary string  `json:"component_library"`
	AppType          string  `json:"app_type"`
	Temperature      float64 `json:"temperature"`
}

// Session holds the complete state of one prompt-building conversation.
// ActiveDocument reflects the latest (possibly uncommitted) result;
// BaseDocument is the document the current refinement sub-conversation is
// anchored to and only changes on an explicit commit or revert.
type Session struct {
	ID             string            `json:"id"`
	CreatedAt      time.Time         `json:"created_at"`
	Image          string            `json:"image"` // source screenshot, inline data URI
	Stack          TechStack         `json:"stack"`
	ActiveDocument string            `json:"active_document"`
	BaseDocument   string            `json:"base_document"`
	Turns          []Turn            `json:"turns"`
	Versions       []DocumentVersion `json:"versions"`
	Generating     bool              `json:"generating"`
}

// SessionFormatVersion is the current persisted-record format.
const SessionFormatVersion = "1.0.1"

// CompatibleFormatVersions lists the record versions a load will accept.
var CompatibleFormatVersions = []string{"1.0.0", "1.0.1"}

// SessionRecord is the versioned wire format for saving, exporting and
// importing a session. Loading checks FormatVersion against
// CompatibleFormatVersions and either fully replaces session state or is
// rejected; a corrupt record is never partially applied.
type SessionRecord struct {
	FormatVersion  string            `json:"formatVersion"`
	CreatedAt      time.Time         `json:"createdAt"`
	Image          string            `json:"initialImage"`
	Stack          TechStack         `json:"initialStack"`
	Versions       []DocumentVersion `json:"promptVersions"`
	Turns          []Turn            `json:"chatHistory"`
	ActiveDocument string            `json:"activeDocument"`
	BaseDocument   string            `json:"baseDocument"`
}

// ReplyMode is the locally detected output mode of a refinement reply,
// derived from its leading marker. It is informational: the contract is
// enforced by instructing the model, not by the engine.
type ReplyMode string

const (
	ModeAnswer       ReplyMode = "answer"
	ModeUpdate       ReplyMode = "update"
	ModeContinuation ReplyMode = "continuation"
	ModeAmbiguous    ReplyMode = "ambiguous"
)

// StreamChunk is the structure for a single event in a streaming response
// to the browser.
type StreamChunk struct {
	Content   string    `json:"content,omitempty"`
	Done      bool      `json:"done,omitempty"`
	Truncated bool      `json:"truncated,omitempty"`
	Mode      ReplyMode `json:"mode,omitempty"`
	VersionID int64     `json:"version_id,omitempty"`
	Error     string    `json:"error,omitempty"`
}
