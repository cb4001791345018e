package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"blueprint-ai/backend/internal/engine"
	apperrors "blueprint-ai/backend/internal/errors"
	"blueprint-ai/backend/internal/model"
	"blueprint-ai/backend/internal/repository"
)

// InitialFailureNotice is shown as the active document when the model
// returned an empty initial stream. No version is appended for this case.
const InitialFailureNotice = "Generation failed: no valid response was received, please retry."

// TurnRequest is one refinement submission from the client.
type TurnRequest struct {
	Text           string
	Image          string
	Kind           model.InputKind
	DocumentName   string
	IsContinuation bool
}

// SessionService owns the conversation session: the active and base
// documents, the append-only version log and the ordered turn log. Every
// mutation happens behind one mutex and the session is persisted whole,
// so a reload can recover it.
//
// Exactly one generation may be in flight. State-changing calls made
// while one is running fail with ErrBusy and mutate nothing; starting
// or importing a session mid-generation is disallowed rather than
// treated as an interrupt.
type SessionService struct {
	mu        sync.Mutex
	repo      repository.Repository
	composer  *engine.Composer
	refiner   *engine.Refiner
	validator *engine.Validator
	defaults  model.TechStack

	session    *model.Session
	versionSeq int64
}

func NewSessionService(repo repository.Repository, composer *engine.Composer, refiner *engine.Refiner, validator *engine.Validator, defaults model.TechStack) *SessionService {
	return &SessionService{
		repo:      repo,
		composer:  composer,
		refiner:   refiner,
		validator: validator,
		defaults:  defaults,
	}
}

// Restore loads the most recently saved session, if any. Called once at
// startup; an absent or incompatible record leaves the service empty.
func (s *SessionService) Restore(ctx context.Context) {
	id, record, err := s.repo.LoadLatestSession(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			slog.Warn("Could not restore saved session", "error", err)
		}
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.applyRecord(id, record); err != nil {
		slog.Warn("Saved session rejected", "error", err)
		return
	}
	slog.Info("Restored saved session", "session_id", id, "versions", len(record.Versions))
}

// Current returns a snapshot of the session state, or nil when no session
// exists.
func (s *SessionService) Current() *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	return s.snapshotLocked()
}

// StartSession clears all prior state and stores the source image and the
// tech-stack selection. It does not call the model.
func (s *SessionService) StartSession(ctx context.Context, image string, stack model.TechStack) (*model.Session, error) {
	if image == "" {
		return nil, fmt.Errorf("%w: source image", apperrors.ErrMissingInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generatingLocked() {
		return nil, apperrors.ErrBusy
	}

	s.discardStoredLocked(ctx)

	merged := s.defaults
	if stack.Framework != "" {
		merged.Framework = stack.Framework
	}
	if stack.ComponentLibrary != "" {
		merged.ComponentLibrary = stack.ComponentLibrary
	}
	if stack.AppType != "" {
		merged.AppType = stack.AppType
	}
	if stack.Temperature > 0 {
		merged.Temperature = stack.Temperature
	}

	s.session = &model.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Image:     image,
		Stack:     merged,
		Turns:     []model.Turn{},
		Versions:  []model.DocumentVersion{},
	}
	s.versionSeq = 0
	s.persistLocked(ctx)
	return s.snapshotLocked(), nil
}

// UpdateSettings replaces the session's tech-stack selection.
func (s *SessionService) UpdateSettings(ctx context.Context, stack model.TechStack) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return fmt.Errorf("%w: no active session", apperrors.ErrMissingInput)
	}
	if s.generatingLocked() {
		return apperrors.ErrBusy
	}
	s.session.Stack = stack
	s.persistLocked(ctx)
	return nil
}

// GenerateInitial starts the first document generation. Preconditions are
// checked synchronously; on success the returned channel delivers
// fragments in arrival order and is closed when the call completes.
// Exactly one `initial`-or-`error` version is appended per call, except
// for the empty-stream case which only sets the failure notice.
func (s *SessionService) GenerateInitial(ctx context.Context, customSystem string) (<-chan model.StreamChunk, error) {
	s.mu.Lock()
	if s.session == nil || s.session.Image == "" {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: source image", apperrors.ErrMissingInput)
	}
	if s.generatingLocked() {
		s.mu.Unlock()
		return nil, apperrors.ErrBusy
	}
	s.session.Generating = true
	s.session.ActiveDocument = ""
	image := s.session.Image
	stack := s.session.Stack
	s.mu.Unlock()

	// Generation outlives the request: the session is server-side state, so
	// a client that goes away mid-stream must not abort the upstream call
	// or lose the finished document.
	ch := make(chan model.StreamChunk)
	go s.runInitial(context.WithoutCancel(ctx), image, stack, customSystem, ch)
	return ch, nil
}

func (s *SessionService) runInitial(ctx context.Context, image string, stack model.TechStack, customSystem string, ch chan<- model.StreamChunk) {
	defer close(ch)

	result, err := s.composer.GenerateInitial(ctx, image, stack, customSystem, func(fragment string) {
		s.applyFragment(fragment)
		ch <- model.StreamChunk{Content: fragment}
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Generating = false

	if err != nil {
		s.session.ActiveDocument = err.Error()
		s.appendVersionLocked(model.SourceError)
		s.persistLocked(ctx)
		ch <- model.StreamChunk{Done: true, Error: err.Error()}
		return
	}
	if result.Text == "" {
		s.session.ActiveDocument = InitialFailureNotice
		s.persistLocked(ctx)
		ch <- model.StreamChunk{Done: true, Error: InitialFailureNotice}
		return
	}

	version := s.appendVersionLocked(model.SourceInitial)
	s.persistLocked(ctx)
	ch <- model.StreamChunk{Done: true, Truncated: result.Truncated, VersionID: version}
}

// SubmitTurn starts one refinement turn. The base document never changes
// here; it only moves on an explicit Commit or Revert.
func (s *SessionService) SubmitTurn(ctx context.Context, req TurnRequest) (<-chan model.StreamChunk, error) {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: no active session", apperrors.ErrMissingInput)
	}
	if s.generatingLocked() {
		s.mu.Unlock()
		return nil, apperrors.ErrBusy
	}
	if req.Text == "" && req.Image == "" {
		s.mu.Unlock()
		return nil, apperrors.ErrEmptyInput
	}
	// A refinement sub-conversation anchors to the document it started
	// from. The anchor is set lazily on the first turn after a generation.
	if s.session.BaseDocument == "" {
		if s.session.ActiveDocument == "" {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: no document to refine", apperrors.ErrMissingInput)
		}
		s.session.BaseDocument = s.session.ActiveDocument
	}

	s.session.Generating = true
	base := s.session.BaseDocument
	history := slices.Clone(s.session.Turns)
	stack := s.session.Stack
	s.mu.Unlock()

	turn := model.Turn{
		Role:         "user",
		Text:         req.Text,
		Image:        req.Image,
		Kind:         req.Kind,
		DocumentName: req.DocumentName,
	}
	opts := engine.RefineOptions{
		Temperature:      stack.Temperature,
		Framework:        stack.Framework,
		ComponentLibrary: stack.ComponentLibrary,
		IsContinuation:   req.IsContinuation,
	}

	ch := make(chan model.StreamChunk)
	// Same detachment as GenerateInitial: the refinement finishes into
	// session state even if the requesting client disconnects.
	go s.runRefinement(context.WithoutCancel(ctx), base, history, turn, opts, ch)
	return ch, nil
}

func (s *SessionService) runRefinement(ctx context.Context, base string, history []model.Turn, turn model.Turn, opts engine.RefineOptions, ch chan<- model.StreamChunk) {
	defer close(ch)

	first := true
	result, err := s.refiner.Refine(ctx, base, history, turn, opts, func(fragment string) {
		if first {
			// The active document shows the incoming reply from its first
			// fragment on.
			s.mu.Lock()
			s.session.ActiveDocument = ""
			s.mu.Unlock()
			first = false
		}
		s.applyFragment(fragment)
		ch <- model.StreamChunk{Content: fragment}
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Generating = false

	if err != nil {
		s.session.ActiveDocument = err.Error()
		s.appendVersionLocked(model.SourceError)
		s.persistLocked(ctx)
		ch <- model.StreamChunk{Done: true, Error: err.Error()}
		return
	}

	s.session.Turns = append(s.session.Turns, turn, model.Turn{Role: "assistant", Text: result.Text})
	version := s.appendVersionLocked(model.SourceRefined)
	s.persistLocked(ctx)
	ch <- model.StreamChunk{Done: true, Truncated: result.Truncated, Mode: result.Mode, VersionID: version}
}

// Commit anchors the refinement conversation to the current active
// document and starts a fresh sub-conversation.
func (s *SessionService) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return fmt.Errorf("%w: no active session", apperrors.ErrMissingInput)
	}
	if s.generatingLocked() {
		return apperrors.ErrBusy
	}
	s.session.BaseDocument = s.session.ActiveDocument
	s.session.Turns = []model.Turn{}
	s.persistLocked(ctx)
	return nil
}

// Revert makes a historic version the active and base document. The
// version log stays append-only: reverting appends a `historic` entry and
// never truncates history.
func (s *SessionService) Revert(ctx context.Context, versionID int64) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, fmt.Errorf("%w: no active session", apperrors.ErrMissingInput)
	}
	if s.generatingLocked() {
		return nil, apperrors.ErrBusy
	}

	idx := slices.IndexFunc(s.session.Versions, func(v model.DocumentVersion) bool {
		return v.ID == versionID
	})
	if idx < 0 {
		return nil, fmt.Errorf("%w: version %d", apperrors.ErrNotFound, versionID)
	}

	content := s.session.Versions[idx].Content
	s.session.ActiveDocument = content
	s.session.BaseDocument = content
	s.session.Turns = []model.Turn{}
	s.appendVersionLocked(model.SourceHistoric)
	s.persistLocked(ctx)
	return s.snapshotLocked(), nil
}

// UpdateDocument replaces the active document with a manual edit and
// records an `edited` version.
func (s *SessionService) UpdateDocument(ctx context.Context, content string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, fmt.Errorf("%w: no active session", apperrors.ErrMissingInput)
	}
	if s.generatingLocked() {
		return nil, apperrors.ErrBusy
	}
	s.session.ActiveDocument = content
	s.appendVersionLocked(model.SourceEdited)
	s.persistLocked(ctx)
	return s.snapshotLocked(), nil
}

// ValidateActive reviews the active document against the fixed rubric.
// It generates no document and therefore records no version.
func (s *SessionService) ValidateActive(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return "", fmt.Errorf("%w: no active session", apperrors.ErrMissingInput)
	}
	if s.generatingLocked() {
		s.mu.Unlock()
		return "", apperrors.ErrBusy
	}
	content := s.session.ActiveDocument
	s.mu.Unlock()

	return s.validator.Validate(ctx, content)
}

// Export serializes the session in the versioned record format.
func (s *SessionService) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, fmt.Errorf("%w: no active session", apperrors.ErrMissingInput)
	}
	if s.generatingLocked() {
		return nil, apperrors.ErrBusy
	}
	return json.MarshalIndent(s.recordLocked(), "", "  ")
}

// Import replaces the whole session with a previously exported record.
// The record either fully replaces session state or the load is rejected;
// a corrupt or incompatible record leaves live state completely untouched.
func (s *SessionService) Import(ctx context.Context, data []byte) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generatingLocked() {
		return nil, apperrors.ErrBusy
	}

	var record model.SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: session file is not valid JSON: %v", apperrors.ErrValidation, err)
	}
	replaced := s.session
	if err := s.applyRecord(uuid.NewString(), &record); err != nil {
		return nil, err
	}
	if replaced != nil {
		if err := s.repo.DeleteSession(ctx, replaced.ID); err != nil {
			slog.Warn("Could not remove replaced session", "session_id", replaced.ID, "error", err)
		}
	}
	s.persistLocked(ctx)
	return s.snapshotLocked(), nil
}

// applyRecord validates a record and swaps it in. Callers hold the lock.
func (s *SessionService) applyRecord(id string, record *model.SessionRecord) error {
	if !slices.Contains(model.CompatibleFormatVersions, record.FormatVersion) {
		return fmt.Errorf("%w: got %q, expected one of %v",
			apperrors.ErrIncompatibleSession, record.FormatVersion, model.CompatibleFormatVersions)
	}

	session := &model.Session{
		ID:             id,
		CreatedAt:      record.CreatedAt,
		Image:          record.Image,
		Stack:          record.Stack,
		ActiveDocument: record.ActiveDocument,
		BaseDocument:   record.BaseDocument,
		Turns:          slices.Clone(record.Turns),
		Versions:       slices.Clone(record.Versions),
	}
	if session.Turns == nil {
		session.Turns = []model.Turn{}
	}
	if session.Versions == nil {
		session.Versions = []model.DocumentVersion{}
	}
	if session.BaseDocument == "" {
		session.BaseDocument = session.ActiveDocument
	}

	var seq int64
	for _, v := range session.Versions {
		if v.ID > seq {
			seq = v.ID
		}
	}
	s.session = session
	s.versionSeq = seq
	return nil
}

func (s *SessionService) generatingLocked() bool {
	return s.session != nil && s.session.Generating
}

// applyFragment overwrites the active document with the accumulated
// prefix. Fragments are applied strictly in arrival order.
func (s *SessionService) applyFragment(fragment string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.ActiveDocument += fragment
}

// appendVersionLocked snapshots the active document into the version log
// and returns the new version's ID. Empty documents are never recorded.
func (s *SessionService) appendVersionLocked(source model.VersionSource) int64 {
	if s.session.ActiveDocument == "" {
		return 0
	}
	s.versionSeq++
	s.session.Versions = append(s.session.Versions, model.DocumentVersion{
		ID:        s.versionSeq,
		CreatedAt: time.Now().UTC(),
		Content:   s.session.ActiveDocument,
		Source:    source,
	})
	return s.versionSeq
}

func (s *SessionService) recordLocked() *model.SessionRecord {
	return &model.SessionRecord{
		FormatVersion:  model.SessionFormatVersion,
		CreatedAt:      s.session.CreatedAt,
		Image:          s.session.Image,
		Stack:          s.session.Stack,
		Versions:       slices.Clone(s.session.Versions),
		Turns:          slices.Clone(s.session.Turns),
		ActiveDocument: s.session.ActiveDocument,
		BaseDocument:   s.session.BaseDocument,
	}
}

// discardStoredLocked drops the persisted record of the session being
// replaced. Only one session is live at a time, so stale rows are removed
// rather than left behind.
func (s *SessionService) discardStoredLocked(ctx context.Context) {
	if s.session == nil {
		return
	}
	if err := s.repo.DeleteSession(ctx, s.session.ID); err != nil {
		slog.Warn("Could not remove replaced session", "session_id", s.session.ID, "error", err)
	}
}

// persistLocked saves the session whole. Persistence failures are logged
// and do not fail the mutation; the in-memory session stays authoritative.
func (s *SessionService) persistLocked(ctx context.Context) {
	if err := s.repo.SaveSession(ctx, s.session.ID, s.recordLocked()); err != nil {
		slog.Warn("Could not persist session", "session_id", s.session.ID, "error", err)
	}
}

func (s *SessionService) snapshotLocked() *model.Session {
	copied := *s.session
	copied.Turns = slices.Clone(s.session.Turns)
	copied.Versions = slices.Clone(s.session.Versions)
	return &copied
}
