package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"blueprint-ai/backend/internal/interfaces"
	"blueprint-ai/backend/internal/model"
	"blueprint-ai/backend/internal/service"
)

// SessionHandler handles HTTP requests for the prompt-building session.
type SessionHandler struct {
	service interfaces.SessionService
}

func NewSessionHandler(svc interfaces.SessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// StartSessionRequest is the DTO for creating a fresh session from a
// source screenshot.
type StartSessionRequest struct {
	Image string          `json:"image" validate:"required" example:"data:image/png;base64,..."`
	Stack model.TechStack `json:"stack"`
}

// SettingsRequest is the DTO for replacing the session's tech-stack selection.
type SettingsRequest struct {
	Framework        string  `json:"framework" validate:"required" example:"Vue"`
	ComponentLibrary string  `json:"component_library" validate:"required" example:"ElementPlus"`
	AppType          string  `json:"app_type" validate:"required" example:"web"`
	Temperature      float64 `json:"temperature" validate:"gte=0,lte=2" example:"0.5"`
}

// GenerateRequest is the DTO for the initial document generation endpoint.
type GenerateRequest struct {
	CustomSystem string `json:"custom_system,omitempty"`
}

// RefineRequest is the DTO for one refinement turn.
type RefineRequest struct {
	Text           string `json:"text"`
	Image          string `json:"image,omitempty"`
	Kind           string `json:"kind,omitempty" validate:"omitempty,oneof=developer-solution api-document document-upload"`
	DocumentName   string `json:"document_name,omitempty"`
	IsContinuation bool   `json:"is_continuation,omitempty"`
}

// EditDocumentRequest is the DTO for a manual edit of the active document.
type EditDocumentRequest struct {
	Content string `json:"content" validate:"required"`
}

// HandleGetSession godoc
// @Summary      Get the current session
// @Description  Returns the full state of the active session, including the version log and turn log.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  model.Session
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/session [get]
func (h *SessionHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	session := h.service.Current()
	if session == nil {
		respondWithJSON(w, http.StatusNotFound, ErrorResponse{Error: "No active session."})
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// HandleStartSession godoc
// @Summary      Start a new session
// @Description  Clears all prior state and stores the source screenshot and tech-stack selection. Does not call the model.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        session  body  StartSessionRequest  true  "Source image and tech stack"
// @Success      201      {object}  model.Session
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /v1/session [post]
func (h *SessionHandler) HandleStartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload."})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	session, err := h.service.StartSession(r.Context(), req.Image, req.Stack)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, session)
}

// HandleGetSettings godoc
// @Summary      Get session settings
// @Description  Returns the tech-stack selection of the active session.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  model.TechStack
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/session/settings [get]
func (h *SessionHandler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	session := h.service.Current()
	if session == nil {
		respondWithJSON(w, http.StatusNotFound, ErrorResponse{Error: "No active session."})
		return
	}
	respondWithJSON(w, http.StatusOK, session.Stack)
}

// HandleUpdateSettings godoc
// @Summary      Update session settings
// @Description  Replaces the tech-stack selection for subsequent generations.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        settings  body  SettingsRequest  true  "Tech stack"
// @Success      200       {object}  StatusResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      409       {object}  ErrorResponse
// @Router       /v1/session/settings [put]
func (h *SessionHandler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload."})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	stack := model.TechStack{
		Framework:        req.Framework,
		ComponentLibrary: req.ComponentLibrary,
		AppType:          req.AppType,
		Temperature:      req.Temperature,
	}
	if err := h.service.UpdateSettings(r.Context(), stack); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleGenerate godoc
// @Summary      Generate the initial document
// @Description  Streams the first document generated from the session's screenshot. This is a streaming endpoint.
// @Tags         Session
// @Accept       json
// @Produce      text/event-stream
// @Param        generate  body  GenerateRequest  false  "Optional system prompt override"
// @Success      200       {object}  model.StreamChunk "Stream of document fragments"
// @Failure      400       {object}  ErrorResponse
// @Failure      409       {object}  ErrorResponse
// @Router       /v1/session/generate [post]
func (h *SessionHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload."})
			return
		}
	}

	// Preconditions are checked before the SSE stream is opened, so they
	// surface as ordinary JSON errors with proper status codes.
	stream, err := h.service.GenerateInitial(r.Context(), req.CustomSystem)
	if err != nil {
		respondWithError(w, err)
		return
	}

	h.streamChunks(w, r, stream)
}

// HandleRefine godoc
// @Summary      Submit a refinement turn
// @Description  Streams the reply to one refinement instruction, question, or document. This is a streaming endpoint.
// @Tags         Session
// @Accept       json
// @Produce      text/event-stream
// @Param        turn  body  RefineRequest  true  "User turn"
// @Success      200   {object}  model.StreamChunk "Stream of reply fragments"
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /v1/session/refine [post]
func (h *SessionHandler) HandleRefine(w http.ResponseWriter, r *http.Request) {
	var req RefineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload."})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	stream, err := h.service.SubmitTurn(r.Context(), service.TurnRequest{
		Text:           req.Text,
		Image:          req.Image,
		Kind:           model.InputKind(req.Kind),
		DocumentName:   req.DocumentName,
		IsContinuation: req.IsContinuation,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}

	h.streamChunks(w, r, stream)
}

// streamChunks relays a chunk channel to the client as SSE events. The
// service keeps streaming into session state even if the client goes away,
// so the channel is always drained to the end; a disconnect only stops
// the writes. The service sends blockingly, an abandoned drain would wedge
// the generation.
func (h *SessionHandler) streamChunks(w http.ResponseWriter, r *http.Request, stream <-chan model.StreamChunk) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	clientGone := false
	for chunk := range stream {
		if clientGone {
			continue
		}
		if r.Context().Err() != nil {
			slog.Info("Client disconnected during generation stream, draining the remainder.")
			clientGone = true
			continue
		}
		if chunk.Error != "" {
			// Errors go out both as a dedicated error event, for clients
			// listening on it, and as part of the regular data stream.
			sendStreamError(w, chunk.Error)
		}
		if err := writeStreamEvent(w, chunk); err != nil {
			slog.Warn("Could not write to generation stream, client likely disconnected.", "error", err)
			clientGone = true
		}
	}

	slog.Info("Finished streaming response.")
}

// HandleCommit godoc
// @Summary      Commit the active document
// @Description  Anchors the refinement conversation to the current active document and clears the turn log.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /v1/session/commit [post]
func (h *SessionHandler) HandleCommit(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Commit(r.Context()); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleRevert godoc
// @Summary      Revert to a historic version
// @Description  Makes a historic version the active and base document and records a new `historic` version.
// @Tags         Session
// @Produce      json
// @Param        versionID  path  int  true  "Version ID"
// @Success      200        {object}  model.Session
// @Failure      400        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Failure      409        {object}  ErrorResponse
// @Router       /v1/session/versions/{versionID}/revert [post]
func (h *SessionHandler) HandleRevert(w http.ResponseWriter, r *http.Request) {
	versionID, err := strconv.ParseInt(chi.URLParam(r, "versionID"), 10, 64)
	if err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Version ID must be an integer."})
		return
	}

	session, err := h.service.Revert(r.Context(), versionID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// HandleUpdateDocument godoc
// @Summary      Edit the active document
// @Description  Replaces the active document with a manual edit and records an `edited` version.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        document  body  EditDocumentRequest  true  "New document content"
// @Success      200       {object}  model.Session
// @Failure      400       {object}  ErrorResponse
// @Failure      409       {object}  ErrorResponse
// @Router       /v1/session/document [put]
func (h *SessionHandler) HandleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	var req EditDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload."})
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	session, err := h.service.UpdateDocument(r.Context(), req.Content)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// HandleValidate godoc
// @Summary      Validate the active document
// @Description  Reviews the active document against a fixed rubric and returns the critique. Records no version.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  CritiqueResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /v1/session/validate [post]
func (h *SessionHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	critique, err := h.service.ValidateActive(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, CritiqueResponse{Critique: critique})
}

// HandleExport godoc
// @Summary      Export the session
// @Description  Serializes the session in the versioned record format for download.
// @Tags         Session
// @Produce      json
// @Success      200  {object}  model.SessionRecord
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /v1/session/export [get]
func (h *SessionHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.Export()
	if err != nil {
		respondWithError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="session.json"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("Failed to write session export", "error", err)
	}
}

// HandleImport godoc
// @Summary      Import a session
// @Description  Replaces the whole session with a previously exported record. An incompatible or corrupt record leaves live state untouched.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        record  body  model.SessionRecord  true  "Exported session record"
// @Success      200     {object}  model.Session
// @Failure      400     {object}  ErrorResponse
// @Failure      409     {object}  ErrorResponse
// @Router       /v1/session/import [post]
func (h *SessionHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Could not read request body."})
		return
	}

	session, err := h.service.Import(r.Context(), data)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}
