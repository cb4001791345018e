package api

import (
	"io"
	"net/http"

	"blueprint-ai/backend/internal/interfaces"
)

// SchemaHandler handles HTTP requests for API schema summarization.
type SchemaHandler struct {
	service interfaces.SchemaService
}

func NewSchemaHandler(svc interfaces.SchemaService) *SchemaHandler {
	return &SchemaHandler{service: svc}
}

// HandleSummarize godoc
// @Summary      Summarize an API schema
// @Description  Parses a raw API schema document and returns the compact endpoint summary with field mapping suggestions.
// @Tags         Schema
// @Accept       json
// @Produce      json
// @Success      200  {object}  SummaryResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/schema/summarize [post]
func (h *SchemaHandler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Could not read request body."})
		return
	}

	summary, err := h.service.Summarize(raw)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SummaryResponse{Summary: summary})
}
