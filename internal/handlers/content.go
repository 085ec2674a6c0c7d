package handlers

import (
	"net/http"

	"metacontent/internal/contextutil"
	"metacontent/internal/service"
)

// ContentHandler handles idea generation and AI-written posts.
type ContentHandler struct {
	content *service.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// IdeasResponse lists generated ideas.
//
// swagger:model IdeasResponse
type IdeasResponse struct {
	Ideas []service.Idea `json:"ideas"`
}

// GenerateIdeas handles form-encoded idea requests.
//
// swagger:route POST /generate-ideas generateIdeas
func (h *ContentHandler) GenerateIdeas(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ideas, err := h.content.GenerateIdeas(ctx, service.IdeaRequest{
		Topic:    r.FormValue("topic"),
		Platform: r.FormValue("platform"),
		Count:    intParam(r, "count", service.DefaultIdeaCount),
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to generate ideas")
		return
	}

	writeJSON(ctx, w, http.StatusOK, IdeasResponse{Ideas: ideas})
}

// SmartPost handles JSON requests for AI-written posts.
//
// swagger:route POST /api/smart-post smartPost
func (h *ContentHandler) SmartPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req service.SmartPostRequest
	if err := decodeJSON(r, &req); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	post, err := h.content.CreateSmartPost(ctx, req)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to create post")
		return
	}

	writeJSON(ctx, w, http.StatusOK, post)
}
