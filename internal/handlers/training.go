package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"metacontent/internal/contextutil"
	"metacontent/internal/service"
	"metacontent/internal/storage"
)

// TrainingHandler manages the business profile, example content, images
// and knowledge items.
type TrainingHandler struct {
	training *service.TrainingService
}

// NewTrainingHandler creates a new TrainingHandler.
func NewTrainingHandler(training *service.TrainingService) *TrainingHandler {
	return &TrainingHandler{training: training}
}

// ContentListResponse lists stored example posts.
type ContentListResponse struct {
	Content []storage.ContentItem `json:"content"`
	Total   int                   `json:"total"`
}

// ImageListResponse lists stored image metadata.
type ImageListResponse struct {
	Images []storage.TrainingImage `json:"images"`
	Total  int                     `json:"total"`
}

// ImageUploadResponse reports a stored image.
type ImageUploadResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	URL     string `json:"url"`
	Source  string `json:"source"`
}

// KnowledgeSaveResponse reports a stored knowledge item.
type KnowledgeSaveResponse struct {
	Success  bool   `json:"success"`
	ID       string `json:"id"`
	Category string `json:"category"`
}

// KnowledgeListResponse lists knowledge items.
type KnowledgeListResponse struct {
	Knowledge []storage.KnowledgeItem `json:"knowledge"`
	Total     int                     `json:"total"`
}

// SaveProfile stores the business profile from a form. Goals may be sent as
// repeated fields or one comma separated value.
//
// swagger:route POST /training/profile saveProfile
func (h *TrainingHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form")
		return
	}

	res, err := h.training.SaveProfile(ctx, storage.BusinessProfile{
		Name:           formValue(r, "name", r.FormValue("business_name")),
		Industry:       strings.TrimSpace(r.FormValue("industry")),
		Location:       strings.TrimSpace(r.FormValue("location")),
		TargetAudience: strings.TrimSpace(r.FormValue("target_audience")),
		BrandVoice:     strings.TrimSpace(r.FormValue("brand_voice")),
		Services:       strings.TrimSpace(r.FormValue("services")),
		USP:            strings.TrimSpace(r.FormValue("usp")),
		Goals:          splitGoals(r.Form["goals"]),
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to save profile")
		return
	}
	writeJSON(ctx, w, http.StatusOK, SaveResponse{Success: true, ID: res.ID, Storage: res.Storage})
}

// Profile returns the stored business profile.
//
// swagger:route GET /training/profile getProfile
func (h *TrainingHandler) Profile(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.training.Profile(r.Context()))
}

// SaveContent stores an example post from a form.
//
// swagger:route POST /training/content saveContent
func (h *TrainingHandler) SaveContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.training.SaveContent(ctx, storage.ContentItem{
		PostContent: r.FormValue("post_content"),
		Platform:    r.FormValue("platform"),
		Performance: formValue(r, "performance", ""),
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to save content")
		return
	}
	writeJSON(ctx, w, http.StatusOK, SaveResponse{Success: true, ID: res.ID, Storage: res.Storage})
}

// ListContent returns example posts, newest first.
//
// swagger:route GET /training/content listContent
func (h *TrainingHandler) ListContent(w http.ResponseWriter, r *http.Request) {
	items := h.training.ListContent(r.Context(), intParam(r, "limit", storage.DefaultContentLimit))
	writeJSON(r.Context(), w, http.StatusOK, ContentListResponse{Content: items, Total: len(items)})
}

// UploadImage stores a multipart image upload.
//
// swagger:route POST /training/images uploadImage
func (h *TrainingHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, service.MaxImageBytes+maxFormMemory)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			writeError(w, http.StatusBadRequest, "No file provided")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid file")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxImageBytes+1))
	if err != nil {
		logger.ErrorContext(ctx, "failed to read upload", "error", err)
		writeError(w, http.StatusBadRequest, "Failed to read file")
		return
	}

	res, err := h.training.UploadImage(ctx, service.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Category:    r.FormValue("category"),
		Data:        data,
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to upload image")
		return
	}
	writeJSON(ctx, w, http.StatusOK, ImageUploadResponse{Success: true, ID: res.ID, URL: res.URL, Source: res.Source})
}

// ListImages returns image metadata, optionally filtered by category.
//
// swagger:route GET /training/images listImages
func (h *TrainingHandler) ListImages(w http.ResponseWriter, r *http.Request) {
	images := h.training.ListImages(r.Context(), r.URL.Query().Get("category"))
	writeJSON(r.Context(), w, http.StatusOK, ImageListResponse{Images: images, Total: len(images)})
}

// Context returns the aggregated training context.
//
// swagger:route GET /training/context trainingContext
func (h *TrainingHandler) Context(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.training.Context(r.Context()))
}

// SaveKnowledge stores a knowledge item from a form.
//
// swagger:route POST /training/knowledge saveKnowledge
func (h *TrainingHandler) SaveKnowledge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	item, err := h.training.SaveKnowledge(ctx, service.KnowledgeInput{
		Category:   r.FormValue("category"),
		Title:      r.FormValue("title"),
		Content:    r.FormValue("content"),
		Importance: r.FormValue("importance"),
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to save knowledge")
		return
	}
	writeJSON(ctx, w, http.StatusOK, KnowledgeSaveResponse{Success: true, ID: item.ID, Category: item.Category})
}

// ListKnowledge returns knowledge items, optionally filtered by category.
//
// swagger:route GET /training/knowledge listKnowledge
func (h *TrainingHandler) ListKnowledge(w http.ResponseWriter, r *http.Request) {
	items := h.training.ListKnowledge(r.Context(), r.URL.Query().Get("category"))
	writeJSON(r.Context(), w, http.StatusOK, KnowledgeListResponse{Knowledge: items, Total: len(items)})
}

// Knowledge returns one knowledge item.
//
// swagger:route GET /training/knowledge/{id} getKnowledge
func (h *TrainingHandler) Knowledge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	item, err := h.training.Knowledge(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to get knowledge")
		return
	}
	writeJSON(ctx, w, http.StatusOK, item)
}

func splitGoals(values []string) []string {
	var goals []string
	for _, v := range values {
		for _, g := range strings.Split(v, ",") {
			if g = strings.TrimSpace(g); g != "" {
				goals = append(goals, g)
			}
		}
	}
	return goals
}
