package handlers

import (
	"net/http"

	"metacontent/internal/graph"
	"metacontent/internal/service"
)

// MetaHandler exposes Facebook and Instagram publishing and insights.
type MetaHandler struct {
	publishing *service.PublishingService
}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler(publishing *service.PublishingService) *MetaHandler {
	return &MetaHandler{publishing: publishing}
}

// PagesResponse lists the pages the token can manage.
//
// swagger:model PagesResponse
type PagesResponse struct {
	Pages []graph.Page `json:"pages"`
}

// PostResponse reports a published post.
//
// swagger:model PostResponse
type PostResponse struct {
	Success    bool   `json:"success"`
	ID         string `json:"id"`
	CreationID string `json:"creation_id,omitempty"`
}

// InsightsResponse carries reshaped insight values.
//
// swagger:model InsightsResponse
type InsightsResponse struct {
	Insights []graph.Insight `json:"insights"`
}

// ListPages returns the managed Facebook pages.
//
// swagger:route GET /api/pages listPages
func (h *MetaHandler) ListPages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pages, err := h.publishing.ListPages(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list pages")
		return
	}
	writeJSON(ctx, w, http.StatusOK, PagesResponse{Pages: pages})
}

// PostFacebook publishes a text post to a page.
//
// swagger:route POST /post-facebook postFacebook
func (h *MetaHandler) PostFacebook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := h.publishing.PostToFacebook(ctx, service.FacebookPostRequest{
		PageID:  r.FormValue("page_id"),
		Message: r.FormValue("message"),
		Link:    r.FormValue("link"),
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to post to Facebook")
		return
	}
	writeJSON(ctx, w, http.StatusOK, PostResponse{Success: true, ID: id})
}

// PostInstagram publishes an image post to an Instagram business account.
//
// swagger:route POST /post-instagram postInstagram
func (h *MetaHandler) PostInstagram(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	post, err := h.publishing.PostToInstagram(ctx, service.InstagramPostRequest{
		AccountID: r.FormValue("instagram_account_id"),
		ImageURL:  r.FormValue("image_url"),
		Caption:   r.FormValue("caption"),
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to post to Instagram")
		return
	}
	writeJSON(ctx, w, http.StatusOK, PostResponse{Success: true, ID: post.ID, CreationID: post.CreationID})
}

// FacebookInsights returns page insights.
//
// swagger:route POST /facebook-insights facebookInsights
func (h *MetaHandler) FacebookInsights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	insights, err := h.publishing.FacebookInsights(ctx, service.InsightsRequest{
		ObjectID: r.FormValue("page_id"),
		Metric:   r.FormValue("metric"),
		Period:   r.FormValue("period"),
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to get Facebook insights")
		return
	}
	writeJSON(ctx, w, http.StatusOK, InsightsResponse{Insights: insights})
}

// InstagramInsights returns account insights.
//
// swagger:route POST /instagram-insights instagramInsights
func (h *MetaHandler) InstagramInsights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	insights, err := h.publishing.InstagramInsights(ctx, service.InsightsRequest{
		ObjectID: r.FormValue("instagram_account_id"),
		Metric:   r.FormValue("metric"),
		Period:   r.FormValue("period"),
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to get Instagram insights")
		return
	}
	writeJSON(ctx, w, http.StatusOK, InsightsResponse{Insights: insights})
}
