package service

import (
	"context"
	"strings"

	"metacontent/internal/contextutil"
	"metacontent/internal/graph"
)

// Insight defaults.
const (
	DefaultFacebookMetric  = "page_views"
	DefaultInstagramMetric = "impressions"
	DefaultInsightsPeriod  = "day"
)

// FacebookPostRequest publishes text (and an optional link) to a page.
type FacebookPostRequest struct {
	PageID  string
	Message string
	Link    string
}

// InstagramPostRequest publishes an image to an Instagram business account.
type InstagramPostRequest struct {
	AccountID string
	ImageURL  string
	Caption   string
}

// InsightsRequest selects a metric for a page or account.
type InsightsRequest struct {
	ObjectID string
	Metric   string
	Period   string
}

// PublishingService publishes to and reads analytics from the Graph API.
type PublishingService struct {
	graph SocialGraph
}

// NewPublishingService creates a PublishingService. g may be nil when no
// access token is configured.
func NewPublishingService(g SocialGraph) *PublishingService {
	return &PublishingService{graph: g}
}

// ListPages returns the pages the token can manage.
func (s *PublishingService) ListPages(ctx context.Context) ([]graph.Page, error) {
	if err := s.configured(); err != nil {
		return nil, err
	}
	pages, err := s.graph.ListPages(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to fetch pages")
	}
	return pages, nil
}

// PostToFacebook publishes to a page feed and returns the post id.
func (s *PublishingService) PostToFacebook(ctx context.Context, req FacebookPostRequest) (string, error) {
	pageID := strings.TrimSpace(req.PageID)
	if err := required("page_id", pageID); err != nil {
		return "", err
	}
	if err := required("message", strings.TrimSpace(req.Message)); err != nil {
		return "", err
	}
	if err := s.configured(); err != nil {
		return "", err
	}

	id, err := s.graph.PublishPagePost(ctx, pageID, req.Message, strings.TrimSpace(req.Link))
	if err != nil {
		return "", WrapError(err, "failed to post to Facebook")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "posted to facebook", "page_id", pageID, "post_id", id)
	return id, nil
}

// PostToInstagram runs the two-step container then publish flow.
func (s *PublishingService) PostToInstagram(ctx context.Context, req InstagramPostRequest) (graph.InstagramPost, error) {
	accountID := strings.TrimSpace(req.AccountID)
	imageURL := strings.TrimSpace(req.ImageURL)
	if err := required("instagram_account_id", accountID); err != nil {
		return graph.InstagramPost{}, err
	}
	if err := required("image_url", imageURL); err != nil {
		return graph.InstagramPost{}, err
	}
	if err := s.configured(); err != nil {
		return graph.InstagramPost{}, err
	}

	post, err := s.graph.PublishInstagramImage(ctx, accountID, imageURL, req.Caption)
	if err != nil {
		return graph.InstagramPost{}, WrapError(err, "failed to post to Instagram")
	}
	return post, nil
}

// FacebookInsights reads page insights. Metric defaults to page_views and
// period to day.
func (s *PublishingService) FacebookInsights(ctx context.Context, req InsightsRequest) ([]graph.Insight, error) {
	if err := required("page_id", strings.TrimSpace(req.ObjectID)); err != nil {
		return nil, err
	}
	return s.insights(ctx, req, DefaultFacebookMetric)
}

// InstagramInsights reads account insights. Metric defaults to impressions and
// period to day.
func (s *PublishingService) InstagramInsights(ctx context.Context, req InsightsRequest) ([]graph.Insight, error) {
	if err := required("instagram_account_id", strings.TrimSpace(req.ObjectID)); err != nil {
		return nil, err
	}
	return s.insights(ctx, req, DefaultInstagramMetric)
}

func (s *PublishingService) insights(ctx context.Context, req InsightsRequest, defaultMetric string) ([]graph.Insight, error) {
	if err := s.configured(); err != nil {
		return nil, err
	}

	metric := strings.TrimSpace(req.Metric)
	if metric == "" {
		metric = defaultMetric
	}
	period := strings.TrimSpace(req.Period)
	if period == "" {
		period = DefaultInsightsPeriod
	}

	insights, err := s.graph.Insights(ctx, strings.TrimSpace(req.ObjectID), metric, period)
	if err != nil {
		return nil, WrapError(err, "failed to fetch insights")
	}
	return insights, nil
}

func (s *PublishingService) configured() error {
	if s.graph == nil {
		return &NotConfiguredError{Integration: "Meta access token"}
	}
	return nil
}
