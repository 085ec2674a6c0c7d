package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"metacontent/internal/contextutil"
	"metacontent/internal/service"
)

// Tools holds the services behind the tool handlers.
type Tools struct {
	Publishing *service.PublishingService
	Content    *service.ContentService
}

// PostToFacebookPageInput is the argument of post_to_facebook_page.
type PostToFacebookPageInput struct {
	PageID  string `json:"page_id" jsonschema:"Facebook page id"`
	Message string `json:"message" jsonschema:"Post text"`
	Link    string `json:"link,omitempty" jsonschema:"Optional link to attach"`
}

// PostToInstagramInput is the argument of post_to_instagram.
type PostToInstagramInput struct {
	InstagramAccountID string `json:"instagram_account_id" jsonschema:"Instagram business account id"`
	ImageURL           string `json:"image_url" jsonschema:"Publicly reachable image URL"`
	Caption            string `json:"caption,omitempty" jsonschema:"Post caption"`
}

// FacebookPageInsightsInput is the argument of get_facebook_page_insights.
type FacebookPageInsightsInput struct {
	PageID string `json:"page_id" jsonschema:"Facebook page id"`
	Metric string `json:"metric,omitempty" jsonschema:"Insights metric (default page_views)"`
	Period string `json:"period,omitempty" jsonschema:"Aggregation period (default day)"`
}

// InstagramInsightsInput is the argument of get_instagram_insights.
type InstagramInsightsInput struct {
	InstagramAccountID string `json:"instagram_account_id" jsonschema:"Instagram business account id"`
	Metric             string `json:"metric,omitempty" jsonschema:"Insights metric (default impressions)"`
	Period             string `json:"period,omitempty" jsonschema:"Aggregation period (default day)"`
}

// GenerateContentIdeasInput is the argument of generate_content_ideas.
type GenerateContentIdeasInput struct {
	Topic    string `json:"topic" jsonschema:"What the ideas should be about"`
	Platform string `json:"platform,omitempty" jsonschema:"facebook, instagram or both (default both)"`
	Count    int    `json:"count,omitempty" jsonschema:"Number of ideas, 1 to 15 (default 5)"`
}

// GetPages returns {pages} for the configured access token.
func (t *Tools) GetPages(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	pages, err := t.Publishing.ListPages(ctx)
	if err != nil {
		return toolFailure(ctx, ToolGetPages, err), nil, nil
	}
	return toolJSON(map[string]any{"pages": pages})
}

// PostToFacebookPage publishes to a page feed and returns {success, id}.
func (t *Tools) PostToFacebookPage(ctx context.Context, _ *mcp.CallToolRequest, input PostToFacebookPageInput) (*mcp.CallToolResult, any, error) {
	id, err := t.Publishing.PostToFacebook(ctx, service.FacebookPostRequest{
		PageID:  input.PageID,
		Message: input.Message,
		Link:    input.Link,
	})
	if err != nil {
		return toolFailure(ctx, ToolPostToFacebookPage, err), nil, nil
	}
	return toolJSON(map[string]any{"success": true, "id": id})
}

// PostToInstagram runs the container then publish flow and returns
// {success, id, creation_id}.
func (t *Tools) PostToInstagram(ctx context.Context, _ *mcp.CallToolRequest, input PostToInstagramInput) (*mcp.CallToolResult, any, error) {
	post, err := t.Publishing.PostToInstagram(ctx, service.InstagramPostRequest{
		AccountID: input.InstagramAccountID,
		ImageURL:  input.ImageURL,
		Caption:   input.Caption,
	})
	if err != nil {
		return toolFailure(ctx, ToolPostToInstagram, err), nil, nil
	}
	return toolJSON(map[string]any{"success": true, "id": post.ID, "creation_id": post.CreationID})
}

// FacebookPageInsights returns {insights} for a page.
func (t *Tools) FacebookPageInsights(ctx context.Context, _ *mcp.CallToolRequest, input FacebookPageInsightsInput) (*mcp.CallToolResult, any, error) {
	insights, err := t.Publishing.FacebookInsights(ctx, service.InsightsRequest{
		ObjectID: input.PageID,
		Metric:   input.Metric,
		Period:   input.Period,
	})
	if err != nil {
		return toolFailure(ctx, ToolFacebookPageInsights, err), nil, nil
	}
	return toolJSON(map[string]any{"insights": insights})
}

// InstagramInsights returns {insights} for an Instagram account.
func (t *Tools) InstagramInsights(ctx context.Context, _ *mcp.CallToolRequest, input InstagramInsightsInput) (*mcp.CallToolResult, any, error) {
	insights, err := t.Publishing.InstagramInsights(ctx, service.InsightsRequest{
		ObjectID: input.InstagramAccountID,
		Metric:   input.Metric,
		Period:   input.Period,
	})
	if err != nil {
		return toolFailure(ctx, ToolInstagramInsights, err), nil, nil
	}
	return toolJSON(map[string]any{"insights": insights})
}

// GenerateContentIdeas returns {ideas} built from the idea templates.
func (t *Tools) GenerateContentIdeas(ctx context.Context, _ *mcp.CallToolRequest, input GenerateContentIdeasInput) (*mcp.CallToolResult, any, error) {
	ideas, err := t.Content.GenerateIdeas(ctx, service.IdeaRequest{
		Topic:    input.Topic,
		Platform: input.Platform,
		Count:    input.Count,
	})
	if err != nil {
		return toolFailure(ctx, ToolGenerateContentIdeas, err), nil, nil
	}
	return toolJSON(map[string]any{"ideas": ideas})
}

// toolFailure logs err and reports it to the caller as a tool error rather
// than a protocol error.
func toolFailure(ctx context.Context, tool string, err error) *mcp.CallToolResult {
	contextutil.LoggerFromContext(ctx).WarnContext(ctx, "tool call failed", "tool", tool, "error", err)
	return toolError("%s failed: %v", tool, err)
}

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
