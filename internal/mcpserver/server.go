// Package mcpserver exposes the publishing and content-idea operations as MCP
// tools so assistants can drive the Meta accounts directly.
package mcpserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"metacontent/internal/service"
)

// Tool names.
const (
	ToolGetPages             = "get_pages"
	ToolPostToFacebookPage   = "post_to_facebook_page"
	ToolPostToInstagram      = "post_to_instagram"
	ToolFacebookPageInsights = "get_facebook_page_insights"
	ToolInstagramInsights    = "get_instagram_insights"
	ToolGenerateContentIdeas = "generate_content_ideas"
)

// New creates an MCP server with every tool registered.
func New(name, version string, publishing *service.PublishingService, content *service.ContentService) *mcp.Server {
	t := &Tools{Publishing: publishing, Content: content}

	srv := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version,
	}, nil)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        ToolGetPages,
		Description: "List the Facebook pages the configured access token can manage",
	}, t.GetPages)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        ToolPostToFacebookPage,
		Description: "Publish a text post, with an optional link, to a Facebook page feed",
	}, t.PostToFacebookPage)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        ToolPostToInstagram,
		Description: "Publish an image with a caption to an Instagram business account",
	}, t.PostToInstagram)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        ToolFacebookPageInsights,
		Description: "Read insights for a Facebook page (metric defaults to page_views)",
	}, t.FacebookPageInsights)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        ToolInstagramInsights,
		Description: "Read insights for an Instagram business account (metric defaults to impressions)",
	}, t.InstagramInsights)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        ToolGenerateContentIdeas,
		Description: "Generate templated content ideas for a topic and platform (facebook, instagram or both)",
	}, t.GenerateContentIdeas)

	return srv
}
