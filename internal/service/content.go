package service

import (
	"context"
	"fmt"
	"strings"

	"metacontent/internal/contextutil"
	"metacontent/internal/llm"
	"metacontent/internal/storage"
)

// Platforms accepted by content operations.
const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformBoth      = "both"
)

// Idea generation bounds.
const (
	DefaultIdeaCount = 5
	MaxIdeaCount     = 15
)

var ideaTemplates = []string{
	"Share a behind-the-scenes look at %s",
	"Create a tutorial or how-to about %s",
	"Ask your audience a question about %s",
	"Share tips and tricks related to %s",
	"Post inspirational quotes about %s",
	"Share user-generated content about %s",
	"Create a poll or survey about %s",
	"Share industry news related to %s",
	"Post a carousel of %s facts",
	"Create a before/after post about %s",
	"Share a success story related to %s",
	"Post a funny meme about %s",
	"Create a step-by-step guide for %s",
	"Share your personal experience with %s",
	"Post a comparison related to %s",
}

var platformSuffix = map[string]string{
	PlatformFacebook:  " (optimize with longer text and links)",
	PlatformInstagram: " (use high-quality visuals and hashtags)",
	PlatformBoth:      " (adapt format for each platform)",
}

// IdeaRequest asks for templated content ideas.
type IdeaRequest struct {
	Topic    string
	Platform string
	Count    int
}

// Idea is one generated content idea.
type Idea struct {
	Text     string `json:"text"`
	Platform string `json:"platform"`
}

// SmartPostRequest asks for AI-written post copy with an optional image.
type SmartPostRequest struct {
	Topic         string `json:"topic"`
	Platform      string `json:"platform"`
	Tone          string `json:"tone"`
	GenerateImage bool   `json:"generate_image"`
	ImagePrompt   string `json:"image_prompt"`
	ImageStyle    string `json:"image_style"`
}

// SmartPost is the generated post. Image fields are empty when no image was
// requested or generation failed.
type SmartPost struct {
	Copy        string `json:"copy"`
	Hashtags    string `json:"hashtags"`
	Platform    string `json:"platform"`
	ImageURL    string `json:"image_url,omitempty"`
	ImagePrompt string `json:"image_prompt,omitempty"`
}

// ContentService generates post ideas and AI-assisted posts.
type ContentService struct {
	llm      LLMClient
	images   ImageGenerator
	contexts ContextProvider
	backend  storage.Backend
}

// NewContentService creates a ContentService. llmClient and images may be nil
// when the corresponding integration is not configured.
func NewContentService(llmClient LLMClient, images ImageGenerator, contexts ContextProvider, backend storage.Backend) *ContentService {
	return &ContentService{
		llm:      llmClient,
		images:   images,
		contexts: contexts,
		backend:  backend,
	}
}

// GenerateIdeas returns templated ideas for a topic. Count defaults to
// DefaultIdeaCount and is clamped to 1..MaxIdeaCount.
func (s *ContentService) GenerateIdeas(ctx context.Context, req IdeaRequest) ([]Idea, error) {
	topic := strings.TrimSpace(req.Topic)
	if err := required("topic", topic); err != nil {
		return nil, err
	}
	platform, err := normalizePlatform(req.Platform)
	if err != nil {
		return nil, err
	}

	count := req.Count
	if count == 0 {
		count = DefaultIdeaCount
	}
	count = min(MaxIdeaCount, max(1, count))

	ideas := make([]Idea, 0, count)
	for _, tmpl := range ideaTemplates[:count] {
		ideas = append(ideas, Idea{
			Text:     fmt.Sprintf(tmpl, topic) + platformSuffix[platform],
			Platform: platform,
		})
	}

	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "generated content ideas", "platform", platform, "count", len(ideas))
	return ideas, nil
}

// CreateSmartPost writes post copy personalized with the training context and,
// when requested, an image. Image failure is logged and leaves the image
// fields empty.
func (s *ContentService) CreateSmartPost(ctx context.Context, req SmartPostRequest) (SmartPost, error) {
	logger := contextutil.LoggerFromContext(ctx)

	topic := strings.TrimSpace(req.Topic)
	if err := required("topic", topic); err != nil {
		return SmartPost{}, err
	}
	platform, err := normalizePlatform(req.Platform)
	if err != nil {
		return SmartPost{}, err
	}
	if s.llm == nil {
		return SmartPost{}, &NotConfiguredError{Integration: "LLM"}
	}

	tc := s.contexts.GetContext(ctx, "")
	knowledge := s.backend.ListKnowledge(ctx, "")

	tone := strings.TrimSpace(req.Tone)
	if tone == "" {
		tone = tc.BusinessProfile.BrandVoice
	}
	if tone == "" {
		tone = "friendly and engaging"
	}

	userPrompt := fmt.Sprintf(
		"Write a %s post about %q in a %s tone.\n"+
			"Respond exactly in this format:\n%s <post text>\n%s <space separated hashtags>",
		platformLabel(platform), topic, tone, llm.CopyMarker, llm.HashtagsMarker,
	)

	reply, err := s.llm.ChatWithMessages(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: businessPrompt("a social media copywriter", tc, knowledge)},
		{Role: llm.RoleUser, Content: userPrompt},
	}, llm.ChatParams{MaxTokens: 600, Temperature: 0.8})
	if err != nil {
		logger.ErrorContext(ctx, "failed to generate post copy", "error", err)
		return SmartPost{}, WrapError(err, "failed to generate post copy")
	}

	copyText, hashtags := llm.ParseCopy(reply)
	post := SmartPost{Copy: copyText, Hashtags: hashtags, Platform: platform}

	if req.GenerateImage {
		s.attachImage(ctx, &post, req, topic)
	}

	logger.InfoContext(ctx, "smart post created",
		"platform", platform,
		"copy_length", len(post.Copy),
		"has_image", post.ImageURL != "",
	)
	return post, nil
}

func (s *ContentService) attachImage(ctx context.Context, post *SmartPost, req SmartPostRequest, topic string) {
	logger := contextutil.LoggerFromContext(ctx)
	if s.images == nil {
		logger.WarnContext(ctx, "image requested but image generation is not configured")
		return
	}

	subject := strings.TrimSpace(req.ImagePrompt)
	if subject == "" {
		subject = topic
	}
	prompt := llm.EnhancePrompt(subject, req.ImageStyle)

	url, err := s.images.Generate(ctx, prompt)
	if err != nil {
		logger.WarnContext(ctx, "image generation failed, returning copy only", "error", err)
		return
	}
	post.ImageURL = url
	post.ImagePrompt = prompt
}

func normalizePlatform(raw string) (string, error) {
	platform := strings.ToLower(strings.TrimSpace(raw))
	if platform == "" {
		return PlatformBoth, nil
	}
	if _, ok := platformSuffix[platform]; !ok {
		return "", &ValidationError{Field: "platform", Message: "must be facebook, instagram or both"}
	}
	return platform, nil
}

func platformLabel(platform string) string {
	switch platform {
	case PlatformFacebook:
		return "Facebook"
	case PlatformInstagram:
		return "Instagram"
	default:
		return "Facebook and Instagram"
	}
}
