package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm_client.go -package=mocks metacontent/internal/service LLMClient
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_image_generator.go -package=mocks metacontent/internal/service ImageGenerator
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_social_graph.go -package=mocks metacontent/internal/service SocialGraph
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_score_store.go -package=mocks metacontent/internal/service ScoreStore

import (
	"context"

	"metacontent/internal/graph"
	"metacontent/internal/llm"
	"metacontent/internal/storage"
)

// LLMClient is the chat-completion capability the services need.
type LLMClient interface {
	// ChatWithMessages sends a conversation and returns the reply text.
	ChatWithMessages(ctx context.Context, messages []llm.Message, params llm.ChatParams) (string, error)
}

// ImageGenerator produces one image URL for a prompt.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// SocialGraph is the subset of the Graph API used for publishing and analytics.
type SocialGraph interface {
	ListPages(ctx context.Context) ([]graph.Page, error)
	PublishPagePost(ctx context.Context, pageID, message, link string) (string, error)
	PublishInstagramImage(ctx context.Context, accountID, imageURL, caption string) (graph.InstagramPost, error)
	Insights(ctx context.Context, objectID, metric, period string) ([]graph.Insight, error)
}

// ScoreStore persists knowledge-test results.
type ScoreStore interface {
	Save(ctx context.Context, score storage.TestScore) (storage.TestScore, error)
	List(ctx context.Context, limit int) ([]storage.TestScore, error)
	Average(ctx context.Context) (float64, int, error)
}

// ContextProvider assembles the training context used to personalize prompts.
type ContextProvider interface {
	GetContext(ctx context.Context, businessID string) storage.TrainingContext
}
