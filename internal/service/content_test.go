package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"metacontent/internal/llm"
	"metacontent/internal/outbound"
	"metacontent/internal/service"
	"metacontent/internal/service/mocks"
	"metacontent/internal/storage"
	"metacontent/internal/training"

	"go.uber.org/mock/gomock"
)

func init() {
	// Discard logs from slog.Default() for cleaner test output.
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testContext() context.Context {
	return context.Background()
}

func newContentService(llmClient service.LLMClient, images service.ImageGenerator) (*service.ContentService, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return service.NewContentService(llmClient, images, training.NewAggregator(store), store), store
}

func TestContentService_GenerateIdeas(t *testing.T) {
	svc, _ := newContentService(nil, nil)

	tests := []struct {
		name         string
		req          service.IdeaRequest
		wantCount    int
		wantFirst    string
		wantPlatform string
		wantErrField string
	}{
		{
			name:         "defaults",
			req:          service.IdeaRequest{Topic: "yoga"},
			wantCount:    5,
			wantFirst:    "Share a behind-the-scenes look at yoga (adapt format for each platform)",
			wantPlatform: "both",
		},
		{
			name:         "instagram suffix",
			req:          service.IdeaRequest{Topic: "latte art", Platform: "Instagram", Count: 2},
			wantCount:    2,
			wantFirst:    "Share a behind-the-scenes look at latte art (use high-quality visuals and hashtags)",
			wantPlatform: "instagram",
		},
		{
			name:         "count clamped high",
			req:          service.IdeaRequest{Topic: "yoga", Platform: "facebook", Count: 40},
			wantCount:    15,
			wantFirst:    "Share a behind-the-scenes look at yoga (optimize with longer text and links)",
			wantPlatform: "facebook",
		},
		{
			name:         "count clamped low",
			req:          service.IdeaRequest{Topic: "yoga", Count: -3},
			wantCount:    1,
			wantFirst:    "Share a behind-the-scenes look at yoga (adapt format for each platform)",
			wantPlatform: "both",
		},
		{
			name:         "missing topic",
			req:          service.IdeaRequest{Topic: "   "},
			wantErrField: "topic",
		},
		{
			name:         "unknown platform",
			req:          service.IdeaRequest{Topic: "yoga", Platform: "tiktok"},
			wantErrField: "platform",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ideas, err := svc.GenerateIdeas(testContext(), tt.req)

			if tt.wantErrField != "" {
				var validationErr *service.ValidationError
				if !errors.As(err, &validationErr) || validationErr.Field != tt.wantErrField {
					t.Fatalf("GenerateIdeas() error = %v, want ValidationError on %s", err, tt.wantErrField)
				}
				return
			}
			if err != nil {
				t.Fatalf("GenerateIdeas() unexpected error: %v", err)
			}
			if len(ideas) != tt.wantCount {
				t.Fatalf("GenerateIdeas() returned %d ideas, want %d", len(ideas), tt.wantCount)
			}
			if ideas[0].Text != tt.wantFirst {
				t.Errorf("GenerateIdeas()[0].Text = %q, want %q", ideas[0].Text, tt.wantFirst)
			}
			for _, idea := range ideas {
				if idea.Platform != tt.wantPlatform {
					t.Errorf("idea.Platform = %q, want %q", idea.Platform, tt.wantPlatform)
				}
			}
		})
	}
}

func TestContentService_CreateSmartPost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLLM := mocks.NewMockLLMClient(ctrl)
	mockImages := mocks.NewMockImageGenerator(ctrl)
	svc, store := newContentService(mockLLM, mockImages)

	ctx := testContext()
	store.SaveBusinessProfile(ctx, storage.BusinessProfile{Name: "Sunrise Yoga", BrandVoice: "calm"})
	store.SaveKnowledge(ctx, storage.KnowledgeItem{Category: "pricing", Title: "Drop-in", Content: "$20 per class"})

	mockLLM.EXPECT().
		ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, messages []llm.Message, _ llm.ChatParams) (string, error) {
			if len(messages) != 2 || messages[0].Role != llm.RoleSystem {
				t.Fatalf("unexpected messages %+v", messages)
			}
			if !strings.Contains(messages[0].Content, "Sunrise Yoga") || !strings.Contains(messages[0].Content, "$20 per class") {
				t.Errorf("system prompt missing training context: %q", messages[0].Content)
			}
			if !strings.Contains(messages[1].Content, "calm") {
				t.Errorf("user prompt should fall back to the brand voice: %q", messages[1].Content)
			}
			return "COPY: Breathe in the morning.\nHASHTAGS: #yoga #calm", nil
		})
	mockImages.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			if !strings.HasPrefix(prompt, "sunrise class, watercolor style") {
				t.Errorf("Generate() prompt = %q", prompt)
			}
			return "https://img.example.com/1.png", nil
		})

	post, err := svc.CreateSmartPost(ctx, service.SmartPostRequest{
		Topic:         "morning classes",
		Platform:      "instagram",
		GenerateImage: true,
		ImagePrompt:   "sunrise class",
		ImageStyle:    "watercolor",
	})
	if err != nil {
		t.Fatalf("CreateSmartPost() error = %v", err)
	}
	if post.Copy != "Breathe in the morning." || post.Hashtags != "#yoga #calm" {
		t.Errorf("CreateSmartPost() copy/hashtags = %q / %q", post.Copy, post.Hashtags)
	}
	if post.ImageURL != "https://img.example.com/1.png" || post.ImagePrompt == "" {
		t.Errorf("CreateSmartPost() image = %q / %q", post.ImageURL, post.ImagePrompt)
	}
	if post.Platform != "instagram" {
		t.Errorf("CreateSmartPost() platform = %q, want instagram", post.Platform)
	}
}

func TestContentService_CreateSmartPost_ImageFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLLM := mocks.NewMockLLMClient(ctrl)
	mockImages := mocks.NewMockImageGenerator(ctrl)
	svc, _ := newContentService(mockLLM, mockImages)

	mockLLM.EXPECT().ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return("COPY: Hello there.", nil)
	mockImages.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", &outbound.TransportError{Cause: context.DeadlineExceeded})

	post, err := svc.CreateSmartPost(testContext(), service.SmartPostRequest{Topic: "news", GenerateImage: true})
	if err != nil {
		t.Fatalf("CreateSmartPost() error = %v, want copy without image", err)
	}
	if post.Copy != "Hello there." || post.Hashtags != "" {
		t.Errorf("CreateSmartPost() = %+v", post)
	}
	if post.ImageURL != "" || post.ImagePrompt != "" {
		t.Errorf("CreateSmartPost() image fields should be empty, got %+v", post)
	}
}

func TestContentService_CreateSmartPost_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("not configured", func(t *testing.T) {
		svc, _ := newContentService(nil, nil)
		_, err := svc.CreateSmartPost(testContext(), service.SmartPostRequest{Topic: "news"})
		if !errors.Is(err, service.ErrNotConfigured) {
			t.Errorf("CreateSmartPost() error = %v, want ErrNotConfigured", err)
		}
	})

	t.Run("validation before llm", func(t *testing.T) {
		svc, _ := newContentService(mocks.NewMockLLMClient(ctrl), nil)
		_, err := svc.CreateSmartPost(testContext(), service.SmartPostRequest{})
		if !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("CreateSmartPost() error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("remote error is wrapped", func(t *testing.T) {
		mockLLM := mocks.NewMockLLMClient(ctrl)
		mockLLM.EXPECT().ChatWithMessages(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", &outbound.RemoteAPIError{StatusCode: 429, Message: "rate limited"})
		svc, _ := newContentService(mockLLM, nil)

		_, err := svc.CreateSmartPost(testContext(), service.SmartPostRequest{Topic: "news"})
		var apiErr *outbound.RemoteAPIError
		if !errors.As(err, &apiErr) || apiErr.Message != "rate limited" {
			t.Errorf("CreateSmartPost() error = %v, want wrapped RemoteAPIError", err)
		}
	})
}
