package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"metacontent/internal/contextutil"
	"metacontent/internal/knowledge"
	"metacontent/internal/storage"
)

// MaxImageBytes bounds a single training image upload.
const MaxImageBytes = 10 << 20

// SaveResult reports where a training record was stored.
type SaveResult struct {
	ID      string `json:"id"`
	Storage string `json:"storage"`
}

// ImageUpload is an image file received from a client.
type ImageUpload struct {
	Filename    string
	ContentType string
	Category    string
	Data        []byte
}

// ImageResult describes a stored training image.
type ImageResult struct {
	ID     string `json:"id"`
	URL    string `json:"url,omitempty"`
	Source string `json:"source"`
}

// KnowledgeInput is a knowledge item as submitted. An empty Category is
// filled in by the categorizer.
type KnowledgeInput struct {
	Category   string
	Title      string
	Content    string
	Importance string
}

// Categorizer assigns a knowledge category.
type Categorizer interface {
	Categorize(ctx context.Context, title, content string) (Categorization, error)
}

// TrainingService manages the business training data.
type TrainingService struct {
	backend     storage.Backend
	contexts    ContextProvider
	categorizer Categorizer
}

// NewTrainingService creates a TrainingService over a single selected backend.
func NewTrainingService(backend storage.Backend, contexts ContextProvider, categorizer Categorizer) *TrainingService {
	return &TrainingService{
		backend:     backend,
		contexts:    contexts,
		categorizer: categorizer,
	}
}

// StorageName returns the name of the backend in use.
func (s *TrainingService) StorageName() string {
	return s.backend.Name()
}

// SaveProfile creates or updates the business profile.
func (s *TrainingService) SaveProfile(ctx context.Context, profile storage.BusinessProfile) (SaveResult, error) {
	profile.Name = strings.TrimSpace(profile.Name)
	if err := required("name", profile.Name); err != nil {
		return SaveResult{}, err
	}
	profile.Goals = cleanList(profile.Goals)

	id := s.backend.SaveBusinessProfile(ctx, profile)
	if id == "" {
		return SaveResult{}, WrapError(ErrExternalService, "failed to save business profile")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "business profile saved", "id", id, "storage", s.backend.Name())
	return SaveResult{ID: id, Storage: s.backend.Name()}, nil
}

// Profile returns the stored business profile, or an empty one.
func (s *TrainingService) Profile(ctx context.Context) storage.BusinessProfile {
	return s.backend.GetBusinessProfile(ctx, "")
}

// SaveContent stores an example post.
func (s *TrainingService) SaveContent(ctx context.Context, item storage.ContentItem) (SaveResult, error) {
	item.PostContent = strings.TrimSpace(item.PostContent)
	if err := required("post_content", item.PostContent); err != nil {
		return SaveResult{}, err
	}
	platform, err := normalizePlatform(item.Platform)
	if err != nil {
		return SaveResult{}, err
	}
	item.Platform = platform

	id := s.backend.SaveContent(ctx, item)
	if id == "" {
		return SaveResult{}, WrapError(ErrExternalService, "failed to save content")
	}
	return SaveResult{ID: id, Storage: s.backend.Name()}, nil
}

// ListContent returns up to limit content items, newest first.
func (s *TrainingService) ListContent(ctx context.Context, limit int) []storage.ContentItem {
	return nonNil(s.backend.ListContent(ctx, limit))
}

// UploadImage stores an image blob when the backend supports it and records
// its metadata. Without blob storage the metadata is kept with source
// upload_fallback and no URL.
func (s *TrainingService) UploadImage(ctx context.Context, upload ImageUpload) (ImageResult, error) {
	if err := required("file", upload.Filename); err != nil {
		return ImageResult{}, err
	}
	if len(upload.Data) == 0 {
		return ImageResult{}, &ValidationError{Field: "file", Message: "is empty"}
	}
	if len(upload.Data) > MaxImageBytes {
		return ImageResult{}, &ValidationError{Field: "file", Message: fmt.Sprintf("exceeds %d bytes", MaxImageBytes)}
	}
	if upload.ContentType != "" && !strings.HasPrefix(upload.ContentType, "image/") {
		return ImageResult{}, &ValidationError{Field: "file", Message: "must be an image"}
	}

	stored := uuid.New().String() + strings.ToLower(filepath.Ext(upload.Filename))
	url := s.backend.UploadImageBlob(ctx, upload.Data, stored, upload.ContentType)

	source := storage.SourceUpload
	if url == "" {
		source = storage.SourceUploadFallback
	}

	id := s.backend.SaveImageMetadata(ctx, storage.TrainingImage{
		Filename:    filepath.Base(upload.Filename),
		StoragePath: stored,
		URL:         url,
		Category:    strings.TrimSpace(upload.Category),
		Source:      source,
		FileSize:    int64(len(upload.Data)),
	})
	if id == "" {
		return ImageResult{}, WrapError(ErrExternalService, "failed to save image metadata")
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "training image stored", "id", id, "source", source, "bytes", len(upload.Data))
	return ImageResult{ID: id, URL: url, Source: source}, nil
}

// ListImages returns image metadata, optionally filtered by category.
func (s *TrainingService) ListImages(ctx context.Context, category string) []storage.TrainingImage {
	return nonNil(s.backend.ListImages(ctx, strings.TrimSpace(category)))
}

// SaveKnowledge stores a knowledge item, categorizing it when no category is given.
func (s *TrainingService) SaveKnowledge(ctx context.Context, in KnowledgeInput) (storage.KnowledgeItem, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if err := required("title", title); err != nil {
		return storage.KnowledgeItem{}, err
	}
	if err := required("content", content); err != nil {
		return storage.KnowledgeItem{}, err
	}

	var category knowledge.Category
	if strings.TrimSpace(in.Category) != "" {
		category = knowledge.NormalizeCategory(in.Category)
	} else {
		result, err := s.categorizer.Categorize(ctx, title, content)
		if err != nil {
			return storage.KnowledgeItem{}, err
		}
		category = result.Category
	}

	item := storage.KnowledgeItem{
		Category:   string(category),
		Title:      title,
		Content:    content,
		Importance: knowledge.NormalizeImportance(in.Importance),
	}
	item.ID = s.backend.SaveKnowledge(ctx, item)
	if item.ID == "" {
		return storage.KnowledgeItem{}, WrapError(ErrExternalService, "failed to save knowledge")
	}
	return item, nil
}

// ListKnowledge returns knowledge items, optionally filtered by category.
func (s *TrainingService) ListKnowledge(ctx context.Context, category string) []storage.KnowledgeItem {
	return nonNil(s.backend.ListKnowledge(ctx, strings.ToLower(strings.TrimSpace(category))))
}

// Knowledge returns one knowledge item by id.
func (s *TrainingService) Knowledge(ctx context.Context, id string) (storage.KnowledgeItem, error) {
	item, ok := s.backend.GetKnowledgeByID(ctx, id)
	if !ok {
		return storage.KnowledgeItem{}, &NotFoundError{Resource: "knowledge item", ID: id}
	}
	return item, nil
}

// Context returns the aggregated training context.
func (s *TrainingService) Context(ctx context.Context) storage.TrainingContext {
	return s.contexts.GetContext(ctx, "")
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
