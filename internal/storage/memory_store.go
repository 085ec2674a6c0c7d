package storage

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"metacontent/internal/contextutil"
)

// MemoryStore implements Backend in process memory. Data lives as long as the
// process and is never persisted.
type MemoryStore struct {
	mu        sync.RWMutex
	profile   BusinessProfile
	content   []ContentItem
	images    []TrainingImage
	knowledge []KnowledgeItem
	now       func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Name implements Backend.
func (s *MemoryStore) Name() string {
	return "memory"
}

// IsAvailable implements Backend. The in-memory store is always available.
func (s *MemoryStore) IsAvailable() bool {
	return true
}

// GetBusinessProfile implements Backend. The single slot is returned when id
// is empty or matches.
func (s *MemoryStore) GetBusinessProfile(_ context.Context, id string) BusinessProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id != "" && id != s.profile.ID {
		return BusinessProfile{}
	}
	return cloneProfile(s.profile)
}

// SaveBusinessProfile implements Backend with upsert semantics on the single slot.
func (s *MemoryStore) SaveBusinessProfile(ctx context.Context, profile BusinessProfile) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !s.profile.IsEmpty() {
		profile.ID = s.profile.ID
		profile.CreatedAt = s.profile.CreatedAt
	} else {
		profile.ID = uuid.New().String()
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now
	s.profile = cloneProfile(profile)

	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "saved business profile", "backend", s.Name(), "id", profile.ID)
	return profile.ID
}

// ListContent implements Backend.
func (s *MemoryStore) ListContent(_ context.Context, limit int) []ContentItem {
	if limit <= 0 {
		limit = DefaultContentLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := newestFirst(s.content)
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// CountContent implements Backend.
func (s *MemoryStore) CountContent(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.content)
}

// SaveContent implements Backend.
func (s *MemoryStore) SaveContent(_ context.Context, item ContentItem) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.New().String()
	item.BusinessID = s.profile.ID
	item.CreatedAt = s.now()
	s.content = append(s.content, item)
	return item.ID
}

// ListImages implements Backend.
func (s *MemoryStore) ListImages(_ context.Context, category string) []TrainingImage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	images := newestFirst(s.images)
	if category == "" {
		return images
	}
	return slices.DeleteFunc(images, func(img TrainingImage) bool {
		return img.CategoryOrDefault() != category
	})
}

// SaveImageMetadata implements Backend.
func (s *MemoryStore) SaveImageMetadata(_ context.Context, image TrainingImage) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	image.ID = uuid.New().String()
	image.Category = image.CategoryOrDefault()
	image.BusinessID = s.profile.ID
	image.CreatedAt = s.now()
	s.images = append(s.images, image)
	return image.ID
}

// UploadImageBlob implements Backend. The memory store keeps no blobs, so the
// caller stores metadata without a URL.
func (s *MemoryStore) UploadImageBlob(_ context.Context, _ []byte, _, _ string) string {
	return ""
}

// SaveKnowledge implements Backend.
func (s *MemoryStore) SaveKnowledge(_ context.Context, item KnowledgeItem) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.New().String()
	item.BusinessID = s.profile.ID
	item.CreatedAt = s.now()
	s.knowledge = append(s.knowledge, item)
	return item.ID
}

// ListKnowledge implements Backend.
func (s *MemoryStore) ListKnowledge(_ context.Context, category string) []KnowledgeItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := newestFirst(s.knowledge)
	if category == "" {
		return items
	}
	return slices.DeleteFunc(items, func(item KnowledgeItem) bool {
		return item.Category != category
	})
}

// GetKnowledgeByID implements Backend.
func (s *MemoryStore) GetKnowledgeByID(_ context.Context, id string) (KnowledgeItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.knowledge {
		if item.ID == id {
			return item, true
		}
	}
	return KnowledgeItem{}, false
}

// newestFirst returns a reversed copy of an append-ordered slice.
func newestFirst[T any](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}

func cloneProfile(p BusinessProfile) BusinessProfile {
	p.Goals = slices.Clone(p.Goals)
	return p
}
