package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_backend.go -package=mocks metacontent/internal/storage Backend

import (
	"context"
	"log/slog"
)

// DefaultContentLimit is the page size used by ListContent when limit <= 0.
const DefaultContentLimit = 50

// Backend persists the training knowledge of the single business.
//
// No method returns an error: a failing or unreachable store logs the cause
// and answers with an empty value ("" id, nil slice, zero profile) so that
// read paths never fail the caller.
type Backend interface {
	// Name identifies the backend in logs and responses ("remote" or "memory").
	Name() string
	// IsAvailable reports whether the backend can serve requests.
	IsAvailable() bool

	// GetBusinessProfile returns the profile with id, or the first profile when id is empty.
	GetBusinessProfile(ctx context.Context, id string) BusinessProfile
	// SaveBusinessProfile updates the existing profile or inserts a new one and returns its id.
	SaveBusinessProfile(ctx context.Context, profile BusinessProfile) string

	// ListContent returns up to limit content items, newest first.
	ListContent(ctx context.Context, limit int) []ContentItem
	// CountContent returns the size of the whole content library.
	CountContent(ctx context.Context) int
	// SaveContent stores a content item and returns its id.
	SaveContent(ctx context.Context, item ContentItem) string

	// ListImages returns image metadata, optionally filtered by category.
	ListImages(ctx context.Context, category string) []TrainingImage
	// SaveImageMetadata stores image metadata and returns its id.
	SaveImageMetadata(ctx context.Context, image TrainingImage) string
	// UploadImageBlob stores image bytes and returns a public URL, or "" when
	// the backend has no blob storage.
	UploadImageBlob(ctx context.Context, data []byte, filename, contentType string) string

	// SaveKnowledge stores a knowledge item and returns its id.
	SaveKnowledge(ctx context.Context, item KnowledgeItem) string
	// ListKnowledge returns knowledge items, newest first, optionally filtered by category.
	ListKnowledge(ctx context.Context, category string) []KnowledgeItem
	// GetKnowledgeByID returns the knowledge item with id.
	GetKnowledgeByID(ctx context.Context, id string) (KnowledgeItem, bool)
}

// Select returns remote when it is available and fallback otherwise. The
// choice is made once by the caller so a single logical operation never mixes
// data from both backends.
func Select(remote, fallback Backend) Backend {
	if remote != nil && remote.IsAvailable() {
		slog.Info("Using remote training store", "backend", remote.Name())
		return remote
	}
	slog.Warn("Remote training store not configured, using in-memory fallback", "backend", fallback.Name())
	return fallback
}
