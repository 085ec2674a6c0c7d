// Package training assembles the business training context handed to AI
// personalization.
package training

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"metacontent/internal/contextutil"
	"metacontent/internal/storage"
)

// MaxContentExamples is the number of newest content items included in a context.
const MaxContentExamples = 5

// Aggregator builds TrainingContext values from a single backend.
type Aggregator struct {
	backend storage.Backend
}

// NewAggregator creates an Aggregator reading from backend.
func NewAggregator(backend storage.Backend) *Aggregator {
	return &Aggregator{backend: backend}
}

// GetContext reads the profile, content library and images concurrently and
// combines them. It never fails: a backend that returns empty values yields a
// zero-valued context.
//
// businessID selects the profile only. Content and images belong to the single
// business the backend serves, so they are not filtered.
func (a *Aggregator) GetContext(ctx context.Context, businessID string) storage.TrainingContext {
	var (
		profile storage.BusinessProfile
		content []storage.ContentItem
		total   int
		images  []storage.TrainingImage
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile = a.backend.GetBusinessProfile(gctx, businessID)
		return nil
	})
	g.Go(func() error {
		content = a.backend.ListContent(gctx, MaxContentExamples)
		return nil
	})
	g.Go(func() error {
		total = a.backend.CountContent(gctx)
		return nil
	})
	g.Go(func() error {
		images = a.backend.ListImages(gctx, "")
		return nil
	})
	_ = g.Wait()

	examples := content
	if len(examples) > MaxContentExamples {
		examples = examples[:MaxContentExamples]
	}

	tc := storage.TrainingContext{
		BusinessProfile: profile,
		ContentExamples: append([]storage.ContentItem{}, examples...),
		ImageCategories: imageCategories(images),
		TotalContent:    max(total, len(content)),
		TotalImages:     len(images),
	}

	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "training context assembled",
		"backend", a.backend.Name(),
		"total_content", tc.TotalContent,
		"total_images", tc.TotalImages,
		"categories", len(tc.ImageCategories),
	)
	return tc
}

// imageCategories returns the sorted set of image categories.
func imageCategories(images []storage.TrainingImage) []string {
	categories := make([]string, 0, len(images))
	for _, img := range images {
		categories = append(categories, img.CategoryOrDefault())
	}
	slices.Sort(categories)
	return slices.Compact(categories)
}
