package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"metacontent/internal/contextutil"
	"metacontent/internal/outbound"
)

// Remote table and bucket names.
const (
	tableBusinessProfiles = "business_profiles"
	tableContentLibrary   = "content_library"
	tableTrainingImages   = "training_images"
	tableKnowledge        = "claude_knowledge"

	DefaultImageBucket = "training-images"
)

// RemoteConfig configures the Supabase-backed store.
type RemoteConfig struct {
	URL     string
	Key     string
	Bucket  string
	Timeout time.Duration
}

// RemoteStore implements Backend on Supabase: PostgREST tables plus a public
// storage bucket for image blobs.
type RemoteStore struct {
	client  *outbound.Client
	baseURL string
	bucket  string
}

// NewRemoteStore creates a RemoteStore. A missing URL or key, or an invalid
// URL, yields a store whose IsAvailable reports false.
func NewRemoteStore(cfg RemoteConfig) *RemoteStore {
	if cfg.URL == "" || cfg.Key == "" {
		slog.Warn("Supabase credentials not found, remote training store disabled")
		return &RemoteStore{}
	}
	u, err := url.Parse(cfg.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		slog.Error("Failed to initialize Supabase client", "url", cfg.URL, "error", err)
		return &RemoteStore{}
	}

	bucket := cfg.Bucket
	if bucket == "" {
		bucket = DefaultImageBucket
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = outbound.DefaultTimeout
	}

	baseURL := strings.TrimRight(cfg.URL, "/")
	client := outbound.New(baseURL,
		outbound.WithHeader("apikey", cfg.Key),
		outbound.WithHeaderAuth("Authorization", "Bearer", cfg.Key),
		outbound.WithEncoding(outbound.EncodingJSON),
		outbound.WithTimeout(timeout),
	)
	slog.Info("Supabase client initialized", "url", baseURL, "bucket", bucket)

	return &RemoteStore{
		client:  client,
		baseURL: baseURL,
		bucket:  bucket,
	}
}

// Name implements Backend.
func (s *RemoteStore) Name() string {
	return "remote"
}

// IsAvailable implements Backend.
func (s *RemoteStore) IsAvailable() bool {
	return s.client != nil
}

// GetBusinessProfile implements Backend.
func (s *RemoteStore) GetBusinessProfile(ctx context.Context, id string) BusinessProfile {
	if !s.IsAvailable() {
		return BusinessProfile{}
	}

	query := map[string]string{"select": "*"}
	if id != "" {
		query["id"] = "eq." + id
	} else {
		query["limit"] = "1"
	}

	var rows []BusinessProfile
	if err := s.selectRows(ctx, tableBusinessProfiles, query, &rows); err != nil {
		s.logError(ctx, "Error getting business profile", err)
		return BusinessProfile{}
	}
	if len(rows) == 0 {
		return BusinessProfile{}
	}
	return rows[0]
}

// SaveBusinessProfile implements Backend. Any existing row is updated in place.
func (s *RemoteStore) SaveBusinessProfile(ctx context.Context, profile BusinessProfile) string {
	if !s.IsAvailable() {
		return ""
	}

	profile.ID = ""
	profile.CreatedAt = time.Time{}
	profile.UpdatedAt = time.Time{}

	existing := s.GetBusinessProfile(ctx, "")
	if !existing.IsEmpty() {
		err := s.client.Do(ctx, outbound.Call{
			Method:   http.MethodPatch,
			Endpoint: tablePath(tableBusinessProfiles),
			Query:    map[string]string{"id": "eq." + existing.ID},
			Payload:  profile,
		}, nil)
		if err != nil {
			s.logError(ctx, "Error saving business profile", err)
			return ""
		}
		return existing.ID
	}

	var rows []BusinessProfile
	if err := s.insert(ctx, tableBusinessProfiles, profile, &rows); err != nil {
		s.logError(ctx, "Error saving business profile", err)
		return ""
	}
	if len(rows) == 0 {
		return ""
	}
	return rows[0].ID
}

// ListContent implements Backend.
func (s *RemoteStore) ListContent(ctx context.Context, limit int) []ContentItem {
	if !s.IsAvailable() {
		return nil
	}
	if limit <= 0 {
		limit = DefaultContentLimit
	}

	var rows []ContentItem
	err := s.selectRows(ctx, tableContentLibrary, map[string]string{
		"select": "*",
		"order":  "created_at.desc",
		"limit":  strconv.Itoa(limit),
	}, &rows)
	if err != nil {
		s.logError(ctx, "Error getting content library", err)
		return nil
	}
	return rows
}

// CountContent implements Backend. Only ids are fetched.
func (s *RemoteStore) CountContent(ctx context.Context) int {
	if !s.IsAvailable() {
		return 0
	}

	var rows []struct {
		ID string `json:"id"`
	}
	if err := s.selectRows(ctx, tableContentLibrary, map[string]string{"select": "id"}, &rows); err != nil {
		s.logError(ctx, "Error counting content library", err)
		return 0
	}
	return len(rows)
}

// SaveContent implements Backend.
func (s *RemoteStore) SaveContent(ctx context.Context, item ContentItem) string {
	if !s.IsAvailable() {
		return ""
	}

	item.ID = ""
	item.CreatedAt = time.Time{}
	if item.BusinessID == "" {
		item.BusinessID = s.GetBusinessProfile(ctx, "").ID
	}

	var rows []ContentItem
	if err := s.insert(ctx, tableContentLibrary, item, &rows); err != nil {
		s.logError(ctx, "Error saving content", err)
		return ""
	}
	if len(rows) == 0 {
		return ""
	}
	return rows[0].ID
}

// ListImages implements Backend.
func (s *RemoteStore) ListImages(ctx context.Context, category string) []TrainingImage {
	if !s.IsAvailable() {
		return nil
	}

	query := map[string]string{"select": "*", "order": "created_at.desc"}
	if category != "" {
		query["category"] = "eq." + category
	}

	var rows []TrainingImage
	if err := s.selectRows(ctx, tableTrainingImages, query, &rows); err != nil {
		s.logError(ctx, "Error getting training images", err)
		return nil
	}
	return rows
}

// SaveImageMetadata implements Backend.
func (s *RemoteStore) SaveImageMetadata(ctx context.Context, image TrainingImage) string {
	if !s.IsAvailable() {
		return ""
	}

	image.ID = ""
	image.CreatedAt = time.Time{}
	image.Category = image.CategoryOrDefault()
	if image.BusinessID == "" {
		image.BusinessID = s.GetBusinessProfile(ctx, "").ID
	}

	var rows []TrainingImage
	if err := s.insert(ctx, tableTrainingImages, image, &rows); err != nil {
		s.logError(ctx, "Error saving image metadata", err)
		return ""
	}
	if len(rows) == 0 {
		return ""
	}
	return rows[0].ID
}

// UploadImageBlob implements Backend by uploading into the storage bucket and
// returning the object's public URL.
func (s *RemoteStore) UploadImageBlob(ctx context.Context, data []byte, filename, contentType string) string {
	if !s.IsAvailable() {
		return ""
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	object := url.PathEscape(filename)
	err := s.client.Do(ctx, outbound.Call{
		Method:      http.MethodPost,
		Endpoint:    fmt.Sprintf("/storage/v1/object/%s/%s", s.bucket, object),
		Body:        data,
		ContentType: contentType,
	}, nil)
	if err != nil {
		s.logError(ctx, "Error uploading image", err)
		return ""
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, object)
}

// SaveKnowledge implements Backend. Items get a fresh UUID so ids are unique
// regardless of the table's defaults.
func (s *RemoteStore) SaveKnowledge(ctx context.Context, item KnowledgeItem) string {
	if !s.IsAvailable() {
		return ""
	}

	item.ID = uuid.New().String()
	item.CreatedAt = time.Time{}
	if item.BusinessID == "" {
		item.BusinessID = s.GetBusinessProfile(ctx, "").ID
	}

	var rows []KnowledgeItem
	if err := s.insert(ctx, tableKnowledge, item, &rows); err != nil {
		s.logError(ctx, "Error saving knowledge", err)
		return ""
	}
	if len(rows) == 0 {
		return ""
	}
	return rows[0].ID
}

// ListKnowledge implements Backend.
func (s *RemoteStore) ListKnowledge(ctx context.Context, category string) []KnowledgeItem {
	if !s.IsAvailable() {
		return nil
	}

	query := map[string]string{"select": "*", "order": "created_at.desc"}
	if category != "" {
		query["category"] = "eq." + category
	}

	var rows []KnowledgeItem
	if err := s.selectRows(ctx, tableKnowledge, query, &rows); err != nil {
		s.logError(ctx, "Error getting knowledge", err)
		return nil
	}
	return rows
}

// GetKnowledgeByID implements Backend.
func (s *RemoteStore) GetKnowledgeByID(ctx context.Context, id string) (KnowledgeItem, bool) {
	if !s.IsAvailable() || id == "" {
		return KnowledgeItem{}, false
	}

	var rows []KnowledgeItem
	err := s.selectRows(ctx, tableKnowledge, map[string]string{"select": "*", "id": "eq." + id}, &rows)
	if err != nil {
		s.logError(ctx, "Error getting knowledge by id", err)
		return KnowledgeItem{}, false
	}
	if len(rows) == 0 {
		return KnowledgeItem{}, false
	}
	return rows[0], true
}

func (s *RemoteStore) selectRows(ctx context.Context, table string, query map[string]string, out any) error {
	return s.client.Do(ctx, outbound.Call{
		Method:   http.MethodGet,
		Endpoint: tablePath(table),
		Query:    query,
	}, out)
}

func (s *RemoteStore) insert(ctx context.Context, table string, row any, out any) error {
	return s.client.Do(ctx, outbound.Call{
		Method:   http.MethodPost,
		Endpoint: tablePath(table),
		Payload:  row,
		Headers:  map[string]string{"Prefer": "return=representation"},
	}, out)
}

func (s *RemoteStore) logError(ctx context.Context, msg string, err error) {
	contextutil.LoggerFromContext(ctx).ErrorContext(ctx, msg, "backend", s.Name(), "error", err)
}

func tablePath(table string) string {
	return "/rest/v1/" + table
}
