package storage

import "time"

// Image sources recorded on TrainingImage.Source.
const (
	SourceUpload         = "upload"
	SourceUploadFallback = "upload_fallback"
	SourceGoogleDrive    = "google_drive"
)

// DefaultImageCategory is used for images saved without a category.
const DefaultImageCategory = "general"

// BusinessProfile holds the branding facts of the single business.
type BusinessProfile struct {
	ID             string    `json:"id,omitempty"`
	Name           string    `json:"name"`
	Industry       string    `json:"industry"`
	Location       string    `json:"location"`
	TargetAudience string    `json:"target_audience"`
	BrandVoice     string    `json:"brand_voice"`
	Services       string    `json:"services"`
	USP            string    `json:"usp"`
	Goals          []string  `json:"goals"`
	CreatedAt      time.Time `json:"created_at,omitzero"`
	UpdatedAt      time.Time `json:"updated_at,omitzero"`
}

// IsEmpty reports whether no profile has been stored.
func (p BusinessProfile) IsEmpty() bool {
	return p.ID == "" && p.Name == ""
}

// ContentItem is a previously published or drafted post kept for style reference.
type ContentItem struct {
	ID          string    `json:"id,omitempty"`
	PostContent string    `json:"post_content"`
	Platform    string    `json:"platform"`
	Performance string    `json:"performance"`
	BusinessID  string    `json:"business_id,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// TrainingImage is the metadata of an uploaded or linked image.
type TrainingImage struct {
	ID          string    `json:"id,omitempty"`
	Filename    string    `json:"filename"`
	StoragePath string    `json:"storage_path,omitempty"`
	URL         string    `json:"url,omitempty"`
	Category    string    `json:"category"`
	Source      string    `json:"source"`
	FileSize    int64     `json:"file_size"`
	BusinessID  string    `json:"business_id,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// CategoryOrDefault returns the image category, or DefaultImageCategory when unset.
func (img TrainingImage) CategoryOrDefault() string {
	if img.Category == "" {
		return DefaultImageCategory
	}
	return img.Category
}

// KnowledgeItem is a discrete categorized fact about the business.
type KnowledgeItem struct {
	ID         string    `json:"id,omitempty"`
	Category   string    `json:"category"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Importance string    `json:"importance"`
	BusinessID string    `json:"business_id,omitempty"`
	CreatedAt  time.Time `json:"created_at,omitzero"`
}

// TrainingContext is the read-only aggregate handed to AI personalization.
type TrainingContext struct {
	BusinessProfile BusinessProfile `json:"business_profile"`
	ContentExamples []ContentItem   `json:"content_examples"`
	ImageCategories []string        `json:"image_categories"`
	TotalContent    int             `json:"total_content"`
	TotalImages     int             `json:"total_images"`
}

// TestScore records one answered knowledge-test question.
type TestScore struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Score      int       `json:"score"`
	Assessment string    `json:"assessment"`
	CreatedAt  time.Time `json:"created_at"`
}
