package knowledge

// Item is the minimal view of a knowledge item the assessor needs.
type Item struct {
	Category   string
	Importance string
}

// Assessment buckets, keyed by the lower bound of the overall score.
const (
	BucketExcellent = "excellent"
	BucketGood      = "good"
	BucketFair      = "fair"
	BucketLimited   = "limited"
)

// Assessment is the result of scoring a knowledge collection.
type Assessment struct {
	Score      int               `json:"score"`
	Bucket     string            `json:"bucket"`
	Assessment string            `json:"assessment"`
	Details    AssessmentDetails `json:"details"`
}

// AssessmentDetails exposes the intermediate values behind Score.
type AssessmentDetails struct {
	CategoryCoverage  float64    `json:"category_coverage"`
	ContentDepth      int        `json:"content_depth"`
	TotalItems        int        `json:"total_items"`
	CriticalItems     int        `json:"critical_items"`
	ImportantItems    int        `json:"important_items"`
	OtherItems        int        `json:"other_items"`
	CoveredCategories []Category `json:"covered_categories"`
	MissingCategories []Category `json:"missing_categories"`
}

// Assess scores how well items cover the business:
//
//	coverage = distinct categories / 10 * 100
//	depth    = min(100, critical*15 + important*10 + other*5)
//	score    = floor(coverage*0.4 + depth*0.6)
//
// Unrecognized categories count as business_basics.
func Assess(items []Item) Assessment {
	present := make(map[Category]bool, len(Categories))
	var critical, important int
	for _, item := range items {
		present[NormalizeCategory(item.Category)] = true
		switch NormalizeImportance(item.Importance) {
		case ImportanceCritical:
			critical++
		case ImportanceImportant:
			important++
		}
	}
	other := len(items) - critical - important

	covered := make([]Category, 0, len(present))
	missing := make([]Category, 0, len(Categories))
	for _, c := range Categories {
		if present[c] {
			covered = append(covered, c)
		} else {
			missing = append(missing, c)
		}
	}

	n := len(Categories)
	coverage := float64(len(covered)*100) / float64(n)
	depth := min(100, critical*15+important*10+other*5)
	// Integer form of floor(coverage*0.4 + depth*0.6), free of float rounding.
	score := (len(covered)*100*4 + depth*6*n) / (10 * n)

	bucket, text := Describe(score)
	return Assessment{
		Score:      score,
		Bucket:     bucket,
		Assessment: text,
		Details: AssessmentDetails{
			CategoryCoverage:  coverage,
			ContentDepth:      depth,
			TotalItems:        len(items),
			CriticalItems:     critical,
			ImportantItems:    important,
			OtherItems:        other,
			CoveredCategories: covered,
			MissingCategories: missing,
		},
	}
}

// Describe maps a 0-100 score to its bucket and a one-line assessment.
func Describe(score int) (bucket, text string) {
	switch {
	case score >= 80:
		return BucketExcellent, "Excellent: comprehensive knowledge of your business."
	case score >= 60:
		return BucketGood, "Good: solid understanding with a few gaps."
	case score >= 40:
		return BucketFair, "Fair: basic understanding, needs more training."
	default:
		return BucketLimited, "Limited: needs significant training."
	}
}
