// Package knowledge holds the fixed knowledge taxonomy and the pure functions
// that classify and score knowledge items.
package knowledge

import "strings"

// Category is one of the fixed knowledge tags.
type Category string

const (
	BusinessBasics Category = "business_basics"
	Services       Category = "services"
	TargetAudience Category = "target_audience"
	Pricing        Category = "pricing"
	Team           Category = "team"
	BrandVoice     Category = "brand_voice"
	MarketingGoals Category = "marketing_goals"
	Competitors    Category = "competitors"
	Policies       Category = "policies"
	FAQs           Category = "faqs"
)

// Categories lists every recognized category in display order.
var Categories = []Category{
	BusinessBasics,
	Services,
	TargetAudience,
	Pricing,
	Team,
	BrandVoice,
	MarketingGoals,
	Competitors,
	Policies,
	FAQs,
}

// Importance levels weight items in the depth score.
const (
	ImportanceCritical  = "critical"
	ImportanceImportant = "important"
	ImportanceUseful    = "useful"
)

// IsValid reports whether c is one of the recognized categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeCategory trims and lower-cases raw and coerces anything
// unrecognized to BusinessBasics.
func NormalizeCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c.IsValid() {
		return c
	}
	return BusinessBasics
}

// NormalizeImportance coerces raw to a known importance, defaulting to useful.
func NormalizeImportance(raw string) string {
	switch v := strings.ToLower(strings.TrimSpace(raw)); v {
	case ImportanceCritical, ImportanceImportant, ImportanceUseful:
		return v
	default:
		return ImportanceUseful
	}
}
