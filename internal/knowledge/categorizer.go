package knowledge

import "strings"

type keywordRule struct {
	category Category
	keywords []string
}

// Order matters: the first rule with a matching keyword wins.
var keywordRules = []keywordRule{
	{Services, []string{"service", "offer", "product", "class", "program", "treatment", "session"}},
	{TargetAudience, []string{"customer", "audience", "client", "demographic", "target", "ideal"}},
	{Pricing, []string{"price", "pricing", "cost", "fee", "membership", "package", "discount", "$"}},
	{Team, []string{"team", "staff", "employee", "founder", "owner", "trainer", "instructor", "manager"}},
	{BrandVoice, []string{"voice", "tone", "brand", "personality", "style"}},
}

// Classify assigns a category to a knowledge item by keyword match over its
// lower-cased title and content. It is deterministic and never fails.
func Classify(title, content string) Category {
	text := strings.ToLower(title + " " + content)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}
	return BusinessBasics
}
