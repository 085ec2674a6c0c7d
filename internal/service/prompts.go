package service

import (
	"fmt"
	"strings"

	"metacontent/internal/storage"
)

const maxKnowledgeInPrompt = 25

// businessPrompt renders the training context and knowledge as a system prompt.
func businessPrompt(role string, tc storage.TrainingContext, items []storage.KnowledgeItem) string {
	var b strings.Builder
	p := tc.BusinessProfile

	name := p.Name
	if name == "" {
		name = "a small business"
	}
	fmt.Fprintf(&b, "You are %s for %s.\n", role, name)

	writeField(&b, "Industry", p.Industry)
	writeField(&b, "Location", p.Location)
	writeField(&b, "Target audience", p.TargetAudience)
	writeField(&b, "Brand voice", p.BrandVoice)
	writeField(&b, "Services", p.Services)
	writeField(&b, "Unique selling point", p.USP)
	if len(p.Goals) > 0 {
		writeField(&b, "Goals", strings.Join(p.Goals, ", "))
	}

	if len(tc.ContentExamples) > 0 {
		b.WriteString("\nRecent posts for style reference:\n")
		for _, ex := range tc.ContentExamples {
			fmt.Fprintf(&b, "- [%s] %s\n", ex.Platform, ex.PostContent)
		}
	}

	if len(items) > 0 {
		b.WriteString("\nBusiness knowledge:\n")
		for i, item := range items {
			if i == maxKnowledgeInPrompt {
				break
			}
			fmt.Fprintf(&b, "- [%s] %s: %s\n", item.Category, item.Title, item.Content)
		}
	}

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}
