package knowledge

import (
	"strconv"
	"strings"
	"unicode"
)

var templateQuestions = map[Category]string{
	BusinessBasics: "What is the name of the business and what does it do?",
	Services:       "Which services or products does the business offer?",
	TargetAudience: "Who is the ideal customer for this business?",
	Pricing:        "How much do the main offerings cost?",
	Team:           "Who works at the business and what are their roles?",
	BrandVoice:     "How would you describe the brand's tone of voice?",
	MarketingGoals: "What are the business's current marketing goals?",
	Competitors:    "Who are the main competitors and how is the business different?",
	Policies:       "What are the cancellation and refund policies?",
	FAQs:           "What questions do customers ask most often?",
}

// TemplateQuestions returns up to count fixed test questions, one per
// category in display order.
func TemplateQuestions(count int) []string {
	if count <= 0 || count > len(Categories) {
		count = len(Categories)
	}
	questions := make([]string, 0, count)
	for _, c := range Categories[:count] {
		questions = append(questions, templateQuestions[c])
	}
	return questions
}

// ParseQuestions splits LLM output into one question per non-empty line,
// dropping list markers such as "1.", "2)", "-", "*" and "Q:".
func ParseQuestions(text string, limit int) []string {
	var questions []string
	for _, line := range strings.Split(text, "\n") {
		q := stripListMarker(strings.TrimSpace(line))
		if q == "" {
			continue
		}
		questions = append(questions, q)
		if limit > 0 && len(questions) == limit {
			break
		}
	}
	return questions
}

func stripListMarker(line string) string {
	line = strings.TrimLeft(line, "-*• ")
	if strings.HasPrefix(strings.ToUpper(line), "Q:") {
		return strings.TrimSpace(line[2:])
	}
	i := 0
	for i < len(line) && unicode.IsDigit(rune(line[i])) {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		return strings.TrimSpace(line[i+1:])
	}
	return line
}

// ConfidenceMarker prefixes the self-reported score line of a test answer.
const ConfidenceMarker = "CONFIDENCE:"

// ParseConfidence splits an answer from a trailing "CONFIDENCE: NN" line.
// The score is clamped to 0..100; ok is false when no parsable marker exists,
// in which case answer is the trimmed input.
func ParseConfidence(text string) (answer string, score int, ok bool) {
	i := lastIndexFold(text, ConfidenceMarker)
	if i < 0 {
		return strings.TrimSpace(text), 0, false
	}

	fields := strings.Fields(text[i+len(ConfidenceMarker):])
	if len(fields) == 0 {
		return strings.TrimSpace(text), 0, false
	}
	n, err := strconv.Atoi(strings.TrimRight(fields[0], "%.,"))
	if err != nil {
		return strings.TrimSpace(text), 0, false
	}
	return strings.TrimSpace(text[:i]), min(100, max(0, n)), true
}

// lastIndexFold is strings.LastIndex with case-insensitive matching. The
// returned offset indexes s itself.
func lastIndexFold(s, substr string) int {
	for i := len(s) - len(substr); i >= 0; i-- {
		if strings.EqualFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}
