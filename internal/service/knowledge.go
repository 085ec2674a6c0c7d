package service

import (
	"context"
	"fmt"
	"strings"

	"metacontent/internal/contextutil"
	"metacontent/internal/knowledge"
	"metacontent/internal/llm"
	"metacontent/internal/storage"
)

// Categorization methods.
const (
	MethodAI      = "ai"
	MethodKeyword = "keyword"
)

// Test question bounds.
const (
	DefaultQuestionCount = 5
	MaxQuestionCount     = 10
)

// Categorization is the outcome of classifying a knowledge item.
type Categorization struct {
	Category knowledge.Category `json:"category"`
	Method   string             `json:"method"`
}

// TestResult is a graded answer to a knowledge-test question.
type TestResult struct {
	ID         string `json:"id,omitempty"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Score      int    `json:"score"`
	Assessment string `json:"assessment"`
}

// ScoreHistory is the recorded test results with their running average.
type ScoreHistory struct {
	Scores  []storage.TestScore `json:"scores"`
	Average float64             `json:"average"`
	Count   int                 `json:"count"`
}

// KnowledgeService answers questions about, scores and tests the stored
// business knowledge.
type KnowledgeService struct {
	llm      LLMClient
	backend  storage.Backend
	contexts ContextProvider
	scores   ScoreStore
}

// NewKnowledgeService creates a KnowledgeService. llmClient may be nil, in
// which case categorization uses keyword rules and LLM-only operations
// return ErrNotConfigured.
func NewKnowledgeService(llmClient LLMClient, backend storage.Backend, contexts ContextProvider, scores ScoreStore) *KnowledgeService {
	return &KnowledgeService{
		llm:      llmClient,
		backend:  backend,
		contexts: contexts,
		scores:   scores,
	}
}

// Categorize assigns one of the fixed categories to a knowledge item.
func (s *KnowledgeService) Categorize(ctx context.Context, title, content string) (Categorization, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" && content == "" {
		return Categorization{}, &ValidationError{Field: "title", Message: "title or content is required"}
	}

	if s.llm == nil {
		return Categorization{Category: knowledge.Classify(title, content), Method: MethodKeyword}, nil
	}

	names := make([]string, 0, len(knowledge.Categories))
	for _, c := range knowledge.Categories {
		names = append(names, string(c))
	}
	prompt := fmt.Sprintf(
		"Classify this business knowledge into exactly one category from: %s.\n"+
			"Reply with the category name only.\n\nTitle: %s\nContent: %s",
		strings.Join(names, ", "), title, content,
	)

	reply, err := s.llm.ChatWithMessages(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		llm.ChatParams{MaxTokens: 20, Temperature: 0.1})
	if err != nil {
		return Categorization{}, WrapError(err, "failed to categorize knowledge")
	}

	return Categorization{Category: knowledge.NormalizeCategory(firstWord(reply)), Method: MethodAI}, nil
}

// Chat answers a free-form message using the business profile and knowledge.
func (s *KnowledgeService) Chat(ctx context.Context, message string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	message = strings.TrimSpace(message)
	if message == "" {
		logger.WarnContext(ctx, "empty message in chat request")
		return "", &ValidationError{Field: "message", Message: "cannot be empty"}
	}
	if s.llm == nil {
		return "", &NotConfiguredError{Integration: "LLM"}
	}

	reply, err := s.llm.ChatWithMessages(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: s.systemPrompt(ctx, "a helpful marketing assistant")},
		{Role: llm.RoleUser, Content: message},
	}, llm.ChatParams{MaxTokens: 800})
	if err != nil {
		logger.ErrorContext(ctx, "failed to get LLM response", "error", err)
		return "", WrapError(err, "failed to get LLM response")
	}

	logger.InfoContext(ctx, "chat request processed successfully", "message_length", len(message), "reply_length", len(reply))
	return reply, nil
}

// Assess scores the stored knowledge.
func (s *KnowledgeService) Assess(ctx context.Context) knowledge.Assessment {
	return knowledge.Assess(s.items(ctx))
}

// GenerateTestQuestions returns questions that probe the stored knowledge.
// Without an LLM, or when its output has no usable lines, fixed template
// questions are returned.
func (s *KnowledgeService) GenerateTestQuestions(ctx context.Context, count int) ([]string, error) {
	if count == 0 {
		count = DefaultQuestionCount
	}
	count = min(MaxQuestionCount, max(1, count))

	if s.llm == nil {
		return knowledge.TemplateQuestions(count), nil
	}

	prompt := fmt.Sprintf(
		"Write %d short questions a customer might ask this business. "+
			"They should test how well the knowledge above describes it. One question per line.",
		count,
	)
	reply, err := s.llm.ChatWithMessages(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: s.systemPrompt(ctx, "a quiz writer")},
		{Role: llm.RoleUser, Content: prompt},
	}, llm.ChatParams{MaxTokens: 400})
	if err != nil {
		return nil, WrapError(err, "failed to generate test questions")
	}

	questions := knowledge.ParseQuestions(reply, count)
	if len(questions) == 0 {
		return knowledge.TemplateQuestions(count), nil
	}
	return questions, nil
}

// AnswerTestQuestion answers question from the stored knowledge, scores the
// answer and records it. The score is the model's reported confidence, or
// the overall knowledge score when none is reported.
func (s *KnowledgeService) AnswerTestQuestion(ctx context.Context, question string) (TestResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	question = strings.TrimSpace(question)
	if err := required("question", question); err != nil {
		return TestResult{}, err
	}
	if s.llm == nil {
		return TestResult{}, &NotConfiguredError{Integration: "LLM"}
	}

	items := s.items(ctx)
	prompt := fmt.Sprintf(
		"Answer this customer question using only the business information provided.\n"+
			"Question: %s\n\nOn the last line write %s followed by a number from 0 to 100 "+
			"saying how fully the information supports your answer.",
		question, knowledge.ConfidenceMarker,
	)
	reply, err := s.llm.ChatWithMessages(ctx, []llm.Message{
		{Role: llm.RoleSystem, Content: s.systemPrompt(ctx, "the business's customer assistant")},
		{Role: llm.RoleUser, Content: prompt},
	}, llm.ChatParams{MaxTokens: 500, Temperature: 0.3})
	if err != nil {
		return TestResult{}, WrapError(err, "failed to answer test question")
	}

	answer, score, ok := knowledge.ParseConfidence(reply)
	if !ok {
		score = knowledge.Assess(items).Score
	}
	_, assessment := knowledge.Describe(score)

	result := TestResult{Question: question, Answer: answer, Score: score, Assessment: assessment}
	if s.scores != nil {
		saved, err := s.scores.Save(ctx, storage.TestScore{
			Question:   question,
			Answer:     answer,
			Score:      score,
			Assessment: assessment,
		})
		if err != nil {
			logger.WarnContext(ctx, "failed to record test score", "error", err)
		} else {
			result.ID = saved.ID
		}
	}
	return result, nil
}

// TestScores returns up to limit recorded results, newest first.
func (s *KnowledgeService) TestScores(ctx context.Context, limit int) (ScoreHistory, error) {
	if s.scores == nil {
		return ScoreHistory{}, &NotConfiguredError{Integration: "score history"}
	}

	scores, err := s.scores.List(ctx, limit)
	if err != nil {
		return ScoreHistory{}, WrapError(err, "failed to list test scores")
	}
	avg, count, err := s.scores.Average(ctx)
	if err != nil {
		return ScoreHistory{}, WrapError(err, "failed to average test scores")
	}
	return ScoreHistory{Scores: nonNil(scores), Average: avg, Count: count}, nil
}

func (s *KnowledgeService) items(ctx context.Context) []knowledge.Item {
	stored := s.backend.ListKnowledge(ctx, "")
	items := make([]knowledge.Item, 0, len(stored))
	for _, k := range stored {
		items = append(items, knowledge.Item{Category: k.Category, Importance: k.Importance})
	}
	return items
}

func (s *KnowledgeService) systemPrompt(ctx context.Context, role string) string {
	return businessPrompt(role, s.contexts.GetContext(ctx, ""), s.backend.ListKnowledge(ctx, ""))
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], ".,:;\"'`*")
}
