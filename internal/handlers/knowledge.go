package handlers

import (
	"net/http"

	"github.com/yuin/goldmark"

	"metacontent/internal/contextutil"
	"metacontent/internal/service"
	"metacontent/internal/storage"
)

// KnowledgeHandler handles the AI knowledge endpoints.
type KnowledgeHandler struct {
	knowledge *service.KnowledgeService
	markdown  goldmark.Markdown
}

// NewKnowledgeHandler creates a new KnowledgeHandler.
func NewKnowledgeHandler(knowledge *service.KnowledgeService) *KnowledgeHandler {
	return &KnowledgeHandler{knowledge: knowledge, markdown: newMarkdown()}
}

// CategorizeRequest asks for a knowledge category.
//
// swagger:model CategorizeRequest
type CategorizeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ChatRequest represents the HTTP request payload for chat.
//
// swagger:model ChatRequest
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse represents the HTTP response payload for chat.
//
// swagger:model ChatResponse
type ChatResponse struct {
	Reply string `json:"reply"`
	// Reply rendered from markdown
	ReplyHTML string `json:"reply_html,omitempty"`
}

// TestQuestionsRequest asks for knowledge test questions.
type TestQuestionsRequest struct {
	Count int `json:"count"`
}

// TestQuestionsResponse lists knowledge test questions.
type TestQuestionsResponse struct {
	Questions []string `json:"questions"`
}

// TestAnswerRequest submits a test question.
type TestAnswerRequest struct {
	Question string `json:"question"`
}

// Categorize handles categorization requests.
//
// swagger:route POST /api/knowledge/categorize categorizeKnowledge
func (h *KnowledgeHandler) Categorize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CategorizeRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.knowledge.Categorize(ctx, req.Title, req.Content)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to categorize knowledge")
		return
	}
	writeJSON(ctx, w, http.StatusOK, res)
}

// Chat answers a message from the business knowledge.
//
// swagger:route POST /api/knowledge/chat knowledgeChat
func (h *KnowledgeHandler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChatRequest
	if !h.decode(w, r, &req) {
		return
	}

	reply, err := h.knowledge.Chat(ctx, req.Message)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to process chat request")
		return
	}

	resp := ChatResponse{Reply: reply}
	if html, err := renderMarkdown(h.markdown, []byte(reply)); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to render reply", "error", err)
	} else {
		resp.ReplyHTML = html
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Assessment scores the stored knowledge.
//
// swagger:route GET /api/knowledge/assessment knowledgeAssessment
func (h *KnowledgeHandler) Assessment(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, h.knowledge.Assess(r.Context()))
}

// TestQuestions generates knowledge test questions.
//
// swagger:route POST /api/knowledge/test-questions testQuestions
func (h *KnowledgeHandler) TestQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TestQuestionsRequest
	if !h.decode(w, r, &req) {
		return
	}

	questions, err := h.knowledge.GenerateTestQuestions(ctx, req.Count)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to generate questions")
		return
	}
	writeJSON(ctx, w, http.StatusOK, TestQuestionsResponse{Questions: questions})
}

// TestAnswer answers and scores a test question.
//
// swagger:route POST /api/knowledge/test-answer testAnswer
func (h *KnowledgeHandler) TestAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TestAnswerRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.knowledge.AnswerTestQuestion(ctx, req.Question)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to answer question")
		return
	}
	writeJSON(ctx, w, http.StatusOK, res)
}

// TestScores returns recorded test results.
//
// swagger:route GET /api/knowledge/test-scores testScores
func (h *KnowledgeHandler) TestScores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	history, err := h.knowledge.TestScores(ctx, intParam(r, "limit", storage.DefaultScoreLimit))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list test scores")
		return
	}
	writeJSON(ctx, w, http.StatusOK, history)
}

func (h *KnowledgeHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := decodeJSON(r, v); err != nil {
		ctx := r.Context()
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
