package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"metacontent/internal/handlers"
	"metacontent/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	AppName    string
	Version    string
	Content    *service.ContentService
	Publishing *service.PublishingService
	Training   *service.TrainingService
	Knowledge  *service.KnowledgeService
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	pages := handlers.NewPageHandler(deps.AppName)
	content := handlers.NewContentHandler(deps.Content)
	meta := handlers.NewMetaHandler(deps.Publishing)
	trainingHandler := handlers.NewTrainingHandler(deps.Training)
	knowledgeHandler := handlers.NewKnowledgeHandler(deps.Knowledge)

	r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.AppName, deps.Version, deps.Training.StorageName()))

	r.Get("/", pages.Page(handlers.PageIndex))
	r.Get("/privacy", pages.Page(handlers.PagePrivacy))
	r.Get("/terms", pages.Page(handlers.PageTerms))
	r.Get("/data-deletion", pages.Page(handlers.PageDataDeletion))
	r.Post("/data-deletion", pages.DataDeletion)

	r.Post("/generate-ideas", content.GenerateIdeas)
	r.Post("/post-facebook", meta.PostFacebook)
	r.Post("/post-instagram", meta.PostInstagram)
	r.Post("/facebook-insights", meta.FacebookInsights)
	r.Post("/instagram-insights", meta.InstagramInsights)

	r.Route("/training", func(r chi.Router) {
		r.Get("/profile", trainingHandler.Profile)
		r.Post("/profile", trainingHandler.SaveProfile)
		r.Get("/content", trainingHandler.ListContent)
		r.Post("/content", trainingHandler.SaveContent)
		r.Get("/images", trainingHandler.ListImages)
		r.Post("/images", trainingHandler.UploadImage)
		r.Get("/context", trainingHandler.Context)
		r.Get("/knowledge", trainingHandler.ListKnowledge)
		r.Post("/knowledge", trainingHandler.SaveKnowledge)
		r.Get("/knowledge/{id}", trainingHandler.Knowledge)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/pages", meta.ListPages)
		r.Post("/smart-post", content.SmartPost)

		r.Route("/knowledge", func(r chi.Router) {
			r.Post("/categorize", knowledgeHandler.Categorize)
			r.Post("/chat", knowledgeHandler.Chat)
			r.Get("/assessment", knowledgeHandler.Assessment)
			r.Post("/test-questions", knowledgeHandler.TestQuestions)
			r.Post("/test-answer", knowledgeHandler.TestAnswer)
			r.Get("/test-scores", knowledgeHandler.TestScores)
		})
	})

	return r
}
