package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"metacontent/internal/config"
	"metacontent/internal/graph"
	"metacontent/internal/llm"
	"metacontent/internal/service"
	"metacontent/internal/storage"
	"metacontent/internal/training"
)

// app holds the wired services shared by the HTTP and MCP front ends.
type app struct {
	Content    *service.ContentService
	Publishing *service.PublishingService
	Training   *service.TrainingService
	Knowledge  *service.KnowledgeService

	db *sql.DB
}

// newApp opens local storage, selects the training backend once and wires
// every service. Integrations left unconfigured stay nil so services report
// them as not configured.
func newApp(cfg *config.Config) (*app, error) {
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := storage.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	backend := storage.Select(
		storage.NewRemoteStore(storage.RemoteConfig{
			URL:     cfg.SupabaseURL,
			Key:     cfg.SupabaseKey,
			Bucket:  cfg.SupabaseBucket,
			Timeout: cfg.RequestTimeout,
		}),
		storage.NewMemoryStore(),
	)
	aggregator := training.NewAggregator(backend)

	var llmClient service.LLMClient
	if cfg.LLMConfigured() {
		llmClient = llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName, cfg.RequestTimeout)
		slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	} else {
		slog.Warn("LLM not configured, AI features disabled")
	}

	var images service.ImageGenerator
	if cfg.ImageConfigured() {
		baseURL, apiKey := cfg.ImageEndpoint()
		images = llm.NewImageClient(baseURL, apiKey, cfg.ImageModelName, cfg.RequestTimeout)
	}

	var socialGraph service.SocialGraph
	if cfg.MetaAccessToken != "" {
		socialGraph = graph.NewClient(cfg.GraphBaseURL, cfg.MetaAccessToken, cfg.RequestTimeout)
	} else {
		slog.Warn("META_ACCESS_TOKEN not set, publishing disabled")
	}

	knowledgeSvc := service.NewKnowledgeService(llmClient, backend, aggregator, storage.NewTestScoreRepo(db))

	return &app{
		Content:    service.NewContentService(llmClient, images, aggregator, backend),
		Publishing: service.NewPublishingService(socialGraph),
		Training:   service.NewTrainingService(backend, aggregator, knowledgeSvc),
		Knowledge:  knowledgeSvc,
		db:         db,
	}, nil
}

// Close releases the local database.
func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}
