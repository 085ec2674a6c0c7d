package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"metacontent/internal/config"
	"metacontent/internal/http"
	"metacontent/internal/mcpserver"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API manages Facebook and Instagram content through the Meta Graph API,
// with AI-written posts personalized by a trained business profile.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Meta Content Manager API
//   description: |
//     Publish posts, read insights, and train the assistant on business
//     profile, past content, images and knowledge items.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
//   - application/x-www-form-urlencoded
// produces:
//   - application/json

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "metacontent",
		Short:         "Meta content manager",
		Long:          `Manage Facebook and Instagram content with AI-assisted, business-aware posts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP tool server over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMCP(cmd.Context())
		},
	})

	return root
}

func runServe(parent context.Context) error {
	cfg, err := loadConfig(os.Stdout)
	if err != nil {
		return err
	}

	app, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	router := http.NewRouter(&http.Deps{
		AppName:    cfg.AppName,
		Version:    cfg.AppVersion,
		Content:    app.Content,
		Publishing: app.Publishing,
		Training:   app.Training,
		Knowledge:  app.Knowledge,
	})

	ctx, stop := signal.NotifyContext(contextOrBackground(parent), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", srv.Addr, "storage", app.Training.StorageName())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("API server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func runMCP(parent context.Context) error {
	// stdout carries the protocol.
	cfg, err := loadConfig(os.Stderr)
	if err != nil {
		return err
	}

	app, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(contextOrBackground(parent), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := mcpserver.New(cfg.AppName, cfg.AppVersion, app.Publishing, app.Content)
	slog.Info("Starting MCP server on stdio")
	if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("MCP server failed", "error", err)
		return err
	}
	return nil
}

// loadConfig reads configuration and installs the default logger writing to w.
func loadConfig(w io.Writer) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	return cfg, nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
