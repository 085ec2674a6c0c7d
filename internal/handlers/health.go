package handlers

import (
	"net/http"

	"metacontent/internal/contextutil"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	app     string
	version string
	storage string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(app, version, storage string) *HealthHandler {
	return &HealthHandler{app: app, version: version, storage: storage}
}

// HealthResponse represents the health check response.
//
// swagger:model HealthResponse
type HealthResponse struct {
	// Always "ok" while the process is serving
	Status  string `json:"status"`
	App     string `json:"app"`
	Version string `json:"version"`
	// Training store in use: "remote" or "memory"
	Storage string `json:"storage,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
//
// swagger:route GET /health healthCheck
//
// # Health check endpoint
//
// ---
// produces:
// - application/json
// responses:
//
//	'200':
//	  description: Service is up
//	  schema:
//	    "$ref": "#/definitions/HealthResponse"
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if r.Method != http.MethodGet {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	writeJSON(ctx, w, http.StatusOK, HealthResponse{
		Status:  "ok",
		App:     h.app,
		Version: h.version,
		Storage: h.storage,
	})
}
