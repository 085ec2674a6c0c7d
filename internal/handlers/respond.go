package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"metacontent/internal/contextutil"
	"metacontent/internal/outbound"
	"metacontent/internal/service"
)

// maxFormMemory bounds the in-memory part of a parsed multipart form.
const maxFormMemory = 32 << 20

// ErrorResponse represents an error response.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// SaveResponse is returned by the training save endpoints.
type SaveResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Storage string `json:"storage,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// handleServiceError maps service and outbound errors to HTTP status codes.
func handleServiceError(ctx context.Context, w http.ResponseWriter, err error, defaultMsg string) {
	logger := contextutil.LoggerFromContext(ctx)

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		logger.WarnContext(ctx, "validation failed", "field", validationErr.Field, "error", err)
		writeError(w, http.StatusBadRequest, validationErr.Error())
		return
	}
	if errors.Is(err, service.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	var notFound *service.NotFoundError
	if errors.As(err, &notFound) {
		writeError(w, http.StatusNotFound, notFound.Error())
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}

	var notConfigured *service.NotConfiguredError
	if errors.As(err, &notConfigured) {
		logger.WarnContext(ctx, "integration not configured", "integration", notConfigured.Integration)
		writeError(w, http.StatusServiceUnavailable, notConfigured.Error())
		return
	}

	logger.ErrorContext(ctx, "service error", "error", err)

	var apiErr *outbound.RemoteAPIError
	if errors.As(err, &apiErr) {
		writeError(w, http.StatusBadGateway, apiErr.Message)
		return
	}
	var transportErr *outbound.TransportError
	if errors.As(err, &transportErr) {
		writeError(w, http.StatusGatewayTimeout, "Upstream service unreachable")
		return
	}
	if errors.Is(err, service.ErrExternalService) {
		writeError(w, http.StatusBadGateway, "External service error")
		return
	}

	writeError(w, http.StatusInternalServerError, defaultMsg)
}

// decodeJSON decodes the request body into v. An empty body leaves v unchanged.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// formValue returns the trimmed form field, or def when it is absent or blank.
func formValue(r *http.Request, key, def string) string {
	if v := strings.TrimSpace(r.FormValue(key)); v != "" {
		return v
	}
	return def
}

// intParam parses an integer from the form or query. Missing or malformed
// values yield def.
func intParam(r *http.Request, key string, def int) int {
	raw := strings.TrimSpace(r.FormValue(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
