package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"metacontent/internal/outbound"
	"metacontent/internal/service"
)

func init() {
	// Discard logs from slog.Default() for cleaner test output.
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation error",
			err:         &service.ValidationError{Field: "topic", Message: "is required"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "validation error on field topic: is required",
		},
		{
			name:        "bare invalid input",
			err:         fmt.Errorf("wrapped: %w", service.ErrInvalidInput),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid input",
		},
		{
			name:        "not found",
			err:         &service.NotFoundError{Resource: "knowledge item", ID: "k1"},
			wantStatus:  http.StatusNotFound,
			wantMessage: `knowledge item "k1" not found`,
		},
		{
			name:        "not configured",
			err:         &service.NotConfiguredError{Integration: "LLM"},
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: "LLM is not configured",
		},
		{
			name:        "remote API error passes message through",
			err:         service.WrapError(&outbound.RemoteAPIError{StatusCode: 400, Message: "Invalid OAuth access token."}, "failed to post"),
			wantStatus:  http.StatusBadGateway,
			wantMessage: "Invalid OAuth access token.",
		},
		{
			name:        "transport error",
			err:         service.WrapError(&outbound.TransportError{Cause: context.DeadlineExceeded}, "failed to post"),
			wantStatus:  http.StatusGatewayTimeout,
			wantMessage: "Upstream service unreachable",
		},
		{
			name:        "external service",
			err:         service.WrapError(service.ErrExternalService, "failed to save"),
			wantStatus:  http.StatusBadGateway,
			wantMessage: "External service error",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "default message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handleServiceError(context.Background(), w, tt.err, "default message")

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var resp ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error response: %v", err)
			}
			if resp.Error != tt.wantMessage {
				t.Errorf("error = %q, want %q", resp.Error, tt.wantMessage)
			}
		})
	}
}

func TestIntParam(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{query: "", want: 7},
		{query: "?limit=3", want: 3},
		{query: "?limit=abc", want: 7},
		{query: "?limit=%20%2012", want: 12},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/x"+tt.query, nil)
		if got := intParam(r, "limit", 7); got != tt.want {
			t.Errorf("intParam(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}
