package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"metacontent/internal/outbound"
)

func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8081", "test-key", "test-model", 0)
	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.Model != "test-model" {
		t.Errorf("NewClient() Model = %v, want test-model", client.Model)
	}
	if client.api.BaseURL() != "http://localhost:8081" {
		t.Errorf("NewClient() BaseURL = %v, want http://localhost:8081", client.api.BaseURL())
	}
}

func TestClient_ChatWithMessages_Reply(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		serverResp func(w http.ResponseWriter, r *http.Request)
		wantReply  string
		wantErr    error
	}{
		{
			name:    "successful chat",
			message: "Hello",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST, got %s", r.Method)
				}
				if r.URL.Path != "/v1/chat/completions" {
					t.Errorf("expected /v1/chat/completions, got %s", r.URL.Path)
				}
				if r.Header.Get("Authorization") != "Bearer test-key" {
					t.Errorf("Authorization = %q, want Bearer test-key", r.Header.Get("Authorization"))
				}

				resp := ChatResponse{
					ID:     "test-id",
					Object: "chat.completion",
					Choices: []ChatChoice{
						{
							Message:      Message{Role: RoleAssistant, Content: "Hi there!"},
							FinishReason: "stop",
						},
					},
				}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(resp)
			},
			wantReply: "Hi there!",
		},
		{
			name:    "no choices returned",
			message: "Hello",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(ChatResponse{ID: "test-id", Choices: []ChatChoice{}})
			},
			wantErr: ErrNoChoices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverResp))
			defer server.Close()

			client := NewClient(server.URL, "test-key", "test-model", 0)
			reply, err := client.ChatWithMessages(context.Background(), []Message{{Role: RoleUser, Content: tt.message}}, ChatParams{})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ChatWithMessages() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("ChatWithMessages() unexpected error: %v", err)
			}
			if reply != tt.wantReply {
				t.Errorf("ChatWithMessages() reply = %v, want %v", reply, tt.wantReply)
			}
		})
	}
}

func TestClient_ChatWithMessages_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "bad", "test-model", 0).
		ChatWithMessages(context.Background(), []Message{{Role: RoleUser, Content: "Hello"}}, ChatParams{})

	var apiErr *outbound.RemoteAPIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("ChatWithMessages() error = %T, want *outbound.RemoteAPIError", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "Incorrect API key provided" {
		t.Errorf("ChatWithMessages() error = %+v", apiErr)
	}
}

func TestClient_ChatWithMessages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		if len(req.Messages) != 2 {
			t.Errorf("expected 2 messages, got %d", len(req.Messages))
		}
		if req.Model != "custom-model" {
			t.Errorf("expected model custom-model, got %s", req.Model)
		}
		if req.MaxTokens != 100 {
			t.Errorf("expected max_tokens 100, got %d", req.MaxTokens)
		}
		if req.Temperature != 0.2 {
			t.Errorf("expected temperature 0.2, got %v", req.Temperature)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ChatResponse{
			Choices: []ChatChoice{{Message: Message{Role: RoleAssistant, Content: "Response"}}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", 0)

	messages := []Message{
		{Role: RoleSystem, Content: "You are a helpful assistant"},
		{Role: RoleUser, Content: "Hello"},
	}

	reply, err := client.ChatWithMessages(context.Background(), messages, ChatParams{
		Model:       "custom-model",
		MaxTokens:   100,
		Temperature: 0.2,
	})
	if err != nil {
		t.Fatalf("ChatWithMessages() error = %v", err)
	}
	if reply != "Response" {
		t.Errorf("ChatWithMessages() reply = %v, want Response", reply)
	}
}

func TestClient_ChatWithMessages_Defaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		_ = json.NewDecoder(r.Body).Decode(&raw)

		if raw["model"] != "test-model" {
			t.Errorf("expected model test-model, got %v", raw["model"])
		}
		if _, ok := raw["max_tokens"]; ok {
			t.Error("max_tokens should be omitted when zero")
		}
		if temp, _ := raw["temperature"].(float64); temp < 0.69 || temp > 0.71 {
			t.Errorf("expected default temperature 0.7, got %v", raw["temperature"])
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ChatResponse{
			Choices: []ChatChoice{{Message: Message{Content: "Response"}}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "test-model", 0)

	reply, err := client.ChatWithMessages(context.Background(), []Message{{Role: RoleUser, Content: "Hello"}}, ChatParams{})
	if err != nil {
		t.Fatalf("ChatWithMessages() error = %v", err)
	}
	if reply != "Response" {
		t.Errorf("ChatWithMessages() reply = %v, want Response", reply)
	}
}
