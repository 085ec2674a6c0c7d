package llm

import (
	"context"
	"errors"
	"net/http"
	"time"

	"metacontent/internal/contextutil"
	"metacontent/internal/outbound"
)

// DefaultTemperature is used when ChatParams.Temperature is zero.
const DefaultTemperature = 0.7

// ErrNoChoices is returned when a completion response has no choices.
var ErrNoChoices = errors.New("no choices returned")

// Client is a client for an OpenAI-compatible chat completions API.
type Client struct {
	Model string
	api   *outbound.Client
}

// NewClient creates a new LLM client authenticated with a bearer API key.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	opts := []outbound.Option{
		outbound.WithHeaderAuth("Authorization", "Bearer", apiKey),
		outbound.WithEncoding(outbound.EncodingJSON),
	}
	if timeout > 0 {
		opts = append(opts, outbound.WithTimeout(timeout))
	}
	return &Client{
		Model: model,
		api:   outbound.New(baseURL, opts...),
	}
}

// ChatRequest represents the request payload for chat completions.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float32   `json:"temperature"`
}

// ChatChoice represents a single choice in the chat response.
type ChatChoice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// ChatResponse represents the response from the chat completions API.
type ChatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Choices []ChatChoice `json:"choices"`
}

// ChatWithMessages sends a conversation and returns the first choice's content.
func (c *Client) ChatWithMessages(ctx context.Context, messages []Message, params ChatParams) (string, error) {
	req := ChatRequest{
		Model:       c.Model,
		Messages:    messages,
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
	}
	if params.Model != "" {
		req.Model = params.Model
	}
	if req.Temperature == 0 {
		req.Temperature = DefaultTemperature
	}

	var resp ChatResponse
	err := c.api.Do(ctx, outbound.Call{
		Method:   http.MethodPost,
		Endpoint: "/v1/chat/completions",
		Payload:  req,
	}, &resp)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "chat completion",
		"model", req.Model,
		"messages", len(messages),
		"finish_reason", resp.Choices[0].FinishReason,
	)
	return resp.Choices[0].Message.Content, nil
}
