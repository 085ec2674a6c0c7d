package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"metacontent/internal/outbound"
)

// Image generation defaults.
const (
	DefaultImageSize  = "1024x1024"
	DefaultImageStyle = "photorealistic"
)

// ErrNoImage is returned when an image response carries no URL.
var ErrNoImage = errors.New("no image returned")

// ImageClient calls an OpenAI-compatible image generation endpoint.
type ImageClient struct {
	Model string
	Size  string
	api   *outbound.Client
}

// NewImageClient creates an ImageClient authenticated with a bearer API key.
func NewImageClient(baseURL, apiKey, model string, timeout time.Duration) *ImageClient {
	opts := []outbound.Option{
		outbound.WithHeaderAuth("Authorization", "Bearer", apiKey),
		outbound.WithEncoding(outbound.EncodingJSON),
	}
	if timeout > 0 {
		opts = append(opts, outbound.WithTimeout(timeout))
	}
	return &ImageClient{
		Model: model,
		Size:  DefaultImageSize,
		api:   outbound.New(baseURL, opts...),
	}
}

type imageRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Generate requests a single image for prompt and returns its URL.
func (c *ImageClient) Generate(ctx context.Context, prompt string) (string, error) {
	var resp imageResponse
	err := c.api.Do(ctx, outbound.Call{
		Method:   http.MethodPost,
		Endpoint: "/v1/images/generations",
		Payload:  imageRequest{Model: c.Model, Prompt: prompt, N: 1, Size: c.Size},
	}, &resp)
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", ErrNoImage
	}
	return resp.Data[0].URL, nil
}

// EnhancePrompt appends style and quality qualifiers to prompt.
func EnhancePrompt(prompt, style string) string {
	style = strings.TrimSpace(style)
	if style == "" {
		style = DefaultImageStyle
	}
	return fmt.Sprintf("%s, %s style, high quality, professional social media image, well lit, sharp focus",
		strings.TrimSpace(prompt), style)
}
