package outbound

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"metacontent/internal/contextutil"
)

// DefaultTimeout is applied to every outbound call unless overridden with WithTimeout.
const DefaultTimeout = 25 * time.Second

// Encoding selects how POST/PATCH payloads are written to the request body.
type Encoding int

const (
	// EncodingForm sends payloads as application/x-www-form-urlencoded.
	EncodingForm Encoding = iota
	// EncodingJSON sends payloads as application/json.
	EncodingJSON
)

// Client calls a single external JSON API. Credentials, timeout and body
// encoding are fixed at construction so callers only describe the call.
type Client struct {
	baseURL  string
	http     *resty.Client
	encoding Encoding
}

// Option configures a Client.
type Option func(*Client)

// WithQueryAuth attaches token as the query parameter param on every call.
func WithQueryAuth(param, token string) Option {
	return func(c *Client) {
		c.http.SetQueryParam(param, token)
	}
}

// WithHeaderAuth attaches token in header on every call, prefixed by scheme when non-empty.
func WithHeaderAuth(header, scheme, token string) Option {
	return func(c *Client) {
		value := token
		if scheme != "" {
			value = scheme + " " + token
		}
		c.http.SetHeader(header, value)
	}
}

// WithHeader sets a fixed header on every call.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.http.SetHeader(key, value)
	}
}

// WithEncoding selects the body encoding for POST/PATCH payloads.
func WithEncoding(enc Encoding) Option {
	return func(c *Client) {
		c.encoding = enc
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// New creates a Client rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(DefaultTimeout).
			SetHeader("Accept", "application/json"),
		encoding: EncodingForm,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the root URL calls are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Call describes one outbound request.
type Call struct {
	Method   string
	Endpoint string
	// Payload is merged into the query string for GET and sent as the body otherwise.
	Payload any
	// Query holds extra query parameters sent regardless of method.
	Query   map[string]string
	Headers map[string]string
	// Body, when non-nil, is sent verbatim instead of Payload.
	Body        []byte
	ContentType string
}

// Request performs a call whose response is a JSON object.
func (c *Client) Request(ctx context.Context, endpoint, method string, payload map[string]any) (map[string]any, error) {
	var result map[string]any
	call := Call{Method: method, Endpoint: endpoint}
	if len(payload) > 0 {
		call.Payload = payload
	}
	if err := c.Do(ctx, call, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = map[string]any{}
	}
	return result, nil
}

// Do performs call and decodes a successful JSON body into out (which may be nil).
func (c *Client) Do(ctx context.Context, call Call, out any) error {
	logger := contextutil.LoggerFromContext(ctx)

	method := strings.ToUpper(call.Method)
	if method == "" {
		method = http.MethodGet
	}

	req := c.http.R().SetContext(ctx)
	for k, v := range call.Headers {
		req.SetHeader(k, v)
	}
	if len(call.Query) > 0 {
		req.SetQueryParams(call.Query)
	}

	switch {
	case call.Body != nil:
		if call.ContentType != "" {
			req.SetHeader("Content-Type", call.ContentType)
		}
		req.SetBody(call.Body)
	case method == http.MethodGet:
		params, err := stringValues(call.Payload)
		if err != nil {
			return err
		}
		req.SetQueryParams(params)
	case call.Payload != nil:
		if c.encoding == EncodingForm {
			form, err := stringValues(call.Payload)
			if err != nil {
				return err
			}
			req.SetFormData(form)
		} else {
			req.SetHeader("Content-Type", "application/json")
			req.SetBody(call.Payload)
		}
	}

	logger.DebugContext(ctx, "outbound request", "method", method, "base_url", c.baseURL, "endpoint", call.Endpoint)

	resp, err := req.Execute(method, call.Endpoint)
	if err != nil {
		logger.WarnContext(ctx, "outbound transport failure", "method", method, "endpoint", call.Endpoint, "error", err)
		return &TransportError{Cause: err}
	}

	body := resp.Body()
	if resp.StatusCode() >= http.StatusBadRequest {
		apiErr := &RemoteAPIError{
			StatusCode: resp.StatusCode(),
			Message:    ExtractErrorMessage(body),
		}
		logger.WarnContext(ctx, "outbound API error", "method", method, "endpoint", call.Endpoint, "status", apiErr.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		logger.WarnContext(ctx, "outbound response not JSON", "endpoint", call.Endpoint, "error", err)
		return &RemoteAPIError{StatusCode: resp.StatusCode(), Message: "invalid JSON response"}
	}
	return nil
}

// stringValues flattens a payload map into string query/form values.
func stringValues(payload any) (map[string]string, error) {
	switch p := payload.(type) {
	case nil:
		return nil, nil
	case map[string]string:
		return p, nil
	case map[string]any:
		values := make(map[string]string, len(p))
		for k, v := range p {
			values[k] = fmt.Sprint(v)
		}
		return values, nil
	default:
		return nil, fmt.Errorf("payload of type %T cannot be sent as query or form values", payload)
	}
}
