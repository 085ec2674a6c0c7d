// Package graph talks to the Meta Graph API for Facebook pages and Instagram
// business accounts.
package graph

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"metacontent/internal/contextutil"
	"metacontent/internal/outbound"
)

// DefaultBaseURL is the versioned Graph API root.
const DefaultBaseURL = "https://graph.facebook.com/v18.0"

// Defaults applied when an insight data point omits a field.
const (
	UnknownName   = "Unknown"
	MissingValue  = "N/A"
	UnknownPeriod = "Unknown"
)

// ErrMissingCreationID is returned when a media container response carries no id.
var ErrMissingCreationID = errors.New("media container response missing id")

// Page is a Facebook page the token can manage.
type Page struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// Insight is one reshaped insights data point.
type Insight struct {
	Name   string `json:"name"`
	Value  any    `json:"value"`
	Period string `json:"period,omitempty"`
}

// InstagramPost is the result of the two-step Instagram publish.
type InstagramPost struct {
	ID         string `json:"id"`
	CreationID string `json:"creation_id"`
}

// Client is a Graph API client authenticated with a single access token.
type Client struct {
	api *outbound.Client
}

// NewClient creates a Client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL, accessToken string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	opts := []outbound.Option{outbound.WithQueryAuth("access_token", accessToken)}
	if timeout > 0 {
		opts = append(opts, outbound.WithTimeout(timeout))
	}
	return &Client{api: outbound.New(baseURL, opts...)}
}

type idResponse struct {
	ID string `json:"id"`
}

// ListPages returns the pages managed by the token owner.
func (c *Client) ListPages(ctx context.Context) ([]Page, error) {
	var resp struct {
		Data []Page `json:"data"`
	}
	if err := c.api.Do(ctx, outbound.Call{Method: http.MethodGet, Endpoint: "me/accounts"}, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		resp.Data = []Page{}
	}
	return resp.Data, nil
}

// PublishPagePost publishes message (and link, when set) to a page feed and
// returns the post id.
func (c *Client) PublishPagePost(ctx context.Context, pageID, message, link string) (string, error) {
	payload := map[string]string{"message": message}
	if link != "" {
		payload["link"] = link
	}

	var resp idResponse
	err := c.api.Do(ctx, outbound.Call{Method: http.MethodPost, Endpoint: pageID + "/feed", Payload: payload}, &resp)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

// CreateMediaContainer creates an unpublished Instagram media container and
// returns its creation id.
func (c *Client) CreateMediaContainer(ctx context.Context, accountID, imageURL, caption string) (string, error) {
	var resp idResponse
	err := c.api.Do(ctx, outbound.Call{
		Method:   http.MethodPost,
		Endpoint: accountID + "/media",
		Payload:  map[string]string{"image_url": imageURL, "caption": caption},
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", ErrMissingCreationID
	}
	return resp.ID, nil
}

// PublishMedia publishes a previously created container and returns the media id.
func (c *Client) PublishMedia(ctx context.Context, accountID, creationID string) (string, error) {
	var resp idResponse
	err := c.api.Do(ctx, outbound.Call{
		Method:   http.MethodPost,
		Endpoint: accountID + "/media_publish",
		Payload:  map[string]string{"creation_id": creationID},
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

// PublishInstagramImage creates a media container then publishes it. A failed
// container step returns before anything is published.
func (c *Client) PublishInstagramImage(ctx context.Context, accountID, imageURL, caption string) (InstagramPost, error) {
	logger := contextutil.LoggerFromContext(ctx)

	creationID, err := c.CreateMediaContainer(ctx, accountID, imageURL, caption)
	if err != nil {
		logger.WarnContext(ctx, "instagram container creation failed", "account_id", accountID, "error", err)
		return InstagramPost{}, err
	}

	mediaID, err := c.PublishMedia(ctx, accountID, creationID)
	if err != nil {
		logger.WarnContext(ctx, "instagram publish failed", "account_id", accountID, "creation_id", creationID, "error", err)
		return InstagramPost{}, err
	}

	logger.InfoContext(ctx, "instagram media published", "account_id", accountID, "media_id", mediaID)
	return InstagramPost{ID: mediaID, CreationID: creationID}, nil
}

type insightPoint struct {
	Name   *string `json:"name"`
	Period *string `json:"period"`
	Values []struct {
		Value json.RawMessage `json:"value"`
	} `json:"values"`
}

// Insights fetches metric for objectID. period is omitted from the request
// when empty.
func (c *Client) Insights(ctx context.Context, objectID, metric, period string) ([]Insight, error) {
	params := map[string]string{"metric": metric}
	if period != "" {
		params["period"] = period
	}

	var resp struct {
		Data []insightPoint `json:"data"`
	}
	err := c.api.Do(ctx, outbound.Call{Method: http.MethodGet, Endpoint: objectID + "/insights", Payload: params}, &resp)
	if err != nil {
		return nil, err
	}
	return reshapeInsights(resp.Data), nil
}

// reshapeInsights flattens data points to name, first value and period.
func reshapeInsights(points []insightPoint) []Insight {
	insights := make([]Insight, 0, len(points))
	for _, p := range points {
		in := Insight{Name: UnknownName, Value: MissingValue, Period: UnknownPeriod}
		if p.Name != nil {
			in.Name = *p.Name
		}
		if p.Period != nil {
			in.Period = *p.Period
		}
		if len(p.Values) > 0 && len(p.Values[0].Value) > 0 {
			var v any
			if err := json.Unmarshal(p.Values[0].Value, &v); err == nil {
				in.Value = v
			}
		}
		insights = append(insights, in)
	}
	return insights
}
