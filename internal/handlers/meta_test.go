package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"

	"metacontent/internal/graph"
	"metacontent/internal/outbound"
	"metacontent/internal/service"
	"metacontent/internal/service/mocks"
)

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestMetaHandler_PostInstagram(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		form       url.Values
		mockSetup  func(*mocks.MockSocialGraph)
		wantStatus int
		wantBody   any
	}{
		{
			name: "two-step publish",
			form: url.Values{"instagram_account_id": {"777"}, "image_url": {"https://img/a.jpg"}, "caption": {"hi"}},
			mockSetup: func(m *mocks.MockSocialGraph) {
				m.EXPECT().
					PublishInstagramImage(gomock.Any(), "777", "https://img/a.jpg", "hi").
					Return(graph.InstagramPost{ID: "m1", CreationID: "123"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   &PostResponse{Success: true, ID: "m1", CreationID: "123"},
		},
		{
			name:       "missing image url is rejected before any call",
			form:       url.Values{"instagram_account_id": {"777"}},
			mockSetup:  func(m *mocks.MockSocialGraph) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   &ErrorResponse{Error: "validation error on field image_url: is required"},
		},
		{
			name: "graph error is passed through",
			form: url.Values{"instagram_account_id": {"777"}, "image_url": {"https://img/a.jpg"}},
			mockSetup: func(m *mocks.MockSocialGraph) {
				m.EXPECT().
					PublishInstagramImage(gomock.Any(), "777", "https://img/a.jpg", "").
					Return(graph.InstagramPost{}, &outbound.RemoteAPIError{StatusCode: 400, Message: "Only photo or video can be accepted as media type."})
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   &ErrorResponse{Error: "Only photo or video can be accepted as media type."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGraph := mocks.NewMockSocialGraph(ctrl)
			tt.mockSetup(mockGraph)
			h := NewMetaHandler(service.NewPublishingService(mockGraph))

			w := httptest.NewRecorder()
			h.PostInstagram(w, formRequest("/post-instagram", tt.form))

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			got := newOfSameType(tt.wantBody)
			if err := json.NewDecoder(w.Body).Decode(got); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if diff := cmp.Diff(tt.wantBody, got); diff != "" {
				t.Errorf("response mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMetaHandler_PostFacebook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGraph := mocks.NewMockSocialGraph(ctrl)
	mockGraph.EXPECT().PublishPagePost(gomock.Any(), "42", "Hello", "").Return("42_9", nil)
	h := NewMetaHandler(service.NewPublishingService(mockGraph))

	w := httptest.NewRecorder()
	h.PostFacebook(w, formRequest("/post-facebook", url.Values{"page_id": {"42"}, "message": {"Hello"}}))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp PostResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.ID != "42_9" {
		t.Errorf("response = %+v", resp)
	}
}

func TestMetaHandler_NotConfigured(t *testing.T) {
	h := NewMetaHandler(service.NewPublishingService(nil))

	w := httptest.NewRecorder()
	h.ListPages(w, httptest.NewRequest(http.MethodGet, "/api/pages", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestMetaHandler_Insights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGraph := mocks.NewMockSocialGraph(ctrl)
	mockGraph.EXPECT().
		Insights(gomock.Any(), "42", "page_views", "day").
		Return([]graph.Insight{{Name: "page_views", Value: float64(12), Period: "day"}}, nil)
	mockGraph.EXPECT().
		Insights(gomock.Any(), "777", "reach", "week").
		Return([]graph.Insight{}, nil)
	h := NewMetaHandler(service.NewPublishingService(mockGraph))

	w := httptest.NewRecorder()
	h.FacebookInsights(w, formRequest("/facebook-insights", url.Values{"page_id": {"42"}}))
	if w.Code != http.StatusOK {
		t.Fatalf("facebook status = %d", w.Code)
	}
	var fb InsightsResponse
	if err := json.NewDecoder(w.Body).Decode(&fb); err != nil {
		t.Fatal(err)
	}
	want := InsightsResponse{Insights: []graph.Insight{{Name: "page_views", Value: float64(12), Period: "day"}}}
	if diff := cmp.Diff(want, fb); diff != "" {
		t.Errorf("facebook insights mismatch (-want +got):\n%s", diff)
	}

	w = httptest.NewRecorder()
	h.InstagramInsights(w, formRequest("/instagram-insights", url.Values{
		"instagram_account_id": {"777"},
		"metric":               {"reach"},
		"period":               {"week"},
	}))
	if w.Code != http.StatusOK {
		t.Fatalf("instagram status = %d", w.Code)
	}
	if got := strings.TrimSpace(w.Body.String()); got != `{"insights":[]}` {
		t.Errorf("instagram body = %s", got)
	}
}

func newOfSameType(v any) any {
	switch v.(type) {
	case *PostResponse:
		return &PostResponse{}
	case *ErrorResponse:
		return &ErrorResponse{}
	default:
		panic("unsupported response type")
	}
}
