package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"metacontent/internal/contextutil"
)

//go:embed pages/*.md
var pageFS embed.FS

// Page names served by PageHandler.
const (
	PageIndex        = "index"
	PagePrivacy      = "privacy"
	PageTerms        = "terms"
	PageDataDeletion = "data-deletion"
)

var pageTitles = map[string]string{
	PageIndex:        "Home",
	PagePrivacy:      "Privacy Policy",
	PageTerms:        "Terms of Service",
	PageDataDeletion: "Data Deletion",
}

// PageHandler serves the static markdown pages as rendered HTML.
type PageHandler struct {
	app      string
	parser   goldmark.Markdown
	template *template.Template
}

type pageData struct {
	Title   string
	App     string
	Content template.HTML
}

// NewPageHandler creates a PageHandler. app replaces {{app}} in page sources.
func NewPageHandler(app string) *PageHandler {
	tmpl := template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Title}} | {{.App}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 820px;
      line-height: 1.7;
      color: #1c1e21;
      background: #f0f2f5;
    }
    nav a {
      margin-right: 1rem;
      color: #1877f2;
      text-decoration: none;
    }
    article {
      background: #fff;
      border-radius: 12px;
      padding: 2rem;
      margin-top: 1.5rem;
      box-shadow: 0 1px 3px rgba(0, 0, 0, 0.12);
    }
    table {
      border-collapse: collapse;
    }
    th, td {
      border: 1px solid #dddfe2;
      padding: 0.4rem 0.8rem;
      text-align: left;
    }
    code {
      background: #f5f6f7;
      padding: 2px 5px;
      border-radius: 4px;
    }
  </style>
</head>
<body>
  <nav><a href="/">{{.App}}</a><a href="/privacy">Privacy</a><a href="/terms">Terms</a><a href="/data-deletion">Data deletion</a></nav>
  <article>{{.Content}}</article>
</body>
</html>`))

	return &PageHandler{
		app:      app,
		parser:   newMarkdown(),
		template: tmpl,
	}
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

// Page returns a handler that renders the named markdown page.
func (h *PageHandler) Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := contextutil.LoggerFromContext(ctx)

		source, err := pageFS.ReadFile("pages/" + name + ".md")
		if err != nil {
			logger.ErrorContext(ctx, "page source missing", "page", name, "error", err)
			http.Error(w, "page not found", http.StatusNotFound)
			return
		}

		content, err := renderMarkdown(h.parser, []byte(strings.ReplaceAll(string(source), "{{app}}", h.app)))
		if err != nil {
			logger.ErrorContext(ctx, "failed to render markdown", "page", name, "error", err)
			http.Error(w, "failed to render page", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := h.template.Execute(w, pageData{
			Title:   pageTitles[name],
			App:     h.app,
			Content: template.HTML(content),
		}); err != nil {
			logger.ErrorContext(ctx, "failed to execute page template", "page", name, "error", err)
		}
	}
}

// DataDeletionRequest is the body of a data deletion callback.
type DataDeletionRequest struct {
	ConfirmationCode string `json:"confirmation_code"`
}

// DataDeletionResponse echoes the confirmation code. URL carries the same
// value as ConfirmationCode.
//
// swagger:model DataDeletionResponse
type DataDeletionResponse struct {
	URL              string `json:"url"`
	ConfirmationCode string `json:"confirmation_code"`
}

// DataDeletion accepts a deletion callback as form or JSON and echoes the
// confirmation code, generating one when none is supplied.
//
// swagger:route POST /data-deletion dataDeletion
func (h *PageHandler) DataDeletion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var code string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req DataDeletionRequest
		if err := decodeJSON(r, &req); err != nil {
			logger.WarnContext(ctx, "invalid request body", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		code = strings.TrimSpace(req.ConfirmationCode)
	} else {
		code = formValue(r, "confirmation_code", "")
	}

	if code == "" {
		code = uuid.New().String()
	}

	logger.InfoContext(ctx, "data deletion requested", "confirmation_code", code)
	writeJSON(ctx, w, http.StatusOK, DataDeletionResponse{URL: code, ConfirmationCode: code})
}

func renderMarkdown(md goldmark.Markdown, content []byte) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
