package preview

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/fundkit/pkg/logger"
	"github.com/dmitrymomot/fundkit/pkg/newsletter"
)

// Handler serves the theme and template catalogues and renders template
// previews with sample data.
type Handler struct {
	logger *slog.Logger
	data   newsletter.Data
}

// Option configures a Handler.
type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithData overlays data on top of SampleData for every preview.
func WithData(data newsletter.Data) Option {
	return func(h *Handler) {
		h.data = h.data.Merge(data)
	}
}

// NewHandler creates a preview Handler.
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		logger: logger.Discard(),
		data:   SampleData(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.logger = h.logger.With(logger.Component("preview"))
	return h
}

// Router mounts the preview routes:
//
//	GET /health
//	GET /themes
//	GET /templates
//	GET /templates/{id}          rendered HTML, ?theme=<id> swaps the theme
//	GET /templates/{id}/blocks   rendered body without the document shell
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", h.health)
	r.Get("/themes", h.listThemes)
	r.Route("/templates", func(r chi.Router) {
		r.Get("/", h.listTemplates)
		r.Get("/{id}", h.renderTemplate)
		r.Get("/{id}/blocks", h.renderBlocks)
	})
	return r
}

// Response is the JSON envelope for catalogue endpoints.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TemplateSummary describes a template without its blocks.
type TemplateSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	ThemeID     string `json:"theme_id"`
	BlockCount  int    `json:"block_count"`
	IsDefault   bool   `json:"is_default"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	for _, t := range newsletter.Templates() {
		if err := newsletter.Validate(t); err != nil {
			h.logger.ErrorContext(r.Context(), "catalogue check failed", logger.TemplateID(t.ID), logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, Response{Error: "template catalogue is invalid"})
			return
		}
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Data: map[string]string{"status": "healthy"}})
}

func (h *Handler) listThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{Success: true, Data: newsletter.Themes()})
}

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	templates := newsletter.Templates()
	out := make([]TemplateSummary, 0, len(templates))
	for _, t := range templates {
		out = append(out, TemplateSummary{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Subject:     t.Subject,
			ThemeID:     t.Theme.ID,
			BlockCount:  len(t.Blocks),
			IsDefault:   t.IsDefault,
		})
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Data: out})
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolve(w, r)
	if !ok {
		return
	}
	html, err := newsletter.Generate(t, h.data)
	h.writeHTML(w, r, t, html, err)
}

func (h *Handler) renderBlocks(w http.ResponseWriter, r *http.Request) {
	t, ok := h.resolve(w, r)
	if !ok {
		return
	}
	html, err := newsletter.Body(t, h.data)
	h.writeHTML(w, r, t, html, err)
}

// resolve looks up the template named in the path and applies the optional
// theme override. It writes the error response itself.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) (newsletter.Template, bool) {
	id := chi.URLParam(r, "id")
	t, err := newsletter.TemplateByID(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, Response{Error: "template not found"})
		return newsletter.Template{}, false
	}

	if themeID := strings.TrimSpace(r.URL.Query().Get("theme")); themeID != "" {
		theme, err := newsletter.ThemeByID(themeID)
		if err != nil {
			writeJSON(w, http.StatusNotFound, Response{Error: "theme not found"})
			return newsletter.Template{}, false
		}
		t = t.WithTheme(theme)
	}
	return t, true
}

func (h *Handler) writeHTML(w http.ResponseWriter, r *http.Request, t newsletter.Template, html string, err error) {
	if err != nil {
		h.logger.ErrorContext(r.Context(), "preview render failed",
			logger.TemplateID(t.ID),
			logger.ThemeID(t.Theme.ID),
			logger.Error(errors.Join(ErrRender, err)),
		)
		writeJSON(w, http.StatusInternalServerError, Response{Error: "failed to render template"})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func writeJSON(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
