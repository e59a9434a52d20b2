package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/xolan/timesplit/internal/analyzer"
	"github.com/xolan/timesplit/internal/chart"
	"github.com/xolan/timesplit/internal/log"
)

// Placeholder is shown in the empty notes box
const Placeholder = "Paste your time entries here. Format: [X mins] Task description"

// PageData contains common fields used across all page templates.
type PageData struct {
	Title   string
	Version string
}

// SummaryCard is one category in the summary grid and chart legend.
type SummaryCard struct {
	Name  string
	Color string
	Text  string
}

// IndexPageData is the template data for the analyzer page.
type IndexPageData struct {
	PageData
	Placeholder string
	Notes       string
	Error       string
	Chart       template.HTML
	Cards       []SummaryCard
	Total       string
}

// newIndexData builds the page for the given notes and analysis outcome.
// A failed analysis leaves Chart and Cards empty.
func newIndexData(version, notes string, report *analyzer.Report, err error) IndexPageData {
	data := IndexPageData{
		PageData:    PageData{Title: "Time Tracker Analysis", Version: version},
		Placeholder: Placeholder,
		Notes:       notes,
	}
	if err != nil {
		data.Error = analyzer.UserMessage(err)
		return data
	}
	if report == nil {
		return data
	}

	slices := chart.Layout(report.Summaries)
	// chart.SVG escapes every piece of user-derived text it emits
	data.Chart = template.HTML(chart.SVG(slices, chart.DefaultSVGOptions()))
	for _, s := range slices {
		data.Cards = append(data.Cards, SummaryCard{
			Name:  s.Summary.Category.String(),
			Color: s.Color,
			Text:  chart.SummaryText(s.Summary),
		})
	}
	data.Total = chart.FormatNumber(float64(report.TotalMinutes)) + " minutes"
	return data
}

// Renderer manages template parsing and rendering.
type Renderer struct {
	templates map[string]*template.Template
	version   string
}

// NewRenderer creates a Renderer by parsing templates from the given FS.
func NewRenderer(templateFS fs.FS, version string) *Renderer {
	layoutTmpl := template.Must(template.New("layout").ParseFS(templateFS, "layout.html"))

	pages := map[string]string{
		"index": "index.html",
	}

	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t := template.Must(layoutTmpl.Clone())
		template.Must(t.ParseFS(templateFS, file))
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		version:   version,
	}
}

// renderPage renders a named page template with the given data and HTTP 200 status.
func (r *Renderer) renderPage(w http.ResponseWriter, req *http.Request, name string, data any) {
	r.renderPageStatus(w, req, http.StatusOK, name, data)
}

// renderPageStatus renders a named page template with the given data and HTTP status code.
func (r *Renderer) renderPageStatus(w http.ResponseWriter, req *http.Request, status int, name string, data any) {
	logger := log.FromContext(req.Context())

	t, ok := r.templates[name]
	if !ok {
		logger.Error("template not found", "template", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Error("template execution failed", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// renderJSONError writes {"error": {"code", "message", "status"}}.
func renderJSONError(w http.ResponseWriter, status int, code, message string) {
	renderJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
			"status":  status,
		},
	})
}
