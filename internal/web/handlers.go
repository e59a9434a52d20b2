package web

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/xolan/timesplit/internal/analyzer"
	"github.com/xolan/timesplit/internal/log"
	"github.com/xolan/timesplit/internal/service"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	analysis *service.AnalysisService
	renderer *Renderer
}

// AnalyzeRequest is the JSON body accepted by POST /api/analyze
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// HandleIndex handles GET / with an empty notes box.
func (h *Handlers) HandleIndex(w http.ResponseWriter, r *http.Request) {
	h.renderer.renderPage(w, r, "index", newIndexData(h.renderer.version, "", nil, nil))
}

// HandleAnalyze handles POST /analyze from the notes form.
func (h *Handlers) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		status := http.StatusBadRequest
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status = http.StatusRequestEntityTooLarge
		}
		data := newIndexData(h.renderer.version, "", nil, nil)
		data.Error = "Could not read the submitted notes."
		h.renderer.renderPageStatus(w, r, status, "index", data)
		return
	}

	notes := r.PostFormValue("notes")
	report, err := h.analysis.Analyze(notes)
	if err != nil {
		logAnalysisError(r, err)
	}

	h.renderer.renderPageStatus(w, r, statusFor(err), "index", newIndexData(h.renderer.version, notes, report, err))
}

// HandleAPIAnalyze handles POST /api/analyze. The body is either JSON
// ({"text": "..."}) or the raw notes. ?entries=true keeps the entry list.
func (h *Handlers) HandleAPIAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	text, err := readAPIText(r)
	if err != nil {
		status := http.StatusBadRequest
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			status = http.StatusRequestEntityTooLarge
		}
		renderJSONError(w, status, "BAD_REQUEST", err.Error())
		return
	}

	report, err := h.analysis.Analyze(text)
	if err != nil {
		logAnalysisError(r, err)
		code := string(analyzer.KindProcessing)
		var aErr *analyzer.Error
		if errors.As(err, &aErr) {
			code = string(aErr.Kind)
		}
		renderJSONError(w, statusFor(err), code, analyzer.UserMessage(err))
		return
	}

	if entries, _ := strconv.ParseBool(r.URL.Query().Get("entries")); !entries {
		report.Entries = nil
	}
	renderJSON(w, http.StatusOK, report)
}

func readAPIText(r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", err
		}
		return req.Text, nil
	}

	b, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// statusFor maps analysis errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case analyzer.IsKind(err, analyzer.KindNoEntriesFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func logAnalysisError(r *http.Request, err error) {
	logger := log.FromContext(r.Context())
	if analyzer.IsKind(err, analyzer.KindNoEntriesFound) {
		logger.Debug("no entries in submitted notes")
		return
	}
	logger.ErrorContext(r.Context(), "analysis failed", "error", err)
}
