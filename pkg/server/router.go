package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"vectorprime/pkg/analysis"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultMaxUploadBytes caps the multipart body of /analyze-rfp.
const DefaultMaxUploadBytes int64 = 20 << 20

// RouterOptions configure NewRouter.
type RouterOptions struct {
	MaxUploadBytes int64
	CORSOrigins    []string
}

type handler struct {
	analyzer       *Analyzer
	maxUploadBytes int64
	started        time.Time
}

// NewRouter wires the analysis service's routes and middleware.
func NewRouter(analyzer *Analyzer, opts RouterOptions) *chi.Mux {
	h := &handler{
		analyzer:       analyzer,
		maxUploadBytes: opts.MaxUploadBytes,
		started:        time.Now(),
	}
	if h.maxUploadBytes <= 0 {
		h.maxUploadBytes = DefaultMaxUploadBytes
	}
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(metricsRecorder)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger)
	r.Use(chimw.Recoverer)

	// The dashboard may be served from anywhere during a demo.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", h.health)
	r.Post("/analyze-rfp", h.analyzeRFP)

	return r
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}

func (h *handler) analyzeRFP(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxUploadBytes {
		analysesTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile(analysis.FormField)
	if err != nil {
		analysesTotal.WithLabelValues("rejected").Inc()
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "multipart field \"file\" is required")
		return
	}
	defer file.Close()

	doc, err := io.ReadAll(file)
	if err != nil {
		analysesTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}
	uploadBytes.Observe(float64(len(doc)))

	slog.Info("analysis_request_received",
		"filename", header.Filename,
		"bytes", len(doc),
		"request_id", chimw.GetReqID(r.Context()),
	)

	result, err := h.analyzer.Analyze(r.Context(), header.Filename, doc)
	if err != nil {
		analysesTotal.WithLabelValues("canceled").Inc()
		slog.Warn("analysis_aborted", "filename", header.Filename, "error", err)
		// The client is gone; the status is for the access log only.
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	analysesTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response_encode_failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
