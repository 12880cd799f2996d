// Package http exposes a built flow document over a local inspection server,
// so the team can review the exact JSON and topology that would be deployed
// without touching the Retell dashboard.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zonder-ai/beaflow/internal/presentation/graph"
	"github.com/zonder-ai/beaflow/pkg/flow"
)

// Server serves one immutable document. There is no state to mutate, so
// every handler is a read.
type Server struct {
	doc    *flow.Document
	logger *slog.Logger

	requests *prometheus.CounterVec
}

// NewHandler builds the inspection handler for the given document. Metrics
// live in a per-handler registry so repeated construction cannot collide.
func NewHandler(doc *flow.Document, logger *slog.Logger) http.Handler {
	registry := prometheus.NewRegistry()
	s := &Server{
		doc:    doc,
		logger: logger,
		requests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "beaflow_http_requests_total",
			Help: "Inspection server requests by path and status.",
		}, []string{"path", "code"}),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.instrument("/healthz", s.handleHealth))
	r.Get("/flow", s.instrument("/flow", s.handleFlow))
	r.Get("/flow.mmd", s.instrument("/flow.mmd", s.handleMermaid))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return r
}

// instrument counts requests per path and response code.
func (s *Server) instrument(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next(ww, r)
		s.requests.WithLabelValues(path, strconv.Itoa(ww.Status())).Inc()
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleFlow returns the document exactly as it would be deployed.
func (s *Server) handleFlow(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := s.doc.EncodeIndent(w); err != nil {
		s.logger.Error("encode flow", "error", err)
		http.Error(w, "encoding failed", http.StatusInternalServerError)
	}
}

// handleMermaid returns the topology diagram.
func (s *Server) handleMermaid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(graph.GenerateMermaid(s.doc)))
}
