package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ufoaiorg/ufoai-sub020/internal/config"
	"github.com/ufoaiorg/ufoai-sub020/internal/handler"
	"github.com/ufoaiorg/ufoai-sub020/internal/logger"
	"github.com/ufoaiorg/ufoai-sub020/internal/metrics"
	"github.com/ufoaiorg/ufoai-sub020/internal/sse"
)

// Tables is what the definition and readiness endpoints read.
type Tables interface {
	handler.DefinitionSource
	NumItems() int
}

type Server struct {
	httpServer *http.Server
	tables     Tables
	previewer  handler.LoadoutPreviewer
}

// NewServer wires the preview API routes. hub may be nil, which leaves the
// event stream unrouted.
func NewServer(cfg *config.Config, tables Tables, previewer handler.LoadoutPreviewer, hub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	guard := NewClientGuard(cfg.TrustedProxies)
	if cfg.APIKey == "" {
		slog.Warn(LogMsgAuthDisabled)
	}

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(cfg.APIKey, guard))
	r.Use(RateLimitMiddleware(guard))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(tablesCheck{tables: tables}))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/items", handler.HandleListItems(tables))
		r.Get("/items/{id}", handler.HandleGetItem(tables))
		r.Get("/containers", handler.HandleListContainers(tables))
		r.Get("/containers/{name}", handler.HandleGetContainer(tables))
		r.Post("/loadout", handler.HandleGenerateLoadout(previewer))
		if hub != nil {
			r.Get("/events", sse.Handler(hub))
		}
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		tables:    tables,
		previewer: previewer,
	}
}

// tablesCheck reports ready once the definition tables hold items.
type tablesCheck struct {
	tables Tables
}

func (c tablesCheck) CheckHealth(ctx context.Context) error {
	if c.tables == nil || c.tables.NumItems() == 0 {
		return errors.New(handler.MsgTablesNotLoaded)
	}
	return ctx.Err()
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Use HasPrefix to catch variations such as /healthz/
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler exposes the router, e.g. for httptest.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
