// Package api implements the laserpdf HTTP API.
//
// The API exposes the same pipeline the CLI uses: POST a TOML document
// description to /render and receive the rendered artifact back. Rendering
// is synchronous; artifact caching happens inside the pipeline runner.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/laser-pdf/laser-pdf/pkg/errors"
	"github.com/laser-pdf/laser-pdf/pkg/pipeline"
)

// maxBodySize caps the accepted description size.
const maxBodySize = 1 << 20 // 1 MiB

// Server handles HTTP requests for document rendering.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server around a pipeline runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders the posted TOML description. The format query
// parameter selects the artifact ("pdf" by default); refresh=1 bypasses the
// artifact cache.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	logger := s.requestLogger(r)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatPDF
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.ErrCodeInvalidFormat, err.Error())
		return
	}

	source, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errors.ErrCodeInternal, "read request body")
		return
	}
	if len(source) == 0 {
		s.writeError(w, http.StatusBadRequest, errors.ErrCodeInvalidConfig, "empty document description")
		return
	}
	if len(source) > maxBodySize {
		s.writeError(w, http.StatusRequestEntityTooLarge, errors.ErrCodeInvalidConfig, "document description too large")
		return
	}

	start := time.Now()
	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Source:  source,
		Formats: []string{format},
		Refresh: r.URL.Query().Get("refresh") == "1",
		Logger:  logger,
	})
	if err != nil {
		status, code := statusFor(err)
		logger.Warn("render failed", "status", status, "err", err)
		s.writeError(w, status, code, errors.UserMessage(err))
		return
	}

	logger.Info("rendered document",
		"format", format,
		"pages", result.Pages,
		"cached", result.CacheInfo.RenderHit,
		"duration", time.Since(start))

	w.Header().Set("Content-Type", contentType(format))
	if result.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	_, _ = w.Write(result.Artifacts[format])
}

func contentType(format string) string {
	if format == pipeline.FormatPDF {
		return "application/pdf"
	}
	return "application/json"
}

// statusFor maps pipeline errors onto HTTP statuses. Description problems
// are the caller's fault; everything else is ours.
func statusFor(err error) (int, errors.Code) {
	switch code := errors.GetCode(err); code {
	case errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidFont:
		return http.StatusUnprocessableEntity, code
	case errors.ErrCodeFontNotFound, errors.ErrCodeFileNotFound, errors.ErrCodeNotFound:
		return http.StatusUnprocessableEntity, code
	default:
		return http.StatusInternalServerError, errors.ErrCodeInternal
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, code errors.Code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg, Code: string(code)})
}

type ctxKey int

const requestIDKey ctxKey = 0

// requestID tags every request with a UUID, echoed back in X-Request-ID.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// recoverer turns handler panics into 500 responses.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.requestLogger(r).Error("handler panic", "panic", rec)
				s.writeError(w, http.StatusInternalServerError, errors.ErrCodeInternal, "internal error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requestLogger(r *http.Request) *log.Logger {
	if id, ok := r.Context().Value(requestIDKey).(string); ok {
		return s.logger.With("request_id", id)
	}
	return s.logger
}
