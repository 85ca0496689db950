package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/widebit/ui512"
	"github.com/widebit/ui512/internal/logging"
)

var tracer = otel.Tracer("github.com/widebit/ui512/internal/server")

// Server exposes the arithmetic engines over a small JSON API.
type Server struct {
	addr     string
	logger   logging.Logger
	metrics  *Metrics
	security SecurityConfig
}

// New creates a server bound to addr with the default security
// configuration.
func New(addr string, logger logging.Logger) *Server {
	return &Server{
		addr:     addr,
		logger:   logger,
		metrics:  NewMetrics(),
		security: DefaultSecurityConfig(),
	}
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("server listening", logging.String("addr", s.addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		s.logger.Info("server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// routes builds the request multiplexer with the middleware chain applied
// to the API endpoints.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/mul", s.instrument(s.handleMul))
	mux.HandleFunc("/v1/div", s.instrument(s.handleDiv))
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/metrics", s.handleMetrics)
	return mux
}

// instrument chains the security, metrics and logging middleware around a
// handler.
func (s *Server) instrument(h http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.metricsMiddleware(s.loggingMiddleware(h)))
}

// statusRecorder captures the response status code for middleware.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware tracks in-flight requests, request counts and latency.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next(rec, r)
		s.metrics.ObserveRequest(r.URL.Path, strconv.Itoa(rec.status), time.Since(start))
	}
}

// loggingMiddleware emits one structured log line per request.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next(rec, r)
		s.logger.Info("request",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("status", rec.status),
			logging.Dur("duration", time.Since(start)),
		)
	}
}

// operationRequest is the JSON body for /v1/mul and /v1/div. Operands
// accept decimal or 0x/0o/0b prefixed values; Base selects the output
// base and defaults to 10.
type operationRequest struct {
	A    string `json:"a"`
	B    string `json:"b"`
	Base int    `json:"base,omitempty"`
}

type mulResponse struct {
	Product  string `json:"product"`
	Overflow string `json:"overflow"`
}

type divResponse struct {
	Quotient  string `json:"quotient"`
	Remainder string `json:"remainder"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// decodeOperation parses and validates the request body. A non-nil error
// has already been written to the client.
func (s *Server) decodeOperation(w http.ResponseWriter, r *http.Request) (a, b ui512.Uint512, base int, ok bool) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "only POST is supported")
		return a, b, 0, false
	}

	var req operationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return a, b, 0, false
	}
	base = req.Base
	if base == 0 {
		base = 10
	}
	switch base {
	case 2, 8, 10, 16:
	default:
		s.respondError(w, http.StatusBadRequest, "unsupported base, want 2, 8, 10 or 16")
		return a, b, 0, false
	}

	var err error
	if a, err = ui512.Parse(req.A); err != nil {
		s.respondError(w, http.StatusBadRequest, "operand a: "+err.Error())
		return a, b, 0, false
	}
	if b, err = ui512.Parse(req.B); err != nil {
		s.respondError(w, http.StatusBadRequest, "operand b: "+err.Error())
		return a, b, 0, false
	}
	return a, b, base, true
}

func (s *Server) handleMul(w http.ResponseWriter, r *http.Request) {
	a, b, base, ok := s.decodeOperation(w, r)
	if !ok {
		return
	}

	_, span := tracer.Start(r.Context(), "ui512.mul")
	defer span.End()
	span.SetAttributes(
		attribute.Int("operand.a.bits", a.BitLen()),
		attribute.Int("operand.b.bits", b.BitLen()),
	)

	var product, overflow ui512.Uint512
	ui512.Mul(&product, &overflow, &a, &b)
	s.respondJSON(w, http.StatusOK, mulResponse{
		Product:  product.Text(base),
		Overflow: overflow.Text(base),
	})
}

func (s *Server) handleDiv(w http.ResponseWriter, r *http.Request) {
	a, b, base, ok := s.decodeOperation(w, r)
	if !ok {
		return
	}

	_, span := tracer.Start(r.Context(), "ui512.div")
	defer span.End()
	span.SetAttributes(
		attribute.Int("operand.a.bits", a.BitLen()),
		attribute.Int("operand.b.bits", b.BitLen()),
	)

	var quotient, remainder ui512.Uint512
	if err := ui512.Div(&quotient, &remainder, &a, &b); err != nil {
		span.RecordError(err)
		s.metrics.IncrementDivideByZero()
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, divResponse{
		Quotient:  quotient.Text(base),
		Remainder: remainder.Text(base),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, errorResponse{Error: msg})
}
