package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/agbru/bignum/bignum"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/orchestration"
)

// Server exposes bigcalc's comparison orchestrator and Prometheus metrics
// over HTTP.
type Server struct {
	addr     string
	metrics  *Metrics
	logger   logging.Logger
	security SecurityConfig
	srv      *http.Server
}

// New builds a Server listening on addr.
func New(addr string, logger logging.Logger) *Server {
	return &Server{
		addr:     addr,
		metrics:  NewMetrics(),
		logger:   logger,
		security: DefaultSecurityConfig(),
	}
}

// ListenAndServe starts the HTTP server and blocks until ctx is canceled or
// an unrecoverable error occurs.
func (s *Server) ListenAndServe(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleMetrics)))
	mux.HandleFunc("/calc", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleCalc)))

	s.srv = &http.Server{Addr: s.addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// metricsMiddleware tracks in-flight request concurrency around next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}

// handleMetrics serves the Prometheus text-exposition page for GET, 405
// otherwise.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// calcRequest is the JSON body /calc accepts: an operation name, two
// operand literals, and the radix they're encoded in.
type calcRequest struct {
	Op   string `json:"op"`
	A    string `json:"a"`
	B    string `json:"b"`
	Base int    `json:"base"`
}

type calcResponse struct {
	Result    string `json:"result"`
	Algorithm string `json:"algorithm,omitempty"`
	Err       string `json:"error,omitempty"`
}

// handleCalc runs a single operation and, for multiply, runs the
// schoolbook/FFT comparison to pick the result, recording which algorithm
// won.
func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req calcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, calcResponse{Err: err.Error()})
		return
	}
	base := req.Base
	if base == 0 {
		base = 10
	}
	if len(req.A) > s.security.MaxOperandDigits || len(req.B) > s.security.MaxOperandDigits {
		writeJSON(w, http.StatusRequestEntityTooLarge, calcResponse{Err: "operand exceeds configured digit limit"})
		return
	}

	a, err := bignum.Parse(req.A, base)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, calcResponse{Err: err.Error()})
		return
	}
	b, err := bignum.Parse(req.B, base)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, calcResponse{Err: err.Error()})
		return
	}

	s.metrics.ObserveOperation(req.Op)

	switch req.Op {
	case "add":
		respondValue(w, a.Add(b), base)
	case "sub":
		respondValue(w, a.Sub(b), base)
	case "mul":
		s.handleMultiply(w, a, b, base)
	case "div":
		q, _, err := a.Divmod(b)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, calcResponse{Err: err.Error()})
			return
		}
		respondValue(w, q, base)
	case "pow":
		respondValue(w, a.Pow(b), base)
	default:
		writeJSON(w, http.StatusBadRequest, calcResponse{Err: fmt.Sprintf("unknown op %q", req.Op)})
	}
}

func (s *Server) handleMultiply(w http.ResponseWriter, a, b *bignum.BigInt, base int) {
	results := orchestration.RunComparison(r2ctx(), a, b)
	var winner *orchestration.CalculationResult
	for i := range results {
		if results[i].Err == nil && (winner == nil || results[i].Duration < winner.Duration) {
			winner = &results[i]
		}
	}
	if winner == nil {
		writeJSON(w, http.StatusInternalServerError, calcResponse{Err: "no algorithm produced a result"})
		return
	}
	for _, r := range results {
		if r.Err == nil {
			s.metrics.ObserveMultiplyDuration(r.Name, r.Duration.Seconds())
		}
	}
	s.writeValue(w, winner.Value, base, winner.Name)
}

func r2ctx() context.Context { return context.Background() }

func respondValue(w http.ResponseWriter, v *bignum.BigInt, base int) {
	s, err := v.Format(base, 1)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, calcResponse{Err: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, calcResponse{Result: s})
}

func (s *Server) writeValue(w http.ResponseWriter, v *bignum.BigInt, base int, algorithm string) {
	str, err := v.Format(base, 1)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, calcResponse{Err: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, calcResponse{Result: str, Algorithm: algorithm})
}

func writeJSON(w http.ResponseWriter, status int, body calcResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
