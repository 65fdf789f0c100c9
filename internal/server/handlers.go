package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	apperrors "github.com/agbru/mathsvc/internal/errors"
	"github.com/agbru/mathsvc/internal/logging"
)

// RunningMessage is the body of GET /.
const RunningMessage = "mathsvc running"

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, RunningMessage)
}

func (s *Server) handleFibonacci(w http.ResponseWriter, r *http.Request) {
	n, ok := s.pathInt(w, r, "n")
	if !ok {
		return
	}
	s.respond(w, r)(s.engine.ComputeFibonacci(n))
}

func (s *Server) handleFactorial(w http.ResponseWriter, r *http.Request) {
	n, ok := s.pathInt(w, r, "n")
	if !ok {
		return
	}
	s.respond(w, r)(s.engine.ComputeFactorial(n))
}

func (s *Server) handleAckermann(w http.ResponseWriter, r *http.Request) {
	m, ok := s.pathInt(w, r, "m")
	if !ok {
		return
	}
	n, ok := s.pathInt(w, r, "n")
	if !ok {
		return
	}
	s.respond(w, r)(s.engine.ComputeAckermann(m, n))
}

func (s *Server) handleEngineMetrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.MetricsSnapshot())
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.CacheStats())
}

// pathInt parses the named path segment. A malformed or out-of-range value
// is answered here and never reaches the engine.
func (s *Server) pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.PathValue(name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeText(w, http.StatusBadRequest, fmt.Sprintf("Invalid parameters: %q is not an integer", raw))
		return 0, false
	}
	if limit := s.cfg.Security.MaxNValue; limit > 0 && (v > limit || v < -limit) {
		writeText(w, http.StatusBadRequest, fmt.Sprintf("Invalid parameters: %d exceeds the maximum of %d", v, limit))
		return 0, false
	}
	return v, true
}

// respond writes an engine result or maps its error kind to a status.
func (s *Server) respond(w http.ResponseWriter, r *http.Request) func(string, error) {
	return func(result string, err error) {
		if err == nil {
			writeText(w, http.StatusOK, result)
			return
		}
		kind := apperrors.KindOf(err)
		if kind == apperrors.KindUnknownFault {
			s.logger.Error("unexpected engine failure", err, logging.String("path", r.URL.Path))
		}
		writeText(w, statusForKind(kind), err.Error())
	}
}

func statusForKind(k apperrors.Kind) int {
	switch k {
	case apperrors.KindInvalidInput:
		return http.StatusBadRequest
	case apperrors.KindComputationFault:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
