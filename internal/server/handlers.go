package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mkrsna/nse-advisor/internal/recommend"
)

type recommendRequest struct {
	Query  string `json:"query"`
	Intent string `json:"intent"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	intent := parseIntent(req.Intent)

	result, err := s.pipeline.Run(r.Context(), req.Query, intent)
	if err != nil {
		s.logger.Error("pipeline run failed", "error", err)
		s.notifier.NotifyError("recommend", err)
		internalError(w)
		return
	}

	s.notifier.NotifyRecommendations(req.Query, result.Stocks)
	writeJSON(w, http.StatusOK, result)
}

// parseIntent is lenient: anything that is not sell means buy.
func parseIntent(v string) recommend.Intent {
	if strings.ToLower(strings.TrimSpace(v)) == "sell" {
		return recommend.IntentSell
	}
	return recommend.IntentBuy
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func internalError(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
}
