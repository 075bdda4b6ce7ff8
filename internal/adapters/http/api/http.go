// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/dugoutlabs/fieldscore/internal/adapters/repository"
	service "github.com/dugoutlabs/fieldscore/internal/app"
	"github.com/dugoutlabs/fieldscore/internal/domain/matchup"
	"github.com/dugoutlabs/fieldscore/internal/domain/model"
)

// Read/write shapes reused from the owning packages.
type (
	Summary       = service.Summary
	Entry         = repository.Entry
	PositionScore = repository.PositionScore
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	AnalyzeRecords(ctx context.Context, records []model.PlayerRecord) (Summary, error)
	ScoreMatchup(ctx context.Context, batters []matchup.Batter, pitcher matchup.Pitcher) (map[string]float64, error)
	Players(ctx context.Context) []string
	PlayerScores(ctx context.Context, player string) ([]PositionScore, error)
	Leaderboard(ctx context.Context, pos model.Position, limit int) ([]Entry, error)
	RuleDescription(pos model.Position) string
	Count(ctx context.Context) int
}

// Server wires HTTP routes for the business API.
type Server struct {
	deps Dependencies
}

// NewServer creates a new API server backed by deps.
func NewServer(deps Dependencies) *Server {
	return &Server{deps: deps}
}

// Router builds the full HTTP handler: versioned API routes, health,
// Prometheus metrics, and CORS.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", metricsMiddleware(s.handleHealth, "healthz")).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/players", metricsMiddleware(s.handleListPlayers, "players")).Methods(http.MethodGet)
	v1.HandleFunc("/players/{name}/scores", metricsMiddleware(s.handlePlayerScores, "player_scores")).Methods(http.MethodGet)
	v1.HandleFunc("/leaderboard/{position}", metricsMiddleware(s.handleLeaderboard, "leaderboard")).Methods(http.MethodGet)
	v1.HandleFunc("/rules/{position}", metricsMiddleware(s.handleRules, "rules")).Methods(http.MethodGet)
	v1.HandleFunc("/analyze", metricsMiddleware(s.handleAnalyze, "analyze")).Methods(http.MethodPost)
	v1.HandleFunc("/matchup", metricsMiddleware(s.handleMatchup, "matchup")).Methods(http.MethodPost)

	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         86400,
	})
	return c.Handler(r)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
