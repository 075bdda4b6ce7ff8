package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dugoutlabs/fieldscore/internal/adapters/repository"
)

type playersResponse struct {
	Players []string `json:"players"`
	Count   int      `json:"count"`
}

type playerScoresResponse struct {
	Player string          `json:"player"`
	Scores []PositionScore `json:"scores"`
}

// handleListPlayers lists every stored player.
func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	players := s.deps.Players(r.Context())
	writeJSON(w, http.StatusOK, playersResponse{Players: players, Count: len(players)})
}

// handlePlayerScores returns one player's per-position scores.
func (s *Server) handlePlayerScores(w http.ResponseWriter, r *http.Request) {
	player := mux.Vars(r)["name"]

	scores, err := s.deps.PlayerScores(r.Context(), player)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "player_not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, playerScoresResponse{Player: player, Scores: scores})
}
