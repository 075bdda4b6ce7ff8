package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dugoutlabs/fieldscore/internal/adapters/repository"
	"github.com/dugoutlabs/fieldscore/internal/domain/model"
)

// defaultLeaderboardLimit applies when ?limit is absent.
const defaultLeaderboardLimit = 10

type leaderboardResponse struct {
	Position model.Position `json:"position"`
	Entries  []Entry        `json:"entries"`
}

// handleLeaderboard returns the top scorers at a position, best first.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	pos, ok := model.ParsePosition(mux.Vars(r)["position"])
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_position",
			fmt.Errorf("unknown position %q", mux.Vars(r)["position"]))
		return
	}

	limit := defaultLeaderboardLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_limit",
				fmt.Errorf("limit must be an integer, got %q", raw))
			return
		}
		limit = parsed
	}

	entries, err := s.deps.Leaderboard(r.Context(), pos, limit)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidLimit) {
			writeError(w, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, leaderboardResponse{Position: pos, Entries: entries})
}
