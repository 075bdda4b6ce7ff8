package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dugoutlabs/fieldscore/internal/domain/matchup"
)

// matchupRequest mirrors the JSON shape accepted by the matchup parser.
type matchupRequest struct {
	Batters []batterPayload `json:"batters"`
	Pitcher pitcherPayload  `json:"pitcher"`
}

type batterPayload struct {
	Name       string  `json:"name"`
	BA         float64 `json:"ba"`
	Strikeouts int     `json:"strikeouts"`
	OBP        float64 `json:"obp"`
	SLG        float64 `json:"slg"`
	HomeRuns   int     `json:"home_runs"`
	RBI        int     `json:"rbi"`
	Handedness string  `json:"handedness"`
}

type pitcherPayload struct {
	Name       string  `json:"name"`
	ERA        float64 `json:"era"`
	WHIP       float64 `json:"whip"`
	KRate      float64 `json:"k_rate"`
	WalkRate   float64 `json:"walk_rate"`
	Handedness string  `json:"handedness"`
}

type matchupResponse struct {
	Pitcher string             `json:"pitcher"`
	Scores  map[string]float64 `json:"scores"`
}

// handleMatchup scores a lineup of batters against one pitcher.
func (s *Server) handleMatchup(w http.ResponseWriter, r *http.Request) {
	defer func() { _ = r.Body.Close() }()

	var req matchupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if len(req.Batters) == 0 {
		writeError(w, http.StatusBadRequest, "empty_lineup",
			errors.New("no batters in request"))
		return
	}

	batters := make([]matchup.Batter, 0, len(req.Batters))
	for i, b := range req.Batters {
		batter, err := matchup.NewBatter(b.Name, b.BA, b.Strikeouts, b.OBP, b.SLG, b.HomeRuns, b.RBI, b.Handedness)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_batter",
				fmt.Errorf("batter %d: %w", i, err))
			return
		}
		batters = append(batters, batter)
	}

	p := req.Pitcher
	pitcher, err := matchup.NewPitcher(p.Name, p.ERA, p.WHIP, p.KRate, p.WalkRate, p.Handedness)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_pitcher", err)
		return
	}

	scores, err := s.deps.ScoreMatchup(r.Context(), batters, pitcher)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "matchup_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, matchupResponse{Pitcher: pitcher.Name, Scores: scores})
}
