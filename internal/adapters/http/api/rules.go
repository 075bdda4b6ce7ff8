package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dugoutlabs/fieldscore/internal/domain/model"
)

type rulesResponse struct {
	Position model.Position `json:"position"`
	Rules    string         `json:"rules"`
}

// handleRules describes the rule set applied at a position.
func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	pos, ok := model.ParsePosition(mux.Vars(r)["position"])
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_position",
			fmt.Errorf("unknown position %q", mux.Vars(r)["position"]))
		return
	}
	writeJSON(w, http.StatusOK, rulesResponse{
		Position: pos,
		Rules:    s.deps.RuleDescription(pos),
	})
}
