package api

import (
	"net/http"
)

type healthResponse struct {
	Status  string `json:"status"`
	Players int    `json:"players"`
}

// handleHealth reports liveness plus a cheap store statistic.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Players: s.deps.Count(r.Context()),
	})
}
