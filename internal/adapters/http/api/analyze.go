package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dugoutlabs/fieldscore/internal/domain/model"
)

// analyzeRequest accepts either a bare JSON array of player records or
// an object wrapping them under "records".
type analyzeRequest struct {
	Records []model.PlayerRecord `json:"records"`
}

type analyzeResponse struct {
	Summary
}

// handleAnalyze scores a batch of defensive stat records and stores the
// results.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	defer func() { _ = r.Body.Close() }()

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", err)
		return
	}

	var records []model.PlayerRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		var req analyzeRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_body", err)
			return
		}
		records = req.Records
	}
	if len(records) == 0 {
		writeError(w, http.StatusBadRequest, "empty_batch",
			errors.New("no player records in request"))
		return
	}

	summary, err := s.deps.AnalyzeRecords(r.Context(), records)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "analysis_failed", err)
		return
	}
	writeJSON(w, http.StatusOK, analyzeResponse{Summary: summary})
}
