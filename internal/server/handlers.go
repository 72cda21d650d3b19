package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/NelCSC/grupo-playlist-app/internal/models"
	"github.com/NelCSC/grupo-playlist-app/internal/shared"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Message: message})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "playlist-aggregator",
	})
}

// handleGenerate is the single generation endpoint. Invalid input is the
// only client error; provider trouble degrades to a smaller (possibly empty)
// playlist rather than a failure status.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.Participants) == 0 {
		writeError(w, http.StatusBadRequest, "at least one participant is required")
		return
	}
	for _, p := range req.Participants {
		if err := p.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	ids, err := s.generator.Generate(r.Context(), req.Participants)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("generation failed", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to generate playlist")
		return
	}

	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, models.GenerateResponse{Playlist: ids})
}
