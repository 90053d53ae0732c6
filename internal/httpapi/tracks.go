package httpapi

import (
	"encoding/json"
	"net/http"

	"tartil/internal/auth"
	"tartil/internal/models"
)

type addTrackRequest struct {
	PlaylistID int64  `json:"playlist_id"`
	SurahName  string `json:"surah_name"`
	Reciter    string `json:"reciter"`
	AudioURL   string `json:"audio_url"`
	Duration   int    `json:"duration"`
}

func (s *Server) handleAddTrack(w http.ResponseWriter, r *http.Request, identity *auth.Claims) {
	var req addTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	var issues []issue
	if req.PlaylistID <= 0 {
		issues = append(issues, issue{Field: "playlist_id", Message: "is required"})
	}
	issues = checkRequired(issues, "surah_name", req.SurahName)
	issues = checkRequired(issues, "reciter", req.Reciter)
	issues = checkURL(issues, "audio_url", req.AudioURL)
	if writeValidationIssues(w, issues) {
		return
	}

	created, err := s.tracks.Add(r.Context(), identity, models.Track{
		PlaylistID: req.PlaylistID,
		SurahName:  req.SurahName,
		Reciter:    req.Reciter,
		AudioURL:   req.AudioURL,
		Duration:   req.Duration,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteTrack(w http.ResponseWriter, r *http.Request, identity *auth.Claims) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid track id"})
		return
	}

	if err := s.tracks.Delete(r.Context(), identity, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
