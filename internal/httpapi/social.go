package httpapi

import (
	"encoding/json"
	"net/http"

	"tartil/internal/auth"
)

type addCommentRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request, identity *auth.Claims) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid playlist id"})
		return
	}

	state, err := s.social.ToggleLike(r.Context(), identity, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleAddComment(w http.ResponseWriter, r *http.Request, identity *auth.Claims) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid playlist id"})
		return
	}

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	var issues []issue
	issues = checkRequired(issues, "text", req.Text)
	if writeValidationIssues(w, issues) {
		return
	}

	comment, err := s.social.AddComment(r.Context(), identity, id, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}
