package httpapi

import (
	"encoding/json"
	"net/http"

	"tartil/internal/auth"
	"tartil/internal/models"
	"tartil/internal/store"
)

type createPlaylistRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Visibility  string `json:"visibility"`
	CoverImage  string `json:"cover_image"`
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := store.PlaylistFilter{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		Sort:     query.Get("sort"),
	}

	playlists, err := s.playlists.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Playlists []models.Playlist `json:"playlists"`
	}{Playlists: playlists})
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid playlist id"})
		return
	}

	detail, err := s.playlists.Get(r.Context(), id, s.optionalIdentity(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request, identity *auth.Claims) {
	var req createPlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	var issues []issue
	issues = checkMinLen(issues, "title", req.Title, 3)
	if req.Visibility != "" {
		issues = checkOneOf(issues, "visibility", req.Visibility,
			models.VisibilityPublic, models.VisibilityPrivate)
	}
	if writeValidationIssues(w, issues) {
		return
	}

	created, err := s.playlists.Create(r.Context(), identity, models.Playlist{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Visibility:  req.Visibility,
		CoverImage:  req.CoverImage,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request, identity *auth.Claims) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid playlist id"})
		return
	}

	if err := s.playlists.Delete(r.Context(), identity, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
