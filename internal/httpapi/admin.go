package httpapi

import (
	"net/http"

	"tartil/internal/auth"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request, identity *auth.Claims) {
	stats, err := s.admin.Stats(r.Context(), identity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
