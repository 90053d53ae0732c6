package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"tartil/internal/app/social"
	"tartil/internal/auth"
	"tartil/internal/models"
	"tartil/internal/store"
)

// UserService captures the account operations needed by the HTTP handlers.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (string, models.User, error)
	Login(ctx context.Context, email, password string) (string, models.User, error)
	Me(ctx context.Context, identity *auth.Claims) (models.User, error)
}

// PlaylistService coordinates playlist catalog and lifecycle operations.
type PlaylistService interface {
	List(ctx context.Context, filter store.PlaylistFilter) ([]models.Playlist, error)
	Get(ctx context.Context, id int64, viewer *auth.Claims) (models.PlaylistDetail, error)
	Create(ctx context.Context, identity *auth.Claims, playlist models.Playlist) (models.Playlist, error)
	Delete(ctx context.Context, identity *auth.Claims, id int64) error
}

// TrackService coordinates track-level operations.
type TrackService interface {
	Add(ctx context.Context, identity *auth.Claims, track models.Track) (models.Track, error)
	Delete(ctx context.Context, identity *auth.Claims, trackID int64) error
}

// SocialService coordinates likes and comments.
type SocialService interface {
	ToggleLike(ctx context.Context, identity *auth.Claims, playlistID int64) (social.LikeState, error)
	AddComment(ctx context.Context, identity *auth.Claims, playlistID int64, text string) (models.Comment, error)
}

// AdminService exposes the admin dashboard.
type AdminService interface {
	Stats(ctx context.Context, identity *auth.Claims) (models.Stats, error)
}

// TokenVerifier checks bearer tokens and returns the embedded identity.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	verifier  TokenVerifier
	users     UserService
	playlists PlaylistService
	tracks    TrackService
	social    SocialService
	admin     AdminService
}

// New configures a Server with the given verifier and services.
func New(verifier TokenVerifier, users UserService, playlists PlaylistService, tracks TrackService, socialSvc SocialService, admin AdminService) *Server {
	return &Server{
		verifier:  verifier,
		users:     users,
		playlists: playlists,
		tracks:    tracks,
		social:    socialSvc,
		admin:     admin,
	}
}

// Routes exposes the HTTP handlers for the REST surface.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("GET /api/auth/me", s.requireAuth(s.handleMe))

	mux.HandleFunc("GET /api/playlists", s.handleListPlaylists)
	mux.HandleFunc("POST /api/playlists", s.requireAuth(s.handleCreatePlaylist))
	mux.HandleFunc("GET /api/playlists/{id}", s.handleGetPlaylist)
	mux.HandleFunc("DELETE /api/playlists/{id}", s.requireAuth(s.handleDeletePlaylist))

	mux.HandleFunc("POST /api/tracks", s.requireAuth(s.handleAddTrack))
	mux.HandleFunc("DELETE /api/tracks/{id}", s.requireAuth(s.handleDeleteTrack))

	mux.HandleFunc("POST /api/playlists/{id}/like", s.requireAuth(s.handleToggleLike))
	mux.HandleFunc("POST /api/playlists/{id}/comments", s.requireAuth(s.handleAddComment))

	mux.HandleFunc("GET /api/admin/stats", s.requireAuth(s.handleStats))

	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

// requireAuth enforces the bearer-token contract on protected routes: 401
// when the header is missing, 403 when the token does not verify. The decoded
// claims are handed to the wrapped handler.
func (s *Server) requireAuth(next func(http.ResponseWriter, *http.Request, *auth.Claims)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := parseBearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			return
		}
		claims, err := s.verifier.Verify(token)
		if err != nil {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "invalid or expired token"})
			return
		}
		next(w, r, claims)
	}
}

// optionalIdentity resolves the caller on routes where auth is optional. A
// missing or bad token degrades to an anonymous view instead of failing.
func (s *Server) optionalIdentity(r *http.Request) *auth.Claims {
	token := parseBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return nil
	}
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return nil
	}
	return claims
}

// writeError translates service errors into the HTTP taxonomy. Anything
// unrecognized becomes a generic 500 so storage detail never leaks.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrEmailTaken):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "email already exists"})
	case errors.Is(err, store.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
	case errors.Is(err, store.ErrPlaylistNotFound),
		errors.Is(err, store.ErrTrackNotFound),
		errors.Is(err, store.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "forbidden"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func parseBearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
