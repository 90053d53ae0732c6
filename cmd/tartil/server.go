package main

import (
	"net/http"

	"tartil/internal/app/admin"
	"tartil/internal/app/playlists"
	"tartil/internal/app/social"
	"tartil/internal/app/tracks"
	"tartil/internal/app/users"
	"tartil/internal/auth"
	"tartil/internal/httpapi"
	"tartil/internal/middleware"
	"tartil/internal/store"
)

func newHTTPHandler(cfg Config, dataStore *store.Store) http.Handler {
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)

	userSvc := users.New(dataStore, tokens)
	playlistSvc := playlists.New(dataStore)
	trackSvc := tracks.New(dataStore)
	socialSvc := social.New(dataStore)
	adminSvc := admin.New(dataStore)

	handler := httpapi.New(tokens, userSvc, playlistSvc, trackSvc, socialSvc, adminSvc).Routes()

	handler = middleware.CORS(cfg.AllowedOrigins)(handler)
	handler = middleware.RequestLogging()(handler)
	handler = middleware.Recovery()(handler)

	return handler
}
