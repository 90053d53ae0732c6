package playlists

import (
	"context"

	"tartil/internal/auth"
	"tartil/internal/models"
	"tartil/internal/store"
)

// DefaultCoverImage is used when a playlist is created without a cover.
const DefaultCoverImage = "https://picsum.photos/seed/quran/400/400"

// Store captures the persistence needs for playlist workflows.
type Store interface {
	ListPublicPlaylists(ctx context.Context, filter store.PlaylistFilter) ([]models.Playlist, error)
	PlaylistDetail(ctx context.Context, id int64, viewerID *int64) (models.PlaylistDetail, error)
	CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error)
	PlaylistOwner(ctx context.Context, id int64) (int64, error)
	DeletePlaylist(ctx context.Context, id int64) error
}

// Service coordinates playlist catalog and lifecycle operations.
type Service interface {
	List(ctx context.Context, filter store.PlaylistFilter) ([]models.Playlist, error)
	Get(ctx context.Context, id int64, viewer *auth.Claims) (models.PlaylistDetail, error)
	Create(ctx context.Context, identity *auth.Claims, playlist models.Playlist) (models.Playlist, error)
	Delete(ctx context.Context, identity *auth.Claims, id int64) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) List(ctx context.Context, filter store.PlaylistFilter) ([]models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPublicPlaylists(ctx, filter)
}

// Get returns the full playlist view. Auth is optional on this route: an
// anonymous viewer just sees is_liked=false.
func (s *service) Get(ctx context.Context, id int64, viewer *auth.Claims) (models.PlaylistDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.PlaylistDetail{}, err
	}
	var viewerID *int64
	if viewer != nil {
		viewerID = &viewer.UserID
	}
	return s.store.PlaylistDetail(ctx, id, viewerID)
}

func (s *service) Create(ctx context.Context, identity *auth.Claims, playlist models.Playlist) (models.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return models.Playlist{}, err
	}

	playlist.CreatedBy = identity.UserID
	if playlist.Visibility == "" {
		playlist.Visibility = models.VisibilityPublic
	}
	if playlist.CoverImage == "" {
		playlist.CoverImage = DefaultCoverImage
	}

	return s.store.CreatePlaylist(ctx, playlist)
}

// Delete removes a playlist after the ownership check; admins may delete any
// playlist.
func (s *service) Delete(ctx context.Context, identity *auth.Claims, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ownerID, err := s.store.PlaylistOwner(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.Authorize(identity, ownerID, true); err != nil {
		return err
	}

	return s.store.DeletePlaylist(ctx, id)
}
