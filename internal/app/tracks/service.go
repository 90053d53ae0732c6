package tracks

import (
	"context"

	"tartil/internal/auth"
	"tartil/internal/models"
)

// Store captures the persistence needs for track workflows.
type Store interface {
	AddTrack(ctx context.Context, track models.Track) (models.Track, error)
	PlaylistOwner(ctx context.Context, playlistID int64) (int64, error)
	TrackOwner(ctx context.Context, trackID int64) (int64, error)
	DeleteTrack(ctx context.Context, id int64) error
}

// Service coordinates track management. Both operations require the caller to
// own the playlist; there is no admin override here, matching the catalog's
// original behavior.
type Service interface {
	Add(ctx context.Context, identity *auth.Claims, track models.Track) (models.Track, error)
	Delete(ctx context.Context, identity *auth.Claims, trackID int64) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

func (s *service) Add(ctx context.Context, identity *auth.Claims, track models.Track) (models.Track, error) {
	if err := ctx.Err(); err != nil {
		return models.Track{}, err
	}

	ownerID, err := s.store.PlaylistOwner(ctx, track.PlaylistID)
	if err != nil {
		return models.Track{}, err
	}
	if err := auth.Authorize(identity, ownerID, false); err != nil {
		return models.Track{}, err
	}

	return s.store.AddTrack(ctx, track)
}

func (s *service) Delete(ctx context.Context, identity *auth.Claims, trackID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ownerID, err := s.store.TrackOwner(ctx, trackID)
	if err != nil {
		return err
	}
	if err := auth.Authorize(identity, ownerID, false); err != nil {
		return err
	}

	return s.store.DeleteTrack(ctx, trackID)
}
