package social

import (
	"context"

	"tartil/internal/auth"
	"tartil/internal/models"
)

// Store captures the persistence needs for likes and comments.
type Store interface {
	ToggleLike(ctx context.Context, userID, playlistID int64) (bool, int, error)
	PlaylistExists(ctx context.Context, playlistID int64) error
	AddComment(ctx context.Context, playlistID, userID int64, text string) (models.Comment, error)
}

// LikeState is the outcome of a like toggle.
type LikeState struct {
	Liked      bool `json:"liked"`
	LikesCount int  `json:"likes_count"`
}

// Service coordinates the social features: like toggling and commenting.
type Service interface {
	ToggleLike(ctx context.Context, identity *auth.Claims, playlistID int64) (LikeState, error)
	AddComment(ctx context.Context, identity *auth.Claims, playlistID int64, text string) (models.Comment, error)
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

// ToggleLike flips the caller's like on a playlist: liked if they had not
// liked it, un-liked if they had.
func (s *service) ToggleLike(ctx context.Context, identity *auth.Claims, playlistID int64) (LikeState, error) {
	if err := ctx.Err(); err != nil {
		return LikeState{}, err
	}
	liked, count, err := s.store.ToggleLike(ctx, identity.UserID, playlistID)
	if err != nil {
		return LikeState{}, err
	}
	return LikeState{Liked: liked, LikesCount: count}, nil
}

func (s *service) AddComment(ctx context.Context, identity *auth.Claims, playlistID int64, text string) (models.Comment, error) {
	if err := ctx.Err(); err != nil {
		return models.Comment{}, err
	}
	if err := s.store.PlaylistExists(ctx, playlistID); err != nil {
		return models.Comment{}, err
	}
	return s.store.AddComment(ctx, playlistID, identity.UserID, text)
}
