package social

import (
	"context"
	"errors"
	"testing"

	"tartil/internal/auth"
	"tartil/internal/models"
	"tartil/internal/store"
)

type stubStore struct {
	liked   bool
	count   int
	comment models.Comment
	err     error

	lastUserID     int64
	lastPlaylistID int64
	commented      bool
}

func (s *stubStore) ToggleLike(ctx context.Context, userID, playlistID int64) (bool, int, error) {
	s.lastUserID, s.lastPlaylistID = userID, playlistID
	return s.liked, s.count, s.err
}

func (s *stubStore) PlaylistExists(ctx context.Context, playlistID int64) error {
	return s.err
}

func (s *stubStore) AddComment(ctx context.Context, playlistID, userID int64, text string) (models.Comment, error) {
	s.commented = true
	s.lastUserID, s.lastPlaylistID = userID, playlistID
	return s.comment, nil
}

func TestToggleLikeUsesCallerIdentity(t *testing.T) {
	st := &stubStore{liked: true, count: 4}
	svc := New(st)

	state, err := svc.ToggleLike(context.Background(), &auth.Claims{UserID: 5}, 9)
	if err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}
	if !state.Liked || state.LikesCount != 4 {
		t.Fatalf("unexpected state: %+v", state)
	}
	if st.lastUserID != 5 || st.lastPlaylistID != 9 {
		t.Fatalf("identity not passed through: user=%d playlist=%d", st.lastUserID, st.lastPlaylistID)
	}
}

func TestToggleLikeMissingPlaylist(t *testing.T) {
	st := &stubStore{err: store.ErrPlaylistNotFound}
	svc := New(st)

	_, err := svc.ToggleLike(context.Background(), &auth.Claims{UserID: 5}, 404)
	if !errors.Is(err, store.ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}
}

func TestAddCommentChecksPlaylistFirst(t *testing.T) {
	st := &stubStore{err: store.ErrPlaylistNotFound}
	svc := New(st)

	_, err := svc.AddComment(context.Background(), &auth.Claims{UserID: 5}, 404, "text")
	if !errors.Is(err, store.ErrPlaylistNotFound) {
		t.Fatalf("expected ErrPlaylistNotFound, got %v", err)
	}
	if st.commented {
		t.Fatal("comment stored for a missing playlist")
	}
}

func TestAddComment(t *testing.T) {
	st := &stubStore{comment: models.Comment{ID: 31, Text: "Beautiful recitation"}}
	svc := New(st)

	comment, err := svc.AddComment(context.Background(), &auth.Claims{UserID: 5}, 9, "Beautiful recitation")
	if err != nil {
		t.Fatalf("AddComment: %v", err)
	}
	if comment.ID != 31 {
		t.Fatalf("unexpected comment: %+v", comment)
	}
	if st.lastUserID != 5 || st.lastPlaylistID != 9 {
		t.Fatalf("identity not passed through: user=%d playlist=%d", st.lastUserID, st.lastPlaylistID)
	}
}
