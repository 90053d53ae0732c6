package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ToggleLike likes the playlist if the user has not liked it, and removes the
// like if they have. The existence check and the insert/delete run in one
// transaction; the (user_id, playlist_id) primary key remains the backstop
// against concurrent duplicate likes. Returns the resulting state and count.
func (s *Store) ToggleLike(ctx context.Context, userID, playlistID int64) (liked bool, likesCount int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exists int64
	err = tx.QueryRowContext(ctx, `
		SELECT id
		FROM playlists
		WHERE id = $1
	`, playlistID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, 0, ErrPlaylistNotFound
	}
	if err != nil {
		return false, 0, fmt.Errorf("check playlist: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		SELECT 1
		FROM likes
		WHERE user_id = $1 AND playlist_id = $2
	`, userID, playlistID).Scan(new(int))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO likes (user_id, playlist_id)
			VALUES ($1, $2)
		`, userID, playlistID); err != nil {
			return false, 0, fmt.Errorf("insert like: %w", err)
		}
		liked = true
	case err != nil:
		return false, 0, fmt.Errorf("check like: %w", err)
	default:
		if _, err = tx.ExecContext(ctx, `
			DELETE FROM likes
			WHERE user_id = $1 AND playlist_id = $2
		`, userID, playlistID); err != nil {
			return false, 0, fmt.Errorf("delete like: %w", err)
		}
		liked = false
	}

	if err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM likes
		WHERE playlist_id = $1
	`, playlistID).Scan(&likesCount); err != nil {
		return false, 0, fmt.Errorf("count likes: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, 0, fmt.Errorf("commit like toggle: %w", err)
	}

	return liked, likesCount, nil
}

func (s *Store) isLiked(ctx context.Context, userID, playlistID int64) (bool, error) {
	err := s.db.QueryRowContext(ctx, `
		SELECT 1
		FROM likes
		WHERE user_id = $1 AND playlist_id = $2
	`, userID, playlistID).Scan(new(int))
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check like: %w", err)
	}
	return true, nil
}
