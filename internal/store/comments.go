package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tartil/internal/models"
)

// AddComment stores a comment and returns it joined with the commenter's
// public projection. Comments are immutable once created.
func (s *Store) AddComment(ctx context.Context, playlistID, userID int64, text string) (models.Comment, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (playlist_id, user_id, text)
		VALUES ($1, $2, $3)
		RETURNING id
	`, playlistID, userID, text).Scan(&id)
	if err != nil {
		return models.Comment{}, fmt.Errorf("insert comment: %w", err)
	}

	var comment models.Comment
	err = s.db.QueryRowContext(ctx, `
		SELECT c.id, c.playlist_id, c.user_id, c.text, c.created_at, u.name, u.avatar
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`, id).Scan(&comment.ID, &comment.PlaylistID, &comment.UserID, &comment.Text,
		&comment.CreatedAt, &comment.UserName, &comment.UserAvatar)
	if err != nil {
		return models.Comment{}, fmt.Errorf("reload comment: %w", err)
	}
	return comment, nil
}

// CommentsByPlaylist returns a playlist's comments newest first, each joined
// with the commenter's projection.
func (s *Store) CommentsByPlaylist(ctx context.Context, playlistID int64) ([]models.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.playlist_id, c.user_id, c.text, c.created_at, u.name, u.avatar
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.playlist_id = $1
		ORDER BY c.created_at DESC, c.id DESC
	`, playlistID)
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.PlaylistID, &comment.UserID, &comment.Text,
			&comment.CreatedAt, &comment.UserName, &comment.UserAvatar); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

// PlaylistExists reports whether the playlist row is present, for validating
// comment targets without fetching the full record.
func (s *Store) PlaylistExists(ctx context.Context, id int64) error {
	err := s.db.QueryRowContext(ctx, `
		SELECT id
		FROM playlists
		WHERE id = $1
	`, id).Scan(new(int64))
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPlaylistNotFound
	}
	if err != nil {
		return fmt.Errorf("check playlist: %w", err)
	}
	return nil
}
