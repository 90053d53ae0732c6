package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tartil/internal/models"
)

const playlistColumns = `
	p.id, p.title, COALESCE(p.description, ''), p.cover_image, COALESCE(p.category, ''),
	p.visibility, p.created_by, u.name, u.avatar, p.created_at,
	(SELECT COUNT(*) FROM likes l WHERE l.playlist_id = p.id) AS likes_count,
	(SELECT COUNT(*) FROM tracks t WHERE t.playlist_id = p.id) AS tracks_count`

// PlaylistFilter constrains the results returned by ListPublicPlaylists.
type PlaylistFilter struct {
	Search   string
	Category string
	Sort     string // "likes" or empty for newest-first
}

// ListPublicPlaylists returns public playlists matching the filter, each with
// creator projection and like/track counts. The full result set is returned;
// there is no pagination.
func (s *Store) ListPublicPlaylists(ctx context.Context, filter PlaylistFilter) ([]models.Playlist, error) {
	query := `
		SELECT` + playlistColumns + `
		FROM playlists p
		JOIN users u ON u.id = p.created_by
		WHERE p.visibility = 'public'`

	var args []any

	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(" AND (p.title ILIKE $%d OR p.description ILIKE $%d)", len(args), len(args))
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND p.category = $%d", len(args))
	}

	if filter.Sort == "likes" {
		query += " ORDER BY likes_count DESC, p.id ASC"
	} else {
		query += " ORDER BY p.created_at DESC, p.id DESC"
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select playlists: %w", err)
	}
	defer rows.Close()

	playlists := make([]models.Playlist, 0)
	for rows.Next() {
		playlist, err := scanPlaylist(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}
	return playlists, nil
}

// PlaylistByID returns a single playlist regardless of visibility.
func (s *Store) PlaylistByID(ctx context.Context, id int64) (models.Playlist, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT`+playlistColumns+`
		FROM playlists p
		JOIN users u ON u.id = p.created_by
		WHERE p.id = $1
	`, id)

	playlist, err := scanPlaylist(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Playlist{}, ErrPlaylistNotFound
	}
	if err != nil {
		return models.Playlist{}, err
	}
	return playlist, nil
}

// PlaylistDetail assembles the full playlist view: tracks in play order,
// comments newest first, and the viewer's like state when a viewer is known.
func (s *Store) PlaylistDetail(ctx context.Context, id int64, viewerID *int64) (models.PlaylistDetail, error) {
	playlist, err := s.PlaylistByID(ctx, id)
	if err != nil {
		return models.PlaylistDetail{}, err
	}

	tracks, err := s.TracksByPlaylist(ctx, id)
	if err != nil {
		return models.PlaylistDetail{}, err
	}

	comments, err := s.CommentsByPlaylist(ctx, id)
	if err != nil {
		return models.PlaylistDetail{}, err
	}

	detail := models.PlaylistDetail{
		Playlist: playlist,
		Tracks:   tracks,
		Comments: comments,
	}

	if viewerID != nil {
		liked, err := s.isLiked(ctx, *viewerID, id)
		if err != nil {
			return models.PlaylistDetail{}, err
		}
		detail.IsLiked = liked
	}

	return detail, nil
}

// CreatePlaylist persists a new playlist and returns it with the creator
// projection filled in.
func (s *Store) CreatePlaylist(ctx context.Context, playlist models.Playlist) (models.Playlist, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO playlists (title, description, cover_image, category, visibility, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, playlist.Title, nullIfEmpty(playlist.Description), playlist.CoverImage,
		nullIfEmpty(playlist.Category), playlist.Visibility, playlist.CreatedBy).Scan(&id)
	if err != nil {
		return models.Playlist{}, fmt.Errorf("insert playlist: %w", err)
	}

	return s.PlaylistByID(ctx, id)
}

// PlaylistOwner returns the creating user's ID for ownership checks.
func (s *Store) PlaylistOwner(ctx context.Context, id int64) (int64, error) {
	var ownerID int64
	err := s.db.QueryRowContext(ctx, `
		SELECT created_by
		FROM playlists
		WHERE id = $1
	`, id).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrPlaylistNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lookup playlist owner: %w", err)
	}
	return ownerID, nil
}

// DeletePlaylist removes a playlist. Tracks, likes, and comments go with it
// via ON DELETE CASCADE.
func (s *Store) DeletePlaylist(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrPlaylistNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlaylist(row rowScanner) (models.Playlist, error) {
	var playlist models.Playlist
	err := row.Scan(
		&playlist.ID, &playlist.Title, &playlist.Description, &playlist.CoverImage,
		&playlist.Category, &playlist.Visibility, &playlist.CreatedBy,
		&playlist.CreatorName, &playlist.CreatorAvatar, &playlist.CreatedAt,
		&playlist.LikesCount, &playlist.TracksCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Playlist{}, err
	}
	if err != nil {
		return models.Playlist{}, fmt.Errorf("scan playlist: %w", err)
	}
	return playlist, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
