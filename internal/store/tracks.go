package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tartil/internal/models"
)

// AddTrack appends a track to a playlist. The order index is computed inside
// the insert as one past the playlist's current maximum, so the first track
// gets 1 and deletions never cause renumbering.
func (s *Store) AddTrack(ctx context.Context, track models.Track) (models.Track, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO tracks (playlist_id, surah_name, reciter, audio_url, duration, order_index)
		VALUES ($1, $2, $3, $4, $5,
			(SELECT COALESCE(MAX(order_index), 0) + 1 FROM tracks WHERE playlist_id = $1))
		RETURNING id, order_index
	`, track.PlaylistID, track.SurahName, track.Reciter, track.AudioURL, track.Duration).
		Scan(&track.ID, &track.OrderIndex)
	if err != nil {
		return models.Track{}, fmt.Errorf("insert track: %w", err)
	}
	return track, nil
}

// TracksByPlaylist returns a playlist's tracks in play order.
func (s *Store) TracksByPlaylist(ctx context.Context, playlistID int64) ([]models.Track, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, playlist_id, surah_name, reciter, audio_url, duration, order_index
		FROM tracks
		WHERE playlist_id = $1
		ORDER BY order_index ASC
	`, playlistID)
	if err != nil {
		return nil, fmt.Errorf("select tracks: %w", err)
	}
	defer rows.Close()

	tracks := make([]models.Track, 0)
	for rows.Next() {
		var track models.Track
		if err := rows.Scan(&track.ID, &track.PlaylistID, &track.SurahName, &track.Reciter,
			&track.AudioURL, &track.Duration, &track.OrderIndex); err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		tracks = append(tracks, track)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracks: %w", err)
	}
	return tracks, nil
}

// TrackOwner returns the owner of the playlist a track belongs to, for
// ownership checks on track deletion.
func (s *Store) TrackOwner(ctx context.Context, trackID int64) (int64, error) {
	var ownerID int64
	err := s.db.QueryRowContext(ctx, `
		SELECT p.created_by
		FROM tracks t
		JOIN playlists p ON p.id = t.playlist_id
		WHERE t.id = $1
	`, trackID).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrTrackNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("lookup track owner: %w", err)
	}
	return ownerID, nil
}

// DeleteTrack removes a track. Remaining order indexes keep their gaps.
func (s *Store) DeleteTrack(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tracks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete track: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrTrackNotFound
	}
	return nil
}
