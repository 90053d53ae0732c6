package store

import (
	"context"
	"fmt"

	"tartil/internal/models"
)

// Stats returns the admin dashboard aggregates: total users, total playlists,
// and reports still awaiting review.
func (s *Store) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM users
	`).Scan(&stats.Users); err != nil {
		return models.Stats{}, fmt.Errorf("count users: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM playlists
	`).Scan(&stats.Playlists); err != nil {
		return models.Stats{}, fmt.Errorf("count playlists: %w", err)
	}

	if err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM reports
		WHERE status = 'pending'
	`).Scan(&stats.PendingReports); err != nil {
		return models.Stats{}, fmt.Errorf("count pending reports: %w", err)
	}

	return stats, nil
}
