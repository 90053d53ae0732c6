package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"tartil/internal/models"
	"tartil/internal/store"
)

const adminEmail = "admin@example.com"

// bootstrapSeedData makes sure a default admin exists and, on a fresh
// database, creates a pair of starter playlists so the catalog is not empty.
func bootstrapSeedData(ctx context.Context, db *sql.DB, dataStore *store.Store) error {
	if err := ensureAdminUser(ctx, db); err != nil {
		return err
	}
	return ensureSeedPlaylists(ctx, db, dataStore)
}

func ensureAdminUser(ctx context.Context, db *sql.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO users (name, email, password_hash, role, avatar)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`, "Admin User", adminEmail, hash, models.RoleAdmin, "https://ui-avatars.com/api/?name=Admin+User")
	if err != nil {
		return fmt.Errorf("bootstrap admin user: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected > 0 {
		log.Info().Str("email", adminEmail).Msg("default admin user created")
	}
	return nil
}

func ensureSeedPlaylists(ctx context.Context, db *sql.DB, dataStore *store.Store) error {
	var count int
	if err := db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM playlists
	`).Scan(&count); err != nil {
		return fmt.Errorf("count playlists: %w", err)
	}
	if count > 0 {
		return nil
	}

	var adminID int64
	if err := db.QueryRowContext(ctx, `
		SELECT id
		FROM users
		WHERE email = $1
	`, adminEmail).Scan(&adminID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("lookup admin user: %w", err)
	}

	type seedTrack struct {
		SurahName string
		Reciter   string
		AudioURL  string
	}
	seeds := []struct {
		Playlist models.Playlist
		Tracks   []seedTrack
	}{
		{
			Playlist: models.Playlist{
				Title:       "Morning Azkar & Surahs",
				Description: "Beautiful recitations to start your day with barakah.",
				Category:    "Morning",
				Visibility:  models.VisibilityPublic,
				CoverImage:  "https://images.unsplash.com/photo-1564121211835-e88c852648ab?w=800&q=80",
				CreatedBy:   adminID,
			},
			Tracks: []seedTrack{
				{"Surah Yasin", "Mishary Rashid Alafasy", "https://server8.mp3quran.net/afs/036.mp3"},
				{"Surah Ar-Rahman", "Abdul Basit", "https://server7.mp3quran.net/basit/055.mp3"},
			},
		},
		{
			Playlist: models.Playlist{
				Title:       "Sleep Protection",
				Description: "Surah Al-Mulk and soothing recitations for sleep.",
				Category:    "Sleep",
				Visibility:  models.VisibilityPublic,
				CoverImage:  "https://images.unsplash.com/photo-1532274402911-5a369e4c4bb5?w=800&q=80",
				CreatedBy:   adminID,
			},
			Tracks: []seedTrack{
				{"Surah Al-Mulk", "Saad Al-Ghamdi", "https://server7.mp3quran.net/s_gmd/067.mp3"},
			},
		},
	}

	for _, seed := range seeds {
		created, err := dataStore.CreatePlaylist(ctx, seed.Playlist)
		if err != nil {
			return fmt.Errorf("seed playlist %q: %w", seed.Playlist.Title, err)
		}
		for _, track := range seed.Tracks {
			if _, err := dataStore.AddTrack(ctx, models.Track{
				PlaylistID: created.ID,
				SurahName:  track.SurahName,
				Reciter:    track.Reciter,
				AudioURL:   track.AudioURL,
			}); err != nil {
				return fmt.Errorf("seed track %q: %w", track.SurahName, err)
			}
		}
	}

	log.Info().Int("playlists", len(seeds)).Msg("seed data created")
	return nil
}
