package models

import "time"

// Playlist visibility values.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Playlist is a user-curated set of recitation tracks.
type Playlist struct {
	ID            int64     `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description,omitempty" db:"description"`
	CoverImage    string    `json:"cover_image" db:"cover_image"`
	Category      string    `json:"category,omitempty" db:"category"`
	Visibility    string    `json:"visibility" db:"visibility"`
	CreatedBy     int64     `json:"created_by" db:"created_by"`
	CreatorName   string    `json:"creator_name,omitempty" db:"creator_name"`
	CreatorAvatar string    `json:"creator_avatar,omitempty" db:"creator_avatar"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	LikesCount    int       `json:"likes_count" db:"likes_count"`
	TracksCount   int       `json:"tracks_count" db:"tracks_count"`
}

// PlaylistDetail is the full playlist view: tracks in order, comments newest
// first, and whether the requesting user has liked it.
type PlaylistDetail struct {
	Playlist
	Tracks   []Track   `json:"tracks"`
	Comments []Comment `json:"comments"`
	IsLiked  bool      `json:"is_liked"`
}
