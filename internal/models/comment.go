package models

import "time"

// Comment is an immutable remark on a playlist, returned joined with the
// commenter's public projection.
type Comment struct {
	ID         int64     `json:"id" db:"id"`
	PlaylistID int64     `json:"playlist_id" db:"playlist_id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	Text       string    `json:"text" db:"text"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UserName   string    `json:"user_name,omitempty" db:"user_name"`
	UserAvatar string    `json:"user_avatar,omitempty" db:"user_avatar"`
}
