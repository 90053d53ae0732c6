package models

// Track is a single recitation inside a playlist. OrderIndex is assigned on
// insert as one past the current maximum for the playlist and is never
// compacted after deletions.
type Track struct {
	ID         int64  `json:"id" db:"id"`
	PlaylistID int64  `json:"playlist_id" db:"playlist_id"`
	SurahName  string `json:"surah_name" db:"surah_name"`
	Reciter    string `json:"reciter" db:"reciter"`
	AudioURL   string `json:"audio_url" db:"audio_url"`
	Duration   int    `json:"duration" db:"duration"`
	OrderIndex int    `json:"order_index" db:"order_index"`
}
