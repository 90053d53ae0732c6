package models

import "time"

// Report statuses.
const (
	ReportPending  = "pending"
	ReportResolved = "resolved"
)

// Report flags a playlist, comment, or user for moderation. The table exists
// and pending reports feed the admin stats, but no creation or resolution
// endpoint is wired up yet.
type Report struct {
	ID          int64     `json:"id" db:"id"`
	Type        string    `json:"type" db:"type"`
	ReferenceID int64     `json:"reference_id" db:"reference_id"`
	ReportedBy  int64     `json:"reported_by" db:"reported_by"`
	Reason      string    `json:"reason" db:"reason"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Stats is the admin dashboard aggregate.
type Stats struct {
	Users          int `json:"users"`
	Playlists      int `json:"playlists"`
	PendingReports int `json:"pending_reports"`
}
