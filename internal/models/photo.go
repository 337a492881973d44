package models

import "time"

// Photo is progress-photo metadata. Filename is always server-generated;
// the bytes live under the per-user photos directory.
type Photo struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Filename  string    `json:"filename"`
	TakenDay  string    `json:"taken_day"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
