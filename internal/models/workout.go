package models

import "time"

// Workout stores a saved plan. Plan is opaque JSON text: the service checks
// it parses at write time but never interprets its structure.
type Workout struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Split     string    `json:"split"`
	Plan      string    `json:"plan"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkoutSummary is the list view: everything except the plan body.
type WorkoutSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Split     string    `json:"split"`
	CreatedAt time.Time `json:"created_at"`
}
