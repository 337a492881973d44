package models

import "time"

// Checkin records whether the user trained on a given calendar day.
// Day is an ISO date string (YYYY-MM-DD); one row per (user, day).
type Checkin struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Day       string    `json:"day"`
	Trained   bool      `json:"trained"`
	CreatedAt time.Time `json:"created_at"`
}

// SupplementCheckin records whether a named supplement was taken on a given
// day; one row per (user, day, supplement name).
type SupplementCheckin struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"user_id"`
	Day            string `json:"day"`
	SupplementName string `json:"name"`
	Took           bool   `json:"took"`
}
