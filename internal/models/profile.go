package models

import "time"

// Profile is the single body-profile row kept per user. Saving replaces the
// whole row, so every field reflects the latest submission.
type Profile struct {
	UserID    int64     `json:"user_id"`
	HeightCM  float64   `json:"height_cm"`
	WeightKG  float64   `json:"weight_kg"`
	Biotype   string    `json:"biotype"`
	Goal      string    `json:"goal"`
	UpdatedAt time.Time `json:"updated_at"`
}
