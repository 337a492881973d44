package repository

import (
	"context"

	"github.com/Miguel123456css/Zeraty.gym/internal/models"
)

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

type SaveProfileInput struct {
	HeightCM float64
	WeightKG float64
	Biotype  string
	Goal     string
}

func (r *ProfileRepository) Upsert(ctx context.Context, userID int64, input SaveProfileInput) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (user_id, height_cm, weight_kg, biotype, goal, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			biotype = EXCLUDED.biotype,
			goal = EXCLUDED.goal,
			updated_at = NOW()
		RETURNING user_id, height_cm, weight_kg, biotype, goal, updated_at
	`
	var profile models.Profile
	err := r.db.QueryRow(ctx, query, userID, input.HeightCM, input.WeightKG, input.Biotype, input.Goal).Scan(
		&profile.UserID,
		&profile.HeightCM,
		&profile.WeightKG,
		&profile.Biotype,
		&profile.Goal,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	query := `
		SELECT user_id, height_cm, weight_kg, biotype, goal, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	var profile models.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.HeightCM,
		&profile.WeightKG,
		&profile.Biotype,
		&profile.Goal,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
