package repository

import (
	"context"

	"github.com/Miguel123456css/Zeraty.gym/internal/models"
)

type CheckinRepository struct {
	db DBTX
}

func NewCheckinRepository(db DBTX) *CheckinRepository {
	return &CheckinRepository{db: db}
}

func (r *CheckinRepository) SetTrained(ctx context.Context, userID int64, day string, trained bool) error {
	query := `
		INSERT INTO checkins (user_id, day, trained)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, day) DO UPDATE SET trained = EXCLUDED.trained
	`
	_, err := r.db.Exec(ctx, query, userID, day, trained)
	return err
}

func (r *CheckinRepository) SetSupplementTaken(ctx context.Context, userID int64, day, supplementName string, took bool) error {
	query := `
		INSERT INTO supplement_checkins (user_id, day, supplement_name, took)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, day, supplement_name) DO UPDATE SET took = EXCLUDED.took
	`
	_, err := r.db.Exec(ctx, query, userID, day, supplementName, took)
	return err
}

// ListTrainedByMonth returns the user's training check-ins whose day falls in
// the given month (prefix match on the YYYY-MM key).
func (r *CheckinRepository) ListTrainedByMonth(ctx context.Context, userID int64, month string) ([]models.Checkin, error) {
	query := `
		SELECT id, user_id, day, trained, created_at
		FROM checkins
		WHERE user_id = $1 AND day LIKE $2
		ORDER BY day
	`
	rows, err := r.db.Query(ctx, query, userID, month+"-%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checkins := []models.Checkin{}
	for rows.Next() {
		var c models.Checkin
		if err := rows.Scan(&c.ID, &c.UserID, &c.Day, &c.Trained, &c.CreatedAt); err != nil {
			return nil, err
		}
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}

func (r *CheckinRepository) ListSupplementsByMonth(ctx context.Context, userID int64, month string) ([]models.SupplementCheckin, error) {
	query := `
		SELECT id, user_id, day, supplement_name, took
		FROM supplement_checkins
		WHERE user_id = $1 AND day LIKE $2
		ORDER BY day, supplement_name
	`
	rows, err := r.db.Query(ctx, query, userID, month+"-%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checkins := []models.SupplementCheckin{}
	for rows.Next() {
		var c models.SupplementCheckin
		if err := rows.Scan(&c.ID, &c.UserID, &c.Day, &c.SupplementName, &c.Took); err != nil {
			return nil, err
		}
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}
