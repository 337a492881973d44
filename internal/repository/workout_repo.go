package repository

import (
	"context"

	"github.com/Miguel123456css/Zeraty.gym/internal/models"
)

type WorkoutRepository struct {
	db DBTX
}

func NewWorkoutRepository(db DBTX) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

type CreateWorkoutInput struct {
	UserID int64
	Title  string
	Split  string
	Plan   string
}

func (r *WorkoutRepository) Create(ctx context.Context, input CreateWorkoutInput) (*models.Workout, error) {
	query := `
		INSERT INTO workouts (user_id, title, split, plan)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, title, split, plan, created_at
	`
	var workout models.Workout
	err := r.db.QueryRow(ctx, query, input.UserID, input.Title, input.Split, input.Plan).Scan(
		&workout.ID,
		&workout.UserID,
		&workout.Title,
		&workout.Split,
		&workout.Plan,
		&workout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// ListByUserID returns plan-less summaries, newest first.
func (r *WorkoutRepository) ListByUserID(ctx context.Context, userID int64) ([]models.WorkoutSummary, error) {
	query := `
		SELECT id, title, split, created_at
		FROM workouts
		WHERE user_id = $1
		ORDER BY id DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts := []models.WorkoutSummary{}
	for rows.Next() {
		var w models.WorkoutSummary
		if err := rows.Scan(&w.ID, &w.Title, &w.Split, &w.CreatedAt); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

// GetByID is scoped to the owner: a workout belonging to another user scans
// as pgx.ErrNoRows, indistinguishable from true absence.
func (r *WorkoutRepository) GetByID(ctx context.Context, userID, workoutID int64) (*models.Workout, error) {
	query := `
		SELECT id, user_id, title, split, plan, created_at
		FROM workouts
		WHERE id = $1 AND user_id = $2
	`
	var workout models.Workout
	err := r.db.QueryRow(ctx, query, workoutID, userID).Scan(
		&workout.ID,
		&workout.UserID,
		&workout.Title,
		&workout.Split,
		&workout.Plan,
		&workout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &workout, nil
}
