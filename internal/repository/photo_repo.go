package repository

import (
	"context"

	"github.com/Miguel123456css/Zeraty.gym/internal/models"
)

type PhotoRepository struct {
	db DBTX
}

func NewPhotoRepository(db DBTX) *PhotoRepository {
	return &PhotoRepository{db: db}
}

type CreatePhotoInput struct {
	UserID   int64
	Filename string
	TakenDay string
	Note     *string
}

func (r *PhotoRepository) Create(ctx context.Context, input CreatePhotoInput) (*models.Photo, error) {
	query := `
		INSERT INTO photos (user_id, filename, taken_day, note)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, filename, taken_day, note, created_at
	`
	var photo models.Photo
	err := r.db.QueryRow(ctx, query, input.UserID, input.Filename, input.TakenDay, input.Note).Scan(
		&photo.ID,
		&photo.UserID,
		&photo.Filename,
		&photo.TakenDay,
		&photo.Note,
		&photo.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// ListByUserID orders by taken day, insertion order breaking ties.
func (r *PhotoRepository) ListByUserID(ctx context.Context, userID int64) ([]models.Photo, error) {
	query := `
		SELECT id, user_id, filename, taken_day, note, created_at
		FROM photos
		WHERE user_id = $1
		ORDER BY taken_day ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := []models.Photo{}
	for rows.Next() {
		var p models.Photo
		if err := rows.Scan(&p.ID, &p.UserID, &p.Filename, &p.TakenDay, &p.Note, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}
