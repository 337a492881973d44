package repository

import (
	"context"
)

type SupplementRepository struct {
	db DBTX
}

func NewSupplementRepository(db DBTX) *SupplementRepository {
	return &SupplementRepository{db: db}
}

// Add inserts a supplement name for the user. Re-adding an existing name is
// a no-op, not an error.
func (r *SupplementRepository) Add(ctx context.Context, userID int64, name string) error {
	query := `
		INSERT INTO supplements (user_id, name)
		VALUES ($1, $2)
		ON CONFLICT (user_id, name) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, userID, name)
	return err
}

func (r *SupplementRepository) ListNames(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT name
		FROM supplements
		WHERE user_id = $1
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
