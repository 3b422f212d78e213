package postgres

import (
	"context"

	"github.com/and161185/fishlog/internal/errs"
	"github.com/and161185/fishlog/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

const spotColumns = `id, user_id, name, latitude, longitude, created_at`

// SpotRepo implements SpotRepository over the fishing_spots table.
type SpotRepo struct{ db *DB }

// NewSpotRepo constructs a spot repository.
func NewSpotRepo(db *DB) *SpotRepo { return &SpotRepo{db: db} }

// List returns the user's spots, newest first.
func (r *SpotRepo) List(ctx context.Context, userID uuid.UUID) ([]model.FishingSpot, error) {
	const q = `
SELECT ` + spotColumns + `
FROM fishing_spots
WHERE user_id=$1
ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.FishingSpot{}
	for rows.Next() {
		s, err := scanSpot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Insert stores a new spot and returns it as persisted.
func (r *SpotRepo) Insert(ctx context.Context, s model.FishingSpot) (model.FishingSpot, error) {
	const q = `
INSERT INTO fishing_spots (user_id, name, latitude, longitude)
VALUES ($1, $2, $3, $4)
RETURNING ` + spotColumns
	return scanSpot(r.db.Pool.QueryRow(ctx, q, s.UserID, s.Name, s.Latitude, s.Longitude))
}

// Delete removes a spot owned by userID.
func (r *SpotRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM fishing_spots WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func scanSpot(row pgx.Row) (model.FishingSpot, error) {
	var s model.FishingSpot
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Latitude, &s.Longitude, &s.CreatedAt)
	return s, err
}
