package postgres

import (
	"context"

	"github.com/and161185/fishlog/internal/errs"
	"github.com/and161185/fishlog/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

const catchColumns = `id, diary_entry_id, user_id, species, size_cm, weight_kg, bait, notes, photo_url, created_at`

// CatchRepo implements CatchRepository over the fish_catches table.
type CatchRepo struct{ db *DB }

// NewCatchRepo constructs a catch repository.
func NewCatchRepo(db *DB) *CatchRepo { return &CatchRepo{db: db} }

// List returns all catches of the user, newest first.
func (r *CatchRepo) List(ctx context.Context, userID uuid.UUID) ([]model.FishCatch, error) {
	const q = `
SELECT ` + catchColumns + `
FROM fish_catches
WHERE user_id=$1
ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	return collectCatches(rows)
}

// ListByDiary returns the catches of one diary entry, newest first.
func (r *CatchRepo) ListByDiary(ctx context.Context, userID, diaryID uuid.UUID) ([]model.FishCatch, error) {
	const q = `
SELECT ` + catchColumns + `
FROM fish_catches
WHERE user_id=$1 AND diary_entry_id=$2
ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q, userID, diaryID)
	if err != nil {
		return nil, err
	}
	return collectCatches(rows)
}

// Insert stores a new catch. The diary_entry_id foreign key is enforced by the table.
func (r *CatchRepo) Insert(ctx context.Context, c model.FishCatch) (model.FishCatch, error) {
	const q = `
INSERT INTO fish_catches (diary_entry_id, user_id, species, size_cm, weight_kg, bait, notes, photo_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + catchColumns
	row := r.db.Pool.QueryRow(ctx, q,
		c.DiaryEntryID, c.UserID, c.Species, c.SizeCM, c.WeightKG, c.Bait, c.Notes, c.PhotoURL)
	return scanCatch(row)
}

// Delete removes a catch owned by userID.
func (r *CatchRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM fish_catches WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func collectCatches(rows pgx.Rows) ([]model.FishCatch, error) {
	defer rows.Close()
	out := []model.FishCatch{}
	for rows.Next() {
		c, err := scanCatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCatch(row pgx.Row) (model.FishCatch, error) {
	var c model.FishCatch
	err := row.Scan(&c.ID, &c.DiaryEntryID, &c.UserID, &c.Species,
		&c.SizeCM, &c.WeightKG, &c.Bait, &c.Notes, &c.PhotoURL, &c.CreatedAt)
	return c, err
}
