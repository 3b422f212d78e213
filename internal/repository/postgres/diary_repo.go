package postgres

import (
	"context"

	"github.com/and161185/fishlog/internal/errs"
	"github.com/and161185/fishlog/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

const diaryColumns = `id, user_id, title, location, fish_count, date, created_at`

// DiaryRepo implements DiaryRepository over the diary_entries table.
type DiaryRepo struct{ db *DB }

// NewDiaryRepo constructs a diary repository.
func NewDiaryRepo(db *DB) *DiaryRepo { return &DiaryRepo{db: db} }

// List returns the user's entries, newest date first. limit <= 0 returns all rows.
func (r *DiaryRepo) List(ctx context.Context, userID uuid.UUID, limit int) ([]model.DiaryEntry, error) {
	const all = `
SELECT ` + diaryColumns + `
FROM diary_entries
WHERE user_id=$1
ORDER BY date DESC, created_at DESC`
	const limited = all + `
LIMIT $2`

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.Pool.Query(ctx, limited, userID, limit)
	} else {
		rows, err = r.db.Pool.Query(ctx, all, userID)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.DiaryEntry{}
	for rows.Next() {
		e, err := scanDiary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Insert stores a new entry and returns it as persisted.
func (r *DiaryRepo) Insert(ctx context.Context, e model.DiaryEntry) (model.DiaryEntry, error) {
	const q = `
INSERT INTO diary_entries (user_id, title, location, fish_count, date)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + diaryColumns
	return scanDiary(r.db.Pool.QueryRow(ctx, q, e.UserID, e.Title, e.Location, e.FishCount, e.Date))
}

// Delete removes an entry owned by userID.
func (r *DiaryRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM diary_entries WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func scanDiary(row pgx.Row) (model.DiaryEntry, error) {
	var e model.DiaryEntry
	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Location, &e.FishCount, &e.Date, &e.CreatedAt)
	return e, err
}
