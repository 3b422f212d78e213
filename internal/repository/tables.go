package repository

import (
	"context"

	"github.com/and161185/fishlog/internal/model"
	"github.com/gofrs/uuid/v5"
)

// DiaryRepository is the diary_entries resource. Every call is scoped to userID.
type DiaryRepository interface {
	// List returns entries ordered by date descending; limit <= 0 means no limit.
	List(ctx context.Context, userID uuid.UUID, limit int) ([]model.DiaryEntry, error)
	// Insert stores e and returns the persisted row (id and created_at assigned by the backend).
	Insert(ctx context.Context, e model.DiaryEntry) (model.DiaryEntry, error)
	// Delete removes one owned entry; ErrNotFound if nothing matched.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// CatchRepository is the fish_catches resource.
type CatchRepository interface {
	// List returns all catches of the user, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]model.FishCatch, error)
	// ListByDiary returns the catches of one diary entry, newest first.
	ListByDiary(ctx context.Context, userID, diaryID uuid.UUID) ([]model.FishCatch, error)
	// Insert stores c and returns the persisted row.
	Insert(ctx context.Context, c model.FishCatch) (model.FishCatch, error)
	// Delete removes one owned catch; ErrNotFound if nothing matched.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// SpotRepository is the fishing_spots resource.
type SpotRepository interface {
	// List returns spots ordered by created_at descending.
	List(ctx context.Context, userID uuid.UUID) ([]model.FishingSpot, error)
	// Insert stores s and returns the persisted row.
	Insert(ctx context.Context, s model.FishingSpot) (model.FishingSpot, error)
	// Delete removes one owned spot; ErrNotFound if nothing matched.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
