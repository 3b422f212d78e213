package gateway

import (
	"context"
	"time"

	"github.com/and161185/fishlog/internal/model"
	"github.com/and161185/fishlog/internal/repository"
	"github.com/and161185/fishlog/internal/session"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// Diary is the gateway for diary entries.
type Diary struct {
	base
	repo repository.DiaryRepository
	now  func() time.Time
}

// NewDiary constructs a diary gateway.
func NewDiary(repo repository.DiaryRepository, principal session.Principal, log *zap.Logger) *Diary {
	return &Diary{base: newBase(principal, log), repo: repo, now: time.Now}
}

// ListAll returns the principal's entries, newest date first.
func (g *Diary) ListAll(ctx context.Context) ([]model.DiaryEntry, error) {
	return call(ctx, g.base, "diary.list", func(ctx context.Context, userID uuid.UUID) ([]model.DiaryEntry, error) {
		return g.repo.List(ctx, userID, 0)
	})
}

// ListRecent returns at most n entries in ListAll order. n <= 0 yields an empty result
// without contacting the backend.
func (g *Diary) ListRecent(ctx context.Context, n int) ([]model.DiaryEntry, error) {
	if n <= 0 {
		return []model.DiaryEntry{}, nil
	}
	return call(ctx, g.base, "diary.recent", func(ctx context.Context, userID uuid.UUID) ([]model.DiaryEntry, error) {
		return g.repo.List(ctx, userID, n)
	})
}

// Create persists a new entry owned by the principal. A nil Date means now.
func (g *Diary) Create(ctx context.Context, in model.NewDiaryEntry) (model.DiaryEntry, error) {
	return call(ctx, g.base, "diary.create", func(ctx context.Context, userID uuid.UUID) (model.DiaryEntry, error) {
		date := g.now()
		if in.Date != nil {
			date = *in.Date
		}
		return g.repo.Insert(ctx, model.DiaryEntry{
			UserID:    userID,
			Title:     in.Title,
			Location:  in.Location,
			FishCount: in.FishCount,
			Date:      date,
		})
	})
}

// Delete removes an owned entry.
func (g *Diary) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := call(ctx, g.base, "diary.delete", func(ctx context.Context, userID uuid.UUID) (none, error) {
		return none{}, g.repo.Delete(ctx, userID, id)
	})
	return err
}
