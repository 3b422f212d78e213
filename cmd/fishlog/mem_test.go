package main

import (
	"context"
	"sync"
	"time"

	"github.com/and161185/fishlog/internal/errs"
	"github.com/and161185/fishlog/internal/model"
	"github.com/and161185/fishlog/internal/repository"
	"github.com/gofrs/uuid/v5"
)

// memDB keeps the tables in memory across CLI invocations.
type memDB struct {
	mu      sync.Mutex
	users   map[string]model.User
	diaries []model.DiaryEntry
	catches []model.FishCatch
	spots   []model.FishingSpot
}

func newMemDB() *memDB { return &memDB{users: map[string]model.User{}} }

type (
	memUsers   struct{ db *memDB }
	memDiaries struct{ db *memDB }
	memCatches struct{ db *memDB }
	memSpots   struct{ db *memDB }
)

var (
	_ repository.UserRepository  = memUsers{}
	_ repository.DiaryRepository = memDiaries{}
	_ repository.CatchRepository = memCatches{}
	_ repository.SpotRepository  = memSpots{}
)

func (r memUsers) Create(_ context.Context, u *model.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[u.Username]; ok {
		return errs.ErrAlreadyExists
	}
	r.db.users[u.Username] = *u
	return nil
}

func (r memUsers) GetByID(context.Context, uuid.UUID) (*model.User, error) {
	return nil, errs.ErrNotFound
}

func (r memUsers) GetByUsername(_ context.Context, name string) (*model.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[name]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &u, nil
}

// owned filters xs to userID's rows, optionally matching keep.
func owned[T any](xs []T, owner func(T) uuid.UUID, userID uuid.UUID, keep func(T) bool) []T {
	out := []T{}
	for _, x := range xs {
		if owner(x) == userID && (keep == nil || keep(x)) {
			out = append(out, x)
		}
	}
	return out
}

// drop removes the first element owned by userID with the given id.
func drop[T any](xs []T, match func(T) bool) ([]T, error) {
	for i, x := range xs {
		if match(x) {
			return append(xs[:i], xs[i+1:]...), nil
		}
	}
	return xs, errs.ErrNotFound
}

func (r memDiaries) List(_ context.Context, userID uuid.UUID, limit int) ([]model.DiaryEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := owned(r.db.diaries, func(e model.DiaryEntry) uuid.UUID { return e.UserID }, userID, nil)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r memDiaries) Insert(_ context.Context, e model.DiaryEntry) (model.DiaryEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	e.ID, e.CreatedAt = uuid.Must(uuid.NewV4()), time.Now()
	r.db.diaries = append([]model.DiaryEntry{e}, r.db.diaries...)
	return e, nil
}

func (r memDiaries) Delete(_ context.Context, userID, id uuid.UUID) (err error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.diaries, err = drop(r.db.diaries, func(e model.DiaryEntry) bool { return e.ID == id && e.UserID == userID })
	return err
}

func (r memCatches) List(_ context.Context, userID uuid.UUID) ([]model.FishCatch, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return owned(r.db.catches, func(c model.FishCatch) uuid.UUID { return c.UserID }, userID, nil), nil
}

func (r memCatches) ListByDiary(_ context.Context, userID, diaryID uuid.UUID) ([]model.FishCatch, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return owned(r.db.catches, func(c model.FishCatch) uuid.UUID { return c.UserID }, userID,
		func(c model.FishCatch) bool { return c.DiaryEntryID == diaryID }), nil
}

func (r memCatches) Insert(_ context.Context, c model.FishCatch) (model.FishCatch, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	c.ID, c.CreatedAt = uuid.Must(uuid.NewV4()), time.Now()
	r.db.catches = append([]model.FishCatch{c}, r.db.catches...)
	return c, nil
}

func (r memCatches) Delete(_ context.Context, userID, id uuid.UUID) (err error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.catches, err = drop(r.db.catches, func(c model.FishCatch) bool { return c.ID == id && c.UserID == userID })
	return err
}

func (r memSpots) List(_ context.Context, userID uuid.UUID) ([]model.FishingSpot, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return owned(r.db.spots, func(s model.FishingSpot) uuid.UUID { return s.UserID }, userID, nil), nil
}

func (r memSpots) Insert(_ context.Context, s model.FishingSpot) (model.FishingSpot, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	s.ID, s.CreatedAt = uuid.Must(uuid.NewV4()), time.Now()
	r.db.spots = append([]model.FishingSpot{s}, r.db.spots...)
	return s, nil
}

func (r memSpots) Delete(_ context.Context, userID, id uuid.UUID) (err error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.spots, err = drop(r.db.spots, func(s model.FishingSpot) bool { return s.ID == id && s.UserID == userID })
	return err
}
