package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/and161185/fishlog/internal/errs"
	"github.com/and161185/fishlog/internal/model"
	"github.com/and161185/fishlog/internal/repository"
	"github.com/gofrs/uuid/v5"
)

// memBackend is an in-memory stand-in for the four tables.
type memBackend struct {
	mu      sync.Mutex
	users   map[string]model.User
	diaries []model.DiaryEntry
	catches []model.FishCatch
	spots   []model.FishingSpot

	spotListErr error
}

func newMemBackend() *memBackend {
	return &memBackend{users: map[string]model.User{}}
}

type memUsers struct{ b *memBackend }
type memDiaries struct{ b *memBackend }
type memCatches struct{ b *memBackend }
type memSpots struct{ b *memBackend }

var (
	_ repository.UserRepository  = memUsers{}
	_ repository.DiaryRepository = memDiaries{}
	_ repository.CatchRepository = memCatches{}
	_ repository.SpotRepository  = memSpots{}
)

func (r memUsers) Create(_ context.Context, u *model.User) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if _, ok := r.b.users[u.Username]; ok {
		return errs.ErrAlreadyExists
	}
	r.b.users[u.Username] = *u
	return nil
}

func (r memUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	for _, u := range r.b.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (r memUsers) GetByUsername(_ context.Context, name string) (*model.User, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	u, ok := r.b.users[name]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &u, nil
}

func (r memDiaries) List(_ context.Context, userID uuid.UUID, limit int) ([]model.DiaryEntry, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	out := []model.DiaryEntry{}
	for _, e := range r.b.diaries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r memDiaries) Insert(_ context.Context, e model.DiaryEntry) (model.DiaryEntry, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	e.ID = uuid.Must(uuid.NewV4())
	e.CreatedAt = time.Now()
	r.b.diaries = append([]model.DiaryEntry{e}, r.b.diaries...)
	return e, nil
}

func (r memDiaries) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	for i, e := range r.b.diaries {
		if e.ID == id && e.UserID == userID {
			r.b.diaries = append(r.b.diaries[:i], r.b.diaries[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (r memCatches) List(_ context.Context, userID uuid.UUID) ([]model.FishCatch, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	out := []model.FishCatch{}
	for _, c := range r.b.catches {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memCatches) ListByDiary(ctx context.Context, userID, diaryID uuid.UUID) ([]model.FishCatch, error) {
	all, _ := r.List(ctx, userID)
	out := []model.FishCatch{}
	for _, c := range all {
		if c.DiaryEntryID == diaryID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r memCatches) Insert(_ context.Context, c model.FishCatch) (model.FishCatch, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	c.ID = uuid.Must(uuid.NewV4())
	c.CreatedAt = time.Now()
	r.b.catches = append([]model.FishCatch{c}, r.b.catches...)
	return c, nil
}

func (r memCatches) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return errors.New("not implemented")
}

func (r memSpots) List(_ context.Context, userID uuid.UUID) ([]model.FishingSpot, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	if r.b.spotListErr != nil {
		return nil, r.b.spotListErr
	}
	out := []model.FishingSpot{}
	for _, s := range r.b.spots {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r memSpots) Insert(_ context.Context, s model.FishingSpot) (model.FishingSpot, error) {
	r.b.mu.Lock()
	defer r.b.mu.Unlock()
	s.ID = uuid.Must(uuid.NewV4())
	s.CreatedAt = time.Now()
	r.b.spots = append([]model.FishingSpot{s}, r.b.spots...)
	return s, nil
}

func (r memSpots) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	return errors.New("not implemented")
}

func (b *memBackend) deps() Deps {
	return Deps{
		Users:     memUsers{b},
		Diaries:   memDiaries{b},
		Catches:   memCatches{b},
		Spots:     memSpots{b},
		SignKey:   []byte("test-key"),
		AccessTTL: time.Hour,
	}
}
