package gateway

import (
	"context"
	"time"

	"github.com/and161185/fishlog/internal/errs"
	"github.com/and161185/fishlog/internal/model"
	"github.com/and161185/fishlog/internal/photostore"
	"github.com/and161185/fishlog/internal/repository"
	"github.com/and161185/fishlog/internal/session"
	"github.com/gofrs/uuid/v5"
)

var created = time.Date(2025, 1, 10, 7, 30, 0, 0, time.UTC)

type fakePrincipal struct {
	id uuid.UUID
}

var _ session.Principal = (*fakePrincipal)(nil)

func (p *fakePrincipal) UserID() (uuid.UUID, bool) { return p.id, p.id != uuid.Nil }

type fakeDiaryRepo struct {
	rows []model.DiaryEntry

	listErr   error
	insertErr error
	deleteErr error

	listCalls  int
	lastLimit  int
	lastUser   uuid.UUID
	inserted   []model.DiaryEntry
	deletedIDs []uuid.UUID
	panicOn    string
}

var _ repository.DiaryRepository = (*fakeDiaryRepo)(nil)

func (f *fakeDiaryRepo) List(_ context.Context, userID uuid.UUID, limit int) ([]model.DiaryEntry, error) {
	if f.panicOn == "list" {
		panic("boom")
	}
	f.listCalls++
	f.lastUser, f.lastLimit = userID, limit
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []model.DiaryEntry{}
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeDiaryRepo) Insert(_ context.Context, e model.DiaryEntry) (model.DiaryEntry, error) {
	f.inserted = append(f.inserted, e)
	if f.insertErr != nil {
		return model.DiaryEntry{}, f.insertErr
	}
	e.ID = uuid.Must(uuid.NewV4())
	e.CreatedAt = created
	f.rows = append([]model.DiaryEntry{e}, f.rows...)
	return e, nil
}

func (f *fakeDiaryRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	f.deletedIDs = append(f.deletedIDs, id)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.rows {
		if r.ID == id && r.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeCatchRepo struct {
	rows []model.FishCatch

	listErr   error
	insertErr error
	deleteErr error

	inserted []model.FishCatch
}

var _ repository.CatchRepository = (*fakeCatchRepo)(nil)

func (f *fakeCatchRepo) List(_ context.Context, userID uuid.UUID) ([]model.FishCatch, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []model.FishCatch{}
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCatchRepo) ListByDiary(ctx context.Context, userID, diaryID uuid.UUID) ([]model.FishCatch, error) {
	all, err := f.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := []model.FishCatch{}
	for _, r := range all {
		if r.DiaryEntryID == diaryID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCatchRepo) Insert(_ context.Context, c model.FishCatch) (model.FishCatch, error) {
	f.inserted = append(f.inserted, c)
	if f.insertErr != nil {
		return model.FishCatch{}, f.insertErr
	}
	c.ID = uuid.Must(uuid.NewV4())
	c.CreatedAt = created
	f.rows = append([]model.FishCatch{c}, f.rows...)
	return c, nil
}

func (f *fakeCatchRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.rows {
		if r.ID == id && r.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeSpotRepo struct {
	rows      []model.FishingSpot
	insertErr error
	inserted  []model.FishingSpot
}

var _ repository.SpotRepository = (*fakeSpotRepo)(nil)

func (f *fakeSpotRepo) List(_ context.Context, userID uuid.UUID) ([]model.FishingSpot, error) {
	out := []model.FishingSpot{}
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSpotRepo) Insert(_ context.Context, s model.FishingSpot) (model.FishingSpot, error) {
	f.inserted = append(f.inserted, s)
	if f.insertErr != nil {
		return model.FishingSpot{}, f.insertErr
	}
	s.ID = uuid.Must(uuid.NewV4())
	s.CreatedAt = created
	f.rows = append([]model.FishingSpot{s}, f.rows...)
	return s, nil
}

func (f *fakeSpotRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i, r := range f.rows {
		if r.ID == id && r.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakePhotos struct {
	uploadErr error
	removeErr error

	uploads []string
	removed []string
}

var _ PhotoStore = (*fakePhotos)(nil)

func (f *fakePhotos) Upload(_ context.Context, userID uuid.UUID, path string) (photostore.Photo, error) {
	f.uploads = append(f.uploads, path)
	key := userID.String() + "/1736494200000_abc.jpg"
	if f.uploadErr != nil {
		return photostore.Photo{}, &errs.UploadError{Key: key, Err: f.uploadErr}
	}
	return photostore.Photo{Key: key, URL: "http://cdn/fish-photos/" + key}, nil
}

func (f *fakePhotos) Remove(_ context.Context, key string) error {
	f.removed = append(f.removed, key)
	return f.removeErr
}
