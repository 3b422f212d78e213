package store

import (
	"context"
	"sync"

	"github.com/and161185/fishlog/internal/model"
	"github.com/gofrs/uuid/v5"
)

// fakeDiaryGW serves rows from memory. during, when set, runs while a call is in flight.
type fakeDiaryGW struct {
	mu   sync.Mutex
	user uuid.UUID
	rows []model.DiaryEntry

	listErr   error
	createErr error
	deleteErr error
	during    func()

	creates int
}

var _ DiaryGateway = (*fakeDiaryGW)(nil)

func (f *fakeDiaryGW) hook() {
	if f.during != nil {
		f.during()
	}
}

// ListAll snapshots rows before running the hook, like a response already on the wire.
func (f *fakeDiaryGW) ListAll(context.Context) ([]model.DiaryEntry, error) {
	f.mu.Lock()
	rows, err := append([]model.DiaryEntry{}, f.rows...), f.listErr
	f.mu.Unlock()
	f.hook()
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (f *fakeDiaryGW) Create(_ context.Context, in model.NewDiaryEntry) (model.DiaryEntry, error) {
	f.hook()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.createErr != nil {
		return model.DiaryEntry{}, f.createErr
	}
	e := model.DiaryEntry{
		ID: uuid.Must(uuid.NewV4()), UserID: f.user,
		Title: in.Title, Location: in.Location, FishCount: in.FishCount,
	}
	if in.Date != nil {
		e.Date = *in.Date
	}
	f.rows = append([]model.DiaryEntry{e}, f.rows...)
	return e, nil
}

func (f *fakeDiaryGW) Delete(_ context.Context, id uuid.UUID) error {
	f.hook()
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			break
		}
	}
	return nil
}

type fakeCatchGW struct {
	user uuid.UUID
	rows []model.FishCatch

	listErr   error
	createErr error
	deleteErr error
	during    func()

	creates      int
	byDiaryCalls []uuid.UUID
}

var _ CatchGateway = (*fakeCatchGW)(nil)

func (f *fakeCatchGW) hook() {
	if f.during != nil {
		f.during()
	}
}

func (f *fakeCatchGW) ListAll(context.Context) ([]model.FishCatch, error) {
	f.hook()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.FishCatch{}, f.rows...), nil
}

func (f *fakeCatchGW) ListByDiary(_ context.Context, diaryID uuid.UUID) ([]model.FishCatch, error) {
	f.hook()
	f.byDiaryCalls = append(f.byDiaryCalls, diaryID)
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []model.FishCatch{}
	for _, r := range f.rows {
		if r.DiaryEntryID == diaryID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCatchGW) Create(_ context.Context, in model.NewFishCatch) (model.FishCatch, error) {
	f.hook()
	f.creates++
	if f.createErr != nil {
		return model.FishCatch{}, f.createErr
	}
	c := model.FishCatch{
		ID: uuid.Must(uuid.NewV4()), UserID: f.user,
		DiaryEntryID: in.DiaryEntryID, Species: in.Species,
	}
	f.rows = append([]model.FishCatch{c}, f.rows...)
	return c, nil
}

func (f *fakeCatchGW) Delete(_ context.Context, id uuid.UUID) error {
	f.hook()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			break
		}
	}
	return nil
}

type fakeSpotGW struct {
	user uuid.UUID
	rows []model.FishingSpot

	createErr error
	during    func()

	creates int
}

var _ SpotGateway = (*fakeSpotGW)(nil)

func (f *fakeSpotGW) ListAll(context.Context) ([]model.FishingSpot, error) {
	if f.during != nil {
		f.during()
	}
	return append([]model.FishingSpot{}, f.rows...), nil
}

func (f *fakeSpotGW) Create(_ context.Context, in model.NewFishingSpot) (model.FishingSpot, error) {
	if f.during != nil {
		f.during()
	}
	f.creates++
	if f.createErr != nil {
		return model.FishingSpot{}, f.createErr
	}
	s := model.FishingSpot{ID: uuid.Must(uuid.NewV4()), UserID: f.user, Name: in.Name, Latitude: in.Latitude, Longitude: in.Longitude}
	f.rows = append([]model.FishingSpot{s}, f.rows...)
	return s, nil
}

func (f *fakeSpotGW) Delete(_ context.Context, id uuid.UUID) error {
	for i, r := range f.rows {
		if r.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			break
		}
	}
	return nil
}
