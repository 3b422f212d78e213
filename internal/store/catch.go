package store

import (
	"context"
	"sync"

	"github.com/and161185/fishlog/internal/errs"
	"github.com/and161185/fishlog/internal/model"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// Catches indexes the principal's catches by diary entry, newest first per slot.
// The index is a cache: slots are filled by Refresh or LoadByDiary. A slot that
// only holds catches created locally is not reported as loaded.
type Catches struct {
	gw  CatchGateway
	log *zap.Logger

	mu     sync.RWMutex
	sess   session
	index  map[uuid.UUID][]model.FishCatch
	loaded map[uuid.UUID]struct{}
	full   bool
}

// NewCatches constructs an empty catch store.
func NewCatches(gw CatchGateway, log *zap.Logger) *Catches {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Catches{gw: gw, log: log.Named("catches")}
	s.clear()
	return s
}

func (s *Catches) clear() {
	s.index = map[uuid.UUID][]model.FishCatch{}
	s.loaded = map[uuid.UUID]struct{}{}
	s.full = false
}

// OnPrincipalChange clears the index. Slots are loaded again per diary on demand.
func (s *Catches) OnPrincipalChange(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.switchTo(userID)
	s.clear()
	return nil
}

// Reset drops the index and any in-flight results.
func (s *Catches) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.switchTo(uuid.Nil)
	s.clear()
}

func (s *Catches) gen() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.gen
}

// Refresh rebuilds the whole index from every catch of the principal.
func (s *Catches) Refresh(ctx context.Context) error {
	gen := s.gen()
	rows, err := s.gw.ListAll(ctx)
	if err != nil {
		return err
	}

	index := make(map[uuid.UUID][]model.FishCatch)
	for _, c := range rows {
		index[c.DiaryEntryID] = append(index[c.DiaryEntryID], c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.gen != gen {
		s.log.Info("stale refresh discarded")
		return errs.ErrSessionChanged
	}
	s.index = index
	s.loaded = map[uuid.UUID]struct{}{}
	s.full = true
	s.log.Debug("refreshed", zap.Int("count", len(rows)), zap.Int("diaries", len(index)))
	return nil
}

// LoadByDiary replaces the slot of one diary entry and leaves the others alone.
func (s *Catches) LoadByDiary(ctx context.Context, diaryID uuid.UUID) error {
	gen := s.gen()
	rows, err := s.gw.ListByDiary(ctx, diaryID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.gen != gen {
		s.log.Info("stale load discarded", zap.String("diary_id", diaryID.String()))
		return errs.ErrSessionChanged
	}
	s.index[diaryID] = clone(rows)
	s.loaded[diaryID] = struct{}{}
	return nil
}

// Create validates in, persists it (uploading the photo first) and puts the
// result at the front of its diary's slot, creating the slot if absent. Creating
// a slot does not mark it loaded.
func (s *Catches) Create(ctx context.Context, in model.NewFishCatch) (model.FishCatch, error) {
	if err := in.Validate(); err != nil {
		return model.FishCatch{}, err
	}
	gen := s.gen()
	c, err := s.gw.Create(ctx, in)
	if err != nil {
		return model.FishCatch{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.gen != gen {
		s.log.Info("stale create discarded", zap.String("id", c.ID.String()))
		return model.FishCatch{}, errs.ErrSessionChanged
	}
	s.index[c.DiaryEntryID] = prepend(s.index[c.DiaryEntryID], c, func(x model.FishCatch) bool { return x.ID == c.ID })
	return c, nil
}

// Delete removes a catch remotely and then from every slot.
func (s *Catches) Delete(ctx context.Context, id uuid.UUID) error {
	gen := s.gen()
	if err := s.gw.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.gen != gen {
		return errs.ErrSessionChanged
	}
	for diaryID, slot := range s.index {
		if rest, hit := without(slot, func(x model.FishCatch) bool { return x.ID == id }); hit {
			s.index[diaryID] = rest
		}
	}
	return nil
}

// ByDiary returns a copy of one slot and whether it has been loaded from the
// backend, by LoadByDiary or by a Refresh since the last principal change.
func (s *Catches) ByDiary(diaryID uuid.UUID) ([]model.FishCatch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.loaded[diaryID]
	return clone(s.index[diaryID]), ok || s.full
}

// Index returns a copy of the whole index.
func (s *Catches) Index() map[uuid.UUID][]model.FishCatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[uuid.UUID][]model.FishCatch, len(s.index))
	for k, v := range s.index {
		out[k] = clone(v)
	}
	return out
}
