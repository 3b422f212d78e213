package store

import (
	"context"
	"sync"

	"github.com/and161185/fishlog/internal/errs"
	"github.com/and161185/fishlog/internal/model"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// Diary holds the principal's diary entries. Recent is derived from Entries on read.
type Diary struct {
	gw  DiaryGateway
	log *zap.Logger

	mu      sync.RWMutex
	sess    session
	entries []model.DiaryEntry
}

// NewDiary constructs an empty diary store.
func NewDiary(gw DiaryGateway, log *zap.Logger) *Diary {
	if log == nil {
		log = zap.NewNop()
	}
	return &Diary{gw: gw, log: log.Named("diary")}
}

// OnPrincipalChange clears the store and, for a signed-in principal, reloads it.
func (s *Diary) OnPrincipalChange(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	s.sess.switchTo(userID)
	s.entries = nil
	s.mu.Unlock()

	if userID == uuid.Nil {
		return nil
	}
	return s.Refresh(ctx)
}

// Reset drops all entries and any in-flight results.
func (s *Diary) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.switchTo(uuid.Nil)
	s.entries = nil
}

func (s *Diary) gen() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.gen
}

// Refresh replaces the whole collection with the gateway's current list.
func (s *Diary) Refresh(ctx context.Context) error {
	gen := s.gen()
	rows, err := s.gw.ListAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.gen != gen {
		s.log.Info("stale refresh discarded")
		return errs.ErrSessionChanged
	}
	s.entries = rows
	s.log.Debug("refreshed", zap.Int("count", len(rows)))
	return nil
}

// Create validates in, persists it and puts the result at the front, whatever
// its Date. Entries stays in date order only until the next Refresh re-sorts it
// from the backend, so Recent is always the leading entries of Entries rather
// than the latest by date.
func (s *Diary) Create(ctx context.Context, in model.NewDiaryEntry) (model.DiaryEntry, error) {
	if err := in.Validate(); err != nil {
		return model.DiaryEntry{}, err
	}
	gen := s.gen()
	e, err := s.gw.Create(ctx, in)
	if err != nil {
		return model.DiaryEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.gen != gen {
		s.log.Info("stale create discarded", zap.String("id", e.ID.String()))
		return model.DiaryEntry{}, errs.ErrSessionChanged
	}
	s.entries = prepend(s.entries, e, func(x model.DiaryEntry) bool { return x.ID == e.ID })
	return e, nil
}

// Delete removes an entry remotely and then locally.
func (s *Diary) Delete(ctx context.Context, id uuid.UUID) error {
	gen := s.gen()
	if err := s.gw.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.gen != gen {
		s.log.Info("stale delete discarded", zap.String("id", id.String()))
		return errs.ErrSessionChanged
	}
	s.entries, _ = without(s.entries, func(x model.DiaryEntry) bool { return x.ID == id })
	return nil
}

// Entries returns a copy of all entries in display order.
func (s *Diary) Entries() []model.DiaryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.entries)
}

// Recent returns up to RecentLimit leading entries of Entries.
func (s *Diary) Recent() []model.DiaryEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.entries[:min(RecentLimit, len(s.entries))])
}
