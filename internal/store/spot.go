package store

import (
	"context"
	"sync"

	"github.com/and161185/fishlog/internal/errs"
	"github.com/and161185/fishlog/internal/model"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// Spots holds the principal's fishing spots.
type Spots struct {
	gw  SpotGateway
	log *zap.Logger

	mu    sync.RWMutex
	sess  session
	spots []model.FishingSpot
}

// NewSpots constructs an empty spot store.
func NewSpots(gw SpotGateway, log *zap.Logger) *Spots {
	if log == nil {
		log = zap.NewNop()
	}
	return &Spots{gw: gw, log: log.Named("spots")}
}

// OnPrincipalChange clears the store and, for a signed-in principal, reloads it.
func (s *Spots) OnPrincipalChange(ctx context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	s.sess.switchTo(userID)
	s.spots = nil
	s.mu.Unlock()

	if userID == uuid.Nil {
		return nil
	}
	return s.Refresh(ctx)
}

// Reset drops all spots and any in-flight results.
func (s *Spots) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.switchTo(uuid.Nil)
	s.spots = nil
}

func (s *Spots) gen() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.gen
}

// Refresh replaces the collection with the gateway's current list.
func (s *Spots) Refresh(ctx context.Context) error {
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
	s.spots = rows
	return nil
}

// Create validates in, persists it and puts the result at the front.
func (s *Spots) Create(ctx context.Context, in model.NewFishingSpot) (model.FishingSpot, error) {
	if err := in.Validate(); err != nil {
		return model.FishingSpot{}, err
	}
	gen := s.gen()
	sp, err := s.gw.Create(ctx, in)
	if err != nil {
		return model.FishingSpot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.gen != gen {
		s.log.Info("stale create discarded", zap.String("id", sp.ID.String()))
		return model.FishingSpot{}, errs.ErrSessionChanged
	}
	s.spots = prepend(s.spots, sp, func(x model.FishingSpot) bool { return x.ID == sp.ID })
	return sp, nil
}

// Delete removes a spot remotely and then locally.
func (s *Spots) Delete(ctx context.Context, id uuid.UUID) error {
	gen := s.gen()
	if err := s.gw.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess.gen != gen {
		return errs.ErrSessionChanged
	}
	s.spots, _ = without(s.spots, func(x model.FishingSpot) bool { return x.ID == id })
	return nil
}

// Spots returns a copy of the collection.
func (s *Spots) Spots() []model.FishingSpot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.spots)
}
