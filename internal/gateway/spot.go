package gateway

import (
	"context"

	"github.com/and161185/fishlog/internal/model"
	"github.com/and161185/fishlog/internal/repository"
	"github.com/and161185/fishlog/internal/session"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// Spot is the gateway for fishing spots.
type Spot struct {
	base
	repo repository.SpotRepository
}

// NewSpot constructs a fishing spot gateway.
func NewSpot(repo repository.SpotRepository, principal session.Principal, log *zap.Logger) *Spot {
	return &Spot{base: newBase(principal, log), repo: repo}
}

// ListAll returns the principal's spots, newest first.
func (g *Spot) ListAll(ctx context.Context) ([]model.FishingSpot, error) {
	return call(ctx, g.base, "spot.list", func(ctx context.Context, userID uuid.UUID) ([]model.FishingSpot, error) {
		return g.repo.List(ctx, userID)
	})
}

// Create persists a new spot owned by the principal.
func (g *Spot) Create(ctx context.Context, in model.NewFishingSpot) (model.FishingSpot, error) {
	return call(ctx, g.base, "spot.create", func(ctx context.Context, userID uuid.UUID) (model.FishingSpot, error) {
		return g.repo.Insert(ctx, model.FishingSpot{
			UserID:    userID,
			Name:      in.Name,
			Latitude:  in.Latitude,
			Longitude: in.Longitude,
		})
	})
}

// Delete removes an owned spot.
func (g *Spot) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := call(ctx, g.base, "spot.delete", func(ctx context.Context, userID uuid.UUID) (none, error) {
		return none{}, g.repo.Delete(ctx, userID, id)
	})
	return err
}
