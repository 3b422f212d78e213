// Package store holds the client-side snapshot of each entity family and keeps
// it in step with confirmed remote state.
//
// Stores are write-through: local collections change only after the gateway
// confirms. Every remote call is tagged with the session generation current at
// issuance; a result that lands after the principal changed is discarded and
// errs.ErrSessionChanged is returned instead.
package store

import (
	"context"

	"github.com/and161185/fishlog/internal/model"
	"github.com/gofrs/uuid/v5"
)

// RecentLimit bounds the diary's recent view.
const RecentLimit = 3

// DiaryGateway is the remote side of the diary store.
type DiaryGateway interface {
	ListAll(ctx context.Context) ([]model.DiaryEntry, error)
	Create(ctx context.Context, in model.NewDiaryEntry) (model.DiaryEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatchGateway is the remote side of the catch store.
type CatchGateway interface {
	ListAll(ctx context.Context) ([]model.FishCatch, error)
	ListByDiary(ctx context.Context, diaryID uuid.UUID) ([]model.FishCatch, error)
	Create(ctx context.Context, in model.NewFishCatch) (model.FishCatch, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SpotGateway is the remote side of the spot store.
type SpotGateway interface {
	ListAll(ctx context.Context) ([]model.FishingSpot, error)
	Create(ctx context.Context, in model.NewFishingSpot) (model.FishingSpot, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// session tracks whose data a store currently holds. gen increases on every
// principal change or reset; callers must hold the store lock.
type session struct {
	principal uuid.UUID
	gen       uint64
}

func (s *session) switchTo(id uuid.UUID) {
	s.principal = id
	s.gen++
}

// prepend puts x first and drops any earlier element with the same identity.
func prepend[T any](xs []T, x T, same func(T) bool) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, x)
	for _, v := range xs {
		if !same(v) {
			out = append(out, v)
		}
	}
	return out
}

// without returns xs minus the elements matching drop, and whether any matched.
func without[T any](xs []T, drop func(T) bool) ([]T, bool) {
	out := make([]T, 0, len(xs))
	for _, v := range xs {
		if !drop(v) {
			out = append(out, v)
		}
	}
	return out, len(out) != len(xs)
}

// clone copies xs; the result is never nil.
func clone[T any](xs []T) []T {
	return append(make([]T, 0, len(xs)), xs...)
}
