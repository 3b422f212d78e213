package gateway

import (
	"context"
	"errors"

	"github.com/and161185/fishlog/internal/errs"
	"github.com/and161185/fishlog/internal/model"
	"github.com/and161185/fishlog/internal/photostore"
	"github.com/and161185/fishlog/internal/repository"
	"github.com/and161185/fishlog/internal/session"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// PhotoStore uploads and removes catch photos.
type PhotoStore interface {
	Upload(ctx context.Context, userID uuid.UUID, path string) (photostore.Photo, error)
	Remove(ctx context.Context, key string) error
}

var _ PhotoStore = (*photostore.Store)(nil)

var errNoPhotoStore = errors.New("photo storage is not configured")

// Catch is the gateway for fish catches.
type Catch struct {
	base
	repo   repository.CatchRepository
	photos PhotoStore
}

// NewCatch constructs a fish catch gateway. photos may be nil, in which case any
// create carrying a photo fails with an UploadError.
func NewCatch(repo repository.CatchRepository, photos PhotoStore, principal session.Principal, log *zap.Logger) *Catch {
	return &Catch{base: newBase(principal, log), repo: repo, photos: photos}
}

// ListAll returns every catch of the principal, newest first.
func (g *Catch) ListAll(ctx context.Context) ([]model.FishCatch, error) {
	return call(ctx, g.base, "catch.list", func(ctx context.Context, userID uuid.UUID) ([]model.FishCatch, error) {
		return g.repo.List(ctx, userID)
	})
}

// ListByDiary returns the catches of one diary entry, newest first.
func (g *Catch) ListByDiary(ctx context.Context, diaryID uuid.UUID) ([]model.FishCatch, error) {
	return call(ctx, g.base, "catch.list_by_diary", func(ctx context.Context, userID uuid.UUID) ([]model.FishCatch, error) {
		return g.repo.ListByDiary(ctx, userID, diaryID)
	})
}

// Create uploads the photo (if any) and then inserts the row pointing at it.
// A failed upload means no insert is attempted. A failed insert after a
// successful upload removes the uploaded object on a best-effort basis.
func (g *Catch) Create(ctx context.Context, in model.NewFishCatch) (model.FishCatch, error) {
	return call(ctx, g.base, "catch.create", func(ctx context.Context, userID uuid.UUID) (model.FishCatch, error) {
		var photo *photostore.Photo
		if in.PhotoPath != "" {
			if g.photos == nil {
				return model.FishCatch{}, &errs.UploadError{Err: errNoPhotoStore}
			}
			p, err := g.photos.Upload(ctx, userID, in.PhotoPath)
			if err != nil {
				g.log.Warn("photo upload failed", zap.Error(err))
				return model.FishCatch{}, err
			}
			photo = &p
		}

		row := model.FishCatch{
			DiaryEntryID: in.DiaryEntryID,
			UserID:       userID,
			Species:      in.Species,
			SizeCM:       in.SizeCM,
			WeightKG:     in.WeightKG,
			Bait:         optional(in.Bait),
			Notes:        optional(in.Notes),
		}
		if photo != nil {
			row.PhotoURL = &photo.URL
		}

		out, err := g.repo.Insert(ctx, row)
		if err != nil && photo != nil {
			g.removeOrphan(ctx, photo.Key)
		}
		return out, err
	})
}

// Delete removes an owned catch. The photo object, if any, is kept.
func (g *Catch) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := call(ctx, g.base, "catch.delete", func(ctx context.Context, userID uuid.UUID) (none, error) {
		return none{}, g.repo.Delete(ctx, userID, id)
	})
	return err
}

func (g *Catch) removeOrphan(ctx context.Context, key string) {
	if err := g.photos.Remove(context.WithoutCancel(ctx), key); err != nil {
		g.log.Warn("orphan photo cleanup failed", zap.String("key", key), zap.Error(err))
		return
	}
	g.log.Info("orphan photo removed", zap.String("key", key))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
