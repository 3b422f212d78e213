package model

import (
	"math"
	"strings"
	"time"

	"github.com/and161185/fishlog/internal/errs"
	"github.com/gofrs/uuid/v5"
)

// Coordinate bounds for fishing spots.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// NewDiaryEntry is the create intent for a diary entry. A nil Date means "now".
type NewDiaryEntry struct {
	Title     string
	Location  string
	FishCount int
	Date      *time.Time
}

// Validate checks local preconditions.
func (in NewDiaryEntry) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errs.Invalid("title", "must not be empty")
	}
	if strings.TrimSpace(in.Location) == "" {
		return errs.Invalid("location", "must not be empty")
	}
	if in.FishCount < 0 {
		return errs.Invalid("fish_count", "must not be negative")
	}
	return nil
}

// NewFishCatch is the create intent for a catch. PhotoPath is a local file that
// is uploaded before the row is inserted.
type NewFishCatch struct {
	DiaryEntryID uuid.UUID
	Species      string
	SizeCM       *float64
	WeightKG     *float64
	Bait         string
	Notes        string
	PhotoPath    string
}

// Validate checks local preconditions.
func (in NewFishCatch) Validate() error {
	if in.DiaryEntryID == uuid.Nil {
		return errs.Invalid("diary_entry_id", "must be set")
	}
	if strings.TrimSpace(in.Species) == "" {
		return errs.Invalid("species", "must not be empty")
	}
	if in.SizeCM != nil && !positive(*in.SizeCM) {
		return errs.Invalid("size_cm", "must be positive")
	}
	if in.WeightKG != nil && !positive(*in.WeightKG) {
		return errs.Invalid("weight_kg", "must be positive")
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// NewFishingSpot is the create intent for a fishing spot.
type NewFishingSpot struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Validate checks local preconditions.
func (in NewFishingSpot) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errs.Invalid("name", "must not be empty")
	}
	if !(in.Latitude >= MinLatitude && in.Latitude <= MaxLatitude) {
		return errs.Invalid("latitude", "out of range [-90, 90]")
	}
	if !(in.Longitude >= MinLongitude && in.Longitude <= MaxLongitude) {
		return errs.Invalid("longitude", "out of range [-180, 180]")
	}
	return nil
}
