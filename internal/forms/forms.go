// Package forms turns free-text view input into validated create inputs.
// Nothing here touches a store or gateway: a rejected form never leaves the view.
package forms

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/and161185/fishlog/internal/errs"
	"github.com/and161185/fishlog/internal/model"
	"github.com/gofrs/uuid/v5"
)

// DateLayouts are the accepted diary date formats.
var DateLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}

// ParseDiary builds a diary input. Empty fishCount means 0, empty date means now.
func ParseDiary(title, location, fishCount, date string) (model.NewDiaryEntry, error) {
	in := model.NewDiaryEntry{
		Title:    strings.TrimSpace(title),
		Location: strings.TrimSpace(location),
	}
	if s := strings.TrimSpace(fishCount); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return model.NewDiaryEntry{}, errs.Invalid("fish_count", "must be a whole number")
		}
		in.FishCount = n
	}
	if s := strings.TrimSpace(date); s != "" {
		d, err := parseDate(s)
		if err != nil {
			return model.NewDiaryEntry{}, err
		}
		in.Date = &d
	}
	return in, in.Validate()
}

// ParseCatch builds a catch input. Optional numbers are absent when empty and must be positive otherwise.
func ParseCatch(diaryID, species, size, weight, bait, notes, photoPath string) (model.NewFishCatch, error) {
	id, err := uuid.FromString(strings.TrimSpace(diaryID))
	if err != nil {
		return model.NewFishCatch{}, errs.Invalid("diary_entry_id", "must be a uuid")
	}
	in := model.NewFishCatch{
		DiaryEntryID: id,
		Species:      strings.TrimSpace(species),
		Bait:         strings.TrimSpace(bait),
		Notes:        strings.TrimSpace(notes),
		PhotoPath:    strings.TrimSpace(photoPath),
	}
	if in.SizeCM, err = optionalPositive("size_cm", size); err != nil {
		return model.NewFishCatch{}, err
	}
	if in.WeightKG, err = optionalPositive("weight_kg", weight); err != nil {
		return model.NewFishCatch{}, err
	}
	return in, in.Validate()
}

// ParseSpot builds a spot input. Both coordinates are required.
func ParseSpot(name, lat, lng string) (model.NewFishingSpot, error) {
	la, err := number("latitude", lat)
	if err != nil {
		return model.NewFishingSpot{}, err
	}
	lo, err := number("longitude", lng)
	if err != nil {
		return model.NewFishingSpot{}, err
	}
	in := model.NewFishingSpot{Name: strings.TrimSpace(name), Latitude: la, Longitude: lo}
	return in, in.Validate()
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range DateLayouts {
		if d, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return d, nil
		}
	}
	return time.Time{}, errs.Invalid("date", "expected YYYY-MM-DD, YYYY-MM-DD HH:MM or RFC 3339")
}

func number(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errs.Invalid(field, "is required")
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errs.Invalid(field, "must be a number")
	}
	return v, nil
}

func optionalPositive(field, s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := number(field, s)
	if err != nil {
		return nil, err
	}
	if v <= 0 {
		return nil, errs.Invalid(field, "must be positive")
	}
	return &v, nil
}
