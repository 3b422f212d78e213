// Package model defines domain entities used by gateways, stores and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Tokens collects an issued access token.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time // access token expiry (for diagnostics)
}

// User represents an account stored in the backend. Passwords are never stored in plaintext.
type User struct {
	ID        uuid.UUID // PK
	Username  string    // unique
	PwdHash   []byte    // Argon2id(password, Salt)
	Salt      []byte    // per-user salt
	CreatedAt time.Time
}

// DiaryEntry is one fishing trip. FishCount is entered by the user and is not
// derived from the catches recorded against the entry.
type DiaryEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	FishCount int       `json:"fish_count"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// FishCatch is a single fish recorded against a diary entry.
type FishCatch struct {
	ID           uuid.UUID `json:"id"`
	DiaryEntryID uuid.UUID `json:"diary_entry_id"`
	UserID       uuid.UUID `json:"user_id"`
	Species      string    `json:"species"`
	SizeCM       *float64  `json:"size_cm"`
	WeightKG     *float64  `json:"weight_kg"`
	Bait         *string   `json:"bait"`
	Notes        *string   `json:"notes"`
	PhotoURL     *string   `json:"photo_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// FishingSpot is a saved, geotagged place.
type FishingSpot struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}
