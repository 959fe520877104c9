package models

import (
	"time"

	"shalfa/i18n"
)

// KitchenPreference filters rooms on kitchen presence.
type KitchenPreference string

const (
	// KitchenAny accepts every room.
	KitchenAny KitchenPreference = "any"
	// KitchenRequired keeps only rooms with a kitchen.
	KitchenRequired KitchenPreference = "required"
	// KitchenExcluded keeps only rooms without a kitchen.
	KitchenExcluded KitchenPreference = "excluded"
)

// Valid reports whether p is a known preference.
func (p KitchenPreference) Valid() bool {
	return p == KitchenAny || p == KitchenRequired || p == KitchenExcluded
}

// BookingDraft is the in-progress reservation input. Dates are ISO
// "2006-01-02" strings, empty when unset. RoomID is empty when no room is
// selected.
type BookingDraft struct {
	Name        string            `json:"name"`
	Document    string            `json:"document"`
	Phone       string            `json:"phone"`
	CheckIn     string            `json:"checkIn"`
	CheckOut    string            `json:"checkOut"`
	Guests      int               `json:"guests"`
	KitchenPref KitchenPreference `json:"kitchenPref"`
	RoomID      string            `json:"roomId"`
}

// Quote is the derived nights/total estimate. Never stored; recomputed
// from the draft after every mutation.
type Quote struct {
	Nights int     `json:"nights"`
	Total  float64 `json:"total"`
}

// ValidationErrors maps a field name to a human-readable message. It is
// rebuilt wholesale on every validation pass.
type ValidationErrors map[string]string

// BookingSession wraps a draft with its session identity and language.
type BookingSession struct {
	ID        string        `json:"id"`
	Language  i18n.Language `json:"language"`
	Draft     BookingDraft  `json:"draft"`
	Submitted bool          `json:"submitted"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
