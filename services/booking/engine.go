package booking

import (
	"math"
	"time"

	"shalfa/catalog"
	"shalfa/models"
)

// matchesFilters applies the structural inclusion rule: capacity covers the
// guest count and the kitchen preference holds.
func matchesFilters(room catalog.Room, guests int, pref models.KitchenPreference) bool {
	if room.Capacity < guests {
		return false
	}
	switch pref {
	case models.KitchenRequired:
		return room.HasKitchen()
	case models.KitchenExcluded:
		return !room.HasKitchen()
	default:
		return true
	}
}

// FilterRooms returns the rooms available for the given guest count and
// kitchen preference, preserving catalog order. The sticky room (the one
// currently selected, if any) is always included so it does not vanish
// from under the guest; reconciliation is what clears an invalid
// selection, not the filter.
func FilterRooms(rooms []catalog.Room, guests int, pref models.KitchenPreference, stickyRoomID string) []catalog.Room {
	out := make([]catalog.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.ID == stickyRoomID {
			out = append(out, room)
			continue
		}
		if matchesFilters(room, guests, pref) {
			out = append(out, room)
		}
	}
	return out
}

const dateLayout = "2006-01-02"

// ComputeQuote derives the nights/total estimate for a draft. room is the
// resolved selection, nil when none. A malformed or inverted date range
// yields a zero quote; it is not an error here, validation surfaces it on
// submit. Pure and idempotent.
func ComputeQuote(draft models.BookingDraft, room *catalog.Room) models.Quote {
	if room == nil {
		return models.Quote{}
	}
	if draft.CheckIn != "" && draft.CheckOut != "" {
		start, errIn := time.Parse(dateLayout, draft.CheckIn)
		end, errOut := time.Parse(dateLayout, draft.CheckOut)
		if errIn != nil || errOut != nil {
			return models.Quote{}
		}
		diffDays := int(math.Ceil(math.Abs(end.Sub(start).Hours()) / 24))
		if diffDays > 0 && end.After(start) {
			return models.Quote{Nights: diffDays, Total: float64(diffDays) * room.Price}
		}
		return models.Quote{}
	}
	// Room chosen but dates incomplete: single-night estimate.
	return models.Quote{Nights: 1, Total: room.Price}
}
