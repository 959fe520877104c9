package booking

import (
	"testing"

	"shalfa/catalog"
	"shalfa/models"
)

func roomIDs(rooms []catalog.Room) []string {
	ids := make([]string, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterRooms(t *testing.T) {
	all := catalog.Rooms()

	tests := []struct {
		name   string
		guests int
		pref   models.KitchenPreference
		sticky string
		want   []string
	}{
		{
			name:   "two guests no preference includes everything",
			guests: 2,
			pref:   models.KitchenAny,
			want: []string{
				"casal-std", "triplo-comfort", "triplo-twin", "apto-royal",
				"estudio-gourmet", "familia-premium", "apartamento-grand-family", "apartamento-imperial",
			},
		},
		{
			name:   "four guests drops the small rooms",
			guests: 4,
			pref:   models.KitchenAny,
			want: []string{
				"apto-royal", "estudio-gourmet", "familia-premium",
				"apartamento-grand-family", "apartamento-imperial",
			},
		},
		{
			name:   "kitchen required",
			guests: 2,
			pref:   models.KitchenRequired,
			want: []string{
				"casal-std", "estudio-gourmet", "familia-premium",
				"apartamento-grand-family", "apartamento-imperial",
			},
		},
		{
			name:   "kitchen excluded",
			guests: 2,
			pref:   models.KitchenExcluded,
			want:   []string{"triplo-comfort", "triplo-twin", "apto-royal"},
		},
		{
			name:   "sticky room survives a filter that excludes it",
			guests: 4,
			pref:   models.KitchenAny,
			sticky: "casal-std",
			want: []string{
				"casal-std", "apto-royal", "estudio-gourmet", "familia-premium",
				"apartamento-grand-family", "apartamento-imperial",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := roomIDs(FilterRooms(all, tt.guests, tt.pref, tt.sticky))
			if !equalIDs(got, tt.want) {
				t.Errorf("FilterRooms() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterRoomsPreservesCatalogOrder(t *testing.T) {
	all := catalog.Rooms()
	got := FilterRooms(all, 1, models.KitchenAny, "")
	if !equalIDs(roomIDs(got), roomIDs(all)) {
		t.Errorf("filtered order %v differs from catalog order %v", roomIDs(got), roomIDs(all))
	}
}

func TestComputeQuote(t *testing.T) {
	room, ok := catalog.RoomByID("estudio-gourmet")
	if !ok {
		t.Fatal("estudio-gourmet missing from catalog")
	}

	tests := []struct {
		name  string
		draft models.BookingDraft
		room  *catalog.Room
		want  models.Quote
	}{
		{
			name:  "no room selected",
			draft: models.BookingDraft{CheckIn: "2026-09-01", CheckOut: "2026-09-04"},
			room:  nil,
			want:  models.Quote{},
		},
		{
			name:  "room only gives a single night estimate",
			draft: models.BookingDraft{},
			room:  &room,
			want:  models.Quote{Nights: 1, Total: 280},
		},
		{
			name:  "three night stay",
			draft: models.BookingDraft{CheckIn: "2026-09-01", CheckOut: "2026-09-04"},
			room:  &room,
			want:  models.Quote{Nights: 3, Total: 840},
		},
		{
			name:  "inverted range",
			draft: models.BookingDraft{CheckIn: "2026-09-04", CheckOut: "2026-09-01"},
			room:  &room,
			want:  models.Quote{},
		},
		{
			name:  "same day",
			draft: models.BookingDraft{CheckIn: "2026-09-01", CheckOut: "2026-09-01"},
			room:  &room,
			want:  models.Quote{},
		},
		{
			name:  "malformed date",
			draft: models.BookingDraft{CheckIn: "01/09/2026", CheckOut: "2026-09-04"},
			room:  &room,
			want:  models.Quote{},
		},
		{
			name:  "only one date falls back to single night",
			draft: models.BookingDraft{CheckIn: "2026-09-01"},
			room:  &room,
			want:  models.Quote{Nights: 1, Total: 280},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeQuote(tt.draft, tt.room)
			if got != tt.want {
				t.Errorf("ComputeQuote() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
