package booking

import (
	"testing"

	"shalfa/models"
)

func TestBuildEngineURL(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		draft models.BookingDraft
		want  string
	}{
		{
			name:  "standard search",
			base:  "https://jomaa.stays.net",
			draft: models.BookingDraft{CheckIn: "2026-09-10", CheckOut: "2026-09-12", Guests: 2},
			want:  "https://jomaa.stays.net/search?adults=2&checkInDate=2026-09-10&checkOutDate=2026-09-12",
		},
		{
			name:  "base with trailing slash",
			base:  "https://jomaa.stays.net/",
			draft: models.BookingDraft{CheckIn: "2026-09-10", CheckOut: "2026-09-12", Guests: 4},
			want:  "https://jomaa.stays.net/search?adults=4&checkInDate=2026-09-10&checkOutDate=2026-09-12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildEngineURL(tt.base, tt.draft); got != tt.want {
				t.Errorf("BuildEngineURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
