package catalog

import (
	"testing"

	"shalfa/i18n"
)

func TestRoomByID(t *testing.T) {
	room, ok := RoomByID("casal-std")
	if !ok {
		t.Fatal("casal-std not found")
	}
	if room.Name != "Suíte Casal Standard" || room.Capacity != 2 || room.Price != 180 {
		t.Errorf("unexpected room: %+v", room)
	}

	if _, ok := RoomByID("penthouse"); ok {
		t.Error("expected a miss for an unknown id")
	}
}

func TestHasKitchen(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"casal-std", true},
		{"triplo-comfort", false},
		{"triplo-twin", false},
		{"apto-royal", false},
		{"estudio-gourmet", true},
		{"familia-premium", true},
		{"apartamento-grand-family", true},
		{"apartamento-imperial", true},
	}
	for _, tt := range tests {
		room, ok := RoomByID(tt.id)
		if !ok {
			t.Fatalf("%s not found", tt.id)
		}
		if got := room.HasKitchen(); got != tt.want {
			t.Errorf("%s HasKitchen() = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestRoomLocalized(t *testing.T) {
	room, _ := RoomByID("casal-std")

	pt := room.Localized(i18n.Portuguese)
	if pt.Name != "Suíte Casal Standard" {
		t.Errorf("pt name = %q", pt.Name)
	}

	en := room.Localized(i18n.English)
	if en.Name != "Standard Couple Suite" {
		t.Errorf("en name = %q", en.Name)
	}

	es := room.Localized(i18n.Spanish)
	if es.Name != "Suite Matrimonial Estándar" {
		t.Errorf("es name = %q", es.Name)
	}

	// An unsupported language falls back to the Portuguese base fields.
	fr := room.Localized(i18n.Language("fr"))
	if fr.Name != room.Name {
		t.Errorf("fallback name = %q, want %q", fr.Name, room.Name)
	}
}

func TestCatalogShape(t *testing.T) {
	if got := len(Rooms()); got != 8 {
		t.Errorf("len(Rooms()) = %d, want 8", got)
	}
	if got := len(Attractions()); got == 0 {
		t.Error("no attractions")
	}
	if got := len(ShoppingSpots()); got == 0 {
		t.Error("no shopping spots")
	}
	if got := len(ShoppingTips()); got == 0 {
		t.Error("no shopping tips")
	}
	if got := len(HeroSlides()); got == 0 {
		t.Error("no hero slides")
	}
}

func TestPriceSearchURL(t *testing.T) {
	got := PriceSearchURL("iphone 15 pro")
	want := "https://www.comprasparaguai.com.br/busca/?q=iphone+15+pro"
	if got != want {
		t.Errorf("PriceSearchURL() = %q, want %q", got, want)
	}
}
