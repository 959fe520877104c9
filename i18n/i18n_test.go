package i18n

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"pt", Portuguese},
		{"pt-BR", Portuguese},
		{"en", English},
		{"en-US", English},
		{"EN", English},
		{"es", Spanish},
		{"es-AR", Spanish},
		{"", Portuguese},
		{"fr", Portuguese},
		{"  en  ", English},
	}
	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	b := NewBundle()

	tests := []struct {
		name string
		lang Language
		key  string
		want string
	}{
		{"portuguese value", Portuguese, "booking.err_required", "Obrigatório"},
		{"english value", English, "booking.err_required", "Required"},
		{"spanish value", Spanish, "booking.err_required", "Obligatorio"},
		{"unknown key falls back to the literal key", Portuguese, "booking.err_missing_key", "booking.err_missing_key"},
		{"unknown key in english still falls back to the key", English, "nav.does_not_exist", "nav.does_not_exist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Resolve(tt.lang, tt.key); got != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
			}
		})
	}
}

func TestTableFillsGapsFromDefault(t *testing.T) {
	b := NewBundle()

	pt := b.Table(Portuguese)
	en := b.Table(English)

	if len(en) < len(pt) {
		t.Errorf("english table has %d keys, portuguese has %d; gaps must be filled", len(en), len(pt))
	}
	for key := range pt {
		if en[key] == "" {
			t.Errorf("english table missing %q", key)
		}
	}
	if en["booking.err_required"] != "Required" {
		t.Errorf("english table kept the default for a translated key: %q", en["booking.err_required"])
	}
}

func TestValid(t *testing.T) {
	for _, lang := range []Language{Portuguese, English, Spanish} {
		if !lang.Valid() {
			t.Errorf("%q should be valid", lang)
		}
	}
	if Language("fr").Valid() {
		t.Error("fr should not be valid")
	}
}
