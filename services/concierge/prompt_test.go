package concierge

import (
	"strings"
	"testing"

	"shalfa/i18n"
)

func TestSystemInstructionAnchorsLanguage(t *testing.T) {
	tests := []struct {
		lang i18n.Language
		want string
	}{
		{i18n.Portuguese, "ALWAYS in Português"},
		{i18n.English, "ALWAYS in English"},
		{i18n.Spanish, "ALWAYS in Español"},
	}
	for _, tt := range tests {
		got := systemInstruction(tt.lang)
		if !strings.Contains(got, tt.want) {
			t.Errorf("systemInstruction(%s) missing %q", tt.lang, tt.want)
		}
	}
}

func TestSystemInstructionCarriesInventory(t *testing.T) {
	prompt := systemInstruction(i18n.Portuguese)

	for _, want := range []string{
		"Residencial Shalfa",
		"Suíte Casal Standard",
		"Apartamento Imperial",
		"SIM, COMPLETA (Fogão/Forno/Micro)",
		"NÃO (Só Frigobar)",
		"Capacidade: 7 pessoas",
		"Preço: R$ 750",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
