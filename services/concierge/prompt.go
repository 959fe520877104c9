package concierge

import (
	"fmt"
	"strings"

	"shalfa/catalog"
	"shalfa/i18n"
)

// Canned replies. The assistant's knowledge base is Portuguese-first, so
// the degraded-mode strings stay in Portuguese regardless of session
// language.
const (
	replyUnavailable = "O sistema de Inteligência Artificial está temporariamente indisponível."
	replyEmpty       = "Poderia repetir?"
	replyError       = "Erro de conexão. Tente novamente."
)

// Suggestions are the quick-question pills shown above the input.
var Suggestions = []string{
	"Qual o melhor quarto para família?",
	"Fica perto do Paraguai?",
	"Tem estacionamento?",
	"Quais quartos têm cozinha?",
	"Aceitam check-in de madrugada?",
}

var languageNames = map[i18n.Language]string{
	i18n.Portuguese: "Português",
	i18n.English:    "English",
	i18n.Spanish:    "Español",
}

// Greeting is the seeded first transcript message.
func Greeting(lang i18n.Language) string {
	switch lang {
	case i18n.English:
		return "Hello. I am the Virtual Concierge of **Residencial Shalfa**. \n\nHow can I help you today?"
	case i18n.Spanish:
		return "Hola. Soy el Conserje Virtual de **Residencial Shalfa**. \n\n¿Cómo puedo ayudarte hoy?"
	default:
		return "Olá. Sou o Concierge Virtual do **Residencial Shalfa**. \n\nEstou aqui para ajudar a escolher a suíte perfeita ou tirar dúvidas sobre sua viagem a Foz. Como posso servir você hoje?"
	}
}

func roomInventory() string {
	var sb strings.Builder
	for _, room := range catalog.Rooms() {
		kitchen := "NÃO (Só Frigobar)"
		if room.HasKitchen() {
			kitchen = "SIM, COMPLETA (Fogão/Forno/Micro)"
		}
		fmt.Fprintf(&sb, "- 🏨 **%s** (%s):\n", room.Name, room.Type)
		fmt.Fprintf(&sb, "    • Capacidade: %d pessoas\n", room.Capacity)
		fmt.Fprintf(&sb, "    • Preço: R$ %.0f\n", room.Price)
		fmt.Fprintf(&sb, "    • Cozinha: %s\n", kitchen)
		fmt.Fprintf(&sb, "    • Descrição: %s\n", room.Description)
	}
	return sb.String()
}

// systemInstruction builds the concierge persona and knowledge base,
// anchored to the session language.
func systemInstruction(lang i18n.Language) string {
	name, ok := languageNames[lang]
	if !ok {
		name = languageNames[i18n.Portuguese]
	}

	return fmt.Sprintf(`
PERSONA:
You are the Virtual Concierge of %s.
**YOUR GOLDEN RULE: BE EXTREMELY SHORT AND OBJECTIVE.**
The user is on a mobile device and wants quick information. Do not write long texts.
**IMPORTANT: You must respond ALWAYS in %s.**

DIRETRIZES DE RESPOSTA (Guidelines):
1. **Direct to the point.** Start by answering the question.
2. **Use bullets (•)** for lists.
3. **Maximum 2 to 3 sentences** per paragraph.
4. **No long greetings.** Just a quick "Hello" or go straight to the answer.

BASE DE CONHECIMENTO (Resumida):

1. **O HOTEL:**
   - **Local:** Vila Portes, Foz do Iguaçu (Next to the Friendship Bridge/Paraguay).
   - **Check-in:** %s.
   - **Parking:** Free, 80m from the building (Secure).
   - **Breakfast:** **NOT served.** We have full kitchens in most suites and a bakery 50m away.

2. **SHOPPING (Paraguay):**
   - **Docs:** Passport or ID Card (less than 10 years old) MANDATORY.
   - **Quota:** U$ 500 via land.

3. **ROOM INVENTORY:**
%s
Respond in %s keeping the objective tone.
`, catalog.Info.Name, name, catalog.Rules.CheckIn, roomInventory(), name)
}
