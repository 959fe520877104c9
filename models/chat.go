package models

import (
	"time"

	"shalfa/i18n"
)

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry of a concierge transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession holds the append-only transcript of one concierge widget
// instance plus its panel state. InFlight serializes sends: a second send
// while one is pending is rejected.
type ChatSession struct {
	ID        string        `json:"id"`
	Language  i18n.Language `json:"language"`
	Messages  []ChatMessage `json:"messages"`
	Open      bool          `json:"open"`
	InFlight  bool          `json:"inFlight"`
	CreatedAt time.Time     `json:"createdAt"`
}

// TooltipState is the concierge prompt bubble state.
type TooltipState string

const (
	TooltipHidden    TooltipState = "hidden"
	TooltipShown     TooltipState = "shown"
	TooltipDismissed TooltipState = "dismissed"
)
