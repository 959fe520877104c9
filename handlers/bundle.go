package handlers

import (
	"shalfa/i18n"
	"shalfa/services/booking"
	"shalfa/services/concierge"
	"shalfa/services/prefs"
)

// HandlerBundle groups the endpoint handlers with their dependencies.
type HandlerBundle struct {
	Bundle    *i18n.Bundle
	Booking   booking.SessionService
	Concierge concierge.Service
	Prefs     prefs.Service
}

// langFrom resolves the request language from the lang query parameter.
func langFrom(raw string) i18n.Language {
	return i18n.Parse(raw)
}
