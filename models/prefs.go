package models

import "shalfa/i18n"

// Theme is the site color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Preferences are a client's durable site settings. Read once at
// initialization, written only on explicit user action.
type Preferences struct {
	Language         i18n.Language `json:"language"`
	Theme            Theme         `json:"theme"`
	TooltipDismissed bool          `json:"tooltipDismissed"`
}

// DefaultPreferences returns the settings for a first-time client.
func DefaultPreferences() Preferences {
	return Preferences{
		Language: i18n.DefaultLanguage,
		Theme:    ThemeLight,
	}
}
