// Package i18n resolves display strings for the site's three languages.
package i18n

import "strings"

// Language is a supported site language.
type Language string

const (
	Portuguese Language = "pt"
	English    Language = "en"
	Spanish    Language = "es"
)

// DefaultLanguage is the fallback for missing keys and unknown codes.
const DefaultLanguage = Portuguese

// Parse maps a language code (or a BCP-47 tag such as "en-US") to a
// supported Language. Unknown input falls back to Portuguese.
func Parse(code string) Language {
	code = strings.ToLower(strings.TrimSpace(code))
	switch {
	case strings.HasPrefix(code, "en"):
		return English
	case strings.HasPrefix(code, "es"):
		return Spanish
	default:
		return Portuguese
	}
}

// Valid reports whether lang is one of the supported languages.
func (l Language) Valid() bool {
	return l == Portuguese || l == English || l == Spanish
}

// Bundle holds per-language string tables keyed by dotted paths.
type Bundle struct {
	tables map[Language]map[string]string
}

// NewBundle returns the bundle backed by the site's string tables.
func NewBundle() *Bundle {
	return &Bundle{tables: translations}
}

// Table returns the complete string table for a language, with the
// default language filling any gaps. The result is a fresh map.
func (b *Bundle) Table(lang Language) map[string]string {
	out := make(map[string]string, len(b.tables[DefaultLanguage]))
	for k, v := range b.tables[DefaultLanguage] {
		out[k] = v
	}
	if lang != DefaultLanguage {
		for k, v := range b.tables[lang] {
			out[k] = v
		}
	}
	return out
}

// Resolve looks up a dotted key in the requested language, falling back to
// the default language and finally to the literal key.
func (b *Bundle) Resolve(lang Language, key string) string {
	if table, ok := b.tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := b.tables[DefaultLanguage][key]; ok {
		return s
	}
	return key
}
