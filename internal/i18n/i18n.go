// Package i18n holds the bot's message catalogs. Russian is the reference
// catalog: a key missing from another language falls back to it, so new
// messages can land in ru first without breaking the other locales.
package i18n

import "fmt"

// T renders the message for key in lang, applying fmt verbs from args.
// Unknown languages and unknown keys degrade gracefully: first to the
// Russian catalog, then to the raw key.
func T(lang, key string, args ...any) string {
	msg, ok := catalogs[lang][key]
	if !ok {
		msg, ok = catalogs["ru"][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

// Has reports whether any catalog defines key. Used by tests to keep the
// catalogs in sync.
func Has(lang, key string) bool {
	_, ok := catalogs[lang][key]
	return ok
}

var catalogs = map[string]map[string]string{
	"ru": ru,
	"en": en,
	"uz": uz,
}
