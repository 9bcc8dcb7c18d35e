// Package translate formats user-visible messages for a locale.
//
// The printer is chosen from the host locale at startup, and may be replaced
// with SetLocales (for example from a command line flag).
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DEFAULT_LOCALE = "en-US"

type localePrinter struct {
	tag     language.Tag
	printer *message.Printer
}

var current atomic.Pointer[localePrinter]

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("accum: locale: %v", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the best matching language of the locales given, in
// order of preference. With no locales, en-US is used.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	tag := message.MatchLanguage(locales...)
	current.Store(&localePrinter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	})
}

// Language returns the language currently used for messages.
func Language() language.Tag {
	return current.Load().tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return current.Load().printer.Sprintf(key, args...)
}
