// Package translate formats user visible messages through the
// golang.org/x/text message catalogue, matched to the host locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	lock    sync.Mutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("lce: locale: %v", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the message printer for the first supported locale.
// With no locales, en-US is used.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	lock.Lock()
	defer lock.Unlock()

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	lock.Lock()
	p := printer
	lock.Unlock()

	return p.Sprintf(key, args...)
}
