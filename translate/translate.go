// Package translate routes every user visible message of gasp through a
// golang.org/x/text message printer matched to the user's locale.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("gasp: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintln writes a translated line to w.
func Fprintln(w io.Writer, key message.Reference, args ...any) (err error) {
	_, err = printer.Fprintf(w, key, args...)
	if err != nil {
		return
	}
	_, err = io.WriteString(w, "\n")
	return
}
