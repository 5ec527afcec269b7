// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate localizes the Go-side error and log text of the
// simulator. Text written by the simulated program is never translated.
package translate

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer = sync.OnceValue(func() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Warn("svcsim: locale", "err", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
})

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer().Sprintf(key, args...)
}

// Error creates an error from a translated en-US Sprintf() format.
func Error(key message.Reference, args ...any) error {
	return errors.New(From(key, args...))
}
