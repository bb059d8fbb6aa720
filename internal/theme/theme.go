// Package theme holds the light/dark display preference.
package theme

import (
	"net/http"
	"strings"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Key is the single persisted key the preference lives under.
const Key = "theme"

// HintHeader is the client hint carrying the browser's preferred
// appearance.
const HintHeader = "Sec-CH-Prefers-Color-Scheme"

// Store is a string key-value store that survives reloads.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Parse reports whether s names a theme.
func Parse(s string) (Theme, bool) {
	switch Theme(s) {
	case Light, Dark:
		return Theme(s), true
	}
	return "", false
}

// Flip returns the other theme.
func (t Theme) Flip() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Initial returns the persisted theme when one is stored, else the
// ambient hint: light if the platform prefers light, dark otherwise.
// Any stored value other than "light" reads as dark. Nothing is written.
func Initial(store Store, ambientLight bool) Theme {
	if v, ok := store.Get(Key); ok && v != "" {
		if Theme(v) == Light {
			return Light
		}
		return Dark
	}
	if ambientLight {
		return Light
	}
	return Dark
}

// Toggle flips current and persists the result.
func Toggle(store Store, current Theme) Theme {
	next := current.Flip()
	store.Set(Key, string(next))
	return next
}

// PrefersLight reads the ambient appearance hint from a request.
func PrefersLight(r *http.Request) bool {
	return strings.EqualFold(strings.Trim(r.Header.Get(HintHeader), `" `), "light")
}
