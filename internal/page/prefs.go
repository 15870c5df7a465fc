package page

import (
	"net/http"
	"strings"
)

// ThemeCookie remembers the visitor's explicit theme choice.
const ThemeCookie = "theme"

// Client hints a browser sends once the server asks for them via Accept-CH.
const (
	HintColorScheme   = "Sec-CH-Prefers-Color-Scheme"
	HintReducedMotion = "Sec-CH-Prefers-Reduced-Motion"
)

// PrefsFromRequest reads the host preferences of a page load. An explicit
// theme cookie wins over the system colour scheme; light is the fallback.
func PrefsFromRequest(r *http.Request) Prefs {
	prefs := Prefs{Theme: Light}

	if hint := unquote(r.Header.Get(HintColorScheme)); hint != "" {
		if t, ok := ParseTheme(hint); ok {
			prefs.Theme = t
		}
	}
	if c, err := r.Cookie(ThemeCookie); err == nil {
		if t, ok := ParseTheme(c.Value); ok {
			prefs.Theme = t
		}
	}

	prefs.ReducedMotion = unquote(r.Header.Get(HintReducedMotion)) == "reduce"
	return prefs
}

func unquote(v string) string {
	return strings.Trim(strings.TrimSpace(v), `"`)
}
