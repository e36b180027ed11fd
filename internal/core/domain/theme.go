package domain

import (
	"fmt"
	"strings"
)

// Theme selects one of the fixed term-matching strategies used to search
// the openFDA device event corpus. The zero value is not a valid theme.
type Theme int

const (
	// ThemeArtificialIntelligence matches reports mentioning
	// "artificial intelligence" or "machine learning".
	ThemeArtificialIntelligence Theme = iota + 1

	// ThemeAlgorithm matches reports mentioning "algorithm".
	ThemeAlgorithm

	// ThemeDiagnosticAlgorithm matches reports mentioning "algorithm" and
	// either "diagnostic" or "diagnosis".
	ThemeDiagnosticAlgorithm
)

// themeInfo holds everything a theme owns apart from its query expression,
// which belongs to the openFDA connector.
type themeInfo struct {
	id           string
	name         string
	labelPrefix  string
	baseFileName string
}

var themes = map[Theme]themeInfo{
	ThemeArtificialIntelligence: {
		id:           "ai",
		name:         "artificial intelligence or machine learning",
		labelPrefix:  "AI",
		baseFileName: "open_fda_ml_results",
	},
	ThemeAlgorithm: {
		id:           "algorithm",
		name:         "algorithm",
		labelPrefix:  "ALG",
		baseFileName: "open_fda_algorithms_results",
	},
	ThemeDiagnosticAlgorithm: {
		id:           "diagnostic-algorithm",
		name:         "algorithm with diagnostic or diagnosis",
		labelPrefix:  "ALG-DIAG",
		baseFileName: "open_fda_algorithms_diagnostic_results",
	},
}

// AllThemes returns every theme in investigation order.
func AllThemes() []Theme {
	return []Theme{ThemeArtificialIntelligence, ThemeAlgorithm, ThemeDiagnosticAlgorithm}
}

// ParseTheme resolves a theme from its identifier (e.g. "ai", "algorithm").
func ParseTheme(s string) (Theme, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, t := range AllThemes() {
		if themes[t].id == want {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// info returns the theme's attributes. Requesting an unknown theme is a
// programming error and panics.
func (t Theme) info() themeInfo {
	info, ok := themes[t]
	if !ok {
		panic(fmt.Sprintf("domain: unknown search theme %d", int(t)))
	}
	return info
}

// Valid reports whether t is one of the defined themes.
func (t Theme) Valid() bool {
	_, ok := themes[t]
	return ok
}

// ID returns the short identifier used on the command line.
func (t Theme) ID() string { return t.info().id }

// Name returns a human-readable description of what the theme matches.
func (t Theme) Name() string { return t.info().name }

// LabelPrefix returns the prefix used for result labels, e.g. "ALG".
func (t Theme) LabelPrefix() string { return t.info().labelPrefix }

// BaseFileName returns the file name, without extension, used for the
// theme's report outputs.
func (t Theme) BaseFileName() string { return t.info().baseFileName }

// String implements fmt.Stringer. Unlike the other accessors it does not
// panic so invalid values can still be logged.
func (t Theme) String() string {
	if info, ok := themes[t]; ok {
		return info.id
	}
	return fmt.Sprintf("Theme(%d)", int(t))
}
