package styles

import (
	"strings"

	"github.com/matzehuels/periodic/pkg/errors"
)

// Theme is a named color scheme.
type Theme struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Card       string `json:"card"`
	Overlay    string `json:"overlay"`

	// Button and ButtonActive fill the category filter buttons.
	Button       string `json:"button"`
	ButtonActive string `json:"button_active"`
}

var (
	// Light is the light page theme.
	Light = Theme{
		Name:         "light",
		Background:   "#f5f7fa",
		Text:         "#333",
		Card:         "#ffffff",
		Overlay:      "rgba(0, 0, 0, 0.5)",
		Button:       "rgba(0, 0, 0, 0.05)",
		ButtonActive: "rgba(0, 0, 0, 0.1)",
	}

	// Dark is the dark page theme and the default.
	Dark = Theme{
		Name:         "dark",
		Background:   "#1a1a1a",
		Text:         "#fff",
		Card:         "#1e1e1e",
		Overlay:      "rgba(0, 0, 0, 0.7)",
		Button:       "rgba(255, 255, 255, 0.1)",
		ButtonActive: "rgba(255, 255, 255, 0.2)",
	}
)

// DefaultTheme is used when no theme is requested.
var DefaultTheme = Dark

// Themes returns the built-in themes, light first.
func Themes() []Theme { return []Theme{Light, Dark} }

// ParseTheme resolves a theme by name. The empty string yields [DefaultTheme].
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultTheme, nil
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Theme{}, errors.New(errors.ErrCodeInvalidTheme, "unknown theme %q (want light or dark)", name)
}

// Toggle returns the other built-in theme.
func (t Theme) Toggle() Theme {
	if t.Name == Light.Name {
		return Dark
	}
	return Light
}
