package styles

import (
	"bytes"
	"slices"
	"strings"

	"github.com/matzehuels/periodic/pkg/errors"
)

// Style defines the visual appearance of element cards.
type Style interface {
	// Name returns the identifier accepted by [Parse].
	Name() string
	// RenderDefs writes SVG <defs> content (filters, keyframes).
	RenderDefs(buf *bytes.Buffer, t Theme)
	// RenderCard writes the SVG for a single element card.
	RenderCard(buf *bytes.Buffer, c Card, t Theme)
	// RenderTooltip writes the hidden hover tooltip for a card.
	RenderTooltip(buf *bytes.Buffer, c Card, t Theme)
}

// Card contains all data needed to render a single element.
type Card struct {
	ID       string  // Lowercase symbol, unique within a table
	Number   int     // Atomic number
	Symbol   string  // Chemical symbol
	Name     string  // Element name
	Mass     float64 // Atomic mass in u
	Category string  // Category as stored in the catalog
	Block    string  // s, p, d or f
	Group    int     // 0 when unassigned
	Period   int     // Table row
	Valence  int     // Valence electron count
	Color    string  // Category fill color
	Image    string  // Optional image URL
	X, Y     float64 // Top-left corner
	W, H     float64 // Dimensions
	CX, CY   float64 // Center coordinates
}

// DefaultStyle is used when no style is requested.
const DefaultStyle = "orbit"

var registry = map[string]Style{
	"simple": Simple{},
	"orbit":  Orbit{},
	"glow":   Glow{},
}

// Names returns the registered style names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Parse resolves a style by name. The empty string yields [DefaultStyle].
func Parse(name string) (Style, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultStyle
	}
	if s, ok := registry[key]; ok {
		return s, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (want one of %s)", name, strings.Join(Names(), ", "))
}
