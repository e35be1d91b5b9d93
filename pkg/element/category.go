package element

import (
	"strings"

	"github.com/matzehuels/periodic/pkg/errors"
)

// Category is the chemical family of an element. It is a closed enumeration:
// only the constants below are valid.
type Category string

// Element categories, in display order.
const (
	AlkaliMetal         Category = "alkali metal"
	AlkalineEarthMetal  Category = "alkaline earth metal"
	TransitionMetal     Category = "transition metal"
	PostTransitionMetal Category = "post-transition metal"
	Metalloid           Category = "metalloid"
	Nonmetal            Category = "nonmetal"
	NobleGas            Category = "noble gas"
	Lanthanide          Category = "lanthanide"
	Actinide            Category = "actinide"
	Unknown             Category = "unknown"
)

// categories is the fixed display order used by filter controls.
var categories = []Category{
	AlkaliMetal,
	AlkalineEarthMetal,
	TransitionMetal,
	PostTransitionMetal,
	Metalloid,
	Nonmetal,
	NobleGas,
	Lanthanide,
	Actinide,
	Unknown,
}

// FallbackColor is the color of the unknown category and of any unmapped value.
const FallbackColor = "#95A5A6"

var categoryColors = map[Category]string{
	AlkaliMetal:         "#FF6B6B",
	AlkalineEarthMetal:  "#4ECDC4",
	TransitionMetal:     "#45B7D1",
	PostTransitionMetal: "#96CEB4",
	Metalloid:           "#FFEEAD",
	Nonmetal:            "#D4A5A5",
	NobleGas:            "#9B59B6",
	Lanthanide:          "#3498DB",
	Actinide:            "#E74C3C",
	Unknown:             FallbackColor,
}

// Categories returns every valid category in display order, including Unknown
// even when no record uses it. The returned slice is a copy.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ColorFor returns the display color token for c. It never fails: values that
// are not in the color map get [FallbackColor].
func ColorFor(c Category) string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return FallbackColor
}

// Valid reports whether c is a member of the closed enumeration.
func (c Category) Valid() bool {
	_, ok := categoryColors[c]
	return ok
}

// Slug returns a URL-friendly form of the category, e.g. "alkaline-earth-metal".
func (c Category) Slug() string {
	return strings.ReplaceAll(string(c), " ", "-")
}

// ParseCategory converts user input into a Category. Matching is exact and
// case-sensitive against the canonical names; the slug form ("noble-gas") and
// underscores ("noble_gas") are accepted as aliases for use in URLs and flags.
func ParseCategory(s string) (Category, error) {
	if c := Category(s); c.Valid() {
		return c, nil
	}
	for _, c := range categories {
		if s == c.Slug() || s == strings.ReplaceAll(string(c), " ", "_") {
			return c, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidCategory, "unknown category: %q", s)
}
