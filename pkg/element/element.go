package element

import (
	"fmt"
	"slices"
	"strings"
)

// Block is the orbital block (s, p, d or f) of an element's outermost electrons.
type Block string

// Orbital blocks.
const (
	BlockS Block = "s"
	BlockP Block = "p"
	BlockD Block = "d"
	BlockF Block = "f"
)

// Valid reports whether b is one of the four orbital blocks.
func (b Block) Valid() bool {
	switch b {
	case BlockS, BlockP, BlockD, BlockF:
		return true
	}
	return false
}

// ParseBlock parses a block letter, accepting upper or lower case.
func ParseBlock(s string) (Block, error) {
	b := Block(strings.ToLower(strings.TrimSpace(s)))
	if !b.Valid() {
		return "", fmt.Errorf("invalid block: %q (must be s, p, d or f)", s)
	}
	return b, nil
}

// Element is one immutable catalog record.
type Element struct {
	AtomicNumber int      `json:"atomic_number" yaml:"atomic_number"`
	Symbol       string   `json:"symbol" yaml:"symbol"`
	Name         string   `json:"name" yaml:"name"`
	AtomicMass   float64  `json:"atomic_mass" yaml:"atomic_mass"`
	Category     Category `json:"category" yaml:"category"`
	Period       int      `json:"period" yaml:"period"`
	Group        int      `json:"group" yaml:"group"` // 3 for lanthanides and actinides
	Block        Block    `json:"block" yaml:"block"`
	Shells       []int    `json:"shells,omitempty" yaml:"shells,omitempty"` // electrons per shell, innermost first
}

// Color returns the display color of the element's category.
func (e Element) Color() string { return ColorFor(e.Category) }

// ImagePath returns the URL path of the element's illustration,
// e.g. "/images/elements/fe.png". The image may not exist.
func (e Element) ImagePath() string {
	return "/images/elements/" + e.ImageName()
}

// ImageName returns the file name of the element's illustration.
func (e Element) ImageName() string {
	return strings.ToLower(e.Symbol) + ".png"
}

// FormattedMass returns the atomic mass with two decimals, as shown on cards.
func (e Element) FormattedMass() string {
	return fmt.Sprintf("%.2f", e.AtomicMass)
}

// clone returns a deep copy so callers cannot alias the catalog's shell slices.
func (e Element) clone() Element {
	e.Shells = slices.Clone(e.Shells)
	return e
}

func (e Element) String() string {
	return fmt.Sprintf("%d %s (%s)", e.AtomicNumber, e.Symbol, e.Name)
}
