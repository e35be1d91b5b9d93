package table

import (
	"fmt"

	"github.com/matzehuels/periodic/pkg/element"
)

const (
	// firstLanthanide is the atomic number of lanthanum.
	firstLanthanide = 57
	// firstActinide is the atomic number of actinium.
	firstActinide = 89
	// stripOffset is the column where both f-block strips start.
	stripOffset = 3
)

// Position is a 1-based grid cell inside a display group.
type Position struct {
	Column int `json:"column" yaml:"column"`
	Row    int `json:"row" yaml:"row"`
}

func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Column, p.Row) }

// GridPosition returns the cell of e inside the group of the given kind.
//
// Main-table elements use (group, period) verbatim. Lanthanides and actinides use
// row 1 of their own strip and column atomicNumber-57+3 or atomicNumber-89+3, so
// La..Lu and Ac..Lr occupy columns 3 to 17.
func GridPosition(e element.Element, kind Kind) Position {
	switch kind {
	case KindLanthanide:
		return Position{Column: e.AtomicNumber - firstLanthanide + stripOffset, Row: 1}
	case KindActinide:
		return Position{Column: e.AtomicNumber - firstActinide + stripOffset, Row: 1}
	default:
		return Position{Column: e.Group, Row: e.Period}
	}
}
