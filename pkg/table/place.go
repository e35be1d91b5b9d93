package table

import "github.com/matzehuels/periodic/pkg/element"

// Placement is everything a presentation layer needs to draw one card.
type Placement struct {
	Element  element.Element `json:"element" yaml:"element"`
	Kind     Kind            `json:"kind" yaml:"kind"`
	Position Position        `json:"position" yaml:"position"`
	Valence  int             `json:"valence" yaml:"valence"`
	Color    string          `json:"color" yaml:"color"`
}

// Place computes the placement of every classified element in render order:
// the main table, then the lanthanides, then the actinides.
func Place(g Groups) []Placement {
	out := make([]Placement, 0, g.Len())
	g.Each(func(k Kind, e element.Element) {
		out = append(out, Placement{
			Element:  e,
			Kind:     k,
			Position: GridPosition(e, k),
			Valence:  ValenceElectrons(e),
			Color:    element.ColorFor(e.Category),
		})
	})
	return out
}
