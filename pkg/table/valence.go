package table

import "github.com/matzehuels/periodic/pkg/element"

// ValenceElectrons returns the number of electrons drawn on the element's orbit.
//
// When shell data is present its outermost entry is returned. Otherwise the count
// is derived from the group: groups 1-2 give 1-2, groups 13-18 give 3-8, and the
// transition groups 3-12 give a flat 2. Any other group gives 0.
func ValenceElectrons(e element.Element) int {
	if n := len(e.Shells); n > 0 {
		return e.Shells[n-1]
	}
	switch g := e.Group; {
	case g >= 1 && g <= 2:
		return g
	case g >= 13 && g <= 18:
		return g - 10
	case g >= 3 && g <= 12:
		// Approximation: most transition metals have two s electrons outside the d shell.
		return 2
	default:
		return 0
	}
}
