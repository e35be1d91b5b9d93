package table

import (
	"fmt"

	"github.com/matzehuels/periodic/pkg/element"
)

// Kind identifies which of the three display groups an element belongs to.
type Kind int

const (
	// KindMain is the 18×7 main table.
	KindMain Kind = iota
	// KindLanthanide is the lanthanide strip below the main table.
	KindLanthanide
	// KindActinide is the actinide strip below the lanthanides.
	KindActinide
)

func (k Kind) String() string {
	switch k {
	case KindMain:
		return "main"
	case KindLanthanide:
		return "lanthanide"
	case KindActinide:
		return "actinide"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name for JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Filter selects the elements to classify. The zero value keeps every element.
type Filter struct {
	category element.Category
	set      bool
}

// NoFilter keeps every element.
func NoFilter() Filter { return Filter{} }

// ByCategory keeps only elements whose category equals c exactly.
func ByCategory(c element.Category) Filter {
	return Filter{category: c, set: true}
}

// Category returns the selected category and whether a category is selected.
func (f Filter) Category() (element.Category, bool) {
	return f.category, f.set
}

// Match reports whether e passes the filter.
func (f Filter) Match(e element.Element) bool {
	return !f.set || e.Category == f.category
}

func (f Filter) String() string {
	if !f.set {
		return "all"
	}
	return string(f.category)
}

// maxPeriod bounds the main table. Validated catalogs never exceed it.
const maxPeriod = 7

// Groups is the result of [Classify]: three disjoint, ordered element groups.
type Groups struct {
	Main        []element.Element `json:"main" yaml:"main"`
	Lanthanides []element.Element `json:"lanthanides" yaml:"lanthanides"`
	Actinides   []element.Element `json:"actinides" yaml:"actinides"`
}

// Classify filters elements and partitions them into the main table, the
// lanthanides and the actinides. Input order is preserved within each group.
//
// Lanthanides and actinides are selected by category. Main holds every remaining
// element whose period is at most 7. Classify does not modify elements.
func Classify(elements []element.Element, f Filter) Groups {
	var g Groups
	for _, e := range elements {
		if !f.Match(e) {
			continue
		}
		switch e.Category {
		case element.Lanthanide:
			g.Lanthanides = append(g.Lanthanides, e)
		case element.Actinide:
			g.Actinides = append(g.Actinides, e)
		default:
			if e.Period <= maxPeriod {
				g.Main = append(g.Main, e)
			}
		}
	}
	return g
}

// Len returns the total number of classified elements.
func (g Groups) Len() int {
	return len(g.Main) + len(g.Lanthanides) + len(g.Actinides)
}

// Each calls fn for every element, main table first, then lanthanides, then actinides.
func (g Groups) Each(fn func(Kind, element.Element)) {
	for _, e := range g.Main {
		fn(KindMain, e)
	}
	for _, e := range g.Lanthanides {
		fn(KindLanthanide, e)
	}
	for _, e := range g.Actinides {
		fn(KindActinide, e)
	}
}

// KindOf returns the display group of e, independent of any filter.
func KindOf(e element.Element) Kind {
	switch e.Category {
	case element.Lanthanide:
		return KindLanthanide
	case element.Actinide:
		return KindActinide
	default:
		return KindMain
	}
}
