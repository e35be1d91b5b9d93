// Package element holds the periodic-table catalog: element records, the closed
// category enumeration and the category color map.
//
// # Catalog
//
// A [Catalog] is an immutable, validated sequence of [Element] records ordered by
// atomic number. The built-in reference table is returned by [Default]; it is
// constructed and validated exactly once and shared read-only afterwards:
//
//	cat := element.Default()
//	for _, e := range cat.All() {
//	    fmt.Println(e.Symbol, e.Name)
//	}
//
// The reference table is intentionally partial: it covers atomic numbers 1-71 and
// 89-103 and omits the period 6 and 7 elements between them. Consumers must not
// assume contiguous coverage.
//
// Custom catalogs go through [New], which rejects malformed records with a coded
// error from [github.com/matzehuels/periodic/pkg/errors].
//
// # Categories
//
// [Category] is a closed string enumeration. [Categories] returns the display order
// used by filter controls, and [ColorFor] maps every category to a color token,
// falling back to the "unknown" color for values outside the map.
package element
