// Package table is the periodic-table layout and classification engine.
//
// # Overview
//
// The engine turns a catalog and an optional category filter into the three
// groups a periodic table is drawn from, and computes everything needed per card:
//
//  1. Classification ([Classify]): filter by category, then partition into the
//     main table, the lanthanide strip and the actinide strip.
//  2. Placement ([GridPosition]): the (column, row) of an element inside its group.
//  3. Valence ([ValenceElectrons]): the decorative electron count for orbit rendering.
//
// Every function is pure and deterministic. None of them mutate their input, and
// all of them are safe for concurrent use.
//
// # Usage
//
//	groups := table.Classify(element.Default().All(), table.ByCategory(element.NobleGas))
//	for _, p := range table.Place(groups) {
//	    fmt.Println(p.Element.Symbol, p.Position, p.Valence)
//	}
//
// # Grid coordinates
//
// Main-table elements sit at (group, period). Lanthanides and actinides are drawn
// in two separate one-row strips below the main table, at column
// atomicNumber-57+3 and atomicNumber-89+3 respectively, which places the 15
// elements of each series under columns 3 to 17.
package table
