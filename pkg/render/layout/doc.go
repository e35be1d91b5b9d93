// Package layout converts table placements into pixel rectangles.
//
// # Geometry
//
// The main table is an 18×7 grid of square cells. The lanthanide strip is drawn
// below it after a strip gap, and the actinide strip directly below the
// lanthanides. Strip column c lines up with main-table column c, so both strips
// start under group 3:
//
//	l := layout.Build(table.Place(groups), layout.WithCellSize(72))
//	for _, c := range l.Cells {
//	    fmt.Println(c.Element.Symbol, c.X, c.Y)
//	}
//
// The frame always covers the full table, so filtered layouts keep the same
// size and every card stays in its usual spot.
//
// All coordinates are SVG user units with the origin in the top-left corner and
// y growing downwards.
package layout
