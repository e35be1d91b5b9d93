// Package sink writes table layouts to output formats.
//
// # Formats
//
//   - [RenderSVG]: a standalone SVG of every card, with optional hover tooltips
//   - [RenderHTML]: the interactive page with theme toggle and category filters
//   - [RenderJSON], [RenderYAML]: the placed cards as a data document
//   - [RenderPNG], [RenderPDF]: the SVG converted through rsvg-convert
//
// The vector and document sinks are pure and safe to call concurrently. PNG
// and PDF need librsvg: brew install librsvg (macOS), apt install librsvg2-bin
// (Linux). For raster output without external tools, see the graphviz package.
//
// # Example
//
//	l := layout.Build(table.Place(groups))
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Glow{}), sink.WithTheme(styles.Light), sink.WithPopups())
package sink
