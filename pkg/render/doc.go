// Package render provides the visual output of the periodic table.
//
// # Overview
//
// Rendering turns the placements computed by package table into pictures and
// documents. It is split into:
//
//   - [layout]: pixel geometry for each card
//   - [styles]: card styles (simple, orbit, glow) and light/dark themes
//   - [sink]: output formats (SVG, HTML, JSON, YAML, PNG, PDF)
//   - [graphviz]: raster and vector output through embedded Graphviz
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Orbit{}))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [layout]: github.com/matzehuels/periodic/pkg/render/layout
// [styles]: github.com/matzehuels/periodic/pkg/render/styles
// [sink]: github.com/matzehuels/periodic/pkg/render/sink
// [graphviz]: github.com/matzehuels/periodic/pkg/render/graphviz
package render
