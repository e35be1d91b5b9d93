// Package styles defines the visual styles and color themes for table rendering.
//
// # Overview
//
// A [Style] decides how a single element card is drawn, together with any SVG
// definitions it needs and the hover tooltip shown for the card. Three styles
// are provided:
//
//   - [Simple]: a rounded, category-colored card with number, symbol, name and mass
//   - [Orbit]: Simple plus an animated orbit ring with one electron per valence electron
//   - [Glow]: Orbit plus a soft glow in the category color
//
// Styles are resolved by name with [Parse]:
//
//	style, err := styles.Parse("orbit")
//	svg := sink.RenderSVG(l, sink.WithStyle(style))
//
// # Themes
//
// A [Theme] supplies the page background, text, tooltip card and overlay colors.
// [Light] and [Dark] are built in, and [Dark] is the default. Styles take the
// theme as an argument so the same style renders in either.
//
// # Cards
//
// Styles receive [Card] values holding everything needed to draw one element:
// identity, physical properties, the category color and the card rectangle.
// Building cards from a layout is the sink's job, so this package does not
// depend on the layout engine.
package styles
