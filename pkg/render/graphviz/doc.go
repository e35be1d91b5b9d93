// Package graphviz renders table layouts through an embedded Graphviz.
//
// [ToDOT] emits a neato graph in which every card is a fixed-size box pinned
// at its layout position, so Graphviz only draws and never moves anything.
// [RenderSVG] and [RenderPNG] run the WebAssembly build of Graphviz bundled
// with go-graphviz, so no external binaries are needed:
//
//	dot := graphviz.ToDOT(l, styles.Dark)
//	png, err := graphviz.RenderPNG(ctx, dot)
package graphviz
