package sink

import (
	"github.com/matzehuels/periodic/pkg/render"
	"github.com/matzehuels/periodic/pkg/render/layout"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG renders the layout as PNG via SVG conversion. Tooltips are never
// included, and the theme background is always drawn.
func RenderPNG(l layout.Layout, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	svg := RenderSVG(l, staticOptions(r.svgOpts)...)
	return render.ToPNG(svg, r.scale)
}

// staticOptions strips interactive features that converters cannot show.
func staticOptions(opts []SVGOption) []SVGOption {
	out := append([]SVGOption{}, opts...)
	return append(out, func(r *svgRenderer) {
		r.popups = false
		r.images = false
		r.background = true
	})
}
