package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/periodic/pkg/render/layout"
	"github.com/matzehuels/periodic/pkg/render/styles"
)

const cardInteractionCSS = `
    .card { transition: transform 0.3s cubic-bezier(0.4, 0, 0.2, 1); transform-origin: center; transform-box: fill-box; cursor: pointer; }
    .card:hover { transform: scale(1.05); }
    .card.hidden { display: none; }`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      styles.Style
	theme      styles.Theme
	popups     bool
	images     bool
	background bool
}

func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }
func WithTheme(t styles.Theme) SVGOption { return func(r *svgRenderer) { r.theme = t } }
func WithPopups() SVGOption              { return func(r *svgRenderer) { r.popups = true } }

// WithImages adds each element's image to its card. Images that fail to load
// hide themselves.
func WithImages() SVGOption { return func(r *svgRenderer) { r.images = true } }

// WithBackground fills the frame with the theme background. Standalone files
// want it, the HTML page does not.
func WithBackground() SVGOption { return func(r *svgRenderer) { r.background = true } }

// RenderSVG draws every cell of the layout. Cards are written in layout order,
// and tooltips after all cards so they stack above them.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	cards := buildCards(l, r.images)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="Helvetica,Arial,sans-serif">`+"\n",
		l.FrameWidth, l.FrameHeight, l.FrameWidth, l.FrameHeight)

	r.style.RenderDefs(&buf, r.theme)
	if r.background {
		fmt.Fprintf(&buf, `  <rect class="background" width="100%%" height="100%%" fill="%s"/>`+"\n", r.theme.Background)
	}
	for _, c := range cards {
		r.style.RenderCard(&buf, c, r.theme)
	}
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", cardInteractionCSS)

	if r.popups {
		for _, c := range cards {
			r.style.RenderTooltip(&buf, c, r.theme)
		}
		renderPopupScript(&buf)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Simple{}, theme: styles.DefaultTheme}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func buildCards(l layout.Layout, withImages bool) []styles.Card {
	cards := make([]styles.Card, 0, len(l.Cells))
	for _, c := range l.Cells {
		e := c.Element
		card := styles.Card{
			ID:       strings.ToLower(e.Symbol),
			Number:   e.AtomicNumber,
			Symbol:   e.Symbol,
			Name:     e.Name,
			Mass:     e.AtomicMass,
			Category: string(e.Category),
			Block:    string(e.Block),
			Group:    e.Group,
			Period:   e.Period,
			Valence:  c.Valence,
			Color:    c.Color,
			X:        c.X, Y: c.Y,
			W: c.W, H: c.H,
			CX: c.CenterX(), CY: c.CenterY(),
		}
		if withImages {
			card.Image = e.ImagePath()
		}
		cards = append(cards, card)
	}
	return cards
}
