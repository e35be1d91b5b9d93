package styles

import (
	"bytes"
	"fmt"
	"strconv"
)

// Simple draws flat, category-colored cards.
type Simple struct{}

func (Simple) Name() string { return "simple" }

func (Simple) RenderDefs(*bytes.Buffer, Theme) {}

func (Simple) RenderCard(buf *bytes.Buffer, c Card, t Theme) {
	openCard(buf, c, t, "")
	buf.WriteString("  </g>\n")
}

func (Simple) RenderTooltip(buf *bytes.Buffer, c Card, t Theme) {
	renderTooltip(buf, c, t)
}

// openCard writes the card group, background and labels, leaving the group
// open so decorations can be appended.
func openCard(buf *bytes.Buffer, c Card, t Theme, filter string) {
	id := EscapeXML(c.ID)
	fmt.Fprintf(buf, `  <g class="card" id="card-%s" data-symbol="%s" data-category="%s">`+"\n",
		id, id, EscapeXML(c.Category))

	r := min(8, c.W*0.12)
	fmt.Fprintf(buf, `    <rect class="card-bg" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="%.2f" ry="%.2f" fill="%s"`,
		c.X, c.Y, c.W, c.H, r, r, EscapeXML(c.Color))
	if filter != "" {
		fmt.Fprintf(buf, ` filter="url(#%s)"`, filter)
	}
	buf.WriteString("/>\n")

	pad := c.W * 0.06
	numSize := c.W * 0.14
	fmt.Fprintf(buf, `    <text class="card-number" x="%.2f" y="%.2f" font-size="%.1f" fill="%s" fill-opacity="0.8">%d</text>`+"\n",
		c.X+pad, c.Y+pad+numSize, numSize, t.Text, c.Number)

	symSize := FontSize(c.W*0.8, c.W*0.3, len(c.Symbol))
	fmt.Fprintf(buf, `    <text class="card-symbol" x="%.2f" y="%.2f" text-anchor="middle" font-size="%.1f" font-weight="bold" fill="%s">%s</text>`+"\n",
		c.CX, c.CY+symSize*0.35, symSize, t.Text, EscapeXML(c.Symbol))

	if c.Image != "" {
		img := c.W * 0.3
		fmt.Fprintf(buf, `    <image class="card-image" href="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" onerror="this.style.display='none'"/>`+"\n",
			EscapeXML(c.Image), c.X+c.W-pad-img, c.Y+pad, img, img)
	}

	nameSize := FontSize(c.W-2*pad, c.W*0.13, len(c.Name))
	name := TruncateLabel(c.Name, c.W-2*pad, nameSize)
	fmt.Fprintf(buf, `    <text class="card-name" x="%.2f" y="%.2f" text-anchor="middle" font-size="%.1f" fill="%s">%s</text>`+"\n",
		c.CX, c.Y+c.H*0.8, nameSize, t.Text, EscapeXML(name))

	massSize := c.W * 0.11
	fmt.Fprintf(buf, `    <text class="card-mass" x="%.2f" y="%.2f" text-anchor="middle" font-size="%.1f" fill="%s" fill-opacity="0.8">%s</text>`+"\n",
		c.CX, c.Y+c.H-pad, massSize, t.Text, strconv.FormatFloat(c.Mass, 'f', 2, 64))
}
