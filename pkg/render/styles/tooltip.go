package styles

import (
	"bytes"
	"fmt"
	"strconv"
)

const (
	tooltipWidth   = 280.0
	tooltipPad     = 16.0
	tooltipHeader  = 72.0
	tooltipRowStep = 36.0
	tooltipRowH    = 30.0
)

// Row is one labelled value in a tooltip or detail card.
type Row struct {
	Label string
	Value string
}

// TooltipRows returns the detail rows shown for a card, in display order.
func TooltipRows(c Card) []Row {
	return []Row{
		{"Atomic Mass", fmt.Sprintf("%.2f u", c.Mass)},
		{"Category", c.Category},
		{"Block", c.Block},
		{"Group", groupLabel(c.Group)},
		{"Period", strconv.Itoa(c.Period)},
		{"Valence Electrons", strconv.Itoa(c.Valence)},
	}
}

// TooltipHeight returns the height of a rendered tooltip.
func TooltipHeight() float64 {
	return tooltipHeader + 6*tooltipRowStep + tooltipPad/2
}

// renderTooltip writes a hidden tooltip drawn at the origin. The sink script
// translates it next to the hovered card.
func renderTooltip(buf *bytes.Buffer, c Card, t Theme) {
	fmt.Fprintf(buf, `  <g class="popup" data-for="%s" visibility="hidden">`+"\n", EscapeXML(c.ID))
	fmt.Fprintf(buf, `    <rect width="%.0f" height="%.0f" rx="12" ry="12" fill="%s" stroke="%s" stroke-opacity="0.12"/>`+"\n",
		tooltipWidth, TooltipHeight(), t.Card, t.Text)

	fmt.Fprintf(buf, `    <text x="%.0f" y="46" font-size="32" font-weight="bold" fill="%s">%s</text>`+"\n",
		tooltipPad, t.Text, EscapeXML(c.Symbol))
	fmt.Fprintf(buf, `    <text x="84" y="32" font-size="19" font-weight="600" fill="%s">%s</text>`+"\n",
		t.Text, EscapeXML(c.Name))
	fmt.Fprintf(buf, `    <text x="84" y="52" font-size="14" fill="%s" fill-opacity="0.5">Atomic Number: %d</text>`+"\n",
		t.Text, c.Number)
	fmt.Fprintf(buf, `    <line x1="%.0f" y1="64" x2="%.0f" y2="64" stroke="%s" stroke-opacity="0.12"/>`+"\n",
		tooltipPad, tooltipWidth-tooltipPad, t.Text)

	for i, row := range TooltipRows(c) {
		y := tooltipHeader + float64(i)*tooltipRowStep
		fmt.Fprintf(buf, `    <rect class="popup-row" x="%.0f" y="%.0f" width="%.0f" height="%.0f" rx="6" ry="6" fill="%s"/>`+"\n",
			tooltipPad, y, tooltipWidth-2*tooltipPad, tooltipRowH, t.Background)
		fmt.Fprintf(buf, `    <text x="%.0f" y="%.0f" font-size="14" fill="%s" fill-opacity="0.5">%s</text>`+"\n",
			tooltipPad+8, y+20, t.Text, EscapeXML(row.Label))
		fmt.Fprintf(buf, `    <text x="%.0f" y="%.0f" font-size="14" font-weight="600" text-anchor="end" fill="%s">%s</text>`+"\n",
			tooltipWidth-tooltipPad-8, y+20, t.Text, EscapeXML(row.Value))
	}
	buf.WriteString("  </g>\n")
}
