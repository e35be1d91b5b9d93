package styles

import (
	"bytes"
	"fmt"
)

const glowFilterID = "card-glow"

// Glow draws orbit cards surrounded by a blur of their own category color.
type Glow struct{ Orbit }

func (Glow) Name() string { return "glow" }

func (Glow) RenderDefs(buf *bytes.Buffer, _ Theme) {
	buf.WriteString("  <defs>\n")
	fmt.Fprintf(buf, `    <filter id="%s" x="-30%%" y="-30%%" width="160%%" height="160%%">`+"\n", glowFilterID)
	buf.WriteString(`      <feGaussianBlur in="SourceGraphic" stdDeviation="4" result="blur"/>` + "\n")
	buf.WriteString("      <feMerge><feMergeNode in=\"blur\"/><feMergeNode in=\"SourceGraphic\"/></feMerge>\n")
	buf.WriteString("    </filter>\n")
	buf.WriteString("  </defs>\n")
}

func (Glow) RenderCard(buf *bytes.Buffer, c Card, t Theme) {
	openCard(buf, c, t, glowFilterID)
	renderOrbit(buf, c, t)
	buf.WriteString("  </g>\n")
}
