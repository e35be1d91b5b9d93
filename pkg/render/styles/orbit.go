package styles

import (
	"bytes"
	"fmt"
	"math"
)

const orbitPeriod = 3.0 // seconds per revolution

// Orbit draws simple cards with an animated orbit ring carrying one electron
// per valence electron.
type Orbit struct{ Simple }

func (Orbit) Name() string { return "orbit" }

func (Orbit) RenderCard(buf *bytes.Buffer, c Card, t Theme) {
	openCard(buf, c, t, "")
	renderOrbit(buf, c, t)
	buf.WriteString("  </g>\n")
}

// Electron is the start angle in degrees and animation delay in seconds of one
// orbiting electron.
type Electron struct {
	Angle float64
	Delay float64
}

// Electrons spreads n electrons evenly around the ring. Electron i starts at
// 360/n·i degrees and its animation is offset by −3·i/n seconds, so a running
// animation keeps the same spacing. n <= 0 yields no electrons.
func Electrons(n int) []Electron {
	if n <= 0 {
		return nil
	}
	out := make([]Electron, n)
	for i := range out {
		f := float64(i) / float64(n)
		// 0 - x keeps the first delay at +0.
		out[i] = Electron{Angle: 360 * f, Delay: 0 - orbitPeriod*f}
	}
	return out
}

// renderOrbit draws the ring centered on the card. Each electron sits at angle
// 0 rotated into place, and the animation replaces that rotation while running.
func renderOrbit(buf *bytes.Buffer, c Card, t Theme) {
	r := c.W * 0.3
	buf.WriteString(`    <g class="orbit" pointer-events="none">` + "\n")
	fmt.Fprintf(buf, `      <circle class="orbit-ring" cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-opacity="0.19" stroke-dasharray="2,2"/>`+"\n",
		c.CX, c.CY, r, t.Text)
	for _, e := range Electrons(c.Valence) {
		fmt.Fprintf(buf, `      <circle class="electron" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="0.7" transform="rotate(%.2f %.2f %.2f)">`,
			c.CX+r, c.CY, math.Max(1.5, c.W*0.03), t.Text, e.Angle, c.CX, c.CY)
		fmt.Fprintf(buf, `<animateTransform attributeName="transform" type="rotate" from="0 %.2f %.2f" to="360 %.2f %.2f" dur="%.0fs" begin="%.2fs" repeatCount="indefinite"/></circle>`+"\n",
			c.CX, c.CY, c.CX, c.CY, orbitPeriod, e.Delay)
	}
	buf.WriteString("    </g>\n")
}
