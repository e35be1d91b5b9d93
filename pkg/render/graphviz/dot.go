package graphviz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	gographviz "github.com/goccy/go-graphviz"

	"github.com/matzehuels/periodic/pkg/errors"
	"github.com/matzehuels/periodic/pkg/render/layout"
	"github.com/matzehuels/periodic/pkg/render/styles"
)

// pointsPerInch converts layout units (treated as points) to node sizes.
const pointsPerInch = 72.0

// ToDOT converts a layout to a pinned neato graph. Positions are card centers
// with the y axis flipped, since Graphviz grows upwards.
func ToDOT(l layout.Layout, t styles.Theme) string {
	var buf bytes.Buffer
	buf.WriteString("graph periodic {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  splines=false;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", t.Background)
	fmt.Fprintf(&buf, "  bb=\"0,0,%.2f,%.2f\";\n", l.FrameWidth, l.FrameHeight)
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", fixedsize=true, width=%.4f, height=%.4f, fontname=\"Helvetica\", fontcolor=%q, color=%q, penwidth=0];\n",
		l.CellSize/pointsPerInch, l.CellSize/pointsPerInch, t.Text, t.Background)

	// Invisible corner anchors keep the drawing at the full frame size.
	fmt.Fprintf(&buf, "  \"_tl\" [pos=\"0,%.2f!\", style=invis, width=0.01, height=0.01];\n", l.FrameHeight)
	fmt.Fprintf(&buf, "  \"_br\" [pos=\"%.2f,0!\", style=invis, width=0.01, height=0.01];\n", l.FrameWidth)

	for _, c := range l.Cells {
		e := c.Element
		label := fmt.Sprintf("%d\n%s\n%s\n%s", e.AtomicNumber, e.Symbol, e.Name, e.FormattedMass())
		fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%.2f,%.2f!\", fillcolor=%q, fontsize=%.1f, tooltip=%q];\n",
			strings.ToLower(e.Symbol), label, c.CenterX(), l.FrameHeight-c.CenterY(), c.Color,
			c.W*0.16, e.String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, gographviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, gographviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format gographviz.Format) ([]byte, error) {
	gv, err := gographviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(gographviz.NEATO)

	g, err := gographviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return buf.Bytes(), nil
}
