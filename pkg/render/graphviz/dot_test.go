package graphviz

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/periodic/pkg/element"
	"github.com/matzehuels/periodic/pkg/render/layout"
	"github.com/matzehuels/periodic/pkg/render/styles"
	"github.com/matzehuels/periodic/pkg/table"
)

func testLayout(f table.Filter) layout.Layout {
	return layout.Build(table.Place(table.Classify(element.Default().All(), f)))
}

func TestToDOT(t *testing.T) {
	l := testLayout(table.NoFilter())
	dot := ToDOT(l, styles.Light)

	for _, want := range []string{
		"graph periodic {",
		"layout=neato;",
		`bgcolor="#f5f7fa";`,
		`fontcolor="#333"`,
		// H center (52,52) in a 676-high frame.
		`"h" [label="1\nH\nHydrogen\n1.01", pos="52.00,624.00!"`,
		`"fe" [label=`,
		`fillcolor="` + element.ColorFor(element.TransitionMetal) + `"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q", want)
		}
	}
	if got := strings.Count(dot, "!\", fillcolor="); got != len(l.Cells) {
		t.Errorf("ToDOT() pinned %d cards, want %d", got, len(l.Cells))
	}
}

func TestToDOTFiltered(t *testing.T) {
	dot := ToDOT(testLayout(table.ByCategory(element.NobleGas)), styles.Dark)
	if strings.Contains(dot, `"h" [`) {
		t.Error("filtered DOT should not contain hydrogen")
	}
	if !strings.Contains(dot, `"xe" [`) {
		t.Error("filtered DOT should contain xenon")
	}
	if !strings.Contains(dot, `"_br" [pos="1260.00,0!"`) {
		t.Error("frame anchors should keep the full size")
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT(testLayout(table.ByCategory(element.Nonmetal)), styles.Dark)
	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderPNG(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping graphviz raster render in short mode")
	}
	dot := ToDOT(testLayout(table.ByCategory(element.Metalloid)), styles.Light)
	png, err := RenderPNG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("RenderPNG() output is not a PNG")
	}
}

func TestRenderSVGInvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "graph { invalid syntax {{{{"); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
