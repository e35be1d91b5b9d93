package pipeline

import (
	"context"

	"github.com/matzehuels/periodic/pkg/element"
	"github.com/matzehuels/periodic/pkg/render/graphviz"
	"github.com/matzehuels/periodic/pkg/render/layout"
	"github.com/matzehuels/periodic/pkg/render/sink"
	"github.com/matzehuels/periodic/pkg/table"
)

// Classify filters the catalog and partitions it into display groups.
func Classify(cat *element.Catalog, opts Options) (table.Groups, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return table.Groups{}, err
	}
	return table.Classify(cat.All(), opts.Filter()), nil
}

// GenerateLayout places the classified elements and computes card rectangles.
func GenerateLayout(g table.Groups, opts Options) (layout.Layout, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return layout.Layout{}, err
	}
	return layout.Build(table.Place(g), layout.WithCellSize(opts.CellSize)), nil
}

// RenderFormat generates a single artifact from a layout.
func RenderFormat(ctx context.Context, l layout.Layout, format string, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	svgOpts := []sink.SVGOption{sink.WithStyle(opts.style), sink.WithTheme(opts.theme)}
	if opts.Popups {
		svgOpts = append(svgOpts, sink.WithPopups())
	}
	graphvizEngine := opts.Engine == EngineGraphviz

	switch format {
	case FormatSVG:
		if graphvizEngine {
			return graphviz.RenderSVG(ctx, graphviz.ToDOT(l, opts.theme))
		}
		return sink.RenderSVG(l, append(svgOpts, sink.WithBackground())...), nil
	case FormatHTML:
		return sink.RenderHTML(sink.Page{
			Layout:   l,
			Style:    opts.style,
			Theme:    opts.theme,
			Category: element.Category(opts.Category),
		})
	case FormatJSON:
		return sink.RenderJSON(l, documentOptions(opts)...)
	case FormatYAML:
		return sink.RenderYAML(l, documentOptions(opts)...)
	case FormatPNG:
		if graphvizEngine {
			return graphviz.RenderPNG(ctx, graphviz.ToDOT(l, opts.theme))
		}
		return sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...))
	case FormatPDF:
		return sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
	case FormatDOT:
		return []byte(graphviz.ToDOT(l, opts.theme)), nil
	}
	return nil, ValidateFormat(format)
}

// PageLayout lays out the whole catalog for the HTML page. The page filters
// in the browser, so Options.Category only selects the initially active button.
func PageLayout(cat *element.Catalog, opts Options) (layout.Layout, error) {
	return GenerateLayout(table.Classify(cat.All(), table.NoFilter()), opts)
}

func documentOptions(opts Options) []sink.DocumentOption {
	return []sink.DocumentOption{
		sink.WithFilter(opts.Filter()),
		sink.WithDocumentStyle(opts.Style),
		sink.WithDocumentTheme(opts.Theme),
	}
}
