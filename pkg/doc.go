// Package pkg provides the core libraries for Periodic, a periodic table of the
// elements that renders to the terminal, to image and data files, and to an
// interactive web page.
//
// # Overview
//
// The pkg directory is organized into four areas:
//
//  1. Domain: [element] (the catalog) and [table] (classification, grid
//     positions and valence electrons)
//  2. Rendering: [render/layout], [render/styles], [render/sink] and
//     [render/graphviz]
//  3. Orchestration: [pipeline] (classify → layout → render with caching) and
//     [server] (HTTP)
//  4. Infrastructure: [cache], [config], [observability], [errors] and
//     [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	element catalog
//	       ↓
//	[table] Classify (category filter, main / lanthanides / actinides)
//	       ↓
//	[table] Place (grid position, valence, color)
//	       ↓
//	[render/layout] Build (card rectangles)
//	       ↓
//	SVG / HTML / JSON / YAML / PNG / PDF / DOT
//
// # Quick Start
//
//	g := table.Classify(element.Default().All(), table.ByCategory(element.NobleGas))
//	l := layout.Build(table.Place(g))
//	svg := sink.RenderSVG(l, sink.WithStyle(styles.Orbit{}), sink.WithTheme(styles.Dark))
//
// Most callers go through [pipeline], which validates options, applies
// defaults and caches rendered artifacts:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	res, err := runner.Render(ctx, pipeline.Options{Formats: []string{"svg", "json"}})
//
// [element]: https://pkg.go.dev/github.com/matzehuels/periodic/pkg/element
// [table]: https://pkg.go.dev/github.com/matzehuels/periodic/pkg/table
// [render/layout]: https://pkg.go.dev/github.com/matzehuels/periodic/pkg/render/layout
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/periodic/pkg/render/styles
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/periodic/pkg/render/sink
// [render/graphviz]: https://pkg.go.dev/github.com/matzehuels/periodic/pkg/render/graphviz
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/periodic/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/matzehuels/periodic/pkg/server
// [cache]: https://pkg.go.dev/github.com/matzehuels/periodic/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/periodic/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/periodic/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/periodic/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/periodic/pkg/buildinfo
package pkg
