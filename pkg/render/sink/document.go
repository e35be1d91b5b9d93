package sink

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/periodic/pkg/errors"
	"github.com/matzehuels/periodic/pkg/render/layout"
	"github.com/matzehuels/periodic/pkg/table"
)

// DocumentOption configures [RenderJSON] and [RenderYAML].
type DocumentOption func(*Document)

// WithFilter records the category filter the layout was built with.
func WithFilter(f table.Filter) DocumentOption {
	return func(d *Document) { d.Filter = f.String() }
}

// WithDocumentStyle records the style name for round-trip rendering.
func WithDocumentStyle(name string) DocumentOption {
	return func(d *Document) { d.Style = name }
}

// WithDocumentTheme records the theme name for round-trip rendering.
func WithDocumentTheme(name string) DocumentOption {
	return func(d *Document) { d.Theme = name }
}

// Document is the data export of a laid-out table.
type Document struct {
	Filter string        `json:"filter" yaml:"filter"`
	Style  string        `json:"style,omitempty" yaml:"style,omitempty"`
	Theme  string        `json:"theme,omitempty" yaml:"theme,omitempty"`
	Width  float64       `json:"width" yaml:"width"`
	Height float64       `json:"height" yaml:"height"`
	Counts Counts        `json:"counts" yaml:"counts"`
	Cells  []layout.Cell `json:"cells" yaml:"cells"`
}

// Counts is the number of cells in each display group.
type Counts struct {
	Main        int `json:"main" yaml:"main"`
	Lanthanides int `json:"lanthanides" yaml:"lanthanides"`
	Actinides   int `json:"actinides" yaml:"actinides"`
}

// NewDocument assembles the export document for l.
func NewDocument(l layout.Layout, opts ...DocumentOption) Document {
	d := Document{
		Filter: table.NoFilter().String(),
		Width:  l.FrameWidth,
		Height: l.FrameHeight,
		Cells:  l.Cells,
	}
	if d.Cells == nil {
		d.Cells = []layout.Cell{}
	}
	for _, c := range l.Cells {
		switch c.Kind {
		case table.KindLanthanide:
			d.Counts.Lanthanides++
		case table.KindActinide:
			d.Counts.Actinides++
		default:
			d.Counts.Main++
		}
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// RenderJSON exports the layout as a pretty-printed JSON document. It does not
// modify l and is safe to call concurrently.
func RenderJSON(l layout.Layout, opts ...DocumentOption) ([]byte, error) {
	data, err := json.MarshalIndent(NewDocument(l, opts...), "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return append(data, '\n'), nil
}

// RenderYAML exports the same document as [RenderJSON] in YAML.
func RenderYAML(l layout.Layout, opts ...DocumentOption) ([]byte, error) {
	data, err := yaml.Marshal(NewDocument(l, opts...))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
	}
	return data, nil
}
