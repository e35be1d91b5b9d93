// Package pipeline provides the classify → layout → render pipeline for Periodic.
//
// The CLI and the HTTP server both run tables through this package, so option
// defaults, validation and artifact caching behave the same everywhere.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Classify: filter the catalog and partition it into the main table and the
//     lanthanide and actinide strips
//  2. Layout: place every element on the grid and compute card rectangles
//  3. Render: generate output in various formats (SVG, HTML, JSON, YAML, PNG, PDF, DOT)
//
// Classification and layout are cheap and never cached. Rendered artifacts are
// cached per catalog and option set.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Render(ctx, pipeline.Options{
//	    Category: "noble gas",
//	    Formats:  []string{"svg", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/periodic/pkg/cache"
	"github.com/matzehuels/periodic/pkg/element"
	"github.com/matzehuels/periodic/pkg/errors"
	"github.com/matzehuels/periodic/pkg/render/layout"
	"github.com/matzehuels/periodic/pkg/render/styles"
	"github.com/matzehuels/periodic/pkg/table"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultStyle is the default card style.
	DefaultStyle = styles.DefaultStyle

	// DefaultCellSize is the default card edge length in pixels.
	DefaultCellSize = layout.DefaultCellSize
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatHTML = "html"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
)

// Engine constants select how raster and vector images are drawn.
const (
	// EngineNative writes SVG directly and converts it with rsvg-convert.
	EngineNative = "native"

	// EngineGraphviz draws SVG and PNG through the embedded Graphviz library.
	// It needs no external binaries but drops card styling.
	EngineGraphviz = "graphviz"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatHTML: true,
	FormatJSON: true,
	FormatYAML: true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatDOT:  true,
}

// FormatNames returns the supported formats in display order.
func FormatNames() []string {
	return []string{FormatSVG, FormatHTML, FormatJSON, FormatYAML, FormatPNG, FormatPDF, FormatDOT}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Classify options
	Category string `json:"category,omitempty"` // empty keeps every element

	// Layout options
	CellSize float64 `json:"cell_size,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Theme   string   `json:"theme,omitempty"`
	Popups  bool     `json:"popups,omitempty"`
	Engine  string   `json:"engine,omitempty"`
	Refresh bool     `json:"refresh,omitempty"` // skip cache reads

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// Resolved by ValidateAndSetDefaults.
	filter    table.Filter
	style     styles.Style
	theme     styles.Theme
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Groups is the classification of the filtered catalog.
	Groups table.Groups

	// Layout contains the card rectangles.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ElementCount int
	ClassifyTime time.Duration
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool            // Whether all artifacts came from cache
	Hits      map[string]bool // Per-format hit status
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEngine checks that an engine name is valid.
func ValidateEngine(engine string) error {
	switch engine {
	case EngineNative, EngineGraphviz:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput, "invalid engine: %q (must be one of: native, graphviz)", engine)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	o.filter = table.NoFilter()
	if o.Category != "" {
		c, err := element.ParseCategory(o.Category)
		if err != nil {
			return err
		}
		o.Category = string(c)
		o.filter = table.ByCategory(c)
	}

	if o.CellSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cell_size must be positive, got %g", o.CellSize)
	}
	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	formats := make([]string, len(o.Formats))
	for i, f := range o.Formats {
		formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	o.Formats = formats
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Style == "" {
		o.Style = DefaultStyle
	}
	style, err := styles.Parse(o.Style)
	if err != nil {
		return err
	}
	o.style = style
	o.Style = style.Name()

	if o.Theme == "" {
		o.Theme = styles.DefaultTheme.Name
	}
	theme, err := styles.ParseTheme(o.Theme)
	if err != nil {
		return err
	}
	o.theme = theme
	o.Theme = theme.Name

	if o.Engine == "" {
		o.Engine = EngineNative
	}
	if err := ValidateEngine(o.Engine); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Filter returns the classification filter. Valid after ValidateAndSetDefaults.
func (o *Options) Filter() table.Filter { return o.filter }

// ResolvedStyle returns the card style. Valid after ValidateAndSetDefaults.
func (o *Options) ResolvedStyle() styles.Style { return o.style }

// ResolvedTheme returns the color theme. Valid after ValidateAndSetDefaults.
func (o *Options) ResolvedTheme() styles.Theme { return o.theme }

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Category: o.Category,
		Style:    o.Style,
		Theme:    o.Theme,
		CellSize: o.CellSize,
		Popups:   o.Popups,
		Engine:   o.Engine,
	}
}
