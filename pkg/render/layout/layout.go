package layout

import (
	"strings"

	"github.com/matzehuels/periodic/pkg/table"
)

const (
	mainColumns = 18
	mainRows    = 7
)

// Default geometry in pixels.
const (
	// DefaultCellSize is the edge length of a card.
	DefaultCellSize = 64.0
	// DefaultGap separates neighboring cards.
	DefaultGap = 4.0
	// DefaultMargin pads the frame on every side.
	DefaultMargin = 20.0
)

// Cell is a placed element together with its rectangle.
type Cell struct {
	table.Placement `yaml:",inline"`
	Block           `yaml:",inline"`
}

// Layout is the computed geometry of a table.
type Layout struct {
	FrameWidth  float64 `json:"width" yaml:"width"`
	FrameHeight float64 `json:"height" yaml:"height"`
	CellSize    float64 `json:"cell_size" yaml:"cell_size"`
	Gap         float64 `json:"gap" yaml:"gap"`
	Margin      float64 `json:"margin" yaml:"margin"`
	Cells       []Cell  `json:"cells" yaml:"cells"`
}

// Cell returns the cell showing the element with the given symbol.
func (l Layout) Cell(symbol string) (Cell, bool) {
	for _, c := range l.Cells {
		if strings.EqualFold(c.Element.Symbol, symbol) {
			return c, true
		}
	}
	return Cell{}, false
}

// Option configures [Build].
type Option func(*config)

type config struct {
	cellSize float64
	gap      float64
	margin   float64
	stripGap float64
}

// WithCellSize sets the side length of each card. Non-positive values are ignored.
func WithCellSize(s float64) Option {
	return func(c *config) {
		if s > 0 {
			c.cellSize = s
		}
	}
}

// WithGap sets the spacing between neighbouring cards.
func WithGap(g float64) Option {
	return func(c *config) {
		if g >= 0 {
			c.gap = g
		}
	}
}

// WithMargin sets the empty border around the table.
func WithMargin(m float64) Option {
	return func(c *config) {
		if m >= 0 {
			c.margin = m
		}
	}
}

// WithStripGap sets the vertical space between the main table and the
// lanthanide strip. It defaults to half a cell.
func WithStripGap(g float64) Option {
	return func(c *config) {
		if g >= 0 {
			c.stripGap = g
		}
	}
}

// Build computes the rectangle of every placement. Placements keep their order.
func Build(placements []table.Placement, opts ...Option) Layout {
	cfg := config{cellSize: DefaultCellSize, gap: DefaultGap, margin: DefaultMargin, stripGap: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.stripGap < 0 {
		cfg.stripGap = cfg.cellSize / 2
	}

	step := cfg.cellSize + cfg.gap
	mainHeight := mainRows*step - cfg.gap
	lanthanideTop := cfg.margin + mainHeight + cfg.stripGap
	actinideTop := lanthanideTop + step

	l := Layout{
		FrameWidth:  2*cfg.margin + mainColumns*step - cfg.gap,
		FrameHeight: actinideTop + cfg.cellSize + cfg.margin,
		CellSize:    cfg.cellSize,
		Gap:         cfg.gap,
		Margin:      cfg.margin,
		Cells:       make([]Cell, 0, len(placements)),
	}

	for _, p := range placements {
		x := cfg.margin + float64(p.Position.Column-1)*step
		var y float64
		switch p.Kind {
		case table.KindLanthanide:
			y = lanthanideTop
		case table.KindActinide:
			y = actinideTop
		default:
			y = cfg.margin + float64(p.Position.Row-1)*step
		}
		l.Cells = append(l.Cells, Cell{
			Placement: p,
			Block:     Block{X: x, Y: y, W: cfg.cellSize, H: cfg.cellSize},
		})
	}
	return l
}
