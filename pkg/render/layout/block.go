package layout

// Block is a single rectangle in the layout.
type Block struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	W float64 `json:"width" yaml:"width"`
	H float64 `json:"height" yaml:"height"`
}

// Right returns the x coordinate of the right edge.
func (b Block) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the bottom edge.
func (b Block) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center point of the block.
func (b Block) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center point of the block.
func (b Block) CenterY() float64 { return b.Y + b.H/2 }

// Overlaps reports whether b and o share any interior area. Touching edges do
// not count.
func (b Block) Overlaps(o Block) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
}
