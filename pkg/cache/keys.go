package cache

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey identifies one rendered output of one catalog.
	ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Category string  `json:"category,omitempty"`
	Style    string  `json:"style,omitempty"`
	Theme    string  `json:"theme,omitempty"`
	CellSize float64 `json:"cell_size,omitempty"`
	Popups   bool    `json:"popups,omitempty"`
	Engine   string  `json:"engine,omitempty"`
}

// DefaultKeyer hashes the key inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<format>:<sha256>".
func (DefaultKeyer) ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, catalogHash, opts)
}
