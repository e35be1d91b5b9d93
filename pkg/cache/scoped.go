package cache

// ScopedKeyer wraps a Keyer with a prefix so that several producers can share
// one backend without colliding. The CLI scopes keys by release version.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(catalogHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(catalogHash, opts)
}
