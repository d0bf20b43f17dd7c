package cache

// ScopedKeyer wraps a Keyer with a prefix so several deployments or users can
// share one Redis instance without colliding.
//
//	k := NewScopedKeyer(NewDefaultKeyer(), "staging:")
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

// ComponentsKey generates a prefixed key for component partitions.
func (k *ScopedKeyer) ComponentsKey(dictHash string, opts TransformKeyOpts) string {
	return k.prefix + k.inner.ComponentsKey(dictHash, opts)
}

// MatrixKey generates a prefixed key for distance matrices.
func (k *ScopedKeyer) MatrixKey(dictHash string, opts MatrixKeyOpts) string {
	return k.prefix + k.inner.MatrixKey(dictHash, opts)
}

// GraphKey generates a prefixed key for word graphs.
func (k *ScopedKeyer) GraphKey(dictHash string, opts TransformKeyOpts) string {
	return k.prefix + k.inner.GraphKey(dictHash, opts)
}

// ArtifactKey generates a prefixed key for rendered artifacts.
func (k *ScopedKeyer) ArtifactKey(dictHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(dictHash, opts)
}
