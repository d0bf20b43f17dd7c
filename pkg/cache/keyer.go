package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Key kinds lead every key built by [DefaultKeyer].
const (
	KindComponents = "components"
	KindMatrix     = "matrix"
	KindGraph      = "graph"
	KindArtifact   = "artifact"
)

// TransformKeyOpts identifies the transformer configuration a result was
// computed with.
type TransformKeyOpts struct {
	Alphabet    string `json:"alphabet"`
	Possessives bool   `json:"possessives"`
}

// MatrixKeyOpts are the options that change a distance matrix.
// Words is a hash of the row words, empty for the whole dictionary.
type MatrixKeyOpts struct {
	TransformKeyOpts
	Words string `json:"words,omitempty"`
}

// ArtifactKeyOpts are the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	TransformKeyOpts
	Format    string   `json:"format"`
	Detailed  bool     `json:"detailed"`
	Highlight []string `json:"highlight,omitempty"`
	Scale     float64  `json:"scale,omitempty"`
}

// Keyer builds cache keys for each pipeline stage.
type Keyer interface {
	ComponentsKey(dictHash string, opts TransformKeyOpts) string
	MatrixKey(dictHash string, opts MatrixKeyOpts) string
	GraphKey(dictHash string, opts TransformKeyOpts) string
	ArtifactKey(dictHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer builds keys of the form kind:dict:opts. dict is the leading
// 16 hex digits of the dictionary hash, so one dictionary's entries share a
// key prefix; opts is the SHA-256 of the full dictionary hash and the stage
// options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ComponentsKey returns the key for a component partition.
func (DefaultKeyer) ComponentsKey(dictHash string, opts TransformKeyOpts) string {
	return stageKey(KindComponents, dictHash, opts)
}

// MatrixKey returns the key for a distance matrix.
func (DefaultKeyer) MatrixKey(dictHash string, opts MatrixKeyOpts) string {
	return stageKey(KindMatrix, dictHash, opts)
}

// GraphKey returns the key for a serialized word graph.
func (DefaultKeyer) GraphKey(dictHash string, opts TransformKeyOpts) string {
	return stageKey(KindGraph, dictHash, opts)
}

// ArtifactKey returns the key for a rendered artifact.
func (DefaultKeyer) ArtifactKey(dictHash string, opts ArtifactKeyOpts) string {
	return stageKey(KindArtifact, dictHash, opts)
}

var _ Keyer = DefaultKeyer{}

func stageKey(kind, dictHash string, opts any) string {
	data, _ := json.Marshal(struct {
		Dict string `json:"dict"`
		Opts any    `json:"opts"`
	}{dictHash, opts})
	sum := sha256.Sum256(data)
	short := dictHash
	if len(short) > 16 {
		short = short[:16]
	}
	return kind + ":" + short + ":" + hex.EncodeToString(sum[:])
}

// Hash returns the hex-encoded SHA-256 of data. Dictionary fingerprints and
// word lists pass through it before they become key material.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
