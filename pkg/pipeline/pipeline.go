// Package pipeline runs the cacheable word-ladder computations.
//
// The ladder engine answers single queries quickly, but whole-dictionary
// results (the component partition, a distance matrix, the word graph and
// its renderings) cost a full sweep. This package computes them through a
// [Runner] that stores each result in a [cache.Cache] keyed by a hash of the
// dictionary and the transformer options, so the CLI and the HTTP server can
// share work across runs.
//
// # Stages
//
//  1. Components: connected components of the dictionary
//  2. Matrix: pairwise distances between chosen words
//  3. Graph: the serializable word graph
//  4. Render: DOT, SVG, JSON, PDF or PNG artifacts of the graph
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	defer runner.Close()
//
//	result, err := runner.Execute(ctx, ix, pipeline.Options{Formats: []string{"svg"}})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordladder/pkg/errors"
	"github.com/matzehuels/wordladder/pkg/graph"
	"github.com/matzehuels/wordladder/pkg/ladder"
	"github.com/matzehuels/wordladder/pkg/render"
)

// DefaultScale is the PNG resolution multiplier.
const DefaultScale = 2.0

// Options configures a pipeline run.
type Options struct {
	// Formats lists the artifacts to render (see [render.Formats]).
	Formats []string `json:"formats,omitempty"`

	// Detailed adds component and degree to node labels.
	Detailed bool `json:"detailed,omitempty"`

	// Highlight is a ladder drawn on top of the graph.
	Highlight []string `json:"highlight,omitempty"`

	// Scale is the PNG resolution multiplier.
	Scale float64 `json:"scale,omitempty"`

	// Workers bounds matrix row parallelism. Zero means GOMAXPROCS.
	Workers int `json:"workers,omitempty"`

	// Refresh bypasses cache reads; results are still written back.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// Result is the output of [Runner.Execute].
type Result struct {
	Graph      graph.Graph
	Components []ladder.Component
	Artifacts  map[string][]byte
	DictHash   string
	Stats      Stats
	CacheInfo  CacheInfo
}

// Stats records stage timings.
type Stats struct {
	Words          int
	Edges          int
	Components     int
	ComponentsTime time.Duration
	GraphTime      time.Duration
	RenderTime     time.Duration
}

// CacheInfo records which stages were served from the cache.
type CacheInfo struct {
	ComponentsHit bool
	GraphHit      bool
	RenderHit     bool
}

// SetDefaults fills zero-valued options.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{render.FormatSVG}
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
}

// Validate checks formats and worker count.
func (o *Options) Validate() error {
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "workers must be >= 0, got %d", o.Workers)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults then validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// ValidateFormat checks a single output format.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, render.Formats)
}

// ValidateFormats checks every output format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}
