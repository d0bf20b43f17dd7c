package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/wordladder/pkg/cache"
	"github.com/matzehuels/wordladder/pkg/graph"
	"github.com/matzehuels/wordladder/pkg/ladder"
	"github.com/matzehuels/wordladder/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the per-stage default expiry when positive.
	TTL time.Duration

	// flight collapses concurrent misses for the same key.
	flight singleflight.Group
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute builds the word graph of ix and renders it with caching.
func (r *Runner) Execute(ctx context.Context, ix *ladder.Index, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := r.logger(opts)
	result := &Result{DictHash: DictHash(ix.Dictionary())}

	// Stage 1: Components
	start := time.Now()
	comps, hit, err := r.ComponentsWithCacheInfo(ctx, ix, opts)
	if err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}
	result.Components = comps
	result.Stats.ComponentsTime = time.Since(start)
	result.Stats.Components = len(comps)
	result.CacheInfo.ComponentsHit = hit

	logger.Info("found components",
		"components", len(comps),
		"cached", hit,
		"duration", result.Stats.ComponentsTime)

	// Stage 2: Graph
	start = time.Now()
	g, hit, err := r.GraphWithCacheInfo(ctx, ix, opts)
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	result.Graph = g
	result.Stats.GraphTime = time.Since(start)
	result.Stats.Words = len(g.Nodes)
	result.Stats.Edges = len(g.Edges)
	result.CacheInfo.GraphHit = hit

	logger.Info("built word graph",
		"words", len(g.Nodes),
		"edges", len(g.Edges),
		"cached", hit,
		"duration", result.Stats.GraphTime)

	// Stage 3: Render
	start = time.Now()
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, result.DictHash, g, ix.Transformer(), opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(start)
	result.CacheInfo.RenderHit = hit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComponentsWithCacheInfo partitions the dictionary with caching and returns cache hit info.
func (r *Runner) ComponentsWithCacheInfo(ctx context.Context, ix *ladder.Index, opts Options) ([]ladder.Component, bool, error) {
	key := r.Keyer.ComponentsKey(DictHash(ix.Dictionary()), transformKey(ix.Transformer()))
	stage := observability.StageComponents

	var comps []ladder.Component
	if r.load(ctx, stage, key, opts.Refresh, &comps) {
		return comps, true, nil
	}

	v, _, _ := r.flight.Do(key, func() (any, error) {
		hooks := observability.Pipeline()
		hooks.OnStageStart(ctx, stage, ix.Dictionary().Len())
		start := time.Now()
		comps := ix.Components()
		hooks.OnStageComplete(ctx, stage, time.Since(start), nil)

		r.store(ctx, stage, key, comps, cache.TTLComponents)
		return comps, nil
	})
	return v.([]ladder.Component), false, nil
}

// Components is a convenience wrapper that discards the cache hit info.
func (r *Runner) Components(ctx context.Context, ix *ladder.Index, opts Options) ([]ladder.Component, error) {
	comps, _, err := r.ComponentsWithCacheInfo(ctx, ix, opts)
	return comps, err
}

// MatrixWithCacheInfo computes the distance matrix over words with caching.
// A nil words slice means every dictionary word.
func (r *Runner) MatrixWithCacheInfo(ctx context.Context, ix *ladder.Index, words []string, opts Options) (*ladder.Matrix, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}
	if words == nil {
		words = ix.Dictionary().Words()
	}
	key := r.Keyer.MatrixKey(DictHash(ix.Dictionary()), cache.MatrixKeyOpts{
		TransformKeyOpts: transformKey(ix.Transformer()),
		Words:            cache.Hash([]byte(strings.Join(words, "\n"))),
	})
	stage := observability.StageMatrix

	var mj graph.MatrixJSON
	if r.load(ctx, stage, key, opts.Refresh, &mj) {
		if m, err := mj.ToMatrix(); err == nil {
			return m, true, nil
		}
	}

	v, err, _ := r.flight.Do(key, func() (any, error) {
		hooks := observability.Pipeline()
		hooks.OnStageStart(ctx, stage, len(words))
		start := time.Now()
		m, err := ladder.NewMatrix(ctx, ix, words, opts.Workers)
		hooks.OnStageComplete(ctx, stage, time.Since(start), err)
		if err != nil {
			return nil, err
		}

		r.store(ctx, stage, key, graph.FromMatrix(m), cache.TTLMatrix)
		return m, nil
	})
	if err != nil {
		return nil, false, err
	}
	return v.(*ladder.Matrix), false, nil
}

// Matrix is a convenience wrapper that discards the cache hit info.
func (r *Runner) Matrix(ctx context.Context, ix *ladder.Index, words []string, opts Options) (*ladder.Matrix, error) {
	m, _, err := r.MatrixWithCacheInfo(ctx, ix, words, opts)
	return m, err
}

// GraphWithCacheInfo builds the word graph with caching and returns cache hit info.
func (r *Runner) GraphWithCacheInfo(ctx context.Context, ix *ladder.Index, opts Options) (graph.Graph, bool, error) {
	key := r.Keyer.GraphKey(DictHash(ix.Dictionary()), transformKey(ix.Transformer()))
	stage := observability.StageGraph

	var g graph.Graph
	if r.load(ctx, stage, key, opts.Refresh, &g) {
		return g, true, nil
	}
	if err := ctx.Err(); err != nil {
		return graph.Graph{}, false, err
	}

	v, _, _ := r.flight.Do(key, func() (any, error) {
		hooks := observability.Pipeline()
		hooks.OnStageStart(ctx, stage, ix.Dictionary().Len())
		start := time.Now()
		g := graph.FromIndex(ix)
		hooks.OnStageComplete(ctx, stage, time.Since(start), nil)

		r.store(ctx, stage, key, g, cache.TTLGraph)
		return g, nil
	})
	return v.(graph.Graph), false, nil
}

// Graph is a convenience wrapper that discards the cache hit info.
func (r *Runner) Graph(ctx context.Context, ix *ladder.Index, opts Options) (graph.Graph, error) {
	g, _, err := r.GraphWithCacheInfo(ctx, ix, opts)
	return g, err
}

// RenderWithCacheInfo renders g in every requested format. The result counts
// as a hit only when all formats came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, dictHash string, g graph.Graph, tr *ladder.Transformer, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	keyFor := func(format string) string {
		return r.Keyer.ArtifactKey(dictHash, cache.ArtifactKeyOpts{
			TransformKeyOpts: transformKey(tr),
			Format:           format,
			Detailed:         opts.Detailed,
			Highlight:        opts.Highlight,
			Scale:            opts.Scale,
		})
	}

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, hit, err := r.Cache.Get(ctx, keyFor(format))
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := RenderGraph(ctx, g, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		if err := r.Cache.Set(ctx, keyFor(format), data, r.ttl(cache.TTLArtifact)); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// DictHash identifies a dictionary's contents in cache keys.
func DictHash(dict *ladder.Dictionary) string {
	return cache.Hash([]byte(dict.Fingerprint()))
}

func transformKey(tr *ladder.Transformer) cache.TransformKeyOpts {
	return cache.TransformKeyOpts{Alphabet: tr.Alphabet(), Possessives: tr.Possessives()}
}

// load decodes a cached JSON value into v. Undecodable entries count as misses.
func (r *Runner) load(ctx context.Context, stage, key string, refresh bool, v any) bool {
	if refresh {
		return false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "stage", stage, "err", err)
	}
	if err != nil || !hit || json.Unmarshal(data, v) != nil {
		observability.Cache().OnCacheMiss(ctx, stage)
		return false
	}
	observability.Cache().OnCacheHit(ctx, stage)
	return true
}

func (r *Runner) store(ctx context.Context, stage, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.ttl(ttl)); err != nil {
		r.Logger.Warn("cache write failed", "stage", stage, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, stage, len(data))
}

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
