// Package pkg provides the libraries behind the wordladder CLI and API.
//
// # Overview
//
// A word ladder turns one word into another by small edits, where every
// intermediate step is itself a dictionary word:
//
//	cart → care → core → bore → bone
//
// The pkg directory is organized into three areas:
//
//  1. [ladder] - Domain logic (transformations, distances, paths, components)
//  2. [graph], [io], [render] - Serialization, dictionary files and drawing
//  3. [pipeline], [cache], [server] - Cached whole-dictionary computations
//     and the HTTP API
//
// # Architecture
//
// The typical data flow:
//
//	Dictionary file (.txt, .json, .toml)
//	         ↓
//	    [io] package (import words)
//	         ↓
//	    [ladder] package (Transformer + Index)
//	         ↓
//	    [pipeline] package (components, matrix, graph; cached)
//	         ↓
//	    [render] package (DOT/SVG/PDF/PNG/JSON)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/wordladder/pkg/ladder"
//	)
//
//	dict := ladder.NewDictionary(ladder.SampleWords()...)
//	ix := ladder.NewIndex(dict, ladder.NewTransformer(ladder.DefaultTransformerOptions()))
//
//	ix.Distance("cart", "bone")      // 4
//	ix.ShortestPath("cat", "cute")   // [cat cut cute] 2
//
//	for rec := range ladder.FindPaths(dict, ix.Transformer(), "cat", 2) {
//	    fmt.Println(rec.Depth, rec.Word, rec.Paths)
//	}
//
// # Main Packages
//
// [ladder] - The engine. [ladder.Transformer] generates one-edit neighbors,
// [ladder.Index] answers shortest distances with a symmetric memo,
// [ladder.FindPaths] lazily streams every shortest ladder from a start word,
// and [ladder.Components] partitions a dictionary. [ladder.NewMatrix]
// computes pairwise distances in parallel.
//
// [graph] - Serialization types for the word graph and distance matrices.
//
// [io] - Dictionary import and export.
//
// [render] - Format conversion (SVG to PDF/PNG); [render/nodelink] draws the
// word graph with Graphviz.
//
// [pipeline] - Cached computation of components, matrices, graphs and
// renderings, shared by the CLI and the API.
//
// [cache] - File, Redis, MongoDB and null cache backends with key builders.
//
// [server] - chi-based JSON API over one shared index.
//
// [config] - TOML configuration with XDG paths.
//
// [errors], [observability], [buildinfo] - Structured errors, stage hooks and
// version information.
//
// # Testing
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/ladder/...       # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// Redis and MongoDB cache tests run only when WORDLADDER_REDIS_URL or
// WORDLADDER_MONGO_URI is set.
//
// [ladder]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/ladder
// [graph]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/graph
// [io]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/server
// [config]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/wordladder/pkg/buildinfo
package pkg
