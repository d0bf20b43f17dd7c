// Package ladder implements the word-ladder graph engine.
//
// A word ladder is a sequence of dictionary words where each consecutive pair
// differs by one edit: inserting a letter, deleting a letter, substituting a
// letter, or toggling the possessive suffix ('s). The graph formed by these
// edits is never materialized; edges are derived on demand from a
// [Transformer] and filtered through [Dictionary] membership.
//
// # Components
//
//   - [Transformer]: generates all one-edit neighbors of a word
//   - [Index]: memoized shortest distance between two words (BFS)
//   - [FindPaths]: lazy enumeration of every shortest ladder from a start word
//   - [Components]: partition of a dictionary into connected components
//   - [Matrix]: symmetric pairwise distance matrix for downstream consumers
//
// # Distances
//
// Distances are [Distance] values, either finite or [Unreachable]. There is no
// numeric infinity; consumers that need a number (for example an embedding
// that clips unreachable pairs) use [Matrix.Capped].
//
// # Usage
//
//	dict := ladder.NewDictionary("cat", "cut", "bat", "cute")
//	tr := ladder.NewTransformer(ladder.DefaultTransformerOptions())
//	ix := ladder.NewIndex(dict, tr)
//
//	d := ix.Distance("cat", "cute") // 2
//
//	for rec := range ladder.FindPaths(dict, tr, "cat", 2) {
//	    fmt.Println(rec.Depth, rec.Word, rec.Paths)
//	}
//
// # Concurrency
//
// [Dictionary] and [Transformer] are immutable and safe for concurrent use.
// [Index] guards its cache with a read-write mutex, so a single index may be
// shared across goroutines. [FindPaths] keeps all state local to one call.
package ladder
