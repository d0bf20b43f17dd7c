package ladder

import (
	"slices"
	"sync"
	"sync/atomic"
)

// pairKey is an order-independent cache key: a <= b.
type pairKey struct{ a, b string }

func newPairKey(w1, w2 string) pairKey {
	if w2 < w1 {
		w1, w2 = w2, w1
	}
	return pairKey{a: w1, b: w2}
}

// Stats reports cache usage of an [Index].
type Stats struct {
	Hits    int64 `json:"hits"`    // queries answered from the cache
	Misses  int64 `json:"misses"`  // queries that ran a BFS
	Entries int   `json:"entries"` // cached pairs
}

// Index answers shortest-distance queries between dictionary words and
// memoizes every answer, including Unreachable. The dictionary is assumed
// fixed for the lifetime of the index, so entries are never invalidated.
//
// Index is safe for concurrent use. Two goroutines may race to compute the
// same pair; both arrive at the same value and the second write is a no-op
// in effect.
type Index struct {
	dict *Dictionary
	tr   *Transformer

	mu    sync.RWMutex
	cache map[pairKey]Distance

	hits   atomic.Int64
	misses atomic.Int64
}

// NewIndex creates an index over dict using tr to derive edges.
func NewIndex(dict *Dictionary, tr *Transformer) *Index {
	return &Index{
		dict:  dict,
		tr:    tr,
		cache: make(map[pairKey]Distance),
	}
}

// Dictionary returns the index's dictionary.
func (ix *Index) Dictionary() *Dictionary { return ix.dict }

// Transformer returns the index's transformer.
func (ix *Index) Transformer() *Transformer { return ix.tr }

// Distance returns the number of edits on a shortest ladder from w1 to w2.
//
// Equal words are at distance 0 without a search. If either word is missing
// from the dictionary the result is [Unreachable]. Otherwise a BFS from w1
// over dictionary neighbors runs until w2 is discovered or the frontier is
// exhausted; it expands at most |dictionary| words.
func (ix *Index) Distance(w1, w2 string) Distance {
	if w1 == w2 {
		return Finite(0)
	}
	if !ix.dict.Contains(w1) || !ix.dict.Contains(w2) {
		return Unreachable
	}

	key := newPairKey(w1, w2)
	ix.mu.RLock()
	d, ok := ix.cache[key]
	ix.mu.RUnlock()
	if ok {
		ix.hits.Add(1)
		return d
	}
	ix.misses.Add(1)

	d = ix.search(w1, w2)

	ix.mu.Lock()
	ix.cache[key] = d
	ix.mu.Unlock()
	return d
}

// search runs the BFS behind Distance. Both words are dictionary members
// and distinct.
func (ix *Index) search(from, to string) Distance {
	type item struct {
		word  string
		depth int
	}
	queue := []item{{word: from}}
	seen := map[string]bool{from: true}

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for next := range ix.tr.Neighbors(cur.word) {
			if !ix.dict.Contains(next) || seen[next] {
				continue
			}
			if next == to {
				return Finite(cur.depth + 1)
			}
			seen[next] = true
			queue = append(queue, item{word: next, depth: cur.depth + 1})
		}
	}
	return Unreachable
}

// ShortestPath returns one shortest ladder from w1 to w2, both endpoints
// included, along with its distance. The ladder is nil when the words are
// not connected. Among equally short ladders the lexicographically smallest
// neighbor is preferred at each step, so results are deterministic.
//
// The distance is recorded in the index cache like any other query.
func (ix *Index) ShortestPath(w1, w2 string) ([]string, Distance) {
	d := ix.Distance(w1, w2)
	steps, ok := d.Steps()
	if !ok {
		return nil, d
	}
	if steps == 0 {
		return []string{w1}, d
	}

	parent := map[string]string{w1: ""}
	frontier := []string{w1}
	for len(frontier) > 0 {
		var next []string
		for _, cur := range frontier {
			for _, nb := range ix.tr.DictionaryNeighbors(ix.dict, cur) {
				if _, seen := parent[nb]; seen {
					continue
				}
				parent[nb] = cur
				if nb == w2 {
					return tracePath(parent, w2), d
				}
				next = append(next, nb)
			}
		}
		frontier = next
	}
	return nil, Unreachable
}

func tracePath(parent map[string]string, end string) []string {
	var path []string
	for w := end; w != ""; w = parent[w] {
		path = append(path, w)
	}
	slices.Reverse(path)
	return path
}

// Components partitions the index's dictionary into connected components.
// See the package-level [Components] function.
func (ix *Index) Components() []Component {
	return Components(ix.dict, ix.tr)
}

// Stats returns a snapshot of cache usage.
func (ix *Index) Stats() Stats {
	ix.mu.RLock()
	n := len(ix.cache)
	ix.mu.RUnlock()
	return Stats{Hits: ix.hits.Load(), Misses: ix.misses.Load(), Entries: n}
}
