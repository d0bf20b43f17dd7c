package ladder

import (
	"iter"
	"slices"
	"strings"
)

// PathRecord is one emission of [FindPaths]: a word reached from the start,
// its minimal depth, and every minimal ladder known for it at emission time.
type PathRecord struct {
	Word  string     `json:"word"`
	Depth int        `json:"depth"`
	Paths [][]string `json:"paths"`
}

// pathSet holds the minimal depth seen for a word and the distinct ladders of
// exactly that depth.
type pathSet struct {
	depth int
	paths map[string][]string // joined ladder -> ladder
}

// pathTable maps words to their path sets for one enumeration.
type pathTable map[string]*pathSet

// lookup returns the recorded depth and set for w. Absent words report
// ok == false; the table is not modified.
func (t pathTable) lookup(w string) (*pathSet, bool) {
	ps, ok := t[w]
	return ps, ok
}

// snapshot copies the current ladders in deterministic order.
func (ps *pathSet) snapshot() [][]string {
	keys := make([]string, 0, len(ps.paths))
	for k := range ps.paths {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([][]string, len(keys))
	for i, k := range keys {
		out[i] = slices.Clone(ps.paths[k])
	}
	return out
}

// pathKey joins ladder words with a separator that cannot occur in words.
func pathKey(p []string) string { return strings.Join(p, "\x00") }

// FindPaths enumerates every shortest ladder from start to each word within
// maxDepth edits.
//
// The returned sequence is lazy and finite, and yields records in
// non-decreasing depth order. The start word itself is never yielded, and it
// need not be a dictionary word: it is seeded directly, and only its
// dictionary neighbors are explored. A word reached by several equally short
// ladders is queued once per ladder and therefore yielded once per ladder.
// Because the queue is ordered by depth, every ladder of depth d is known
// before the first depth-d record is yielded, so each record carries the
// complete set. [CollectPaths] drains the sequence and keeps one record per
// word.
//
// maxDepth is a hard bound on expansion: words more than maxDepth edits from
// start are never visited. A negative maxDepth yields nothing.
//
// Each iteration of the sequence runs an independent search.
func FindPaths(dict *Dictionary, tr *Transformer, start string, maxDepth int) iter.Seq[PathRecord] {
	return func(yield func(PathRecord) bool) {
		if maxDepth < 0 {
			return
		}

		type entry struct {
			word string
			path []string
		}

		table := pathTable{
			start: {depth: 0, paths: map[string][]string{start: {start}}},
		}
		queue := []entry{{word: start, path: []string{start}}}

		for qi := 0; qi < len(queue); qi++ {
			cur := queue[qi]
			queue[qi] = entry{}
			depth := len(cur.path) - 1

			ps, _ := table.lookup(cur.word)
			if depth > ps.depth {
				continue // stale
			}

			if cur.word != start {
				rec := PathRecord{Word: cur.word, Depth: depth, Paths: ps.snapshot()}
				if !yield(rec) {
					return
				}
			}

			if depth >= maxDepth {
				continue
			}

			for _, next := range tr.DictionaryNeighbors(dict, cur.word) {
				path := append(slices.Clone(cur.path), next)
				nextDepth := len(path) - 1

				existing, ok := table.lookup(next)
				switch {
				case !ok || nextDepth < existing.depth:
					table[next] = &pathSet{depth: nextDepth, paths: map[string][]string{pathKey(path): path}}
				case nextDepth == existing.depth:
					k := pathKey(path)
					if _, dup := existing.paths[k]; dup {
						continue
					}
					existing.paths[k] = path
				default:
					continue
				}
				queue = append(queue, entry{word: next, path: path})
			}
		}
	}
}

// CollectPaths drains [FindPaths] and returns the final record for every
// reached word, sorted by depth and then word.
func CollectPaths(dict *Dictionary, tr *Transformer, start string, maxDepth int) []PathRecord {
	latest := make(map[string]PathRecord)
	for rec := range FindPaths(dict, tr, start, maxDepth) {
		latest[rec.Word] = rec
	}
	out := make([]PathRecord, 0, len(latest))
	for _, rec := range latest {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b PathRecord) int {
		if a.Depth != b.Depth {
			return a.Depth - b.Depth
		}
		return strings.Compare(a.Word, b.Word)
	})
	return out
}
