package ladder

import (
	"slices"
	"strings"
)

// Component is a maximal set of dictionary words connected by word ladders.
// Words are sorted lexicographically.
type Component []string

// Contains reports whether w belongs to the component.
func (c Component) Contains(w string) bool {
	_, ok := slices.BinarySearch(c, w)
	return ok
}

// Components partitions dict into connected components under the one-edit
// relation of tr. Every dictionary word appears in exactly one component;
// isolated words form singletons. An empty dictionary yields no components.
//
// Components are ordered by size, largest first, with ties broken by their
// first word.
func Components(dict *Dictionary, tr *Transformer) []Component {
	visited := make(WordSet, dict.Len())
	var comps []Component
	for _, w := range dict.Words() {
		if visited.Has(w) {
			continue
		}
		comps = append(comps, collectComponent(dict, tr, w, visited))
	}
	slices.SortFunc(comps, func(a, b Component) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a[0], b[0])
	})
	return comps
}

// collectComponent runs a BFS from seed, marking every reached word in
// visited and returning them as one component.
func collectComponent(dict *Dictionary, tr *Transformer, seed string, visited WordSet) Component {
	visited.Add(seed)
	queue := []string{seed}
	for qi := 0; qi < len(queue); qi++ {
		for next := range tr.Neighbors(queue[qi]) {
			if !dict.Contains(next) || visited.Has(next) {
				continue
			}
			visited.Add(next)
			queue = append(queue, next)
		}
	}
	slices.Sort(queue)
	return Component(queue)
}

// ComponentOf returns a map from each word to the position of its component
// in comps.
func ComponentOf(comps []Component) map[string]int {
	out := make(map[string]int)
	for i, c := range comps {
		for _, w := range c {
			out[w] = i
		}
	}
	return out
}

// Edges lists every unordered pair of dictionary words one edit apart, with
// the smaller word first, sorted.
func Edges(dict *Dictionary, tr *Transformer) []Pair {
	var out []Pair
	for _, w := range dict.Words() {
		for _, nb := range tr.DictionaryNeighbors(dict, w) {
			if w < nb {
				out = append(out, Pair{A: w, B: nb})
			}
		}
	}
	return out
}
