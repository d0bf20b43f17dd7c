package graph

import (
	"encoding/json"
	"slices"

	"github.com/matzehuels/wordladder/pkg/ladder"
)

// =============================================================================
// Graph - Word Graph Serialization
// =============================================================================

// Graph is the canonical serialization format for a word graph.
// Used for API responses, storage, caching, and rendering.
type Graph struct {
	Nodes      []Node `json:"nodes"`
	Edges      []Edge `json:"edges"`
	Components int    `json:"components"`
}

// Node is a dictionary word with its component number and edge count.
// Component numbers follow [ladder.Components] order, so 0 is the largest.
type Node struct {
	ID        string `json:"id"`
	Component int    `json:"component"`
	Degree    int    `json:"degree"`
}

// Edge joins two words one transformation apart. From sorts before To.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// =============================================================================
// Dictionary ↔ Graph Conversion
// =============================================================================

// FromDictionary builds the graph of dict under tr.
// Nodes are sorted by ID and edges by (From, To) for deterministic output.
func FromDictionary(dict *ladder.Dictionary, tr *ladder.Transformer) Graph {
	comps := ladder.Components(dict, tr)
	return build(dict, ladder.ComponentOf(comps), len(comps), ladder.Edges(dict, tr))
}

// FromIndex builds the graph of the index's dictionary and transformer.
func FromIndex(ix *ladder.Index) Graph {
	return FromDictionary(ix.Dictionary(), ix.Transformer())
}

func build(dict *ladder.Dictionary, compOf map[string]int, ncomp int, pairs []ladder.Pair) Graph {
	degree := make(map[string]int, dict.Len())
	out := Graph{
		Nodes:      make([]Node, 0, dict.Len()),
		Edges:      make([]Edge, len(pairs)),
		Components: ncomp,
	}
	for i, p := range pairs {
		out.Edges[i] = Edge{From: p.A, To: p.B}
		degree[p.A]++
		degree[p.B]++
	}
	for _, w := range dict.Words() {
		out.Nodes = append(out.Nodes, Node{ID: w, Component: compOf[w], Degree: degree[w]})
	}
	return out
}

// Dictionary returns the dictionary made of the graph's node IDs.
func (g Graph) Dictionary() *ladder.Dictionary {
	words := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		words[i] = n.ID
	}
	return ladder.NewDictionary(words...)
}

// ComponentWords groups node IDs by component number, each group sorted.
func (g Graph) ComponentWords() [][]string {
	out := make([][]string, g.Components)
	for _, n := range g.Nodes {
		if n.Component >= 0 && n.Component < len(out) {
			out[n.Component] = append(out[n.Component], n.ID)
		}
	}
	for _, words := range out {
		slices.Sort(words)
	}
	return out
}

// UnmarshalGraph deserializes JSON bytes to a Graph.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, err
	}
	return g, nil
}
