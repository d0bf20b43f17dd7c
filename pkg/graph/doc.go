// Package graph provides serialization types for word graphs and distance
// matrices.
//
// This package defines the wire format wordladder uses for JSON files, API
// responses and the result cache. The engine in pkg/ladder never stores a
// graph; [FromDictionary] materializes one on demand from the transformer's
// distance-1 relation.
//
// # Graph Serialization
//
// Graphs use a node-link JSON format. Edges are undirected and listed once,
// with From < To:
//
//	{
//	  "nodes": [
//	    {"id": "cat", "component": 0, "degree": 1},
//	    {"id": "cot", "component": 0, "degree": 1}
//	  ],
//	  "edges": [{"from": "cat", "to": "cot"}],
//	  "components": 1
//	}
//
// Common operations:
//
//	g := graph.FromDictionary(dict, tr)       // Dictionary → Graph
//	data, _ := graph.MarshalGraph(g)          // Graph → []byte
//	parsed, _ := graph.UnmarshalGraph(data)   // []byte → Graph
//	dict := parsed.Dictionary()               // Graph → Dictionary
//
// # Matrix Serialization
//
// [MatrixJSON] stores a distance matrix with null for unreachable pairs.
package graph
