// Package nodelink renders word graphs as node-link diagrams.
//
// Words are drawn as rounded boxes and one-edit transformations as plain
// lines. Each connected component gets its own fill color so isolated
// islands of the dictionary stand out.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// A ladder can be drawn on top of the graph by passing it as
// [Options.Highlight]; its words and the edges between consecutive words are
// outlined in red.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion lives in package render and requires
// librsvg (rsvg-convert).
package nodelink
