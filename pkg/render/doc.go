// Package render turns word graphs into images.
//
// The [nodelink] subpackage lays a word graph out with Graphviz and produces
// SVG. [ToPDF] and [ToPNG] convert that SVG with the external rsvg-convert
// tool (from librsvg):
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/matzehuels/wordladder/pkg/render/nodelink
package render
