package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wordladder/pkg/graph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the component number and degree to node labels.
	Detailed bool

	// Highlight is a ladder to outline, in order.
	Highlight []string
}

// palette holds component fill colors, cycled when components outnumber it.
var palette = []string{
	"#dbeafe", "#dcfce7", "#fef9c3", "#fce7f3", "#ede9fe",
	"#ffedd5", "#cffafe", "#e0e7ff", "#f3e8ff", "#ecfccb",
}

const highlightColor = "#dc2626"

// ToDOT converts a word graph to Graphviz DOT source.
// The resulting string can be rendered using [RenderSVG].
func ToDOT(g graph.Graph, opts Options) string {
	onPath := make(map[string]bool, len(opts.Highlight))
	pathEdge := make(map[graph.Edge]bool, len(opts.Highlight))
	for i, w := range opts.Highlight {
		onPath[w] = true
		if i > 0 {
			pathEdge[edgeKey(opts.Highlight[i-1], w)] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  edge [color=\"#64748b\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		attrs := fmtAttrs(n, fmtLabel(n, opts.Detailed), onPath[n.ID])
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if pathEdge[edgeKey(e.From, e.To)] {
			fmt.Fprintf(&buf, "  %q -- %q [color=%q, penwidth=3];\n", e.From, e.To, highlightColor)
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeKey(a, b string) graph.Edge {
	if b < a {
		a, b = b, a
	}
	return graph.Edge{From: a, To: b}
}

func fmtLabel(n graph.Node, detailed bool) string {
	if !detailed {
		return n.ID
	}
	return fmt.Sprintf("%s\ncomponent: %d\ndegree: %d", n.ID, n.Component, n.Degree)
}

func fmtAttrs(n graph.Node, label string, highlighted bool) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("fillcolor=%q", palette[n.Component%len(palette)]),
	}
	if highlighted {
		attrs = append(attrs, fmt.Sprintf("color=%q", highlightColor), "penwidth=3")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the SVG scales from its origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
