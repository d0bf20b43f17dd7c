package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/wordladder/pkg/graph"
)

func testGraph() graph.Graph {
	return graph.Graph{
		Nodes: []graph.Node{
			{ID: "cat", Component: 0, Degree: 1},
			{ID: "cot", Component: 0, Degree: 2},
			{ID: "dot", Component: 0, Degree: 1},
			{ID: "zzz", Component: 1, Degree: 0},
		},
		Edges:      []graph.Edge{{From: "cat", To: "cot"}, {From: "cot", To: "dot"}},
		Components: 2,
	}
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testGraph(), Options{})

	if !strings.HasPrefix(dot, "graph G {") {
		t.Error("ToDOT() output missing undirected graph declaration")
	}
	for _, want := range []string{`"cat"`, `"zzz"`, `"cat" -- "cot";`, `"cot" -- "dot";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %s", want)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("ToDOT() should not emit directed edges")
	}
}

func TestToDOT_ComponentColors(t *testing.T) {
	dot := ToDOT(testGraph(), Options{})

	if !strings.Contains(dot, `fillcolor="`+palette[0]+`"`) {
		t.Error("component 0 color missing")
	}
	if !strings.Contains(dot, `fillcolor="`+palette[1]+`"`) {
		t.Error("component 1 color missing")
	}
}

func TestToDOT_Highlight(t *testing.T) {
	dot := ToDOT(testGraph(), Options{Highlight: []string{"dot", "cot"}})

	if !strings.Contains(dot, `"cot" -- "dot" [color="`+highlightColor+`", penwidth=3];`) {
		t.Error("highlighted edge missing, regardless of ladder direction")
	}
	if strings.Contains(dot, `"cat" -- "cot" [`) {
		t.Error("edge off the ladder should not be highlighted")
	}
}

func TestFmtLabel(t *testing.T) {
	n := graph.Node{ID: "cot", Component: 3, Degree: 2}

	if got := fmtLabel(n, false); got != "cot" {
		t.Errorf("fmtLabel() simple = %q", got)
	}
	got := fmtLabel(n, true)
	if !strings.Contains(got, "component: 3") || !strings.Contains(got, "degree: 2") {
		t.Errorf("fmtLabel() detailed = %q", got)
	}
}

func TestFmtAttrs_PaletteWraps(t *testing.T) {
	n := graph.Node{ID: "x", Component: len(palette) + 1}
	attrs := strings.Join(fmtAttrs(n, "x", false), ",")
	if !strings.Contains(attrs, palette[1]) {
		t.Errorf("fmtAttrs() = %s, want palette wrap to %s", attrs, palette[1])
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 100.00 50.00" xmlns="x"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("normalizeViewBox() should leave svg without viewBox alone")
	}
}
