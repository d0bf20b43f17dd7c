package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/wordladder/pkg/errors"
	"github.com/matzehuels/wordladder/pkg/graph"
	"github.com/matzehuels/wordladder/pkg/ladder"
)

// run executes the root command with args and returns what it wrote to stdout.
// Config and cache directories point at fresh temp dirs.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestNeighborsCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "dictionary neighbors",
			args: []string{"neighbors", "cat", "--sample", "--no-cache"},
			want: []string{"bat", "cart", "cat's", "chat", "coat", "cut"},
		},
		{
			name: "without possessives",
			args: []string{"neighbors", "cat", "--sample", "--no-cache", "--no-possessives"},
			want: []string{"bat", "cart", "chat", "coat", "cut"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if got := lines(out); !slices.Equal(got, tt.want) {
				t.Errorf("neighbors = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNeighborsAll(t *testing.T) {
	out, err := run(t, "neighbors", "cat", "--all", "--sample", "--no-cache")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	got := lines(out)
	if len(got) != 180 {
		t.Errorf("--all listed %d candidates, want 180", len(got))
	}
	if !slices.IsSorted(got) {
		t.Error("candidates should be sorted")
	}
}

func TestInvalidWord(t *testing.T) {
	_, err := run(t, "neighbors", "c@t", "--sample", "--no-cache")
	if !errors.Is(err, errors.ErrCodeInvalidWord) {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidWord)
	}
}

func TestDistanceCommand(t *testing.T) {
	out, err := run(t, "distance", "cart", "bone", "-p", "--sample", "--no-cache")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	got := lines(out)
	if len(got) != 2 {
		t.Fatalf("output = %q, want 2 lines", out)
	}
	if !strings.Contains(got[0], "cart → bone") || !strings.HasSuffix(got[0], "4") {
		t.Errorf("first line = %q", got[0])
	}
	path := strings.Split(got[1], " -> ")
	if len(path) != 5 || path[0] != "cart" || path[4] != "bone" {
		t.Errorf("path = %v, want 5 words from cart to bone", path)
	}
}

func TestDistanceJSON(t *testing.T) {
	tests := []struct {
		from, to  string
		steps     int
		reachable bool
	}{
		{"cat", "cut", 1, true},
		{"cat", "cat", 0, true},
		{"cat", "zzz", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"-"+tt.to, func(t *testing.T) {
			out, err := run(t, "distance", tt.from, tt.to, "--json", "--sample", "--no-cache")
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			var got distanceOutput
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("decode %q: %v", out, err)
			}
			steps, ok := got.Distance.Steps()
			if ok != tt.reachable || (ok && steps != tt.steps) {
				t.Errorf("distance = %v, want steps %d reachable %v", got.Distance, tt.steps, tt.reachable)
			}
		})
	}
}

func TestPathsCommand(t *testing.T) {
	out, err := run(t, "paths", "cat", "--depth", "1", "--sample", "--no-cache")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	got := lines(out)
	if len(got) != 6 {
		t.Fatalf("got %d records, want 6:\n%s", len(got), out)
	}
	if !slices.Contains(got, "  cut (paths: cat -> cut)") {
		t.Errorf("missing cut record in:\n%s", out)
	}
}

func TestPathsJSON(t *testing.T) {
	out, err := run(t, "paths", "cart", "-n", "2", "--json", "--sample", "--no-cache")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, line := range lines(out) {
		var rec ladder.PathRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("decode %q: %v", line, err)
		}
		if rec.Depth < 1 || rec.Depth > 2 {
			t.Errorf("%s at depth %d, want 1..2", rec.Word, rec.Depth)
		}
		for _, p := range rec.Paths {
			if len(p) != rec.Depth+1 || p[0] != "cart" || p[len(p)-1] != rec.Word {
				t.Errorf("bad ladder %v for %s", p, rec.Word)
			}
		}
	}
}

func TestPossessiveWordsWithoutToggle(t *testing.T) {
	out, err := run(t, "distance", "bat's", "cat's", "--json", "--sample", "--no-cache", "--no-possessives")
	if err != nil {
		t.Fatalf("distance: %v", err)
	}
	var got distanceOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Distance != ladder.Finite(1) {
		t.Errorf("distance = %v, want 1", got.Distance)
	}

	out, err = run(t, "paths", "cat's", "--depth", "1", "--sample", "--no-cache", "--no-possessives")
	if err != nil {
		t.Fatalf("paths: %v", err)
	}
	if !slices.Contains(lines(out), "  bat's (paths: cat's -> bat's)") {
		t.Errorf("missing bat's record in:\n%s", out)
	}
}

func TestDictionaryWordOutsideAlphabet(t *testing.T) {
	dict := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(dict, []byte("café\ncafe\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "distance", "café", "cafe", "--json", "--dict", dict, "--no-cache")
	if err != nil {
		t.Fatalf("distance: %v", err)
	}
	var got distanceOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Distance != ladder.Finite(1) {
		t.Errorf("distance = %v, want 1", got.Distance)
	}

	if _, err := run(t, "distance", "naïve", "cafe", "--dict", dict, "--no-cache"); !errors.Is(err, errors.ErrCodeInvalidWord) {
		t.Errorf("err = %v, want %s for a non-dictionary word", err, errors.ErrCodeInvalidWord)
	}
}

func TestPathsNegativeDepth(t *testing.T) {
	_, err := run(t, "paths", "cat", "--depth", "-1", "--sample", "--no-cache")
	if !errors.Is(err, errors.ErrCodeInvalidDepth) {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidDepth)
	}
}

func TestComponentsJSON(t *testing.T) {
	out, err := run(t, "components", "--json", "--sample", "--no-cache")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var got struct {
		Count      int        `json:"count"`
		Components [][]string `json:"components"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Count != 1 || len(got.Components) != 1 {
		t.Fatalf("count = %d, want 1", got.Count)
	}
	if len(got.Components[0]) != len(ladder.SampleWords()) {
		t.Errorf("component has %d words, want %d", len(got.Components[0]), len(ladder.SampleWords()))
	}
}

func TestMatrixJSON(t *testing.T) {
	out, err := run(t, "matrix", "cat", "cut", "zzz", "--json", "--sample", "--no-cache")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var got graph.MatrixJSON
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	m, err := got.ToMatrix()
	if err != nil {
		t.Fatalf("ToMatrix: %v", err)
	}
	if d := m.Distances[0][1]; d.String() != "1" {
		t.Errorf("cat-cut = %v, want 1", d)
	}
	if d := m.Distances[0][2]; d.Reachable() {
		t.Errorf("cat-zzz = %v, want unreachable", d)
	}
	if pairs := m.Disconnected(); len(pairs) != 2 {
		t.Errorf("disconnected = %v, want 2 pairs", pairs)
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	dict := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(dict, []byte("cold\ncord\ncard\nward\nwarm\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(dir, "config.toml")
	body := "[dictionary]\npath = " + `"` + filepath.ToSlash(dict) + `"` + "\n\n[transform]\npossessives = false\n\n[cache]\nbackend = \"none\"\n"
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "distance", "cold", "warm", "--config", cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "cold → warm") || !strings.Contains(out, "4") {
		t.Errorf("output = %q, want distance 4", out)
	}

	// --sample overrides the configured dictionary.
	out, err = run(t, "neighbors", "cold", "--config", cfg, "--sample")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.TrimSpace(out) != "" {
		t.Errorf("cold has no sample neighbors, got %q", out)
	}
}

func TestMissingConfigFile(t *testing.T) {
	_, err := run(t, "neighbors", "cat", "--config", filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Error("explicit --config that does not exist should fail")
	}
}

func TestCacheClearDisabled(t *testing.T) {
	if _, err := run(t, "cache", "clear", "--no-cache"); err != nil {
		t.Errorf("cache clear with caching disabled: %v", err)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/custom-cache")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join("/tmp/custom-cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestWriteRecord(t *testing.T) {
	var buf bytes.Buffer
	writeRecord(&buf, ladder.PathRecord{
		Word:  "core",
		Depth: 2,
		Paths: [][]string{{"cart", "care", "core"}, {"cart", "cars", "core"}},
	})
	want := "    core (paths: cart -> care -> core OR cart -> cars -> core)\n"
	if buf.String() != want {
		t.Errorf("writeRecord = %q, want %q", buf.String(), want)
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		comp ladder.Component
		n    int
		want string
	}{
		{ladder.Component{"bat", "cat"}, 8, "bat, cat"},
		{ladder.Component{"a", "b", "c", "d"}, 2, "a, b, … (+2)"},
		{ladder.Component{}, 3, ""},
	}
	for _, tt := range tests {
		if got := preview(tt.comp, tt.n); got != tt.want {
			t.Errorf("preview(%v, %d) = %q, want %q", tt.comp, tt.n, got, tt.want)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"svg, DOT,png", []string{"svg", "dot", "png"}},
		{"json,,", []string{"json"}},
	}
	for _, tt := range tests {
		if got := parseFormats(tt.input); !slices.Equal(got, tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		formats []string
		want    map[string]string
	}{
		{"default base", "", []string{"svg", "dot"}, map[string]string{"svg": "wordladder.svg", "dot": "wordladder.dot"}},
		{"single file", "out/graph.svg", []string{"svg"}, map[string]string{"svg": "out/graph.svg"}},
		{"strip known ext", "graph.svg", []string{"svg", "png"}, map[string]string{"svg": "graph.svg", "png": "graph.png"}},
		{"base path", "graph", []string{"json"}, map[string]string{"json": "graph.json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, tt.formats)
			if len(got) != len(tt.want) {
				t.Fatalf("outputPaths = %v, want %v", got, tt.want)
			}
			for f, p := range tt.want {
				if got[f] != p {
					t.Errorf("%s -> %q, want %q", f, got[f], p)
				}
			}
		})
	}
}

func TestFormatMatrix(t *testing.T) {
	dict := ladder.NewDictionary("cat", "cut", "zzz")
	ix := ladder.NewIndex(dict, ladder.NewTransformer(ladder.DefaultTransformerOptions()))
	m, err := ladder.NewMatrix(context.Background(), ix, []string{"cat", "cut", "zzz"}, 1)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	want := "\tcat\tcut\tzzz\n" +
		"cat\t0\t1\t9\n" +
		"cut\t1\t0\t9\n" +
		"zzz\t9\t9\t0\n"
	if got := formatMatrix(m, 9); got != want {
		t.Errorf("formatMatrix =\n%s\nwant\n%s", got, want)
	}
}

func TestComponentListModel(t *testing.T) {
	comps := []ladder.Component{{"bat", "cat", "cut"}, {"zzz"}}
	var m tea.Model = NewComponentListModel(comps)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.(ComponentListModel).Cursor; got != 1 {
		t.Errorf("cursor after down = %d, want 1", got)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := m.(ComponentListModel).Cursor; got != 1 {
		t.Errorf("cursor should stop at the last row, got %d", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.(ComponentListModel).Open {
		t.Fatal("enter should open the component")
	}
	if view := m.View(); !strings.Contains(view, "zzz") {
		t.Errorf("detail view should list the words, got %q", view)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(ComponentListModel).Open || cmd != nil {
		t.Error("esc in the detail view should go back to the list")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Error("q should quit")
	}
}

func TestWordsCommand(t *testing.T) {
	out, err := run(t, "words", "--sample")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	got := lines(out)
	if len(got) != len(ladder.SampleWords()) || !slices.IsSorted(got) {
		t.Errorf("words = %v, want %d sorted words", got, len(ladder.SampleWords()))
	}

	path := filepath.Join(t.TempDir(), "words.json")
	if _, err := run(t, "words", "--sample", "-o", path); err != nil {
		t.Fatalf("export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Words []string `json:"words"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !slices.Equal(doc.Words, got) {
		t.Errorf("exported %v, want %v", doc.Words, got)
	}

	if _, err := run(t, "words", "--sample", "-f", "yaml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestBaseURL(t *testing.T) {
	tests := map[string]string{
		":8080":          "http://localhost:8080",
		"127.0.0.1:9000": "http://127.0.0.1:9000",
	}
	for addr, want := range tests {
		if got := baseURL(addr); got != want {
			t.Errorf("baseURL(%q) = %q, want %q", addr, got, want)
		}
	}
}
