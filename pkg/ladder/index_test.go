package ladder

import (
	"slices"
	"sync"
	"testing"
)

func newTestIndex(words ...string) *Index {
	return NewIndex(NewDictionary(words...), NewTransformer(DefaultTransformerOptions()))
}

func TestDistanceScenarios(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		a, b  string
		want  Distance
	}{
		{"substitution", []string{"cat", "cut", "bat", "cute"}, "cat", "cut", Finite(1)},
		{"two steps", []string{"cat", "cut", "bat", "cute"}, "cat", "cute", Finite(2)},
		{"four steps", []string{"cart", "care", "core", "bore", "bone"}, "cart", "bone", Finite(4)},
		{"same word", []string{"cat"}, "cat", "cat", Finite(0)},
		{"same unknown word", nil, "dog", "dog", Finite(0)},
		{"unknown source", []string{"cat"}, "dog", "cat", Unreachable},
		{"unknown target", []string{"cat"}, "cat", "dog", Unreachable},
		{"disconnected", []string{"cat", "zzz"}, "cat", "zzz", Unreachable},
		{"possessive", []string{"cat", "cat's"}, "cat's", "cat", Finite(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := newTestIndex(tt.words...)
			if got := ix.Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	words := append(SampleWords(), "zzz", "quiz", "quip")
	forward := newTestIndex(words...)
	backward := newTestIndex(words...)
	for _, a := range words {
		for _, b := range words {
			if da, db := forward.Distance(a, b), backward.Distance(b, a); da != db {
				t.Errorf("Distance(%q, %q) = %v but Distance(%q, %q) = %v", a, b, da, b, a, db)
			}
		}
	}
}

func TestDistanceCache(t *testing.T) {
	ix := newTestIndex("cat", "cut", "zzz")

	ix.Distance("cat", "cut")
	ix.Distance("cut", "cat")
	ix.Distance("cat", "zzz")
	ix.Distance("zzz", "cat")
	ix.Distance("cat", "cat")

	s := ix.Stats()
	if s.Misses != 2 || s.Hits != 2 || s.Entries != 2 {
		t.Errorf("Stats() = %+v, want 2 misses, 2 hits, 2 entries", s)
	}
}

func TestShortestPathWitness(t *testing.T) {
	words := SampleWords()
	ix := newTestIndex(words...)
	dict := ix.Dictionary()
	tr := ix.Transformer()

	for _, a := range words {
		for _, b := range words {
			path, d := ix.ShortestPath(a, b)
			steps, ok := d.Steps()
			if !ok {
				if path != nil {
					t.Errorf("ShortestPath(%q, %q) returned a path for unreachable pair", a, b)
				}
				continue
			}
			if len(path) != steps+1 {
				t.Fatalf("ShortestPath(%q, %q) = %v, want %d words", a, b, path, steps+1)
			}
			if path[0] != a || path[len(path)-1] != b {
				t.Errorf("ShortestPath(%q, %q) endpoints = %v", a, b, path)
			}
			for i := 1; i < len(path); i++ {
				if !dict.Contains(path[i]) || !tr.Neighbors(path[i-1]).Has(path[i]) {
					t.Errorf("ShortestPath(%q, %q) step %q -> %q is not a dictionary edge", a, b, path[i-1], path[i])
				}
			}
		}
	}
}

func TestShortestPathUnique(t *testing.T) {
	ix := newTestIndex("cart", "care", "core", "bore", "bone")
	path, d := ix.ShortestPath("cart", "bone")
	want := []string{"cart", "care", "core", "bore", "bone"}
	if !slices.Equal(path, want) || d != Finite(4) {
		t.Errorf("ShortestPath = %v (%v), want %v (4)", path, d, want)
	}
}

func TestIndexConcurrent(t *testing.T) {
	words := SampleWords()
	ix := newTestIndex(words...)
	ref := newTestIndex(words...)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, a := range words {
				for _, b := range words {
					ix.Distance(a, b)
				}
			}
		}()
	}
	wg.Wait()

	for _, a := range words {
		for _, b := range words {
			if got, want := ix.Distance(a, b), ref.Distance(a, b); got != want {
				t.Errorf("concurrent Distance(%q, %q) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestDistanceJSON(t *testing.T) {
	tests := []struct {
		d    Distance
		want string
	}{
		{Finite(3), "3"},
		{Finite(0), "0"},
		{Unreachable, "null"},
	}
	for _, tt := range tests {
		data, err := tt.d.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON: %v", err)
		}
		if string(data) != tt.want {
			t.Errorf("MarshalJSON(%v) = %s, want %s", tt.d, data, tt.want)
		}
		var back Distance
		if err := back.UnmarshalJSON(data); err != nil {
			t.Fatalf("UnmarshalJSON: %v", err)
		}
		if back != tt.d {
			t.Errorf("UnmarshalJSON(%s) = %v, want %v", data, back, tt.d)
		}
	}
}

func TestDistanceLess(t *testing.T) {
	if !Finite(2).Less(Finite(3)) || Finite(3).Less(Finite(2)) {
		t.Error("finite ordering is wrong")
	}
	if !Finite(100).Less(Unreachable) || Unreachable.Less(Finite(0)) || Unreachable.Less(Unreachable) {
		t.Error("Unreachable should be greater than every finite distance")
	}
	if Unreachable.String() != "∞" || Finite(4).String() != "4" {
		t.Error("String() mismatch")
	}
}
