package ladder

import (
	"slices"
	"testing"
)

func TestNeighborsSmallAlphabet(t *testing.T) {
	tr := NewTransformer(TransformerOptions{Alphabet: "ab"})
	got := tr.Neighbors("ab").Sorted()
	want := []string{"a", "aa", "aab", "aba", "abb", "b", "bab", "bb"}
	if !slices.Equal(got, want) {
		t.Errorf("Neighbors(ab) = %v, want %v", got, want)
	}
}

func TestNeighborsCounts(t *testing.T) {
	tests := []struct {
		name        string
		word        string
		possessives bool
		want        int
	}{
		// (n+1)·A - n distinct insertions, n deletions, n·(A-1) substitutions
		{"three letters", "cat", false, 101 + 3 + 75},
		{"three letters with possessive", "cat", true, 101 + 3 + 75 + 1},
		{"single letter", "a", false, 51 + 1 + 25},
		{"empty word", "", false, 26},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransformer(TransformerOptions{Alphabet: Lowercase, Possessives: tt.possessives})
			if got := tr.Neighbors(tt.word).Len(); got != tt.want {
				t.Errorf("len(Neighbors(%q)) = %d, want %d", tt.word, got, tt.want)
			}
		})
	}
}

func TestNeighborsPossessiveToggle(t *testing.T) {
	tr := NewTransformer(TransformerOptions{Possessives: true})

	got := tr.Neighbors("cat").Sorted()
	want := []string{"at", "ca", "cat's", "ct"}
	if !slices.Equal(got, want) {
		t.Errorf("Neighbors(cat) = %v, want %v", got, want)
	}

	got = tr.Neighbors("cat's").Sorted()
	want = []string{"at's", "ca's", "cat", "cat'", "cats", "ct's"}
	if !slices.Equal(got, want) {
		t.Errorf("Neighbors(cat's) = %v, want %v", got, want)
	}
}

func TestNeighborsExcludesSource(t *testing.T) {
	tr := NewTransformer(DefaultTransformerOptions())
	for _, w := range []string{"", "a", "cat", "cat's", "aaa"} {
		if tr.Neighbors(w).Has(w) {
			t.Errorf("Neighbors(%q) contains the word itself", w)
		}
	}
}

func TestNeighborsDuplicateAlphabet(t *testing.T) {
	tr := NewTransformer(TransformerOptions{Alphabet: "aab"})
	if got := tr.Alphabet(); got != "ab" {
		t.Errorf("Alphabet() = %q, want %q", got, "ab")
	}
}

func TestNeighborsDeterministic(t *testing.T) {
	tr := NewTransformer(DefaultTransformerOptions())
	a := tr.Neighbors("bore").Sorted()
	b := tr.Neighbors("bore").Sorted()
	if !slices.Equal(a, b) {
		t.Error("Neighbors should be deterministic")
	}
}

func TestDictionaryNeighbors(t *testing.T) {
	dict := NewDictionary("cat", "cut", "bat", "cute", "cat's")
	tr := NewTransformer(DefaultTransformerOptions())

	got := tr.DictionaryNeighbors(dict, "cat")
	want := []string{"bat", "cat's", "cut"}
	if !slices.Equal(got, want) {
		t.Errorf("DictionaryNeighbors(cat) = %v, want %v", got, want)
	}

	noPoss := NewTransformer(TransformerOptions{Alphabet: Lowercase})
	got = noPoss.DictionaryNeighbors(dict, "cat")
	want = []string{"bat", "cut"}
	if !slices.Equal(got, want) {
		t.Errorf("DictionaryNeighbors(cat) without possessives = %v, want %v", got, want)
	}
}

func TestDictionary(t *testing.T) {
	d := NewDictionary("b", "a", "b", "")
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
	if !slices.Equal(d.Words(), []string{"a", "b"}) {
		t.Errorf("Words() = %v", d.Words())
	}
	if d.Contains("") {
		t.Error("empty string should not be a dictionary word")
	}

	var nilDict *Dictionary
	if nilDict.Contains("a") || nilDict.Len() != 0 || nilDict.Words() != nil {
		t.Error("nil dictionary should behave as empty")
	}
}

func TestSampleWordsIsCopy(t *testing.T) {
	a := SampleWords()
	a[0] = "mutated"
	if SampleWords()[0] == "mutated" {
		t.Error("SampleWords should return a fresh slice")
	}
}
