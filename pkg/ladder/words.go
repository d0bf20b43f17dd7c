package ladder

import (
	"maps"
	"slices"
	"strings"
)

// WordSet is an unordered set of words.
type WordSet map[string]struct{}

// NewWordSet returns a set holding the given words.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Add inserts w into the set.
func (s WordSet) Add(w string) { s[w] = struct{}{} }

// Has reports whether w is in the set.
func (s WordSet) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// Len returns the number of words in the set.
func (s WordSet) Len() int { return len(s) }

// Sorted returns the words in lexicographic order.
func (s WordSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Dictionary is the fixed set of words that may appear as graph nodes.
//
// A Dictionary is immutable once built; every component in this package
// receives it explicitly at construction time.
type Dictionary struct {
	words WordSet
}

// NewDictionary builds a dictionary from words. Duplicates collapse and empty
// strings are dropped. Words are stored as given; callers that need
// normalization (trimming, lowercasing) do it before construction.
func NewDictionary(words ...string) *Dictionary {
	set := make(WordSet, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		set.Add(w)
	}
	return &Dictionary{words: set}
}

// Contains reports whether w is a dictionary word.
func (d *Dictionary) Contains(w string) bool {
	if d == nil {
		return false
	}
	return d.words.Has(w)
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Words returns all words in lexicographic order. The slice is a fresh copy.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	return d.words.Sorted()
}

// Fingerprint returns a stable string describing the dictionary contents,
// suitable for hashing into cache keys.
func (d *Dictionary) Fingerprint() string {
	return strings.Join(d.Words(), "\n")
}

// SampleWords returns the demonstration word list: short words around
// "cat" and "care" plus a few bridge words linking the two clusters.
func SampleWords() []string {
	return []string{
		"cat", "bat", "bat's", "beat", "boat", "cat's", "chat", "coat", "cut", "curt", "cute",
		"cart", "care", "core", "bore", "bone", "bare", "cars", "arts", "part",
		"carts", "parts",
	}
}
