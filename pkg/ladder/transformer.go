package ladder

import (
	"slices"
	"strings"
)

// PossessiveSuffix is the marker toggled by possessive transformations.
const PossessiveSuffix = "'s"

// Lowercase is the default alphabet: the 26 lowercase ASCII letters.
const Lowercase = "abcdefghijklmnopqrstuvwxyz"

// TransformerOptions configures neighbor generation.
type TransformerOptions struct {
	// Alphabet lists the symbols used for insertions and substitutions.
	// Duplicate symbols are ignored. An empty alphabet leaves only deletions
	// and possessive toggles.
	Alphabet string

	// Possessives enables the 's toggle: append it when absent, strip it
	// when present.
	Possessives bool
}

// DefaultTransformerOptions returns the lowercase alphabet with possessives on.
func DefaultTransformerOptions() TransformerOptions {
	return TransformerOptions{Alphabet: Lowercase, Possessives: true}
}

// Transformer generates one-edit neighbors of a word. It never consults a
// dictionary; filtering is the caller's job.
type Transformer struct {
	alphabet    []rune
	possessives bool
}

// NewTransformer creates a Transformer from opts.
func NewTransformer(opts TransformerOptions) *Transformer {
	seen := make(map[rune]bool)
	var alphabet []rune
	for _, r := range opts.Alphabet {
		if seen[r] {
			continue
		}
		seen[r] = true
		alphabet = append(alphabet, r)
	}
	return &Transformer{alphabet: alphabet, possessives: opts.Possessives}
}

// Alphabet returns the symbols used for insertions and substitutions.
func (t *Transformer) Alphabet() string { return string(t.alphabet) }

// Possessives reports whether the possessive toggle is enabled.
func (t *Transformer) Possessives() bool { return t.possessives }

// Neighbors returns every word one edit away from word.
//
// For a word of n characters over an alphabet of size A the result holds up
// to (n+1)·A insertions, n deletions, up to n·A substitutions, and, with
// possessives enabled, exactly one toggle candidate. Duplicates collapse.
// The word itself is never part of the result, so substituting a character
// with itself does not produce a self-loop.
func (t *Transformer) Neighbors(word string) WordSet {
	runes := []rune(word)
	n := len(runes)
	out := make(WordSet, (2*n+1)*len(t.alphabet)+n+1)

	if t.possessives {
		if strings.HasSuffix(word, PossessiveSuffix) {
			out.Add(strings.TrimSuffix(word, PossessiveSuffix))
		} else {
			out.Add(word + PossessiveSuffix)
		}
	}

	buf := make([]rune, 0, n+1)

	// insertions
	for pos := 0; pos <= n; pos++ {
		for _, r := range t.alphabet {
			buf = append(buf[:0], runes[:pos]...)
			buf = append(buf, r)
			buf = append(buf, runes[pos:]...)
			out.Add(string(buf))
		}
	}

	// deletions
	for pos := 0; pos < n; pos++ {
		buf = append(buf[:0], runes[:pos]...)
		buf = append(buf, runes[pos+1:]...)
		out.Add(string(buf))
	}

	// substitutions
	for pos := 0; pos < n; pos++ {
		for _, r := range t.alphabet {
			if r == runes[pos] {
				continue
			}
			buf = append(buf[:0], runes...)
			buf[pos] = r
			out.Add(string(buf))
		}
	}

	delete(out, word)
	return out
}

// DictionaryNeighbors returns the neighbors of word that are dictionary words,
// in lexicographic order.
func (t *Transformer) DictionaryNeighbors(dict *Dictionary, word string) []string {
	var out []string
	for w := range t.Neighbors(word) {
		if dict.Contains(w) {
			out = append(out, w)
		}
	}
	slices.Sort(out)
	return out
}
