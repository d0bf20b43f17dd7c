package errors

import (
	"strings"
	"unicode"
)

// MaxWordLength bounds word length at the input boundary. Neighbor
// generation is linear in word length, but an unbounded word from an HTTP
// query string is still not something the engine should be asked to expand.
const MaxWordLength = 64

// possessiveSuffix mirrors ladder.PossessiveSuffix; the errors package sits
// below ladder in the import graph and cannot import it.
const possessiveSuffix = "'s"

// ValidateWord checks that word is non-empty and spelled with symbols from
// alphabet, optionally followed by the possessive suffix. The suffix is part
// of the word whether or not possessive toggling is enabled. An empty
// alphabet accepts any non-control characters.
func ValidateWord(word, alphabet string) error {
	if word == "" {
		return New(ErrCodeInvalidWord, "word cannot be empty")
	}
	if len(word) > MaxWordLength {
		return New(ErrCodeInvalidWord, "word too long (max %d characters)", MaxWordLength)
	}

	stem := strings.TrimSuffix(word, possessiveSuffix)
	if stem == "" {
		return New(ErrCodeInvalidWord, "word %q has no letters before the possessive suffix", word)
	}

	for _, r := range stem {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidWord, "word %q contains whitespace or control characters", word)
		}
		if alphabet != "" && !strings.ContainsRune(alphabet, r) {
			return New(ErrCodeInvalidWord, "word %q contains %q, which is outside the alphabet", word, r)
		}
	}
	return nil
}

// ValidateDepth checks that a search depth is non-negative and at most max.
// A max <= 0 disables the upper bound.
func ValidateDepth(depth, max int) error {
	if depth < 0 {
		return New(ErrCodeInvalidDepth, "depth must be >= 0, got %d", depth)
	}
	if max > 0 && depth > max {
		return New(ErrCodeInvalidDepth, "depth %d exceeds the maximum of %d", depth, max)
	}
	return nil
}

// ValidateAlphabet checks that an alphabet has no whitespace or control
// characters and does not include the apostrophe used by the possessive
// suffix.
func ValidateAlphabet(alphabet string) error {
	for _, r := range alphabet {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidConfig, "alphabet contains whitespace or control characters")
		}
		if r == '\'' {
			return New(ErrCodeInvalidConfig, "alphabet cannot contain the possessive apostrophe")
		}
	}
	return nil
}

// ValidatePath validates a file path given on the command line or in a
// config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateFormat checks that format is one of valid.
func ValidateFormat(format string, valid []string) error {
	for _, v := range valid {
		if format == v {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format %q (valid: %s)", format, strings.Join(valid, ", "))
}
