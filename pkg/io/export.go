package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordladder/pkg/errors"
	"github.com/matzehuels/wordladder/pkg/ladder"
)

// WriteWords encodes dict to w in the given format, words sorted.
func WriteWords(dict *ladder.Dictionary, w io.Writer, format string) error {
	if err := errors.ValidateFormat(format, Formats); err != nil {
		return err
	}
	words := dict.Words()
	if words == nil {
		words = []string{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(wordsDoc{Words: words}); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(wordsDoc{Words: words}); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	default:
		bw := bufio.NewWriter(w)
		for _, word := range words {
			bw.WriteString(word)
			bw.WriteByte('\n')
		}
		return bw.Flush()
	}
	return nil
}

// ExportWords writes dict to path, choosing the format from its extension.
func ExportWords(dict *ladder.Dictionary, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteWords(dict, f, FormatForPath(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
