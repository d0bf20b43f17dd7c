package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordladder/pkg/errors"
	"github.com/matzehuels/wordladder/pkg/ladder"
)

// Supported dictionary formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Formats lists the supported dictionary formats.
var Formats = []string{FormatText, FormatJSON, FormatTOML}

// FormatForPath infers a format from the file extension, defaulting to text.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

type wordsDoc struct {
	Words []string `json:"words" toml:"words"`
}

// ReadWords decodes a dictionary from r in the given format.
// ReadWords does not close r.
func ReadWords(r io.Reader, format string) (*ladder.Dictionary, error) {
	if err := errors.ValidateFormat(format, Formats); err != nil {
		return nil, err
	}

	var (
		words []string
		err   error
	)
	switch format {
	case FormatText:
		words, err = readText(r)
	case FormatJSON:
		words, err = readJSON(r)
	case FormatTOML:
		words, err = readTOML(r)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDictionary, err, "decode %s dictionary", format)
	}
	return ladder.NewDictionary(normalize(words)...), nil
}

// ImportWords reads the dictionary file at path.
func ImportWords(path string) (*ladder.Dictionary, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "dictionary %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadWords(f, FormatForPath(path))
}

func readText(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, sc.Err()
}

func readJSON(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var doc wordsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Words, nil
}

func readTOML(r io.Reader) ([]string, error) {
	var doc wordsDoc
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Words, nil
}

func normalize(words []string) []string {
	out := words[:0]
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}
