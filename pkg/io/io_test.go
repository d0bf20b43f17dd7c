package io

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/wordladder/pkg/errors"
	"github.com/matzehuels/wordladder/pkg/ladder"
)

func TestReadWords(t *testing.T) {
	want := []string{"bone", "cart", "care"}
	tests := []struct {
		name   string
		format string
		input  string
	}{
		{"text", FormatText, "# sample\ncart\n\n  Care \nbone\ncart\n"},
		{"json array", FormatJSON, `["cart", "CARE", "bone", ""]`},
		{"json object", FormatJSON, `{"words": ["cart", "care", "bone"]}`},
		{"toml", FormatTOML, "words = [\"cart\", \"care\", \"bone\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict, err := ReadWords(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("ReadWords: %v", err)
			}
			if got := dict.Words(); !reflect.DeepEqual(got, want) {
				t.Errorf("Words() = %v, want %v", got, want)
			}
		})
	}
}

func TestReadWordsErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		input  string
		code   errors.Code
	}{
		{"unknown format", "yaml", "", errors.ErrCodeInvalidFormat},
		{"bad json", FormatJSON, `{"words": [1, 2]}`, errors.ErrCodeInvalidDictionary},
		{"bad toml", FormatTOML, `words = `, errors.ErrCodeInvalidDictionary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadWords(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestWriteWordsRoundTrip(t *testing.T) {
	dict := ladder.NewDictionary(ladder.SampleWords()...)
	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteWords(dict, &buf, format); err != nil {
				t.Fatalf("WriteWords: %v", err)
			}
			back, err := ReadWords(&buf, format)
			if err != nil {
				t.Fatalf("ReadWords: %v", err)
			}
			if !reflect.DeepEqual(back.Words(), dict.Words()) {
				t.Errorf("round trip mismatch: %v", back.Words())
			}
		})
	}
}

func TestWriteWordsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWords(ladder.NewDictionary(), &buf, FormatJSON); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"words": []`) {
		t.Errorf("empty dictionary should encode an empty array: %s", buf.String())
	}
}

func TestImportExportWords(t *testing.T) {
	dir := t.TempDir()
	dict := ladder.NewDictionary("cat", "cot", "dog")

	for _, name := range []string{"words.txt", "words.json", "words.toml"} {
		path := filepath.Join(dir, name)
		if err := ExportWords(dict, path); err != nil {
			t.Fatalf("ExportWords(%s): %v", name, err)
		}
		got, err := ImportWords(path)
		if err != nil {
			t.Fatalf("ImportWords(%s): %v", name, err)
		}
		if !reflect.DeepEqual(got.Words(), dict.Words()) {
			t.Errorf("%s: got %v", name, got.Words())
		}
	}
}

func TestImportWordsMissing(t *testing.T) {
	_, err := ImportWords(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v", err)
	}
	if _, statErr := os.Stat("missing.txt"); statErr == nil {
		t.Error("ImportWords should not create files")
	}
}

func TestFormatForPath(t *testing.T) {
	tests := map[string]string{
		"words":          FormatText,
		"words.txt":      FormatText,
		"words.JSON":     FormatJSON,
		"dir/words.toml": FormatTOML,
	}
	for path, want := range tests {
		if got := FormatForPath(path); got != want {
			t.Errorf("FormatForPath(%q) = %q, want %q", path, got, want)
		}
	}
}
