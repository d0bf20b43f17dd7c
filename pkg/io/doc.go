// Package io reads and writes word-ladder dictionaries.
//
// Three formats are supported, picked by file extension in [ImportWords] and
// [ExportWords] or named explicitly in [ReadWords] and [WriteWords]:
//
//   - text (.txt, .dic, no extension): one word per line; blank lines and
//     lines starting with # are ignored
//   - json (.json): an array of strings, or an object {"words": [...]}
//   - toml (.toml): a top-level array words = [...]
//
// Every word is trimmed and lowercased on import, and duplicates collapse
// because the result is a [ladder.Dictionary]. Export always writes words in
// sorted order so the output round-trips byte for byte.
package io
