// Package data loads the phoneme and replacement-rule documents that seed
// the rule catalog. Files are looked up in a data directory as JSON
// (phonemes.json, replacement_rules.json) or YAML (.yaml, .yml); when no
// directory is given the defaults embedded in the binary are used.
//
// A missing file is not an error and yields an empty collection. A file
// that exists but cannot be decoded is reported with its path.
package data
