// Package rules is the substitution engine: a read-only [Catalog] of named
// replacement rules, the sequential mapping applier [Apply], and the
// [Engine] that turns a word into labeled suggestions.
//
// The engine knows four rule kinds (voicing, fronting, gliding, stopping)
// and always evaluates them in that order against the original word,
// followed by the fixed final-consonant-deletion heuristic. A kind missing
// from the catalog is skipped; [Catalog.Missing] reports which ones are
// absent so callers can surface it at load time.
package rules
