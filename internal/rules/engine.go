package rules

import (
	"strings"
	"unicode/utf8"
)

const (
	// FinalDeletionLabel labels the final-consonant-deletion suggestion.
	FinalDeletionLabel = "Final deletion"
	// NoReplacements is returned alone when a non-empty word yields nothing.
	NoReplacements = "No common replacements found"
)

// finalConsonants is matched case-sensitively; callers lower-case input.
const finalConsonants = "bcdfghjklmnpqrstvwxz"

// Suggestion is one labeled transformed word.
type Suggestion struct {
	Label string
	Word  string
}

func (s Suggestion) String() string { return s.Label + ": " + s.Word }

// Engine produces replacement suggestions from a catalog. It holds no
// mutable state and may be shared.
type Engine struct {
	catalog *Catalog
}

// NewEngine returns an engine over c. A nil catalog behaves as empty.
func NewEngine(c *Catalog) *Engine {
	if c == nil {
		c = NewEmpty()
	}
	return &Engine{catalog: c}
}

// Suggestions applies every known kind to word, in kind order, and then the
// final-consonant-deletion heuristic. Each kind sees the original word.
// A kind contributes only when its output differs from word.
func (e *Engine) Suggestions(word string) []Suggestion {
	var out []Suggestion
	if word == "" {
		return out
	}
	for _, k := range Kinds() {
		r, ok := e.catalog.Rule(k)
		if !ok || !r.HasMapping() {
			continue
		}
		if w := Apply(word, r.Mapping); w != word {
			out = append(out, Suggestion{Label: k.Label(), Word: w})
		}
	}
	if w, ok := FinalConsonantDeletion(word); ok {
		out = append(out, Suggestion{Label: FinalDeletionLabel, Word: w})
	}
	return out
}

// Replacements returns the formatted suggestions for word. An empty word
// gives an empty slice; a word with no suggestions gives [NoReplacements].
func (e *Engine) Replacements(word string) []string {
	if word == "" {
		return []string{}
	}
	return Format(e.Suggestions(word))
}

// Format renders suggestions as "Label: word" lines, or [NoReplacements]
// when there are none.
func Format(sugg []Suggestion) []string {
	if len(sugg) == 0 {
		return []string{NoReplacements}
	}
	out := make([]string, len(sugg))
	for i, s := range sugg {
		out[i] = s.String()
	}
	return out
}

// FinalConsonantDeletion drops the last character of word when word has
// more than one character and ends in a consonant. The kept prefix is the
// original bytes of word.
func FinalConsonantDeletion(word string) (string, bool) {
	if utf8.RuneCountInString(word) <= 1 {
		return "", false
	}
	last, size := utf8.DecodeLastRuneInString(word)
	if !strings.ContainsRune(finalConsonants, last) {
		return "", false
	}
	return word[:len(word)-size], true
}
