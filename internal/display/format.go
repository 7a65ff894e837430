// Package display renders phonemes, rules and replacement suggestions for
// the terminal. Functions write to an io.Writer and hold no state.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/phonesub/internal/phoneme"
	"github.com/backmassage/phonesub/internal/term"
)

// FormatPhonemes writes the phoneme list:
//
//	Available Phonemes:
//	-------------------
//	  [k] Voiceless velar stop
//	      Examples: cat, baker
//	      Possible replacements: t, g
//
// The replacements line is omitted when a phoneme has none.
func FormatPhonemes(w io.Writer, phonemes []phoneme.Phoneme) {
	fmt.Fprintln(w, "Available Phonemes:")
	fmt.Fprintln(w, "-------------------")
	for _, p := range phonemes {
		fmt.Fprintf(w, "  [%s] %s\n", term.Cyan.Sprint(p.Symbol), p.Description)
		fmt.Fprintf(w, "      Examples: %s\n", strings.Join(p.Examples, ", "))
		if len(p.Replacements) > 0 {
			fmt.Fprintf(w, "      Possible replacements: %s\n", strings.Join(p.Replacements, ", "))
		}
	}
}

// FormatRules writes each rule with its mapping and documented examples.
func FormatRules(w io.Writer, rules []phoneme.ReplacementRule) {
	fmt.Fprintln(w, "Replacement Rules:")
	fmt.Fprintln(w, "------------------")
	if len(rules) == 0 {
		fmt.Fprintln(w, "  (none loaded)")
		return
	}
	for _, r := range rules {
		fmt.Fprintf(w, "  %s", term.Cyan.Sprint(r.Name))
		if r.Description != "" {
			fmt.Fprintf(w, " - %s", r.Description)
		}
		fmt.Fprintln(w)
		if r.Pattern != "" {
			fmt.Fprintf(w, "      Pattern: %s\n", r.Pattern)
		}
		if r.HasMapping() {
			fmt.Fprintf(w, "      Mapping: %s\n", r.Mapping)
		} else {
			fmt.Fprintln(w, "      Mapping: (none)")
		}
		for _, ex := range r.Examples {
			fmt.Fprintf(w, "      Example: %s → %s\n", ex.Input, ex.Output)
		}
	}
}

// FormatReplacements writes the suggestions for one word.
func FormatReplacements(w io.Writer, word string, replacements []string) {
	fmt.Fprintf(w, "Possible replacements for '%s':\n", word)
	for _, r := range replacements {
		fmt.Fprintf(w, "  - %s\n", r)
	}
}
