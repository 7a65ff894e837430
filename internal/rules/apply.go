package rules

import (
	"strings"

	"github.com/backmassage/phonesub/internal/phoneme"
)

// Apply runs the mapping over word one pair at a time: each pair replaces
// every non-overlapping occurrence of From in the current result, so later
// pairs see the output of earlier ones. Pairs with an empty From are skipped.
func Apply(word string, m phoneme.Mapping) string {
	out := word
	for _, p := range m {
		if p.From == "" {
			continue
		}
		out = strings.ReplaceAll(out, p.From, p.To)
	}
	return out
}
