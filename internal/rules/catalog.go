package rules

import (
	"github.com/pkg/errors"

	"github.com/backmassage/phonesub/internal/phoneme"
)

// Sentinel errors returned by Build. Use errors.Is to test for them.
var (
	ErrDuplicateRule = errors.New("duplicate rule name")
	ErrEmptyPattern  = errors.New("empty mapping key")
	ErrUnnamedRule   = errors.New("rule has no name")
)

// Catalog is an immutable name-indexed set of replacement rules.
// It is safe for concurrent readers.
type Catalog struct {
	rules  []phoneme.ReplacementRule
	byName map[string]int
}

// NewEmpty returns a catalog with no rules. Every known kind is missing.
func NewEmpty() *Catalog {
	return &Catalog{byName: map[string]int{}}
}

// Build indexes rules by exact name. Duplicate names, unnamed rules and
// mapping pairs with an empty key are rejected; all other mapping contents
// are accepted as-is. The input slice is copied.
func Build(rules []phoneme.ReplacementRule) (*Catalog, error) {
	c := &Catalog{
		rules:  make([]phoneme.ReplacementRule, 0, len(rules)),
		byName: make(map[string]int, len(rules)),
	}
	for i, r := range rules {
		if r.Name == "" {
			return nil, errors.Wrapf(ErrUnnamedRule, "rule #%d", i+1)
		}
		if _, dup := c.byName[r.Name]; dup {
			return nil, errors.Wrapf(ErrDuplicateRule, "%q", r.Name)
		}
		for _, p := range r.Mapping {
			if p.From == "" {
				return nil, errors.Wrapf(ErrEmptyPattern, "rule %q (→%q)", r.Name, p.To)
			}
		}
		r.Mapping = append(phoneme.Mapping(nil), r.Mapping...)
		r.Examples = append([]phoneme.Example(nil), r.Examples...)
		c.byName[r.Name] = len(c.rules)
		c.rules = append(c.rules, r)
	}
	return c, nil
}

// Lookup returns the rule with the given name. A missing rule is not an error.
func (c *Catalog) Lookup(name string) (phoneme.ReplacementRule, bool) {
	i, ok := c.byName[name]
	if !ok {
		return phoneme.ReplacementRule{}, false
	}
	return c.rules[i], true
}

// Rule returns the rule for a known kind.
func (c *Catalog) Rule(k Kind) (phoneme.ReplacementRule, bool) {
	return c.Lookup(k.RuleName())
}

// Missing lists the known kinds that have no rule in the catalog.
func (c *Catalog) Missing() []Kind {
	var out []Kind
	for _, k := range Kinds() {
		if _, ok := c.Rule(k); !ok {
			out = append(out, k)
		}
	}
	return out
}

// Rules returns the rules in load order. The slice is a copy.
func (c *Catalog) Rules() []phoneme.ReplacementRule {
	return append([]phoneme.ReplacementRule(nil), c.rules...)
}

// Len returns the number of rules.
func (c *Catalog) Len() int { return len(c.rules) }
