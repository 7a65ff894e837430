// Package check provides the --check diagnostics: which known rule kinds
// are loaded, and whether every documented rule example is reproduced by
// the mapping applier.
package check

import (
	"github.com/backmassage/phonesub/internal/phoneme"
	"github.com/backmassage/phonesub/internal/rules"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// ExampleFailure is a documented example the rule's mapping does not reproduce.
type ExampleFailure struct {
	Rule    string
	Example phoneme.Example
	Got     string
}

// VerifyExamples applies the rule's mapping to each documented input and
// returns the examples whose output differs. A rule without a mapping
// cannot reproduce anything, so all of its examples fail.
func VerifyExamples(r phoneme.ReplacementRule) []ExampleFailure {
	var out []ExampleFailure
	for _, ex := range r.Examples {
		got := rules.Apply(ex.Input, r.Mapping)
		if got != ex.Output {
			out = append(out, ExampleFailure{Rule: r.Name, Example: ex, Got: got})
		}
	}
	return out
}

// RunCheck reports catalog coverage and verifies all documented examples.
// It returns false when any example fails; missing kinds and rules with
// unknown names only warn.
func RunCheck(cat *rules.Catalog, verbose bool, log Logger) bool {
	log.Info("=== Rule Check ===")

	checkKinds(cat, log)

	ok := true
	total := 0
	for _, r := range cat.Rules() {
		if _, known := rules.KindFromName(r.Name); !known {
			log.Warn("%s: not a known rule kind, never used for suggestions", r.Name)
		}
		total += len(r.Examples)
		failures := VerifyExamples(r)
		for _, f := range failures {
			log.Error("%s: %q → %q, documented %q", f.Rule, f.Example.Input, f.Got, f.Example.Output)
		}
		if len(failures) > 0 {
			ok = false
			continue
		}
		if len(r.Examples) == 0 {
			log.Debug(verbose, "%s: no documented examples", r.Name)
			continue
		}
		log.Success("%s: %d example(s) pass", r.Name, len(r.Examples))
	}

	if total == 0 {
		log.Warn("No documented examples to verify")
	}
	return ok
}

// checkKinds logs which known kinds are present and which are absent.
func checkKinds(cat *rules.Catalog, log Logger) {
	missing := make(map[rules.Kind]bool)
	for _, k := range cat.Missing() {
		missing[k] = true
	}
	for _, k := range rules.Kinds() {
		if missing[k] {
			log.Warn("%s: not loaded, %s suggestions disabled", k.RuleName(), k)
			continue
		}
		log.Info("%s: loaded", k.RuleName())
	}
}
