package phoneme

// Phoneme describes a single speech sound. It is display data only.
type Phoneme struct {
	Symbol       string   `json:"symbol" yaml:"symbol"`
	Description  string   `json:"description" yaml:"description"`
	Examples     []string `json:"examples" yaml:"examples"`
	Replacements []string `json:"replacements" yaml:"replacements"`
}

// Example documents one expected rule application.
type Example struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// ReplacementRule is a named substitution pattern (e.g. "VoicingSubstitution").
// Pattern is carried for documentation and is not interpreted by the engine.
// A rule without a Mapping contributes nothing to substitution output.
type ReplacementRule struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Pattern     string    `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Mapping     Mapping   `json:"mapping,omitempty" yaml:"mapping,omitempty"`
	Examples    []Example `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// HasMapping reports whether the rule carries at least one substitution pair.
func (r ReplacementRule) HasMapping() bool { return !r.Mapping.Empty() }

// PhonemeData is the top-level document of phonemes.json.
type PhonemeData struct {
	Phonemes []Phoneme `json:"phonemes" yaml:"phonemes"`
}

// RuleData is the top-level document of replacement_rules.json.
type RuleData struct {
	ReplacementRules []ReplacementRule `json:"replacementRules" yaml:"replacementRules"`
}
