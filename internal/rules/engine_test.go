package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/phonesub/internal/phoneme"
)

func mustEngine(t *testing.T, rules ...phoneme.ReplacementRule) *Engine {
	t.Helper()
	c, err := Build(rules)
	require.NoError(t, err)
	return NewEngine(c)
}

func TestReplacements(t *testing.T) {
	full := []phoneme.ReplacementRule{
		rule("VoicingSubstitution", "p", "b", "t", "d", "k", "g"),
		rule("FrontingSubstitution", "k", "t", "g", "d"),
		rule("GlidingSubstitution", "r", "w", "l", "w"),
		rule("StoppingSubstitution", "s", "t", "f", "p"),
	}

	tests := []struct {
		name  string
		rules []phoneme.ReplacementRule
		word  string
		want  []string
	}{
		{
			name: "empty word",
			word: "",
			want: []string{},
		},
		{
			name:  "empty word with rules",
			rules: full,
			word:  "",
			want:  []string{},
		},
		{
			name: "no rules, vowel ending",
			word: "see",
			want: []string{NoReplacements},
		},
		{
			name: "no rules, consonant ending",
			word: "dog",
			want: []string{"Final deletion: do"},
		},
		{
			name: "single character",
			word: "a",
			want: []string{NoReplacements},
		},
		{
			name: "single consonant",
			word: "b",
			want: []string{NoReplacements},
		},
		{
			name:  "voicing",
			rules: []phoneme.ReplacementRule{rule("VoicingSubstitution", "p", "b")},
			word:  "pa",
			want:  []string{"Voicing: ba"},
		},
		{
			name:  "unchanged output adds nothing",
			rules: []phoneme.ReplacementRule{rule("VoicingSubstitution", "z", "s")},
			word:  "pat",
			want:  []string{"Final deletion: pa"},
		},
		{
			name: "end to end",
			rules: []phoneme.ReplacementRule{
				rule("VoicingSubstitution", "p", "b"),
				rule("StoppingSubstitution", "s", "t"),
			},
			word: "pats",
			want: []string{"Voicing: bats", "Stopping: patt", "Final deletion: pat"},
		},
		{
			name: "each rule sees the original word",
			rules: []phoneme.ReplacementRule{
				rule("VoicingSubstitution", "k", "g"),
				rule("FrontingSubstitution", "k", "t", "g", "d"),
			},
			word: "kee",
			want: []string{"Voicing: gee", "Fronting: tee"},
		},
		{
			name:  "order follows kinds not load order",
			rules: []phoneme.ReplacementRule{full[3], full[2], full[1], full[0]},
			word:  "cake",
			want:  []string{"Voicing: cage", "Fronting: cate"},
		},
		{
			name:  "all kinds",
			rules: full,
			word:  "pork",
			want: []string{
				"Voicing: borg",
				"Fronting: port",
				"Gliding: powk",
				"Final deletion: por",
			},
		},
		{
			name:  "rule without mapping skipped",
			rules: []phoneme.ReplacementRule{{Name: "GlidingSubstitution", Pattern: "[rl]"}},
			word:  "rue",
			want:  []string{NoReplacements},
		},
		{
			name:  "unknown rule names ignored",
			rules: []phoneme.ReplacementRule{rule("Metathesis", "sk", "ks")},
			word:  "ask",
			want:  []string{"Final deletion: as"},
		},
		{
			name: "upper-case consonant not matched",
			word: "DOG",
			want: []string{NoReplacements},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEngine(t, tt.rules...)
			got := e.Replacements(tt.word)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Replacements(%q) mismatch (-want +got):\n%s", tt.word, diff)
			}
		})
	}
}

func TestReplacements_EmptyWordNotNil(t *testing.T) {
	got := NewEngine(nil).Replacements("")
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestReplacements_NoRuleDataNoConsonant(t *testing.T) {
	e := NewEngine(NewEmpty())
	for _, w := range []string{"a", "see", "tree", "go", "you", "x", "piano"} {
		if diff := cmp.Diff([]string{NoReplacements}, e.Replacements(w)); diff != "" {
			t.Errorf("Replacements(%q) mismatch (-want +got):\n%s", w, diff)
		}
	}
}

func TestSuggestions(t *testing.T) {
	e := mustEngine(t, rule("GlidingSubstitution", "r", "w"))
	got := e.Suggestions("rat")
	want := []Suggestion{
		{Label: "Gliding", Word: "wat"},
		{Label: FinalDeletionLabel, Word: "ra"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Suggestions mismatch (-want +got):\n%s", diff)
	}
	if e.Suggestions("") != nil {
		t.Errorf("Suggestions(\"\") should be nil")
	}
	if len(e.Suggestions("oo")) != 0 {
		t.Errorf("Suggestions(\"oo\") should be empty")
	}
}

func TestFinalConsonantDeletion(t *testing.T) {
	tests := []struct {
		word   string
		want   string
		wantOK bool
	}{
		{"cat", "ca", true},
		{"dogs", "dog", true},
		{"ax", "a", true},
		{"a", "", false},
		{"t", "", false},
		{"", "", false},
		{"see", "", false},
		{"day", "", false},
		{"caT", "", false},
		{"café", "", false},
		{"señor", "seño", true},
		{"a\xffbt", "a\xffb", true},
		{"\xfft", "\xff", true},
		{"ab\xff", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := FinalConsonantDeletion(tt.word)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FinalConsonantDeletion(%q) = (%q, %v), want (%q, %v)", tt.word, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestEngine_EveryConsonantEndingDeletes(t *testing.T) {
	e := NewEngine(nil)
	for _, c := range finalConsonants {
		w := "o" + string(c)
		want := []string{"Final deletion: o"}
		if diff := cmp.Diff(want, e.Replacements(w)); diff != "" {
			t.Errorf("Replacements(%q) mismatch (-want +got):\n%s", w, diff)
		}
	}
}

func TestFormat(t *testing.T) {
	if diff := cmp.Diff([]string{NoReplacements}, Format(nil)); diff != "" {
		t.Errorf("Format(nil) mismatch (-want +got):\n%s", diff)
	}
	got := Format([]Suggestion{{Label: "Stopping", Word: "tun"}})
	if diff := cmp.Diff([]string{"Stopping: tun"}, got); diff != "" {
		t.Errorf("Format mismatch (-want +got):\n%s", diff)
	}
}
