package data

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/phonesub/internal/phoneme"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad_EmbeddedDefaults(t *testing.T) {
	ds, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, ds.Phonemes)
	require.Len(t, ds.Rules, 4)

	names := make([]string, 0, len(ds.Rules))
	for _, r := range ds.Rules {
		names = append(names, r.Name)
		assert.True(t, r.HasMapping(), "rule %s has no mapping", r.Name)
		assert.NotEmpty(t, r.Examples, "rule %s has no examples", r.Name)
	}
	assert.Equal(t, []string{
		"VoicingSubstitution",
		"FrontingSubstitution",
		"GlidingSubstitution",
		"StoppingSubstitution",
	}, names)

	// Multi-letter keys come first so "sh" is not split by "s".
	stopping := ds.Rules[3].Mapping
	assert.Equal(t, phoneme.Pair{From: "sh", To: "t"}, stopping[0])
}

func TestLoad_MissingFilesYieldEmpty(t *testing.T) {
	ds, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, ds.Phonemes)
	assert.Empty(t, ds.Rules)
	assert.Equal(t, "", ds.PhonemesSource)
	assert.Equal(t, "", ds.RulesSource)
}

func TestLoad_JSONDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "phonemes.json", `{"phonemes":[{"symbol":"k","description":"velar","examples":["cat"],"replacements":["t"]}]}`)
	writeFile(t, dir, "replacement_rules.json", `{"replacementRules":[{"name":"FrontingSubstitution","description":"","mapping":{"k":"t","g":"d"}}]}`)

	ds, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, ds.Phonemes, 1)
	assert.Equal(t, phoneme.Phoneme{Symbol: "k", Description: "velar", Examples: []string{"cat"}, Replacements: []string{"t"}}, ds.Phonemes[0])
	require.Len(t, ds.Rules, 1)
	assert.Equal(t, phoneme.Mapping{{From: "k", To: "t"}, {From: "g", To: "d"}}, ds.Rules[0].Mapping)
	assert.Equal(t, "phonemes.json", ds.PhonemesSource)
	assert.Equal(t, "replacement_rules.json", ds.RulesSource)
}

func TestLoad_YAMLDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "replacement_rules.yaml", `
replacementRules:
  - name: GlidingSubstitution
    description: liquids to glides
    mapping:
      r: w
      l: w
    examples:
      - input: red
        output: wed
`)
	ds, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, ds.Phonemes)
	require.Len(t, ds.Rules, 1)
	r := ds.Rules[0]
	assert.Equal(t, "GlidingSubstitution", r.Name)
	assert.Equal(t, phoneme.Mapping{{From: "r", To: "w"}, {From: "l", To: "w"}}, r.Mapping)
	assert.Equal(t, []phoneme.Example{{Input: "red", Output: "wed"}}, r.Examples)
	assert.Equal(t, "replacement_rules.yaml", ds.RulesSource)
}

func TestLoadFS_JSONPreferredOverYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"d/replacement_rules.json": {Data: []byte(`{"replacementRules":[{"name":"FromJSON"}]}`)},
		"d/replacement_rules.yml":  {Data: []byte("replacementRules:\n  - name: FromYAML\n")},
	}
	ds, err := LoadFS(fsys, "d")
	require.NoError(t, err)
	require.Len(t, ds.Rules, 1)
	assert.Equal(t, "FromJSON", ds.Rules[0].Name)
}

func TestLoad_MalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad json", "phonemes.json", `{"phonemes": [`},
		{"wrong shape", "replacement_rules.json", `{"replacementRules": {"name": "x"}}`},
		{"duplicate mapping key", "replacement_rules.json", `{"replacementRules":[{"name":"X","mapping":{"p":"b","p":"d"}}]}`},
		{"bad yaml", "replacement_rules.yaml", "replacementRules: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.content)
			_, err := Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.file)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "phonemes.json", "  \n")
	ds, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, ds.Phonemes)
}
