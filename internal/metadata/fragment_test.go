package metadata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFragmentScalars(t *testing.T) {
	g := NewGenerator(nil)

	tests := []struct {
		name string
		in   string
		key  string
		want any
	}{
		{"string", "colorlinks: maybe", "colorlinks", "maybe"},
		{"true", "colorlinks: true", "colorlinks", true},
		{"false", "draft: false", "draft", false},
		{"null word", "csl: null", "csl", nil},
		{"tilde", "csl: ~", "csl", nil},
		{"empty value", "csl:", "csl", nil},
		{"integer", "toc-depth: 3", "toc-depth", 3},
		{"float", "linestretch: 1.25", "linestretch", 1.25},
		{"quoted string unquoted", `subject: "a: b"`, "subject", "a: b"},
		{"quoted keeps type", `flag: "true"`, "flag", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := g.parseFragment(tt.in)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.key, entries[0].key)
			assert.Equal(t, tt.want, entries[0].value)
		})
	}
}

func TestParseFragmentSkipsNoise(t *testing.T) {
	g := NewGenerator(nil)

	fragment := strings.Join([]string{
		"---",
		"# a comment",
		"",
		"linkcolor: blue",
		"...",
	}, "\n")

	entries := g.parseFragment(fragment)
	require.Len(t, entries, 1)
	assert.Equal(t, "linkcolor", entries[0].key)
}

func TestParseFragmentBadLineDoesNotPoisonRest(t *testing.T) {
	g := NewGenerator(nil)

	fragment := strings.Join([]string{
		"good: 1",
		"not a kv pair",
		"also-good: yes please",
	}, "\n")

	entries := g.parseFragment(fragment)
	require.Len(t, entries, 2)
	assert.Equal(t, "good", entries[0].key)
	assert.Equal(t, "also-good", entries[1].key)
}

func TestMergeFragmentNeverFatal(t *testing.T) {
	cfg := defaultConfig()
	cfg.CustomYAML = "][ not yaml at all }{"

	assert.NotPanics(t, func() {
		out := NewGenerator(nil).Generate(cfg, nil)
		assert.Contains(t, out, "documentclass: book\n")
	})
}

func TestMergeFragmentMixedGoodAndBad(t *testing.T) {
	cfg := defaultConfig()
	cfg.CustomYAML = "not a kv pair\nlinkcolor: blue\n"

	out := NewGenerator(nil).Generate(cfg, nil)
	assert.Contains(t, out, "linkcolor: blue\n")
	assert.NotContains(t, out, "not a kv pair")
}
