package metadata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSection(t *testing.T) {
	cfg := defaultConfig()
	g := NewGenerator(nil)

	tests := []struct {
		section  string
		contains string
	}{
		{SectionDocument, "documentclass: book"},
		{SectionGeometry, "- paperwidth=5.5in"},
		{SectionTypography, "fontsize: 11pt"},
		{SectionTOC, "toc: true"},
		{SectionNumbering, "secnumdepth: 0"},
		{SectionHighlight, "highlight-style: pygments"},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			out := g.GenerateSection(cfg, tt.section)
			assert.Contains(t, out, tt.contains)
			// Section previews carry no block delimiters.
			assert.NotContains(t, out, "---")
		})
	}
}

func TestGenerateSectionUnknownName(t *testing.T) {
	assert.Equal(t, "", NewGenerator(nil).GenerateSection(defaultConfig(), "no-such-section"))
}

func TestGenerateSectionIgnoresOverrideAndFragment(t *testing.T) {
	cfg := defaultConfig()
	cfg.ExpertMode.YAMLOverride = true
	cfg.ExpertMode.CustomYAML = "hand: written"
	cfg.CustomYAML = "merged: key"

	out := NewGenerator(nil).GenerateSection(cfg, SectionDocument)
	assert.Contains(t, out, "documentclass: book")
	assert.NotContains(t, out, "hand")
	assert.NotContains(t, out, "merged")
}

func TestSectionNamesStable(t *testing.T) {
	names := SectionNames()
	assert.Equal(t, []string{
		SectionDocument, SectionFrontMatter, SectionGeometry, SectionHighlight,
		SectionNumbering, SectionTOC, SectionTypography,
	}, names)
	assert.True(t, strings.Contains(strings.Join(names, " "), "geometry"))
}
