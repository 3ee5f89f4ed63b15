package preamble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkpress/typeset/internal/config"
)

func TestNamedPresets(t *testing.T) {
	tests := []struct {
		preset   config.HeaderFooterPreset
		contains []string
		excludes []string
	}{
		{
			preset: config.PresetBookClassic,
			contains: []string{
				"\\fancyhead[LE]{\\thepage}",
				"\\fancyhead[CE]{\\thetitle}",
				"\\fancyhead[CO]{\\leftmark}",
				"\\fancyhead[RO]{\\thepage}",
			},
		},
		{
			preset: config.PresetChapterCorner,
			contains: []string{
				"\\fancyhead[RE]{\\leftmark}",
				"\\fancyhead[LO]{\\rightmark}",
			},
		},
		{
			preset: config.PresetFooterCenter,
			contains: []string{
				"\\fancyfoot[C]{\\thepage}",
				"\\renewcommand{\\headrulewidth}{0pt}",
			},
			excludes: []string{"\\fancyhead"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := defaultConfig()
			cfg.HeadersFooters.Preset = tt.preset

			out := NewGenerator().Generate(cfg)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, not := range tt.excludes {
				assert.NotContains(t, out, not)
			}
		})
	}
}

func TestCustomZonesWalked(t *testing.T) {
	cfg := defaultConfig()
	cfg.HeadersFooters.Preset = config.PresetCustom
	cfg.HeadersFooters.EvenPage = config.PageHeaderFooter{
		Left: []config.HeaderFooterElement{
			{Kind: config.ElementPageNumber},
			{Kind: config.ElementText, Text: " · "},
			{Kind: config.ElementAuthor},
		},
	}
	cfg.HeadersFooters.OddPage = config.PageHeaderFooter{
		Right: []config.HeaderFooterElement{
			{Kind: config.ElementChapter},
		},
	}

	out := NewGenerator().Generate(cfg)

	// Ordered elements join into one inline fragment.
	assert.Contains(t, out, "\\fancyhead[LE]{\\thepage · \\theauthor}")
	assert.Contains(t, out, "\\fancyhead[RO]{\\leftmark}")

	// Empty zones are skipped entirely.
	assert.NotContains(t, out, "\\fancyhead[CE]")
	assert.NotContains(t, out, "\\fancyhead[RE]")
	assert.NotContains(t, out, "\\fancyhead[LO]")
	assert.NotContains(t, out, "\\fancyhead[CO]")
}

func TestCustomZoneLiteralTextEscaped(t *testing.T) {
	cfg := defaultConfig()
	cfg.HeadersFooters.Preset = config.PresetCustom
	cfg.HeadersFooters.OddPage.Center = []config.HeaderFooterElement{
		{Kind: config.ElementText, Text: "Drafts & Notes"},
	}

	out := NewGenerator().Generate(cfg)
	assert.Contains(t, out, "{Drafts \\& Notes}")
}

func TestRawElementPassesThrough(t *testing.T) {
	cfg := defaultConfig()
	cfg.HeadersFooters.Preset = config.PresetCustom
	cfg.HeadersFooters.OddPage.Center = []config.HeaderFooterElement{
		{Kind: config.ElementRaw, Text: "\\textsc{\\leftmark}"},
	}

	out := NewGenerator().Generate(cfg)
	assert.Contains(t, out, "{\\textsc{\\leftmark}}")
}

func TestRuleWidthDelegatedToSharedPath(t *testing.T) {
	cfg := defaultConfig()
	cfg.HeadersFooters.Preset = config.PresetBookClassic
	cfg.HeadersFooters.RuleWidth = config.Pt(1)

	out := NewGenerator().Generate(cfg)
	assert.Contains(t, out, "\\renewcommand{\\headrulewidth}{1pt}")
}

func TestPlainFirstPageStyleAlwaysEmitted(t *testing.T) {
	for _, preset := range []config.HeaderFooterPreset{
		config.PresetBookClassic,
		config.PresetChapterCorner,
		config.PresetFooterCenter,
		config.PresetCustom,
	} {
		cfg := defaultConfig()
		cfg.HeadersFooters.Preset = preset

		out := NewGenerator().Generate(cfg)
		assert.Contains(t, out, "\\fancypagestyle{plain}", string(preset))
	}
}

func TestCustomZonesStoredButIgnoredUnderPreset(t *testing.T) {
	cfg := defaultConfig()
	cfg.HeadersFooters.Preset = config.PresetFooterCenter
	cfg.HeadersFooters.OddPage.Center = []config.HeaderFooterElement{
		{Kind: config.ElementText, Text: "should not appear"},
	}

	out := NewGenerator().Generate(cfg)
	assert.False(t, strings.Contains(out, "should not appear"))
}
