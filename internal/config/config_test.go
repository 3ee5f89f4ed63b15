package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplateConfigurationDefaults(t *testing.T) {
	cfg := NewTemplateConfiguration()

	assert.Equal(t, "book", cfg.Document.Class)
	assert.Contains(t, cfg.Document.ClassOptions, "twoside")
	assert.Equal(t, 11.0, cfg.Typography.FontSizePt)
	require.NotNil(t, cfg.Geometry)
	assert.Equal(t, "in", cfg.Geometry.PaperWidth.Unit)
	assert.True(t, cfg.TableOfContents.Enabled)
	assert.Equal(t, 2, cfg.TableOfContents.Depth)
	assert.Equal(t, "Contents", cfg.TableOfContents.Title)
	assert.True(t, cfg.Chapters.NewPage)
	assert.True(t, cfg.Chapters.ClearPage)
	assert.False(t, cfg.ExpertMode.YAMLOverride)
	assert.False(t, cfg.ExpertMode.LaTeXOverride)
}

func TestParseLayersOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
name: Novel
typography:
  body_font: Garamond
table_of_contents:
  enabled: false
`))
	require.NoError(t, err)

	assert.Equal(t, "Novel", cfg.Name)
	assert.Equal(t, "Garamond", cfg.Typography.BodyFont)
	assert.False(t, cfg.TableOfContents.Enabled)

	// Untouched areas keep factory defaults.
	assert.Equal(t, "book", cfg.Document.Class)
	assert.Equal(t, 11.0, cfg.Typography.FontSizePt)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("typography: [not: a, mapping"))
	assert.Error(t, err)
}

func TestLengthHelpers(t *testing.T) {
	assert.True(t, Length{}.IsZero())
	assert.False(t, Pt(1).IsZero())
	assert.Equal(t, Length{Value: 2.5, Unit: "cm"}, Cm(2.5))
	assert.Equal(t, Length{Value: 1.5, Unit: "em"}, Em(1.5))
}

func TestExportRoundTrip(t *testing.T) {
	cfg := NewTemplateConfiguration()
	cfg.Name = "Round Trip"
	cfg.Typography.BodyFont = "Baskerville"

	out, err := cfg.Export()
	require.NoError(t, err)

	back, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, "Round Trip", back.Name)
	assert.Equal(t, "Baskerville", back.Typography.BodyFont)
	assert.Equal(t, cfg.TableOfContents, back.TableOfContents)
}
