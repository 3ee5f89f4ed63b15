package preamble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkpress/typeset/internal/config"
)

func TestImportsInference(t *testing.T) {
	cfg := defaultConfig()
	out := NewGenerator().Generate(cfg)

	assert.Contains(t, out, "\\usepackage{titlesec}")
	assert.Contains(t, out, "\\usepackage{fancyhdr}")
	assert.Contains(t, out, "\\usepackage[titles]{tocloft}")
	assert.Contains(t, out, "\\usepackage{microtype}")
	assert.Contains(t, out, "\\usepackage{booktabs}")

	cfg.HeadersFooters.Preset = config.PresetNone
	cfg.TableOfContents.Enabled = false
	cfg.Typography.Microtype = false
	cfg.FrontMatter.TitlePage.LetterSpacing = false
	cfg.Tables.Style = config.TableStylePlain
	out = NewGenerator().Generate(cfg)

	assert.NotContains(t, out, "fancyhdr")
	assert.NotContains(t, out, "tocloft")
	assert.NotContains(t, out, "microtype")
	assert.NotContains(t, out, "booktabs")
}

func TestTitlingOnlyWhenReferenced(t *testing.T) {
	cfg := defaultConfig()
	cfg.HeadersFooters.Preset = config.PresetChapterCorner
	cfg.FrontMatter.TitlePage.Enabled = false
	assert.NotContains(t, NewGenerator().Generate(cfg), "titling")

	cfg.HeadersFooters.Preset = config.PresetBookClassic
	assert.Contains(t, NewGenerator().Generate(cfg), "\\usepackage{titling}")
}

func TestTOCStyling(t *testing.T) {
	cfg := defaultConfig()
	cfg.TableOfContents.TitleSizePt = 20
	cfg.TableOfContents.DotLeaders = false
	cfg.TableOfContents.BoldChapterEntries = true
	cfg.TableOfContents.IndentWidth = config.Em(1.5)

	out := NewGenerator().Generate(cfg)

	assert.Contains(t, out, "\\renewcommand{\\cfttoctitlefont}{\\fontsize{20pt}{24pt}\\selectfont\\bfseries}")
	assert.Contains(t, out, "\\renewcommand{\\cftdotsep}{\\cftnodots}")
	assert.Contains(t, out, "\\renewcommand{\\cftchapfont}{\\bfseries}")

	// Level-two indent is double the configured unit, not its own field.
	assert.Contains(t, out, "\\setlength{\\cftsecindent}{1.5em}")
	assert.Contains(t, out, "\\setlength{\\cftsubsecindent}{3em}")
}

func TestTOCCenteredTitle(t *testing.T) {
	cfg := defaultConfig()
	cfg.TableOfContents.TitleAlignment = "center"

	out := NewGenerator().Generate(cfg)
	assert.Contains(t, out, "\\renewcommand{\\cfttoctitlefont}{\\hfill")
	assert.Contains(t, out, "\\renewcommand{\\cftaftertoctitle}{\\hfill}")
}

func TestTOCDotLeadersKeptByDefault(t *testing.T) {
	cfg := defaultConfig()
	cfg.TableOfContents.DotLeaders = true

	assert.NotContains(t, NewGenerator().Generate(cfg), "cftnodots")
}

func TestListStyling(t *testing.T) {
	cfg := defaultConfig()
	cfg.Lists.BulletStyle = "dash"
	cfg.Lists.NumberStyle = "roman"
	cfg.Lists.ItemSpacing = config.Pt(3)

	out := NewGenerator().Generate(cfg)
	assert.Contains(t, out, "\\setlist{itemsep=3pt,parsep=0pt}")
	assert.Contains(t, out, "\\setlist[itemize,1]{label=\\textendash}")
	assert.Contains(t, out, "\\setlist[enumerate,1]{label=\\roman*.}")
}

func TestCompactListsSuppressSpacing(t *testing.T) {
	cfg := defaultConfig()
	cfg.Lists.Compact = true
	cfg.Lists.ItemSpacing = config.Pt(5)

	out := NewGenerator().Generate(cfg)
	assert.Contains(t, out, "\\setlist{nosep}")
	assert.NotContains(t, out, "itemsep=5pt")
}

func TestFigureDefaults(t *testing.T) {
	cfg := defaultConfig()
	cfg.Images.DefaultWidthRatio = 0.8
	cfg.Images.CenterImages = true
	cfg.Images.CaptionSizePt = 9
	cfg.Images.BoldCaptionLabel = true

	out := NewGenerator().Generate(cfg)
	assert.Contains(t, out, "\\setkeys{Gin}{width=0.8\\linewidth}")
	assert.Contains(t, out, "\\g@addto@macro\\@floatboxreset\\centering")
	assert.Contains(t, out, "\\captionsetup[figure]{font=typesetcaption,labelfont=bf}")
}

func TestStrictPlacement(t *testing.T) {
	cfg := defaultConfig()
	cfg.Images.StrictPlacement = true

	out := NewGenerator().Generate(cfg)
	assert.Contains(t, out, "\\usepackage{float}")
	assert.Contains(t, out, "\\floatplacement{figure}{H}")
}

func TestCodeBlockStyling(t *testing.T) {
	cfg := defaultConfig()
	cfg.CodeBlocks.FontSizePt = 9
	cfg.CodeBlocks.LineNumbers = true
	cfg.CodeBlocks.WrapLongLines = true

	out := NewGenerator().Generate(cfg)
	assert.Contains(t, out, "\\fvset{fontsize=\\footnotesize,numbers=left,breaklines=true}")
}

func TestTitlePageGated(t *testing.T) {
	cfg := defaultConfig()
	cfg.FrontMatter.TitlePage.Enabled = false
	assert.NotContains(t, NewGenerator().Generate(cfg), "\\maketitle")

	cfg.FrontMatter.TitlePage.Enabled = true
	out := NewGenerator().Generate(cfg)
	assert.Contains(t, out, "\\renewcommand{\\maketitle}{%")
	assert.Contains(t, out, "\\begin{titlepage}%")
	assert.Contains(t, out, "\\fontsize{28pt}{33.6pt}\\selectfont\\bfseries \\thetitle\\par")
	assert.Contains(t, out, "\\theauthor\\par")
	assert.Contains(t, out, "\\thedate\\par")
}

func TestTitlePageLetterSpacing(t *testing.T) {
	cfg := defaultConfig()
	cfg.FrontMatter.TitlePage.Enabled = true
	cfg.FrontMatter.TitlePage.LetterSpacing = true

	out := NewGenerator().Generate(cfg)
	assert.Contains(t, out, "\\textls[120]{\\thetitle}")
	assert.Contains(t, out, "\\usepackage{microtype}")
}

func TestSectionOrderFixed(t *testing.T) {
	cfg := defaultConfig()
	cfg.FrontMatter.TitlePage.Enabled = true
	cfg.CustomHeaderIncludes = "% appended"

	out := NewGenerator().Generate(cfg)

	order := []string{
		"\\usepackage{titlesec}",
		"\\clubpenalty",
		"\\pagestyle{fancy}",
		"\\titleformat{\\chapter}",
		"\\cfttoctitlefont",
		"\\setlist",
		"\\setkeys{Gin}",
		"\\arraystretch",
		"\\fvset",
		"\\renewcommand{\\maketitle}",
		"% appended",
	}

	last := -1
	for _, marker := range order {
		idx := strings.Index(out, marker)
		assert.Greater(t, idx, last, "marker %q out of order", marker)
		last = idx
	}
}
