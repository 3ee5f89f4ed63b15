package preamble

import (
	"strings"

	"github.com/inkpress/typeset/internal/config"
	"github.com/inkpress/typeset/internal/format"
)

// tocStyling emits the tocloft configuration. Nothing is emitted while
// the table of contents is disabled.
func tocStyling(cfg *config.TemplateConfiguration) string {
	toc := cfg.TableOfContents
	if !toc.Enabled {
		return ""
	}

	var sb strings.Builder

	// Title font and alignment.
	var title strings.Builder
	if toc.TitleSizePt > 0 {
		title.WriteString(format.FontSize(toc.TitleSizePt))
	}
	title.WriteString("\\bfseries")
	if toc.TitleAlignment == "center" {
		sb.WriteString("\\renewcommand{\\cfttoctitlefont}{\\hfill" + title.String() + "}\n")
		sb.WriteString("\\renewcommand{\\cftaftertoctitle}{\\hfill}\n")
	} else {
		sb.WriteString("\\renewcommand{\\cfttoctitlefont}{" + title.String() + "}\n")
	}

	// Dot leaders: the alternate no-dots leader when disabled.
	if !toc.DotLeaders {
		sb.WriteString("\\renewcommand{\\cftdotsep}{\\cftnodots}\n")
	}

	if toc.BoldChapterEntries {
		sb.WriteString("\\renewcommand{\\cftchapfont}{\\bfseries}\n")
		sb.WriteString("\\renewcommand{\\cftchappagefont}{\\bfseries}\n")
	}

	// Per-level indent: indentWidth x level, not independent fields.
	unit := toc.IndentWidth
	if unit.IsZero() {
		unit = config.Em(1.5)
	}
	double := config.Length{Value: unit.Value * 2, Unit: unit.Unit}
	sb.WriteString("\\setlength{\\cftsecindent}{" + format.Len(unit) + "}\n")
	sb.WriteString("\\setlength{\\cftsubsecindent}{" + format.Len(double) + "}\n")

	return sb.String()
}
