package preamble

import (
	"strings"

	"github.com/inkpress/typeset/internal/config"
	"github.com/inkpress/typeset/internal/format"
)

// titlePage replaces the document class's default title rendering with a
// fixed vertical layout built from the configured sizes. Only emitted
// when enabled; the caller is responsible for keeping the metadata-block
// title fields consistent with it.
func titlePage(cfg *config.TemplateConfiguration) string {
	tp := cfg.FrontMatter.TitlePage
	if !tp.Enabled {
		return ""
	}

	titleText := "\\thetitle"
	if tp.LetterSpacing {
		titleText = "\\textls[120]{\\thetitle}"
	}

	var sb strings.Builder
	sb.WriteString("\\providecommand{\\thesubtitle}{}\n")
	sb.WriteString("\\renewcommand{\\maketitle}{%\n")
	sb.WriteString("  \\begin{titlepage}%\n")
	sb.WriteString("    \\centering\n")
	sb.WriteString("    \\vspace*{2in}\n")
	sb.WriteString("    {" + size(tp.TitleSizePt, 28) + "\\bfseries " + titleText + "\\par}\n")
	sb.WriteString("    \\vspace{1.5em}\n")
	sb.WriteString("    \\ifdefempty{\\thesubtitle}{}{%\n")
	sb.WriteString("      {" + size(tp.SubtitleSizePt, 16) + "\\itshape\\thesubtitle\\par}}\n")
	sb.WriteString("    \\vfill\n")
	sb.WriteString("    {" + size(tp.AuthorSizePt, 14) + "\\theauthor\\par}\n")
	sb.WriteString("    \\vspace{0.5em}\n")
	sb.WriteString("    {" + size(tp.DateSizePt, 11) + "\\thedate\\par}\n")
	sb.WriteString("    \\vspace*{1in}\n")
	sb.WriteString("  \\end{titlepage}}\n")
	return sb.String()
}

func size(pt, fallback float64) string {
	if pt <= 0 {
		pt = fallback
	}
	return format.FontSize(pt)
}
