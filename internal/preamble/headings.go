package preamble

import (
	"strings"

	"github.com/inkpress/typeset/internal/config"
	"github.com/inkpress/typeset/internal/format"
)

// headings emits the titleformat/titlespacing pairs for the three heading
// levels, plus the chapter page-break policy.
func headings(cfg *config.TemplateConfiguration) string {
	var sb strings.Builder

	emitHeading(&sb, "\\chapter", "\\thechapter", cfg.Chapters.HeadingStyle)
	sb.WriteString(chapterBreaks(cfg.Chapters))
	emitHeading(&sb, "\\section", "\\thesection", cfg.Sections.HeadingStyle)
	emitHeading(&sb, "\\subsection", "\\thesubsection", cfg.Subsections.HeadingStyle)

	return sb.String()
}

// emitHeading writes one titleformat declaration followed by its spacing.
// The style string composes size, weight/slant modifier, and alignment;
// the label is the counter when the level is numbered, empty otherwise.
func emitHeading(sb *strings.Builder, command, counter string, style config.HeadingStyle) {
	shape := string(style.Format)
	if shape == "" {
		shape = string(config.FormatHang)
	}

	var styleStr strings.Builder
	if style.SizePt > 0 {
		styleStr.WriteString(format.FontSize(style.SizePt))
	}
	styleStr.WriteString(format.FontModifier(style.Weight, style.Style))
	styleStr.WriteString(format.TitleAlignment(style.Alignment))

	label := ""
	if style.Numbered {
		label = counter
	}

	sb.WriteString("\\titleformat{" + command + "}[" + shape + "]\n")
	sb.WriteString("  {" + styleStr.String() + "}{" + label + "}{1em}{}\n")
	sb.WriteString("\\titlespacing*{" + command + "}{0pt}" +
		"{" + format.LenOr(style.SpacingBefore, config.Pt(12)) + "}" +
		"{" + format.LenOr(style.SpacingAfter, config.Pt(6)) + "}\n")
}

// chapterBreaks lowers the two page-break booleans. They form a 2x2
// matrix, not independent toggles: ClearPage forces the chapter onto an
// odd page and implies NewPage semantics even when NewPage is false.
func chapterBreaks(ch config.ChapterStyling) string {
	if !ch.NewPage && !ch.ClearPage {
		return ""
	}

	breakCmd := "\\clearpage"
	if ch.ClearPage {
		breakCmd = "\\cleardoublepage"
	}

	var sb strings.Builder
	sb.WriteString("\\newcommand{\\chapterbreak}{" + breakCmd + "}\n")
	sb.WriteString("\\assignpagestyle{\\chapter}{plain}\n")
	return sb.String()
}
