package preamble

import (
	"strings"

	"github.com/inkpress/typeset/internal/config"
	"github.com/inkpress/typeset/internal/format"
)

// zone pairs a fancyhdr position selector with its ordered element list.
type zone struct {
	selector string // LE, CE, RE, LO, CO, RO
	elements []config.HeaderFooterElement
}

// headersFooters emits the running-header setup. Named presets hard-code
// a zone assignment and then delegate to the same emission path as the
// custom layout, so rule width and the plain first-page style behave
// identically everywhere. The plain style is always emitted for
// chapter-opening pages, whatever the main preset.
func headersFooters(cfg *config.TemplateConfiguration) string {
	hf := cfg.HeadersFooters
	if hf.Preset == config.PresetNone || hf.Preset == "" {
		return ""
	}

	var zones []zone
	switch hf.Preset {
	case config.PresetBookClassic:
		zones = []zone{
			{"LE", els(el(config.ElementPageNumber))},
			{"CE", els(el(config.ElementTitle))},
			{"CO", els(el(config.ElementChapter))},
			{"RO", els(el(config.ElementPageNumber))},
		}
	case config.PresetChapterCorner:
		zones = []zone{
			{"LE", els(el(config.ElementPageNumber))},
			{"RE", els(el(config.ElementChapter))},
			{"LO", els(el(config.ElementSection))},
			{"RO", els(el(config.ElementPageNumber))},
		}
	case config.PresetFooterCenter:
		return footerCenter()
	default: // custom
		zones = customZones(hf)
	}

	return emitFancy(zones, hf.RuleWidth)
}

func el(kind config.ElementKind) config.HeaderFooterElement {
	return config.HeaderFooterElement{Kind: kind}
}

func els(elements ...config.HeaderFooterElement) []config.HeaderFooterElement {
	return elements
}

// customZones maps the six stored header zones onto fancyhdr selectors:
// even page left/center/right, then odd page left/center/right.
func customZones(hf config.HeaderFooterSettings) []zone {
	return []zone{
		{"LE", hf.EvenPage.Left},
		{"CE", hf.EvenPage.Center},
		{"RE", hf.EvenPage.Right},
		{"LO", hf.OddPage.Left},
		{"CO", hf.OddPage.Center},
		{"RO", hf.OddPage.Right},
	}
}

// allZones exposes the stored custom zones for dependency inference.
func allZones(hf config.HeaderFooterSettings) []zone {
	return customZones(hf)
}

// emitFancy writes the shared fancyhdr block: clear everything, fill the
// non-empty zones, set the rule width, and define the plain first-page
// style used after structural breaks.
func emitFancy(zones []zone, ruleWidth config.Length) string {
	var sb strings.Builder
	sb.WriteString("\\pagestyle{fancy}\n")
	sb.WriteString("\\fancyhf{}\n")

	for _, z := range zones {
		fragment := renderElements(z.elements)
		if fragment == "" {
			continue
		}
		sb.WriteString("\\fancyhead[" + z.selector + "]{" + fragment + "}\n")
	}

	sb.WriteString("\\renewcommand{\\headrulewidth}{" + format.LenOr(ruleWidth, config.Pt(0.4)) + "}\n")
	sb.WriteString(plainStyle())
	return sb.String()
}

// footerCenter is the one preset with no header at all: a bare centered
// page number in the footer.
func footerCenter() string {
	var sb strings.Builder
	sb.WriteString("\\pagestyle{fancy}\n")
	sb.WriteString("\\fancyhf{}\n")
	sb.WriteString("\\fancyfoot[C]{\\thepage}\n")
	sb.WriteString("\\renewcommand{\\headrulewidth}{0pt}\n")
	sb.WriteString(plainStyle())
	return sb.String()
}

func plainStyle() string {
	return "\\fancypagestyle{plain}{%\n" +
		"  \\fancyhf{}%\n" +
		"  \\fancyfoot[C]{\\thepage}%\n" +
		"  \\renewcommand{\\headrulewidth}{0pt}}\n"
}

// renderElements joins a zone's ordered elements into one inline
// fragment. Empty zones produce no macro at all.
func renderElements(elements []config.HeaderFooterElement) string {
	var sb strings.Builder
	for _, e := range elements {
		switch e.Kind {
		case config.ElementText:
			sb.WriteString(format.EscapeLaTeX(e.Text))
		case config.ElementTitle:
			sb.WriteString("\\thetitle")
		case config.ElementChapter:
			sb.WriteString("\\leftmark")
		case config.ElementSection:
			sb.WriteString("\\rightmark")
		case config.ElementAuthor:
			sb.WriteString("\\theauthor")
		case config.ElementPageNumber:
			sb.WriteString("\\thepage")
		case config.ElementRaw:
			sb.WriteString(e.Text)
		}
	}
	return sb.String()
}
