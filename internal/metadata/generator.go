package metadata

import (
	"strings"

	"github.com/inkpress/typeset/internal/config"
	"github.com/inkpress/typeset/internal/format"
	"github.com/inkpress/typeset/internal/logging"
)

// Generator lowers a template configuration into the metadata block.
type Generator struct {
	log logging.Logger
}

// NewGenerator creates a metadata generator. A nil logger discards the
// fragment parser's diagnostics.
func NewGenerator(log logging.Logger) *Generator {
	if log == nil {
		log = logging.Nop()
	}
	return &Generator{log: log.WithComponent("metadata")}
}

// Generate builds the full metadata block. With the expert-mode YAML
// override active and a payload present, the payload is returned verbatim
// and nothing is validated. Otherwise keys are emitted in the fixed
// contract order, and the configuration's merge fragment is shallow-merged
// over the result, last write wins. The fragment path is active regardless
// of the override flag; it is an additive escape hatch, not a replacement.
func (g *Generator) Generate(cfg *config.TemplateConfiguration, m *Manuscript) string {
	if cfg.ExpertMode.YAMLOverride && cfg.ExpertMode.CustomYAML != "" {
		return cfg.ExpertMode.CustomYAML
	}

	doc := &document{}
	g.addManuscript(doc, m)
	addDocumentClass(doc, cfg)
	addGeometry(doc, cfg)
	addTypography(doc, cfg)
	addTOC(doc, cfg)
	addNumbering(doc, cfg)
	addHighlight(doc, cfg)
	addFrontMatter(doc, cfg)

	g.mergeFragment(doc, cfg.CustomYAML)

	var sb strings.Builder
	sb.WriteString("---\n")
	doc.render(&sb, 0)
	sb.WriteString("---\n")
	return sb.String()
}

func (g *Generator) addManuscript(doc *document, m *Manuscript) {
	if m == nil {
		return
	}
	if m.Title != "" {
		doc.set("title", m.Title)
	}
	if m.Subtitle != "" {
		doc.set("subtitle", m.Subtitle)
	}
	if m.Author != "" {
		doc.set("author", m.Author)
	}
	if m.Date != "" {
		doc.set("date", m.Date)
	}
	if len(m.Keywords) > 0 {
		doc.set("keywords", m.Keywords)
	}
	if m.Description != "" {
		doc.set("description", m.Description)
	}
	if m.Identifier != "" {
		doc.set("identifier", m.Identifier)
	}
}

func addDocumentClass(doc *document, cfg *config.TemplateConfiguration) {
	class := cfg.Document.Class
	if class == "" {
		class = "book"
	}
	doc.set("documentclass", class)
	if len(cfg.Document.ClassOptions) > 0 {
		doc.set("classoption", strings.Join(cfg.Document.ClassOptions, ", "))
	}
}

func addGeometry(doc *document, cfg *config.TemplateConfiguration) {
	geo := cfg.Geometry
	if geo == nil {
		return
	}

	var tokens []any
	if !geo.PaperWidth.IsZero() {
		tokens = append(tokens, "paperwidth="+format.Len(geo.PaperWidth))
	}
	if !geo.PaperHeight.IsZero() {
		tokens = append(tokens, "paperheight="+format.Len(geo.PaperHeight))
	}
	tokens = append(tokens,
		"top="+format.LenOr(geo.MarginTop, config.Cm(2)),
		"bottom="+format.LenOr(geo.MarginBottom, config.Cm(2)),
		"inner="+format.LenOr(geo.MarginInner, config.Cm(2)),
		"outer="+format.LenOr(geo.MarginOuter, config.Cm(2)),
	)
	if !geo.HeaderHeight.IsZero() {
		tokens = append(tokens, "headheight="+format.Len(geo.HeaderHeight))
	}
	if !geo.FooterSkip.IsZero() {
		tokens = append(tokens, "footskip="+format.Len(geo.FooterSkip))
	}

	doc.set("geometry", tokens)
}

func addTypography(doc *document, cfg *config.TemplateConfiguration) {
	typ := cfg.Typography

	if typ.FontSizePt > 0 {
		doc.set("fontsize", format.Number(typ.FontSizePt)+"pt")
	}
	if typ.LineStretch > 0 {
		doc.set("linestretch", typ.LineStretch)
	}
	if typ.BodyFont != "" {
		doc.set("mainfont", typ.BodyFont)
	}
	if typ.SansFont != "" {
		doc.set("sansfont", typ.SansFont)
	}
	if typ.MonoFont != "" {
		doc.set("monofont", typ.MonoFont)
	}
	doc.set("indent", typ.IndentFirstLine)
	if typ.Language != "" {
		doc.set("lang", format.LanguageTag(typ.Language))
	}
}

func addTOC(doc *document, cfg *config.TemplateConfiguration) {
	toc := cfg.TableOfContents
	if !toc.Enabled {
		return
	}
	doc.set("toc", true)
	doc.set("toc-depth", toc.Depth)
	if toc.Title != "" {
		doc.set("toc-title", toc.Title)
	}
}

// addNumbering derives the single numbering-depth key from the three
// per-level flags. This is a priority chain, not additive: the shallowest
// numbered level determines the depth, so numbered chapters give 0 even if
// subsections are also numbered, and nothing numbered falls back to 0.
func addNumbering(doc *document, cfg *config.TemplateConfiguration) {
	doc.set("secnumdepth", NumberingDepth(cfg))
}

// NumberingDepth computes the derived heading-numbering depth.
func NumberingDepth(cfg *config.TemplateConfiguration) int {
	switch {
	case cfg.Chapters.Numbered:
		return 0
	case cfg.Sections.Numbered:
		return 1
	case cfg.Subsections.Numbered:
		return 2
	default:
		return 0
	}
}

func addHighlight(doc *document, cfg *config.TemplateConfiguration) {
	if !cfg.CodeBlocks.SyntaxHighlighting {
		return
	}
	theme := cfg.CodeBlocks.HighlightTheme
	if theme == "" {
		theme = "pygments"
	}
	doc.set("highlight-style", theme)
}

func addFrontMatter(doc *document, cfg *config.TemplateConfiguration) {
	if !cfg.FrontMatter.Abstract.Enabled {
		return
	}
	title := cfg.FrontMatter.Abstract.Title
	if title == "" {
		title = "Abstract"
	}
	doc.set("abstract-title", title)
}

// mergeFragment parses the configuration's merge fragment and overlays its
// keys. A malformed fragment never fails a generation: bad lines are
// logged and skipped, and the good lines still merge.
func (g *Generator) mergeFragment(doc *document, fragment string) {
	if strings.TrimSpace(fragment) == "" {
		return
	}
	entries := g.parseFragment(fragment)
	for _, e := range entries {
		doc.set(e.key, e.value)
	}
}
