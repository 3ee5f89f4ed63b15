// Package preamble lowers a template configuration into the typesetting
// preamble consumed by the downstream document compiler: an ordered
// sequence of macro sections covering imports, typography, running
// headers, heading formats, table-of-contents styling, lists, figures,
// tables, code blocks, and the front-matter title page.
//
// Every section is a pure function of the configuration subtree it owns;
// no section reads another section's output. The generator is total over
// the configuration domain: absent optional records mean a feature is
// disabled or defaulted, never an error.
package preamble

import (
	"strings"

	"github.com/inkpress/typeset/internal/config"
)

// Generator lowers a template configuration into the preamble block.
type Generator struct{}

// NewGenerator creates a preamble generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the full preamble. With the expert-mode LaTeX override
// active and a payload present, the payload is returned verbatim.
// Otherwise the sections are generated independently in fixed order,
// all-whitespace sections are dropped, and the survivors are joined by a
// blank line, so a disabled feature never leaves a stray gap.
func (g *Generator) Generate(cfg *config.TemplateConfiguration) string {
	if cfg.ExpertMode.LaTeXOverride && cfg.ExpertMode.CustomLaTeX != "" {
		return cfg.ExpertMode.CustomLaTeX
	}

	sections := []string{
		imports(cfg),
		typography(cfg),
		headersFooters(cfg),
		headings(cfg),
		tocStyling(cfg),
		lists(cfg),
		figures(cfg),
		tables(cfg),
		codeBlocks(cfg),
		titlePage(cfg),
		cfg.CustomHeaderIncludes,
	}

	kept := sections[:0]
	for _, s := range sections {
		if strings.TrimSpace(s) != "" {
			kept = append(kept, strings.TrimRight(s, "\n"))
		}
	}

	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, "\n\n") + "\n"
}
