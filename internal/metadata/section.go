package metadata

import (
	"sort"
	"strings"

	"github.com/inkpress/typeset/internal/config"
)

// Section names accepted by GenerateSection.
const (
	SectionDocument    = "document"
	SectionGeometry    = "geometry"
	SectionTypography  = "typography"
	SectionTOC         = "toc"
	SectionNumbering   = "numbering"
	SectionHighlight   = "highlight"
	SectionFrontMatter = "frontmatter"
)

var sectionBuilders = map[string]func(*document, *config.TemplateConfiguration){
	SectionDocument:    addDocumentClass,
	SectionGeometry:    addGeometry,
	SectionTypography:  addTypography,
	SectionTOC:         addTOC,
	SectionNumbering:   addNumbering,
	SectionHighlight:   addHighlight,
	SectionFrontMatter: addFrontMatter,
}

// SectionNames lists the valid section names in stable order.
func SectionNames() []string {
	names := make([]string, 0, len(sectionBuilders))
	for name := range sectionBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GenerateSection regenerates a single named subset of the metadata block
// for preview and diagnostics, using the same value-formatting rules as
// the full pass but without block delimiters, override handling, or
// fragment merging. It is never part of the authoritative output path.
// Unknown names yield an empty string.
func (g *Generator) GenerateSection(cfg *config.TemplateConfiguration, name string) string {
	build, ok := sectionBuilders[name]
	if !ok {
		g.log.Debug("unknown metadata section requested", "section", name)
		return ""
	}

	doc := &document{}
	build(doc, cfg)

	var sb strings.Builder
	doc.render(&sb, 0)
	return sb.String()
}
