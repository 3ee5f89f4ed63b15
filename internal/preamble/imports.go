package preamble

import (
	"strings"

	"github.com/inkpress/typeset/internal/config"
)

// imports emits the package loads the rest of the preamble depends on.
// This is whole-document dependency inference, not a static list: a
// capability is pulled in only when some configuration area needs it.
func imports(cfg *config.TemplateConfiguration) string {
	var sb strings.Builder

	use := func(pkg string, opts ...string) {
		sb.WriteString("\\usepackage")
		if len(opts) > 0 {
			sb.WriteString("[" + strings.Join(opts, ",") + "]")
		}
		sb.WriteString("{" + pkg + "}\n")
	}

	// Heading formats are always styled.
	use("titlesec")

	if headersActive(cfg) {
		use("fancyhdr")
	}
	if needsTitling(cfg) {
		use("titling")
	}
	if cfg.TableOfContents.Enabled {
		use("tocloft", "titles")
	}
	if cfg.Typography.Microtype || cfg.FrontMatter.TitlePage.LetterSpacing {
		use("microtype")
	}

	// Body features.
	use("enumitem")
	use("graphicx")
	if cfg.Images.StrictPlacement {
		use("float")
	}
	if needsCaptionSetup(cfg) {
		use("caption")
	}
	if cfg.Tables.Style == config.TableStyleBooktabs {
		use("booktabs")
	}
	if needsFancyvrb(cfg) {
		use("fancyvrb")
	}
	if cfg.FrontMatter.TitlePage.Enabled || cfg.Tables.FontSizePt > 0 {
		use("etoolbox")
	}

	return sb.String()
}

// headersActive reports whether any running-header setup will be emitted.
// An unset preset behaves as none so partially-populated records stay
// headerless rather than erroring.
func headersActive(cfg *config.TemplateConfiguration) bool {
	p := cfg.HeadersFooters.Preset
	return p != config.PresetNone && p != ""
}

// needsTitling reports whether any emitted macro references the document
// title, author, or date: the custom title page, or a header zone (named
// preset included) that places one of them in a running header.
func needsTitling(cfg *config.TemplateConfiguration) bool {
	if cfg.FrontMatter.TitlePage.Enabled {
		return true
	}
	hf := cfg.HeadersFooters
	switch hf.Preset {
	case config.PresetBookClassic:
		return true
	case config.PresetCustom:
		for _, zone := range allZones(hf) {
			for _, el := range zone.elements {
				if el.Kind == config.ElementTitle || el.Kind == config.ElementAuthor {
					return true
				}
			}
		}
	}
	return false
}

func needsCaptionSetup(cfg *config.TemplateConfiguration) bool {
	return cfg.Images.CaptionSizePt > 0 || cfg.Images.BoldCaptionLabel || cfg.Tables.CaptionAbove
}

func needsFancyvrb(cfg *config.TemplateConfiguration) bool {
	cb := cfg.CodeBlocks
	return cb.FontSizePt > 0 || cb.LineNumbers || cb.WrapLongLines
}
