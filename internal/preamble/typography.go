package preamble

import (
	"strings"

	"github.com/inkpress/typeset/internal/config"
	"github.com/inkpress/typeset/internal/format"
)

// typography emits the body-text tuning that has no metadata-language
// equivalent: widow/orphan suppression and paragraph skip. Font families,
// size, and line stretch travel in the metadata block instead.
func typography(cfg *config.TemplateConfiguration) string {
	var sb strings.Builder

	if cfg.Typography.PreventWidows {
		sb.WriteString("\\clubpenalty=10000\n")
		sb.WriteString("\\widowpenalty=10000\n")
	}
	if !cfg.Typography.ParagraphSkip.IsZero() {
		sb.WriteString("\\setlength{\\parskip}{" + format.Len(cfg.Typography.ParagraphSkip) + "}\n")
	}

	return sb.String()
}
