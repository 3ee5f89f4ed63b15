package preamble

import (
	"strings"

	"github.com/inkpress/typeset/internal/config"
	"github.com/inkpress/typeset/internal/format"
)

// lists emits the enumitem defaults for bullet and numbered lists.
func lists(cfg *config.TemplateConfiguration) string {
	l := cfg.Lists
	var sb strings.Builder

	if l.Compact {
		sb.WriteString("\\setlist{nosep}\n")
	} else if !l.ItemSpacing.IsZero() {
		sb.WriteString("\\setlist{itemsep=" + format.Len(l.ItemSpacing) + ",parsep=0pt}\n")
	}

	if label := bulletLabel(l.BulletStyle); label != "" {
		sb.WriteString("\\setlist[itemize,1]{label=" + label + "}\n")
	}
	if label := numberLabel(l.NumberStyle); label != "" {
		sb.WriteString("\\setlist[enumerate,1]{label=" + label + "}\n")
	}

	return sb.String()
}

func bulletLabel(style string) string {
	switch style {
	case "dash":
		return "\\textendash"
	case "triangle":
		return "$\\triangleright$"
	case "bullet":
		return "\\textbullet"
	default:
		return ""
	}
}

func numberLabel(style string) string {
	switch style {
	case "roman":
		return "\\roman*."
	case "alpha":
		return "\\alph*)"
	case "arabic":
		return "\\arabic*."
	default:
		return ""
	}
}

// figures emits the graphicx and caption defaults for images.
func figures(cfg *config.TemplateConfiguration) string {
	img := cfg.Images
	var sb strings.Builder

	if img.DefaultWidthRatio > 0 {
		sb.WriteString("\\setkeys{Gin}{width=" + format.Number(img.DefaultWidthRatio) + "\\linewidth}\n")
	}
	if img.CenterImages {
		sb.WriteString("\\makeatletter\n")
		sb.WriteString("\\g@addto@macro\\@floatboxreset\\centering\n")
		sb.WriteString("\\makeatother\n")
	}
	if img.StrictPlacement {
		sb.WriteString("\\floatplacement{figure}{H}\n")
	}

	var caption []string
	if img.CaptionSizePt > 0 {
		sb.WriteString("\\DeclareCaptionFont{typesetcaption}{" + format.FontSize(img.CaptionSizePt) + "}\n")
		caption = append(caption, "font=typesetcaption")
	}
	if img.BoldCaptionLabel {
		caption = append(caption, "labelfont=bf")
	}
	if len(caption) > 0 {
		sb.WriteString("\\captionsetup[figure]{" + strings.Join(caption, ",") + "}\n")
	}

	return sb.String()
}

// tables emits rule-scheme and caption-position defaults.
func tables(cfg *config.TemplateConfiguration) string {
	t := cfg.Tables
	var sb strings.Builder

	if t.Style == config.TableStyleBooktabs {
		sb.WriteString("\\renewcommand{\\arraystretch}{1.15}\n")
	}
	if t.CaptionAbove {
		sb.WriteString("\\captionsetup[table]{position=top}\n")
	}
	if label := sizeCommand(t.FontSizePt); label != "" {
		sb.WriteString("\\AtBeginEnvironment{table}{" + label + "}\n")
	}

	return sb.String()
}

// codeBlocks emits the verbatim defaults for fenced code blocks. The
// highlight theme itself travels in the metadata block.
func codeBlocks(cfg *config.TemplateConfiguration) string {
	cb := cfg.CodeBlocks
	var opts []string

	if label := sizeCommand(cb.FontSizePt); label != "" {
		opts = append(opts, "fontsize="+label)
	}
	if cb.LineNumbers {
		opts = append(opts, "numbers=left")
	}
	if cb.WrapLongLines {
		opts = append(opts, "breaklines=true")
	}

	if len(opts) == 0 {
		return ""
	}
	return "\\fvset{" + strings.Join(opts, ",") + "}\n"
}

// sizeCommand maps a point size onto the nearest named size command. The
// verbatim and table hooks take a command, not a dimension.
func sizeCommand(pt float64) string {
	switch {
	case pt <= 0:
		return ""
	case pt <= 8:
		return "\\scriptsize"
	case pt <= 9:
		return "\\footnotesize"
	case pt <= 10:
		return "\\small"
	default:
		return "\\normalsize"
	}
}
