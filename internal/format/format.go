// Package format holds the stateless value formatters shared by the
// metadata and preamble generators: length tokens, alignment and font
// modifiers, string escaping for both target languages, and language-tag
// normalization.
package format

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/inkpress/typeset/internal/config"
)

// Number renders a float without a trailing zero tail: 1.15 stays 1.15,
// 2.50 becomes 2.5, 11 stays 11.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Len renders a length token such as "2.5cm". A zero length renders as
// "0pt"; unitless values default to points.
func Len(l config.Length) string {
	unit := l.Unit
	if unit == "" {
		unit = "pt"
	}
	return Number(l.Value) + unit
}

// LenOr renders l, or the fallback when l was never set.
func LenOr(l, fallback config.Length) string {
	if l.IsZero() {
		return Len(fallback)
	}
	return Len(l)
}

// FontSize renders the two-argument size command for an explicit point
// size, with the baseline skip at the conventional 1.2 ratio.
func FontSize(sizePt float64) string {
	return "\\fontsize{" + Number(sizePt) + "pt}{" + Number(sizePt*1.2) + "pt}\\selectfont"
}

// FontModifier maps a weight and slant/case style onto series/shape
// commands. Unknown values render as no modifier.
func FontModifier(weight, style string) string {
	var sb strings.Builder
	if weight == "bold" {
		sb.WriteString("\\bfseries")
	}
	switch style {
	case "italic":
		sb.WriteString("\\itshape")
	case "small-caps":
		sb.WriteString("\\scshape")
	}
	return sb.String()
}

// TitleAlignment maps an alignment onto the filling commands titlesec
// expects inside a format argument.
func TitleAlignment(alignment string) string {
	switch alignment {
	case "center":
		return "\\filcenter"
	case "right":
		return "\\filright"
	default:
		return ""
	}
}

// latexReplacer escapes the characters that are special in literal text
// destined for the typesetting language.
var latexReplacer = strings.NewReplacer(
	"\\", "\\textbackslash{}",
	"&", "\\&",
	"%", "\\%",
	"$", "\\$",
	"#", "\\#",
	"_", "\\_",
	"{", "\\{",
	"}", "\\}",
	"~", "\\textasciitilde{}",
	"^", "\\textasciicircum{}",
)

// EscapeLaTeX escapes literal text for safe inclusion in the preamble.
// Raw fragments bypass this entirely.
func EscapeLaTeX(s string) string {
	return latexReplacer.Replace(s)
}

// NeedsYAMLQuoting reports whether a string value must be quoted in the
// metadata language: it contains a colon, a hash, or a newline.
func NeedsYAMLQuoting(s string) bool {
	return strings.ContainsAny(s, ":#\n")
}

// QuoteYAML wraps s in double quotes with internal quotes
// backslash-escaped. Newlines are escaped so the value stays on one line.
func QuoteYAML(s string) string {
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return "\"" + s + "\""
}

// YAMLString renders a string value, quoting only when required.
func YAMLString(s string) string {
	if NeedsYAMLQuoting(s) {
		return QuoteYAML(s)
	}
	return s
}

// LanguageTag canonicalizes a BCP 47 tag ("en-us" -> "en-US"). Tags that
// fail to parse pass through unchanged; the downstream compiler has its
// own fallback.
func LanguageTag(tag string) string {
	if tag == "" {
		return ""
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	return parsed.String()
}
