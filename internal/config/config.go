// Package config defines the template configuration model for typeset:
// a tree of value records describing every formatting dimension of a
// manuscript (typography, page geometry, headers/footers, heading styles,
// table of contents, lists, images, tables, code blocks, front matter).
//
// The model is pure data. It is produced by a template file, a preset, or
// the factory defaults, and consumed read-only by the metadata and preamble
// generators. The compiler never mutates a configuration; ModifiedAt is
// bookkeeping for the owning caller.
package config

import (
	"time"
)

// TemplateConfiguration is the root record handed to both generators.
// Optional sub-records (currently only Geometry) are pointers; a nil
// pointer means the feature area was never configured and the generators
// fall back to defaults or omission.
type TemplateConfiguration struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Category    string `yaml:"category,omitempty"`

	Document        DocumentSettings     `yaml:"document"`
	Typography      TypographySettings   `yaml:"typography"`
	Geometry        *PageGeometry        `yaml:"geometry,omitempty"`
	HeadersFooters  HeaderFooterSettings `yaml:"headers_footers"`
	Chapters        ChapterStyling       `yaml:"chapters"`
	Sections        SectionStyling       `yaml:"sections"`
	Subsections     SubsectionStyling    `yaml:"subsections"`
	TableOfContents TOCSettings          `yaml:"table_of_contents"`
	Lists           ListSettings         `yaml:"lists"`
	Images          ImageSettings        `yaml:"images"`
	Tables          TableSettings        `yaml:"tables"`
	CodeBlocks      CodeBlockSettings    `yaml:"code_blocks"`
	Bibliography    BibliographySettings `yaml:"bibliography"`
	FrontMatter     FrontMatterSettings  `yaml:"front_matter"`
	ExpertMode      ExpertMode           `yaml:"expert_mode"`

	// CustomYAML is a merge fragment: it is shallow-merged over the
	// generated metadata keys on every run, independent of the expert-mode
	// override flag. CustomHeaderIncludes is appended verbatim to the end
	// of the generated preamble.
	CustomYAML           string `yaml:"custom_yaml,omitempty"`
	CustomHeaderIncludes string `yaml:"custom_header_includes,omitempty"`

	ModifiedAt time.Time `yaml:"modified_at,omitempty"`
}

// ExpertMode gates full replacement of either generated artifact with a
// hand-written payload. The two flags are independent; when a flag is
// false its payload is ignored even if non-empty.
type ExpertMode struct {
	YAMLOverride  bool   `yaml:"yaml_override"`
	LaTeXOverride bool   `yaml:"latex_override"`
	CustomYAML    string `yaml:"custom_yaml,omitempty"`
	CustomLaTeX   string `yaml:"custom_latex,omitempty"`
}

// DocumentSettings selects the document class handed to the downstream
// compiler.
type DocumentSettings struct {
	Class        string   `yaml:"class"`
	ClassOptions []string `yaml:"class_options,omitempty"`
}

// TypographySettings controls the base text appearance.
type TypographySettings struct {
	FontSizePt      float64 `yaml:"font_size_pt"`
	LineStretch     float64 `yaml:"line_stretch"`
	BodyFont        string  `yaml:"body_font"`
	SansFont        string  `yaml:"sans_font"`
	MonoFont        string  `yaml:"mono_font"`
	IndentFirstLine bool    `yaml:"indent_first_line"`
	Language        string  `yaml:"language"`
	Microtype       bool    `yaml:"microtype"`
	PreventWidows   bool    `yaml:"prevent_widows"`
	ParagraphSkip   Length  `yaml:"paragraph_skip,omitempty"`
}

// Length is a dimension with an explicit unit. The zero value means
// "unset"; generators substitute a default or omit the token.
type Length struct {
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"` // pt, mm, cm, in, em
}

// IsZero reports whether the length was never set.
func (l Length) IsZero() bool {
	return l.Value == 0 && l.Unit == ""
}

// Pt builds a point-valued length.
func Pt(v float64) Length { return Length{Value: v, Unit: "pt"} }

// Cm builds a centimeter-valued length.
func Cm(v float64) Length { return Length{Value: v, Unit: "cm"} }

// Em builds an em-valued length.
func Em(v float64) Length { return Length{Value: v, Unit: "em"} }

// PageGeometry describes the physical page. It is optional on the root
// record: templates that rely on a named trim-size preset never populate
// it, and the advanced editing surface creates it lazily on first touch.
type PageGeometry struct {
	PaperWidth   Length `yaml:"paper_width,omitempty"`
	PaperHeight  Length `yaml:"paper_height,omitempty"`
	MarginTop    Length `yaml:"margin_top"`
	MarginBottom Length `yaml:"margin_bottom"`
	MarginInner  Length `yaml:"margin_inner"`
	MarginOuter  Length `yaml:"margin_outer"`
	HeaderHeight Length `yaml:"header_height,omitempty"`
	FooterSkip   Length `yaml:"footer_skip,omitempty"`
}

// HeaderFooterPreset names a fixed header/footer arrangement. Anything
// other than PresetCustom ignores the stored page records (they survive a
// round trip so a later switch back to custom keeps the user's zones).
type HeaderFooterPreset string

const (
	PresetNone          HeaderFooterPreset = "none"
	PresetBookClassic   HeaderFooterPreset = "book-classic"
	PresetChapterCorner HeaderFooterPreset = "chapter-corner"
	PresetFooterCenter  HeaderFooterPreset = "footer-center"
	PresetCustom        HeaderFooterPreset = "custom"
)

// HeaderFooterSettings selects a preset or a fully custom zone layout.
type HeaderFooterSettings struct {
	Preset    HeaderFooterPreset `yaml:"preset"`
	RuleWidth Length             `yaml:"rule_width,omitempty"`
	EvenPage  PageHeaderFooter   `yaml:"even_page,omitempty"`
	OddPage   PageHeaderFooter   `yaml:"odd_page,omitempty"`
}

// PageHeaderFooter holds the three ordered element lists of one page side.
type PageHeaderFooter struct {
	Left   []HeaderFooterElement `yaml:"left,omitempty"`
	Center []HeaderFooterElement `yaml:"center,omitempty"`
	Right  []HeaderFooterElement `yaml:"right,omitempty"`
}

// ElementKind tags a header/footer element variant.
type ElementKind string

const (
	ElementText       ElementKind = "text"
	ElementTitle      ElementKind = "title"
	ElementChapter    ElementKind = "chapter"
	ElementSection    ElementKind = "section"
	ElementAuthor     ElementKind = "author"
	ElementPageNumber ElementKind = "page"
	ElementRaw        ElementKind = "raw"
)

// HeaderFooterElement is a tagged variant. Text carries the payload for
// ElementText (escaped on emission) and ElementRaw (passed through).
type HeaderFooterElement struct {
	Kind ElementKind `yaml:"kind"`
	Text string      `yaml:"text,omitempty"`
}

// HeadingFormat selects the titlesec shape of a heading.
type HeadingFormat string

const (
	FormatHang    HeadingFormat = "hang"
	FormatDisplay HeadingFormat = "display"
	FormatBlock   HeadingFormat = "block"
	FormatDrop    HeadingFormat = "drop"
)

// HeadingStyle is the shared shape of the three heading levels.
type HeadingStyle struct {
	SizePt        float64       `yaml:"size_pt"`
	Weight        string        `yaml:"weight"` // normal, bold
	Style         string        `yaml:"style"`  // none, italic, small-caps
	Alignment     string        `yaml:"alignment"`
	SpacingBefore Length        `yaml:"spacing_before,omitempty"`
	SpacingAfter  Length        `yaml:"spacing_after,omitempty"`
	Numbered      bool          `yaml:"numbered"`
	Format        HeadingFormat `yaml:"format,omitempty"`
}

// ChapterStyling styles the top heading level and its page-break policy.
//
// The legacy pointer fields are the pre-v2 naming scheme still present in
// older presets. They are reconciled into the canonical fields once by
// Normalize; generators read only the canonical fields.
type ChapterStyling struct {
	HeadingStyle `yaml:",inline"`

	// NewPage starts every chapter on a fresh page. ClearPage additionally
	// forces the chapter onto an odd page; it implies NewPage semantics
	// regardless of the NewPage value.
	NewPage   bool `yaml:"new_page"`
	ClearPage bool `yaml:"clear_page"`

	// Legacy field set (old presets). Display mirrors Format
	// ("display" vs "hang"), BreakBefore mirrors NewPage, StartRight
	// mirrors ClearPage.
	Display     *bool `yaml:"display,omitempty"`
	BreakBefore *bool `yaml:"break_before,omitempty"`
	StartRight  *bool `yaml:"start_right,omitempty"`
}

// SectionStyling styles the middle heading level.
type SectionStyling struct {
	HeadingStyle `yaml:",inline"`
}

// SubsectionStyling styles the lowest heading level.
type SubsectionStyling struct {
	HeadingStyle `yaml:",inline"`
}

// TOCSettings controls the table of contents. Nothing TOC-related is
// emitted by either generator while Enabled is false.
type TOCSettings struct {
	Enabled            bool    `yaml:"enabled"`
	Depth              int     `yaml:"depth"`
	Title              string  `yaml:"title"`
	DotLeaders         bool    `yaml:"dot_leaders"`
	BoldChapterEntries bool    `yaml:"bold_chapter_entries"`
	IndentWidth        Length  `yaml:"indent_width,omitempty"`
	TitleSizePt        float64 `yaml:"title_size_pt,omitempty"`
	TitleAlignment     string  `yaml:"title_alignment,omitempty"`
}

// ListSettings controls bullet and numbered list rendering.
type ListSettings struct {
	BulletStyle string `yaml:"bullet_style"` // bullet, dash, triangle
	NumberStyle string `yaml:"number_style"` // arabic, roman, alpha
	ItemSpacing Length `yaml:"item_spacing,omitempty"`
	Compact     bool   `yaml:"compact"`
}

// ImageSettings controls figure defaults.
type ImageSettings struct {
	DefaultWidthRatio float64 `yaml:"default_width_ratio"` // fraction of text width
	CenterImages      bool    `yaml:"center_images"`
	StrictPlacement   bool    `yaml:"strict_placement"`
	CaptionSizePt     float64 `yaml:"caption_size_pt,omitempty"`
	BoldCaptionLabel  bool    `yaml:"bold_caption_label"`
}

// TableStyle selects the rule scheme for tables.
type TableStyle string

const (
	TableStylePlain    TableStyle = "plain"
	TableStyleBooktabs TableStyle = "booktabs"
	TableStyleGrid     TableStyle = "grid"
)

// TableSettings controls table rendering defaults.
type TableSettings struct {
	Style        TableStyle `yaml:"style"`
	FontSizePt   float64    `yaml:"font_size_pt,omitempty"`
	CaptionAbove bool       `yaml:"caption_above"`
}

// CodeBlockSettings controls fenced code block rendering.
type CodeBlockSettings struct {
	SyntaxHighlighting bool    `yaml:"syntax_highlighting"`
	HighlightTheme     string  `yaml:"highlight_theme"`
	FontSizePt         float64 `yaml:"font_size_pt,omitempty"`
	LineNumbers        bool    `yaml:"line_numbers"`
	WrapLongLines      bool    `yaml:"wrap_long_lines"`
}

// BibliographySettings is stored with the template for the surrounding
// product (citation tooling); neither generator lowers it today.
type BibliographySettings struct {
	Style        string `yaml:"style"`
	Title        string `yaml:"title"`
	IncludeInTOC bool   `yaml:"include_in_toc"`
}

// FrontMatterSettings groups the front-matter surfaces.
type FrontMatterSettings struct {
	TitlePage TitlePageSettings `yaml:"title_page"`
	Abstract  AbstractSettings  `yaml:"abstract"`
}

// TitlePageSettings lays out the generated title page. When Enabled the
// preamble generator replaces the document class's default title rendering
// entirely.
type TitlePageSettings struct {
	Enabled        bool    `yaml:"enabled"`
	TitleSizePt    float64 `yaml:"title_size_pt"`
	SubtitleSizePt float64 `yaml:"subtitle_size_pt"`
	AuthorSizePt   float64 `yaml:"author_size_pt"`
	DateSizePt     float64 `yaml:"date_size_pt"`
	LetterSpacing  bool    `yaml:"letter_spacing"`
}

// AbstractSettings controls the abstract block of the front matter.
type AbstractSettings struct {
	Enabled bool   `yaml:"enabled"`
	Title   string `yaml:"title"`
}
