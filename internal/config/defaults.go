package config

// NewTemplateConfiguration returns the factory defaults: a 5.5x8.5in trade
// book with Palatino-family typography, a two-level table of contents, and
// classic running headers. Every preset and every template file starts
// from this record.
func NewTemplateConfiguration() *TemplateConfiguration {
	return &TemplateConfiguration{
		ID:       "default",
		Name:     "Default",
		Category: "book",
		Document: DocumentSettings{
			Class:        "book",
			ClassOptions: []string{"11pt", "twoside", "openright"},
		},
		Typography: TypographySettings{
			FontSizePt:      11,
			LineStretch:     1.15,
			BodyFont:        "TeX Gyre Pagella",
			SansFont:        "TeX Gyre Heros",
			MonoFont:        "TeX Gyre Cursor",
			IndentFirstLine: true,
			Language:        "en-US",
			Microtype:       true,
			PreventWidows:   true,
		},
		Geometry: &PageGeometry{
			PaperWidth:   Length{Value: 5.5, Unit: "in"},
			PaperHeight:  Length{Value: 8.5, Unit: "in"},
			MarginTop:    Cm(2),
			MarginBottom: Cm(2),
			MarginInner:  Cm(2.2),
			MarginOuter:  Cm(1.8),
		},
		HeadersFooters: HeaderFooterSettings{
			Preset:    PresetBookClassic,
			RuleWidth: Pt(0.4),
		},
		Chapters: ChapterStyling{
			HeadingStyle: HeadingStyle{
				SizePt:        24,
				Weight:        "bold",
				Style:         "none",
				Alignment:     "left",
				SpacingBefore: Pt(50),
				SpacingAfter:  Pt(30),
				Numbered:      true,
				Format:        FormatDisplay,
			},
			NewPage:   true,
			ClearPage: true,
		},
		Sections: SectionStyling{
			HeadingStyle: HeadingStyle{
				SizePt:        14,
				Weight:        "bold",
				Style:         "none",
				Alignment:     "left",
				SpacingBefore: Pt(18),
				SpacingAfter:  Pt(9),
				Numbered:      true,
				Format:        FormatHang,
			},
		},
		Subsections: SubsectionStyling{
			HeadingStyle: HeadingStyle{
				SizePt:        12,
				Weight:        "bold",
				Style:         "italic",
				Alignment:     "left",
				SpacingBefore: Pt(12),
				SpacingAfter:  Pt(6),
				Numbered:      false,
				Format:        FormatHang,
			},
		},
		TableOfContents: TOCSettings{
			Enabled:            true,
			Depth:              2,
			Title:              "Contents",
			DotLeaders:         true,
			BoldChapterEntries: true,
			IndentWidth:        Em(1.5),
			TitleSizePt:        20,
			TitleAlignment:     "left",
		},
		Lists: ListSettings{
			BulletStyle: "bullet",
			NumberStyle: "arabic",
			ItemSpacing: Pt(3),
		},
		Images: ImageSettings{
			DefaultWidthRatio: 0.8,
			CenterImages:      true,
			CaptionSizePt:     9,
			BoldCaptionLabel:  true,
		},
		Tables: TableSettings{
			Style:        TableStyleBooktabs,
			CaptionAbove: true,
		},
		CodeBlocks: CodeBlockSettings{
			SyntaxHighlighting: true,
			HighlightTheme:     "pygments",
			FontSizePt:         9,
			WrapLongLines:      true,
		},
		Bibliography: BibliographySettings{
			Style: "chicago",
			Title: "Bibliography",
		},
		FrontMatter: FrontMatterSettings{
			TitlePage: TitlePageSettings{
				Enabled:        true,
				TitleSizePt:    28,
				SubtitleSizePt: 16,
				AuthorSizePt:   14,
				DateSizePt:     11,
			},
			Abstract: AbstractSettings{
				Title: "Abstract",
			},
		},
	}
}
