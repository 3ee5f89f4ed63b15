package config

// Normalize reconciles the legacy chapter naming scheme into the canonical
// field set. Old presets carry display/break_before/start_right instead of
// format/new_page/clear_page; both spellings must load. A legacy value
// only wins while its canonical counterpart is still at the zero value, so
// templates that carry both schemes keep the modern one.
//
// Normalize runs once at load time; generators never look at the legacy
// fields.
func (c *TemplateConfiguration) Normalize() {
	ch := &c.Chapters

	if ch.Format == "" && ch.Display != nil {
		if *ch.Display {
			ch.Format = FormatDisplay
		} else {
			ch.Format = FormatHang
		}
	}
	if !ch.NewPage && ch.BreakBefore != nil {
		ch.NewPage = *ch.BreakBefore
	}
	if !ch.ClearPage && ch.StartRight != nil {
		ch.ClearPage = *ch.StartRight
	}

	// Drop the legacy fields so a re-exported template carries one scheme.
	ch.Display = nil
	ch.BreakBefore = nil
	ch.StartRight = nil

	if ch.Format == "" {
		ch.Format = FormatHang
	}
	if c.Sections.Format == "" {
		c.Sections.Format = FormatHang
	}
	if c.Subsections.Format == "" {
		c.Subsections.Format = FormatHang
	}
	if c.HeadersFooters.Preset == "" {
		c.HeadersFooters.Preset = PresetNone
	}
}

// UsesLegacyChapterFields reports whether the record still carries the old
// naming scheme, for diagnostics before Normalize has run.
func (c *TemplateConfiguration) UsesLegacyChapterFields() bool {
	ch := c.Chapters
	return ch.Display != nil || ch.BreakBefore != nil || ch.StartRight != nil
}
