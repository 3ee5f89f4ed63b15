package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/inkpress/typeset/internal/metadata"
)

var (
	manuscriptFile     string
	manuscriptTitle    string
	manuscriptAuthor   string
	manuscriptDate     string
	manuscriptKeywords []string
)

// addManuscriptFlags registers the document-metadata flags shared by the
// commands that emit the metadata artifact.
func addManuscriptFlags(flags *pflag.FlagSet) {
	flags.StringVar(&manuscriptFile, "meta", "", "manuscript metadata file (YAML: title, author, date, ...)")
	flags.StringVar(&manuscriptTitle, "title", "", "manuscript title (overrides --meta)")
	flags.StringVar(&manuscriptAuthor, "author", "", "manuscript author (overrides --meta)")
	flags.StringVar(&manuscriptDate, "date", "", "manuscript date (overrides --meta)")
	flags.StringSliceVar(&manuscriptKeywords, "keyword", nil, "manuscript keyword (repeatable, overrides --meta)")
}

// loadManuscript assembles the optional manuscript metadata from the
// --meta file and the direct flags. Returns nil when nothing was given so
// the generator omits the metadata keys entirely.
func loadManuscript() (*metadata.Manuscript, error) {
	var m metadata.Manuscript

	if manuscriptFile != "" {
		data, err := os.ReadFile(manuscriptFile)
		if err != nil {
			return nil, fmt.Errorf("reading manuscript metadata: %w", err)
		}
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing manuscript metadata: %w", err)
		}
	}

	if manuscriptTitle != "" {
		m.Title = manuscriptTitle
	}
	if manuscriptAuthor != "" {
		m.Author = manuscriptAuthor
	}
	if manuscriptDate != "" {
		m.Date = manuscriptDate
	}
	if len(manuscriptKeywords) > 0 {
		m.Keywords = manuscriptKeywords
	}

	if m.Title == "" && m.Subtitle == "" && m.Author == "" && m.Date == "" &&
		len(m.Keywords) == 0 && m.Description == "" && m.Identifier == "" {
		return nil, nil
	}
	return &m, nil
}
