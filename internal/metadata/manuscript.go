package metadata

// Manuscript is the flat document metadata extracted from a manuscript's
// leading metadata block by the surrounding product. Empty fields are
// absent: they are omitted from the output, never emitted as null.
type Manuscript struct {
	Title       string   `yaml:"title,omitempty"`
	Subtitle    string   `yaml:"subtitle,omitempty"`
	Author      string   `yaml:"author,omitempty"`
	Date        string   `yaml:"date,omitempty"`
	Keywords    []string `yaml:"keywords,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Identifier  string   `yaml:"identifier,omitempty"`
}
