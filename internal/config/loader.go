package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a template file and returns the decoded configuration layered
// over the factory defaults, with the legacy naming scheme reconciled.
// Fields absent from the file keep their default values, so a minimal
// template that only sets a font still produces a complete record.
func Load(path string) (*TemplateConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes template YAML over the factory defaults.
func Parse(data []byte) (*TemplateConfiguration, error) {
	cfg, err := ParseRaw(data)
	if err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

// ParseRaw decodes template YAML over the factory defaults without
// reconciling the legacy naming scheme. Diagnostics use it to inspect a
// template as written.
func ParseRaw(data []byte) (*TemplateConfiguration, error) {
	cfg := NewTemplateConfiguration()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return cfg, nil
}

// Export encodes the effective configuration back to YAML. Used by the
// export command and by tests to round-trip a record.
func (c *TemplateConfiguration) Export() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding template: %w", err)
	}
	return out, nil
}
