package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds the tool's own configuration (as opposed to the template
// being compiled): output paths, preview server binding, watch behavior.
// Values come from .typeset.yml, TYPESET_* environment variables, and
// command-line flags, in ascending precedence.
type Settings struct {
	Template string         `yaml:"template"`
	Output   OutputSettings `yaml:"output"`
	Server   ServerSettings `yaml:"server"`
	Watch    WatchSettings  `yaml:"watch"`
}

// OutputSettings names the two artifact files.
type OutputSettings struct {
	Metadata string `yaml:"metadata"`
	Preamble string `yaml:"preamble"`
}

// ServerSettings binds the preview server.
type ServerSettings struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// WatchSettings tunes the file watcher.
type WatchSettings struct {
	DebounceMs int `yaml:"debounce_ms"`
}

// LoadSettings resolves tool settings from viper, applying defaults for
// anything not set by file, environment, or flag.
func LoadSettings() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	if s.Template == "" {
		s.Template = viper.GetString("template")
	}
	if s.Template == "" {
		s.Template = "template.yml"
	}
	if s.Output.Metadata == "" {
		s.Output.Metadata = "metadata.yaml"
	}
	if s.Output.Preamble == "" {
		s.Output.Preamble = "preamble.tex"
	}
	if s.Server.Host == "" {
		s.Server.Host = "localhost"
	}
	if s.Server.Port == 0 {
		s.Server.Port = 8361
	}
	if s.Watch.DebounceMs <= 0 {
		s.Watch.DebounceMs = 250
	}

	return &s, nil
}
