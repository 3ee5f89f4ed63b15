package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/inkpress/typeset/internal/config"
)

var doctorFormat string

// DiagnosticCheck is one finding of the template doctor.
type DiagnosticCheck struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Status   string `json:"status" yaml:"status"` // "ok", "warning", "error"
	Message  string `json:"message" yaml:"message"`
}

// doctorCmd represents the doctor command.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check a template for problems",
	Long: `Check the template for common problems: parse failures, the legacy
chapter naming scheme, stale expert-mode payloads, and suspicious values
that generate but rarely mean what the author intended.

Examples:
  typeset doctor                  # human-readable report
  typeset doctor --format yaml    # machine-readable report`,
	RunE: runDoctorCommand,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVarP(&doctorFormat, "format", "f", "text", "Output format (text, yaml)")
}

func runDoctorCommand(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	checks := diagnoseTemplate(settings.Template)

	if doctorFormat == "yaml" {
		out, err := yaml.Marshal(checks)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	}

	title := cases.Title(language.English)
	category := ""
	for _, c := range checks {
		if c.Category != category {
			category = c.Category
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", title.String(category))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %s: %s\n", c.Status, c.Name, c.Message)
	}
	return nil
}

// diagnoseTemplate runs every check against one template file.
func diagnoseTemplate(path string) []DiagnosticCheck {
	var checks []DiagnosticCheck
	add := func(category, name, status, message string) {
		checks = append(checks, DiagnosticCheck{
			Name: name, Category: category, Status: status, Message: message,
		})
	}

	cfg, err := config.Load(path)
	if err != nil {
		add("template", "parse", "error", err.Error())
		return checks
	}
	add("template", "parse", "ok", path+" parsed")

	// Load already normalized; reparse raw to detect the legacy scheme.
	raw, rawErr := loadRaw(path)
	if rawErr == nil && raw.UsesLegacyChapterFields() {
		add("template", "legacy-fields", "warning",
			"chapter styling uses the legacy naming scheme; run 'typeset export' to upgrade")
	} else {
		add("template", "legacy-fields", "ok", "no legacy chapter fields")
	}

	em := cfg.ExpertMode
	if !em.YAMLOverride && em.CustomYAML != "" {
		add("expert mode", "stale-yaml-payload", "warning",
			"custom metadata payload present but the override flag is off; the payload is ignored")
	} else {
		add("expert mode", "stale-yaml-payload", "ok", "metadata override consistent")
	}
	if !em.LaTeXOverride && em.CustomLaTeX != "" {
		add("expert mode", "stale-latex-payload", "warning",
			"custom preamble payload present but the override flag is off; the payload is ignored")
	} else {
		add("expert mode", "stale-latex-payload", "ok", "preamble override consistent")
	}

	if cfg.Geometry == nil {
		add("geometry", "record", "warning",
			"no geometry record; the metadata block will carry no page dimensions")
	} else {
		add("geometry", "record", "ok", "geometry present")
	}

	toc := cfg.TableOfContents
	if toc.Enabled && (toc.Depth < 0 || toc.Depth > 5) {
		add("table of contents", "depth", "warning",
			fmt.Sprintf("depth %d is outside the usual 0-5 range", toc.Depth))
	} else {
		add("table of contents", "depth", "ok", "depth in range")
	}

	switch cfg.HeadersFooters.Preset {
	case config.PresetNone, config.PresetBookClassic, config.PresetChapterCorner,
		config.PresetFooterCenter, config.PresetCustom:
		add("headers", "preset", "ok", string(cfg.HeadersFooters.Preset))
	default:
		add("headers", "preset", "error",
			fmt.Sprintf("unknown preset %q", cfg.HeadersFooters.Preset))
	}

	return checks
}

// loadRaw parses the template without normalization so the legacy fields
// are still visible.
func loadRaw(path string) (*config.TemplateConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return config.ParseRaw(data)
}
