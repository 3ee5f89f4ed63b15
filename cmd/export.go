package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/inkpress/typeset/internal/config"
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the effective template configuration",
	Long: `Print the template as the compiler sees it: factory defaults layered
under the file's values, with the legacy chapter naming scheme already
reconciled. Useful for turning a minimal template into a fully explicit
one, or for checking what a preset actually sets.`,
	RunE: runExportCommand,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExportCommand(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	cfg, err := config.Load(settings.Template)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(cfg)
}
