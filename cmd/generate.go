package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inkpress/typeset/internal/config"
	"github.com/inkpress/typeset/internal/metadata"
	"github.com/inkpress/typeset/internal/preamble"
)

var generateStdout bool

// generateCmd represents the generate command.
var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Compile the template into both artifacts",
	Long: `Compile the template into the metadata block and the typesetting
preamble, written to the configured output files.

Examples:
  typeset generate                                  # metadata.yaml + preamble.tex
  typeset generate --stdout                         # print both artifacts
  typeset generate -t novel.yml --title "Dune"      # inline manuscript metadata
  typeset generate --meta manuscript.yml            # metadata from a file`,
	RunE: runGenerateCommand,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "Print artifacts instead of writing files")
	generateCmd.Flags().String("metadata-out", "", "Metadata output path (default metadata.yaml)")
	generateCmd.Flags().String("preamble-out", "", "Preamble output path (default preamble.tex)")
	bindFlag(generateCmd.Flags(), "metadata-out")
	bindFlag(generateCmd.Flags(), "preamble-out")
	addManuscriptFlags(generateCmd.Flags())
}

func runGenerateCommand(cmd *cobra.Command, args []string) error {
	log := newLogger()

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	overrideOutputs(settings)

	cfg, err := config.Load(settings.Template)
	if err != nil {
		return err
	}

	m, err := loadManuscript()
	if err != nil {
		return err
	}

	metadataOut := metadata.NewGenerator(log).Generate(cfg, m)
	preambleOut := preamble.NewGenerator().Generate(cfg)

	if generateStdout {
		fmt.Fprint(cmd.OutOrStdout(), metadataOut)
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), preambleOut)
		return nil
	}

	if err := os.WriteFile(settings.Output.Metadata, []byte(metadataOut), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", settings.Output.Metadata, err)
	}
	if err := os.WriteFile(settings.Output.Preamble, []byte(preambleOut), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", settings.Output.Preamble, err)
	}

	log.Info("artifacts written",
		"template", settings.Template,
		"metadata", settings.Output.Metadata,
		"preamble", settings.Output.Preamble)
	return nil
}

// overrideOutputs applies the generate-specific output flags on top of the
// settings file.
func overrideOutputs(settings *config.Settings) {
	if v := viper.GetString("metadata-out"); v != "" {
		settings.Output.Metadata = v
	}
	if v := viper.GetString("preamble-out"); v != "" {
		settings.Output.Preamble = v
	}
}
