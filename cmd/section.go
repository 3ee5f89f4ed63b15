package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inkpress/typeset/internal/config"
	"github.com/inkpress/typeset/internal/metadata"
)

var sectionList bool

// sectionCmd represents the section command.
var sectionCmd = &cobra.Command{
	Use:   "section [name]",
	Short: "Regenerate one metadata section for preview",
	Long: `Regenerate a single named section of the metadata artifact in
isolation, for inspection and debugging without materializing the whole
document. The section output is a preview: it skips the expert-mode
override and the merge fragment.

Examples:
  typeset section typography      # just the typography keys
  typeset section toc             # just the table-of-contents keys
  typeset section --list          # list section names`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSectionCommand,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
	sectionCmd.Flags().BoolVar(&sectionList, "list", false, "List the available section names")
}

func runSectionCommand(cmd *cobra.Command, args []string) error {
	if sectionList {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(metadata.SectionNames(), "\n"))
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("expected a section name (one of: %s)", strings.Join(metadata.SectionNames(), ", "))
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	cfg, err := config.Load(settings.Template)
	if err != nil {
		return err
	}

	out := metadata.NewGenerator(newLogger()).GenerateSection(cfg, args[0])
	if out == "" {
		return fmt.Errorf("unknown or empty section %q (one of: %s)", args[0], strings.Join(metadata.SectionNames(), ", "))
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
