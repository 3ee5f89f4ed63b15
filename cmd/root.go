// Package cmd provides the typeset command-line interface.
//
// Configuration sources, in ascending precedence: .typeset.yml in the
// working directory, TYPESET_* environment variables (TYPESET_TEMPLATE,
// TYPESET_SERVER_PORT, ...), and command-line flags. The template being
// compiled is a separate YAML file named by the template setting.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/inkpress/typeset/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "typeset",
	Short: "Compile manuscript formatting templates into metadata and preamble blocks",
	Long: `Typeset compiles a manuscript formatting template (fonts, margins,
chapter styling, headers, table of contents, front matter) into the two
artifacts the document compiler consumes: a metadata block and a
typesetting preamble.

Quick Start:
  typeset generate                Compile both artifacts to files
  typeset generate --stdout       Print both artifacts
  typeset section typography      Preview one metadata section
  typeset watch                   Recompile on template changes
  typeset serve                   Live preview in the browser
  typeset doctor                  Check a template for problems`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .typeset.yml)")
	flags.StringP("template", "t", "", "template file to compile (default template.yml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")

	bindFlag(flags, "template")
	bindFlag(flags, "log-level")
	bindFlag(flags, "log-format")
}

func bindFlag(flags *pflag.FlagSet, name string) {
	if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
		fmt.Fprintln(os.Stderr, "binding flag:", err)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".typeset")
	}

	viper.SetEnvPrefix("TYPESET")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// A missing config file is fine; defaults and flags carry the tool.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newLogger() logging.Logger {
	return logging.New(&logging.Config{
		Level:  viper.GetString("log-level"),
		Format: viper.GetString("log-format"),
	})
}
