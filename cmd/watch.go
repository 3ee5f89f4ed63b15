package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/inkpress/typeset/internal/config"
	"github.com/inkpress/typeset/internal/watcher"
)

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w"},
	Short:   "Recompile the artifacts whenever the template changes",
	Long: `Watch the template file and rerun generation on every change, with
editor save bursts debounced into one run. Stops on Ctrl-C.`,
	RunE: runWatchCommand,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addManuscriptFlags(watchCmd.Flags())
}

func runWatchCommand(cmd *cobra.Command, args []string) error {
	log := newLogger()

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	// Initial compile so the artifacts exist before the first change.
	if err := runGenerateCommand(cmd, nil); err != nil {
		return err
	}

	w, err := watcher.New(settings.Template, time.Duration(settings.Watch.DebounceMs)*time.Millisecond, log)
	if err != nil {
		return err
	}
	defer w.Stop()

	w.OnChange(func(path string) {
		if err := runGenerateCommand(cmd, nil); err != nil {
			log.Error(err, "regeneration failed", "template", path)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	w.Start(ctx)

	log.Info("watching template", "path", settings.Template)
	<-ctx.Done()
	return nil
}
