package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inkpress/typeset/internal/config"
	"github.com/inkpress/typeset/internal/server"
	"github.com/inkpress/typeset/internal/watcher"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Serve a live browser preview of both artifacts",
	Long: `Start the preview server: the template is compiled on every request
and the page reloads automatically when the template file changes.

Examples:
  typeset serve                   # http://localhost:8361
  typeset serve --port 9000
  typeset serve -t novel.yml`,
	RunE: runServeCommand,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 0, "Port to serve on (default 8361)")
	serveCmd.Flags().String("host", "", "Host to bind to (default localhost)")
	bindFlag(serveCmd.Flags(), "port")
	bindFlag(serveCmd.Flags(), "host")
}

func runServeCommand(cmd *cobra.Command, args []string) error {
	log := newLogger()

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	if p := viper.GetInt("port"); p != 0 {
		settings.Server.Port = p
	}
	if h := viper.GetString("host"); h != "" {
		settings.Server.Host = h
	}

	srv := server.New(settings.Template, settings.Server, log)

	w, err := watcher.New(settings.Template, time.Duration(settings.Watch.DebounceMs)*time.Millisecond, log)
	if err != nil {
		return err
	}
	defer w.Stop()
	w.OnChange(func(string) { srv.NotifyReload() })

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	w.Start(ctx)

	return srv.Start(ctx)
}
