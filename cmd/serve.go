package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/conneroisu/shelfpage/internal/server"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the preview server with live reload",
	Long: `Serve the landing page over HTTP. Every request renders the page
fresh, and open browsers reload when the host page file changes.

Examples:
  shelfpage serve                          # http://localhost:8080
  shelfpage serve -p 3000 --host 0.0.0.0   # Listen on all interfaces
  shelfpage serve --no-reload              # No watcher, no reload script`,
	Args:    cobra.NoArgs,
	PreRunE: bindOnRun(serveBindings),
	RunE:    runServe,
}

var serveBindings = map[string]string{
	"port":   "server.port",
	"host":   "server.host",
	"source": "page.source",
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "Port to serve on")
	serveCmd.Flags().String("host", "localhost", "Host to bind to")
	serveCmd.Flags().StringP("source", "s", "", "host page to serve (default is the built-in page)")
	serveCmd.Flags().Bool("no-reload", false, "Disable file watching and live reload")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if noReload, _ := cmd.Flags().GetBool("no-reload"); noReload {
		cfg.Development.HotReload = false
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Starting shelfpage preview at http://%s\n", cfg.Address())

	if err := srv.Start(ctx); err != nil {
		return err
	}
	logger.Info(ctx, "Preview server stopped")
	return nil
}
