package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/conneroisu/shelfpage/internal/config"
	"github.com/conneroisu/shelfpage/internal/dom"
	"github.com/conneroisu/shelfpage/internal/logging"
	"github.com/conneroisu/shelfpage/internal/page"
)

// loadConfig reads the merged configuration and builds a logger on the
// command's stderr.
func loadConfig(cmd *cobra.Command) (*config.Config, logging.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, cfg.NewLogger(cmd.ErrOrStderr()), nil
}

// loadPage renders the configured host page once.
func loadPage(ctx context.Context, cfg *config.Config, logger logging.Logger, notifier page.Notifier) (*dom.Document, error) {
	src, err := page.OpenHost(cfg.Page.Source)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return page.Load(ctx, src, cfg.PageOptions(logger, notifier))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
