package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	shelferrors "github.com/conneroisu/shelfpage/internal/errors"
)

var renderCmd = &cobra.Command{
	Use:     "render",
	Aliases: []string{"r"},
	Short:   "Render the landing page to HTML",
	Long: `Render the host page with the catalog filled in and write the HTML.

Examples:
  shelfpage render                        # Built-in page to stdout
  shelfpage render -s site/index.html     # Custom host page
  shelfpage render -o public/index.html   # Write to a file`,
	Args:    cobra.NoArgs,
	PreRunE: bindOnRun(renderBindings),
	RunE:    runRender,
}

var renderBindings = map[string]string{
	"source": "page.source",
	"output": "page.output",
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("source", "s", "", "host page to render (default is the built-in page)")
	renderCmd.Flags().StringP("output", "o", "", "output file (default or - is stdout)")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	doc, err := loadPage(ctx, cfg, logger, nil)
	if err != nil {
		return err
	}

	if cfg.Page.Output == "" || cfg.Page.Output == "-" {
		return writeDocument(cmd.OutOrStdout(), doc.Render, "stdout")
	}

	f, err := os.Create(cfg.Page.Output)
	if err != nil {
		return shelferrors.WrapIO(err, shelferrors.ErrCodeWriteFailed, "cannot create output file", cfg.Page.Output)
	}
	if err := writeDocument(f, doc.Render, cfg.Page.Output); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return shelferrors.WrapIO(err, shelferrors.ErrCodeWriteFailed, "cannot close output file", cfg.Page.Output)
	}

	logger.Info(ctx, "Page rendered", "output", cfg.Page.Output)
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", cfg.Page.Output)
	return nil
}

func writeDocument(w io.Writer, render func(io.Writer) error, dest string) error {
	if err := render(w); err != nil {
		return shelferrors.WrapIO(err, shelferrors.ErrCodeWriteFailed, "cannot write page", dest)
	}
	return nil
}
