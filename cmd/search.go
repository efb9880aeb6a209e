package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/shelfpage/internal/dom"
	shelferrors "github.com/conneroisu/shelfpage/internal/errors"
	"github.com/conneroisu/shelfpage/internal/page"
)

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Type a query into the page's search box and press Enter",
	Long: `Mount the page, type the query into the search input, press Enter
and print the alert the page shows.

Examples:
  shelfpage search dune
  shelfpage search "the silent patient"`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: bindOnRun(searchBindings),
	RunE:    runSearch,
}

var searchBindings = map[string]string{
	"source": "page.source",
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("source", "s", "", "host page to search (default is the built-in page)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	notifier := &page.RecordingNotifier{}
	doc, err := loadPage(commandContext(cmd), cfg, logger, notifier)
	if err != nil {
		return err
	}

	input, ok := doc.Find(cfg.Selectors.SearchInput...)
	if !ok || input.Listeners(dom.EventKeyPress) == 0 {
		return shelferrors.NewValidationError(shelferrors.ErrCodeRenderFailed, "host page has no wired search box").
			WithContext("input", strings.Join(cfg.Selectors.SearchInput, " | ")).
			WithContext("button", strings.Join(cfg.Selectors.SearchButton, " | "))
	}

	input.SetValue(strings.Join(args, " "))
	input.PressKey(dom.KeyEnter)

	for _, msg := range notifier.Messages {
		fmt.Fprintln(cmd.OutOrStdout(), msg)
	}
	return nil
}
