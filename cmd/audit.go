package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conneroisu/shelfpage/internal/accessibility"
	shelferrors "github.com/conneroisu/shelfpage/internal/errors"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Check the rendered page for accessibility problems",
	Long: `Render the page and check it against WCAG rules for images, form
labels, button names, the page title and language, and icon glyphs.

Examples:
  shelfpage audit                  # Table of violations
  shelfpage audit --format json    # Machine readable
  shelfpage audit --strict         # Fail when any error is found`,
	Args:    cobra.NoArgs,
	PreRunE: bindOnRun(auditBindings),
	RunE:    runAudit,
}

var auditBindings = map[string]string{
	"source": "page.source",
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().StringP("source", "s", "", "host page to audit (default is the built-in page)")
	auditCmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	auditCmd.Flags().Bool("strict", false, "Exit with an error when error-severity violations are found")
}

func runAudit(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	strict, _ := cmd.Flags().GetBool("strict")
	if err := validateChoice("format", format, "table", "json"); err != nil {
		return err
	}

	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	doc, err := loadPage(commandContext(cmd), cfg, logger, nil)
	if err != nil {
		return err
	}

	report := accessibility.Audit(doc.Root(), nil)

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SEVERITY\tRULE\tWCAG\tELEMENT\tMESSAGE")
		for _, v := range report.Violations {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", v.Severity, v.Rule, v.Criteria, v.Selector, v.Message)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%d errors, %d warnings, %d notices\n",
			report.Counts[accessibility.SeverityError],
			report.Counts[accessibility.SeverityWarning],
			report.Counts[accessibility.SeverityInfo])
	}

	if strict && report.HasErrors() {
		return shelferrors.NewValidationError(shelferrors.ErrCodeAuditFailed, "accessibility audit found errors").
			WithContext("errors", report.Counts[accessibility.SeverityError])
	}
	return nil
}
