package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/shelfpage/internal/config"
	shelferrors "github.com/conneroisu/shelfpage/internal/errors"
)

var initCmd = &cobra.Command{
	Use:     "init [dir]",
	Aliases: []string{"i"},
	Short:   "Write a default .shelfpage.yml",
	Long: `Write a .shelfpage.yml holding every option at its default value.
If no directory is given, the file goes in the current directory.

Examples:
  shelfpage init              # ./.shelfpage.yml
  shelfpage init site         # site/.shelfpage.yml
  shelfpage init --force      # Overwrite an existing file`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

const configHeader = "# shelfpage configuration. Environment variables SHELFPAGE_<SECTION>_<OPTION>\n# and command-line flags override these values.\n"

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return shelferrors.WrapIO(err, shelferrors.ErrCodeWriteFailed, "cannot create directory", dir)
		}
	}
	path := filepath.Join(dir, config.DefaultFile)

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return shelferrors.NewConfigError(shelferrors.ErrCodeConfigInvalid, "config file already exists, use --force to overwrite").
			WithSource(path)
	}

	data, err := marshalConfig(config.Default())
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return shelferrors.WrapIO(err, shelferrors.ErrCodeWriteFailed, "cannot write config file", path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func marshalConfig(cfg *config.Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, shelferrors.Wrap(err, shelferrors.ErrorTypeInternal, shelferrors.ErrCodeWriteFailed, "cannot encode config")
	}
	if err := enc.Close(); err != nil {
		return nil, shelferrors.Wrap(err, shelferrors.ErrorTypeInternal, shelferrors.ErrCodeWriteFailed, "cannot encode config")
	}
	return buf.Bytes(), nil
}
