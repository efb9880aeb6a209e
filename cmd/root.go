// Package cmd provides the shelfpage command-line interface.
//
// Configuration sources, highest priority first:
//  1. Command-line flags (--port, --source, ...)
//  2. SHELFPAGE_<SECTION>_<OPTION> environment variables
//  3. The file named by --config or SHELFPAGE_CONFIG_FILE
//  4. .shelfpage.yml in the current directory
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/shelfpage/internal/config"
	shelferrors "github.com/conneroisu/shelfpage/internal/errors"
)

var (
	cfgFile       string
	configReadErr error
)

var rootCmd = &cobra.Command{
	Use:   "shelfpage",
	Short: "Render and preview the bookstore landing page",
	Long: `shelfpage fills a bookstore landing page with its category and
bestseller catalog, wires the hover and search behavior, and serves the
result for local preview with live reload.

Quick Start:
  shelfpage init                  Write a default .shelfpage.yml
  shelfpage render -o index.html  Render the page to a file
  shelfpage serve                 Start the preview server
  shelfpage search "dune"         Run a query through the search box`,
	SilenceUsage:      true,
	PersistentPreRunE: rootPreRun,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .shelfpage.yml, can also use SHELFPAGE_CONFIG_FILE)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
}

var persistentBindings = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
}

func rootPreRun(cmd *cobra.Command, _ []string) error {
	if configReadErr != nil {
		return configReadErr
	}
	return SetViperBindings(cmd.Root().PersistentFlags(), persistentBindings)
}

// initConfig points viper at the config file and environment. A missing
// default file is fine; an explicitly named file must be readable.
func initConfig() {
	configReadErr = nil
	explicit := cfgFile
	if explicit == "" {
		explicit = os.Getenv(config.EnvPrefix + "_CONFIG_FILE")
	}

	if explicit != "" {
		viper.SetConfigFile(explicit)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".shelfpage")
	}

	config.BindEnv(viper.GetViper())

	err := viper.ReadInConfig()
	if err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		return
	}

	var notFound viper.ConfigFileNotFoundError
	if explicit == "" && errors.As(err, &notFound) {
		return
	}
	configReadErr = shelferrors.WrapConfig(err, shelferrors.ErrCodeConfigInvalid, "cannot read config file").
		WithSource(explicit)
}
