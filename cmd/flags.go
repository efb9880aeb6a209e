package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	shelferrors "github.com/conneroisu/shelfpage/internal/errors"
)

// SetViperBindings binds each named flag to its config key so a set flag
// overrides env and file values.
func SetViperBindings(flags *pflag.FlagSet, bindings map[string]string) error {
	for flagName, configKey := range bindings {
		flag := flags.Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(configKey, flag); err != nil {
			return shelferrors.Wrap(err, shelferrors.ErrorTypeInternal, shelferrors.ErrCodeConfigInvalid, "cannot bind flag --"+flagName)
		}
	}
	return nil
}

// bindOnRun returns a PreRunE that applies bindings for the running
// command. Binding happens per run so tests may reset viper between runs.
func bindOnRun(bindings map[string]string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return SetViperBindings(cmd.Flags(), bindings)
	}
}

// validateChoice rejects a flag value outside allowed.
func validateChoice(flag, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return shelferrors.NewValidationError(shelferrors.ErrCodeConfigInvalid, "unsupported --"+flag+" value").
		WithContext("value", value)
}
