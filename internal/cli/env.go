package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envBinder sets flag values from environment variables named
// <PREFIX>_<FLAG_NAME>, e.g. "log-level" is read from SHELF_LOG_LEVEL.
//
// Arguments take precedence over environment variables, which take precedence
// over default values.
type envBinder struct {
	lookup func(string) (string, bool)
	prefix string
}

// bindEnvVars binds the local and persistent flags of cmd to environment
// variables, and adds the variable names to the flag usage.
func bindEnvVars(cmd *cobra.Command) {
	b := envBinder{prefix: cmdName, lookup: os.LookupEnv}

	cmd.Flags().VisitAll(b.bind)
	cmd.PersistentFlags().VisitAll(b.bind)
}

func (b envBinder) bind(flag *pflag.Flag) {
	if flag.Name == "help" {
		return
	}

	envName := b.envName(flag.Name)

	if !strings.Contains(flag.Usage, envName) {
		flag.Usage = fmt.Sprintf("%s ($%s)", flag.Usage, envName)
	}

	if flag.Changed {
		return
	}

	envValue, ok := b.lookup(envName)
	if !ok {
		return
	}

	err := flag.Value.Set(envValue)
	if err != nil {
		// Keep the default value.
		slog.Error("failed to set flag from environment variable",
			slog.String("flag", flag.Name),
			slog.String("env", envName),
			slog.String("value", envValue),
			slog.Any("error", err),
		)
	}
}

func (b envBinder) envName(flagName string) string {
	return strings.ToUpper(b.prefix + "_" + strings.ReplaceAll(flagName, "-", "_"))
}
