package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/macropower/shelf/pkg/log"
	"github.com/macropower/shelf/pkg/record"
)

const (
	cmdName = "shelf"
	cmdDesc = `Keep a small catalog of books, films and albums, sorted your way.`
)

type RootArgs struct {
	LogLevel   string
	LogFormat  string
	ConfigPath string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

// AddFlags registers the global flags, inherited by every subcommand.
func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&ra.LogLevel, "log-level", "info",
		"Log level, one of: "+strings.Join(log.AllLevels, ", "))
	pf.StringVar(&ra.LogFormat, "log-format", "text",
		"Log format, one of: "+strings.Join(log.AllFormats, ", "))
	pf.StringVar(&ra.ConfigPath, "config", "",
		"Configuration file (default $XDG_CONFIG_HOME/shelf/config.yaml)")

	must(cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp)))
	must(cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp)))
	must(cmd.MarkPersistentFlagFilename("config", "yaml", "yml"))
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()
	runArgs := NewRunArgs(args)

	runCmd := NewRunCmd(runArgs)
	cmd := &cobra.Command{
		Use:               cmdName + " [records.yaml]",
		Short:             cmdDesc,
		Example:           cmdExamples,
		PersistentPreRunE: setupLogging(args),
		ValidArgsFunction: runCmd.ValidArgsFunction,
		Args:              runCmd.Args,
		RunE:              runCmd.RunE,
	}

	args.AddFlags(cmd)
	runArgs.AddFlags(cmd)
	cmd.AddCommand(
		runCmd,
		NewSortCmd(NewSortArgs(args)),
		NewSaveCmd(NewSaveArgs(args)),
	)

	bindEnvVars(cmd)

	return cmd
}

// setupLogging installs the default logger before any command runs. The run
// command later swaps it for a buffered one while the TUI is active.
func setupLogging(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		h, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), ra.LogLevel, ra.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		slog.SetDefault(slog.New(h))

		return nil
	}
}

// registerSortCompletion completes comma separated sort keys for a flag.
func registerSortCompletion(cmd *cobra.Command, flag string) {
	completions := make([]cobra.Completion, 0, len(record.KeyNames)*2)
	for _, name := range record.KeyNames {
		completions = append(completions,
			cobra.CompletionWithDesc(name, "ascending"),
			cobra.CompletionWithDesc(name+"-", "descending"),
		)
	}

	must(cmd.RegisterFlagCompletionFunc(flag,
		cobra.FixedCompletions(completions, cobra.ShellCompDirectiveNoFileComp)))
}
