package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/spf13/cobra"

	"github.com/macropower/shelf/pkg/catalog"
	"github.com/macropower/shelf/pkg/config"
	"github.com/macropower/shelf/pkg/log"
	"github.com/macropower/shelf/pkg/record"
	"github.com/macropower/shelf/pkg/ui"
	"github.com/macropower/shelf/pkg/ui/theme"
)

const (
	cmdExamples = `  # Start with an empty shelf:
  shelf

  # Start with records from a file:
  shelf ./records.yaml

  # Start sorted by genre, newest first within a genre:
  shelf ./records.yaml --sort genre,year-

  # Send output to a file (disables TUI):
  shelf ./records.yaml --sort creator > shelf.txt

  # Sort records from stdin:
  cat ./records.yaml | shelf sort --by year

  # Save records in the order they were listed:
  shelf save ./records.yaml shelf.txt`
)

type RunArgs struct {
	*RootArgs

	SeedPath    string
	Sort        string
	WriteConfig bool
	ShowConfig  bool
}

func NewRunArgs(rootArgs *RootArgs) *RunArgs {
	return &RunArgs{
		RootArgs: rootArgs,
	}
}

func (ra *RunArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ra.Sort, "sort", "s", "",
		"Initial sort order, e.g. \"genre,year-\" (default from config)")
	cmd.Flags().BoolVar(&ra.WriteConfig, "write-config", false, "Write the default configuration files and exit")
	cmd.Flags().BoolVar(&ra.ShowConfig, "show-config", false, "Print the active configuration and exit")

	registerSortCompletion(cmd, "sort")
}

func NewRunCmd(ra *RunArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [records.yaml]",
		Short: "Default command, can be used explicitly if the path is ambiguous",
		Long: `Start the interactive shelf.

Records from the optional YAML file are loaded before the interface starts.
When standard output is not a terminal, the records are printed in sorted
order instead.`,
		Example: cmdExamples,
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return []cobra.Completion{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
			}

			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ra.SeedPath = ""
			if len(args) > 0 {
				ra.SeedPath = args[0]
			}

			return run(cmd, ra)
		},
	}
	ra.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func run(cmd *cobra.Command, ra *RunArgs) error {
	path := configPath(ra.RootArgs)

	err := config.WriteDefaultConfig(path, false)
	if err != nil {
		slog.Error("write default config", slog.Any("err", err))
	}

	if ra.WriteConfig {
		// Exit early after writing the default config.
		// Also, if there was an error, it should be fatal.
		return err
	}

	out := cmd.OutOrStdout()
	tty := isTerminal(out)

	cfg, err := loadConfig(path, isTerminal(cmd.ErrOrStderr()))
	if err != nil {
		return err
	}

	if ra.ShowConfig {
		slog.Info("active configuration", slog.String("path", path))

		return showConfig(out, cfg, tty)
	}

	orders, err := resolveOrders(ra.Sort, cfg)
	if err != nil {
		return err
	}

	var records []record.Record
	if ra.SeedPath != "" {
		records, err = readRecords(cmd.InOrStdin(), ra.SeedPath)
		if err != nil {
			return err
		}

		slog.Debug("loaded records",
			slog.String("path", ra.SeedPath),
			slog.Int("count", len(records)),
		)
	}

	cat := catalog.New(catalog.WithRecords(records...))

	// If stdout is not a terminal, print the sorted records.
	if !tty {
		return printSorted(out, cat, orders)
	}

	logBuf := log.NewBuffer(100)

	logHandler, err := log.CreateHandlerWithStrings(logBuf, ra.LogLevel, ra.LogFormat)
	if err != nil {
		return fmt.Errorf("create log handler: %w", err)
	}

	slog.SetDefault(slog.New(logHandler))

	p := ui.NewProgram(ui.Params{
		Config:   cfg.UI,
		Catalog:  cat,
		Orders:   orders,
		SavePath: cfg.Catalog.SavePath,
	})

	_, err = p.Run()
	if err != nil {
		slog.Error("run UI", slog.Any("err", err))
		flushLogs(cmd.ErrOrStderr(), logBuf)

		return fmt.Errorf("ui program failure: %w", err)
	}

	flushLogs(cmd.ErrOrStderr(), logBuf)

	return nil
}

func printSorted(w io.Writer, cat *catalog.Catalog, orders []record.Order) error {
	sorted, err := cat.Sorted(orders...)
	if err != nil {
		return err //nolint:wrapcheck // Already wrapped by the catalog.
	}

	_, err = catalog.WriteLines(w, sorted)
	if err != nil {
		return fmt.Errorf("write records: %w", err)
	}

	return nil
}

func showConfig(w io.Writer, cfg *config.Config, colored bool) error {
	b, err := cfg.MarshalYAML()
	if err != nil {
		return fmt.Errorf("marshal config yaml: %w", err)
	}

	if !colored {
		_, err = w.Write(b)
		if err != nil {
			return fmt.Errorf("write config: %w", err)
		}

		return nil
	}

	err = quick.Highlight(w, string(b), "yaml", "terminal16m", theme.New(cfg.UI.Theme).Name)
	if err != nil {
		return fmt.Errorf("highlight config: %w", err)
	}

	return nil
}

func flushLogs(w io.Writer, buf *log.Buffer) {
	slog.Debug("flush logs to console",
		slog.Int("count", buf.Len()),
		slog.Int("max", buf.Limit()),
		slog.Int("dropped", buf.Dropped()),
	)

	_, err := buf.WriteTo(w)
	if err != nil {
		panic(err)
	}
}
