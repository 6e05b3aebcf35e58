package cli

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/macropower/shelf/pkg/catalog"
)

type SaveArgs struct {
	*RootArgs
}

func NewSaveArgs(rootArgs *RootArgs) *SaveArgs {
	return &SaveArgs{
		RootArgs: rootArgs,
	}
}

func NewSaveCmd(sa *SaveArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <records.yaml> [output.txt]",
		Short: "Write records to a text file",
		Long: `Write records to a text file, one per line, in the order they were listed.

The output file is created or overwritten. When it is omitted, the save path
from the configuration is used.`,
		Example: `  # Save to the configured path:
  shelf save ./records.yaml

  # Save to a specific file:
  shelf save ./records.yaml ~/shelf.txt`,
		Args: cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return []cobra.Completion{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
			}

			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath(sa.RootArgs), isTerminal(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			out := cfg.Catalog.SavePath
			if len(args) > 1 {
				out = args[1]
			}

			records, err := readRecords(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			n, err := catalog.New(catalog.WithRecords(records...)).Save(out)
			if err != nil {
				return err //nolint:wrapcheck // Already wrapped by the catalog.
			}

			slog.Info("saved records",
				slog.String("path", out),
				slog.Int("count", len(records)),
				//nolint:gosec // G115: n is never negative.
				slog.String("size", humanize.Bytes(uint64(n))),
			)

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", english.Plural(len(records), "record", ""), out)
			if err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			return nil
		},
	}

	bindEnvVars(cmd)

	return cmd
}
