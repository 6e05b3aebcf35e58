package cli

import (
	"github.com/spf13/cobra"

	"github.com/macropower/shelf/pkg/catalog"
)

type SortArgs struct {
	*RootArgs

	By string
}

func NewSortArgs(rootArgs *RootArgs) *SortArgs {
	return &SortArgs{
		RootArgs: rootArgs,
	}
}

func (sa *SortArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&sa.By, "by", "b", "",
		"Sort order, e.g. \"genre,year-\" (default from config)")

	registerSortCompletion(cmd, "by")
}

func NewSortCmd(sa *SortArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [records.yaml]",
		Short: "Print records in sorted order",
		Long: `Print records in sorted order, one per line.

Records are read from the YAML file, or from standard input when the file is
"-" or omitted. Ties keep the order in which records were listed.`,
		Example: `  # Sort by year:
  shelf sort ./records.yaml --by year

  # Sort by genre, then title in reverse:
  cat ./records.yaml | shelf sort --by genre,title-`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return []cobra.Completion{"yaml", "yml"}, cobra.ShellCompDirectiveFilterFileExt
			}

			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}

			cfg, err := loadConfig(configPath(sa.RootArgs), isTerminal(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			orders, err := resolveOrders(sa.By, cfg)
			if err != nil {
				return err
			}

			records, err := readRecords(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			return printSorted(cmd.OutOrStdout(), catalog.New(catalog.WithRecords(records...)), orders)
		},
	}
	sa.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}
