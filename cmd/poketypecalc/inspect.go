package main

import (
	"fmt"

	"github.com/notjagan/poketypecalc/pkg/model"
	"github.com/notjagan/poketypecalc/pkg/report"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <primary> <secondary>",
	Short: "Print the combined chart of two types",
	Args:  cobra.ExactArgs(2),
	RunE:  runInspect,

	ValidArgsFunction: completeTypes(2),
}

var coverageCmd = &cobra.Command{
	Use:   "coverage <type>",
	Short: "Print the chart of a single type",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverage,

	ValidArgsFunction: completeTypes(1),
}

var typesCmd = &cobra.Command{
	Use:   "types [prefix]",
	Short: "List the registered types, optionally only those starting with prefix",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTypes,
}

var typesLimit int

func init() {
	typesCmd.Flags().IntVarP(&typesLimit, "limit", "l", -1, "List at most this many types (-1 for all)")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(coverageCmd)
	rootCmd.AddCommand(typesCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	mdl, err := loadModel(cmd.Context())
	if err != nil {
		return err
	}

	combo, err := mdl.TypeComboByName(args[0], args[1])
	if err != nil {
		return fmt.Errorf("could not combine %q and %q: %w", args[0], args[1], err)
	}

	return report.ComboChart(cmd.OutOrStdout(), combo)
}

func runCoverage(cmd *cobra.Command, args []string) error {
	mdl, err := loadModel(cmd.Context())
	if err != nil {
		return err
	}

	typ, err := mdl.TypeByName(args[0])
	if err != nil {
		return err
	}

	return report.TypeChart(cmd.OutOrStdout(), typ)
}

func runTypes(cmd *cobra.Command, args []string) error {
	mdl, err := loadModel(cmd.Context())
	if err != nil {
		return err
	}

	var prefix string
	if len(args) > 0 {
		prefix = args[0]
	}

	return report.TypeNames(cmd.OutOrStdout(), mdl.SearchTypes(prefix, typesLimit))
}

// completeTypes offers type names for the first n positional arguments.
func completeTypes(n int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) >= n {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		err := setup(cmd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		mdl, err := loadModel(cmd.Context())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		names := lo.Map(mdl.SearchTypes(toComplete, -1), func(typ *model.Type, _ int) string {
			return typ.Name
		})
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
