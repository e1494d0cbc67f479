package main

import (
	"fmt"

	"github.com/notjagan/poketypecalc/pkg/coverage"
	"github.com/notjagan/poketypecalc/pkg/report"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find the best and worst single types and type pairs",
	Long:  "Scores every type and every ordered pair of distinct types, then prints the highest and lowest scoring entry of each pass. Ties go to the entry visited last.",
	Args:  cobra.NoArgs,
	RunE:  runSearch,
}

var searchTop int

func init() {
	searchCmd.Flags().IntVarP(&searchTop, "top", "n", 0, "Also list the N highest scoring entries of each pass")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	mdl, err := loadModel(cmd.Context())
	if err != nil {
		return err
	}
	s := coverage.NewSearcher(mdl)
	out := cmd.OutOrStdout()

	singles, err := s.Singles()
	if err != nil {
		return fmt.Errorf("single type search failed: %w", err)
	}
	err = report.Singles(out, singles, cfg.Search.Top)
	if err != nil {
		return fmt.Errorf("error while printing single types: %w", err)
	}

	fmt.Fprintln(out)

	pairs, err := s.Pairs()
	if err != nil {
		return fmt.Errorf("dual type search failed: %w", err)
	}
	err = report.Pairs(out, pairs, cfg.Search.Top)
	if err != nil {
		return fmt.Errorf("error while printing dual types: %w", err)
	}

	return nil
}
