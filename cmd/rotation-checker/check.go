package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ptcgtools/ptcg-companion/internal/display"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/rotation"
)

var checkCmd = &cobra.Command{
	Use:   "check <deckfile>",
	Short: "Classify a deck list against the next Standard rotation",
	Long: `Check parses a deck list file (or stdin when the path is "-") and
prints which cards are already illegal, which rotate at the next
boundary, and which are safe.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		table, err := buildTable(cfg)
		if err != nil {
			return err
		}

		result, err := loadDeck(args[0], table)
		if err != nil {
			return err
		}

		analyzer := rotation.NewAnalyzer(table)
		report := analyzer.Analyze(result.Deck)

		displayer := display.NewReportDisplayer(os.Stdout)
		displayer.DisplayReport(result.Deck, report)
		return nil
	},
}
