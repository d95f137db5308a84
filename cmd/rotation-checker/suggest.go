package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ptcgtools/ptcg-companion/internal/display"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/rotation"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/substitution"
)

var suggestSetCode string

var suggestCmd = &cobra.Command{
	Use:   "suggest <deckfile>",
	Short: "Suggest replacements for rotating cards from a newer set",
	Long: `Suggest runs a rotation check, then scores every card of the given
replacement set against each rotating card and prints ranked
substitutions plus a regenerated deck list.`,
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

		service, err := buildCardService(cfg)
		if err != nil {
			return err
		}

		pool, err := candidatePool(cmd.Context(), service, suggestSetCode, table)
		if err != nil {
			return err
		}

		rotating := report.CardsIn(rotation.LegalityRotating)
		tagRotatingCards(cmd.Context(), service, rotating)

		matcher := substitution.NewMatcher()
		if cfg.Rotation.MinScore > 0 {
			matcher.MinScore = float64(cfg.Rotation.MinScore)
		}
		subs := matcher.Find(rotating, pool)
		displayer.DisplaySubstitutions(subs)

		updated := substitution.GenerateUpdatedDeck(result.Deck.Cards, subs, table)
		displayer.DisplayDeckList(updated)
		return nil
	},
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestSetCode, "set", "s", "JTG",
		"set code to draw replacement candidates from")
}
