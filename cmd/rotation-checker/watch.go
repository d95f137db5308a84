package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ptcgtools/ptcg-companion/internal/display"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/rotation"
	"github.com/ptcgtools/ptcg-companion/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <deckfile>",
	Short: "Re-run the rotation check whenever the deck file changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		table, err := buildTable(cfg)
		if err != nil {
			return err
		}

		analyzer := rotation.NewAnalyzer(table)
		displayer := display.NewReportDisplayer(os.Stdout)

		w := watcher.New(args[0], func(path string) error {
			result, err := loadDeck(path, table)
			if err != nil {
				return err
			}
			displayer.DisplayReport(result.Deck, analyzer.Analyze(result.Deck))
			return nil
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := w.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}
