package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ptcgtools/ptcg-companion/internal/charts"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/rotation"
)

var (
	chartOutput string
	chartPie    bool
)

var chartCmd = &cobra.Command{
	Use:   "chart <deckfile>",
	Short: "Export the rotation breakdown as an HTML chart",
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

		result, err := loadDeck(args[0], table)
		if err != nil {
			return err
		}

		report := rotation.NewAnalyzer(table).Analyze(result.Deck)

		config := charts.DefaultChartConfig()
		config.Subtitle = args[0]

		if chartPie {
			if err := charts.RenderPieChart(charts.LegalityData(report), config, chartOutput); err != nil {
				return err
			}
		} else {
			if err := charts.RenderBarChart(charts.BucketData(report), config, chartOutput); err != nil {
				return err
			}
		}

		fmt.Printf("Chart written to %s\n", chartOutput)
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "rotation.html", "output HTML file")
	chartCmd.Flags().BoolVar(&chartPie, "pie", false, "render a legality pie chart instead of the bucket bar chart")
}
