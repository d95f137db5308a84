// Package charts renders rotation analysis results as interactive HTML
// charts.
package charts

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ptcgtools/ptcg-companion/internal/ptcg/cards"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/rotation"
)

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Title    string
	Subtitle string
	Width    string
	Height   string
	Theme    string
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Title:    "Rotation Impact",
		Subtitle: "",
		Width:    "900px",
		Height:   "500px",
		Theme:    "light",
	}
}

// DataPoint represents a single bar or pie slice.
type DataPoint struct {
	Label string
	Value float64
}

// BucketData flattens a rotation report into one data point per
// (legality, card type) bucket, quantities summed.
func BucketData(report *rotation.Report) []DataPoint {
	var points []DataPoint
	for _, legality := range []rotation.Legality{rotation.LegalityIllegal, rotation.LegalityRotating, rotation.LegalitySafe} {
		for _, t := range []cards.CardType{cards.TypePokemon, cards.TypeTrainer, cards.TypeEnergy} {
			qty := 0
			for _, c := range report.Bucket(legality, t) {
				qty += c.Quantity
			}
			points = append(points, DataPoint{
				Label: fmt.Sprintf("%s %s", legality, t),
				Value: float64(qty),
			})
		}
	}
	return points
}

// LegalityData summarizes a report into one slice per legality state.
func LegalityData(report *rotation.Report) []DataPoint {
	return []DataPoint{
		{Label: string(rotation.LegalityIllegal), Value: float64(report.TotalIllegal())},
		{Label: string(rotation.LegalityRotating), Value: float64(report.TotalRotating())},
		{Label: string(rotation.LegalitySafe), Value: float64(report.TotalSafe())},
	}
}

// RenderBarChart creates an interactive bar chart HTML file.
func RenderBarChart(data []DataPoint, config ChartConfig, outputPath string) error {
	bar := charts.NewBar()

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
	)

	xLabels := make([]string, len(data))
	yData := make([]opts.BarData, len(data))
	for i, point := range data {
		xLabels[i] = point.Label
		yData[i] = opts.BarData{Value: point.Value}
	}

	bar.SetXAxis(xLabels).
		AddSeries("Cards", yData).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(true),
			}),
		)

	return renderToFile(bar, outputPath)
}

// RenderPieChart creates an interactive pie chart HTML file.
func RenderPieChart(data []DataPoint, config ChartConfig, outputPath string) error {
	pie := charts.NewPie()

	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)

	pieData := make([]opts.PieData, len(data))
	for i, point := range data {
		pieData[i] = opts.PieData{Name: point.Label, Value: point.Value}
	}

	pie.AddSeries("Legality", pieData)

	return renderToFile(pie, outputPath)
}

// renderer is satisfied by every go-echarts chart type.
type renderer interface {
	Render(w io.Writer) error
}

func renderToFile(chart renderer, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := chart.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
