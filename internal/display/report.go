// Package display renders rotation analysis results for the terminal.
package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ptcgtools/ptcg-companion/internal/ptcg/cards"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/rotation"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/substitution"
)

// ReportDisplayer writes colored rotation reports.
type ReportDisplayer struct {
	w io.Writer
}

// NewReportDisplayer creates a displayer writing to w.
func NewReportDisplayer(w io.Writer) *ReportDisplayer {
	return &ReportDisplayer{w: w}
}

var (
	headerColor   = color.New(color.FgCyan, color.Bold)
	safeColor     = color.New(color.FgGreen)
	rotatingColor = color.New(color.FgYellow)
	illegalColor  = color.New(color.FgRed)
	scoreColor    = color.New(color.FgMagenta)
)

// severityColors grades severity output.
var severityColors = map[rotation.Severity]*color.Color{
	rotation.SeverityNone:     color.New(color.FgGreen, color.Bold),
	rotation.SeverityLow:      color.New(color.FgGreen),
	rotation.SeverityModerate: color.New(color.FgYellow),
	rotation.SeverityHigh:     color.New(color.FgRed),
	rotation.SeverityCritical: color.New(color.FgRed, color.Bold),
}

// DisplayReport renders the nine legality buckets and aggregate metrics.
func (d *ReportDisplayer) DisplayReport(deck *cards.Deck, report *rotation.Report) {
	_, _ = headerColor.Fprintf(d.w, "\nRotation Report\n")
	_, _ = headerColor.Fprintf(d.w, "===============\n")
	fmt.Fprintf(d.w, "Total cards: %d\n\n", report.TotalCards())

	d.displayBucket("Already illegal", illegalColor, report, rotation.LegalityIllegal)
	d.displayBucket("Rotating", rotatingColor, report, rotation.LegalityRotating)
	d.displayBucket("Safe", safeColor, report, rotation.LegalitySafe)

	fmt.Fprintf(d.w, "Rotating: %d  Illegal: %d  Safe: %d\n",
		report.TotalRotating(), report.TotalIllegal(), report.TotalSafe())
	fmt.Fprintf(d.w, "Rotation impact: %.1f%%  Problem share: %.1f%%\n",
		report.RotationPercentage(), report.ProblemPercentage())

	severity := report.Severity()
	sevColor, ok := severityColors[severity]
	if !ok {
		sevColor = headerColor
	}
	fmt.Fprintf(d.w, "Severity: ")
	_, _ = sevColor.Fprintf(d.w, "%s\n", severity)
}

// displayBucket renders one legality state across the three card types.
func (d *ReportDisplayer) displayBucket(title string, c *color.Color, report *rotation.Report, legality rotation.Legality) {
	total := 0
	for _, t := range []cards.CardType{cards.TypePokemon, cards.TypeTrainer, cards.TypeEnergy} {
		for _, card := range report.Bucket(legality, t) {
			total += card.Quantity
		}
	}

	_, _ = c.Fprintf(d.w, "%s (%d)\n", title, total)
	for _, t := range []cards.CardType{cards.TypePokemon, cards.TypeTrainer, cards.TypeEnergy} {
		bucket := report.Bucket(legality, t)
		if len(bucket) == 0 {
			continue
		}
		fmt.Fprintf(d.w, "  %s:\n", t)
		for _, card := range bucket {
			fmt.Fprintf(d.w, "    %d %s %s %s [%s]\n",
				card.Quantity, card.Name, card.SetCode, card.Number, card.RegulationMark)
		}
	}
	fmt.Fprintln(d.w)
}

// DisplaySubstitutions renders ranked replacement suggestions grouped by
// the card they replace.
func (d *ReportDisplayer) DisplaySubstitutions(subs []*substitution.Substitution) {
	if len(subs) == 0 {
		fmt.Fprintln(d.w, "No substitutions found.")
		return
	}

	_, _ = headerColor.Fprintf(d.w, "\nSuggested Substitutions\n")
	_, _ = headerColor.Fprintf(d.w, "=======================\n")

	var lastOriginal *cards.Card
	for _, sub := range subs {
		if sub.Original != lastOriginal {
			fmt.Fprintf(d.w, "\n%d %s %s %s:\n",
				sub.Original.Quantity, sub.Original.Name, sub.Original.SetCode, sub.Original.Number)
			lastOriginal = sub.Original
		}

		fmt.Fprintf(d.w, "  -> %s %s %s ", sub.Suggested.Name, sub.Suggested.SetCode, sub.Suggested.Number)
		_, _ = scoreColor.Fprintf(d.w, "(%.0f)", sub.Score)
		for _, reason := range sub.Reasons {
			fmt.Fprintf(d.w, " %s;", reason)
		}
		fmt.Fprintln(d.w)
	}
}

// DisplayDeckList renders a deck in PTCGO text format, ready to paste.
func (d *ReportDisplayer) DisplayDeckList(deckCards []*cards.Card) {
	_, _ = headerColor.Fprintf(d.w, "\nUpdated Deck\n")
	_, _ = headerColor.Fprintf(d.w, "============\n")

	total := 0
	for _, t := range []cards.CardType{cards.TypePokemon, cards.TypeTrainer, cards.TypeEnergy} {
		section := make([]*cards.Card, 0)
		for _, card := range deckCards {
			if card.CardType == t {
				section = append(section, card)
			}
		}
		if len(section) == 0 {
			continue
		}
		count := 0
		for _, card := range section {
			count += card.Quantity
		}
		fmt.Fprintf(d.w, "\n%s: %d\n", t, count)
		for _, card := range section {
			fmt.Fprintf(d.w, "%d %s %s %s\n", card.Quantity, card.Name, card.SetCode, card.Number)
		}
		total += count
	}

	fmt.Fprintf(d.w, "\nTotal: %d\n", total)
	if total < 60 {
		_, _ = rotatingColor.Fprintf(d.w, "Warning: deck is below 60 cards; some rotating cards had no substitute.\n")
	}
}
