package rotation

import "github.com/ptcgtools/ptcg-companion/internal/ptcg/cards"

// Legality is the rotation state of a card.
type Legality string

const (
	LegalityIllegal  Legality = "illegal"  // already out of Standard
	LegalityRotating Legality = "rotating" // leaves at the next boundary
	LegalitySafe     Legality = "safe"     // stays legal
)

// Severity grades how badly a deck is hit by rotation.
type Severity string

const (
	SeverityNone     Severity = "NONE"
	SeverityLow      Severity = "LOW"
	SeverityModerate Severity = "MODERATE"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// Report is a snapshot classification of one deck, partitioned into nine
// buckets (three legality states by three card types). It is recomputed
// from scratch on every Analyze call and never mutated incrementally.
type Report struct {
	buckets map[Legality]map[cards.CardType][]*cards.Card
}

// Analyzer classifies decks against a regulation table.
type Analyzer struct {
	table *Table
}

// NewAnalyzer creates an analyzer using the given table, or the default
// table when nil.
func NewAnalyzer(table *Table) *Analyzer {
	if table == nil {
		table = DefaultTable()
	}
	return &Analyzer{table: table}
}

// Table returns the regulation table the analyzer classifies against.
func (a *Analyzer) Table() *Table {
	return a.table
}

// Classify returns the legality state of a single card. Evaluation order
// is fixed: already-rotated, then rotating, then safe. Unknown marks on
// anything but basic energy fall through to safe.
func (a *Analyzer) Classify(c *cards.Card) Legality {
	switch {
	case a.table.IsAlreadyRotated(c):
		return LegalityIllegal
	case a.table.IsRotating(c):
		return LegalityRotating
	default:
		return LegalitySafe
	}
}

// Analyze places every card of the deck into exactly one bucket.
func (a *Analyzer) Analyze(deck *cards.Deck) *Report {
	r := &Report{
		buckets: map[Legality]map[cards.CardType][]*cards.Card{
			LegalityIllegal:  make(map[cards.CardType][]*cards.Card),
			LegalityRotating: make(map[cards.CardType][]*cards.Card),
			LegalitySafe:     make(map[cards.CardType][]*cards.Card),
		},
	}

	for _, c := range deck.Cards {
		legality := a.Classify(c)
		r.buckets[legality][c.CardType] = append(r.buckets[legality][c.CardType], c)
	}

	return r
}

// Bucket returns the cards in one of the nine buckets, in deck order.
func (r *Report) Bucket(legality Legality, cardType cards.CardType) []*cards.Card {
	return r.buckets[legality][cardType]
}

// CardsIn returns all cards in a legality state across card types,
// Pokemon first, then Trainers, then Energy.
func (r *Report) CardsIn(legality Legality) []*cards.Card {
	var out []*cards.Card
	for _, t := range []cards.CardType{cards.TypePokemon, cards.TypeTrainer, cards.TypeEnergy} {
		out = append(out, r.buckets[legality][t]...)
	}
	return out
}

// quantityIn sums quantities across all card types in a legality state.
func (r *Report) quantityIn(legality Legality) int {
	total := 0
	for _, byType := range r.buckets[legality] {
		for _, c := range byType {
			total += c.Quantity
		}
	}
	return total
}

// TotalRotating is the quantity of cards leaving at the next rotation.
func (r *Report) TotalRotating() int { return r.quantityIn(LegalityRotating) }

// TotalIllegal is the quantity of cards already out of Standard.
func (r *Report) TotalIllegal() int { return r.quantityIn(LegalityIllegal) }

// TotalSafe is the quantity of cards unaffected by the next rotation.
func (r *Report) TotalSafe() int { return r.quantityIn(LegalitySafe) }

// TotalCards is the deck size counting quantities.
func (r *Report) TotalCards() int {
	return r.TotalRotating() + r.TotalIllegal() + r.TotalSafe()
}

// RotationPercentage is the share of the deck that rotates, 0-100.
func (r *Report) RotationPercentage() float64 {
	total := r.TotalCards()
	if total == 0 {
		return 0
	}
	return 100 * float64(r.TotalRotating()) / float64(total)
}

// ProblemPercentage is the share of the deck that rotates or is already
// illegal, 0-100.
func (r *Report) ProblemPercentage() float64 {
	total := r.TotalCards()
	if total == 0 {
		return 0
	}
	return 100 * float64(r.TotalRotating()+r.TotalIllegal()) / float64(total)
}

// Severity grades the problem percentage into bands. Band edges are
// inclusive on the lower side.
func (r *Report) Severity() Severity {
	p := r.ProblemPercentage()
	switch {
	case p == 0:
		return SeverityNone
	case p < 20:
		return SeverityLow
	case p < 40:
		return SeverityModerate
	case p < 60:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}
