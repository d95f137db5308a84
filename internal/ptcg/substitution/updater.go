package substitution

import (
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/cards"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/rotation"
)

// GenerateUpdatedDeck rebuilds a card list with rotating cards replaced
// by their best-scoring substitution. Quantities always come from the
// original card. Rotating cards with no qualifying substitution are
// dropped rather than padded with placeholders; the caller decides
// whether the shrunken deck is worth warning about. The input list is
// never mutated.
func GenerateUpdatedDeck(originals []*cards.Card, subs []*Substitution, table *rotation.Table) []*cards.Card {
	if table == nil {
		table = rotation.DefaultTable()
	}

	// Best substitution per original printing. Max by score; the first
	// seen wins exact ties.
	best := make(map[string]*Substitution)
	for _, sub := range subs {
		key := sub.Original.Key()
		if current, ok := best[key]; !ok || sub.Score > current.Score {
			best[key] = sub
		}
	}

	updated := make([]*cards.Card, 0, len(originals))
	for _, original := range originals {
		if !table.IsRotating(original) {
			updated = append(updated, original.Clone())
			continue
		}

		sub, ok := best[original.Key()]
		if !ok {
			continue
		}

		replacement := sub.Suggested.Clone()
		replacement.Quantity = original.Quantity
		updated = append(updated, replacement)
	}
	return updated
}
