package cards

import (
	"context"
	"strings"
)

// CardData is the raw card record shape returned by a card data provider.
// It is source-agnostic: the same shape comes back from the live API, the
// local store, or a fixture list in tests.
type CardData struct {
	Name           string
	Supertype      string // "Pokémon", "Trainer" or "Energy"
	Subtypes       []string
	Types          []string // energy colors, e.g. ["Fire"]
	SetCode        string
	Number         string
	RegulationMark string

	// Concatenable effect text fragments: ability text, attack text and
	// rule box text, in printed order.
	RulesText []string
}

// Provider supplies card data for a whole set.
type Provider interface {
	SetCards(ctx context.Context, setCode string) ([]*CardData, error)
}

// Card converts provider data into a deck card record with quantity 1.
// Function tags are not assigned here; see the functions package.
func (d *CardData) Card() *Card {
	c := &Card{
		Name:           d.Name,
		CardType:       supertypeToCardType(d.Supertype),
		SetCode:        d.SetCode,
		Number:         d.Number,
		Quantity:       1,
		RegulationMark: d.RegulationMark,
	}
	if c.RegulationMark == "" {
		c.RegulationMark = UnknownMark
	}
	if len(d.Subtypes) > 0 {
		c.Subtype = strings.ToLower(d.Subtypes[0])
	}
	if len(d.Types) > 0 && c.CardType != TypeTrainer {
		c.EnergyType = d.Types[0]
	}
	return c
}

func supertypeToCardType(supertype string) CardType {
	switch strings.ToLower(strings.TrimSpace(supertype)) {
	case "trainer":
		return TypeTrainer
	case "energy":
		return TypeEnergy
	default:
		return TypePokemon
	}
}

// EffectText joins all rules text fragments into a single string.
func (d *CardData) EffectText() string {
	return strings.Join(d.RulesText, "\n")
}
