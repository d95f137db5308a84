package cards

import (
	"strings"

	"github.com/ptcgtools/ptcg-companion/internal/ptcg/cards/tcgio"
)

// FromTCGIO converts a pokemontcg.io card into the provider-neutral
// shape the core pipeline consumes. The printed set code prefers the
// PTCGO code since that is what deck lists use.
func FromTCGIO(c *tcgio.Card) *CardData {
	setCode := c.Set.PtcgoCode
	if setCode == "" {
		setCode = strings.ToUpper(c.Set.ID)
	}

	data := &CardData{
		Name:           c.Name,
		Supertype:      c.Supertype,
		Subtypes:       c.Subtypes,
		Types:          c.Types,
		SetCode:        setCode,
		Number:         c.Number,
		RegulationMark: c.RegulationMark,
	}
	data.RulesText = append(data.RulesText, c.Rules...)
	for _, ability := range c.Abilities {
		data.RulesText = append(data.RulesText, ability.Text)
	}
	for _, attack := range c.Attacks {
		if attack.Text != "" {
			data.RulesText = append(data.RulesText, attack.Text)
		}
	}
	return data
}
