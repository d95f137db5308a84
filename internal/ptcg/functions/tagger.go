// Package functions assigns functional category tags to cards based on
// their effect text. Tagging is multi-label keyword matching: a single
// text may yield zero, one or many tags, and no tag excludes another.
package functions

import (
	"strings"

	"github.com/ptcgtools/ptcg-companion/internal/ptcg/cards"
)

// keywords maps each tag to the lower-cased phrases that trigger it.
var keywords = map[cards.FunctionTag][]string{
	cards.TagDraw: {
		"draw a card", "draw cards", "draw 2", "draw 3", "draw until",
		"draws a card", "draw that many",
	},
	cards.TagSearch: {
		"search your deck", "search their deck", "look at the top",
		"reveal it and put it into your hand",
	},
	cards.TagRecovery: {
		"from your discard pile", "shuffle it into your deck",
		"put it back into your deck", "into your hand from your discard",
	},
	cards.TagSwitching: {
		"switch your active", "switch this pokémon", "switch that pokémon",
		"to the bench", "retreat cost", "switch 1 of your",
	},
	cards.TagEnergyAccel: {
		"attach an energy", "attach a basic", "attach up to",
		"attach 2 basic", "energy from your discard pile to",
	},
	cards.TagDamage: {
		"damage to 1 of your opponent", "damage counters on",
		"more damage", "damage to each", "this attack does",
	},
	cards.TagHealing: {
		"heal", "remove all damage", "remove 3 damage counters",
	},
	cards.TagDisruption: {
		"your opponent shuffles", "your opponent reveals",
		"your opponent discards", "can't attack", "can't retreat",
		"can't use", "shuffles their hand",
	},
	cards.TagRemoval: {
		"discard it", "discard a", "discard the top", "discard 1",
		"discard an energy", "put it in the lost zone",
	},
	cards.TagProtection: {
		"prevent all damage", "prevent all effects", "takes less damage",
		"can't be affected", "no weakness",
	},
	cards.TagSetup: {
		"from your deck and put", "onto your bench", "evolves",
		"basic pokémon from your deck", "put them onto your bench",
	},
}

// Analyze returns the set of function tags whose keywords appear in the
// text, case-insensitively. Empty text yields an empty set.
func Analyze(text string) cards.TagSet {
	tags := make(cards.TagSet)
	if text == "" {
		return tags
	}

	lower := strings.ToLower(text)
	for tag, phrases := range keywords {
		for _, phrase := range phrases {
			if strings.Contains(lower, phrase) {
				tags[tag] = true
				break
			}
		}
	}
	return tags
}

// AnalyzeAll unions the tags found across multiple text fragments, such
// as a card's abilities, attacks and rule boxes.
func AnalyzeAll(fragments []string) cards.TagSet {
	tags := make(cards.TagSet)
	for _, fragment := range fragments {
		tags = tags.Union(Analyze(fragment))
	}
	return tags
}

// TagCard assigns tags to a card from provider data. Missing text leaves
// the card's tag set empty; downstream scoring treats that as neutral.
func TagCard(c *cards.Card, data *cards.CardData) {
	if data == nil {
		c.Functions = make(cards.TagSet)
		return
	}
	c.Functions = AnalyzeAll(data.RulesText)
}
