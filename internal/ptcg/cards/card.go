package cards

import "strings"

// CardType is the supertype of a card.
type CardType string

const (
	TypePokemon CardType = "Pokemon"
	TypeTrainer CardType = "Trainer"
	TypeEnergy  CardType = "Energy"
)

// Trainer subtypes.
const (
	SubtypeItem      = "item"
	SubtypeSupporter = "supporter"
	SubtypeStadium   = "stadium"
	SubtypeTool      = "tool"
)

// EnergyTypes lists the colored energy types in canonical order.
var EnergyTypes = []string{
	"Grass", "Fire", "Water", "Lightning", "Psychic",
	"Fighting", "Darkness", "Metal", "Fairy", "Dragon",
}

// Colorless is not a printed basic energy color but appears on cards.
const Colorless = "Colorless"

// UnknownMark is the regulation mark assigned when a set code is not in
// the regulation table.
const UnknownMark = "?"

// FunctionTag categorizes what a card's effect text does.
type FunctionTag string

const (
	TagDraw        FunctionTag = "draw"
	TagSearch      FunctionTag = "search"
	TagRecovery    FunctionTag = "recovery"
	TagSwitching   FunctionTag = "switching"
	TagEnergyAccel FunctionTag = "energy-accel"
	TagDamage      FunctionTag = "damage"
	TagHealing     FunctionTag = "healing"
	TagDisruption  FunctionTag = "disruption"
	TagRemoval     FunctionTag = "removal"
	TagProtection  FunctionTag = "protection"
	TagSetup       FunctionTag = "setup"
)

// TagSet is a set of function tags.
type TagSet map[FunctionTag]bool

// NewTagSet builds a TagSet from the given tags.
func NewTagSet(tags ...FunctionTag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = true
	}
	return s
}

// Contains reports whether the set contains tag.
func (s TagSet) Contains(tag FunctionTag) bool {
	return s[tag]
}

// Union returns a new set containing the tags of both sets.
func (s TagSet) Union(other TagSet) TagSet {
	out := make(TagSet, len(s)+len(other))
	for t := range s {
		out[t] = true
	}
	for t := range other {
		out[t] = true
	}
	return out
}

// Jaccard returns the Jaccard similarity |A∩B| / |A∪B| of two tag sets.
// Returns 0 if both sets are empty.
func (s TagSet) Jaccard(other TagSet) float64 {
	intersection := 0
	for t := range s {
		if other[t] {
			intersection++
		}
	}
	union := len(s) + len(other) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Card represents a single card entry in a deck list.
type Card struct {
	// Display name as printed, may include suffixes like "ex" or "VSTAR".
	Name string

	// Supertype, inferred once at parse time and never re-derived.
	CardType CardType

	// Printed set abbreviation as it appeared in the source text.
	// Normalization happens inside the regulation table, not here.
	SetCode string

	// Collector number within the set. Kept as a string to preserve
	// leading zeros and suffixed promo numbers.
	Number string

	// Count of copies of this exact printing.
	Quantity int

	// Single-letter regulation mark (A-K), or "?" if the set code is
	// not in the regulation table. Derived, never user-supplied.
	RegulationMark string

	// For Trainers: item, supporter, stadium or tool.
	// For Pokemon: stage/form info when known. Unset for Energy.
	Subtype string

	// Energy color, set for Pokemon and Energy cards when known.
	EnergyType string

	// Functional categories assigned by the tagger. Empty until the
	// card's effect text has been analyzed.
	Functions TagSet
}

// Key returns the (set code, collector number) identity of a printing.
func (c *Card) Key() string {
	return c.SetCode + "/" + c.Number
}

// IsBasicEnergy reports whether the card is a basic energy card by name.
// Basic energy is legal in every format regardless of regulation mark.
func (c *Card) IsBasicEnergy() bool {
	if c.CardType != TypeEnergy {
		return false
	}
	name := strings.ToLower(c.Name)
	if !strings.Contains(name, "basic") {
		return false
	}
	for _, t := range EnergyTypes {
		if strings.Contains(name, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

// Clone returns a copy of the card. The Functions set is copied, not shared.
func (c *Card) Clone() *Card {
	out := *c
	if c.Functions != nil {
		out.Functions = make(TagSet, len(c.Functions))
		for t := range c.Functions {
			out.Functions[t] = true
		}
	}
	return &out
}

// Deck is an ordered collection of cards. Order matches the input deck
// list and carries no meaning beyond display.
type Deck struct {
	Name  string
	Cards []*Card
}

// TotalCards returns the deck size counting quantities.
func (d *Deck) TotalCards() int {
	total := 0
	for _, c := range d.Cards {
		total += c.Quantity
	}
	return total
}

// CountByType returns the total quantity of cards of the given supertype.
func (d *Deck) CountByType(t CardType) int {
	total := 0
	for _, c := range d.Cards {
		if c.CardType == t {
			total += c.Quantity
		}
	}
	return total
}
