package substitution

import (
	"testing"

	"github.com/ptcgtools/ptcg-companion/internal/ptcg/cards"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/rotation"
)

func updaterTable() *rotation.Table {
	return rotation.NewTable(map[string]string{
		"LOR": "F",
		"SVI": "G",
		"TEF": "H",
	}, nil, "G")
}

func deckCard(name, set, number string, qty int) *cards.Card {
	return &cards.Card{
		Name:     name,
		CardType: cards.TypePokemon,
		SetCode:  set,
		Number:   number,
		Quantity: qty,
	}
}

func TestGenerateUpdatedDeck_ReplacesRotatingCards(t *testing.T) {
	table := updaterTable()

	rotating := deckCard("Charizard ex", "SVI", "125", 3)
	safe := deckCard("Dragapult ex", "TEF", "130", 2)
	originals := []*cards.Card{rotating, safe}

	replacement := deckCard("Chandelure ex", "TEF", "29", 1)
	subs := []*Substitution{
		{Original: rotating, Suggested: replacement, Score: 85},
	}

	updated := GenerateUpdatedDeck(originals, subs, table)
	if len(updated) != 2 {
		t.Fatalf("len(updated) = %d, want 2", len(updated))
	}
	if updated[0].Name != "Chandelure ex" {
		t.Errorf("updated[0] = %s, want Chandelure ex", updated[0].Name)
	}
	if updated[0].Quantity != 3 {
		t.Errorf("replacement quantity = %d, want the original's 3", updated[0].Quantity)
	}
	if updated[1].Name != "Dragapult ex" {
		t.Errorf("updated[1] = %s, want Dragapult ex", updated[1].Name)
	}
}

func TestGenerateUpdatedDeck_DropsUnmatchedRotatingCards(t *testing.T) {
	table := updaterTable()

	originals := []*cards.Card{
		deckCard("Charizard ex", "SVI", "125", 3),
		deckCard("Dragapult ex", "TEF", "130", 2),
	}

	updated := GenerateUpdatedDeck(originals, nil, table)
	if len(updated) != 1 {
		t.Fatalf("len(updated) = %d, want 1", len(updated))
	}
	if updated[0].Name != "Dragapult ex" {
		t.Errorf("updated[0] = %s, want Dragapult ex", updated[0].Name)
	}
}

func TestGenerateUpdatedDeck_AlreadyRotatedPassesThrough(t *testing.T) {
	table := updaterTable()

	// Mark F is already out of the format, not rotating; the generator
	// only swaps cards leaving at the next rotation.
	old := deckCard("Lost City", "LOR", "161", 2)
	updated := GenerateUpdatedDeck([]*cards.Card{old}, nil, table)
	if len(updated) != 1 || updated[0].Name != "Lost City" {
		t.Fatalf("already-rotated card must pass through unchanged, got %v", updated)
	}
}

func TestGenerateUpdatedDeck_PicksBestSubPerOriginal(t *testing.T) {
	table := updaterTable()

	rotating := deckCard("Charizard ex", "SVI", "125", 3)
	weak := deckCard("Weak", "TEF", "1", 1)
	strong := deckCard("Strong", "TEF", "2", 1)

	subs := []*Substitution{
		{Original: rotating, Suggested: weak, Score: 40},
		{Original: rotating, Suggested: strong, Score: 90},
	}

	updated := GenerateUpdatedDeck([]*cards.Card{rotating}, subs, table)
	if len(updated) != 1 {
		t.Fatalf("len(updated) = %d, want 1", len(updated))
	}
	if updated[0].Name != "Strong" {
		t.Errorf("best substitution = %s, want Strong", updated[0].Name)
	}
}

func TestGenerateUpdatedDeck_FirstSeenWinsTies(t *testing.T) {
	table := updaterTable()

	rotating := deckCard("Charizard ex", "SVI", "125", 3)
	first := deckCard("First", "TEF", "1", 1)
	second := deckCard("Second", "TEF", "2", 1)

	subs := []*Substitution{
		{Original: rotating, Suggested: first, Score: 80},
		{Original: rotating, Suggested: second, Score: 80},
	}

	updated := GenerateUpdatedDeck([]*cards.Card{rotating}, subs, table)
	if len(updated) != 1 || updated[0].Name != "First" {
		t.Fatalf("exact score ties keep the first substitution, got %v", updated)
	}
}

func TestGenerateUpdatedDeck_DoesNotMutateInputs(t *testing.T) {
	table := updaterTable()

	rotating := deckCard("Charizard ex", "SVI", "125", 3)
	replacement := deckCard("Chandelure ex", "TEF", "29", 1)
	subs := []*Substitution{{Original: rotating, Suggested: replacement, Score: 85}}

	safe := deckCard("Dragapult ex", "TEF", "130", 2)
	updated := GenerateUpdatedDeck([]*cards.Card{rotating, safe}, subs, table)

	if replacement.Quantity != 1 {
		t.Errorf("suggested card mutated: Quantity = %d", replacement.Quantity)
	}
	updated[1].Quantity = 99
	if safe.Quantity != 2 {
		t.Errorf("original card shares memory with the output")
	}
}

func TestGenerateUpdatedDeck_NilTableUsesDefault(t *testing.T) {
	// SVE basic energy never rotates under the default table.
	card := &cards.Card{
		Name:     "Basic Fire Energy",
		CardType: cards.TypeEnergy,
		SetCode:  "SVE",
		Number:   "2",
		Quantity: 10,
	}
	updated := GenerateUpdatedDeck([]*cards.Card{card}, nil, nil)
	if len(updated) != 1 || updated[0].Quantity != 10 {
		t.Fatalf("basic energy must survive with a nil table, got %v", updated)
	}
}
