package deckimport

import (
	"strings"
	"testing"

	"github.com/ptcgtools/ptcg-companion/internal/ptcg/cards"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/rotation"
)

// testTable gives tests a fixed regulation table independent of the
// shipped default data.
func testTable() *rotation.Table {
	return rotation.NewTable(map[string]string{
		"OBF": "G",
		"SVI": "G",
		"SVE": "H",
		"TEF": "H",
		"LOR": "F",
	}, nil, "G")
}

func TestParser_ParseLine(t *testing.T) {
	p := NewParser(testTable())

	tests := []struct {
		name     string
		line     string
		wantName string
		wantQty  int
		wantSet  string
		wantNum  string
		wantType cards.CardType
	}{
		{
			name:     "pokemon with suffix",
			line:     "4 Charizard ex OBF 125",
			wantName: "Charizard ex",
			wantQty:  4,
			wantSet:  "OBF",
			wantNum:  "125",
			wantType: cards.TypePokemon,
		},
		{
			name:     "supporter",
			line:     "4 Arven SVI 166",
			wantName: "Arven",
			wantQty:  4,
			wantSet:  "SVI",
			wantNum:  "166",
			wantType: cards.TypeTrainer,
		},
		{
			name:     "basic energy",
			line:     "10 Basic Fire Energy SVE 2",
			wantName: "Basic Fire Energy",
			wantQty:  10,
			wantSet:  "SVE",
			wantNum:  "2",
			wantType: cards.TypeEnergy,
		},
		{
			name:     "leading star marker",
			line:     "* 2 Iono SVI 185",
			wantName: "Iono",
			wantQty:  2,
			wantSet:  "SVI",
			wantNum:  "185",
			wantType: cards.TypeTrainer,
		},
		{
			name:     "csv variant",
			line:     "3, Ultra Ball, SVI, 196",
			wantName: "Ultra Ball",
			wantQty:  3,
			wantSet:  "SVI",
			wantNum:  "196",
			wantType: cards.TypeTrainer,
		},
		{
			name:     "multi-word pokemon name",
			line:     "2 Iron Hands ex PAR 70",
			wantName: "Iron Hands ex",
			wantQty:  2,
			wantSet:  "PAR",
			wantNum:  "70",
			wantType: cards.TypePokemon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := p.Parse(tt.line)
			if len(result.Deck.Cards) != 1 {
				t.Fatalf("expected 1 card, got %d (warnings: %v)", len(result.Deck.Cards), result.Warnings)
			}
			card := result.Deck.Cards[0]
			if card.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", card.Name, tt.wantName)
			}
			if card.Quantity != tt.wantQty {
				t.Errorf("Quantity = %d, want %d", card.Quantity, tt.wantQty)
			}
			if card.SetCode != tt.wantSet {
				t.Errorf("SetCode = %q, want %q", card.SetCode, tt.wantSet)
			}
			if card.Number != tt.wantNum {
				t.Errorf("Number = %q, want %q", card.Number, tt.wantNum)
			}
			if card.CardType != tt.wantType {
				t.Errorf("CardType = %q, want %q", card.CardType, tt.wantType)
			}
		})
	}
}

func TestParser_SkipsCommentsAndHeaders(t *testing.T) {
	input := strings.Join([]string{
		"# my deck",
		"// export from tracker",
		"Pokémon:",
		"4 Charizard ex OBF 125",
		"",
		"TRAINER",
		"4 Arven SVI 166",
		"energy:",
		"10 Basic Fire Energy SVE 2",
	}, "\n")

	result := NewParser(testTable()).Parse(input)

	if len(result.Deck.Cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(result.Deck.Cards))
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", result.Warnings)
	}
}

func TestParser_MalformedLinesDroppedSilently(t *testing.T) {
	input := strings.Join([]string{
		"4 Charizard ex OBF 125",
		"this is not a card line",
		"Charizard ex OBF 125", // no quantity
		"4 Charizard ex obf 125", // lower-case set code
		"2 Iono SVI 185",
	}, "\n")

	result := NewParser(testTable()).Parse(input)

	if len(result.Deck.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(result.Deck.Cards))
	}
	if len(result.Warnings) != 3 {
		t.Errorf("expected 3 warnings, got %d: %v", len(result.Warnings), result.Warnings)
	}
}

func TestParser_ZeroQuantityDropped(t *testing.T) {
	result := NewParser(testTable()).Parse("0 Charizard ex OBF 125")
	if len(result.Deck.Cards) != 0 {
		t.Fatalf("expected 0 cards, got %d", len(result.Deck.Cards))
	}
}

func TestParser_EmptyInput(t *testing.T) {
	result := NewParser(testTable()).Parse("")
	if len(result.Deck.Cards) != 0 {
		t.Errorf("expected empty deck, got %d cards", len(result.Deck.Cards))
	}
	if result.Deck.TotalCards() != 0 {
		t.Errorf("TotalCards = %d, want 0", result.Deck.TotalCards())
	}
}

func TestParser_PreservesOrderAndDuplicates(t *testing.T) {
	input := strings.Join([]string{
		"2 Charizard ex OBF 125",
		"4 Arven SVI 166",
		"2 Charizard ex OBF 125",
	}, "\n")

	result := NewParser(testTable()).Parse(input)

	if len(result.Deck.Cards) != 3 {
		t.Fatalf("duplicate printings must not merge: got %d records", len(result.Deck.Cards))
	}
	if result.Deck.Cards[0].Name != "Charizard ex" ||
		result.Deck.Cards[1].Name != "Arven" ||
		result.Deck.Cards[2].Name != "Charizard ex" {
		t.Errorf("input order not preserved: %v", []string{
			result.Deck.Cards[0].Name, result.Deck.Cards[1].Name, result.Deck.Cards[2].Name,
		})
	}
}

func TestParser_AssignsRegulationMarks(t *testing.T) {
	input := strings.Join([]string{
		"4 Charizard ex OBF 125",
		"2 Snorlax XYZ 99", // unknown set
	}, "\n")

	result := NewParser(testTable()).Parse(input)
	if got := result.Deck.Cards[0].RegulationMark; got != "G" {
		t.Errorf("mark for OBF = %q, want G", got)
	}
	if got := result.Deck.Cards[1].RegulationMark; got != "?" {
		t.Errorf("mark for unknown set = %q, want ?", got)
	}
}

func TestParser_TrainerSubtypes(t *testing.T) {
	tests := []struct {
		line    string
		subtype string
	}{
		{"4 Iono SVI 185", cards.SubtypeSupporter},
		{"2 Beach Court SVI 167", cards.SubtypeStadium},
		{"2 Defiance Band SVI 169", cards.SubtypeTool},
		{"4 Ultra Ball SVI 196", cards.SubtypeItem},
		{"1 Lost Vacuum LOR 162", cards.SubtypeItem},
	}

	p := NewParser(testTable())
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			result := p.Parse(tt.line)
			if len(result.Deck.Cards) != 1 {
				t.Fatalf("expected 1 card, got %d", len(result.Deck.Cards))
			}
			card := result.Deck.Cards[0]
			if card.CardType != cards.TypeTrainer {
				t.Fatalf("CardType = %q, want Trainer", card.CardType)
			}
			if card.Subtype != tt.subtype {
				t.Errorf("Subtype = %q, want %q", card.Subtype, tt.subtype)
			}
		})
	}
}

func TestParser_EnergyTypeFromName(t *testing.T) {
	result := NewParser(testTable()).Parse("10 Basic Lightning Energy SVE 4")
	if len(result.Deck.Cards) != 1 {
		t.Fatalf("expected 1 card, got %d", len(result.Deck.Cards))
	}
	if got := result.Deck.Cards[0].EnergyType; got != "Lightning" {
		t.Errorf("EnergyType = %q, want Lightning", got)
	}
}

func TestParser_PokemonForms(t *testing.T) {
	tests := []struct {
		line string
		form string
	}{
		{"3 Charizard ex OBF 125", "ex"},
		{"2 Arceus VSTAR TEF 99", "vstar"},
		{"1 Snorlax OBF 12", ""},
	}

	p := NewParser(testTable())
	for _, tt := range tests {
		result := p.Parse(tt.line)
		if len(result.Deck.Cards) != 1 {
			t.Fatalf("%s: expected 1 card", tt.line)
		}
		if got := result.Deck.Cards[0].Subtype; got != tt.form {
			t.Errorf("%s: Subtype = %q, want %q", tt.line, got, tt.form)
		}
	}
}
