package deckimport

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ptcgtools/ptcg-companion/internal/ptcg/cards"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/rotation"
)

// ParseResult contains the parsed deck plus any lines that were skipped.
// Unparseable lines never abort parsing; they are dropped and noted here.
type ParseResult struct {
	Deck     *cards.Deck
	Warnings []string
}

// Parser converts deck list text into card records. It recognizes the
// PTCGO/Limitless plain-text format and a CSV variant.
type Parser struct {
	table    *rotation.Table
	patterns []linePattern
}

// linePattern pairs a line grammar with its capture-group layout.
// Patterns are tried in order; the first match wins.
type linePattern struct {
	re *regexp.Regexp
	// indices of quantity, name, set code and collector number captures
	qty, name, set, num int
}

// NewParser creates a parser that derives regulation marks from the given
// table, or the default table when nil.
func NewParser(table *rotation.Table) *Parser {
	if table == nil {
		table = rotation.DefaultTable()
	}
	return &Parser{
		table: table,
		patterns: []linePattern{
			// "4 Charizard ex OBF 125"
			{re: regexp.MustCompile(`^(\d+)\s+(.+?)\s+([A-Z]{2,4})\s+(\d+)$`), qty: 1, name: 2, set: 3, num: 4},
			// "* 4 Charizard ex OBF 125" (marker used by some exporters)
			{re: regexp.MustCompile(`^\*\s*(\d+)\s+(.+?)\s+([A-Z]{2,4})\s+(\d+)$`), qty: 1, name: 2, set: 3, num: 4},
			// "4, Charizard ex, OBF, 125"
			{re: regexp.MustCompile(`^(\d+)\s*,\s*(.+?)\s*,\s*([A-Z]{2,4})\s*,\s*(\d+)$`), qty: 1, name: 2, set: 3, num: 4},
		},
	}
}

// sectionHeader matches deck list section headers like "Pokémon:" that
// carry no card data.
var sectionHeader = regexp.MustCompile(`(?i)^(pokemon|pokémon|trainer|energy):?$`)

// Parse converts deck list text into a deck. Blank lines, comments and
// section headers are skipped; lines matching no grammar are silently
// dropped and reported only through the warnings list.
func (p *Parser) Parse(input string) *ParseResult {
	result := &ParseResult{
		Deck:     &cards.Deck{Cards: make([]*cards.Card, 0)},
		Warnings: make([]string, 0),
	}

	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		if sectionHeader.MatchString(line) {
			continue
		}

		card, ok := p.parseLine(line)
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("line %d: could not parse %q", i+1, line))
			continue
		}

		result.Deck.Cards = append(result.Deck.Cards, card)
	}

	return result
}

// parseLine tries each line grammar in order and builds a card record
// from the first match.
func (p *Parser) parseLine(line string) (*cards.Card, bool) {
	for _, pat := range p.patterns {
		matches := pat.re.FindStringSubmatch(line)
		if matches == nil {
			continue
		}

		quantity, err := strconv.Atoi(matches[pat.qty])
		if err != nil || quantity < 1 {
			return nil, false
		}

		card := &cards.Card{
			Name:     strings.TrimSpace(matches[pat.name]),
			SetCode:  matches[pat.set],
			Number:   matches[pat.num],
			Quantity: quantity,
		}
		card.CardType = inferCardType(card.Name)
		switch card.CardType {
		case cards.TypeTrainer:
			card.Subtype = inferTrainerSubtype(card.Name)
		case cards.TypeEnergy:
			card.EnergyType = energyTypeFromName(card.Name)
		case cards.TypePokemon:
			card.Subtype = pokemonForm(card.Name)
		}
		card.RegulationMark = p.table.Mark(card.SetCode)

		return card, true
	}
	return nil, false
}

// inferCardType derives the supertype from the card name. The "energy"
// substring wins, then known trainer keywords; everything else is
// assumed to be a Pokemon.
func inferCardType(name string) cards.CardType {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "energy") {
		return cards.TypeEnergy
	}
	for _, list := range [][]string{supporterKeywords, itemKeywords, stadiumKeywords, toolKeywords} {
		for _, kw := range list {
			if strings.Contains(lower, kw) {
				return cards.TypeTrainer
			}
		}
	}
	return cards.TypePokemon
}

// inferTrainerSubtype classifies a trainer name. Supporters, stadiums and
// tools are checked in that order; items are the unmarked majority class.
func inferTrainerSubtype(name string) string {
	lower := strings.ToLower(name)
	for _, kw := range supporterKeywords {
		if strings.Contains(lower, kw) {
			return cards.SubtypeSupporter
		}
	}
	for _, kw := range stadiumKeywords {
		if strings.Contains(lower, kw) {
			return cards.SubtypeStadium
		}
	}
	for _, kw := range toolKeywords {
		if strings.Contains(lower, kw) {
			return cards.SubtypeTool
		}
	}
	return cards.SubtypeItem
}

// energyTypeFromName extracts the energy color from an energy card name.
func energyTypeFromName(name string) string {
	lower := strings.ToLower(name)
	for _, t := range cards.EnergyTypes {
		if strings.Contains(lower, strings.ToLower(t)) {
			return t
		}
	}
	return ""
}

// pokemonForm picks up stage/form suffixes from a Pokemon name.
func pokemonForm(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, " vmax"):
		return "vmax"
	case strings.HasSuffix(lower, " vstar"):
		return "vstar"
	case strings.HasSuffix(lower, " v"):
		return "v"
	case strings.HasSuffix(lower, " ex"):
		return "ex"
	case strings.HasPrefix(lower, "radiant "):
		return "radiant"
	default:
		return ""
	}
}

// Known trainer name keywords, lower-cased. These lists decide both that
// a name is a Trainer and which subtype it gets.
var (
	supporterKeywords = []string{
		"professor's research", "professor turo", "professor sada",
		"arven", "iono", "boss's orders", "judge", "nemona", "jacq",
		"miriam", "penny", "giacomo", "colress's tenacity", "roxanne",
		"lance", "crispin", "briar", "janine's secret art", "carmine",
		"kieran", "drayton", "cyrano", "irida", "adaman", "melony",
		"raihan", "marnie", "korrina's focus",
	}
	itemKeywords = []string{
		"ultra ball", "nest ball", "great ball", "level ball", "lure ball",
		"quick ball", "rare candy", "switch", "escape rope", "super rod",
		"night stretcher", "energy retrieval", "energy search", "pal pad",
		"counter catcher", "prime catcher", "earthen vessel",
		"battle vip pass", "buddy-buddy poffin", "lost vacuum",
		"trekking shoes", "town map", "unfair stamp",
		"secret box", "glass trumpet",
	}
	stadiumKeywords = []string{
		"stadium", "path to the peak", "temple of sinnoh", "lost city",
		"beach court", "mesagoza", "area zero underdepths", "artazon",
		"town store", "pokestop", "collapsed stadium", "jamming tower",
		"gravity mountain", "levincia",
	}
	toolKeywords = []string{
		"forest seal stone", "technical machine", "hero's cape",
		"bravery charm", "defiance band", "rescue board", "maximum belt",
		"rigid band", "float stone", "choice belt", "air balloon",
		"vitality band", "exp. share", "luxurious cape", "sparkling crystal",
	}
)
