package rotation

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/ptcgtools/ptcg-companion/internal/ptcg/cards"
)

// DefaultNextMark is the regulation mark leaving Standard at the next
// rotation boundary (March 2026).
const DefaultNextMark = "G"

// rotatedMarks are marks that have already left the Standard format.
var rotatedMarks = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "E": true, "F": true,
}

// Table maps printed set codes to regulation marks. It is immutable after
// construction; callers needing different data build a new table.
type Table struct {
	marks    map[string]string
	aliases  map[string]string
	nextMark string
}

// NewTable builds a regulation table from explicit data. Keys are
// upper-cased. An empty nextMark falls back to DefaultNextMark.
func NewTable(marks, aliases map[string]string, nextMark string) *Table {
	t := &Table{
		marks:    make(map[string]string, len(marks)),
		aliases:  make(map[string]string, len(aliases)),
		nextMark: strings.ToUpper(nextMark),
	}
	for code, mark := range marks {
		t.marks[strings.ToUpper(code)] = strings.ToUpper(mark)
	}
	for code, canonical := range aliases {
		t.aliases[strings.ToUpper(code)] = strings.ToUpper(canonical)
	}
	if t.nextMark == "" {
		t.nextMark = DefaultNextMark
	}
	return t
}

// DefaultTable returns the built-in regulation table covering the Sword &
// Shield and Scarlet & Violet eras.
func DefaultTable() *Table {
	return NewTable(defaultMarks, defaultAliases, DefaultNextMark)
}

// WithNextMark returns a copy of the table rotating at a different mark.
// Marks and aliases carry over unchanged.
func (t *Table) WithNextMark(nextMark string) *Table {
	return NewTable(t.marks, t.aliases, nextMark)
}

// tableFile is the on-disk TOML shape for a regulation table override.
type tableFile struct {
	NextMark string            `toml:"next_mark"`
	Marks    map[string]string `toml:"marks"`
	Aliases  map[string]string `toml:"aliases"`
}

// LoadTable reads a regulation table from a TOML file. Rotation schedules
// change over time, so the table is replaceable without a rebuild.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read regulation table: %w", err)
	}

	var file tableFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse regulation table: %w", err)
	}
	if len(file.Marks) == 0 {
		return nil, fmt.Errorf("regulation table %s has no marks", path)
	}

	return NewTable(file.Marks, file.Aliases, file.NextMark), nil
}

// NextMark returns the mark that rotates at the next boundary.
func (t *Table) NextMark() string {
	return t.nextMark
}

// NormalizeSetCode upper-cases a set code and resolves regional alias
// codes to their canonical set identifier. Unknown codes pass through
// upper-cased.
func (t *Table) NormalizeSetCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if canonical, ok := t.aliases[code]; ok {
		return canonical
	}
	return code
}

// Mark returns the regulation mark for a set code, or "?" if unknown.
// The raw code is checked before the normalized one so that a legacy
// regional code can override its canonical set's default.
func (t *Table) Mark(setCode string) string {
	raw := strings.ToUpper(strings.TrimSpace(setCode))
	if mark, ok := t.marks[raw]; ok {
		return mark
	}
	if mark, ok := t.marks[t.NormalizeSetCode(setCode)]; ok {
		return mark
	}
	return cards.UnknownMark
}

// IsAlreadyRotated reports whether the card has already left Standard.
// Basic energy never rotates.
func (t *Table) IsAlreadyRotated(c *cards.Card) bool {
	if c.IsBasicEnergy() {
		return false
	}
	return rotatedMarks[c.RegulationMark]
}

// IsRotating reports whether the card leaves Standard at the next
// rotation boundary.
func (t *Table) IsRotating(c *cards.Card) bool {
	if c.IsBasicEnergy() {
		return false
	}
	return c.RegulationMark == t.nextMark
}

// IsSafe reports whether the card stays legal past the next rotation.
// Cards with an unknown mark that are not basic energy default to safe.
func (t *Table) IsSafe(c *cards.Card) bool {
	return !t.IsAlreadyRotated(c) && !t.IsRotating(c)
}

// SetCodes returns the known set codes of the table in no particular order.
func (t *Table) SetCodes() []string {
	codes := make([]string, 0, len(t.marks))
	for code := range t.marks {
		codes = append(codes, code)
	}
	return codes
}

// defaultMarks maps English set codes to regulation marks.
var defaultMarks = map[string]string{
	// Sword & Shield era
	"SSH": "D", "RCL": "D", "DAA": "D", "CPA": "D", "VIV": "D",
	"SHF": "E", "BST": "E", "CRE": "E", "EVS": "E", "CEL": "E", "FST": "E",
	"BRS": "F", "ASR": "F", "PGO": "F", "LOR": "F", "SIT": "F", "CRZ": "F",

	// Scarlet & Violet era
	"SVI": "G", "PAL": "G", "OBF": "G", "MEW": "G", "PAR": "G", "PAF": "G",
	"TEF": "H", "TWM": "H", "SFA": "H", "SCR": "H", "SSP": "H", "PRE": "H",
	"SVE": "H", // basic energy reprints
	"JTG": "I", "DRI": "I", "BLK": "I", "WHT": "I", "MEG": "I",
}

// defaultAliases maps regional and subset codes to canonical set codes.
var defaultAliases = map[string]string{
	"GG":  "CRZ", // Crown Zenith Galarian Gallery
	"TG":  "SIT", // Trainer Gallery printings
	"SVG": "SVI", // Scarlet & Violet giftset promos
	"ENE": "SVE",
}
