// Package substitution scores candidate replacement cards for cards that
// are leaving the Standard format and rebuilds deck lists around the best
// matches.
package substitution

import (
	"sort"
	"strings"

	"github.com/ptcgtools/ptcg-companion/internal/ptcg/cards"
)

// Scoring weights. Type identity and function overlap dominate; archetype
// fit is a tie-breaker concern.
const (
	weightType      = 0.4
	weightFunction  = 0.4
	weightArchetype = 0.2
)

// DefaultMinScore is the composite score below which a candidate is not
// worth suggesting.
const DefaultMinScore = 30.0

// neutralFunctionScore is used when either card has no tags. Absent data
// neither rewards nor penalizes a candidate.
const neutralFunctionScore = 30.0

// maxPerOriginal caps how many suggestions one card receives.
const maxPerOriginal = 3

// Substitution is a candidate replacement for a rotating card.
type Substitution struct {
	Original  *cards.Card
	Suggested *cards.Card
	Score     float64 // 0-100
	Reasons   []string
}

// Matcher scores replacement candidates.
type Matcher struct {
	// MinScore filters candidates below this composite score.
	MinScore float64
}

// NewMatcher creates a matcher with the default minimum score.
func NewMatcher() *Matcher {
	return &Matcher{MinScore: DefaultMinScore}
}

// Find scores every same-type (original, candidate) pair and returns up
// to three suggestions per original, best first, concatenated in the
// order the originals were given. Exact score ties keep candidate pool
// order.
func (m *Matcher) Find(rotating []*cards.Card, pool []*cards.Card) []*Substitution {
	minScore := m.MinScore
	if minScore <= 0 {
		minScore = DefaultMinScore
	}

	var out []*Substitution
	for _, original := range rotating {
		var candidates []*Substitution
		for _, candidate := range pool {
			// Cross-type substitutions are never proposed.
			if candidate.CardType != original.CardType {
				continue
			}

			score, reasons := m.score(original, candidate)
			if score < minScore {
				continue
			}
			candidates = append(candidates, &Substitution{
				Original:  original,
				Suggested: candidate,
				Score:     score,
				Reasons:   reasons,
			})
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score > candidates[j].Score
		})
		if len(candidates) > maxPerOriginal {
			candidates = candidates[:maxPerOriginal]
		}
		out = append(out, candidates...)
	}
	return out
}

// score computes the weighted composite score and its explanation.
// Reasons annotate sub-scores above fixed thresholds and never feed back
// into the score itself.
func (m *Matcher) score(original, candidate *cards.Card) (float64, []string) {
	typeScore := scoreType(original, candidate)
	functionScore := scoreFunctions(original, candidate)
	archetypeScore := scoreArchetype(original, candidate)

	composite := weightType*typeScore + weightFunction*functionScore + weightArchetype*archetypeScore

	var reasons []string
	switch {
	case typeScore >= 80:
		reasons = append(reasons, "same type/subtype")
	case typeScore >= 50:
		reasons = append(reasons, "same card type")
	}
	switch {
	case functionScore >= 70:
		reasons = append(reasons, "similar function")
	case functionScore >= 40:
		reasons = append(reasons, "partial function match")
	}
	if archetypeScore >= 80 {
		reasons = append(reasons, "good archetype fit")
	}

	return composite, reasons
}

// scoreType rates supertype and subtype agreement, capped at 100.
func scoreType(original, candidate *cards.Card) float64 {
	score := 50.0 // same supertype, guaranteed by the caller's filter

	origSub := strings.ToLower(original.Subtype)
	candSub := strings.ToLower(candidate.Subtype)
	switch {
	case origSub != "" && origSub == candSub:
		score += 50
	case origSub != "" && candSub != "" &&
		(strings.Contains(origSub, candSub) || strings.Contains(candSub, origSub)):
		score += 25
	case origSub == "" && candSub == "":
		score += 30
	}

	if score > 100 {
		score = 100
	}
	return score
}

// scoreFunctions rates tag overlap via Jaccard similarity scaled to
// 0-100. Missing tag data on either side scores neutral.
func scoreFunctions(original, candidate *cards.Card) float64 {
	if len(original.Functions) == 0 || len(candidate.Functions) == 0 {
		return neutralFunctionScore
	}
	return 100 * original.Functions.Jaccard(candidate.Functions)
}

// scoreArchetype rates energy/archetype compatibility. A colorless
// candidate fits any Pokemon deck; the reverse is not true.
func scoreArchetype(original, candidate *cards.Card) float64 {
	switch original.CardType {
	case cards.TypePokemon:
		switch {
		case original.EnergyType != "" && original.EnergyType == candidate.EnergyType:
			return 100
		case candidate.EnergyType == cards.Colorless:
			return 70
		default:
			return 30
		}
	case cards.TypeTrainer:
		return 70
	default: // Energy
		if strings.EqualFold(original.Name, candidate.Name) {
			return 100
		}
		return 20
	}
}
