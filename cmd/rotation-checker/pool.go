package main

import (
	"context"
	"log"

	"github.com/ptcgtools/ptcg-companion/internal/ptcg/cards"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/functions"
	"github.com/ptcgtools/ptcg-companion/internal/ptcg/rotation"
)

// candidatePool fetches a replacement set and converts it into tagged
// card records for the substitution matcher.
func candidatePool(ctx context.Context, service *cards.Service, setCode string, table *rotation.Table) ([]*cards.Card, error) {
	data, err := service.SetCards(ctx, setCode)
	if err != nil {
		return nil, err
	}

	pool := make([]*cards.Card, 0, len(data))
	for _, d := range data {
		c := d.Card()
		if c.RegulationMark == cards.UnknownMark {
			c.RegulationMark = table.Mark(c.SetCode)
		}
		functions.TagCard(c, d)
		pool = append(pool, c)
	}
	return pool, nil
}

// tagRotatingCards assigns function tags to deck cards using provider
// data for their printed sets. Provider failures leave the tag sets
// empty; the matcher scores missing data neutrally.
func tagRotatingCards(ctx context.Context, service *cards.Service, rotating []*cards.Card) {
	bySet := make(map[string][]*cards.Card)
	for _, c := range rotating {
		bySet[c.SetCode] = append(bySet[c.SetCode], c)
	}

	for setCode, deckCards := range bySet {
		data, err := service.SetCards(ctx, setCode)
		if err != nil {
			log.Printf("card data for %s unavailable: %v", setCode, err)
			continue
		}

		byNumber := make(map[string]*cards.CardData, len(data))
		for _, d := range data {
			byNumber[d.Number] = d
		}
		for _, c := range deckCards {
			functions.TagCard(c, byNumber[c.Number])
		}
	}
}
