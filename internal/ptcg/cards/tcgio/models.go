package tcgio

import "fmt"

// Card matches the pokemontcg.io v2 card object schema.
type Card struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Supertype      string    `json:"supertype"`
	Subtypes       []string  `json:"subtypes,omitempty"`
	HP             string    `json:"hp,omitempty"`
	Types          []string  `json:"types,omitempty"`
	EvolvesFrom    string    `json:"evolvesFrom,omitempty"`
	Rules          []string  `json:"rules,omitempty"`
	Abilities      []Ability `json:"abilities,omitempty"`
	Attacks        []Attack  `json:"attacks,omitempty"`
	Number         string    `json:"number"`
	Rarity         string    `json:"rarity,omitempty"`
	RegulationMark string    `json:"regulationMark,omitempty"`
	Set            Set       `json:"set"`
}

// Ability is an always-on or activated effect printed on a Pokemon.
type Ability struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Type string `json:"type"`
}

// Attack is one attack printed on a Pokemon.
type Attack struct {
	Name                string   `json:"name"`
	Cost                []string `json:"cost,omitempty"`
	ConvertedEnergyCost int      `json:"convertedEnergyCost"`
	Damage              string   `json:"damage,omitempty"`
	Text                string   `json:"text,omitempty"`
}

// Set matches the pokemontcg.io set object schema.
type Set struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Series       string `json:"series"`
	PrintedTotal int    `json:"printedTotal"`
	Total        int    `json:"total"`
	PtcgoCode    string `json:"ptcgoCode,omitempty"`
	ReleaseDate  string `json:"releaseDate"`
}

// cardList is the paginated envelope for card queries.
type cardList struct {
	Data       []*Card `json:"data"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	Count      int     `json:"count"`
	TotalCount int     `json:"totalCount"`
}

// setList is the envelope for set queries.
type setList struct {
	Data       []*Set `json:"data"`
	TotalCount int    `json:"totalCount"`
}

// cardEnvelope wraps a single-card response.
type cardEnvelope struct {
	Data *Card `json:"data"`
}

// setEnvelope wraps a single-set response.
type setEnvelope struct {
	Data *Set `json:"data"`
}

// NotFoundError indicates the requested resource does not exist.
type NotFoundError struct {
	URL string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.URL)
}

// APIError is an error payload returned by the API.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}
