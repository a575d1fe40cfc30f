package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/promptcraft/guild-api/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed cards.yaml
var cardsYAML []byte

// Cards dealt per type in a fresh hand
const (
	DealMentors   = 2
	DealMethods   = 2
	DealModifiers = 1
)

// ErrUnknownCard is returned when a card reference matches no id or title
var ErrUnknownCard = errors.New("unknown card")

// Catalog is the immutable set of playing cards
type Catalog struct {
	cards []models.Card
	index map[string]models.Card
}

// New loads the embedded card catalog
func New() (*Catalog, error) {
	return Parse(cardsYAML)
}

// Parse builds a catalog from a YAML list of cards
func Parse(data []byte) (*Catalog, error) {
	var cards []models.Card
	if err := yaml.Unmarshal(data, &cards); err != nil {
		return nil, fmt.Errorf("parse card catalog: %w", err)
	}

	c := &Catalog{cards: cards, index: make(map[string]models.Card, len(cards)*2)}
	for _, card := range cards {
		switch card.Type {
		case models.CardTypeMentor, models.CardTypeMethod, models.CardTypeModifier:
		default:
			return nil, fmt.Errorf("card %q: invalid type %q", card.ID, card.Type)
		}
		if _, dup := c.index[card.ID]; dup {
			return nil, fmt.Errorf("card %q: duplicate id", card.ID)
		}
		c.index[card.ID] = card
		c.index[card.Title] = card
	}
	return c, nil
}

// All returns every card grouped by type, in catalog order
func (c *Catalog) All() models.Hand {
	hand := models.Hand{
		Mentors:   []models.Card{},
		Methods:   []models.Card{},
		Modifiers: []models.Card{},
	}
	for _, card := range c.cards {
		switch card.Type {
		case models.CardTypeMentor:
			hand.Mentors = append(hand.Mentors, card)
		case models.CardTypeMethod:
			hand.Methods = append(hand.Methods, card)
		case models.CardTypeModifier:
			hand.Modifiers = append(hand.Modifiers, card)
		}
	}
	return hand
}

// Get finds a card by id or title
func (c *Catalog) Get(ref string) (models.Card, bool) {
	card, ok := c.index[ref]
	return card, ok
}

// Deal draws a random hand without repeats inside each type
func (c *Catalog) Deal(r *rand.Rand) models.Hand {
	all := c.All()
	return models.Hand{
		Mentors:   sample(r, all.Mentors, DealMentors),
		Methods:   sample(r, all.Methods, DealMethods),
		Modifiers: sample(r, all.Modifiers, DealModifiers),
	}
}

// CountTokens prices a prompt plus the referenced cards
func (c *Catalog) CountTokens(prompt string, refs []string) (models.TokenCountResponse, error) {
	cardTokens := 0
	for _, ref := range refs {
		card, ok := c.Get(ref)
		if !ok {
			return models.TokenCountResponse{}, fmt.Errorf("%w: %q", ErrUnknownCard, ref)
		}
		cardTokens += card.TokenCost
	}

	textTokens := CountWords(prompt)
	return models.TokenCountResponse{
		TextTokens:  textTokens,
		CardTokens:  cardTokens,
		TotalTokens: textTokens + cardTokens,
	}, nil
}

func sample(r *rand.Rand, cards []models.Card, n int) []models.Card {
	n = min(n, len(cards))
	out := make([]models.Card, 0, n)
	for _, i := range r.Perm(len(cards))[:n] {
		out = append(out, cards[i])
	}
	return out
}
