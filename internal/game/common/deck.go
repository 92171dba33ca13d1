package common

import "math/rand"

// Deck is the standard 52-card set. It is built once and reshuffled in
// place between hands; dealing consumes cards by offset without
// removing them.
type Deck struct {
	cards []Card
}

// NewDeck returns the 52 standard cards in rank-major order:
// A♣ A♦ A♥ A♠ 2♣ ... K♠.
func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for rank := Ace; rank <= King; rank++ {
		for suit := Clubs; suit <= Spades; suit++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return &Deck{cards: cards}
}

func (d *Deck) Len() int { return len(d.cards) }

// Card returns the card at offset i into the deck.
func (d *Deck) Card(i int) Card { return d.cards[i] }

// Shuffle permutes the deck in place using the supplied RNG. Simulation
// runs pass seeded sources so whole games replay deterministically.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
