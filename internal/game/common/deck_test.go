package common

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	t.Parallel()

	deck := NewDeck()
	require.Equal(t, 52, deck.Len())

	assert.Equal(t, Card{Rank: Ace, Suit: Clubs}, deck.Card(0))
	assert.Equal(t, Card{Rank: Ace, Suit: Diamonds}, deck.Card(1))
	assert.Equal(t, Card{Rank: Ace, Suit: Hearts}, deck.Card(2))
	assert.Equal(t, Card{Rank: Ace, Suit: Spades}, deck.Card(3))
	assert.Equal(t, Card{Rank: King, Suit: Spades}, deck.Card(51))
}

func TestDeckShuffle(t *testing.T) {
	t.Parallel()

	deck1 := NewDeck()
	deck2 := NewDeck()

	deck1.Shuffle(rand.New(rand.NewSource(42)))
	deck2.Shuffle(rand.New(rand.NewSource(42)))

	// Same seed, same order; still exactly the 52 standard cards.
	seen := map[Card]bool{}
	for i := 0; i < 52; i++ {
		assert.Equal(t, deck1.Card(i), deck2.Card(i))
		seen[deck1.Card(i)] = true
	}
	assert.Len(t, seen, 52)

	deck3 := NewDeck()
	deck3.Shuffle(rand.New(rand.NewSource(43)))
	different := false
	for i := 0; i < 52; i++ {
		if deck1.Card(i) != deck3.Card(i) {
			different = true
			break
		}
	}
	assert.True(t, different, "different seeds should permute differently")
}
