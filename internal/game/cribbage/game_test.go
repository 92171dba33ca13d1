package cribbage

import (
	"math/rand"
	"testing"

	"cribsim-go/internal/game/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lowCardGame(t *testing.T) *GameState {
	t.Helper()
	strategy := Strategy{Peg: SelectLowCard, Discard: ExhaustiveDiscard}
	return NewGame(strategy, strategy, rand.New(rand.NewSource(1)), nil)
}

func TestEvaluateHands(t *testing.T) {
	t.Parallel()

	g := lowCardGame(t)

	hands := [2]*common.Hand{
		mustHand(t, 6, "2♦ 2♥ 4♥ 6♥"),
		mustHand(t, 6, "A♣ A♥ A♠ 8♠"),
	}
	crib := mustHand(t, 5, "2♠ 4♣ 6♣ 8♣")

	done, err := g.evaluateHands(hands, crib, common.Card{Rank: common.Ten, Suit: common.Clubs})
	require.NoError(t, err)
	assert.False(t, done)

	// Seat 0 pegs nothing and holds a pair; seat 1 pegs the last card
	// and holds three aces. The crib is worthless.
	assert.Equal(t, 2, g.Score(PlayerA))
	assert.Equal(t, 7, g.Score(PlayerB))
	assert.Equal(t, NoWinner, g.Winner())
}

func TestEvaluateHandsStarterJack(t *testing.T) {
	t.Parallel()

	g := lowCardGame(t)

	hands := [2]*common.Hand{
		mustHand(t, 6, "2♦ 2♥ 4♥ 6♥"),
		mustHand(t, 6, "A♣ A♥ A♠ 8♠"),
	}
	crib := mustHand(t, 5, "2♠ 4♣ 6♣ 8♣")

	done, err := g.evaluateHands(hands, crib, common.Card{Rank: common.Jack, Suit: common.Clubs})
	require.NoError(t, err)
	assert.False(t, done)

	// Same hands as above, plus 2 to the dealer for the turned jack.
	assert.Equal(t, 2, g.Score(PlayerA))
	assert.Equal(t, 9, g.Score(PlayerB))
}

func TestEvaluateHandsStarterJackWins(t *testing.T) {
	t.Parallel()

	g := lowCardGame(t)
	g.scores = [2]int{120, 119}

	hands := [2]*common.Hand{
		mustHand(t, 6, "2♦ 2♥ 4♥ 6♥"),
		mustHand(t, 6, "A♣ A♥ A♠ 8♠"),
	}
	crib := mustHand(t, 5, "2♠ 4♣ 6♣ 8♣")

	done, err := g.evaluateHands(hands, crib, common.Card{Rank: common.Jack, Suit: common.Clubs})
	require.NoError(t, err)

	// The turned jack puts the dealer over the top before any pegging.
	assert.True(t, done)
	assert.Equal(t, PlayerB, g.Winner())
	assert.Equal(t, 120, g.Score(PlayerA))
	assert.Equal(t, 121, g.Score(PlayerB))
}

func TestPlayGame(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 5; seed++ {
		strategy := Strategy{Peg: SelectLowCard, Discard: ExhaustiveDiscard}
		g := NewGame(strategy, strategy, rand.New(rand.NewSource(seed)), nil)

		winner, err := g.PlayGame(common.NewDeck())
		require.NoError(t, err)
		require.NotEqual(t, NoWinner, winner)
		assert.Equal(t, winner, g.Winner())

		assert.GreaterOrEqual(t, g.Score(winner), WinningScore)
		loser := PlayerB
		if winner == PlayerB {
			loser = PlayerA
		}
		assert.Less(t, g.Score(loser), WinningScore)
	}
}

func TestPlayGameDeterministic(t *testing.T) {
	t.Parallel()

	strategy := Strategy{Peg: SelectLowCard, Discard: ExhaustiveDiscard}

	g1 := NewGame(strategy, strategy, rand.New(rand.NewSource(99)), nil)
	w1, err := g1.PlayGame(common.NewDeck())
	require.NoError(t, err)

	g2 := NewGame(strategy, strategy, rand.New(rand.NewSource(99)), nil)
	w2, err := g2.PlayGame(common.NewDeck())
	require.NoError(t, err)

	assert.Equal(t, w1, w2)
	assert.Equal(t, g1.Score(PlayerA), g2.Score(PlayerA))
	assert.Equal(t, g1.Score(PlayerB), g2.Score(PlayerB))
}
