package cribbage

import (
	"testing"

	"cribsim-go/internal/game/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHand(t *testing.T, size int, cards string) *common.Hand {
	t.Helper()
	h, err := common.ParseHand(size, cards)
	require.NoError(t, err)
	return h
}

func TestCountFifteens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hand string
		want int
	}{
		// One card cannot possibly add up to 15.
		{"2♦", 0},
		{"K♦", 0},
		// All 4 cards needed for a single 15.
		{"A♥ 3♥ 5♠ 6♦", 1},
		// A single 15 from three cards: 2 + 5 + 8.
		{"2♦ 3♥ 5♠ 8♥", 1},
		// Two cards make exactly one 15.
		{"2♦ 3♥ 7♠ 8♥", 1},
		// Two 15s: 2+3+Q and 5+Q.
		{"2♦ 3♥ 5♠ Q♥", 2},
	}
	for _, tc := range tests {
		hand := mustHand(t, 5, tc.hand)
		assert.Equal(t, tc.want, countFifteens(hand), "hand %s", tc.hand)
	}
}

func TestCountPairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hand string
		want int
	}{
		{"2♦", 0},
		{"2♦ 3♥", 0},
		{"2♦ 2♥", 1},
		{"2♦ 2♥ 5♣ 5♠", 2},
		// 3 of a kind is 3 pairs.
		{"2♦ 2♥ 2♠ 5♠", 3},
	}
	for _, tc := range tests {
		hand := mustHand(t, 5, tc.hand)
		assert.Equal(t, tc.want, countPairs(hand), "hand %s", tc.hand)
	}
}

func TestCountRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hand string
		want int
	}{
		// Nice hand, but no runs.
		{"4♥ 5♦ 5♠ 0♥ J♥", 0},
		// Single run of 3.
		{"4♥ 5♦ 6♠ 0♥ J♥", 3},
		// Single run of 3 at the end of the hand.
		{"4♥ 5♦ 9♠ 0♥ J♥", 3},
		// Single run of 4.
		{"4♥ 8♦ 9♠ 0♥ J♥", 4},
		// Double run of 3: 6 points.
		{"4♥ 8♦ 8♠ 9♠ 0♥ Q♥", 6},
		// Double double run of 3: 12 points.
		{"4♥ 8♦ 8♠ 9♠ 0♥ 0♥", 12},
	}
	for _, tc := range tests {
		hand := mustHand(t, 6, tc.hand)
		assert.Equal(t, tc.want, countRuns(hand), "hand %s", tc.hand)
	}
}

func TestCountFlush(t *testing.T) {
	t.Parallel()

	// A hand with no starter either is a flush ...
	hand := mustHand(t, 5, "4♥ 6♥ 7♥ K♥")
	assert.Equal(t, 4, countFlush(hand))

	// ... or is not.
	hand = mustHand(t, 5, "4♥ 6♥ 7♠ K♥")
	assert.Equal(t, 0, countFlush(hand))

	// With a non-matching starter it can still be a flush of 4 ...
	hand = mustHand(t, 5, "4♥ 6♥ 7♥ K♥ K♠")
	require.NoError(t, hand.SetStarter(4))
	assert.Equal(t, 4, countFlush(hand))

	// ... or a flush of 5 when the starter matches ...
	hand = mustHand(t, 5, "4♥ 6♥ 7♥ Q♥ K♥")
	require.NoError(t, hand.SetStarter(4))
	assert.Equal(t, 5, countFlush(hand))

	// ... or no flush at all.
	hand = mustHand(t, 5, "4♥ 6♦ 7♥ Q♥ K♥")
	require.NoError(t, hand.SetStarter(4))
	assert.Equal(t, 0, countFlush(hand))

	// But if the 6♦ was the starter, it's a flush of 4 after all.
	require.NoError(t, hand.SetStarter(1))
	assert.Equal(t, 4, countFlush(hand))

	// Edge case: starter at the lowest position.
	hand = mustHand(t, 5, "4♦ 6♥ 7♥ Q♥ K♥")
	require.NoError(t, hand.SetStarter(0))
	assert.Equal(t, 4, countFlush(hand))
}

func TestCountRightJack(t *testing.T) {
	t.Parallel()

	hand := mustHand(t, 5, "4♥ 7♣ 9♣ J♦ J♥")

	// No starter set: no points possible.
	assert.Equal(t, 0, countRightJack(hand))

	// Starter suit matches neither jack.
	require.NoError(t, hand.SetStarter(1))
	assert.Equal(t, 0, countRightJack(hand))

	// Starter suit matches a held jack.
	require.NoError(t, hand.SetStarter(0))
	assert.Equal(t, 1, countRightJack(hand))

	// A jack sitting at the starter position scores nothing by itself:
	// J♦ is the starter and the remaining J♥ doesn't match diamonds.
	require.NoError(t, hand.SetStarter(3))
	assert.Equal(t, 0, countRightJack(hand))
}

func TestScoreHand(t *testing.T) {
	t.Parallel()

	// Four 15s and a pair.
	hand := mustHand(t, 5, "5♦ 5♠ 0♥ J♥")
	score, err := ScoreHand(hand)
	require.NoError(t, err)
	assert.Equal(t, 10, score.Total)
	assert.Equal(t, 8, score.Fifteens)
	assert.Equal(t, 2, score.Pairs)

	// Three 15s and a double run of 4.
	hand = mustHand(t, 5, "6♦ 7♥ 7♠ 8♠ 9♥")
	score, err = ScoreHand(hand)
	require.NoError(t, err)
	assert.Equal(t, 16, score.Total)

	// Two 15s, run of 4, flush of 4.
	hand = mustHand(t, 5, "6♠ 7♠ 8♠ 9♠")
	score, err = ScoreHand(hand)
	require.NoError(t, err)
	assert.Equal(t, 12, score.Total)
	assert.Equal(t, 4, score.Fifteens)
	assert.Equal(t, 4, score.Runs)
	assert.Equal(t, 4, score.Flush)

	// Two 15s, run of 4, flush of 5, right jack.
	hand = mustHand(t, 5, "6♠ 7♠ 8♠ 9♠ J♠")
	require.NoError(t, hand.SetStarter(2))
	score, err = ScoreHand(hand)
	require.NoError(t, err)
	assert.Equal(t, 14, score.Total)
	assert.Equal(t, 1, score.RightJack)

	// When the jack itself is the starter, the right-jack point is not
	// counted here (it was the dealer's starter bonus before pegging).
	require.NoError(t, hand.SetStarter(4))
	score, err = ScoreHand(hand)
	require.NoError(t, err)
	assert.Equal(t, 13, score.Total)
	assert.Equal(t, 0, score.RightJack)
	assert.Equal(t, 5, score.Flush)
}

func TestScoreHandIdempotent(t *testing.T) {
	t.Parallel()

	hand := mustHand(t, 5, "6♦ 7♥ 7♠ 8♠ 9♥")
	first, err := ScoreHand(hand)
	require.NoError(t, err)
	second, err := ScoreHand(hand)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScoreHandEmpty(t *testing.T) {
	t.Parallel()

	_, err := ScoreHand(common.NewHand(4))
	assert.ErrorIs(t, err, ErrEmptyHand)
}
