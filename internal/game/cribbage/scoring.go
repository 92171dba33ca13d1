package cribbage

import (
	"errors"

	"cribsim-go/internal/game/common"
)

// ScoreBreakdown is the point total of a hand split by source.
// Fifteens and Pairs hold point values (already doubled), not raw
// counts, so Total is a plain sum.
type ScoreBreakdown struct {
	Fifteens  int `json:"fifteens"`
	Pairs     int `json:"pairs"`
	Runs      int `json:"runs"`
	Flush     int `json:"flush"`
	RightJack int `json:"right_jack"`
	Total     int `json:"total"`
}

var ErrEmptyHand = errors.New("cannot score an empty hand")

// ScoreHand scores a hand of any size, with or without a starter card.
// The hand must already be sorted by rank; run detection depends on it.
func ScoreHand(hand *common.Hand) (ScoreBreakdown, error) {
	if hand.Len() == 0 {
		return ScoreBreakdown{}, ErrEmptyHand
	}

	var sb ScoreBreakdown
	sb.Fifteens = 2 * countFifteens(hand)
	sb.Pairs = 2 * countPairs(hand)
	sb.Runs = countRuns(hand)
	sb.Flush = countFlush(hand)
	sb.RightJack = countRightJack(hand)
	sb.Total = sb.Fifteens + sb.Pairs + sb.Runs + sb.Flush + sb.RightJack
	return sb, nil
}

// countFifteens counts the subsets of the hand, of every size down to
// two cards, whose count values sum to exactly 15.
func countFifteens(hand *common.Hand) int {
	n := hand.Len()
	fifteens := 0
	for subsetLen := n; subsetLen >= 2; subsetLen-- {
		EachCombination(n, subsetLen, func(indexes []int) {
			sum := 0
			for _, idx := range indexes {
				sum += hand.Card(idx).Value()
			}
			if sum == 15 {
				fifteens++
			}
		})
	}
	return fifteens
}

// countPairs counts unordered pairs of equal rank in a sorted hand:
//
//	2♦ 3♥ 3♠ 5♠ -> 1 pair
//	2♦ 2♥ 5♣ 5♠ -> 2 pairs
//	2♦ 2♥ 2♠ 5♠ -> 3 pairs
func countPairs(hand *common.Hand) int {
	pairs := 0
	for i := 0; i < hand.Len()-1; i++ {
		for j := i + 1; j < hand.Len() && hand.Card(j).Rank == hand.Card(i).Rank; j++ {
			pairs++
		}
	}
	return pairs
}

// countRuns scores every maximal run of 3+ consecutive ranks in a
// sorted hand. A repeated rank inside a run doubles its value (a
// "double run") instead of breaking it; a gap closes the current run.
func countRuns(hand *common.Hand) int {
	runPoints := 0
	currentRun := 1
	repeats := 1
	for i := 1; i < hand.Len(); i++ {
		prev := hand.Card(i - 1).Rank
		cur := hand.Card(i).Rank
		switch {
		case cur == prev+1:
			// 3 4: extend to 2; 3 4 5: extend to 3.
			currentRun++
		case cur == prev:
			// 3 4 4 5 is a double run; 3 4 4 5 5 a double double run.
			repeats *= 2
		default:
			if currentRun >= 3 {
				runPoints += currentRun * repeats
			}
			currentRun = 1
			repeats = 1
		}
	}
	// Falling off the end also closes a run.
	if currentRun >= 3 {
		runPoints += currentRun * repeats
	}
	return runPoints
}

// countFlush scores a hand whose non-starter cards all share one suit.
// The starter extends the flush by one when it matches; a hand without
// a starter must be single-suited throughout.
func countFlush(hand *common.Hand) int {
	flushSuit := common.SuitNone
	flush := 0
	for i := 0; i < hand.Len(); i++ {
		if i == hand.Starter() {
			continue
		}
		suit := hand.Card(i).Suit
		if flushSuit == common.SuitNone {
			flushSuit = suit
			flush = 1
			continue
		}
		if suit != flushSuit {
			return 0
		}
		flush++
	}

	if hand.Starter() != common.NoStarter && flush > 0 {
		if hand.Card(hand.Starter()).Suit == flushSuit {
			flush++
		}
	}
	return flush
}

// countRightJack scores 1 for a jack held in the hand whose suit
// matches the starter. A jack sitting at the starter position itself
// earns nothing here (that is the dealer's 2-point starter bonus,
// awarded before pegging).
func countRightJack(hand *common.Hand) int {
	if hand.Starter() == common.NoStarter {
		return 0
	}
	starterSuit := hand.Card(hand.Starter()).Suit
	for i := 0; i < hand.Len(); i++ {
		if i == hand.Starter() {
			continue
		}
		c := hand.Card(i)
		if c.Rank == common.Jack && c.Suit == starterSuit {
			return 1
		}
	}
	return 0
}
