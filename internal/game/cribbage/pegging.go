package cribbage

import (
	"fmt"
	"log/slog"

	"cribsim-go/internal/game/common"
)

// MaxRounds bounds the number of count resets during pegging. With two
// players holding 4 cards each and a 31-point cap per round, the count
// can reset at most three times.
const MaxRounds = 3

// NoPlay is returned by a PegSelector that cannot play any card
// without pushing the count past 31.
const NoPlay = -1

// PegSelector chooses the index of the next card to play from the
// player's sorted pool of unplayed cards, or returns NoPlay. Selectors
// must never choose a card that would push the count past 31; doing so
// is an invariant violation, not a recoverable error.
type PegSelector func(peg *PegState, player, other int) int

// AwardFunc receives every point award the moment it happens: the
// player index and the point delta. It returns true when the game is
// over (a player crossed the winning threshold), which stops pegging
// immediately.
type AwardFunc func(player, points int) bool

// PegState tracks one pegging sequence: each finished round's plays and
// final count, the in-progress round, each player's unplayed pool, and
// the points pegged so far.
type PegState struct {
	avail     [2]*common.Hand
	played    [MaxRounds]*common.Hand
	counts    [MaxRounds]int
	numRounds int

	cur      *common.Hand
	curCount int
	points   [2]int
}

func NewPegState(ncards int) *PegState {
	peg := &PegState{
		cur: common.NewHand(ncards * 2),
	}
	peg.avail[0] = common.NewHand(ncards)
	peg.avail[1] = common.NewHand(ncards)
	for i := range peg.counts {
		peg.counts[i] = -1
	}
	return peg
}

// Available is the player's pool of unplayed cards, kept sorted.
func (peg *PegState) Available(player int) *common.Hand { return peg.avail[player] }

// CurrentCount is the running count of the in-progress round.
func (peg *PegState) CurrentCount() int { return peg.curCount }

// Rounds is the number of finished rounds.
func (peg *PegState) Rounds() int { return peg.numRounds }

// RoundCards returns the cards played in a finished round, in play
// order, or nil for rounds that never happened.
func (peg *PegState) RoundCards(i int) *common.Hand { return peg.played[i] }

// RoundCount returns the final count of a finished round, or -1 for
// rounds that never happened.
func (peg *PegState) RoundCount(i int) int { return peg.counts[i] }

// Points is the number of points the player pegged so far.
func (peg *PegState) Points(player int) int { return peg.points[player] }

// SelectLowCard plays the smallest available card if it fits under 31.
// It relies on the pool being sorted.
func SelectLowCard(peg *PegState, player, other int) int {
	avail := peg.Available(player)
	if peg.CurrentCount()+avail.Card(0).Value() <= 31 {
		return 0
	}
	return NoPlay
}

// SelectHighCard plays the largest available card that keeps the count
// at 31 or below. It relies on the pool being sorted.
func SelectHighCard(peg *PegState, player, other int) int {
	avail := peg.Available(player)
	for i := avail.Len() - 1; i >= 0; i-- {
		if peg.CurrentCount()+avail.Card(i).Value() <= 31 {
			return i
		}
	}
	return NoPlay
}

func (peg *PegState) archiveRound() {
	if peg.numRounds >= MaxRounds {
		panic(fmt.Sprintf("pegging: more than %d rounds", MaxRounds))
	}
	peg.played[peg.numRounds] = peg.cur
	peg.counts[peg.numRounds] = peg.curCount
	peg.numRounds++
}

// PegHands plays out the pegging phase for two post-discard hands.
// Player 1 is the dealer; player 0 leads. Every point award goes
// through award immediately; if award reports the game is over,
// PegHands stops mid-sequence and returns true.
func PegHands(peg *PegState, hands [2]*common.Hand, selectors [2]PegSelector, award AwardFunc, logger *slog.Logger) bool {
	if hands[0].Len() != hands[1].Len() {
		panic("pegging: hands must be the same size")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := peg.avail[0].Copy(hands[0]); err != nil {
		panic(err)
	}
	if err := peg.avail[1].Copy(hands[1]); err != nil {
		panic(err)
	}

	logger.Debug("pegging start", "hand0", hands[0].String(), "hand1", hands[1].String())

	// Start from player 0; the turn flip below runs before the first play.
	player, other := 1, 0

	// A blocked player said "go": they cannot play without passing 31.
	var blocked [2]bool
	needReset := false

	for {
		if needReset {
			// Either the count hit 31, or both players were blocked.
			peg.archiveRound()
			peg.cur = common.NewHand(hands[0].Len() * 2)
			peg.curCount = 0
			blocked[0] = false
			blocked[1] = false
			needReset = false
		}

		// Flip to the other player, unless they are blocked.
		if !blocked[other] {
			player, other = other, player
		}

		playerLeft := peg.avail[player].Len()
		otherLeft := peg.avail[other].Len()
		if playerLeft+otherLeft == 0 {
			panic("pegging: no cards left but sequence did not terminate")
		}

		// Current player is out of cards: try the other player.
		if playerLeft == 0 {
			logger.Debug("player out of cards", "player", player)
			if blocked[other] {
				needReset = true
			}
			continue
		}

		// Both players blocked with cards remaining: reset the count.
		if blocked[player] && blocked[other] {
			logger.Debug("both players blocked", "cardsLeft", playerLeft+otherLeft)
			needReset = true
			continue
		}

		selected := selectors[player](peg, player, other)
		if selected == NoPlay {
			logger.Debug("go", "player", player)
			if !blocked[other] {
				peg.points[other]++
				if award(other, 1) {
					return true
				}
			}
			blocked[player] = true
			continue
		}

		card := peg.avail[player].Card(selected)
		if err := peg.avail[player].Delete(selected); err != nil {
			panic(err)
		}
		if err := peg.cur.Append(card); err != nil {
			panic(err)
		}
		peg.curCount += card.Value()
		if peg.curCount > 31 {
			panic(fmt.Sprintf("pegging: count %d exceeds 31 after %s", peg.curCount, card))
		}

		logger.Debug("played", "player", player, "card", card.String(), "count", peg.curCount)

		switch {
		case peg.curCount == 15:
			peg.points[player] += 2
			if award(player, 2) {
				return true
			}
		case peg.curCount == 31:
			points := 2
			if blocked[other] {
				// Opponent already conceded the go; 31 only adds one more.
				points = 1
			} else if otherLeft == 0 && peg.avail[player].Len() == 0 {
				points = 1
			}
			peg.points[player] += points
			if award(player, points) {
				return true
			}
			if peg.avail[player].Len() > 0 {
				needReset = true
			}
		}

		if pairPoints := pegPairPoints(peg.cur); pairPoints > 0 {
			logger.Debug("pegged pair", "player", player, "points", pairPoints)
			peg.points[player] += pairPoints
			if award(player, pairPoints) {
				return true
			}
		}

		if runPoints := pegRunPoints(peg.cur); runPoints > 0 {
			logger.Debug("pegged run", "player", player, "points", runPoints)
			peg.points[player] += runPoints
			if award(player, runPoints) {
				return true
			}
		}

		if otherLeft == 0 && peg.avail[player].Len() == 0 {
			logger.Debug("last card", "player", player)
			peg.points[player]++
			if award(player, 1) {
				return true
			}
			break
		}
	}

	peg.archiveRound()
	peg.cur = nil

	logger.Debug("pegging done", "points0", peg.points[0], "points1", peg.points[1])
	return false
}

// pegPairPoints scores N-of-a-kind formed by the tail of the current
// round's plays: 2 for a pair, 6 for three in a row, 12 for four.
func pegPairPoints(played *common.Hand) int {
	last := played.Card(played.Len() - 1)
	same := 1
	for i := played.Len() - 2; i >= 0; i-- {
		if played.Card(i).Rank != last.Rank {
			break
		}
		same++
	}
	switch same {
	case 2:
		return 2
	case 3:
		return 6
	case 4:
		return 12
	}
	return 0
}

// pegRunPoints scores a run formed by the tail of the current round's
// plays: the longest suffix (3 up to 7 cards) whose ranks are
// consecutive once sorted. Longest first, stopping at the first match,
// so a long run is never also counted as its shorter tails.
func pegRunPoints(played *common.Hand) int {
	maxRun := 7
	if played.Len() < maxRun {
		maxRun = played.Len()
	}

	for length := maxRun; length >= 3; length-- {
		candidate := common.NewHand(length)
		for i := played.Len() - length; i < played.Len(); i++ {
			if err := candidate.Append(played.Card(i)); err != nil {
				panic(err)
			}
		}
		candidate.Sort()

		isRun := true
		for i := 1; i < candidate.Len(); i++ {
			if candidate.Card(i).Rank != candidate.Card(i-1).Rank+1 {
				isRun = false
				break
			}
		}
		if isRun {
			return length
		}
	}
	return 0
}
