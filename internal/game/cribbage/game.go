package cribbage

import (
	"log/slog"
	"math/rand"

	"cribsim-go/internal/game/common"
)

// WinningScore ends the game as soon as a player reaches it.
const WinningScore = 121

// PlayerName is a stable player identity. Cumulative scores belong to
// identities; the dealer seat swaps between them every hand.
type PlayerName int

const (
	PlayerA PlayerName = iota
	PlayerB
)

// NoWinner is the winner value while the game is still running.
const NoWinner PlayerName = -1

func (n PlayerName) String() string {
	switch n {
	case PlayerA:
		return "a"
	case PlayerB:
		return "b"
	}
	return "?"
}

// Strategy bundles the two pluggable policies a player brings to a
// game. The engine never looks inside them.
type Strategy struct {
	Peg     PegSelector
	Discard DiscardFunc
}

// GameState holds one full game: per-identity cumulative scores, the
// seat-to-identity mapping for the current hand, and the winner once a
// player crosses WinningScore.
type GameState struct {
	names      [2]PlayerName // seat -> identity; seat 1 deals
	strategies [2]Strategy   // indexed by identity
	scores     [2]int        // indexed by identity
	winner     PlayerName

	rng    *rand.Rand
	logger *slog.Logger
}

func NewGame(a, b Strategy, rng *rand.Rand, logger *slog.Logger) *GameState {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &GameState{
		names:      [2]PlayerName{PlayerA, PlayerB},
		strategies: [2]Strategy{a, b},
		winner:     NoWinner,
		rng:        rng,
		logger:     logger,
	}
}

// Score is the cumulative score of an identity (not a seat).
func (g *GameState) Score(name PlayerName) int { return g.scores[name] }

// Winner returns the winning identity, or NoWinner.
func (g *GameState) Winner() PlayerName { return g.winner }

// updateScore credits points to the identity sitting in the given seat
// and reports whether that ended the game.
func (g *GameState) updateScore(seat int, points int) bool {
	name := g.names[seat]
	g.scores[name] += points
	if g.scores[name] >= WinningScore {
		g.winner = name
		g.logger.Info("winner",
			"seat", seat,
			"player", name.String(),
			"score", g.scores[name])
		return true
	}
	return false
}

// scoreStarterJack awards the dealer 2 points when the starter turns up
// a jack. This fires before pegging, unlike the right-jack bonus, which
// is scored from hand-held jacks afterwards.
func (g *GameState) scoreStarterJack(starter common.Card) bool {
	if starter.Rank != common.Jack {
		return false
	}
	g.logger.Debug("starter is a jack: 2 points to dealer", "starter", starter.String())
	return g.updateScore(1, 2)
}

// evaluateHands runs everything that happens after the discards: the
// starter-jack bonus, pegging, and the scoring of both hands and the
// crib (crib points go to the dealer). It returns true as soon as any
// award ends the game, skipping whatever scoring remains.
func (g *GameState) evaluateHands(hands [2]*common.Hand, crib *common.Hand, starter common.Card) (bool, error) {
	if g.scoreStarterJack(starter) {
		return true, nil
	}

	selectors := [2]PegSelector{
		g.strategies[g.names[0]].Peg,
		g.strategies[g.names[1]].Peg,
	}
	peg := NewPegState(hands[0].Len())
	if PegHands(peg, hands, selectors, g.updateScore, g.logger) {
		return true, nil
	}

	if err := hands[0].AddStarter(starter); err != nil {
		return false, err
	}
	if err := hands[1].AddStarter(starter); err != nil {
		return false, err
	}
	if err := crib.AddStarter(starter); err != nil {
		return false, err
	}

	for seat := 0; seat < 2; seat++ {
		score, err := ScoreHand(hands[seat])
		if err != nil {
			return false, err
		}
		g.logger.Debug("hand scored",
			"seat", seat,
			"hand", hands[seat].String(),
			"total", score.Total)
		if g.updateScore(seat, score.Total) {
			return true, nil
		}
	}

	cribScore, err := ScoreHand(crib)
	if err != nil {
		return false, err
	}
	g.logger.Debug("crib scored", "crib", crib.String(), "total", cribScore.Total)
	return g.updateScore(1, cribScore.Total), nil
}

// PlayHand plays one complete hand: shuffle, deal six cards each,
// discard to the crib, turn the starter, peg, and score. It reports
// whether the hand produced a winner.
func (g *GameState) PlayHand(deck *common.Deck) (bool, error) {
	const handSize = 6

	hands := [2]*common.Hand{common.NewHand(handSize), common.NewHand(handSize)}
	crib := common.NewHand(5)

	deck.Shuffle(g.rng)
	offset := 0
	for i := 0; i < handSize; i++ {
		for seat := 0; seat < 2; seat++ {
			if err := hands[seat].Append(deck.Card(offset)); err != nil {
				return false, err
			}
			offset++
		}
	}

	// Discard strategies require sorted input; they must leave the hand
	// sorted too, since pegging selectors and the scorer depend on it.
	for seat := 0; seat < 2; seat++ {
		hands[seat].Sort()
		g.logger.Debug("dealt", "seat", seat, "hand", hands[seat].String())
		discard := g.strategies[g.names[seat]].Discard
		if err := discard(g.rng, hands[seat], crib); err != nil {
			return false, err
		}
		g.logger.Debug("after discard", "seat", seat, "hand", hands[seat].String())
	}
	g.logger.Debug("crib formed", "crib", crib.String())

	// Turn up the starter from the undealt remainder.
	starterIdx := offset + g.rng.Intn(deck.Len()-offset)
	starter := deck.Card(starterIdx)
	g.logger.Debug("starter turned", "deckIndex", starterIdx, "starter", starter.String())

	return g.evaluateHands(hands, crib, starter)
}

// PlayGame plays hands, swapping the dealer seat between the two
// identities each time, until someone wins.
func (g *GameState) PlayGame(deck *common.Deck) (PlayerName, error) {
	numHands := 0
	for {
		// Swap seats: whoever dealt last hand now leads.
		g.names[0], g.names[1] = g.names[1], g.names[0]

		done, err := g.PlayHand(deck)
		if err != nil {
			return NoWinner, err
		}
		numHands++

		g.logger.Info("hand complete",
			"hands", numHands,
			"scoreA", g.scores[PlayerA],
			"scoreB", g.scores[PlayerB],
			"winner", g.winner.String())
		if done {
			return g.winner, nil
		}
	}
}
