package cribbage

import (
	"math/rand"

	"cribsim-go/internal/game/common"
)

// DiscardFunc moves two cards from a dealt hand into the crib, leaving
// the hand with exactly four cards. The hand arrives sorted and must
// stay sorted.
type DiscardFunc func(rng *rand.Rand, hand, crib *common.Hand) error

// ExhaustiveDiscard keeps the 4-card subset with the best starterless
// score, trying every subset. Ties keep the first subset to reach the
// top score; if every subset scores zero the last one enumerated is
// kept. The two leftover cards go to the crib.
func ExhaustiveDiscard(rng *rand.Rand, hand, crib *common.Hand) error {
	candidate := common.NewHand(4)
	winner := common.NewHand(4)

	topScore := 0
	var visitErr error
	EachCombination(hand.Len(), 4, func(indexes []int) {
		if visitErr != nil {
			return
		}
		candidate.Truncate()
		for _, idx := range indexes {
			if err := candidate.Append(hand.Card(idx)); err != nil {
				visitErr = err
				return
			}
		}

		// Candidates stay sorted: the input hand is sorted and
		// combination indexes are ascending.
		score, err := ScoreHand(candidate)
		if err != nil {
			visitErr = err
			return
		}
		if score.Total > topScore {
			topScore = score.Total
			visitErr = winner.Copy(candidate)
		}
	})
	if visitErr != nil {
		return visitErr
	}

	if topScore == 0 {
		if err := winner.Copy(candidate); err != nil {
			return err
		}
	}

	// Everything not kept goes to the crib.
	for i := 0; i < hand.Len(); i++ {
		kept := false
		for j := 0; j < winner.Len(); j++ {
			if hand.Card(i).Compare(winner.Card(j)) == 0 {
				kept = true
				break
			}
		}
		if !kept {
			if err := crib.Append(hand.Card(i)); err != nil {
				return err
			}
		}
	}
	return hand.Copy(winner)
}

// RandomDiscard moves two uniformly chosen cards to the crib.
func RandomDiscard(rng *rand.Rand, hand, crib *common.Hand) error {
	drop1 := rng.Intn(hand.Len())
	drop2 := drop1
	for drop2 == drop1 {
		drop2 = rng.Intn(hand.Len())
	}

	if err := crib.Append(hand.Card(drop1)); err != nil {
		return err
	}
	if err := crib.Append(hand.Card(drop2)); err != nil {
		return err
	}

	// Delete the higher index first so the lower one stays valid.
	if drop1 < drop2 {
		drop1, drop2 = drop2, drop1
	}
	if err := hand.Delete(drop1); err != nil {
		return err
	}
	return hand.Delete(drop2)
}
