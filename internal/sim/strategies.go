package sim

import (
	"fmt"
	"strings"

	"cribsim-go/internal/game/cribbage"
	"cribsim-go/internal/models"
)

// Strategy names are "<discard>-<peg>", e.g. "exhaustive-low". The
// discard half picks which cards go to the crib, the peg half which
// card to play during the count.
const DefaultStrategy = "exhaustive-low"

// StrategyNames lists every valid strategy name.
func StrategyNames() []string {
	return []string{
		"exhaustive-low",
		"exhaustive-high",
		"random-low",
		"random-high",
	}
}

// ResolveStrategy maps a strategy name to engine policies.
func ResolveStrategy(name string) (cribbage.Strategy, error) {
	discardName, pegName, ok := strings.Cut(name, "-")
	if !ok {
		return cribbage.Strategy{}, fmt.Errorf("%w: %q", models.ErrUnknownStrategy, name)
	}

	var s cribbage.Strategy
	switch discardName {
	case "exhaustive":
		s.Discard = cribbage.ExhaustiveDiscard
	case "random":
		s.Discard = cribbage.RandomDiscard
	default:
		return cribbage.Strategy{}, fmt.Errorf("%w: %q", models.ErrUnknownStrategy, name)
	}
	switch pegName {
	case "low":
		s.Peg = cribbage.SelectLowCard
	case "high":
		s.Peg = cribbage.SelectHighCard
	default:
		return cribbage.Strategy{}, fmt.Errorf("%w: %q", models.ErrUnknownStrategy, name)
	}
	return s, nil
}
