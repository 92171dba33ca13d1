package common

import (
	"fmt"
	"strings"
)

type Suit int

const (
	SuitNone Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
)

var suitSymbol = [...]string{"", "♣", "♦", "♥", "♠"}

func (s Suit) String() string {
	if s < SuitNone || s > Spades {
		return "?"
	}
	return suitSymbol[s]
}

type Rank int

const (
	Joker Rank = iota
	Ace
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// rankChar renders tens as '0' so every card is one rank character wide.
const rankChar = "*A234567890JQK"

// rankValue maps a rank to its value when counting 15s or pegging.
var rankValue = [...]int{
	0, // Joker
	1, // Ace
	2, 3, 4, 5, 6, 7, 8, 9, 10,
	10, // Jack
	10, // Queen
	10, // King
}

type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// Value is the card's count value for 15s and pegging totals:
// ace is 1, face cards are 10, jokers are 0.
func (c Card) Value() int {
	return rankValue[c.Rank]
}

func (c Card) String() string {
	return string(rankChar[c.Rank]) + c.Suit.String()
}

// Debug renders a card as "rank:suit" with numeric fields, e.g. "05:1".
func (c Card) Debug() string {
	return fmt.Sprintf("%02d:%d", int(c.Rank), int(c.Suit))
}

// Compare orders cards by rank, then suit. It returns a negative value
// when c sorts before other and zero when they are equal.
func (c Card) Compare(other Card) int {
	return (int(c.Rank)<<4 | int(c.Suit)) - (int(other.Rank)<<4 | int(other.Suit))
}

// ParseCard parses a card in String() form: a rank character
// (A234567890JQK, with '0' for ten) followed by a suit symbol.
// ASCII suit letters (CDHS) are accepted as well.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("invalid card: empty string")
	}
	idx := strings.IndexByte(rankChar, s[0])
	if idx <= 0 {
		return Card{}, fmt.Errorf("invalid card %q: bad rank %q", s, s[0])
	}
	rank := Rank(idx)

	var suit Suit
	switch rest := s[1:]; rest {
	case "♣", "C":
		suit = Clubs
	case "♦", "D":
		suit = Diamonds
	case "♥", "H":
		suit = Hearts
	case "♠", "S":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid card %q: bad suit %q", s, rest)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a space-separated list of cards, e.g. "2♥ A♠ K♦".
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
