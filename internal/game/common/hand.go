package common

import (
	"fmt"
	"sort"
	"strings"
)

// NoStarter marks a hand without a starter card.
const NoStarter = -1

// Hand is an ordered sequence of cards with a fixed capacity. Deleting a
// card shifts the remaining cards left; the relative order of the rest
// is always preserved. A hand optionally records which of its cards is
// the shared starter so the scorer can treat it specially.
type Hand struct {
	cards   []Card
	starter int // index into cards, or NoStarter
}

func NewHand(size int) *Hand {
	return &Hand{
		cards:   make([]Card, 0, size),
		starter: NoStarter,
	}
}

// ParseHand parses a space-separated card list into a hand with the
// given capacity.
func ParseHand(size int, s string) (*Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return nil, err
	}
	if len(cards) > size {
		return nil, fmt.Errorf("hand size %d cannot hold %d cards", size, len(cards))
	}
	h := NewHand(size)
	h.cards = append(h.cards, cards...)
	return h, nil
}

func (h *Hand) Len() int  { return len(h.cards) }
func (h *Hand) Size() int { return cap(h.cards) }

// Card returns the card at index i. The index must be in range.
func (h *Hand) Card(i int) Card { return h.cards[i] }

// Cards returns the hand's cards as a slice. The slice aliases the
// hand's storage and must not be modified.
func (h *Hand) Cards() []Card { return h.cards }

// Append adds a card at the end of the hand. It fails when the hand is
// already at capacity.
func (h *Hand) Append(c Card) error {
	if len(h.cards) == cap(h.cards) {
		return fmt.Errorf("hand full: %d cards", len(h.cards))
	}
	h.cards = append(h.cards, c)
	return nil
}

// Delete removes the card at index i, shifting later cards left.
func (h *Hand) Delete(i int) error {
	if i < 0 || i >= len(h.cards) {
		return fmt.Errorf("hand delete: index %d out of range (%d cards)", i, len(h.cards))
	}
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return nil
}

// Truncate empties the hand and clears the starter.
func (h *Hand) Truncate() {
	h.cards = h.cards[:0]
	h.starter = NoStarter
}

// Copy replaces h's contents with src's. h must have capacity for all
// of src's cards.
func (h *Hand) Copy(src *Hand) error {
	if cap(h.cards) < len(src.cards) {
		return fmt.Errorf("hand copy: capacity %d < %d cards", cap(h.cards), len(src.cards))
	}
	h.cards = h.cards[:len(src.cards)]
	copy(h.cards, src.cards)
	h.starter = src.starter
	return nil
}

// Sort orders the cards by rank, then suit.
func (h *Hand) Sort() {
	sort.Slice(h.cards, func(i, j int) bool {
		return h.cards[i].Compare(h.cards[j]) < 0
	})
}

// Starter returns the index of the starter card, or NoStarter.
func (h *Hand) Starter() int { return h.starter }

// SetStarter marks the card at index i as the starter.
func (h *Hand) SetStarter(i int) error {
	if i < 0 || i >= len(h.cards) {
		return fmt.Errorf("starter index %d out of range (%d cards)", i, len(h.cards))
	}
	h.starter = i
	return nil
}

// AddStarter appends the starter card, re-sorts the hand, and records
// where the starter ended up.
func (h *Hand) AddStarter(starter Card) error {
	if err := h.Append(starter); err != nil {
		return err
	}
	h.Sort()
	h.starter = NoStarter
	for i, c := range h.cards {
		if c.Compare(starter) == 0 {
			h.starter = i
			break
		}
	}
	if h.starter == NoStarter {
		// Unreachable: the starter was just appended.
		return fmt.Errorf("starter %s not found after sort", starter)
	}
	return nil
}

func (h *Hand) String() string {
	var b strings.Builder
	for i, c := range h.cards {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}
