package card

import (
	"fmt"
	"slices"
	"strings"
)

// Hand is the ordered multiset of cards a player holds.
type Hand []Card

// ParseHand reads space separated card notation, e.g. "2S TH J♣".
func ParseHand(input string) (Hand, error) {
	fields := strings.Fields(input)
	hand := make(Hand, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, fmt.Errorf("parse hand %q: %w", input, err)
		}
		hand = append(hand, c)
	}
	return hand, nil
}

// IndexFunc returns the index of the first card satisfying f, or -1.
func (h Hand) IndexFunc(f func(Card) bool) int {
	return slices.IndexFunc(h, f)
}

// Contains reports whether the hand holds at least one copy of c.
func (h Hand) Contains(c Card) bool {
	return slices.Contains(h, c)
}

// RemoveAt removes and returns the card at index i, preserving the order of the rest.
func (h Hand) RemoveAt(i int) (Hand, Card) {
	c := h[i]
	return slices.Delete(h, i, i+1), c
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
