// Package board models the 10x10 playing surface: the fixed card layout, chip
// ownership, completed sequences and the indexes derived from them.
package board

import (
	"fmt"
	"slices"

	"github.com/palemoky/sequence/internal/apperrors"
	"github.com/palemoky/sequence/internal/game/card"
)

const (
	Size               = 10
	SequenceLength     = 5
	NumPlayableSquares = Size*Size - 4
)

// Sequence is a completed run. Squares holds only chipped squares; corners that
// counted toward the run are not recorded.
type Sequence struct {
	Team    Team
	Squares []Square
}

// Contains reports whether sq is protected by this sequence.
func (s Sequence) Contains(sq Square) bool {
	return slices.Contains(s.Squares, sq)
}

// Board is the authoritative grid state. The zero value is not usable; call New.
type Board struct {
	cards [Size][Size]card.Card
	chips [Size][Size]Team

	cardToSquares map[card.Card][]Square
	teamToSquares map[Team]map[Square]struct{}
	sequences     []Sequence
	inSequence    map[Square]struct{}
	numChips      int

	checkInvariants bool
}

// Option configures a Board.
type Option func(*Board)

// WithInvariantChecks re-verifies every invariant after each mutation and panics on failure.
func WithInvariantChecks() Option {
	return func(b *Board) {
		b.checkInvariants = true
	}
}

// New returns an empty board with the standard card layout.
func New(opts ...Option) *Board {
	b := &Board{
		cards:         parseLayout(standardLayout),
		cardToSquares: make(map[card.Card][]Square),
		teamToSquares: make(map[Team]map[Square]struct{}),
		inSequence:    make(map[Square]struct{}),
	}
	for _, sq := range playableSquares {
		c := b.cards[sq.Row][sq.Col]
		b.cardToSquares[c] = append(b.cardToSquares[c], sq)
	}
	for _, t := range Teams {
		b.teamToSquares[t] = make(map[Square]struct{})
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CardAt returns the card printed on sq; ok is false for corners and off-board squares.
func (b *Board) CardAt(sq Square) (c card.Card, ok bool) {
	if !sq.IsPlayable() {
		return card.Card{}, false
	}
	return b.cards[sq.Row][sq.Col], true
}

// ChipAt returns the team holding sq; ok is false when the square has no chip.
func (b *Board) ChipAt(sq Square) (Team, bool) {
	if !sq.IsPlayable() {
		return NoTeam, false
	}
	t := b.chips[sq.Row][sq.Col]
	return t, t != NoTeam
}

func (b *Board) NumChips() int {
	return b.numChips
}

func (b *Board) IsFull() bool {
	return b.numChips == NumPlayableSquares
}

func (b *Board) IsEmpty() bool {
	return b.numChips == 0
}

// SquaresForCard returns the squares printed with c. Jacks have none.
func (b *Board) SquaresForCard(c card.Card) []Square {
	return slices.Clone(b.cardToSquares[c])
}

// UnoccupiedSquaresForCard returns the squares printed with c that have no chip.
func (b *Board) UnoccupiedSquaresForCard(c card.Card) []Square {
	var out []Square
	for _, sq := range b.cardToSquares[c] {
		if _, chipped := b.ChipAt(sq); !chipped {
			out = append(out, sq)
		}
	}
	return out
}

// IsDead reports whether c is an ordinary card whose every square is already chipped.
func (b *Board) IsDead(c card.Card) bool {
	if c.IsJack() {
		return false
	}
	return len(b.UnoccupiedSquaresForCard(c)) == 0
}

// CanBePlayed reports whether team could play c at all: one-eyed jacks need a
// non-empty board, two-eyed jacks a non-full board, ordinary cards must not be dead.
func (b *Board) CanBePlayed(c card.Card, _ Team) bool {
	switch {
	case c.IsOneEyedJack():
		return !b.IsEmpty()
	case c.IsTwoEyedJack():
		return !b.IsFull()
	default:
		return !b.IsDead(c)
	}
}

// CountsFor reports whether sq contributes to a run for team.
func (b *Board) CountsFor(sq Square, team Team) bool {
	if sq.IsCorner() {
		return true
	}
	t, ok := b.ChipAt(sq)
	return ok && t == team
}

// InSequence reports whether sq is protected by a completed sequence.
func (b *Board) InSequence(sq Square) bool {
	_, ok := b.inSequence[sq]
	return ok
}

// Sequences returns the completed sequences in creation order.
func (b *Board) Sequences() []Sequence {
	out := make([]Sequence, len(b.sequences))
	for i, s := range b.sequences {
		out[i] = Sequence{Team: s.Team, Squares: slices.Clone(s.Squares)}
	}
	return out
}

// SequenceCount returns the number of sequences owned by team.
func (b *Board) SequenceCount(team Team) int {
	n := 0
	for _, s := range b.sequences {
		if s.Team == team {
			n++
		}
	}
	return n
}

// TeamSquares returns the squares chipped by team in row-major order.
func (b *Board) TeamSquares(team Team) []Square {
	out := make([]Square, 0, len(b.teamToSquares[team]))
	for sq := range b.teamToSquares[team] {
		out = append(out, sq)
	}
	slices.SortFunc(out, compareSquares)
	return out
}

// RemoveChip clears sq. Removing from a non-playable, empty or protected square
// is a caller bug and panics.
func (b *Board) RemoveChip(sq Square) {
	if !sq.IsPlayable() {
		panic(apperrors.Violation("remove chip", fmt.Sprintf("square %s is not playable", sq)))
	}
	team, ok := b.ChipAt(sq)
	if !ok {
		panic(apperrors.Violation("remove chip", fmt.Sprintf("no chip on %s", sq)))
	}
	if b.InSequence(sq) {
		panic(apperrors.Violation("remove chip", fmt.Sprintf("chip on %s is part of a sequence", sq)))
	}

	b.chips[sq.Row][sq.Col] = NoTeam
	b.numChips--
	delete(b.teamToSquares[team], sq)

	b.verify()
}

// AddChip places a chip for team on sq and records any sequences it completes.
// When at least one new sequence was created it returns the total number of
// sequences team now owns and true.
func (b *Board) AddChip(sq Square, team Team) (int, bool) {
	if !sq.IsPlayable() {
		panic(apperrors.Violation("add chip", fmt.Sprintf("square %s is not playable", sq)))
	}
	if _, ok := b.ChipAt(sq); ok {
		panic(apperrors.Violation("add chip", fmt.Sprintf("square %s already has a chip", sq)))
	}
	if _, ok := b.teamToSquares[team]; !ok {
		panic(apperrors.Violation("add chip", fmt.Sprintf("unknown team %d", team)))
	}

	b.chips[sq.Row][sq.Col] = team
	b.numChips++
	b.teamToSquares[team][sq] = struct{}{}

	created := b.findNewSequences(sq, team)
	b.verify()

	if created == 0 {
		return 0, false
	}
	return b.SequenceCount(team), true
}

func (b *Board) verify() {
	if !b.checkInvariants {
		return
	}
	if err := b.Validate(); err != nil {
		panic(apperrors.Violation("board invariant", err.Error()))
	}
}

func compareSquares(a, b Square) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}
