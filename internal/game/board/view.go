package board

import "github.com/palemoky/sequence/internal/game/card"

// View is the side-effect-free surface of a Board handed to players and renderers.
type View interface {
	CardAt(sq Square) (card.Card, bool)
	ChipAt(sq Square) (Team, bool)
	NumChips() int
	IsFull() bool
	IsEmpty() bool
	SquaresForCard(c card.Card) []Square
	UnoccupiedSquaresForCard(c card.Card) []Square
	IsDead(c card.Card) bool
	CanBePlayed(c card.Card, team Team) bool
	CountsFor(sq Square, team Team) bool
	InSequence(sq Square) bool
	Sequences() []Sequence
	SequenceCount(team Team) int
	TeamSquares(team Team) []Square
	RunsForTeam(origin Square, team Team) [4][]Square
	OpenRunsForTeam(origin Square, team Team) [4][]Square
}

var _ View = (*Board)(nil)
