package game

import (
	"github.com/palemoky/sequence/internal/game/board"
	"github.com/palemoky/sequence/internal/game/card"
)

// Move is a card index paired with the square it targets.
type Move struct {
	Index  int
	Square board.Square
}

// LegalMoves lists every move team may make with hand, ordered by hand index
// and then by square in row-major order.
func LegalMoves(team board.Team, hand card.Hand, b board.View) []Move {
	var moves []Move
	for i, c := range hand {
		for _, sq := range Targets(team, c, b) {
			moves = append(moves, Move{Index: i, Square: sq})
		}
	}
	return moves
}

// Targets returns the squares team may target with c.
func Targets(team board.Team, c card.Card, b board.View) []board.Square {
	switch {
	case c.IsOneEyedJack():
		var squares []board.Square
		for _, sq := range board.PlayableSquares() {
			if owner, ok := b.ChipAt(sq); ok && owner != team && !b.InSequence(sq) {
				squares = append(squares, sq)
			}
		}
		return squares
	case c.IsTwoEyedJack():
		var squares []board.Square
		for _, sq := range board.PlayableSquares() {
			if _, ok := b.ChipAt(sq); !ok {
				squares = append(squares, sq)
			}
		}
		return squares
	default:
		return b.UnoccupiedSquaresForCard(c)
	}
}
