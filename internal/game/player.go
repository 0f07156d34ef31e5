package game

import (
	"github.com/palemoky/sequence/internal/game/board"
	"github.com/palemoky/sequence/internal/game/card"
)

// DeckView exposes the public state of the deck to players.
type DeckView interface {
	DrawPileSize() int
	DiscardPile() []card.Card
}

// Player decides moves for one seat.
//
// Play receives a copy of the player's hand and read-only views of the board and
// deck, and returns the index of the card to play together with the target
// square. The engine panics with a contract violation if the move is illegal.
type Player interface {
	Play(team board.Team, hand card.Hand, b board.View, d DeckView) (int, board.Square)
}

// DeadCardChooser is implemented by players that pick which dead card to swap
// at the start of their turn. Players that do not implement it swap the first
// dead card in their hand.
type DeadCardChooser interface {
	ReplaceDeadCard(hand card.Hand, b board.View) (int, bool)
}

// FirstDeadCard returns the index of the first dead card in hand.
func FirstDeadCard(hand card.Hand, b board.View) (int, bool) {
	i := hand.IndexFunc(b.IsDead)
	return i, i >= 0
}

// SquareChooser picks only a target square. The card to play is derived from
// the square by FromSquareChooser.
type SquareChooser interface {
	ChooseSquare(team board.Team, hand card.Hand, b board.View, d DeckView) board.Square
}

// FromSquareChooser adapts a SquareChooser to the Player interface. A chipped
// square is played with a one-eyed jack, an empty one with a matching card if
// held and with a two-eyed jack otherwise.
func FromSquareChooser(sc SquareChooser) Player {
	return squarePlayer{chooser: sc}
}

type squarePlayer struct {
	chooser SquareChooser
}

func (p squarePlayer) Play(team board.Team, hand card.Hand, b board.View, d DeckView) (int, board.Square) {
	sq := p.chooser.ChooseSquare(team, hand, b, d)
	return CardForSquare(hand, b, sq), sq
}

func (p squarePlayer) ReplaceDeadCard(hand card.Hand, b board.View) (int, bool) {
	if dc, ok := p.chooser.(DeadCardChooser); ok {
		return dc.ReplaceDeadCard(hand, b)
	}
	return FirstDeadCard(hand, b)
}

// CardForSquare returns the index of the card in hand that targets sq, or -1
// when no card does.
func CardForSquare(hand card.Hand, b board.View, sq board.Square) int {
	if _, chipped := b.ChipAt(sq); chipped {
		return hand.IndexFunc(card.Card.IsOneEyedJack)
	}
	if c, ok := b.CardAt(sq); ok {
		if i := hand.IndexFunc(func(h card.Card) bool { return h == c }); i >= 0 {
			return i
		}
	}
	return hand.IndexFunc(card.Card.IsTwoEyedJack)
}
