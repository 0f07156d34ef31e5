package ui

import (
	"fmt"
	"strings"

	"github.com/palemoky/sequence/internal/game/board"
	"github.com/palemoky/sequence/internal/game/card"
)

type renderOptions struct {
	lastMove    *board.Square
	markedCards map[card.Card]bool
}

// RenderOption tweaks RenderBoard.
type RenderOption func(*renderOptions)

// WithLastMove inverts the square touched by the previous turn.
func WithLastMove(sq board.Square) RenderOption {
	return func(o *renderOptions) { o.lastMove = &sq }
}

// WithMarkedCards highlights the empty squares printed with any of cards.
func WithMarkedCards(cards ...card.Card) RenderOption {
	return func(o *renderOptions) {
		if o.markedCards == nil {
			o.markedCards = make(map[card.Card]bool, len(cards))
		}
		for _, c := range cards {
			o.markedCards[c] = true
		}
	}
}

// RenderBoard draws the grid with column letters and row digits. Chips take
// their team colour and squares locked into a sequence are underlined.
func RenderBoard(b board.View, opts ...RenderOption) string {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for col := range board.Size {
		sb.WriteString(labelStyle.Render(fmt.Sprintf(" %c  ", 'a'+col)))
	}
	sb.WriteString("\n")

	for row := range board.Size {
		sb.WriteString(labelStyle.Render(fmt.Sprintf(" %d ", row)))
		for col := range board.Size {
			sb.WriteString(renderCell(b, board.Square{Row: row, Col: col}, &o))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderCell(b board.View, sq board.Square, o *renderOptions) string {
	if sq.IsCorner() {
		return cornerStyle.Render(CornerIcon + " ")
	}

	c, _ := b.CardAt(sq)
	style := cellStyle
	if team, ok := b.ChipAt(sq); ok {
		style = TeamStyle(team)
		if b.InSequence(sq) {
			style = style.Inherit(sequenceStyle)
		}
	} else if o.markedCards[c] {
		style = style.Inherit(markedStyle)
	}
	if o.lastMove != nil && *o.lastMove == sq {
		style = style.Inherit(lastMoveStyle)
	}
	return style.Render(c.String())
}

// RenderCard colours a card by suit.
func RenderCard(c card.Card) string {
	if c.Suit == card.Hearts || c.Suit == card.Diamonds {
		return redStyle.Render(c.String())
	}
	return blackStyle.Render(c.String())
}

// RenderHand renders a hand left to right.
func RenderHand(hand card.Hand) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = RenderCard(c)
	}
	return strings.Join(parts, " ")
}

// RenderLegend lists the colour of each team in play.
func RenderLegend(numTeams int) string {
	parts := make([]string, 0, numTeams)
	for _, t := range board.Teams[:numTeams] {
		parts = append(parts, TeamStyle(t).Render(t.String()))
	}
	return strings.Join(parts, " ")
}
