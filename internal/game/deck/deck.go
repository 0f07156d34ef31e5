// Package deck holds the draw and discard piles of a double 52-card deck.
package deck

import (
	"math/rand/v2"

	"github.com/palemoky/sequence/internal/game/card"
)

// Copies is the number of standard decks shuffled together.
const Copies = 2

// Deck is a shuffled draw pile plus a single shared discard pile.
type Deck struct {
	drawPile    []card.Card
	discardPile []card.Card
	rng         *rand.Rand
}

// New returns a shuffled deck holding two interleaved standard decks. A nil rng
// gets a randomly seeded source; pass a seeded one for reproducible games.
func New(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	drawPile := make([]card.Card, 0, Copies*52)
	for range Copies {
		drawPile = append(drawPile, card.StandardDeck()...)
	}
	d := &Deck{drawPile: drawPile, rng: rng}
	d.shuffle()
	return d
}

// Draw pops the top card, first shuffling the discard pile into the draw pile
// when the draw pile is exhausted. It panics only if every card is held in hands.
func (d *Deck) Draw() card.Card {
	if len(d.drawPile) == 0 {
		d.drawPile = append(d.drawPile, d.discardPile...)
		d.discardPile = d.discardPile[:0]
		d.shuffle()
	}
	if len(d.drawPile) == 0 {
		panic("deck: draw from empty deck")
	}
	c := d.drawPile[len(d.drawPile)-1]
	d.drawPile = d.drawPile[:len(d.drawPile)-1]
	return c
}

// Discard places c on the discard pile.
func (d *Deck) Discard(c card.Card) {
	d.discardPile = append(d.discardPile, c)
}

func (d *Deck) DrawPileSize() int {
	return len(d.drawPile)
}

// DiscardPile returns the discarded cards, oldest first.
func (d *Deck) DiscardPile() []card.Card {
	out := make([]card.Card, len(d.discardPile))
	copy(out, d.discardPile)
	return out
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.drawPile), func(i, j int) {
		d.drawPile[i], d.drawPile[j] = d.drawPile[j], d.drawPile[i]
	})
}
