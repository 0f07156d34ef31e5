package bot

import (
	"math/rand/v2"

	"github.com/palemoky/sequence/internal/game"
	"github.com/palemoky/sequence/internal/game/board"
	"github.com/palemoky/sequence/internal/game/card"
)

// Deterministic always plays the first legal move: the lowest hand index,
// then the first square in row-major order.
type Deterministic struct{}

func (Deterministic) Play(team board.Team, hand card.Hand, b board.View, _ game.DeckView) (int, board.Square) {
	moves := game.LegalMoves(team, hand, b)
	if len(moves) == 0 {
		return -1, board.Square{}
	}
	return moves[0].Index, moves[0].Square
}

// Random picks uniformly among all legal moves.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random player drawing from rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: seededRand(rng)}
}

func (r *Random) Play(team board.Team, hand card.Hand, b board.View, _ game.DeckView) (int, board.Square) {
	moves := game.LegalMoves(team, hand, b)
	if len(moves) == 0 {
		return -1, board.Square{}
	}
	m := moves[r.rng.IntN(len(moves))]
	return m.Index, m.Square
}
