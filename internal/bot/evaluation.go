package bot

import (
	"math/rand/v2"
	"slices"

	"github.com/palemoky/sequence/internal/game"
	"github.com/palemoky/sequence/internal/game/board"
	"github.com/palemoky/sequence/internal/game/card"
)

// DefaultTwoEyedJackCutoff keeps two-eyed jacks in hand until a square is worth
// roughly ten friendly neighbours.
const DefaultTwoEyedJackCutoff = 100

// Weights for a square seen from a candidate along an open run.
const (
	weightFriendly = 10.0
	weightPlayable = 2.5
	weightOther    = 0.5
	distanceDecay  = 0.05
)

// SquareEvaluation scores every square it could take by the friendly chips and
// reachable squares along its open runs, and takes the best one.
type SquareEvaluation struct {
	rng    *rand.Rand
	cutoff int
}

// NewSquareEvaluation returns a heuristic player. A non-positive cutoff selects
// DefaultTwoEyedJackCutoff.
func NewSquareEvaluation(rng *rand.Rand, cutoff int) game.Player {
	if cutoff <= 0 {
		cutoff = DefaultTwoEyedJackCutoff
	}
	return game.FromSquareChooser(&SquareEvaluation{rng: seededRand(rng), cutoff: cutoff})
}

// ChooseSquare implements game.SquareChooser.
func (s *SquareEvaluation) ChooseSquare(team board.Team, hand card.Hand, b board.View, _ game.DeckView) board.Square {
	if b.IsFull() {
		return s.removable(team, b)
	}

	normal := normallyPlayable(hand, b)
	hasTwoEyed := slices.ContainsFunc(hand, card.Card.IsTwoEyedJack)

	var (
		best      []board.Square
		bestScore = -1
		top       board.Square
		topScore  = -1
	)
	for _, sq := range board.PlayableSquares() {
		_, isNormal := normal[sq]
		if !isNormal && !hasTwoEyed {
			continue
		}
		if _, chipped := b.ChipAt(sq); chipped {
			continue
		}

		score := EvaluateSquare(sq, team, normal, b)
		if score > topScore {
			top, topScore = sq, score
		}
		if !isNormal && score < s.cutoff {
			continue
		}
		switch {
		case score > bestScore:
			best, bestScore = []board.Square{sq}, score
		case score == bestScore:
			best = append(best, sq)
		}
	}

	if len(best) == 0 {
		if hasTwoEyed && topScore >= 0 {
			return top
		}
		return s.removable(team, b)
	}
	for _, sq := range best {
		if _, ok := normal[sq]; ok {
			return sq
		}
	}
	return best[0]
}

// removable picks a random opposing chip that is not protected by a sequence.
func (s *SquareEvaluation) removable(team board.Team, b board.View) board.Square {
	var squares []board.Square
	for _, t := range board.Teams {
		if t == team {
			continue
		}
		for _, sq := range b.TeamSquares(t) {
			if !b.InSequence(sq) {
				squares = append(squares, sq)
			}
		}
	}
	if len(squares) == 0 {
		return board.Square{Row: -1, Col: -1}
	}
	return squares[s.rng.IntN(len(squares))]
}

// EvaluateSquare scores sq for team. Every square on an open run through sq
// adds a weight that decays with distance: friendly chips and corners count
// most, squares reachable with an ordinary card in hand less.
func EvaluateSquare(sq board.Square, team board.Team, normal map[board.Square]struct{}, b board.View) int {
	score := 0
	for _, run := range b.OpenRunsForTeam(sq, team) {
		for _, other := range run {
			var value float64
			switch _, isNormal := normal[other]; {
			case b.CountsFor(other, team):
				value = weightFriendly
			case isNormal:
				value = weightPlayable
			default:
				value = weightOther
			}
			dist, _ := board.LineDistance(sq, other)
			score += int(value / (1 + float64(dist-1)*distanceDecay))
		}
	}
	return score
}

// normallyPlayable collects every square printed with an ordinary card in hand,
// chipped or not.
func normallyPlayable(hand card.Hand, b board.View) map[board.Square]struct{} {
	squares := make(map[board.Square]struct{})
	for _, c := range hand {
		for _, sq := range b.SquaresForCard(c) {
			squares[sq] = struct{}{}
		}
	}
	return squares
}
