// Package bot provides computer players for the turn engine.
package bot

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/palemoky/sequence/internal/apperrors"
	"github.com/palemoky/sequence/internal/game"
)

// Kind names a player strategy.
type Kind string

const (
	KindDeterministic Kind = "deterministic"
	KindRandom        Kind = "random"
	KindHeuristic     Kind = "heuristic"
)

// Kinds lists every strategy New accepts.
var Kinds = []Kind{KindDeterministic, KindRandom, KindHeuristic}

// Options tunes the strategies that take parameters.
type Options struct {
	// TwoEyedJackCutoff is the score a square must reach before the heuristic
	// player spends a two-eyed jack on it.
	TwoEyedJackCutoff int
}

// ParseKind resolves a strategy name, case-insensitively.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownStrategy, name)
}

// New builds a player of the given kind. rng may be nil for strategies that
// draw randomness, in which case a randomly seeded source is used.
func New(kind Kind, rng *rand.Rand, opts Options) (game.Player, error) {
	switch kind {
	case KindDeterministic:
		return Deterministic{}, nil
	case KindRandom:
		return NewRandom(rng), nil
	case KindHeuristic:
		return NewSquareEvaluation(rng, opts.TwoEyedJackCutoff), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownStrategy, kind)
	}
}

func seededRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
