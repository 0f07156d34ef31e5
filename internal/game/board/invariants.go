package board

import (
	"errors"
	"fmt"
)

// Validate checks the derived indexes against the primary grid and returns every
// inconsistency found. It is O(board) and intended for tests and debug runs.
func (b *Board) Validate() error {
	var errs []error

	// card index
	indexed := 0
	for c, squares := range b.cardToSquares {
		if c.IsJack() {
			errs = append(errs, fmt.Errorf("jack %s is indexed on the board", c))
		}
		for _, sq := range squares {
			indexed++
			if got, ok := b.CardAt(sq); !ok || got != c {
				errs = append(errs, fmt.Errorf("card index maps %s to %s but the square holds %s", c, sq, got))
			}
		}
	}
	if indexed != NumPlayableSquares {
		errs = append(errs, fmt.Errorf("card index covers %d squares, want %d", indexed, NumPlayableSquares))
	}

	// chip counter and team index
	chipped := 0
	for _, sq := range playableSquares {
		t, ok := b.ChipAt(sq)
		if !ok {
			continue
		}
		chipped++
		if _, inIndex := b.teamToSquares[t][sq]; !inIndex {
			errs = append(errs, fmt.Errorf("chip on %s missing from %s index", sq, t))
		}
	}
	if chipped != b.numChips {
		errs = append(errs, fmt.Errorf("chip counter is %d but %d squares are chipped", b.numChips, chipped))
	}
	for t, squares := range b.teamToSquares {
		for sq := range squares {
			if got, ok := b.ChipAt(sq); !ok || got != t {
				errs = append(errs, fmt.Errorf("%s index lists %s which holds %s", t, sq, got))
			}
		}
	}

	// sequences and the protected set
	referenced := make(map[Square]struct{}, len(b.inSequence))
	for i, s := range b.sequences {
		for _, sq := range s.Squares {
			referenced[sq] = struct{}{}
			if got, ok := b.ChipAt(sq); !ok || got != s.Team {
				errs = append(errs, fmt.Errorf("sequence %d (%s) includes %s which holds %s", i, s.Team, sq, got))
			}
			if !b.InSequence(sq) {
				errs = append(errs, fmt.Errorf("sequence %d square %s is not marked protected", i, sq))
			}
		}
	}
	for sq := range b.inSequence {
		if _, ok := referenced[sq]; !ok {
			errs = append(errs, fmt.Errorf("protected square %s belongs to no sequence", sq))
		}
	}

	return errors.Join(errs...)
}
