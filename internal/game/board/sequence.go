package board

import "slices"

// directions covers the four axes; each is scanned forward then backward.
// The order is fixed: when one chip could complete runs in two directions that
// both want the same existing joint square, the earlier direction claims it.
var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 1},  // down-right diagonal
	{1, 0},  // vertical
	{1, -1}, // down-left diagonal
}

// findNewSequences scans every axis through source and records each run of at
// least SequenceLength squares counting for team. It returns how many were recorded.
//
// A run may pass through at most one square already protected by an earlier
// sequence; a second protected square ends the scan in that sense. A run longer
// than SequenceLength is recorded whole.
func (b *Board) findNewSequences(source Square, team Team) int {
	created := 0

	for _, d := range directions {
		usedExisting := false
		length := 1
		squares := []Square{source}

		extend := func(sq Square) bool {
			if !sq.IsValid() || !b.CountsFor(sq, team) {
				return false
			}
			if b.InSequence(sq) {
				if usedExisting {
					return false
				}
				usedExisting = true
			}
			length++
			if !sq.IsCorner() {
				squares = append(squares, sq)
			}
			return true
		}

		for dist := 1; dist < SequenceLength; dist++ {
			if !extend(source.Plus(d[0]*dist, d[1]*dist)) {
				break
			}
		}
		for dist := 1; dist < SequenceLength; dist++ {
			if !extend(source.Plus(-d[0]*dist, -d[1]*dist)) {
				break
			}
		}

		if length >= SequenceLength {
			b.recordSequence(team, squares)
			created++
		}
	}

	return created
}

func (b *Board) recordSequence(team Team, squares []Square) {
	slices.SortFunc(squares, compareSquares)
	b.sequences = append(b.sequences, Sequence{Team: team, Squares: squares})
	for _, sq := range squares {
		b.inSequence[sq] = struct{}{}
	}
}
