package board

// Runs walks each of the four axes through origin, forward then backward, up to
// maxDistance steps per sense. A sense ends at the board edge or at the first
// square for which stop returns true. The result is indexed like directions.
func Runs(origin Square, maxDistance int, stop func(Square) bool) [4][]Square {
	var runs [4][]Square
	for i, d := range directions {
		var run []Square
		for _, sign := range [2]int{1, -1} {
			for dist := 1; dist <= maxDistance; dist++ {
				sq := origin.Plus(sign*d[0]*dist, sign*d[1]*dist)
				if !sq.IsValid() || stop(sq) {
					break
				}
				run = append(run, sq)
			}
		}
		runs[i] = run
	}
	return runs
}

// RunsForTeam returns, per axis, the contiguous squares around origin chipped by team.
func (b *Board) RunsForTeam(origin Square, team Team) [4][]Square {
	return Runs(origin, SequenceLength, func(sq Square) bool {
		t, ok := b.ChipAt(sq)
		return !ok || t != team
	})
}

// OpenRunsForTeam returns, per axis, the squares around origin not blocked by an
// opposing chip.
func (b *Board) OpenRunsForTeam(origin Square, team Team) [4][]Square {
	return Runs(origin, SequenceLength, func(sq Square) bool {
		t, ok := b.ChipAt(sq)
		return ok && t != team
	})
}

// LineDistance returns the step count between two squares sharing an axis.
// ok is false when they do not share a row, column or diagonal.
func LineDistance(a, b Square) (dist int, ok bool) {
	rowDiff := abs(a.Row - b.Row)
	colDiff := abs(a.Col - b.Col)
	if rowDiff == 0 || colDiff == 0 || rowDiff == colDiff {
		return max(rowDiff, colDiff), true
	}
	return 0, false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
