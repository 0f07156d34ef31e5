package board

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/sequence/internal/apperrors"
	"github.com/palemoky/sequence/internal/game/card"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	return New(WithInvariantChecks())
}

// place adds chips for team, expecting none of them to complete a sequence.
func place(t *testing.T, b *Board, team Team, notations ...string) {
	t.Helper()
	for _, n := range notations {
		count, created := b.AddChip(MustParseSquare(n), team)
		require.False(t, created, "unexpected sequence at %s (count %d)", n, count)
	}
}

func assertSequences(t *testing.T, b *Board, expected ...[]string) {
	t.Helper()
	actual := make([][]string, 0, len(b.Sequences()))
	for _, s := range b.Sequences() {
		squares := make([]string, 0, len(s.Squares))
		for _, sq := range s.Squares {
			squares = append(squares, sq.String())
		}
		actual = append(actual, squares)
	}
	want := make([][]string, 0, len(expected))
	for _, e := range expected {
		sorted := make([]Square, 0, len(e))
		for _, n := range e {
			sorted = append(sorted, MustParseSquare(n))
		}
		squares := make([]string, 0, len(e))
		for _, sq := range sortSquares(sorted) {
			squares = append(squares, sq.String())
		}
		want = append(want, squares)
	}
	assert.Equal(t, want, actual)
}

func sortSquares(squares []Square) []Square {
	for i := 1; i < len(squares); i++ {
		for j := i; j > 0 && compareSquares(squares[j-1], squares[j]) > 0; j-- {
			squares[j-1], squares[j] = squares[j], squares[j-1]
		}
	}
	return squares
}

func TestStandardLayout(t *testing.T) {
	t.Parallel()

	b := New()
	counts := make(map[card.Card]int)
	for _, sq := range PlayableSquares() {
		c, ok := b.CardAt(sq)
		require.True(t, ok, sq.String())
		counts[c]++
	}

	for _, c := range card.StandardDeck() {
		if c.IsJack() {
			assert.Zero(t, counts[c], "jack %s should not be printed", c)
			assert.Empty(t, b.SquaresForCard(c))
			continue
		}
		assert.Equal(t, 2, counts[c], "card count was unexpected for %s", c)
		assert.Len(t, b.SquaresForCard(c), 2)
	}

	for _, corner := range []string{"a0", "j0", "a9", "j9"} {
		_, ok := b.CardAt(MustParseSquare(corner))
		assert.False(t, ok, corner)
	}
	assert.NoError(t, b.Validate())
}

func TestSquare(t *testing.T) {
	t.Parallel()

	sq := MustParseSquare("a0")
	assert.Equal(t, Square{Row: 0, Col: 0}, sq)
	assert.Equal(t, "a0", sq.String())

	sq = MustParseSquare("e4")
	assert.Equal(t, Square{Row: 4, Col: 4}, sq)
	assert.Equal(t, "e4", sq.String())

	assert.Equal(t, Square{Row: 2, Col: 7}, MustParseSquare("h2"))
	assert.True(t, MustParseSquare("j9").IsCorner())
	assert.False(t, MustParseSquare("j9").IsPlayable())
	assert.True(t, MustParseSquare("b0").IsPlayable())
	assert.False(t, Square{Row: -1, Col: 3}.IsValid())
	assert.False(t, Square{Row: 3, Col: Size}.IsValid())
	assert.Equal(t, Square{Row: 5, Col: 3}, Square{Row: 4, Col: 4}.Plus(1, -1))
	assert.Len(t, PlayableSquares(), NumPlayableSquares)

	_, err := ParseSquare("k1")
	assert.Error(t, err)
	_, err = ParseSquare("a10")
	assert.Error(t, err)
}

func TestCreateSequenceInOrder(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamOne, "c4", "c5", "c6", "c7")
	count, created := b.AddChip(MustParseSquare("c8"), TeamOne)
	assert.True(t, created)
	assert.Equal(t, 1, count)
	assertSequences(t, b, []string{"c4", "c5", "c6", "c7", "c8"})
}

func TestCreateVerticalSequenceWithMiddleLast(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamOne, "h1", "h2", "h4", "h5")
	count, created := b.AddChip(MustParseSquare("h3"), TeamOne)
	assert.True(t, created)
	assert.Equal(t, 1, count)
	assertSequences(t, b, []string{"h1", "h2", "h3", "h4", "h5"})
}

func TestCreateRowSequence(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamTwo, "d6", "e6", "g6", "h6")
	count, created := b.AddChip(MustParseSquare("f6"), TeamTwo)
	assert.True(t, created)
	assert.Equal(t, 1, count)
	assertSequences(t, b, []string{"d6", "e6", "f6", "g6", "h6"})
	assert.Equal(t, 0, b.SequenceCount(TeamOne))
	assert.Equal(t, 1, b.SequenceCount(TeamTwo))
}

func TestCreateDiagonalSequenceUsingCorner(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamOne, "i8", "h7", "f5")
	count, created := b.AddChip(MustParseSquare("g6"), TeamOne)
	assert.True(t, created)
	assert.Equal(t, 1, count)
	assertSequences(t, b, []string{"i8", "h7", "f5", "g6"})
	assert.False(t, b.InSequence(MustParseSquare("j9")))
}

func TestCreateAntiDiagonalSequence(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamThree, "f2", "e3", "c5", "b6")
	count, created := b.AddChip(MustParseSquare("d4"), TeamThree)
	assert.True(t, created)
	assert.Equal(t, 1, count)
	assertSequences(t, b, []string{"f2", "e3", "d4", "c5", "b6"})
}

func TestSequenceIndependentOfPlacementOrder(t *testing.T) {
	t.Parallel()

	run := []string{"b2", "c3", "d4", "e5", "f6"}
	for last := range run {
		b := newTestBoard(t)
		for i, n := range run {
			if i != last {
				place(t, b, TeamOne, n)
			}
		}
		count, created := b.AddChip(MustParseSquare(run[last]), TeamOne)
		assert.True(t, created, "last=%s", run[last])
		assert.Equal(t, 1, count)
		assertSequences(t, b, run)
	}
}

func TestRunBlockedByOpposingChip(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamOne, "c4")
	place(t, b, TeamTwo, "c5")
	place(t, b, TeamOne, "c6", "c7", "c8", "c3", "c2", "c1")
	assertSequences(t, b)
}

func TestCreateTwoSequencesWithoutOverlap(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamOne, "c4", "c5", "c6", "c7")
	count, created := b.AddChip(MustParseSquare("c8"), TeamOne)
	require.True(t, created)
	assert.Equal(t, 1, count)

	place(t, b, TeamOne, "h1", "h2", "h4", "h5")
	count, created = b.AddChip(MustParseSquare("h3"), TeamOne)
	require.True(t, created)
	assert.Equal(t, 2, count)

	assertSequences(t, b,
		[]string{"c4", "c5", "c6", "c7", "c8"},
		[]string{"h1", "h2", "h3", "h4", "h5"},
	)
}

func TestCreateTwoSequencesWithOverlapInDifferentDirection(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamOne, "c4", "c5", "c6", "c7")
	_, created := b.AddChip(MustParseSquare("c8"), TeamOne)
	require.True(t, created)

	place(t, b, TeamOne, "a5", "b5", "d5")
	count, created := b.AddChip(MustParseSquare("e5"), TeamOne)
	require.True(t, created)
	assert.Equal(t, 2, count)

	assertSequences(t, b,
		[]string{"c4", "c5", "c6", "c7", "c8"},
		[]string{"a5", "b5", "c5", "d5", "e5"},
	)
}

func TestCreateTwoCrossingSequencesWithOneChip(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamOne, "a5", "b5", "d5", "e5")
	place(t, b, TeamOne, "c3", "c4", "c6", "c7")
	count, created := b.AddChip(MustParseSquare("c5"), TeamOne)
	require.True(t, created)
	assert.Equal(t, 2, count)

	assertSequences(t, b,
		[]string{"a5", "b5", "c5", "d5", "e5"},
		[]string{"c3", "c4", "c5", "c6", "c7"},
	)
}

func TestCreateTwoSequencesWithSingleOverlapInSameDirection(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamOne, "c0", "c1", "c2", "c3")
	_, created := b.AddChip(MustParseSquare("c4"), TeamOne)
	require.True(t, created)

	place(t, b, TeamOne, "c5", "c6", "c7")
	count, created := b.AddChip(MustParseSquare("c8"), TeamOne)
	require.True(t, created)
	assert.Equal(t, 2, count)

	assertSequences(t, b,
		[]string{"c0", "c1", "c2", "c3", "c4"},
		[]string{"c4", "c5", "c6", "c7", "c8"},
	)
}

func TestSequenceWithMoreThanFiveSquaresIsRecordedWhole(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamOne, "b0", "c0", "d0", "f0", "g0")
	count, created := b.AddChip(MustParseSquare("e0"), TeamOne)
	require.True(t, created)
	assert.Equal(t, 1, count)
	assertSequences(t, b, []string{"b0", "c0", "d0", "e0", "f0", "g0"})
}

func TestSixInARowWithoutCornerIsOneSequence(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamTwo, "b4", "c4", "d4", "f4", "g4")
	count, created := b.AddChip(MustParseSquare("e4"), TeamTwo)
	require.True(t, created)
	assert.Equal(t, 1, count)
	assertSequences(t, b, []string{"b4", "c4", "d4", "e4", "f4", "g4"})
}

func TestAddingChipAtEndOfSequenceDoesNotLengthenIt(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamOne, "b0", "c0", "d0")
	_, created := b.AddChip(MustParseSquare("e0"), TeamOne)
	require.True(t, created)
	assertSequences(t, b, []string{"b0", "c0", "d0", "e0"})

	place(t, b, TeamOne, "f0")
	assertSequences(t, b, []string{"b0", "c0", "d0", "e0"})
}

func TestExtendingCompleteSequenceAtEitherEnd(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamOne, "c4", "c5", "c6", "c7")
	_, created := b.AddChip(MustParseSquare("c8"), TeamOne)
	require.True(t, created)

	place(t, b, TeamOne, "c3", "c9")
	assert.Len(t, b.Sequences(), 1)
	assert.Equal(t, 1, b.SequenceCount(TeamOne))
}

func TestChipInSequenceCannotBeRemoved(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamOne, "c4", "c5", "c6", "c7")
	_, created := b.AddChip(MustParseSquare("c8"), TeamOne)
	require.True(t, created)

	for _, n := range []string{"c4", "c5", "c6", "c7", "c8"} {
		sq := MustParseSquare(n)
		assert.True(t, b.InSequence(sq))
		assert.Panics(t, func() { b.RemoveChip(sq) }, n)
	}

	// still protected after unrelated play
	place(t, b, TeamTwo, "d5")
	b.RemoveChip(MustParseSquare("d5"))
	assert.Panics(t, func() { b.RemoveChip(MustParseSquare("c6")) })
	assert.Equal(t, 5, b.NumChips())
}

func TestAddChipContract(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	assert.PanicsWithValue(t,
		apperrors.Violation("add chip", "square a0 is not playable"),
		func() { b.AddChip(MustParseSquare("a0"), TeamOne) })
	assert.Panics(t, func() { b.AddChip(Square{Row: 10, Col: 3}, TeamOne) })

	place(t, b, TeamOne, "e5")
	assert.Panics(t, func() { b.AddChip(MustParseSquare("e5"), TeamTwo) })
	assert.Panics(t, func() { b.AddChip(MustParseSquare("e6"), NoTeam) })
}

func TestRemoveChipContract(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	assert.Panics(t, func() { b.RemoveChip(MustParseSquare("j0")) })
	assert.Panics(t, func() { b.RemoveChip(MustParseSquare("e5")) })

	place(t, b, TeamTwo, "e5")
	b.RemoveChip(MustParseSquare("e5"))
	_, ok := b.ChipAt(MustParseSquare("e5"))
	assert.False(t, ok)
	assert.True(t, b.IsEmpty())
	assert.Empty(t, b.TeamSquares(TeamTwo))
}

func TestCountsFor(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamOne, "b1")
	for _, team := range Teams {
		assert.True(t, b.CountsFor(MustParseSquare("a0"), team))
		assert.True(t, b.CountsFor(MustParseSquare("j9"), team))
	}
	assert.True(t, b.CountsFor(MustParseSquare("b1"), TeamOne))
	assert.False(t, b.CountsFor(MustParseSquare("b1"), TeamTwo))
	assert.False(t, b.CountsFor(MustParseSquare("b2"), TeamOne))
}

func TestDeadCardsAndPlayability(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	sixClubs := card.MustParse("6C")
	oneEyed := card.MustParse("JS")
	twoEyed := card.MustParse("JD")

	assert.False(t, b.IsDead(sixClubs))
	assert.True(t, b.CanBePlayed(sixClubs, TeamOne))
	assert.False(t, b.CanBePlayed(oneEyed, TeamOne), "nothing to remove on an empty board")
	assert.True(t, b.CanBePlayed(twoEyed, TeamOne))
	assert.False(t, b.IsDead(oneEyed))

	squares := b.SquaresForCard(sixClubs)
	require.Len(t, squares, 2)
	place(t, b, TeamOne, squares[0].String())
	assert.False(t, b.IsDead(sixClubs))
	assert.Equal(t, []Square{squares[1]}, b.UnoccupiedSquaresForCard(sixClubs))

	place(t, b, TeamTwo, squares[1].String())
	assert.True(t, b.IsDead(sixClubs))
	assert.False(t, b.CanBePlayed(sixClubs, TeamOne))
	assert.True(t, b.CanBePlayed(oneEyed, TeamOne))
}

func TestFullBoard(t *testing.T) {
	t.Parallel()

	b := New()
	for i, sq := range PlayableSquares() {
		team := Teams[i%2]
		b.AddChip(sq, team)
	}
	assert.True(t, b.IsFull())
	assert.False(t, b.IsEmpty())
	assert.Equal(t, NumPlayableSquares, b.NumChips())
	assert.False(t, b.CanBePlayed(card.MustParse("JC"), TeamOne))
	assert.True(t, b.CanBePlayed(card.MustParse("JH"), TeamOne))
	for _, c := range card.StandardDeck() {
		if !c.IsJack() {
			assert.True(t, b.IsDead(c), c.String())
		}
	}
	assert.NoError(t, b.Validate())
}

func TestIndexesStayConsistentUnderRandomPlay(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 11))
	b := newTestBoard(t)
	squares := PlayableSquares()

	for range 2000 {
		sq := squares[rng.IntN(len(squares))]
		if _, chipped := b.ChipAt(sq); chipped {
			if !b.InSequence(sq) {
				b.RemoveChip(sq)
			}
		} else {
			b.AddChip(sq, Teams[rng.IntN(len(Teams))])
		}

		enumerated := 0
		for _, p := range squares {
			if _, ok := b.ChipAt(p); ok {
				enumerated++
			}
		}
		require.Equal(t, enumerated, b.NumChips())
		require.Equal(t, enumerated == 0, b.IsEmpty())
		require.Equal(t, enumerated == NumPlayableSquares, b.IsFull())

		total := 0
		for _, team := range Teams {
			total += len(b.TeamSquares(team))
		}
		require.Equal(t, enumerated, total)
	}
	require.NoError(t, b.Validate())
}

func TestSequencesReturnsCopy(t *testing.T) {
	t.Parallel()

	b := newTestBoard(t)
	place(t, b, TeamOne, "c4", "c5", "c6", "c7")
	b.AddChip(MustParseSquare("c8"), TeamOne)

	seqs := b.Sequences()
	seqs[0].Squares[0] = MustParseSquare("j5")
	assert.True(t, b.InSequence(MustParseSquare("c4")))
	assert.True(t, b.Sequences()[0].Contains(MustParseSquare("c4")))
	assert.NoError(t, b.Validate())
}
