package board

import "fmt"

// Square is a grid coordinate. Values outside [0, Size) are representable so that
// offset arithmetic can step off the board; IsValid rejects them.
type Square struct {
	Row int
	Col int
}

// String renders the column as a letter and the row as a digit, e.g. "c4" for row 4, col 2.
func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+rune(s.Col), s.Row)
}

// ParseSquare is the inverse of String.
func ParseSquare(notation string) (Square, error) {
	if len(notation) != 2 {
		return Square{}, fmt.Errorf("invalid square notation: %q", notation)
	}
	sq := Square{Row: int(notation[1] - '0'), Col: int(notation[0] - 'a')}
	if !sq.IsValid() {
		return Square{}, fmt.Errorf("square %q is off the board", notation)
	}
	return sq, nil
}

// MustParseSquare is ParseSquare for literals known to be valid.
func MustParseSquare(notation string) Square {
	sq, err := ParseSquare(notation)
	if err != nil {
		panic(err)
	}
	return sq
}

func (s Square) IsValid() bool {
	return s.Row >= 0 && s.Row < Size && s.Col >= 0 && s.Col < Size
}

// IsCorner reports whether s is one of the four wild corners.
func (s Square) IsCorner() bool {
	return (s.Row == 0 || s.Row == Size-1) && (s.Col == 0 || s.Col == Size-1)
}

// IsPlayable reports whether a chip may ever sit on s.
func (s Square) IsPlayable() bool {
	return s.IsValid() && !s.IsCorner()
}

// Plus offsets s by the given deltas without bounds checking.
func (s Square) Plus(rowDelta, colDelta int) Square {
	return Square{Row: s.Row + rowDelta, Col: s.Col + colDelta}
}

var playableSquares = func() []Square {
	squares := make([]Square, 0, NumPlayableSquares)
	for row := range Size {
		for col := range Size {
			sq := Square{Row: row, Col: col}
			if !sq.IsCorner() {
				squares = append(squares, sq)
			}
		}
	}
	return squares
}()

// PlayableSquares returns every non-corner square in row-major order.
func PlayableSquares() []Square {
	out := make([]Square, len(playableSquares))
	copy(out, playableSquares)
	return out
}
