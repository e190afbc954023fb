package chess

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Square is a (row, col) board coordinate. Row 0 is Black's back rank
// (rank 8) and col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{row, col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// InBounds reports whether both coordinates are in [0,8).
func InBounds(sq Square) bool {
	return sq.Row >= 0 && sq.Row < BoardSize && sq.Col >= 0 && sq.Col < BoardSize
}

// Offset returns the square dr rows and dc cols away. The result may be off the board.
func (sq Square) Offset(dr, dc int) Square {
	return Square{Row: sq.Row + dr, Col: sq.Col + dc}
}

// String returns algebraic notation ("e4") for on-board squares and the raw
// pair for anything else.
func (sq Square) String() string {
	if !InBounds(sq) {
		return fmt.Sprintf("(%d,%d)", sq.Row, sq.Col)
	}
	return string([]byte{byte(FirstFile + sq.Col), byte(LastRank - sq.Row)})
}

// ParseSquare converts algebraic notation ("e4") to a Square.
func ParseSquare(s string) (Square, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Expected: "file and rank", Got: s}
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < FirstFile || file > LastFile {
		return Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Field: "file", Expected: "a-h", Got: string(file)}
	}
	if rank < FirstRank || rank > LastRank {
		return Square{}, &errors.ParseError{Err: errors.ErrInvalidSquare, Input: s, Field: "rank", Expected: "1-8", Got: string(rank)}
	}
	return Square{Row: int(LastRank - rank), Col: int(file - FirstFile)}, nil
}

// PositionsBetween returns the squares strictly between start and end, in
// order from start toward end. start and end must share a rank, file or
// diagonal; nil is returned for equal or non-aligned squares.
func PositionsBetween(start, end Square) []Square {
	dr := end.Row - start.Row
	dc := end.Col - start.Col
	if dr == 0 && dc == 0 {
		return nil
	}
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return nil
	}

	rowStep, colStep := sign(dr), sign(dc)
	var positions []Square
	for cur := start.Offset(rowStep, colStep); cur != end; cur = cur.Offset(rowStep, colStep) {
		positions = append(positions, cur)
	}
	return positions
}

// Aligned reports whether a and b are distinct squares on a shared rank, file or diagonal.
func Aligned(a, b Square) bool {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	if dr == 0 && dc == 0 {
		return false
	}
	return dr == 0 || dc == 0 || abs(dr) == abs(dc)
}

// SquareSet is a set of on-board squares, one bit per square.
type SquareSet uint64

func squareBit(sq Square) SquareSet {
	return SquareSet(1) << uint(sq.Row*BoardSize+sq.Col)
}

// SetOf builds a set from the given squares, ignoring off-board ones.
func SetOf(squares ...Square) SquareSet {
	var s SquareSet
	for _, sq := range squares {
		s = s.Add(sq)
	}
	return s
}

// Add returns s with sq included. Off-board squares are ignored.
func (s SquareSet) Add(sq Square) SquareSet {
	if !InBounds(sq) {
		return s
	}
	return s | squareBit(sq)
}

// Has reports whether sq is in the set.
func (s SquareSet) Has(sq Square) bool {
	return InBounds(sq) && s&squareBit(sq) != 0
}

// Union returns the squares in either set.
func (s SquareSet) Union(o SquareSet) SquareSet {
	return s | o
}

// Intersect returns the squares in both sets.
func (s SquareSet) Intersect(o SquareSet) SquareSet {
	return s & o
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty reports whether the set has no squares.
func (s SquareSet) IsEmpty() bool {
	return s == 0
}

// Squares returns the members in row-major order.
func (s SquareSet) Squares() []Square {
	out := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		i := bits.TrailingZeros64(rest)
		out = append(out, Square{Row: i / BoardSize, Col: i % BoardSize})
	}
	return out
}

// String lists the members in algebraic notation.
func (s SquareSet) String() string {
	squares := s.Squares()
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return "{" + strings.Join(names, " ") + "}"
}
