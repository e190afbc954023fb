// Package chess provides the core chess types: colours, piece kinds,
// squares and the per-piece movement geometry.
package chess

// Colour is a side: White moves first.
type Colour int

const (
	White Colour = iota
	Black
)

func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the other side.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind is a piece type. The zero value is NoKind.
type Kind int

const (
	NoKind Kind = iota // No piece; also "no promotion choice"
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

func (k Kind) String() string {
	names := []string{"None", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter is the upper-case FEN letter for k, ' ' for NoKind.
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'R', 'N', 'B', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter (either case) to a Kind.
// It returns NoKind for anything else.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// IsPromotionChoice reports whether a pawn may be promoted to k.
func (k Kind) IsPromotionChoice() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

// IsSlider reports whether k moves along rays (and so can be blocked).
func (k Kind) IsSlider() bool {
	return k == Rook || k == Bishop || k == Queen
}

// Board geometry in algebraic terms.
const (
	BoardSize = 8

	FirstFile = 'a'
	LastFile  = FirstFile + BoardSize - 1
	FirstRank = '1'
	LastRank  = FirstRank + BoardSize - 1
)

// HomeRow is the row a colour's pieces start on. Row 0 is rank 8.
func HomeRow(c Colour) int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row index pawns of a colour start on.
func PawnRow(c Colour) int {
	if c == White {
		return BoardSize - 2
	}
	return 1
}

// PromotionRow returns the farthest row for pawns of a colour.
func PromotionRow(c Colour) int {
	return HomeRow(c.Opposite())
}
