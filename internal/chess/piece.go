package chess

import "unicode"

// Piece is one physical chess piece. The board owns pieces and hands out
// *Piece values as handles; Position, HasMoved and Moves are maintained by
// the board and should be treated as read-only by everyone else.
type Piece struct {
	Kind     Kind
	Colour   Colour
	Position Square
	HasMoved bool

	// Moves is the cached legal move set as of the last recompute for this
	// piece's colour. It is stale while a move is being simulated.
	Moves SquareSet
}

// NewPiece creates an unmoved piece.
func NewPiece(kind Kind, colour Colour, position Square) *Piece {
	return &Piece{Kind: kind, Colour: colour, Position: position}
}

// Direction returns the row delta of a pawn step for this piece's colour:
// +1 for Black (toward row 7), -1 for White (toward row 0).
func (p *Piece) Direction() int {
	if p.Colour == Black {
		return 1
	}
	return -1
}

// String returns e.g. "White Knight".
func (p *Piece) String() string {
	if p == nil {
		return "<nil>"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p *Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		return byte(unicode.ToLower(rune(l)))
	}
	return l
}

// LegalMoves returns the cached legal destinations in row-major order.
func (p *Piece) LegalMoves() []Square {
	return p.Moves.Squares()
}
