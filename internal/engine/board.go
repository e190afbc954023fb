// Package engine provides the chess board, move execution with rollback, and
// check, checkmate and stalemate evaluation.
package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// backRank is the standard file order of the pieces behind the pawns.
var backRank = []chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// Board is the aggregate root of a game: it owns every piece, whose turn it
// is, and the status flags. It is not safe for concurrent use; see the
// session package for a guarded wrapper.
type Board struct {
	squares map[chess.Square]*chess.Piece

	turn     chess.Colour
	selected *chess.Piece

	// Square skipped by the last double pawn step, valid for one reply.
	epTarget chess.Square
	hasEP    bool

	check     bool
	checkmate bool
	stalemate bool

	// Clocks carried for FEN round trips.
	halfmoveClock int
	fullmove      int

	history []MoveRecord
}

func newEmptyBoard() *Board {
	return &Board{
		squares:  make(map[chess.Square]*chess.Piece),
		turn:     chess.White,
		fullmove: 1,
	}
}

// NewBoard creates a board with the standard starting position, White to move.
func NewBoard() *Board {
	b := newEmptyBoard()
	for col, kind := range backRank {
		b.place(kind, chess.Black, chess.Sq(chess.HomeRow(chess.Black), col))
		b.place(chess.Pawn, chess.Black, chess.Sq(chess.PawnRow(chess.Black), col))
		b.place(chess.Pawn, chess.White, chess.Sq(chess.PawnRow(chess.White), col))
		b.place(kind, chess.White, chess.Sq(chess.HomeRow(chess.White), col))
	}
	b.refreshAll(b.turn)
	b.updateStatus()
	return b
}

func (b *Board) place(kind chess.Kind, colour chess.Colour, sq chess.Square) *chess.Piece {
	p := chess.NewPiece(kind, colour, sq)
	b.squares[sq] = p
	return p
}

// PieceAt returns the piece on sq, or nil for an empty or off-board square.
func (b *Board) PieceAt(sq chess.Square) *chess.Piece {
	return b.squares[sq]
}

// Pieces returns every piece of colour c in row-major square order.
func (b *Board) Pieces(c chess.Colour) []*chess.Piece {
	pieces := make([]*chess.Piece, 0, 16)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if p := b.squares[chess.Sq(row, col)]; p != nil && p.Colour == c {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// EnPassantTarget returns the square skipped by the last double pawn step.
func (b *Board) EnPassantTarget() (chess.Square, bool) {
	return b.epTarget, b.hasEP
}

func (b *Board) setEnPassant(sq chess.Square) {
	b.epTarget, b.hasEP = sq, true
}

func (b *Board) clearEnPassant() {
	b.epTarget, b.hasEP = chess.Square{}, false
}

// LegalMoves returns the cached legal destinations of p. It is empty for a
// piece that is not on this board.
func (b *Board) LegalMoves(p *chess.Piece) []chess.Square {
	if !b.owns(p) {
		return nil
	}
	return p.LegalMoves()
}

// CurrentTurn returns the colour to move.
func (b *Board) CurrentTurn() chess.Colour {
	return b.turn
}

// Ply returns the number of committed moves.
func (b *Board) Ply() int {
	return len(b.history)
}

// History returns a copy of the committed moves, oldest first.
func (b *Board) History() []MoveRecord {
	out := make([]MoveRecord, len(b.history))
	copy(out, b.history)
	return out
}

// owns reports whether p is the live handle on its square.
func (b *Board) owns(p *chess.Piece) bool {
	return p != nil && b.squares[p.Position] == p
}

// Select picks up the piece on sq as the UI cursor. Rule logic never reads
// the selection.
func (b *Board) Select(sq chess.Square) (*chess.Piece, error) {
	if !chess.InBounds(sq) {
		return nil, &errors.MoveError{Err: errors.ErrOutOfBounds, From: sq.String()}
	}
	p := b.squares[sq]
	if p == nil {
		return nil, &errors.MoveError{Err: errors.ErrPieceNotOnBoard, From: sq.String()}
	}
	if p.Colour != b.turn {
		return nil, &errors.MoveError{Err: errors.ErrNotMoversTurn, Piece: p.String(), From: sq.String()}
	}
	b.selected = p
	return p, nil
}

// Selected returns the currently selected piece, or nil.
func (b *Board) Selected() *chess.Piece {
	return b.selected
}

// ClearSelection drops the UI cursor.
func (b *Board) ClearSelection() {
	b.selected = nil
}

// Clone returns a deep copy of the board. Piece handles of the copy are new
// values; look them up again with PieceAt.
func (b *Board) Clone() *Board {
	nb := &Board{
		squares:       make(map[chess.Square]*chess.Piece, len(b.squares)),
		turn:          b.turn,
		epTarget:      b.epTarget,
		hasEP:         b.hasEP,
		check:         b.check,
		checkmate:     b.checkmate,
		stalemate:     b.stalemate,
		halfmoveClock: b.halfmoveClock,
		fullmove:      b.fullmove,
		history:       append([]MoveRecord(nil), b.history...),
	}
	for sq, p := range b.squares {
		cp := *p
		nb.squares[sq] = &cp
		if p == b.selected {
			nb.selected = &cp
		}
	}
	return nb
}
