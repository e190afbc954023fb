package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// FindKing returns the king of the given colour, or nil if there is none.
func (b *Board) FindKing(colour chess.Colour) *chess.Piece {
	for _, p := range b.Pieces(colour) {
		if p.Kind == chess.King {
			return p
		}
	}
	return nil
}

// Threats returns every opposing piece that attacks the king of colour.
func (b *Board) Threats(colour chess.Colour) []*chess.Piece {
	king := b.FindKing(colour)
	if king == nil {
		return nil
	}
	return chess.Attackers(b, king.Position, colour.Opposite())
}

// IsInCheck returns true if the given colour's king is attacked.
func (b *Board) IsInCheck(colour chess.Colour) bool {
	king := b.FindKing(colour)
	if king == nil {
		return false
	}
	return chess.Attacked(b, king.Position, colour.Opposite())
}

// reliefSquares returns the squares a non-King piece may move to while its
// king is attacked by threats: each attacker's square, plus the line between
// a sliding attacker and the king.
func reliefSquares(threats []*chess.Piece, king *chess.Piece) chess.SquareSet {
	var allowed chess.SquareSet
	for _, t := range threats {
		allowed = allowed.Add(t.Position)
		if t.Kind.IsSlider() {
			allowed = allowed.Union(chess.SetOf(chess.PositionsBetween(t.Position, king.Position)...))
		}
	}
	return allowed
}

// enPassantRelief returns the en-passant target if capturing onto it would
// remove one of threats.
func (b *Board) enPassantRelief(threats []*chess.Piece) (chess.Square, bool) {
	ep, ok := b.EnPassantTarget()
	if !ok {
		return chess.Square{}, false
	}
	for _, t := range threats {
		if t.Kind == chess.Pawn && t.Position == ep.Offset(t.Direction(), 0) {
			return ep, true
		}
	}
	return chess.Square{}, false
}
