package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Move is a fully legal move of the side to move.
type Move struct {
	Piece     *chess.Piece
	From      chess.Square
	To        chess.Square
	Promotion chess.Kind
}

// String returns coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	return moveText(m.From, m.To, m.Promotion)
}

// refreshAll recomputes the cached move sets of both colours, first then
// its opponent.
func (b *Board) refreshAll(first chess.Colour) {
	b.refreshColour(first)
	b.refreshColour(first.Opposite())
}

// refreshColour recomputes the cached move sets of every piece of colour.
// While that colour is in check, non-King pieces are limited to capturing a
// checker or blocking a sliding checker.
func (b *Board) refreshColour(colour chess.Colour) {
	threats := b.Threats(colour)
	var allowed chess.SquareSet
	var ep chess.Square
	var epRelief bool
	if len(threats) > 0 {
		allowed = reliefSquares(threats, b.FindKing(colour))
		ep, epRelief = b.enPassantRelief(threats)
	}

	for _, p := range b.Pieces(colour) {
		moves := p.RawMoves(b)
		if len(threats) > 0 && p.Kind != chess.King {
			restricted := moves.Intersect(allowed)
			if epRelief && p.Kind == chess.Pawn && moves.Has(ep) {
				restricted = restricted.Add(ep)
			}
			moves = restricted
		}
		p.Moves = moves
	}
}

// LegalMoveList returns every fully legal move of the side to move:
// cached destinations that do not leave the king attacked. Promotions are
// expanded into one move per promotion piece.
func (b *Board) LegalMoveList() []Move {
	var moves []Move
	for _, p := range b.Pieces(b.turn) {
		for _, to := range p.Moves.Squares() {
			if !b.leavesKingSafe(p, to) {
				continue
			}
			if p.Kind == chess.Pawn && to.Row == chess.PromotionRow(p.Colour) {
				for _, k := range promotionOrder {
					moves = append(moves, Move{Piece: p, From: p.Position, To: to, Promotion: k})
				}
				continue
			}
			moves = append(moves, Move{Piece: p, From: p.Position, To: to})
		}
	}
	return moves
}

// hasLegalMove reports whether colour has at least one fully legal move.
func (b *Board) hasLegalMove(colour chess.Colour) bool {
	for _, p := range b.Pieces(colour) {
		for _, to := range p.Moves.Squares() {
			if b.leavesKingSafe(p, to) {
				return true
			}
		}
	}
	return false
}

// leavesKingSafe plays p to `to` on the board, tests whether p's king is
// attacked, and undoes the move. Cached move sets are not touched.
func (b *Board) leavesKingSafe(p *chess.Piece, to chess.Square) bool {
	d := b.apply(p, to)
	safe := !b.IsInCheck(p.Colour)
	b.undo(d)
	return safe
}
