package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// promotionOrder lists the promotion choices, default first.
var promotionOrder = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// moveDiff records exactly what a simulated move changed so it can be undone.
type moveDiff struct {
	piece    *chess.Piece
	from, to chess.Square

	// captured is the piece removed by the move, if any. For an en-passant
	// capture capturedAt differs from to.
	captured   *chess.Piece
	capturedAt chess.Square
}

// apply moves p to `to` on the square map and returns the diff. Cached move
// sets and flags are left alone.
func (b *Board) apply(p *chess.Piece, to chess.Square) moveDiff {
	d := moveDiff{piece: p, from: p.Position, to: to}
	if victim := p.EnPassantVictim(b, to); victim != nil {
		d.captured, d.capturedAt = victim, victim.Position
	} else if occupant := b.squares[to]; occupant != nil {
		d.captured, d.capturedAt = occupant, to
	}

	if d.captured != nil {
		delete(b.squares, d.capturedAt)
	}
	delete(b.squares, d.from)
	b.squares[to] = p
	p.Position = to
	return d
}

// undo applies the inverse of d.
func (b *Board) undo(d moveDiff) {
	delete(b.squares, d.to)
	d.piece.Position = d.from
	b.squares[d.from] = d.piece
	if d.captured != nil {
		b.squares[d.capturedAt] = d.captured
	}
}

// simulate plays p to `to` tentatively and recomputes the mover's colour.
func (b *Board) simulate(p *chess.Piece, to chess.Square) moveDiff {
	d := b.apply(p, to)
	b.refreshColour(p.Colour)
	return d
}

// revert undoes a simulated move and recomputes the mover's colour.
func (b *Board) revert(d moveDiff) {
	b.undo(d)
	b.refreshColour(d.piece.Colour)
}

// AttemptMove tries to move p to `to`. promotion is the piece a pawn
// reaching the far rank becomes; NoKind or any non-promotable kind means
// Queen.
//
// A rejected move leaves the board exactly as it was and returns a
// *errors.MoveError wrapping the cause together with the matching Outcome.
func (b *Board) AttemptMove(p *chess.Piece, to chess.Square, promotion chess.Kind) (MoveResult, error) {
	if err := b.validate(p, to); err != nil {
		return MoveResult{Outcome: OutcomeOf(err), Status: b.Status()}, err
	}

	d := b.simulate(p, to)
	if b.IsInCheck(p.Colour) {
		b.revert(d)
		err := b.moveError(errors.ErrLeavesKingInCheck, p, d.from, to)
		return MoveResult{Outcome: RejectedSelfCheck, Status: b.Status()}, err
	}

	rec := b.commit(d, promotion)
	return MoveResult{Outcome: Committed, Status: b.Status(), Record: rec}, nil
}

// validate runs the checks that need no mutation.
func (b *Board) validate(p *chess.Piece, to chess.Square) error {
	if !b.owns(p) {
		if p == nil {
			return b.moveError(errors.ErrPieceNotOnBoard, nil, chess.Square{}, to)
		}
		return b.moveError(errors.ErrPieceNotOnBoard, p, p.Position, to)
	}
	if b.IsGameOver() {
		return b.moveError(errors.ErrGameOver, p, p.Position, to)
	}
	if p.Colour != b.turn {
		return b.moveError(errors.ErrNotMoversTurn, p, p.Position, to)
	}
	if !chess.InBounds(to) {
		return b.moveError(errors.ErrOutOfBounds, p, p.Position, to)
	}
	if !p.Moves.Has(to) {
		return b.moveError(errors.ErrIllegalForPiece, p, p.Position, to)
	}
	return nil
}

// commit finalises a simulated move that left the king safe.
func (b *Board) commit(d moveDiff, promotion chess.Kind) MoveRecord {
	p := d.piece
	rec := MoveRecord{
		Ply:    len(b.history) + 1,
		Colour: p.Colour,
		Kind:   p.Kind,
		From:   d.from,
		To:     d.to,
	}
	if d.captured != nil {
		rec.Captured = d.captured.Kind
		rec.EnPassant = d.capturedAt != d.to
	}

	moved := p
	if p.Kind == chess.Pawn && d.to.Row == chess.PromotionRow(p.Colour) {
		if !promotion.IsPromotionChoice() {
			promotion = chess.Queen
		}
		moved = chess.NewPiece(promotion, p.Colour, d.to)
		b.squares[d.to] = moved
		rec.Promotion = promotion
	}
	moved.HasMoved = true
	if b.selected == p {
		b.selected = nil
	}

	if p.Kind == chess.Pawn && abs(d.to.Row-d.from.Row) == 2 {
		b.setEnPassant(chess.Sq((d.from.Row+d.to.Row)/2, d.from.Col))
	} else {
		b.clearEnPassant()
	}

	if p.Kind == chess.Pawn || d.captured != nil {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if p.Colour == chess.Black {
		b.fullmove++
	}

	b.turn = b.turn.Opposite()
	b.refreshAll(b.turn)
	b.updateStatus()

	rec.Check = b.check
	rec.Checkmate = b.checkmate
	b.history = append(b.history, rec)
	return rec
}

// moveError builds the context error for a rejected move of p.
func (b *Board) moveError(sentinel error, p *chess.Piece, from, to chess.Square) error {
	e := &errors.MoveError{Err: sentinel, Ply: len(b.history) + 1, To: to.String()}
	if p != nil {
		e.Piece = p.String()
		e.From = from.String()
	}
	return e
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
