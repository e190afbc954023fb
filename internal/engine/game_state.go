package engine

import "github.com/lgbarn/chess-engine-go/internal/chess"

// Status is the board's status flags for the side to move.
type Status struct {
	Turn      chess.Colour
	Check     bool
	Checkmate bool
	Stalemate bool
}

// GameOver reports whether the status is terminal.
func (s Status) GameOver() bool {
	return s.Checkmate || s.Stalemate
}

// Status returns the flags as of the last committed move.
func (b *Board) Status() Status {
	return Status{Turn: b.turn, Check: b.check, Checkmate: b.checkmate, Stalemate: b.stalemate}
}

// IsGameOver returns true after checkmate or stalemate.
func (b *Board) IsGameOver() bool {
	return b.checkmate || b.stalemate
}

// IsCheckmate reports whether the side to move is checkmated.
//
// The king must be in check and have no move of its own. Then every checker
// is tried in turn: if any allied piece can capture it, or interpose on a
// sliding checker's line, without exposing the king, it is not mate. With
// two checkers no single capture or block satisfies both, which the trial
// move detects.
func (b *Board) IsCheckmate() bool {
	colour := b.turn
	threats := b.Threats(colour)
	if len(threats) == 0 {
		return false
	}
	if king := b.FindKing(colour); !king.Moves.IsEmpty() {
		return false
	}

	for _, t := range threats {
		targets := reliefSquares([]*chess.Piece{t}, b.FindKing(colour))
		if ep, ok := b.enPassantRelief([]*chess.Piece{t}); ok {
			targets = targets.Add(ep)
		}
		for _, ally := range b.Pieces(colour) {
			if ally.Kind == chess.King {
				continue
			}
			for _, to := range ally.Moves.Intersect(targets).Squares() {
				if b.leavesKingSafe(ally, to) {
					return false
				}
			}
		}
	}
	return true
}

// IsStalemate reports whether the side to move is not in check but has no
// legal move.
func (b *Board) IsStalemate() bool {
	return !b.IsInCheck(b.turn) && !b.hasLegalMove(b.turn)
}

// updateStatus recomputes check, checkmate and stalemate for the side to move.
func (b *Board) updateStatus() {
	b.check = b.IsInCheck(b.turn)
	b.checkmate = b.check && b.IsCheckmate()
	b.stalemate = !b.check && !b.hasLegalMove(b.turn)
}
