package engine

import (
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// Outcome is how a move request was resolved.
type Outcome int

const (
	Committed Outcome = iota
	RejectedOutOfBounds
	RejectedIllegalForPiece
	RejectedSelfCheck
	RejectedNotMoversTurn
	RejectedPieceNotOnBoard
	RejectedGameOver
	RejectedInvalidInput
)

var outcomeNames = []string{
	"committed",
	"rejected: out of bounds",
	"rejected: illegal for piece",
	"rejected: leaves king in check",
	"rejected: not mover's turn",
	"rejected: piece not on board",
	"rejected: game over",
	"rejected: invalid input",
}

func (o Outcome) String() string {
	if o >= 0 && int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Rejected reports whether o is any of the rejection outcomes.
func (o Outcome) Rejected() bool {
	return o != Committed
}

// MoveResult is returned by AttemptMove. Status is the board status after
// the request; Record is only set for a committed move.
type MoveResult struct {
	Outcome Outcome
	Status  Status
	Record  MoveRecord
}

// OutcomeOf maps an error returned by AttemptMove or ParseMoveText to its
// Outcome. A nil error is Committed.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Committed
	case errors.Is(err, errors.ErrOutOfBounds):
		return RejectedOutOfBounds
	case errors.Is(err, errors.ErrLeavesKingInCheck):
		return RejectedSelfCheck
	case errors.Is(err, errors.ErrNotMoversTurn):
		return RejectedNotMoversTurn
	case errors.Is(err, errors.ErrPieceNotOnBoard):
		return RejectedPieceNotOnBoard
	case errors.Is(err, errors.ErrGameOver):
		return RejectedGameOver
	case errors.Is(err, errors.ErrInvalidMoveText), errors.Is(err, errors.ErrInvalidSquare):
		return RejectedInvalidInput
	}
	return RejectedIllegalForPiece
}
