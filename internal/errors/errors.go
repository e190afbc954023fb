// Package errors holds the move rejection sentinels and the structured
// errors that carry a move or parse location alongside them.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Move rejections. The board is untouched after any of them.
var (
	// ErrOutOfBounds indicates a destination outside the 8x8 board.
	ErrOutOfBounds = errors.New("destination out of bounds")

	// ErrIllegalForPiece indicates a destination not in the piece's legal move set.
	ErrIllegalForPiece = errors.New("move not allowed for piece")

	// ErrLeavesKingInCheck indicates a move that would leave the mover's king attacked.
	ErrLeavesKingInCheck = errors.New("move leaves own king in check")

	// ErrNotMoversTurn indicates a piece of the colour not on move.
	ErrNotMoversTurn = errors.New("not this colour's turn")

	// ErrPieceNotOnBoard indicates a nil piece handle or one that was captured or promoted.
	ErrPieceNotOnBoard = errors.New("piece is not on the board")

	// ErrGameOver indicates a move attempted after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")
)

// Input and setup failures.
var (
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates malformed square notation.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMoveText indicates malformed coordinate move text.
	ErrInvalidMoveText = errors.New("invalid move text")

	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownGame indicates a session lookup for a game id that does not exist.
	ErrUnknownGame = errors.New("unknown game")

	// ErrTooManyGames indicates a session manager at its configured capacity.
	ErrTooManyGames = errors.New("session limit reached")
)

// MoveError ties a rejection sentinel to the move that triggered it.
type MoveError struct {
	Err   error
	Ply   int    // 1-based; 0 when unknown
	Piece string // e.g. "White Knight"
	From  string
	To    string // raw coordinates when the destination is off the board
}

func (e *MoveError) Error() string {
	var where []string
	if e.Ply > 0 {
		where = append(where, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Piece != "" {
		where = append(where, e.Piece)
	}
	if e.From != "" || e.To != "" {
		where = append(where, e.From+"-"+e.To)
	}
	return describe(strings.Join(where, ", "), e.Err, "move error")
}

func (e *MoveError) Unwrap() error { return e.Err }

// ParseError reports which part of a FEN, square or move text was rejected.
type ParseError struct {
	Err      error
	Input    string
	Field    string // e.g. "side to move"
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	var where []string
	if e.Field != "" {
		where = append(where, e.Field)
	}
	switch {
	case e.Expected != "" && e.Got != "":
		where = append(where, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	case e.Expected != "":
		where = append(where, "expected "+e.Expected)
	case e.Got != "":
		where = append(where, fmt.Sprintf("unexpected %q", e.Got))
	}
	return describe(strings.Join(where, ": "), e.Err, "parse error")
}

func (e *ParseError) Unwrap() error { return e.Err }

// describe joins a context prefix and a cause, falling back to fallback
// when both are empty.
func describe(context string, cause error, fallback string) string {
	switch {
	case cause != nil && context != "":
		return context + ": " + cause.Error()
	case cause != nil:
		return cause.Error()
	case context != "":
		return context
	}
	return fallback
}

// Wrap prefixes err with context, keeping it visible to Is and As.
// A nil err stays nil.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf is Wrap with a formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is and As forward to the standard library so callers need one import.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target interface{}) bool { return errors.As(err, target) }
