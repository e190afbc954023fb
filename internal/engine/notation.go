package engine

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// ParseMoveText parses coordinate move text: origin and destination squares
// followed by an optional promotion letter, e.g. "e2e4" or "e7e8q".
func ParseMoveText(text string) (from, to chess.Square, promotion chess.Kind, err error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if len(s) != 4 && len(s) != 5 {
		err = &errors.ParseError{Err: errors.ErrInvalidMoveText, Input: text, Expected: "4 or 5 characters", Got: s}
		return
	}
	if from, err = chess.ParseSquare(s[0:2]); err != nil {
		err = &errors.ParseError{Err: errors.ErrInvalidMoveText, Input: text, Field: "origin", Expected: "square", Got: s[0:2]}
		return
	}
	if to, err = chess.ParseSquare(s[2:4]); err != nil {
		err = &errors.ParseError{Err: errors.ErrInvalidMoveText, Input: text, Field: "destination", Expected: "square", Got: s[2:4]}
		return
	}
	if len(s) == 5 {
		promotion = chess.KindFromLetter(s[4])
		if !promotion.IsPromotionChoice() {
			err = &errors.ParseError{Err: errors.ErrInvalidMoveText, Input: text, Field: "promotion", Expected: "q, r, b or n", Got: s[4:]}
			return
		}
	}
	return from, to, promotion, nil
}

// PlayMoveText parses text and attempts the move of whatever stands on the
// origin square.
func (b *Board) PlayMoveText(text string) (MoveResult, error) {
	from, to, promotion, err := ParseMoveText(text)
	if err != nil {
		return MoveResult{Outcome: RejectedInvalidInput, Status: b.Status()}, err
	}
	return b.AttemptMove(b.PieceAt(from), to, promotion)
}
