package engine

import (
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// MoveRecord describes one committed move.
type MoveRecord struct {
	Ply       int
	Colour    chess.Colour
	Kind      chess.Kind
	From      chess.Square
	To        chess.Square
	Captured  chess.Kind
	EnPassant bool
	Promotion chess.Kind
	Check     bool
	Checkmate bool
}

// String returns coordinate notation, e.g. "e2e4" or "e7e8q".
func (r MoveRecord) String() string {
	return moveText(r.From, r.To, r.Promotion)
}

func moveText(from, to chess.Square, promotion chess.Kind) string {
	var sb strings.Builder
	sb.WriteString(from.String())
	sb.WriteString(to.String())
	if promotion != chess.NoKind {
		sb.WriteByte(promotion.Letter() + 'a' - 'A')
	}
	return sb.String()
}
