package testutil

import (
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// MustBoard builds a board from fen, or the start position when fen is empty.
// It calls t.Fatal if the FEN is rejected.
func MustBoard(t testing.TB, fen string) *engine.Board {
	t.Helper()
	if fen == "" {
		return engine.NewBoard()
	}
	b, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return b
}

// MustPlay plays each coordinate move ("e2e4", "e7e8q") in order and calls
// t.Fatal on the first rejection.
func MustPlay(t testing.TB, b *engine.Board, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if _, err := b.PlayMoveText(m); err != nil {
			t.Fatalf("play %s: %v", m, err)
		}
	}
}

// Squares parses algebraic square names, calling t.Fatal on a bad one.
func Squares(t testing.TB, names ...string) []chess.Square {
	t.Helper()
	out := make([]chess.Square, 0, len(names))
	for _, n := range names {
		sq, err := chess.ParseSquare(n)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", n, err)
		}
		out = append(out, sq)
	}
	return out
}
