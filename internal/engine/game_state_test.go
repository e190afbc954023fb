package engine

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
)

func moveTexts(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func TestCheckmateByPlay(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		mated chess.Colour
	}{
		{"fool's mate", []string{"f2f3", "e7e5", "g2g4", "d8h4"}, chess.White},
		{"scholar's mate", []string{"e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7"}, chess.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			play(t, b, tt.moves...)

			want := Status{Turn: tt.mated, Check: true, Checkmate: true}
			if diff := cmp.Diff(want, b.Status()); diff != "" {
				t.Errorf("Status() mismatch (-want +got):\n%s", diff)
			}
			if !b.IsCheckmate() || !b.IsGameOver() || !b.IsInCheck(tt.mated) {
				t.Error("IsCheckmate/IsGameOver/IsInCheck disagree with Status")
			}
			if rec := b.History()[len(tt.moves)-1]; !rec.Check || !rec.Checkmate {
				t.Errorf("last record = %+v; want check and checkmate", rec)
			}
			if n := len(b.LegalMoveList()); n != 0 {
				t.Errorf("LegalMoveList() has %d moves in checkmate", n)
			}

			// Nothing moves after the game is over.
			p := b.Pieces(tt.mated)[0]
			for _, to := range []chess.Square{chess.Sq(4, 4), chess.Sq(9, 9)} {
				res, err := b.AttemptMove(p, to, chess.NoKind)
				if !errors.Is(err, chesserrors.ErrGameOver) || res.Outcome != RejectedGameOver {
					t.Errorf("AttemptMove after mate = %v, %v; want RejectedGameOver", res.Outcome, err)
				}
			}
		})
	}
}

func TestCheckmatePositions(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		check     bool
		checkmate bool
	}{
		{"back rank mate", "4k3/8/8/8/8/8/5PPP/r5K1 w - - 0 1", true, true},
		{"back rank block", "4k3/8/8/8/3R4/8/5PPP/r5K1 w - - 0 1", true, false},
		{"back rank capture", "4k3/8/8/8/R7/8/5PPP/r5K1 w - - 0 1", true, false},
		{"king escapes", "4k3/8/8/8/8/8/5PP1/r5K1 w - - 0 1", true, false},
		{"knight check captured", "4k3/8/8/8/8/5n2/6PP/5RK1 w - - 0 1", true, false},
		{"smothered mate", "6rk/5Npp/8/8/8/8/8/6K1 b - - 0 1", true, true},
		{"fool's mate position", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w - - 1 3", true, true},
		{"double check escapes", "4r2k/8/8/8/8/3n4/8/4KB2 w - - 0 1", true, false},
		{"double check mate", "4r2k/8/8/8/8/3n4/3P4/3QKB2 w - - 0 1", true, true},
		{"quiet", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", false, false},
		{"en passant relieves check", "8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			st := b.Status()
			if st.Check != tt.check || st.Checkmate != tt.checkmate || st.Stalemate {
				t.Errorf("Status() = %+v; want check=%v checkmate=%v", st, tt.check, tt.checkmate)
			}
			if got := b.IsCheckmate(); got != tt.checkmate {
				t.Errorf("IsCheckmate() = %v; want %v", got, tt.checkmate)
			}
			if got := b.IsInCheck(b.CurrentTurn()); got != tt.check {
				t.Errorf("IsInCheck() = %v; want %v", got, tt.check)
			}
			if tt.checkmate != (len(b.LegalMoveList()) == 0) {
				t.Errorf("LegalMoveList() = %v; checkmate = %v", moveTexts(b.LegalMoveList()), tt.checkmate)
			}
		})
	}
}

func TestCheckConstrainsMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{
			// Only the rook block on d1 or a king move.
			name: "block slider",
			fen:  "4k3/8/8/8/3R4/8/5PPP/r5K1 w - - 0 1",
			want: []string{"d4d1"},
		},
		{
			name: "capture knight",
			fen:  "4k3/8/8/8/8/5n2/6PP/5RK1 w - - 0 1",
			want: []string{"f1f3", "g1f2", "g1h1", "g2f3"},
		},
		{
			// Two checkers: only the king may move.
			name: "double check",
			fen:  "4r2k/8/8/8/8/3n4/8/4KB2 w - - 0 1",
			want: []string{"e1d1", "e1d2"},
		},
		{
			name: "en passant removes checking pawn",
			fen:  "8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1",
			want: []string{"c5b4", "c5b5", "c5b6", "c5c4", "c5c6", "c5d4", "c5d5", "c5d6", "e4d3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			if diff := cmp.Diff(tt.want, moveTexts(b.LegalMoveList())); diff != "" {
				t.Errorf("LegalMoveList() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestThreats(t *testing.T) {
	b := mustFEN(t, "4r2k/8/8/8/8/3n4/8/4KB2 w - - 0 1")
	var got []chess.Square
	for _, p := range b.Threats(chess.White) {
		got = append(got, p.Position)
	}
	if diff := cmp.Diff([]chess.Square{sq(t, "e8"), sq(t, "d3")}, got); diff != "" {
		t.Errorf("Threats(White) mismatch (-want +got):\n%s", diff)
	}
	if got := b.Threats(chess.Black); len(got) != 0 {
		t.Errorf("Threats(Black) = %v; want none", got)
	}
	if k := b.FindKing(chess.Black); k == nil || k.Position != sq(t, "h8") {
		t.Errorf("FindKing(Black) = %+v", k)
	}
}

func TestStalemate(t *testing.T) {
	b := mustFEN(t, "7k/8/6K1/8/8/8/5Q2/8 w - - 0 1")
	if b.IsStalemate() || b.IsGameOver() {
		t.Fatal("stalemate before the move")
	}

	res, err := b.PlayMoveText("f2f7")
	if err != nil {
		t.Fatal(err)
	}
	want := Status{Turn: chess.Black, Stalemate: true}
	if diff := cmp.Diff(want, res.Status); diff != "" {
		t.Errorf("Status mismatch (-want +got):\n%s", diff)
	}
	if !b.IsStalemate() || b.IsCheckmate() || !b.IsGameOver() || !res.Status.GameOver() {
		t.Error("stalemate flags disagree")
	}

	king := b.FindKing(chess.Black)
	if !king.Moves.IsEmpty() {
		t.Errorf("king moves = %v; want none", king.Moves)
	}
	if _, err := b.PlayMoveText("h8g8"); !errors.Is(err, chesserrors.ErrGameOver) {
		t.Errorf("move after stalemate: error = %v; want ErrGameOver", err)
	}
}

func TestStalemateWithPinnedPiece(t *testing.T) {
	// The bishop has geometric moves but every one exposes the king.
	b := mustFEN(t, "k7/b1K5/8/8/8/8/8/R7 b - - 0 1")
	if !b.Status().Stalemate || len(b.LegalMoveList()) != 0 {
		t.Fatalf("Status() = %+v, moves %v", b.Status(), moveTexts(b.LegalMoveList()))
	}
	if bishop := b.PieceAt(sq(t, "a7")); bishop.Moves.IsEmpty() {
		t.Error("pinned bishop should keep its geometric moves cached")
	}
}

// TestRandomGameInvariants plays seeded random games and checks the status
// and turn invariants after every ply.
func TestRandomGameInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	games := 20
	if testing.Short() {
		games = 3
	}

	for g := 0; g < games; g++ {
		b := NewBoard()
		for ply := 0; ply < 200 && !b.IsGameOver(); ply++ {
			moves := b.LegalMoveList()
			if len(moves) == 0 {
				t.Fatalf("game %d ply %d: no moves but not game over: %s", g, ply, b.FEN())
			}
			m := moves[rng.Intn(len(moves))]
			turn := b.CurrentTurn()

			res, err := b.AttemptMove(m.Piece, m.To, m.Promotion)
			if err != nil {
				t.Fatalf("game %d: legal move %v rejected: %v (%s)", g, m, err, b.FEN())
			}
			if b.CurrentTurn() != turn.Opposite() {
				t.Fatalf("game %d: turn did not alternate", g)
			}
			st := res.Status
			if st.Checkmate && !st.Check {
				t.Fatalf("game %d: checkmate without check (%s)", g, b.FEN())
			}
			if st.Stalemate && st.Check {
				t.Fatalf("game %d: stalemate in check (%s)", g, b.FEN())
			}
			if b.IsInCheck(turn) {
				t.Fatalf("game %d: mover left in check (%s)", g, b.FEN())
			}
			if (len(b.LegalMoveList()) == 0) != st.GameOver() {
				t.Fatalf("game %d: game over = %v with %d moves (%s)", g, st.GameOver(), len(b.LegalMoveList()), b.FEN())
			}
		}
	}
}
