package engine

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position. Castling
// is not supported, so the castling field is always "-".
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// NewBoardFromFEN creates a board from a FEN string.
//
// Only the placement field is required; the rest default to "w - - 0 1".
// The castling field is accepted and ignored. Positions without exactly one
// king per colour, with pawns on a back rank, or with the side not to move
// in check are rejected.
func NewBoardFromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 || len(parts) > 6 {
		return nil, fenError(fen, "", "6 fields", strconv.Itoa(len(parts)))
	}

	b := newEmptyBoard()
	if err := parsePlacement(b, fen, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(b, fen, parts); err != nil {
		return nil, err
	}
	if err := parseCastling(fen, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(b, fen, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(b, fen, parts); err != nil {
		return nil, err
	}
	if err := checkPosition(b, fen); err != nil {
		return nil, err
	}

	b.refreshAll(b.turn)
	b.updateStatus()
	return b, nil
}

func fenError(fen, field, expected, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Field: field, Expected: expected, Got: got}
}

// parsePlacement parses the piece placement field, rank 8 first.
func parsePlacement(b *Board, fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fen, "placement", "8 ranks", strconv.Itoa(len(ranks)))
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			if c > unicode.MaxASCII {
				return fenError(fen, "placement", "piece letter", string(c))
			}
			kind := chess.KindFromLetter(byte(c))
			if kind == chess.NoKind {
				return fenError(fen, "placement", "piece letter", string(c))
			}
			if col >= chess.BoardSize {
				return fenError(fen, "placement", "8 squares in rank "+string(rune(chess.LastRank-row)), rank)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			p := b.place(kind, colour, chess.Sq(row, col))
			if kind == chess.Pawn {
				p.HasMoved = row != chess.PawnRow(colour)
			}
			col++
		}
		if col != chess.BoardSize {
			return fenError(fen, "placement", "8 squares in rank "+string(rune(chess.LastRank-row)), rank)
		}
	}
	return nil
}

func parseSideToMove(b *Board, fen string, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		b.turn = chess.White
	case "b":
		b.turn = chess.Black
	default:
		return fenError(fen, "side to move", "w or b", parts[1])
	}
	return nil
}

// parseCastling validates the castling field. Rights are not tracked.
func parseCastling(fen string, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}
	for _, c := range parts[2] {
		if !strings.ContainsRune("KQkq", c) {
			return fenError(fen, "castling", "KQkq or -", parts[2])
		}
	}
	return nil
}

// parseEnPassant parses the en-passant target. The target must sit behind
// a pawn of the side that just moved.
func parseEnPassant(b *Board, fen string, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fenError(fen, "en passant", "square or -", parts[3])
	}

	mover := b.turn.Opposite()
	dir := chess.NewPiece(chess.Pawn, mover, sq).Direction()
	if sq.Row != chess.PawnRow(mover)+dir {
		return fenError(fen, "en passant", "square on the "+mover.String()+" skip rank", parts[3])
	}
	pawn := b.PieceAt(sq.Offset(dir, 0))
	if pawn == nil || pawn.Kind != chess.Pawn || pawn.Colour != mover || b.PieceAt(sq) != nil {
		return fenError(fen, "en passant", "double-stepped "+mover.String()+" pawn", parts[3])
	}
	b.setEnPassant(sq)
	return nil
}

func parseClocks(b *Board, fen string, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fenError(fen, "halfmove clock", "non-negative integer", parts[4])
		}
		b.halfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fenError(fen, "fullmove number", "positive integer", parts[5])
		}
		b.fullmove = n
	}
	return nil
}

// checkPosition rejects positions the rules can never reach.
func checkPosition(b *Board, fen string) error {
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		kings := 0
		for _, p := range b.Pieces(c) {
			switch {
			case p.Kind == chess.King:
				kings++
			case p.Kind == chess.Pawn && (p.Position.Row == 0 || p.Position.Row == chess.BoardSize-1):
				return fenError(fen, "placement", "no pawns on a back rank", p.Position.String())
			}
		}
		if kings != 1 {
			return fenError(fen, "placement", "one "+c.String()+" king", strconv.Itoa(kings))
		}
	}
	if b.IsInCheck(b.turn.Opposite()) {
		return fenError(fen, "side to move", b.turn.Opposite().String()+" not in check", b.turn.String())
	}
	return nil
}

// FEN returns the position as a FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			p := b.squares[chess.Sq(row, col)]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	if b.turn == chess.White {
		sb.WriteString(" w -")
	} else {
		sb.WriteString(" b -")
	}

	if ep, ok := b.EnPassantTarget(); ok {
		sb.WriteString(" " + ep.String())
	} else {
		sb.WriteString(" -")
	}

	sb.WriteString(" " + strconv.Itoa(b.halfmoveClock))
	sb.WriteString(" " + strconv.Itoa(b.fullmove))
	return sb.String()
}
