package output

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// JSONBoard is a snapshot of a board in JSON format.
type JSONBoard struct {
	FEN        string     `json:"fen"`
	Turn       string     `json:"turn"` // "white" or "black"
	Check      bool       `json:"check"`
	Checkmate  bool       `json:"checkmate"`
	Stalemate  bool       `json:"stalemate"`
	EnPassant  string     `json:"enPassant,omitempty"`
	Selected   string     `json:"selected,omitempty"`
	LegalMoves []string   `json:"legalMoves,omitempty"`
	History    []JSONMove `json:"history,omitempty"`
}

// JSONMove represents a committed move in JSON format.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Color     string `json:"color"` // "white" or "black"
	UCI       string `json:"uci"`
	Piece     string `json:"piece"`
	From      string `json:"from"`
	To        string `json:"to"`
	Captured  string `json:"captured,omitempty"`
	EnPassant bool   `json:"enPassant,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Check     bool   `json:"check,omitempty"`
	Checkmate bool   `json:"checkmate,omitempty"`
}

// JSONPerft is the result of a perft run in JSON format.
type JSONPerft struct {
	FEN    string           `json:"fen"`
	Depth  int              `json:"depth"`
	Nodes  int64            `json:"nodes"`
	Divide map[string]int64 `json:"divide,omitempty"`
}

// BoardToJSON converts a board to its JSON snapshot. Legal moves and history
// are included as cfg.Output asks.
func BoardToJSON(b *engine.Board, cfg *config.Config) *JSONBoard {
	st := b.Status()
	jb := &JSONBoard{
		FEN:       b.FEN(),
		Turn:      colourName(st.Turn),
		Check:     st.Check,
		Checkmate: st.Checkmate,
		Stalemate: st.Stalemate,
	}
	if ep, ok := b.EnPassantTarget(); ok {
		jb.EnPassant = ep.String()
	}
	if p := b.Selected(); p != nil {
		jb.Selected = p.Position.String()
	}

	if cfg.Output.ShowLegalMoves {
		jb.LegalMoves = legalMoveTexts(b)
	}
	if cfg.Output.ShowHistory {
		for _, rec := range b.History() {
			jb.History = append(jb.History, recordToJSON(rec))
		}
	}
	return jb
}

func recordToJSON(rec engine.MoveRecord) JSONMove {
	jm := JSONMove{
		Ply:       rec.Ply,
		Color:     colourName(rec.Colour),
		UCI:       rec.String(),
		Piece:     kindName(rec.Kind),
		From:      rec.From.String(),
		To:        rec.To.String(),
		EnPassant: rec.EnPassant,
		Check:     rec.Check,
		Checkmate: rec.Checkmate,
	}
	if rec.Captured != chess.NoKind {
		jm.Captured = kindName(rec.Captured)
	}
	if rec.Promotion != chess.NoKind {
		jm.Promotion = kindName(rec.Promotion)
	}
	return jm
}

// OutputBoardJSON writes the JSON snapshot of b to cfg.OutputFile.
func OutputBoardJSON(b *engine.Board, cfg *config.Config) error {
	return encode(cfg.OutputFile, BoardToJSON(b, cfg))
}

// OutputPerftJSON writes a perft result to cfg.OutputFile.
func OutputPerftJSON(p *JSONPerft, cfg *config.Config) error {
	return encode(cfg.OutputFile, p)
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// legalMoveTexts returns the side to move's legal moves, sorted.
func legalMoveTexts(b *engine.Board) []string {
	moves := b.LegalMoveList()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

func kindName(k chess.Kind) string {
	switch k {
	case chess.Pawn:
		return "pawn"
	case chess.Rook:
		return "rook"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	}
	return ""
}
