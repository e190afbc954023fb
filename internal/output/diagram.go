// Package output renders boards for the command line: a text diagram with
// optional ANSI colours, or a JSON snapshot.
package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

const rankSeparator = "   +---+---+---+---+---+---+---+---+\n"

// palette holds the colours of one diagram. Every entry is disabled when
// colours are off so the same code path writes plain text.
type palette struct {
	white    *color.Color
	black    *color.Color
	inCheck  *color.Color
	selected *color.Color
	status   *color.Color
	label    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		white:    color.New(color.FgHiWhite, color.Bold),
		black:    color.New(color.FgHiBlue, color.Bold),
		inCheck:  color.New(color.FgHiWhite, color.BgRed, color.Bold),
		selected: color.New(color.FgBlack, color.BgYellow),
		status:   color.New(color.FgYellow, color.Bold),
		label:    color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.white, p.black, p.inCheck, p.selected, p.status, p.label} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Diagram draws b with rank 8 at the top. A king in check and the selected
// piece are highlighted when colours are enabled.
func Diagram(b *engine.Board, colour bool) string {
	pal := newPalette(colour)
	st := b.Status()
	var checked *chess.Piece
	if st.Check {
		checked = b.FindKing(st.Turn)
	}
	selected := b.Selected()

	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		sb.WriteString(rankSeparator)
		sb.WriteString(pal.label.Sprintf(" %d", chess.BoardSize-row))
		sb.WriteString(" |")
		for col := 0; col < chess.BoardSize; col++ {
			p := b.PieceAt(chess.Sq(row, col))
			cell := " "
			if p != nil {
				cell = string(p.Letter())
			}
			switch {
			case p == nil:
			case p == checked:
				cell = pal.inCheck.Sprint(cell)
			case p == selected:
				cell = pal.selected.Sprint(cell)
			case p.Colour == chess.White:
				cell = pal.white.Sprint(cell)
			default:
				cell = pal.black.Sprint(cell)
			}
			fmt.Fprintf(&sb, " %s |", cell)
		}
		sb.WriteString("\n")
	}
	sb.WriteString(rankSeparator)
	sb.WriteString("   ")
	for col := 0; col < chess.BoardSize; col++ {
		sb.WriteString(pal.label.Sprintf("  %c ", chess.FirstFile+col))
	}
	sb.WriteString("\n")
	return sb.String()
}

// StatusLine describes whose turn it is and whether the game is over.
func StatusLine(st engine.Status) string {
	switch {
	case st.Checkmate:
		return fmt.Sprintf("Checkmate: %s wins", st.Turn.Opposite())
	case st.Stalemate:
		return "Stalemate"
	case st.Check:
		return fmt.Sprintf("%s to move, in check", st.Turn)
	}
	return fmt.Sprintf("%s to move", st.Turn)
}

// OutputBoard writes the diagram, status line, FEN and, as cfg.Output asks,
// the legal moves and the move history to cfg.OutputFile.
func OutputBoard(b *engine.Board, cfg *config.Config) error {
	pal := newPalette(cfg.Output.Colour)
	w := cfg.OutputFile

	var sb strings.Builder
	sb.WriteString(Diagram(b, cfg.Output.Colour))
	sb.WriteString(pal.status.Sprint(StatusLine(b.Status())))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "FEN: %s\n", b.FEN())

	if cfg.Output.ShowHistory {
		if hist := b.History(); len(hist) > 0 {
			texts := make([]string, len(hist))
			for i, rec := range hist {
				texts[i] = rec.String()
			}
			fmt.Fprintf(&sb, "Moves: %s\n", strings.Join(texts, " "))
		}
	}
	if cfg.Output.ShowLegalMoves && !b.IsGameOver() {
		moves := legalMoveTexts(b)
		fmt.Fprintf(&sb, "Legal moves (%d): %s\n", len(moves), strings.Join(moves, " "))
	}

	_, err := fmt.Fprint(w, sb.String())
	return err
}

// OutputPerft writes a perft result as text.
func OutputPerft(p *JSONPerft, cfg *config.Config) error {
	var sb strings.Builder
	for _, m := range sortedKeys(p.Divide) {
		fmt.Fprintf(&sb, "%s: %d\n", m, p.Divide[m])
	}
	fmt.Fprintf(&sb, "perft(%d) = %d\n", p.Depth, p.Nodes)
	_, err := fmt.Fprint(cfg.OutputFile, sb.String())
	return err
}
