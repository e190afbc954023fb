// Package session serialises access to boards so several callers can share
// games safely.
package session

import (
	"sync"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// Game wraps an engine.Board with mutex protection. Every read and every
// command on the board goes through the Game.
type Game struct {
	id    string
	cfg   *config.Config
	mu    sync.Mutex
	board *engine.Board
}

// NewGame creates a game starting from cfg.Game's start position.
func NewGame(id string, cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	b, err := cfg.Game.NewBoard()
	if err != nil {
		return nil, err
	}
	return &Game{id: id, cfg: cfg, board: b}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Move attempts to move whatever stands on from. A NoKind promotion uses
// the configured default.
func (g *Game) Move(from, to chess.Square, promotion chess.Kind) (engine.MoveResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if promotion == chess.NoKind {
		promotion = g.cfg.Game.DefaultPromotion
	}
	res, err := g.board.AttemptMove(g.board.PieceAt(from), to, promotion)
	g.logResult(res, err)
	return res, err
}

// MoveText parses coordinate move text such as "e2e4" and plays it.
func (g *Game) MoveText(text string) (engine.MoveResult, error) {
	from, to, promotion, err := engine.ParseMoveText(text)
	if err != nil {
		g.cfg.Logf(config.Verbose, "game %s: %v", g.id, err)
		return engine.MoveResult{Outcome: engine.RejectedInvalidInput, Status: g.Status()}, err
	}
	return g.Move(from, to, promotion)
}

// Select places the selection cursor on the piece at sq and returns a copy
// of that piece; later moves do not change it.
func (g *Game) Select(sq chess.Square) (chess.Piece, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.board.Select(sq)
	if err != nil {
		return chess.Piece{}, err
	}
	return *p, nil
}

// LegalMoves returns the cached legal destinations of the piece at sq.
func (g *Game) LegalMoves(sq chess.Square) []chess.Square {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := g.board.PieceAt(sq)
	if p == nil {
		return nil
	}
	return g.board.LegalMoves(p)
}

// Status returns the current game status.
func (g *Game) Status() engine.Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Status()
}

// FEN returns the current position.
func (g *Game) FEN() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.FEN()
}

// Snapshot returns an independent copy of the board.
func (g *Game) Snapshot() *engine.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Clone()
}

// View calls fn with the board while holding the lock. fn must not keep
// the board after returning.
func (g *Game) View(fn func(b *engine.Board)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.board)
}

func (g *Game) logResult(res engine.MoveResult, err error) {
	if err != nil {
		g.cfg.Logf(config.Verbose, "game %s: %s: %v", g.id, res.Outcome, err)
		return
	}
	g.cfg.Logf(config.Outcomes, "game %s: %d. %s", g.id, res.Record.Ply, res.Record)
	switch {
	case res.Status.Checkmate:
		g.cfg.Logf(config.Outcomes, "game %s: checkmate, %s wins", g.id, res.Status.Turn.Opposite())
	case res.Status.Stalemate:
		g.cfg.Logf(config.Outcomes, "game %s: stalemate", g.id)
	case res.Status.Check:
		g.cfg.Logf(config.Outcomes, "game %s: %s in check", g.id, res.Status.Turn)
	}
}
