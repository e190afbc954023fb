package config

import (
	"fmt"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// GameConfig holds settings for creating and playing games.
type GameConfig struct {
	// StartFEN is the position new games start from; empty means the
	// standard starting position.
	StartFEN string

	// DefaultPromotion is used when a move that promotes names no piece.
	DefaultPromotion chess.Kind

	// MaxGames caps the number of live games in a session manager
	// (0 = unlimited).
	MaxGames int
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{DefaultPromotion: chess.Queen}
}

// NewBoard creates a board for a new game.
func (g *GameConfig) NewBoard() (*engine.Board, error) {
	if g.StartFEN == "" {
		return engine.NewBoard(), nil
	}
	return engine.NewBoardFromFEN(g.StartFEN)
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if !g.DefaultPromotion.IsPromotionChoice() {
		return invalid("default promotion %v is not a promotion piece", g.DefaultPromotion)
	}
	if g.MaxGames < 0 {
		return invalid("max games %d is negative", g.MaxGames)
	}
	if g.StartFEN != "" {
		if _, err := engine.NewBoardFromFEN(g.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, errors.ErrInvalidConfig)...)
}
