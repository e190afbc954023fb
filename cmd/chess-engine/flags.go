// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
)

var (
	// Position and moves
	startFEN  = flag.String("fen", "", "Starting position in FEN (default: standard start)")
	moveList  = flag.String("moves", "", "Coordinate moves to play, space or comma separated (e.g. \"e2e4 e7e5\")")
	moveFile  = flag.String("f", "", "File of coordinate moves to play (# starts a comment)")
	promotion = flag.String("promote", "q", "Piece a pawn becomes when a move names none: q, r, b or n")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	noColour   = flag.Bool("nocolor", false, "Don't colour the board diagram")
	noLegal    = flag.Bool("nolegal", false, "Don't list legal moves")
	noHistory  = flag.Bool("nohistory", false, "Don't list the moves played")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count the move tree to this depth instead of printing the board")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = auto-detect based on CPU cores)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", config.Outcomes, "Diagnostic level: 0 silent, 1 moves and status, 2 also rejections")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (same as -v 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applyOutputFlags(cfg)
	applyPerftFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}

// applyGameFlags configures the starting position and promotion default.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.StartFEN = *startFEN
	cfg.Game.DefaultPromotion = parsePromotion(*promotion)
}

// applyOutputFlags configures output format settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.Colour = !*noColour
	cfg.Output.ShowLegalMoves = !*noLegal
	cfg.Output.ShowHistory = !*noHistory
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
}

// parsePromotion maps a piece letter to a Kind. Anything that is not a
// single letter yields NoKind, which config validation rejects.
func parsePromotion(s string) chess.Kind {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return chess.NoKind
	}
	return chess.KindFromLetter(s[0])
}
