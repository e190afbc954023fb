// chess-engine replays coordinate moves on a board and prints the resulting
// position, or counts the move tree with perft.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
	"github.com/lgbarn/chess-engine-go/internal/errors"
	"github.com/lgbarn/chess-engine-go/internal/output"
	"github.com/lgbarn/chess-engine-go/internal/session"
	"github.com/lgbarn/chess-engine-go/internal/worker"
)

const programVersion = "0.1.0"

var errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-engine version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	openFiles(cfg)

	if err := cfg.Validate(); err != nil {
		fatalf("%s in options: %v\n", errorLabel("Error"), err)
	}

	moves, err := collectMoves()
	if err != nil {
		fatalf("%s reading moves: %v\n", errorLabel("Error"), err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, moves); err != nil {
		stop()
		fatalf("%s: %v\n", errorLabel("Error"), err)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// run plays moves from the configured start position, then writes either
// the board or a perft count.
func run(ctx context.Context, cfg *config.Config, moves []string) error {
	game, err := session.NewGame("cli", cfg)
	if err != nil {
		return err
	}

	for i, m := range moves {
		if _, err := game.MoveText(m); err != nil {
			return errors.Wrapf(err, "move %d (%s)", i+1, m)
		}
	}

	w := output.NewWriter(cfg)
	if cfg.Perft.Depth > 0 {
		return runPerft(ctx, cfg, game.Snapshot(), w)
	}
	return w.WriteBoard(game.Snapshot())
}

func runPerft(ctx context.Context, cfg *config.Config, b *engine.Board, w output.BoardWriter) error {
	start := time.Now()
	n := cfg.Perft.WorkerCount()
	res, err := worker.ParallelPerft(ctx, b, cfg.Perft.Depth, n)
	if err != nil {
		return errors.Wrapf(err, "perft(%d)", cfg.Perft.Depth)
	}
	elapsed := time.Since(start)
	cfg.Logf(config.Outcomes, "%s", message.NewPrinter(language.English).
		Sprintf("perft(%d): %d nodes in %v with %d workers (%d n/s)",
			cfg.Perft.Depth, res.Nodes, elapsed.Round(time.Millisecond), n, nodesPerSecond(res.Nodes, elapsed)))

	p := &output.JSONPerft{FEN: b.FEN(), Depth: cfg.Perft.Depth, Nodes: res.Nodes}
	if cfg.Perft.Divide {
		p.Divide = res.Divide
	}
	return w.WritePerft(p)
}

func nodesPerSecond(nodes int64, d time.Duration) int64 {
	if d <= 0 {
		return 0
	}
	return int64(float64(nodes) / d.Seconds())
}

// collectMoves gathers moves from -f, -moves and the positional arguments,
// in that order.
func collectMoves() ([]string, error) {
	var moves []string
	if *moveFile != "" {
		file, err := os.Open(*moveFile)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		if moves, err = readMoves(file); err != nil {
			return nil, errors.Wrap(err, *moveFile)
		}
	}
	moves = append(moves, splitMoves(*moveList)...)
	for _, arg := range flag.Args() {
		moves = append(moves, splitMoves(arg)...)
	}
	return moves, nil
}

// readMoves reads whitespace or comma separated moves, ignoring anything
// after a '#' on each line.
func readMoves(r io.Reader) ([]string, error) {
	var moves []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		moves = append(moves, splitMoves(line)...)
	}
	return moves, scanner.Err()
}

// splitMoves splits on whitespace and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// openFiles points the log and output streams at the files named by -l, -L
// and -o. An output file never receives colour escapes.
func openFiles(cfg *config.Config) {
	switch {
	case *appendLog != "":
		cfg.SetLog(mustOpen(*appendLog, os.O_APPEND))
	case *logFile != "":
		cfg.SetLog(mustOpen(*logFile, os.O_TRUNC))
	}
	if *outputFile != "" {
		cfg.SetOutput(mustOpen(*outputFile, os.O_TRUNC))
		cfg.Output.Colour = false
	}
}

func mustOpen(name string, mode int) *os.File {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|mode, 0o644) //nolint:gosec // user-named output
	if err != nil {
		fatalf("%s opening %s: %v\n", errorLabel("Error"), name, err)
	}
	return f
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-engine [options] [moves...]\n\n")
	fmt.Fprintf(os.Stderr, "Plays coordinate moves (e2e4, e7e8q) and prints the position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess-engine e2e4 e7e5 g1f3\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -J -fen \"8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1\" e4d3\n")
	fmt.Fprintf(os.Stderr, "  chess-engine -perft 4 -divide -workers 8\n")
}
