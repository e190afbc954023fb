package config

import (
	"bytes"
	"errors"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-engine-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if !cfg.Colour {
		t.Error("Colour should be true by default")
	}
	if !cfg.ShowLegalMoves {
		t.Error("ShowLegalMoves should be true by default")
	}
	if !cfg.ShowHistory {
		t.Error("ShowHistory should be true by default")
	}
}

// TestGameConfig_Defaults verifies GameConfig has sensible defaults
func TestGameConfig_Defaults(t *testing.T) {
	cfg := NewGameConfig()

	if cfg.StartFEN != "" {
		t.Errorf("StartFEN = %q, want empty", cfg.StartFEN)
	}
	if cfg.DefaultPromotion != chess.Queen {
		t.Errorf("DefaultPromotion = %v, want Queen", cfg.DefaultPromotion)
	}
	if cfg.MaxGames != 0 {
		t.Errorf("MaxGames = %d, want 0", cfg.MaxGames)
	}
}

func TestGameConfig_NewBoard(t *testing.T) {
	cfg := NewGameConfig()
	b, err := cfg.NewBoard()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(b.LegalMoveList()); n != 20 {
		t.Errorf("default board has %d moves, want 20", n)
	}

	cfg.StartFEN = "4k3/8/8/8/8/8/8/4K3 b - - 0 1"
	b, err = cfg.NewBoard()
	if err != nil {
		t.Fatal(err)
	}
	if b.CurrentTurn() != chess.Black {
		t.Errorf("CurrentTurn() = %v, want Black", b.CurrentTurn())
	}
}

// TestGameConfig_Validate verifies game config validation
func TestGameConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     GameConfig
		wantErr bool
	}{
		{"defaults", *NewGameConfig(), false},
		{"knight promotion", GameConfig{DefaultPromotion: chess.Knight}, false},
		{"no promotion piece", GameConfig{}, true},
		{"king promotion", GameConfig{DefaultPromotion: chess.King}, true},
		{"negative max games", GameConfig{DefaultPromotion: chess.Queen, MaxGames: -1}, true},
		{"valid FEN", GameConfig{DefaultPromotion: chess.Queen, StartFEN: "4k3/8/8/8/8/8/8/4K3 w - - 0 1"}, false},
		{"invalid FEN", GameConfig{DefaultPromotion: chess.Queen, StartFEN: "not a fen"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestPerftConfig_Validate verifies perft config validation
func TestPerftConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     PerftConfig
		wantErr bool
	}{
		{"empty config is valid", PerftConfig{}, false},
		{"depth and workers", PerftConfig{Depth: 4, Workers: 8}, false},
		{"max depth", PerftConfig{Depth: MaxPerftDepth}, false},
		{"too deep", PerftConfig{Depth: MaxPerftDepth + 1}, true},
		{"negative depth", PerftConfig{Depth: -1}, true},
		{"negative workers", PerftConfig{Workers: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPerftConfig_WorkerCount(t *testing.T) {
	if got := (&PerftConfig{Workers: 3}).WorkerCount(); got != 3 {
		t.Errorf("WorkerCount() = %d, want 3", got)
	}
	if got := NewPerftConfig().WorkerCount(); got != runtime.NumCPU() {
		t.Errorf("WorkerCount() = %d, want NumCPU %d", got, runtime.NumCPU())
	}
}

// TestConfig_SubConfigs verifies that NewConfig wires every section
func TestConfig_SubConfigs(t *testing.T) {
	cfg := NewConfig()

	if cfg.Game == nil || cfg.Output == nil || cfg.Perft == nil {
		t.Fatal("NewConfig left a section nil")
	}
	if cfg.Verbosity != Outcomes {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Outcomes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

func TestConfig_Logf(t *testing.T) {
	tests := []struct {
		verbosity int
		level     int
		want      string
	}{
		{Silent, Outcomes, ""},
		{Outcomes, Outcomes, "ply 1\n"},
		{Outcomes, Verbose, ""},
		{Verbose, Verbose, "ply 1\n"},
	}

	for _, tt := range tests {
		cfg := NewConfig()
		buf := &bytes.Buffer{}
		cfg.SetLog(buf)
		cfg.Verbosity = tt.verbosity

		cfg.Logf(tt.level, "ply %d", 1)
		if got := buf.String(); got != tt.want {
			t.Errorf("verbosity %d level %d: logged %q, want %q", tt.verbosity, tt.level, got, tt.want)
		}
	}

	var nilCfg *Config
	nilCfg.Logf(Silent, "ignored")
}

func TestConfig_LogfConcurrent(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}
	cfg.SetLog(buf)

	const writers, lines = 8, 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < lines; j++ {
				cfg.Logf(Outcomes, "writer %d line %d", id, j)
			}
		}(i)
	}
	wg.Wait()

	got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(got) != writers*lines {
		t.Fatalf("logged %d lines, want %d", len(got), writers*lines)
	}
	for _, line := range got {
		if !strings.HasPrefix(line, "writer ") {
			t.Errorf("torn line %q", line)
		}
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out, log := &bytes.Buffer{}, &bytes.Buffer{}
	cfg, err := NewConfigBuilder().
		WithVerbosity(Verbose).
		WithOutputFile(out).
		WithLogFile(log).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithDefaultPromotion(chess.Rook).
		WithMaxGames(4).
		WithJSON(true).
		WithColour(false).
		WithPerft(3, true).
		WithWorkers(2).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if cfg.Verbosity != Verbose {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Verbose)
	}
	if cfg.OutputFile != out || cfg.LogFile != log {
		t.Error("writers not set")
	}
	if cfg.Game.DefaultPromotion != chess.Rook {
		t.Errorf("DefaultPromotion = %v, want Rook", cfg.Game.DefaultPromotion)
	}
	if cfg.Game.MaxGames != 4 {
		t.Errorf("MaxGames = %d, want 4", cfg.Game.MaxGames)
	}
	if !cfg.Output.JSONFormat || cfg.Output.Colour {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Perft.Depth != 3 || !cfg.Perft.Divide || cfg.Perft.Workers != 2 {
		t.Errorf("Perft = %+v", cfg.Perft)
	}
}

func TestConfigBuilder_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		builder *ConfigBuilder
		wantMsg string
	}{
		{"verbosity", NewConfigBuilder().WithVerbosity(9), "verbosity"},
		{"promotion", NewConfigBuilder().WithDefaultPromotion(chess.Pawn), "default promotion"},
		{"start FEN", NewConfigBuilder().WithStartFEN("8/8 w"), "start position"},
		{"perft depth", NewConfigBuilder().WithPerft(MaxPerftDepth+1, false), "perft depth"},
		{"workers", NewConfigBuilder().WithWorkers(-1), "workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.builder.Build()
			if cfg != nil {
				t.Error("Build() returned a config with an error")
			}
			if !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Fatalf("Build() error = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Build() error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}
