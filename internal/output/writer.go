package output

import (
	"sort"

	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/engine"
)

// BoardWriter writes boards and perft results in one output format.
type BoardWriter interface {
	// WriteBoard writes the current state of b.
	WriteBoard(b *engine.Board) error

	// WritePerft writes a perft result.
	WritePerft(p *JSONPerft) error
}

// TextWriter writes the text diagram.
type TextWriter struct {
	cfg *config.Config
}

// JSONWriter writes JSON snapshots, one document per call.
type JSONWriter struct {
	cfg *config.Config
}

// NewWriter returns the writer selected by cfg.Output.JSONFormat.
func NewWriter(cfg *config.Config) BoardWriter {
	if cfg.Output.JSONFormat {
		return &JSONWriter{cfg: cfg}
	}
	return &TextWriter{cfg: cfg}
}

// WriteBoard writes the diagram of b.
func (tw *TextWriter) WriteBoard(b *engine.Board) error {
	return OutputBoard(b, tw.cfg)
}

// WritePerft writes the perft counts as text.
func (tw *TextWriter) WritePerft(p *JSONPerft) error {
	return OutputPerft(p, tw.cfg)
}

// WriteBoard writes the JSON snapshot of b.
func (jw *JSONWriter) WriteBoard(b *engine.Board) error {
	return OutputBoardJSON(b, jw.cfg)
}

// WritePerft writes the perft counts as JSON.
func (jw *JSONWriter) WritePerft(p *JSONPerft) error {
	return OutputPerftJSON(p, jw.cfg)
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
