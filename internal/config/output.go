package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of the text diagram
	JSONFormat bool

	// Colour enables ANSI colours in the text diagram
	Colour bool

	// ShowLegalMoves lists the legal moves of the side to move
	ShowLegalMoves bool

	// ShowHistory lists the committed moves
	ShowHistory bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Colour:         true,
		ShowLegalMoves: true,
		ShowHistory:    true,
	}
}
