package engine

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Each move is played on a clone, so b is not modified.
func Perft(b *Board, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoveList()
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for _, m := range moves {
		child, ok := b.Play(m)
		if !ok {
			continue
		}
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by move text.
func PerftDivide(b *Board, depth int) map[string]int64 {
	out := make(map[string]int64)
	if depth <= 0 {
		return out
	}
	for _, m := range b.LegalMoveList() {
		child, ok := b.Play(m)
		if !ok {
			continue
		}
		out[m.String()] = Perft(child, depth-1)
	}
	return out
}

// Play returns a clone of b with m committed. ok is false if the move is
// rejected on the clone.
func (b *Board) Play(m Move) (child *Board, ok bool) {
	child = b.Clone()
	if _, err := child.AttemptMove(child.PieceAt(m.From), m.To, m.Promotion); err != nil {
		return nil, false
	}
	return child, true
}
