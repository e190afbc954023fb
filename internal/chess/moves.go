package chess

// Occupancy is the read-only view of a position that movement geometry needs.
type Occupancy interface {
	// PieceAt returns the piece on sq, or nil.
	PieceAt(sq Square) *Piece
	// EnPassantTarget returns the square skipped by the last double step, if any.
	EnPassantTarget() (Square, bool)
	// Pieces returns every piece of colour c.
	Pieces(c Colour) []*Piece
}

type direction struct{ dr, dc int }

var (
	orthogonal  = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal    = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDirs     = append(append([]direction{}, orthogonal...), diagonal...)
	knightJumps = []direction{{2, -1}, {2, 1}, {-2, -1}, {-2, 1}, {1, 2}, {-1, 2}, {1, -2}, {-1, -2}}
)

// RawMoves returns the destinations allowed by the piece's geometry on occ.
// Whether the move would leave the mover's own king in check is not
// considered, except for the King, whose destinations must not be attacked
// after the move.
func (p *Piece) RawMoves(occ Occupancy) SquareSet {
	switch p.Kind {
	case Pawn:
		return p.pawnMoves(occ)
	case Rook:
		return p.slide(occ, orthogonal)
	case Bishop:
		return p.slide(occ, diagonal)
	case Queen:
		return p.slide(occ, allDirs)
	case Knight:
		return p.step(occ, knightJumps)
	case King:
		return p.kingMoves(occ)
	}
	return 0
}

// CanAttack reports whether the piece attacks target on occ.
// Pawns and Kings attack by geometry alone, whatever occupies target.
func (p *Piece) CanAttack(occ Occupancy, target Square) bool {
	dr := target.Row - p.Position.Row
	dc := target.Col - p.Position.Col
	switch p.Kind {
	case Pawn:
		return dr == p.Direction() && abs(dc) == 1
	case King:
		return (dr != 0 || dc != 0) && abs(dr) <= 1 && abs(dc) <= 1
	}
	return p.RawMoves(occ).Has(target)
}

func (p *Piece) pawnMoves(occ Occupancy) SquareSet {
	var moves SquareSet
	dir := p.Direction()

	one := p.Position.Offset(dir, 0)
	if InBounds(one) && occ.PieceAt(one) == nil {
		moves = moves.Add(one)

		two := p.Position.Offset(2*dir, 0)
		if !p.HasMoved && p.Position.Row == PawnRow(p.Colour) && occ.PieceAt(two) == nil {
			moves = moves.Add(two)
		}
	}

	ep, hasEP := occ.EnPassantTarget()
	for _, dc := range []int{-1, 1} {
		diag := p.Position.Offset(dir, dc)
		if !InBounds(diag) {
			continue
		}
		if target := occ.PieceAt(diag); target != nil {
			if target.Colour != p.Colour {
				moves = moves.Add(diag)
			}
			continue
		}
		if hasEP && diag == ep && p.enPassantVictim(occ, diag) != nil {
			moves = moves.Add(diag)
		}
	}
	return moves
}

// EnPassantVictim returns the pawn a pawn capturing onto target en passant
// would remove, or nil if the move is not an en-passant capture.
func (p *Piece) EnPassantVictim(occ Occupancy, target Square) *Piece {
	if p.Kind != Pawn {
		return nil
	}
	ep, ok := occ.EnPassantTarget()
	if !ok || ep != target || occ.PieceAt(target) != nil {
		return nil
	}
	if target.Row-p.Position.Row != p.Direction() || abs(target.Col-p.Position.Col) != 1 {
		return nil
	}
	return p.enPassantVictim(occ, target)
}

func (p *Piece) enPassantVictim(occ Occupancy, target Square) *Piece {
	victim := occ.PieceAt(Square{Row: p.Position.Row, Col: target.Col})
	if victim == nil || victim.Kind != Pawn || victim.Colour == p.Colour {
		return nil
	}
	return victim
}

// slide walks each ray until the edge, stopping before a friendly piece and
// on an enemy one.
func (p *Piece) slide(occ Occupancy, dirs []direction) SquareSet {
	var moves SquareSet
	for _, d := range dirs {
		for sq := p.Position.Offset(d.dr, d.dc); InBounds(sq); sq = sq.Offset(d.dr, d.dc) {
			target := occ.PieceAt(sq)
			if target == nil {
				moves = moves.Add(sq)
				continue
			}
			if target.Colour != p.Colour {
				moves = moves.Add(sq)
			}
			break
		}
	}
	return moves
}

// step adds each fixed offset that is on the board and not friendly.
func (p *Piece) step(occ Occupancy, offsets []direction) SquareSet {
	var moves SquareSet
	for _, d := range offsets {
		sq := p.Position.Offset(d.dr, d.dc)
		if !InBounds(sq) {
			continue
		}
		if target := occ.PieceAt(sq); target == nil || target.Colour != p.Colour {
			moves = moves.Add(sq)
		}
	}
	return moves
}

func (p *Piece) kingMoves(occ Occupancy) SquareSet {
	var moves SquareSet
	for _, sq := range p.step(occ, allDirs).Squares() {
		if !Attacked(afterMove{Occupancy: occ, mover: p, from: p.Position, to: sq}, sq, p.Colour.Opposite()) {
			moves = moves.Add(sq)
		}
	}
	return moves
}

// Attacked reports whether any piece of colour by attacks sq.
func Attacked(occ Occupancy, sq Square, by Colour) bool {
	for _, piece := range occ.Pieces(by) {
		if piece.CanAttack(occ, sq) {
			return true
		}
	}
	return false
}

// Attackers returns every piece of colour by that attacks sq.
func Attackers(occ Occupancy, sq Square, by Colour) []*Piece {
	var attackers []*Piece
	for _, piece := range occ.Pieces(by) {
		if piece.CanAttack(occ, sq) {
			attackers = append(attackers, piece)
		}
	}
	return attackers
}

// afterMove overlays a single move on an occupancy without mutating it:
// from is vacated, to holds mover, and whatever stood on to is gone.
type afterMove struct {
	Occupancy
	mover    *Piece
	from, to Square
}

func (a afterMove) PieceAt(sq Square) *Piece {
	switch sq {
	case a.from:
		return nil
	case a.to:
		return a.mover
	}
	return a.Occupancy.PieceAt(sq)
}

func (a afterMove) Pieces(c Colour) []*Piece {
	all := a.Occupancy.Pieces(c)
	pieces := make([]*Piece, 0, len(all))
	for _, piece := range all {
		if piece != a.mover && piece.Position == a.to {
			continue
		}
		pieces = append(pieces, piece)
	}
	return pieces
}
