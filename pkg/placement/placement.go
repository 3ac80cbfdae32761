package placement

import (
	"math/bits"

	"github.com/herohde/pc4l/pkg/board"
	"github.com/herohde/pc4l/pkg/piece"
)

// machine is the internal fixed-point iterator that discovers every
// reachable position for a single (board, shape, physics). Callers use
// Place, not machine, directly.
type machine struct {
	shape    piece.Shape
	physics  piece.Physics
	viable   [4]PVec // constant during iteration
	reachable [4]PVec
	dirty    [4]bool
}

func (m *machine) anyDirty() bool {
	return m.dirty[0] || m.dirty[1] || m.dirty[2] || m.dirty[3]
}

// step visits a single orientation: if dirty, flood-fills its reachable set
// and propagates any newly reachable positions to neighbouring orientations
// via clockwise, counter-clockwise, and (outside SRS) half-turn kicks.
func (m *machine) step(o piece.Orientation) {
	if !m.dirty[o] {
		return
	}

	cw := o.CW()
	ccw := o.CCW()

	m.reachable[o] = m.reachable[o].FloodFill(m.viable[o])

	cwMore := QuarterKicks(m.physics, m.shape, o).KickCW(m.reachable[o], m.viable[cw])
	if m.reachable[cw]&cwMore != cwMore {
		m.reachable[cw] |= cwMore
		m.dirty[cw] = true
	}

	ccwMore := QuarterKicks(m.physics, m.shape, ccw).KickCCW(m.reachable[o], m.viable[ccw])
	if m.reachable[ccw]&ccwMore != ccwMore {
		m.reachable[ccw] |= ccwMore
		m.dirty[ccw] = true
	}

	if m.physics != piece.SRS {
		half := o.Half()
		halfMore := HalfKicks(m.physics, m.shape, o).KickCW(m.reachable[o], m.viable[half])
		if m.reachable[half]&halfMore != halfMore {
			m.reachable[half] |= halfMore
			m.dirty[half] = true
		}
	}

	m.dirty[o] = false
}

func (m *machine) placeable(o piece.Orientation) PVec {
	return COLLISION[m.shape][o].Placeable(m.reachable[o])
}

// Placements is the full placeable set for one (board, shape, physics):
// one PVec of placeable positions per orientation, ordered North, East,
// South, West.
type Placements struct {
	Shape     piece.Shape
	Board     board.Board
	Positions [4]PVec

	cursor    int
	back      int // valid only once backReady; see NextBack
	backReady bool
}

// Place computes every placeable position of shape on board under physics.
// The O piece takes a fast path: since it can never kick (no up-kicks exist
// and every orientation looks identical), its single orientation's result is
// just copied into all four slots.
func Place(b board.Board, shape piece.Shape, physics piece.Physics) Placements {
	if shape == piece.O {
		return placeO(b)
	}

	m := &machine{shape: shape, physics: physics}
	for o := piece.North; o <= piece.West; o++ {
		m.viable[o] = COLLISION[shape][o].Viable(uint64(b))
		m.reachable[o] = SPAWN & m.viable[o]
		m.dirty[o] = true
	}

	for m.anyDirty() {
		m.step(piece.North)
		m.step(piece.East)
		m.step(piece.South)
		m.step(piece.West)
	}

	return Placements{
		Shape: shape,
		Board: b,
		Positions: [4]PVec{
			m.placeable(piece.North),
			m.placeable(piece.East),
			m.placeable(piece.South),
			m.placeable(piece.West),
		},
	}
}

func placeO(b board.Board) Placements {
	viable := COLLISION[piece.O][piece.North].Viable(uint64(b))
	reachable := (SPAWN & viable).FloodFill(viable)
	p := COLLISION[piece.O][piece.North].Placeable(reachable)
	return Placements{
		Shape:     piece.O,
		Board:     b,
		Positions: [4]PVec{p, p, p, p},
	}
}

// Or returns the union of p and o's placeable positions, orientation by
// orientation. Both must be for the same shape and board.
func (p Placements) Or(o Placements) Placements {
	out := Placements{Shape: p.Shape, Board: p.Board}
	for i := range out.Positions {
		out.Positions[i] = p.Positions[i] | o.Positions[i]
	}
	return out
}

// Canonical folds orientations that look visually identical into a single
// representative slot: O collapses to North only; the 180-symmetric shapes
// I, S, Z OR South into North and West into East; asymmetric shapes J, L, T
// are returned unchanged. Applying Canonical twice has no further effect.
func (p Placements) Canonical() Placements {
	switch p.Shape {
	case piece.O:
		return Placements{Shape: p.Shape, Board: p.Board, Positions: [4]PVec{p.Positions[0], 0, 0, 0}}
	case piece.I, piece.S, piece.Z:
		return Placements{
			Shape: p.Shape,
			Board: p.Board,
			Positions: [4]PVec{
				p.Positions[0] | p.Positions[2],
				p.Positions[1] | p.Positions[3],
				0,
				0,
			},
		}
	default: // J, L, T: not symmetric
		return p
	}
}

// Contains reports whether the given piece is a member of this placement
// set.
func (p Placements) Contains(pc piece.Piece) bool {
	return p.Shape == pc.Shape && p.Positions[pc.Orientation].Contains(pc.Col, pc.Row)
}

// Remove removes the given piece from this placement set, reporting whether
// it was present beforehand.
func (p *Placements) Remove(pc piece.Piece) bool {
	if p.Shape != pc.Shape {
		return false
	}
	pos := p.Positions[pc.Orientation]
	ok := pos.Remove(pc.Col, pc.Row)
	p.Positions[pc.Orientation] = pos
	return ok
}

// Len returns the total number of positions across all four orientations.
func (p Placements) Len() int {
	n := 0
	for _, pos := range p.Positions {
		n += pos.Count()
	}
	return n
}

// Next yields placements in orientation order North, East, South, West,
// lowest position bit first within an orientation, pairing each piece with
// the board that results from placing it. It reports ok=false once every
// position has been drained.
func (p *Placements) Next() (piece.Piece, board.Board, bool) {
	for o := p.cursor; o <= int(piece.West); o++ {
		pos := p.Positions[o]
		if pos == 0 {
			continue
		}
		p.cursor = o

		cell := bits.TrailingZeros64(uint64(pos))
		col := int8(cell % 10)
		row := int8(cell / 10)
		p.Positions[o] ^= PVec(1 << cell)

		pc := piece.Piece{Shape: p.Shape, Col: col, Row: row, Orientation: piece.Orientation(o)}
		return pc, board.Board(pc.Place(uint64(p.Board))), true
	}
	return piece.Piece{}, 0, false
}

// NextBack yields placements in reverse orientation order West, South,
// East, North, highest position bit first within an orientation, pairing
// each piece with the board that results from placing it. It reports
// ok=false once every position has been drained. NextBack is the mirror of
// Next: the two may be interleaved to drain p from both ends at once,
// since they consume disjoint bits of the shared Positions array until
// they meet.
func (p *Placements) NextBack() (piece.Piece, board.Board, bool) {
	if !p.backReady {
		p.back = int(piece.West)
		p.backReady = true
	}

	for o := p.back; o >= 0; o-- {
		pos := p.Positions[o]
		if pos == 0 {
			continue
		}
		p.back = o

		cell := 63 - bits.LeadingZeros64(uint64(pos))
		col := int8(cell % 10)
		row := int8(cell / 10)
		p.Positions[o] ^= PVec(1 << cell)

		pc := piece.Piece{Shape: p.Shape, Col: col, Row: row, Orientation: piece.Orientation(o)}
		return pc, board.Board(pc.Place(uint64(p.Board))), true
	}
	return piece.Piece{}, 0, false
}

// All drains every (piece, resulting board) pair from p in order. p is left
// empty afterwards.
func (p *Placements) All() []PlacedPiece {
	var out []PlacedPiece
	for {
		pc, b, ok := p.Next()
		if !ok {
			break
		}
		out = append(out, PlacedPiece{Piece: pc, Board: b})
	}
	return out
}

// PlacedPiece pairs a piece with the board that results from placing it.
type PlacedPiece struct {
	Piece piece.Piece
	Board board.Board
}
