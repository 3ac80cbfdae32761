package brokenboard

import (
	"math/bits"

	"github.com/herohde/pc4l/internal/assert"
	"github.com/herohde/pc4l/pkg/board"
	"github.com/herohde/pc4l/pkg/piece"
	"github.com/herohde/pc4l/pkg/placement"
	"github.com/herohde/pc4l/pkg/queue"
)

func belowTop1(n uint8) uint8 {
	return uint8(1<<uint(8-bits.LeadingZeros8(n))) - 1
}

func aboveBottom1(n uint8) uint8 {
	return ^(uint8(1<<uint(bits.TrailingZeros8(n))) - 1)
}

// Placeable checks whether p could be played right now: if so, it returns
// the concrete Piece which, when placed, breaks apart into exactly p. It
// reports ok=false if p is already present in b, if some row p spans was not
// actually cleared yet, or if the reconstructed piece would collide with
// b.Board.
func (b BrokenBoard) Placeable(p BrokenPiece) (piece.Piece, bool) {
	for _, existing := range b.Pieces {
		if existing == p {
			return piece.Piece{}, false
		}
	}

	assert.That(b.ClearedRows&p.Rows == 0, "broken piece claims a row already recorded as cleared")

	// Rows strictly between the piece's topmost and bottommost occupied row
	// that the piece itself does not occupy must already have been cleared,
	// or the piece could never have split apart like this.
	requiredClear := belowTop1(p.Rows) & aboveBottom1(p.Rows) &^ p.Rows
	if requiredClear&b.ClearedRows != requiredClear {
		return piece.Piece{}, false
	}

	bumpCol := bits.TrailingZeros64(piece.Shapes[p.Shape][p.Orientation])

	bumpRow := bits.OnesCount8(b.ClearedRows & aboveBottom1(p.Rows))

	pc := piece.Piece{
		Shape:       p.Shape,
		Col:         int8(p.LowMino%10) - int8(bumpCol),
		Row:         int8(p.LowMino/10) + int8(bumpRow),
		Orientation: p.Orientation,
	}
	if !pc.CanPlace(uint64(b.Board)) {
		return piece.Piece{}, false
	}

	assert.That(containsPiece(b.Place(pc).Pieces, p), "reconstructed placement does not break back into the requested identity")
	return pc, true
}

// SupportingQueues searches backwards from b to find every queue of pieces
// which, played in order without ever touching hold, produces exactly b.
func (b BrokenBoard) SupportingQueues(physics piece.Physics) []queue.Queue {
	garbage := uint64(b.ToBrokenBitboard())
	for _, p := range b.Pieces {
		garbage ^= uint64(p.Board())
	}

	// state keys a (BrokenBoard, Queue) pair with a plain comparable struct so
	// it can live in a map: BrokenBoard.Pieces is a slice, and slices cannot
	// be map keys.
	type state struct {
		board       board.Board
		clearedRows uint8
		pieceCount  uint8
		pieces      [10]BrokenPiece
		queue       queue.Queue
	}

	toState := func(bb BrokenBoard, q queue.Queue) state {
		s := state{board: bb.Board, clearedRows: bb.ClearedRows, queue: q, pieceCount: uint8(len(bb.Pieces))}
		copy(s.pieces[:], bb.Pieces)
		return s
	}
	toBoard := func(s state) BrokenBoard {
		return BrokenBoard{Board: s.board, ClearedRows: s.clearedRows, Pieces: append([]BrokenPiece(nil), s.pieces[:s.pieceCount]...)}
	}

	prev := map[state]struct{}{toState(FromGarbage(garbage), queue.Empty()): {}}

	for range b.Pieces {
		next := map[state]struct{}{}

		for s := range prev {
			cur := toBoard(s)

			var placeable []piece.Piece
			for _, p := range b.Pieces {
				if pc, ok := cur.Placeable(p); ok {
					placeable = append(placeable, pc)
				}
			}

			for _, shape := range piece.All {
				if !anyShape(placeable, shape) {
					continue
				}

				positions := placement.Place(cur.Board, shape, physics).Canonical()
				for {
					pc, _, ok := positions.Next()
					if !ok {
						break
					}
					if idx := indexOf(placeable, pc); idx >= 0 {
						next[toState(cur.Place(pc), s.queue.PushLast(shape))] = struct{}{}

						placeable = append(placeable[:idx], placeable[idx+1:]...)
						if !anyShape(placeable, shape) {
							break
						}
					}
				}
			}
		}

		prev = next
	}

	out := make([]queue.Queue, 0, len(prev))
	for s := range prev {
		out = append(out, s.queue)
	}
	return out
}

func containsPiece(pieces []BrokenPiece, p BrokenPiece) bool {
	for _, q := range pieces {
		if q == p {
			return true
		}
	}
	return false
}

func anyShape(pieces []piece.Piece, shape piece.Shape) bool {
	for _, p := range pieces {
		if p.Shape == shape {
			return true
		}
	}
	return false
}

func indexOf(pieces []piece.Piece, p piece.Piece) int {
	for i, q := range pieces {
		if q == p {
			return i
		}
	}
	return -1
}
