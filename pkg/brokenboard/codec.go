package brokenboard

import (
	"github.com/herohde/pc4l/pkg/board"
	"github.com/herohde/pc4l/pkg/piece"
)

// bitWriter packs bits least-significant-bit first, matching the wire
// format's convention (mirrors the teacher's preference for small,
// purpose-built codecs over a general framework when the format is this
// bespoke).
type bitWriter struct {
	bits []bool
}

func (w *bitWriter) writeUint(v uint64, n int) {
	for i := 0; i < n; i++ {
		w.bits = append(w.bits, (v>>uint(i))&1 != 0)
	}
}

// Bits returns the accumulated bit sequence, one bool per bit, LSB-first
// within each field as written.
func (w *bitWriter) Bits() []bool {
	return w.bits
}

type bitReader struct {
	bits []bool
	pos  int
}

func (r *bitReader) remaining() int {
	return len(r.bits) - r.pos
}

func (r *bitReader) readUint(n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		if r.bits[r.pos+i] {
			v |= 1 << uint(i)
		}
	}
	r.pos += n
	return v
}

// Encode serialises b into the bit-stream format: an 8-bit magic (4), the
// 40-bit board, a 4-bit cleared-row mask, then 15 bits per piece (6-bit
// low_mino, 3-bit shape, 2-bit orientation, 4-bit rows).
func (b BrokenBoard) Encode() []bool {
	w := &bitWriter{}
	w.writeUint(4, 8)
	w.writeUint(uint64(b.Board), 40)
	w.writeUint(uint64(b.ClearedRows), 4)
	for _, p := range b.Pieces {
		w.writeUint(uint64(p.LowMino), 6)
		w.writeUint(uint64(p.Shape), 3)
		w.writeUint(uint64(p.Orientation), 2)
		w.writeUint(uint64(p.Rows), 4)
	}
	return w.Bits()
}

// Decode parses the bit-stream format produced by Encode, rejecting
// anything with the wrong magic, a length outside [52, 202] bits, a
// trailing partial piece record, an out-of-range shape/orientation, or a
// result that fails IsValid. It never panics on malformed input.
func Decode(bits []bool) (BrokenBoard, bool) {
	if len(bits) < 52 || len(bits) > 202 {
		return BrokenBoard{}, false
	}

	r := &bitReader{bits: bits}
	if r.readUint(8) != 4 {
		return BrokenBoard{}, false
	}

	b := BrokenBoard{}
	b.Board = board.Board(r.readUint(40))
	b.ClearedRows = uint8(r.readUint(4))

	for r.remaining() != 0 {
		if r.remaining() < 15 {
			return BrokenBoard{}, false
		}

		lowMino := uint8(r.readUint(6))
		shapeIdx := uint8(r.readUint(3))
		orientIdx := uint8(r.readUint(2))
		rows := uint8(r.readUint(4))

		shape, ok := piece.ShapeFromIndex(shapeIdx)
		if !ok {
			return BrokenBoard{}, false
		}
		orientation, ok := piece.OrientationFromIndex(orientIdx)
		if !ok {
			return BrokenBoard{}, false
		}

		b.Pieces = append(b.Pieces, BrokenPiece{
			LowMino:     lowMino,
			Shape:       shape,
			Orientation: orientation,
			Rows:        rows,
		})
	}

	if !b.IsValid() {
		return BrokenBoard{}, false
	}
	return b, true
}
