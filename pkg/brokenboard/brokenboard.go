// Package brokenboard implements BrokenBoard, a board paired with an
// ordered multiset of the pieces placed into it, whose identity survives
// later line clears even when a piece ends up split across non-adjacent
// rows.
package brokenboard

import (
	"math/bits"
	"sort"

	"github.com/herohde/pc4l/pkg/board"
	"github.com/herohde/pc4l/pkg/piece"
)

// BrokenPiece is an identity for a placed piece that remains stable across
// line clears: the index of its lowest filled mino, its shape and canonical
// orientation, and a 4-bit mask of which of the original four rows still
// contain one of its minoes.
type BrokenPiece struct {
	LowMino     uint8
	Shape       piece.Shape
	Orientation piece.Orientation
	Rows        uint8
}

// Less orders BrokenPieces by (LowMino, Shape, Orientation, Rows), the
// tuple BrokenBoard uses to keep its piece list in canonical order.
func (p BrokenPiece) Less(o BrokenPiece) bool {
	if p.LowMino != o.LowMino {
		return p.LowMino < o.LowMino
	}
	if p.Shape != o.Shape {
		return p.Shape < o.Shape
	}
	if p.Orientation != o.Orientation {
		return p.Orientation < o.Orientation
	}
	return p.Rows < o.Rows
}

// Board reconstructs the (probably non-contiguous) bitboard occupied by
// this broken piece's minoes, useful for locating them but not a valid
// playable board on its own.
func (p BrokenPiece) Board() board.Board {
	connected := piece.Shapes[p.Shape][p.Orientation]
	connected = connected >> uint(bits.TrailingZeros64(connected)) << uint(p.LowMino%10)

	var broken uint64
	for row := 0; row <= 3; row++ {
		if (1<<uint(row))&p.Rows != 0 {
			broken |= (0x3FF & connected) << uint(row*10)
			connected >>= 10
		}
	}
	return board.Board(broken)
}

// BrokenBoard is a board together with the ordered multiset of broken
// pieces that built it, and a 4-bit mask of which of the original four
// rows have already been cleared.
//
// Two BrokenBoards are equal iff Board, ClearedRows, and Pieces all match;
// Pieces is kept sorted so that two placement orders producing the same
// physical configuration always compare equal.
type BrokenBoard struct {
	Board       board.Board
	ClearedRows uint8
	Pieces      []BrokenPiece
}

// Empty is the BrokenBoard with no garbage and no pieces placed.
func Empty() BrokenBoard {
	return BrokenBoard{}
}

// FromGarbage builds a BrokenBoard from a raw 40-bit garbage pattern,
// extracting any already-full rows into ClearedRows and compacting the
// remaining rows to the bottom of Board, exactly as Piece.Place does for an
// ordinary placement.
func FromGarbage(garbage uint64) BrokenBoard {
	var b BrokenBoard

	var completeLines uint64
	var completeShift uint

	for row := 3; row >= 0; row-- {
		line := (garbage >> uint(row*10)) & 0x3FF
		if line == 0x3FF {
			completeLines = (completeLines << 10) | 0x3FF
			completeShift += 10
			b.ClearedRows |= 1 << uint(row)
		} else {
			b.Board = board.Board((uint64(b.Board) << 10) | line)
		}
	}

	b.Board = board.Board((uint64(b.Board) << completeShift) | completeLines)
	return b
}

// ToBrokenBitboard reconstructs the board's original 4-row layout (before
// any of ClearedRows' lines were physically cleared), reinserting a fully
// filled row wherever ClearedRows records one.
func (b BrokenBoard) ToBrokenBitboard() board.Board {
	old := uint64(b.Board)
	var result uint64

	for row := 3; row >= 0; row-- {
		full := b.ClearedRows&(1<<uint(row)) != 0

		var newRow uint64
		if full {
			old >>= 10
			newRow = 0x3FF
		} else {
			newRow = (old >> uint(10*row)) & 0x3FF
		}
		result = (result << 10) | newRow
	}
	return board.Board(result)
}

// Place drops p into b and returns the resulting BrokenBoard: the new board
// is whatever piece.Place produces; the new broken-piece identity is
// derived from which of the (already-cleared-row-adjusted) rows its minoes
// land in; and any row that becomes completely full is folded into the new
// ClearedRows. The piece list is re-sorted so identity stays a pure
// function of the physical configuration.
func (b BrokenBoard) Place(p piece.Piece) BrokenBoard {
	new := BrokenBoard{
		Board:  board.Board(p.Place(uint64(b.Board))),
		Pieces: append([]BrokenPiece(nil), b.Pieces...),
	}

	clearedCount := uint(bits.OnesCount8(b.ClearedRows))

	minoes := p.AsBoard() >> (clearedCount * 10)
	field := (uint64(b.Board) >> (clearedCount * 10)) | minoes

	var rowMask uint64 = 0x3FF
	var rows uint8

	for row := 0; row <= 3; row++ {
		rowBit := uint8(1 << uint(row))
		if b.ClearedRows&rowBit != 0 {
			new.ClearedRows |= rowBit
			continue
		}
		if minoes&rowMask != 0 {
			rows |= rowBit
		}
		if field&rowMask == rowMask {
			new.ClearedRows |= rowBit
		}
		rowMask <<= 10
	}

	lowMino := uint8(bits.TrailingZeros64(minoes))%10 + uint8(bits.TrailingZeros8(rows))*10

	new.Pieces = append(new.Pieces, BrokenPiece{
		LowMino:     lowMino,
		Shape:       p.Shape,
		Orientation: p.Orientation.Canonical(p.Shape),
		Rows:        rows,
	})
	sort.Slice(new.Pieces, func(i, j int) bool { return new.Pieces[i].Less(new.Pieces[j]) })

	return new
}

// IsValid checks the structural invariants a decoded or hand-built
// BrokenBoard must satisfy: full rows sit at the bottom of Board, the
// number of cleared rows matches the number of full rows, and the pieces
// disjointly cover the non-garbage cells of the unpacked board.
func (b BrokenBoard) IsValid() bool {
	if b.Board != FromGarbage(uint64(b.Board)).Board {
		return false
	}

	fullLineCount := 0
	for i := 0; i < 4; i++ {
		row := uint64(0x3FF) << uint(10*i)
		if uint64(b.Board)&row != row {
			break
		}
		fullLineCount++
	}
	if fullLineCount != bits.OnesCount8(b.ClearedRows) {
		return false
	}

	remaining := uint64(b.ToBrokenBitboard())
	for _, p := range b.Pieces {
		pb := uint64(p.Board())
		if remaining&pb != pb {
			return false
		}
		remaining ^= pb
	}
	return true
}
