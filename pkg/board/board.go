// Package board implements the packed 4-row x 10-column playing field and
// the two pruning predicates used throughout graph construction.
package board

import (
	"fmt"
	"math/bits"
)

// Board is a packed bit representation of the four playable rows. Bit i
// corresponds to cell (row=i/10, col=i%10); bit 0 is the bottom-left cell.
// Only the low 40 bits are ever set; the upper 24 bits stay clear.
type Board uint64

// Mask covers every bit a valid Board may use.
const Mask uint64 = 0b1111111111_1111111111_1111111111_1111111111

// Empty is the board with no filled cells.
const Empty Board = 0

// Full is the board with every cell filled.
const Full Board = Board(Mask)

// Get reports whether the cell at (row, col) is filled. Requires 0 <= col <= 9
// and 0 <= row <= 3.
func (b Board) Get(row, col int) bool {
	return b&(1<<(row*10+col)) != 0
}

// HasIsolatedCell reports whether some column has at least one empty cell
// that is bounded on both horizontal sides by filled cells or a wall.
//
// After any future line clears such a cell can only ever be filled by a
// vertical I piece dropped into a completely empty column; if the column
// already has a filled cell, that can never happen, so the board is dead.
func (b Board) HasIsolatedCell() bool {
	v := uint64(b)

	full := (v >> 30) & (v >> 20) & (v >> 10) & v
	notEmpty := (v >> 30) | (v >> 20) | (v >> 10) | v

	const edgeCol = 0b0000000001_0000000001_0000000001_0000000001
	leftBounded := (v << 1) | edgeCol
	rightBounded := (v >> 1) | (edgeCol << 9)

	boundedCells := (leftBounded & rightBounded) | v
	bounded := (boundedCells >> 30) & (boundedCells >> 20) & (boundedCells >> 10) & boundedCells

	return (notEmpty & ^full & bounded) != 0
}

// HasImbalancedSplit reports whether some pair of adjacent columns c, c+1
// (1 <= c <= 7) has a filled cell in every row, splitting the board into a
// left and right section that can never exchange empty cells, where the
// left section's empty-cell count is not a multiple of four.
//
// Only columns 1..7 need checking: splits at columns 0 or 8 are already
// covered by HasIsolatedCell.
func (b Board) HasImbalancedSplit() bool {
	const col0 = 0b1_0000000001_0000000001_0000000001
	cols := [8]uint64{}
	left := [8]uint64{}
	cols[0] = col0
	left[0] = col0
	for c := 1; c <= 7; c++ {
		cols[c] = col0 << uint(c)
		left[c] = left[c-1] | cols[c]
	}

	v := uint64(b)
	for c := 1; c <= 7; c++ {
		if (v|(v>>1))&cols[c] != cols[c] {
			continue
		}
		if bits.OnesCount64(v&left[c])%4 != 0 {
			return true
		}
	}
	return false
}

// String renders the board as a 4x10 grid, top row first, for debugging
// and test failure output.
func (b Board) String() string {
	s := make([]byte, 0, 44)
	for row := 3; row >= 0; row-- {
		for col := 0; col < 10; col++ {
			if b.Get(row, col) {
				s = append(s, '#')
			} else {
				s = append(s, '.')
			}
		}
		s = append(s, '\n')
	}
	return string(s)
}

// GoString supports %#v formatting with the raw bit value alongside the grid.
func (b Board) GoString() string {
	return fmt.Sprintf("board.Board(0x%010X)\n%v", uint64(b), b)
}
