package brokenboard

import "strings"

// Render draws b as a 4x10 ASCII grid, bottom row last: each cell shows the
// shape letter of the piece occupying it, 'G' for an unattributed (garbage)
// filled cell, or '_' for empty.
func (b BrokenBoard) Render() string {
	bits := uint64(b.ToBrokenBitboard())

	var sb strings.Builder
	for row := 3; row >= 0; row-- {
		for col := 0; col < 10; col++ {
			sb.WriteByte(b.cellAt(row, col, bits))
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b BrokenBoard) cellAt(row, col int, bits uint64) byte {
	for _, p := range b.Pieces {
		if uint64(p.Board())&(1<<uint(row*10+col)) != 0 {
			return p.Shape.String()[0]
		}
	}
	if bits&(1<<uint(row*10+col)) != 0 {
		return 'G'
	}
	return '_'
}
