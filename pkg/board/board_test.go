package board_test

import (
	"testing"

	"github.com/herohde/pc4l/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestEmptyBoardHasNoIsolatedCellOrSplit(t *testing.T) {
	assert.False(t, board.Empty.HasIsolatedCell())
	assert.False(t, board.Empty.HasImbalancedSplit())
}

func TestFullBoardHasNoIsolatedCellOrSplit(t *testing.T) {
	assert.False(t, board.Full.HasIsolatedCell())
	assert.False(t, board.Full.HasImbalancedSplit())
}

func TestHasIsolatedCell(t *testing.T) {
	// Column 0 filled on rows 1-3 but empty on row 0, with column 1 fully
	// filled: the bottom-left cell is boxed in by the wall and a full
	// neighbour column, and its column already has filled cells, so it is
	// isolated.
	var b board.Board
	for row := 1; row < 4; row++ {
		b |= 1 << (row*10 + 0)
	}
	for row := 0; row < 4; row++ {
		b |= 1 << (row*10 + 1)
	}
	assert.True(t, b.HasIsolatedCell())
}

func TestHasImbalancedSplit(t *testing.T) {
	// Columns 4 and 5 filled in every row (a wall down the middle), with an
	// odd number of filled cells to the left -- not a multiple of four.
	var b board.Board
	for row := 0; row < 4; row++ {
		b |= 1 << (row*10 + 4)
		b |= 1 << (row*10 + 5)
	}
	b |= 1 << (0*10 + 0) // one extra filled cell on the left: 4+1=5, not a multiple of 4
	assert.True(t, b.HasImbalancedSplit())
}

func TestGetAndString(t *testing.T) {
	b := board.Board(1 | (1 << 11))
	assert.True(t, b.Get(0, 0))
	assert.True(t, b.Get(1, 1))
	assert.False(t, b.Get(0, 1))
	assert.Contains(t, b.String(), "#")
}
