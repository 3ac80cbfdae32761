package boardgraph

import (
	"math/bits"
	"testing"

	"github.com/herohde/pc4l/pkg/board"
	"github.com/herohde/pc4l/pkg/concurrent"
	"github.com/stretchr/testify/assert"
)

// TestExpandFromEmptyOnlyProducesOnePieceBoards is a white-box regression
// test for a tier-conflation bug: a stage's map must hold only the boards
// expand() writes into it (here, one-piece boards reachable from the
// empty board), never the seed board itself. A stray seed key would get
// picked up as a "previous stage" board on the next iteration and
// re-expanded, corrupting every later stage's tier with a mix of two
// piece counts.
func TestExpandFromEmptyOnlyProducesOnePieceBoards(t *testing.T) {
	m := concurrent.NewShardedMapN[board.Board, []board.Board](hashBoard, defaultShardBits)

	expand(board.Empty, m)

	assert.Positive(t, m.Len())

	_, seeded := m.Get(board.Empty)
	assert.False(t, seeded, "expand must not leave the seed board itself as a key")

	m.Freeze().Range(func(b board.Board, preds []board.Board) bool {
		assert.Equal(t, 4, bits.OnesCount64(uint64(b)), "one-piece board must have exactly 4 minoes")
		assert.Equal(t, []board.Board{board.Empty}, preds)
		return true
	})
}
