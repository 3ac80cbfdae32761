package solver_test

import (
	"context"
	"testing"

	"github.com/herohde/pc4l/pkg/board"
	"github.com/herohde/pc4l/pkg/boardgraph"
	"github.com/herohde/pc4l/pkg/brokenboard"
	"github.com/herohde/pc4l/pkg/piece"
	"github.com/herohde/pc4l/pkg/queue"
	"github.com/herohde/pc4l/pkg/solver"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
)

func toSet(boards []board.Board) map[board.Board]struct{} {
	set := make(map[board.Board]struct{}, len(boards))
	for _, b := range boards {
		set[b] = struct{}{}
	}
	return set
}

func TestSolveEmptyQueueReturnsStartUnchanged(t *testing.T) {
	start := brokenboard.Empty()

	solutions := solver.Solve(context.Background(), solver.Query{
		Start:   start,
		Physics: piece.SRS,
	})

	assert.Equal(t, []brokenboard.BrokenBoard{start}, solutions)
}

func TestSolveTenPieceQueueFillsBoardCompletely(t *testing.T) {
	legal := toSet(boardgraph.Compute(context.Background(), 4))

	bags := []queue.Bag{
		queue.NewBag(piece.All[:], 7),
		queue.NewBag(piece.All[:], 3),
	}

	solutions := solver.Solve(context.Background(), solver.Query{
		LegalBoards: lang.Some(legal),
		Start:       brokenboard.Empty(),
		Bags:        bags,
		CanHold:     true,
		Physics:     piece.SRS,
	})

	assert.NotEmpty(t, solutions)
	for _, sol := range solutions {
		assert.Len(t, sol.Pieces, 10)
		assert.Equal(t, board.Full, sol.Board)
	}
}

func TestSolveGarbageClearWithSingleIPiece(t *testing.T) {
	start := brokenboard.FromGarbage(0x3FF)
	bags := []queue.Bag{queue.NewBag([]piece.Shape{piece.I}, 1)}

	solutions := solver.Solve(context.Background(), solver.Query{
		Start:   start,
		Bags:    bags,
		CanHold: false,
		Physics: piece.SRS,
	})

	assert.NotEmpty(t, solutions)
	for _, sol := range solutions {
		assert.Equal(t, uint8(0b0001), sol.ClearedRows)
		assert.Len(t, sol.Pieces, 1)
		assert.Equal(t, piece.I, sol.Pieces[0].Shape)
	}
}
