// Package solver implements the perfect-clear search: given a starting
// (possibly garbage-filled) board, a sequence of bags describing the piece
// supply, and whether holding is allowed, it enumerates every way to clear
// the board completely.
package solver

import (
	"context"
	"fmt"
	"sort"

	"github.com/herohde/pc4l/pkg/board"
	"github.com/herohde/pc4l/pkg/brokenboard"
	"github.com/herohde/pc4l/pkg/piece"
	"github.com/herohde/pc4l/pkg/placement"
	"github.com/herohde/pc4l/pkg/queue"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

// key builds a comparable identity for a BrokenBoard (whose Pieces slice
// keeps it from being usable as a map key directly). Pieces is already
// kept sorted by BrokenBoard.Place, so this is a pure function of the
// physical configuration.
func key(b brokenboard.BrokenBoard) string {
	return fmt.Sprintf("%d|%d|%v", b.Board, b.ClearedRows, b.Pieces)
}

func sortBrokenBoards(bs []brokenboard.BrokenBoard) {
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].Board != bs[j].Board {
			return bs[i].Board < bs[j].Board
		}
		return key(bs[i]) < key(bs[j])
	})
}

type scanEntry struct {
	queues []queue.QueueState
	preds  []board.Board
}

type scanStage map[board.Board]*scanEntry

// legalBoards restricts which boards a placement may land on; a nil or
// empty set means no restriction (every board is legal).
type legalBoards map[board.Board]struct{}

func (lb legalBoards) allows(b board.Board) bool {
	if len(lb) == 0 {
		return true
	}
	_, ok := lb[b]
	return ok
}

func scan(ctx context.Context, legal legalBoards, start board.Board, bags []queue.Bag, pieceCount int, canHold, placeLast bool, physics piece.Physics) []scanStage {
	var stages []scanStage

	prev := scanStage{start: {queues: bags[0].InitHold()}}

	stageNum := 0
	for _, step := range bagSteps(bags)[1:] {
		next := scanStage{}

		for oldBoard, entry := range prev {
			for _, shape := range piece.All {
				newQueues := step.bag.Take(entry.queues, shape, step.isFirst, canHold)
				if len(newQueues) == 0 {
					continue
				}

				positions := placement.Place(oldBoard, shape, physics).Canonical()
				for {
					_, newBoard, ok := positions.Next()
					if !ok {
						break
					}
					if !legal.allows(newBoard) {
						continue
					}

					e := next[newBoard]
					if e == nil {
						e = &scanEntry{}
						next[newBoard] = e
					}
					if !containsBoard(e.preds, oldBoard) {
						e.preds = append(e.preds, oldBoard)
					}
					for _, q := range newQueues {
						if !containsQueueState(e.queues, q) {
							e.queues = append(e.queues, q)
						}
					}
				}
			}
		}

		stages = append(stages, prev)
		prev = next
		stageNum++
		logw.Infof(ctx, "solver scan stage %d/%d: %d boards", stageNum, pieceCount, len(prev))
	}

	if placeLast {
		next := scanStage{}

		for oldBoard, entry := range prev {
			for _, shape := range piece.All {
				if !anyHolds(entry.queues, shape) {
					continue
				}

				positions := placement.Place(oldBoard, shape, physics).Canonical()
				for {
					_, newBoard, ok := positions.Next()
					if !ok {
						break
					}
					if !legal.allows(newBoard) {
						continue
					}

					e := next[newBoard]
					if e == nil {
						e = &scanEntry{}
						next[newBoard] = e
					}
					if !containsBoard(e.preds, oldBoard) {
						e.preds = append(e.preds, oldBoard)
					}
				}
			}
		}

		stages = append(stages, prev)
		prev = next
	}

	stages = append(stages, prev)
	return stages
}

func cull(stages []scanStage) map[board.Board]struct{} {
	culled := map[board.Board]struct{}{}

	if len(stages) == 0 {
		return culled
	}

	final := stages[len(stages)-1]
	for b, entry := range final {
		culled[b] = struct{}{}
		for _, p := range entry.preds {
			culled[p] = struct{}{}
		}
	}

	for i := len(stages) - 2; i >= 0; i-- {
		for b, entry := range stages[i] {
			if _, ok := culled[b]; ok {
				for _, p := range entry.preds {
					culled[p] = struct{}{}
				}
			}
		}
	}

	return culled
}

func place(ctx context.Context, culled map[board.Board]struct{}, start brokenboard.BrokenBoard, bags []queue.Bag, pieceCount int, canHold, placeLast bool, physics piece.Physics) map[string]brokenboard.BrokenBoard {
	type entry struct {
		board  brokenboard.BrokenBoard
		queues []queue.QueueState
	}

	prev := map[string]*entry{key(start): {board: start, queues: bags[0].InitHold()}}

	stageNum := 0
	for _, step := range bagSteps(bags)[1:] {
		next := map[string]*entry{}

		for _, e := range prev {
			for _, shape := range piece.All {
				newQueues := step.bag.Take(e.queues, shape, step.isFirst, canHold)
				if len(newQueues) == 0 {
					continue
				}

				positions := placement.Place(e.board.Board, shape, physics).Canonical()
				for {
					pc, newBoard, ok := positions.Next()
					if !ok {
						break
					}
					if _, ok := culled[newBoard]; !ok {
						continue
					}

					placed := e.board.Place(pc)
					k := key(placed)
					ne := next[k]
					if ne == nil {
						ne = &entry{board: placed}
						next[k] = ne
					}
					for _, q := range newQueues {
						if !containsQueueState(ne.queues, q) {
							ne.queues = append(ne.queues, q)
						}
					}
				}
			}
		}

		prev = next
		stageNum++
		logw.Infof(ctx, "solver place stage %d/%d: %d boards", stageNum, pieceCount, len(prev))
	}

	if placeLast {
		next := map[string]*entry{}

		for _, e := range prev {
			for _, shape := range piece.All {
				if !anyHolds(e.queues, shape) {
					continue
				}

				positions := placement.Place(e.board.Board, shape, physics).Canonical()
				for {
					pc, newBoard, ok := positions.Next()
					if !ok {
						break
					}
					if _, ok := culled[newBoard]; !ok {
						continue
					}

					placed := e.board.Place(pc)
					next[key(placed)] = &entry{board: placed}
				}
			}
		}

		prev = next
	}

	out := make(map[string]brokenboard.BrokenBoard, len(prev))
	for k, e := range prev {
		out[k] = e.board
	}
	return out
}

// Query gathers one solve request: the board to start from, the sequence
// of bags describing the piece supply, whether holding is allowed, the
// physics to place under, and an optional restriction to a precomputed set
// of legal boards (absent or empty means unrestricted).
type Query struct {
	LegalBoards lang.Optional[map[board.Board]struct{}]
	Start       brokenboard.BrokenBoard
	Bags        []queue.Bag
	CanHold     bool
	Physics     piece.Physics
}

// Solve runs the full scan/cull/place sweep and returns every BrokenBoard
// reachable from q.Start by placing every piece described by q.Bags, in
// order, restricted to q.LegalBoards when present and non-empty, sorted by
// board value. When placing every piece would put more than 40 minoes on
// the board, the last piece stays in hold and is not placed.
//
// If q.Bags is empty, Solve returns exactly [q.Start] (no pieces to place:
// the starting board is the only "solution").
func Solve(ctx context.Context, q Query) []brokenboard.BrokenBoard {
	if len(q.Bags) == 0 {
		return []brokenboard.BrokenBoard{q.Start}
	}

	legal, _ := q.LegalBoards.V()

	pieceCount := 0
	for _, b := range q.Bags {
		pieceCount += int(b.Count)
	}
	newMinoCount := pieceCount * 4
	placeLast := bits64OnesCount(uint64(q.Start.Board))+newMinoCount <= 40

	scanned := scan(ctx, legalBoards(legal), q.Start.Board, q.Bags, pieceCount, q.CanHold, placeLast, q.Physics)
	culled := cull(scanned)
	placed := place(ctx, culled, q.Start, q.Bags, pieceCount, q.CanHold, placeLast, q.Physics)

	solutions := make([]brokenboard.BrokenBoard, 0, len(placed))
	for _, bb := range placed {
		solutions = append(solutions, bb)
	}
	sortBrokenBoards(solutions)
	return solutions
}

type bagStep struct {
	bag     queue.Bag
	isFirst bool
}

func bagSteps(bags []queue.Bag) []bagStep {
	var steps []bagStep
	for _, b := range bags {
		for i := uint8(0); i < b.Count; i++ {
			steps = append(steps, bagStep{bag: b, isFirst: i == 0})
		}
	}
	return steps
}

func containsBoard(bs []board.Board, b board.Board) bool {
	for _, x := range bs {
		if x == b {
			return true
		}
	}
	return false
}

func containsQueueState(qs []queue.QueueState, q queue.QueueState) bool {
	for _, x := range qs {
		if x == q {
			return true
		}
	}
	return false
}

func anyHolds(qs []queue.QueueState, shape piece.Shape) bool {
	for _, q := range qs {
		if held, ok := q.Hold(); ok && held == shape {
			return true
		}
	}
	return false
}

func bits64OnesCount(v uint64) int {
	n := 0
	for v != 0 {
		v &= v - 1
		n++
	}
	return n
}
