// Package boardgraph precomputes the set of boards reachable by stacking
// exactly ten pieces from empty down to the full 40-cell field, one forward
// BFS stage per piece, pruned to boards that could plausibly lead to a
// perfect clear.
package boardgraph

import (
	"context"
	"sort"
	"time"

	"github.com/herohde/pc4l/internal/workerpool"
	"github.com/herohde/pc4l/pkg/board"
	"github.com/herohde/pc4l/pkg/concurrent"
	"github.com/herohde/pc4l/pkg/piece"
	"github.com/herohde/pc4l/pkg/placement"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const stages = 10

// defaultShardBits matches pkg/concurrent's own default; Options.ShardBits
// overrides it for callers who have a better estimate of per-stage board
// counts (more shards reduce lock contention at higher worker counts).
const defaultShardBits = 6

// Options tunes Compute. The zero Options is the sensible default.
type Options struct {
	ShardBits lang.Optional[uint]
}

func hashBoard(b board.Board) uint64 { return concurrent.HashUint64(uint64(b)) }

// Compute runs the full ten-stage forward/backward sweep and returns the
// sorted list of every board, from the empty board to the full board, that
// lies on some ten-piece path from empty to full (one piece per
// orientation-canonical Jstris/Tetrio placement, the union of which is a
// superset of every other supported physics), filtered at each step to
// boards with no isolated cell and no imbalanced split.
//
// Compute returns nil if ctx is cancelled.
func Compute(ctx context.Context, workers int) []board.Board {
	return ComputeWithOptions(ctx, workers, Options{})
}

// ComputeWithOptions is Compute with explicit shard-count tuning.
func ComputeWithOptions(ctx context.Context, workers int, opt Options) []board.Board {
	shardBits, ok := opt.ShardBits.V()
	if !ok {
		shardBits = defaultShardBits
	}
	if workers < 1 {
		workers = 1
	}

	type predMap = *concurrent.ShardedMap[board.Board, []board.Board]

	forward := make([]predMap, stages)
	for i := range forward {
		forward[i] = concurrent.NewShardedMapN[board.Board, []board.Board](hashBoard, shardBits)
	}

	frozen := make([]*concurrent.FrozenMap[board.Board, []board.Board], stages)

	prevBoards := []board.Board{board.Empty}

	done := iox.NewAsyncCloser()
	pulse := iox.NewPulse()
	go reportProgress(ctx, done, pulse)
	defer done.Close()

	for stage := 0; stage < stages; stage++ {
		this := forward[stage]
		logw.Infof(ctx, "board graph stage %d: expanding %d boards", stage, len(prevBoards))

		counter := concurrent.NewCounter(workers)
		workerpool.Run(ctx, workers, len(prevBoards), func(worker int, i int) {
			expand(prevBoards[i], this)
			counter.Add(worker, 1)
		})
		logw.Infof(ctx, "board graph stage %d: expanded %d boards", stage, counter.Sum())
		pulse.Emit()

		frozen[stage] = this.Freeze()
		forward[stage] = nil

		var next []board.Board
		frozen[stage].Range(func(b board.Board, _ []board.Board) bool {
			next = append(next, b)
			return true
		})
		prevBoards = next

		if contextx.IsCancelled(ctx) {
			return nil
		}
	}

	work := map[board.Board]struct{}{board.Full: {}}
	all := []board.Board{board.Full}

	for i := stages - 1; i >= 0; i-- {
		next := map[board.Board]struct{}{}
		for b := range work {
			preds, _ := frozen[i].Get(b)
			for _, p := range preds {
				next[p] = struct{}{}
			}
		}
		work = next
		for b := range work {
			all = append(all, b)
		}

		logw.Infof(ctx, "board graph stage %d: %d predecessor boards", i, len(work))
	}

	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// reportProgress logs a heartbeat each time pulse fires (once per
// completed stage) and on a one-minute fallback so a stalled stage is
// still visible, until done closes.
func reportProgress(ctx context.Context, done iox.AsyncCloser, pulse *iox.Pulse) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-pulse.Chan():
			logw.Debugf(ctx, "board graph: stage boundary reached")
		case <-ticker.C:
			logw.Debugf(ctx, "board graph: still running")
		case <-done.Closed():
			return
		}
	}
}

// expand places every shape on b under the union of Jstris and Tetrio
// physics (a superset of every other supported physics, so no placement is
// missed), records b as a predecessor of each resulting board that survives
// pruning, and skips boards already recorded as reachable from b.
func expand(b board.Board, into *concurrent.ShardedMap[board.Board, []board.Board]) {
	for _, shape := range piece.All {
		union := placement.Place(b, shape, piece.Jstris).Or(placement.Place(b, shape, piece.Tetrio)).Canonical()

		for {
			_, newBoard, ok := union.Next()
			if !ok {
				break
			}
			if newBoard.HasIsolatedCell() || newBoard.HasImbalancedSplit() {
				continue
			}

			into.Update(newBoard, func(preds []board.Board, existed bool) []board.Board {
				for _, p := range preds {
					if p == b {
						return preds
					}
				}
				return append(preds, b)
			})
		}
	}
}

