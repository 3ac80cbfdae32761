package queue_test

import (
	"testing"

	"github.com/herohde/pc4l/pkg/piece"
	"github.com/herohde/pc4l/pkg/queue"
	"github.com/stretchr/testify/assert"
)

func sevenBag() queue.Bag {
	return queue.NewBag(piece.All[:], 7)
}

func TestInitHoldCoversEveryShape(t *testing.T) {
	b := sevenBag()
	states := b.InitHold()
	assert.Len(t, states, 7)

	seen := map[piece.Shape]bool{}
	for _, s := range states {
		held, ok := s.Hold()
		assert.True(t, ok)
		seen[held] = true
	}
	assert.Len(t, seen, 7)
}

func TestTakeConsumesAvailableShape(t *testing.T) {
	b := sevenBag()
	start := queue.QueueState(b.Full)

	next, ok := start.Take(b, piece.T)
	assert.True(t, ok)

	// Taking the same shape again still succeeds as long as another slot of
	// that shape remains; a bag built from piece.All has exactly one slot
	// per shape, so a second Take of T must fail.
	_, ok = next.Take(b, piece.T)
	assert.False(t, ok)
}

func TestSwapRoundTrip(t *testing.T) {
	b := sevenBag()
	start := queue.QueueState(b.Full)

	swapped, ok := start.Swap(b, piece.I)
	assert.True(t, ok)
	held, ok := swapped.Hold()
	assert.True(t, ok)
	assert.Equal(t, piece.I, held)

	swapped2, ok := swapped.Swap(b, piece.O)
	assert.True(t, ok)
	held2, ok := swapped2.Hold()
	assert.True(t, ok)
	assert.Equal(t, piece.O, held2)
}

func TestNextRefillsBagKeepingHold(t *testing.T) {
	b := sevenBag()
	start := queue.QueueState(b.Full)
	swapped, ok := start.Swap(b, piece.S)
	assert.True(t, ok)

	refilled := swapped.Next(b)
	held, ok := refilled.Hold()
	assert.True(t, ok)
	assert.Equal(t, piece.S, held)
}

func TestBagTakeDedupesAndDispatches(t *testing.T) {
	b := sevenBag()
	initial := b.InitHold()

	states := b.Take(initial, piece.T, false, true)
	assert.NotEmpty(t, states)

	seen := map[queue.QueueState]bool{}
	for _, s := range states {
		assert.False(t, seen[s], "expected deduplicated results")
		seen[s] = true
	}
}
