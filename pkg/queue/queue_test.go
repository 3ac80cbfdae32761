package queue_test

import (
	"sort"
	"testing"

	"github.com/herohde/pc4l/pkg/piece"
	"github.com/herohde/pc4l/pkg/queue"
	"github.com/stretchr/testify/assert"
)

func shapes(s ...piece.Shape) []piece.Shape { return s }

func TestQueuePushAndLen(t *testing.T) {
	q := queue.FromShapes(shapes(piece.I, piece.J, piece.L))
	assert.Equal(t, uint32(3), q.Len())
	assert.Equal(t, "IJL", q.String())

	q = q.PushFirst(piece.T)
	assert.Equal(t, "TIJL", q.String())

	q = q.PushSecond(piece.Z)
	assert.Equal(t, "TZIJL", q.String())

	q = q.PushLast(piece.O)
	assert.Equal(t, "TZIJLO", q.String())
}

func TestQueueEmpty(t *testing.T) {
	q := queue.Empty()
	assert.True(t, q.IsEmpty())
	assert.Equal(t, uint32(0), q.Len())
	assert.Equal(t, "", q.String())
}

func TestNaturalOrder(t *testing.T) {
	q := func(s ...piece.Shape) queue.Queue { return queue.FromShapes(s) }

	qs := []queue.Queue{
		q(piece.I, piece.I, piece.I, piece.I),
		q(piece.J, piece.I, piece.L),
		q(piece.I, piece.I, piece.L),
		q(piece.I, piece.J, piece.L),
		q(piece.J, piece.J, piece.J, piece.I),
		q(piece.T),
	}
	sort.Slice(qs, func(i, j int) bool { return qs[i].NaturalOrderKey() < qs[j].NaturalOrderKey() })

	expected := []queue.Queue{
		q(piece.I, piece.I, piece.I, piece.I),
		q(piece.I, piece.I, piece.L),
		q(piece.I, piece.J, piece.L),
		q(piece.J, piece.I, piece.L),
		q(piece.J, piece.J, piece.J, piece.I),
		q(piece.T),
	}
	assert.Equal(t, expected, qs)
}

func TestQueueReverse(t *testing.T) {
	reverseEq := func(a, b []piece.Shape) {
		qa := queue.FromShapes(a)
		qb := queue.FromShapes(b)
		assert.Equal(t, qb, qa.Reverse())
		assert.Equal(t, qa, qb.Reverse())
	}

	reverseEq(shapes(), shapes())
	reverseEq(shapes(piece.I), shapes(piece.I))
	reverseEq(
		shapes(piece.I, piece.J, piece.L, piece.O, piece.S, piece.T, piece.Z, piece.I, piece.J),
		shapes(piece.J, piece.I, piece.Z, piece.T, piece.S, piece.O, piece.L, piece.J, piece.I),
	)
	reverseEq(
		shapes(piece.I, piece.J, piece.L, piece.O, piece.S, piece.T, piece.Z, piece.I, piece.J, piece.L),
		shapes(piece.L, piece.J, piece.I, piece.Z, piece.T, piece.S, piece.O, piece.L, piece.J, piece.I),
	)
}

func TestUnholdMany(t *testing.T) {
	unholdLen := func(qs [][]piece.Shape, expected int) {
		queues := make([]queue.Queue, len(qs))
		for i, s := range qs {
			queues[i] = queue.FromShapes(s)
		}
		unheld := queue.UnholdMany(queues)
		assert.Len(t, unheld, expected)
	}

	unholdLen([][]piece.Shape{
		{piece.I, piece.I, piece.I, piece.I, piece.I, piece.I, piece.I, piece.I, piece.I, piece.T},
		{piece.J, piece.J, piece.J, piece.J, piece.J, piece.J, piece.J, piece.J, piece.J, piece.T},
	}, 10+10)

	unholdLen([][]piece.Shape{
		{piece.I, piece.J, piece.L},
		{piece.J, piece.I, piece.L},
	}, 6)

	unholdLen([][]piece.Shape{
		{piece.T},
		{piece.I, piece.T},
		{piece.I, piece.I, piece.T},
		{piece.I, piece.I, piece.I, piece.T},
	}, 1+2+3+4)
}

func TestQueueUnhold(t *testing.T) {
	q := queue.FromShapes(shapes(piece.I, piece.J))
	unheld := q.Unhold()
	assert.NotEmpty(t, unheld)
	for _, u := range unheld {
		assert.Equal(t, q.Len(), u.Len())
	}
}
