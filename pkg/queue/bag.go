// Package queue implements the piece-supply state machine: a Bag describing
// which shapes remain in a draw pool, and QueueState tracking a particular
// path through that pool plus an optional held shape.
package queue

import "github.com/herohde/pc4l/pkg/piece"

// Bag describes a piece-supply pool: count is how many pieces will be drawn
// from it, full is a bitmask over up to 13 slots marking every slot of the
// bag (QueueState tracks which are still available), and masks[s] is the
// subset of full belonging to shape s. The
// masks are disjoint and their union is full; count never exceeds
// popcount(full).
type Bag struct {
	Count uint8
	Full  uint16
	Masks [7]uint16
}

// NewBag builds a Bag from an explicit shape sequence (its slots) and the
// number of pieces that will actually be drawn from it.
func NewBag(shapes []piece.Shape, count uint8) Bag {
	b := Bag{Count: count, Full: uint16(1<<uint(len(shapes))) - 1}
	for i, s := range shapes {
		b.Masks[s] |= 1 << uint(i)
	}
	return b
}

// InitHold returns up to seven QueueStates, one for every shape that could
// be swapped into an empty hold from this bag.
func (b Bag) InitHold() []QueueState {
	initial := QueueState(b.Full)
	var out []QueueState
	for _, s := range piece.All {
		if qs, ok := initial.Swap(b, s); ok {
			out = append(out, qs)
		}
	}
	return out
}

// Take advances every queue state in queues by one piece of the given
// shape: each queue optionally refills from the bag first (if this is the
// first piece drawn from it); then, if the queue's current hold matches
// shape, every possible hold swap is enumerated; otherwise, if holding is
// allowed, the shape is simply consumed. Results are deduplicated.
func (b Bag) Take(queues []QueueState, shape piece.Shape, isFirst, canHold bool) []QueueState {
	var states []QueueState
	contains := func(q QueueState) bool {
		for _, s := range states {
			if s == q {
				return true
			}
		}
		return false
	}

	for _, q := range queues {
		if isFirst {
			q = q.Next(b)
		}

		if held, ok := q.Hold(); ok && held == shape {
			for _, swapShape := range piece.All {
				if n, ok := q.Swap(b, swapShape); ok && !contains(n) {
					states = append(states, n)
				}
			}
		} else if canHold {
			if n, ok := q.Take(b, shape); ok && !contains(n) {
				states = append(states, n)
			}
		}
	}
	return states
}

// QueueState packs the currently-held shape (or "none", in the top 3 bits)
// together with a 13-bit mask of the bag slots still available.
type QueueState uint16

const noHold = 7 // 3-bit "no shape held" sentinel

// Hold returns the currently held shape, if any.
func (q QueueState) Hold() (piece.Shape, bool) {
	idx := uint8(q >> 13)
	if idx >= noHold {
		return 0, false
	}
	return piece.Shape(idx), true
}

// Next refills the remaining-bag bits from a fresh bag, keeping the hold
// bits unchanged. Used when a queue state crosses into the first piece of a
// new bag.
func (q QueueState) Next(bag Bag) QueueState {
	return QueueState(uint16(q)&0b1110000000000000 | bag.Full)
}

// Take consumes the lowest still-available slot belonging to shape,
// reporting ok=false if no such slot remains.
func (q QueueState) Take(bag Bag, shape piece.Shape) (QueueState, bool) {
	field := uint16(q) & bag.Masks[shape]
	if field == 0 {
		return 0, false
	}
	next := field & (field - 1)
	return QueueState(uint16(q) ^ field ^ next), true
}

// Swap consumes a slot of shape (as Take does) and then writes shape into
// the hold bits, reporting ok=false if no slot of that shape remains.
func (q QueueState) Swap(bag Bag, shape piece.Shape) (QueueState, bool) {
	n, ok := q.Take(bag, shape)
	if !ok {
		return 0, false
	}
	n &= 0b0001111111111111
	n |= QueueState(shape) << 13
	return n, true
}
