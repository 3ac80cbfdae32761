package queue

import (
	"math/bits"
	"sort"
	"strings"

	"github.com/herohde/pc4l/pkg/piece"
)

// Queue is a sequence of up to 10 pieces packed 3 bits per slot, one-based
// (0 means "no shape"/end of queue) so the zero value is the empty queue.
// The integer can be used to refer to a queue by number, but is otherwise
// opaque.
type Queue uint32

// Empty is the queue with no pieces.
func Empty() Queue { return Queue(0) }

// IsEmpty reports whether q has no pieces.
func (q Queue) IsEmpty() bool { return q == 0 }

// PushFirst returns q with shape inserted as the new first piece.
func (q Queue) PushFirst(shape piece.Shape) Queue {
	new := uint32(shape) + 1
	rest := uint32(q) << 3
	return Queue(new | rest)
}

// PushSecond returns q with shape inserted as the new second piece. q must
// not be empty.
func (q Queue) PushSecond(shape piece.Shape) Queue {
	first := uint32(q) & 0b111
	new := (uint32(shape) + 1) << 3
	rest := (uint32(q) &^ 0b111) << 3
	return Queue(first | new | rest)
}

// PushLast returns q with shape appended as the new last piece.
func (q Queue) PushLast(shape piece.Shape) Queue {
	nextSlot := q.Len() * 3
	new := (uint32(shape) + 1) << nextSlot
	return Queue(uint32(q) | new)
}

// Len returns the number of pieces in q.
func (q Queue) Len() uint32 {
	if q == 0 {
		return 0
	}
	highestOne := 32 - uint32(bits.LeadingZeros32(uint32(q)))
	return (highestOne + 2) / 3
}

// String renders the shape names of q in order, e.g. "IJLOSTZ".
func (q Queue) String() string {
	var sb strings.Builder
	for _, s := range q.Shapes() {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Shapes drains q into a plain slice of shapes, in order.
func (q Queue) Shapes() []piece.Shape {
	var out []piece.Shape
	for {
		s, ok := q.Next()
		if !ok {
			break
		}
		out = append(out, s)
		q = q.rest()
	}
	return out
}

// Next reports the first shape in q, if any, without modifying q.
func (q Queue) Next() (piece.Shape, bool) {
	field := uint32(q) & 0b111
	if field == 0 {
		return 0, false
	}
	return piece.Shape(field - 1), true
}

func (q Queue) rest() Queue {
	return Queue(uint32(q) >> 3)
}

// FromShapes builds a Queue from an ordered slice of shapes, in the same
// order PushLast would build it, truncated to 10 pieces.
func FromShapes(shapes []piece.Shape) Queue {
	q := Empty()
	for _, s := range shapes {
		if q.Len() == 10 {
			break
		}
		q = q.PushLast(s)
	}
	return q
}

// Unhold treats q as the order in which pieces are placed and computes
// every queue which, played using hold freely, can be placed in q's order:
// the set of all queues usable as though they were q.
func (q Queue) Unhold() []Queue {
	shapes := q.Shapes()

	last := map[Queue]struct{}{}
	if len(shapes) == 0 {
		last[Empty()] = struct{}{}
	} else {
		tail := shapes[len(shapes)-1]
		shapes = shapes[:len(shapes)-1]
		last[Empty().PushFirst(tail)] = struct{}{}
	}

	for i := len(shapes) - 1; i >= 0; i-- {
		shape := shapes[i]
		next := map[Queue]struct{}{}
		for queue := range last {
			next[queue.PushFirst(shape)] = struct{}{}
			next[queue.PushSecond(shape)] = struct{}{}
		}
		last = next
	}

	out := make([]Queue, 0, len(last))
	for queue := range last {
		out = append(out, queue)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type unholdEntry struct {
	make Queue
	take Queue
}

// UnholdMany is Unhold applied independently to every queue in queues, with
// the results merged, deduplicated, and sorted by NaturalOrderKey. It is
// bucketed by length so that queues of different lengths never interfere,
// which is both faster and simpler than unioning per-queue Unhold results.
func UnholdMany(queues []Queue) []Queue {
	results := make([]map[unholdEntry]struct{}, 11)
	for i := range results {
		results[i] = map[unholdEntry]struct{}{}
	}

	for _, q := range queues {
		results[q.Len()][unholdEntry{make: Empty(), take: q.Reverse()}] = struct{}{}
	}

	for i := 10; i >= 1; i-- {
		for entry := range results[i] {
			take := entry.take
			shape, ok := take.Next()
			if !ok {
				continue
			}
			take = take.rest()

			results[i-1][unholdEntry{make: entry.make.PushFirst(shape), take: take}] = struct{}{}

			if !entry.make.IsEmpty() {
				results[i-1][unholdEntry{make: entry.make.PushSecond(shape), take: take}] = struct{}{}
			}
		}
	}

	out := make([]Queue, 0, len(results[0]))
	for entry := range results[0] {
		out = append(out, entry.make)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NaturalOrderKey() < out[j].NaturalOrderKey() })
	return out
}

// NaturalOrderKey returns a key under which queues sort lexicographically
// by shape, first piece first, with a queue sorting before any longer queue
// it is a prefix of. q's raw integer value does not sort this way because
// it keeps the first piece in the least significant digit. The key reverses
// the ten 3-bit (octal) digits of q so the first piece becomes the most
// significant digit and "end of queue" (0) sorts below every shape.
func (q Queue) NaturalOrderKey() uint32 {
	jihgfedcba := uint32(q)
	hgfedcba := jihgfedcba & 0o77777777

	dcba0000 := hgfedcba << 12 & 0o77770000
	hgfe := hgfedcba >> 12
	dcbahgfe := dcba0000 | hgfe

	bafe00 := dcbahgfe << 6 & 0o77007700
	dchg := dcbahgfe >> 6 & 0o00770077
	badcfehg := bafe00 | dchg

	badcfehgji := badcfehg<<6 | jihgfedcba>>24

	acegi0 := badcfehgji << 3 & 0o7070707070
	bdfhj := badcfehgji >> 3 & 0o0707070707
	abcdefghij := acegi0 | bdfhj

	return abcdefghij
}

// Reverse returns q with its pieces in reverse order.
func (q Queue) Reverse() Queue {
	x := q.NaturalOrderKey()
	return Queue(x >> (uint32(bits.TrailingZeros32(x)) / 3 * 3))
}
