// Package query translates loosely-typed external input — a physics tag,
// bag description strings, a garbage integer or base64-encoded starting
// board, a legal-board list — into a solver.Query, the one typed request
// the core solver understands. It is the single place decode errors are
// turned into an empty result instead of a panic.
package query

import (
	"github.com/herohde/pc4l/pkg/bitcodec"
	"github.com/herohde/pc4l/pkg/board"
	"github.com/herohde/pc4l/pkg/brokenboard"
	"github.com/herohde/pc4l/pkg/piece"
	"github.com/herohde/pc4l/pkg/queue"
	"github.com/herohde/pc4l/pkg/solver"
	"github.com/seekerror/stdlib/pkg/lang"
)

// BagSpec is the external description of one bag: a string of shape
// letters (subset of IJLOSTZ, each at most once) and how many pieces are
// actually drawn from it.
type BagSpec struct {
	Shapes string
	Count  uint8
}

// Request gathers every external input needed to build a solver.Query.
// Exactly one of Garbage or StartEncoded should be set; StartEncoded takes
// precedence when both are present. LegalBoards is optional: an absent or
// empty slice means unrestricted.
type Request struct {
	Physics      string
	Garbage      uint64
	StartEncoded string
	Bags         []BagSpec
	CanHold      bool
	LegalBoards  []board.Board
}

// Resolve decodes req into a solver.Query, reporting ok=false on any
// malformed input: an unrecognised physics tag, a bag description with
// invalid or duplicate shape letters or a count exceeding its shape list,
// or an undecodable StartEncoded board.
func Resolve(req Request) (solver.Query, bool) {
	physics, ok := piece.ParsePhysics(req.Physics)
	if !ok {
		return solver.Query{}, false
	}

	start := brokenboard.FromGarbage(req.Garbage)
	if req.StartEncoded != "" {
		bits, ok := bitcodec.Base64Decode(req.StartEncoded)
		if !ok {
			return solver.Query{}, false
		}
		start, ok = brokenboard.Decode(bits)
		if !ok {
			return solver.Query{}, false
		}
	}

	bags := make([]queue.Bag, 0, len(req.Bags))
	for _, spec := range req.Bags {
		b, ok := parseBag(spec)
		if !ok {
			return solver.Query{}, false
		}
		bags = append(bags, b)
	}

	q := solver.Query{
		Start:   start,
		Bags:    bags,
		CanHold: req.CanHold,
		Physics: physics,
	}
	if len(req.LegalBoards) > 0 {
		set := make(map[board.Board]struct{}, len(req.LegalBoards))
		for _, b := range req.LegalBoards {
			set[b] = struct{}{}
		}
		q.LegalBoards = lang.Some(set)
	}
	return q, true
}

// parseBag validates and converts one BagSpec: every character of Shapes
// must parse as a distinct piece.Shape, Shapes must be no longer than 13
// slots, and Count must not exceed len(Shapes).
func parseBag(spec BagSpec) (queue.Bag, bool) {
	if len(spec.Shapes) == 0 || len(spec.Shapes) > 13 {
		return queue.Bag{}, false
	}
	if int(spec.Count) > len(spec.Shapes) {
		return queue.Bag{}, false
	}

	shapes := make([]piece.Shape, 0, len(spec.Shapes))
	seen := map[piece.Shape]bool{}
	for i := 0; i < len(spec.Shapes); i++ {
		s, ok := piece.ParseShape(spec.Shapes[i])
		if !ok || seen[s] {
			return queue.Bag{}, false
		}
		seen[s] = true
		shapes = append(shapes, s)
	}

	return queue.NewBag(shapes, spec.Count), true
}
