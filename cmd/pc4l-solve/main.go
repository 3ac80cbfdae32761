// pc4l-solve enumerates perfect-clear solutions for a starting board and a
// piece queue, optionally restricted to a precomputed legal-board graph.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/herohde/pc4l/pkg/bitcodec"
	"github.com/herohde/pc4l/pkg/board"
	"github.com/herohde/pc4l/pkg/query"
	"github.com/herohde/pc4l/pkg/solver"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	physics = flag.String("physics", "SRS", "Rotation system: SRS, Jstris, or TETRIO")
	garbage = flag.Uint64("garbage", 0, "Starting garbage bitmask (ignored if -start is set)")
	start   = flag.String("start", "", "Base64-encoded starting BrokenBoard (overrides -garbage)")
	bags    = flag.String("bags", "", "Comma-separated bag descriptions, each shapes:count, e.g. IJLOSTZ:7,IJLOSTZ:3")
	hold    = flag.Bool("hold", true, "Allow holding a piece")
	legal   = flag.String("legal", "", "Path to a precomputed board-list file (default: unrestricted)")
	render  = flag.Bool("render", false, "Print solutions as ASCII grids instead of encoded bits")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: pc4l-solve [options]

pc4l-solve enumerates every way to place the given piece queue on the
given starting board, restricted to the given legal-board graph.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "pc4l-solve %v", version)

	bagSpecs, err := parseBags(*bags)
	if err != nil {
		logw.Exitf(ctx, "Invalid -bags: %v", err)
	}

	var legalBoards []board.Board
	if *legal != "" {
		f, err := os.Open(*legal)
		if err != nil {
			logw.Exitf(ctx, "Could not open %v: %v", *legal, err)
		}
		defer f.Close()

		legalBoards, err = bitcodec.ReadBoardList(f)
		if err != nil {
			logw.Exitf(ctx, "Could not read %v: %v", *legal, err)
		}
	}

	q, ok := query.Resolve(query.Request{
		Physics:      *physics,
		Garbage:      *garbage,
		StartEncoded: *start,
		Bags:         bagSpecs,
		CanHold:      *hold,
		LegalBoards:  legalBoards,
	})
	if !ok {
		logw.Exitf(ctx, "Invalid solve request")
	}

	solutions := solver.Solve(ctx, q)
	logw.Infof(ctx, "found %v solutions", len(solutions))

	for _, sol := range solutions {
		if *render {
			fmt.Println(sol.Render())
			fmt.Println()
			continue
		}
		fmt.Println(bitcodec.Base64Encode(sol.Encode()))
	}
}

func parseBags(s string) ([]query.BagSpec, error) {
	if s == "" {
		return nil, nil
	}

	var specs []query.BagSpec
	for _, part := range strings.Split(s, ",") {
		shapes, countStr, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("bag %q missing ':count'", part)
		}
		count, err := strconv.ParseUint(countStr, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("bag %q has invalid count: %w", part, err)
		}
		specs = append(specs, query.BagSpec{Shapes: shapes, Count: uint8(count)})
	}
	return specs, nil
}
