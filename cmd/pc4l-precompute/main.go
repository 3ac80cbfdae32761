// pc4l-precompute builds the legal-board graph: every board on some
// ten-piece path from the empty board to the full board, pruned to boards
// that could plausibly lead to a perfect clear. The result is a sorted board list
// consumed by pc4l-solve's -legal flag.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/herohde/pc4l/pkg/bitcodec"
	"github.com/herohde/pc4l/pkg/boardgraph"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

var (
	out     = flag.String("out", "", "Output board-list file (default stdout)")
	workers = flag.Int("workers", runtime.NumCPU(), "Number of worker goroutines")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: pc4l-precompute [options]

pc4l-precompute computes the legal-board graph and writes it as a sorted,
delta-varint-encoded board list.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "pc4l-precompute %v", version)

	if *workers <= 0 {
		logw.Exitf(ctx, "Invalid -workers: %v", *workers)
	}

	logw.Infof(ctx, "computing legal-board graph with %v workers", *workers)
	boards := boardgraph.Compute(ctx, *workers)
	logw.Infof(ctx, "computed %v legal boards", len(boards))

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			logw.Exitf(ctx, "Could not create %v: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	if err := bitcodec.WriteBoardList(w, boards); err != nil {
		logw.Exitf(ctx, "Could not write board list: %v", err)
	}
}
