package brokenboard_test

import (
	"testing"

	"github.com/herohde/pc4l/pkg/bitcodec"
	"github.com/herohde/pc4l/pkg/brokenboard"
	"github.com/herohde/pc4l/pkg/piece"
	"github.com/stretchr/testify/assert"
)

// TestSupportingQueuesGoldenRegression pins a known-good BrokenBoard encoding
// and checks that it decodes and has a non-empty, deduplicated set of
// supporting queues under SRS.
func TestSupportingQueuesGoldenRegression(t *testing.T) {
	bits, ok := bitcodec.Base64Decode("E8______PA6DanAZIGlR_OET0wsMcXkDB.o")
	if !ok {
		t.Fatal("golden input failed to base64-decode")
	}

	bb, ok := brokenboard.Decode(bits)
	if !ok {
		t.Fatal("golden input failed to decode as a BrokenBoard")
	}

	queues := bb.SupportingQueues(piece.SRS)
	assert.NotEmpty(t, queues)

	seen := map[string]bool{}
	for _, q := range queues {
		key := q.String()
		assert.False(t, seen[key], "expected deduplicated supporting queues")
		seen[key] = true
	}
}

func TestEmptyIsValid(t *testing.T) {
	b := brokenboard.Empty()
	assert.True(t, b.IsValid())
	assert.True(t, b.Board == 0)
}

func TestFromGarbageClearsFullRows(t *testing.T) {
	fullRow := uint64(0x3FF)
	b := brokenboard.FromGarbage(fullRow)
	assert.Equal(t, uint8(1), b.ClearedRows)
	assert.True(t, b.IsValid())
}

func TestPlaceTracksBrokenIdentity(t *testing.T) {
	b := brokenboard.Empty()
	p := piece.Piece{Shape: piece.O, Orientation: piece.North}

	b2 := b.Place(p)
	assert.Len(t, b2.Pieces, 1)
	assert.True(t, b2.IsValid())
	assert.Equal(t, piece.O, b2.Pieces[0].Shape)
}

func TestPlaceOrderIndependence(t *testing.T) {
	o := piece.Piece{Shape: piece.O, Orientation: piece.North}
	l := piece.Piece{Shape: piece.O, Col: 2, Orientation: piece.North}

	b1 := brokenboard.Empty().Place(o).Place(l)
	b2 := brokenboard.Empty().Place(l).Place(o)

	assert.Equal(t, b1.Board, b2.Board)
	assert.Equal(t, b1.Pieces, b2.Pieces)
}

func TestPlaceableRejectsAlreadyPresentPiece(t *testing.T) {
	o := piece.Piece{Shape: piece.O, Orientation: piece.North}
	b := brokenboard.Empty().Place(o)

	_, ok := b.Placeable(b.Pieces[0])
	assert.False(t, ok)
}

func TestPlaceableReconstructsPlacement(t *testing.T) {
	b := brokenboard.Empty()
	p := piece.Piece{Shape: piece.O, Orientation: piece.North}

	placed := b.Place(p)
	identity := placed.Pieces[0]

	reconstructed, ok := b.Placeable(identity)
	assert.True(t, ok)
	assert.True(t, reconstructed.CanPlace(uint64(b.Board)))
	assert.Contains(t, b.Place(reconstructed).Pieces, identity)
}

func TestSupportingQueuesFindsTrivialSingleShapeBoard(t *testing.T) {
	b := brokenboard.Empty().Place(piece.Piece{Shape: piece.O, Orientation: piece.North})

	queues := b.SupportingQueues(piece.SRS)
	assert.NotEmpty(t, queues)
	for _, q := range queues {
		shapes := q.Shapes()
		assert.Len(t, shapes, 1)
		assert.Equal(t, piece.O, shapes[0])
	}
}

func TestRenderShowsShapeLettersAndEmptyCells(t *testing.T) {
	b := brokenboard.Empty().Place(piece.Piece{Shape: piece.O, Orientation: piece.North})
	out := b.Render()
	assert.Contains(t, out, "O")
	assert.Contains(t, out, "_")
}
