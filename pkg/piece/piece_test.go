package piece_test

import (
	"testing"

	"github.com/herohde/pc4l/pkg/piece"
	"github.com/stretchr/testify/assert"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	for _, s := range piece.All {
		for o := piece.North; o <= piece.West; o++ {
			p := piece.Piece{Shape: s, Col: 3, Row: 2, Orientation: o}
			got, ok := piece.Unpack(p.Pack())
			assert.True(t, ok)
			assert.Equal(t, p, got)
		}
	}
}

func TestCanonicalIsIdempotent(t *testing.T) {
	for _, s := range piece.All {
		for o := piece.North; o <= piece.West; o++ {
			c1 := o.Canonical(s)
			c2 := c1.Canonical(s)
			assert.Equal(t, c1, c2)
		}
	}
}

func TestPieceSpawnCanPlaceOnEmptyBoard(t *testing.T) {
	for _, s := range piece.All {
		p := piece.New(s)
		for p.CanPlace(0) == false && p.Row > 0 {
			p = p.Down(0)
		}
		assert.True(t, p.CanPlace(0))
	}
}

func TestOPieceHasNoKicks(t *testing.T) {
	p := piece.Piece{Shape: piece.O, Col: 4, Row: 0, Orientation: piece.North}
	for _, ph := range []piece.Physics{piece.SRS, piece.Jstris, piece.Tetrio} {
		rotated := p.CW(0, ph)
		assert.Equal(t, p.Col, rotated.Col)
		assert.Equal(t, p.Row, rotated.Row)
	}
}

func TestParsePhysics(t *testing.T) {
	for _, s := range []string{"SRS", "Jstris", "TETRIO"} {
		_, ok := piece.ParsePhysics(s)
		assert.True(t, ok)
	}
	_, ok := piece.ParsePhysics("bogus")
	assert.False(t, ok)
}

func TestSRSHasNoHalfRotation(t *testing.T) {
	p := piece.Piece{Shape: piece.T, Col: 4, Row: 2, Orientation: piece.North}
	rotated := p.Half(0, piece.SRS)
	assert.Equal(t, p, rotated)
}
