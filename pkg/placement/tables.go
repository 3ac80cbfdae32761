package placement

import "github.com/herohde/pc4l/pkg/piece"

// minoLiteral is a (col, row) mino coordinate relative to a piece's
// bounding-box origin, matching the convention used by piece.Shapes.
type minoLiteral = [2]uint8

// collisionMinoes lists, for every (shape, orientation), the four mino
// coordinates used to derive that slot's Collision.
var collisionMinoes = [7][4][4]minoLiteral{
	{ // I
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
	},
	{ // J
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
	{ // L
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {0, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	{ // O
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	{ // S
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	{ // T
		{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {0, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	{ // Z
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
}

// COLLISION is the compile-time-derived collision table for every tetromino,
// indexed first by piece.Shape then by piece.Orientation.
var COLLISION [7][4]Collision

func init() {
	for s := range collisionMinoes {
		for o := range collisionMinoes[s] {
			COLLISION[s][o] = MakeCollision(collisionMinoes[s][o])
		}
	}
}

// kicksTable holds, per physics variant, the quarter- and half-rotation
// kick tables for every (shape, orientation), built from piece's kick
// offset data so both packages agree on the same underlying numbers.
type kicksTable struct {
	quarter [7][4]Kicks
	half    [7][4]Kicks
}

var kicksByPhysics [3]kicksTable

func init() {
	for _, physics := range []piece.Physics{piece.SRS, piece.Jstris, piece.Tetrio} {
		var t kicksTable
		for s := piece.I; s <= piece.Z; s++ {
			for o := piece.North; o <= piece.West; o++ {
				t.quarter[s][o] = MakeKicks(piece.QuarterKickOffsets(physics, s, o))
				t.half[s][o] = MakeKicks(piece.HalfKickOffsets(physics, s, o))
			}
		}
		kicksByPhysics[physics] = t
	}
}

// QuarterKicks returns the quarter-rotation kick table for (physics, shape,
// orientation); orientation is the rotation's starting point for CW and its
// destination for CCW, matching piece.Piece.CW/CCW.
func QuarterKicks(physics piece.Physics, shape piece.Shape, o piece.Orientation) Kicks {
	return kicksByPhysics[physics].quarter[shape][o]
}

// HalfKicks returns the half-rotation kick table for (physics, shape,
// orientation). Empty (zero kick offsets) under SRS.
func HalfKicks(physics piece.Physics, shape piece.Shape, o piece.Orientation) Kicks {
	return kicksByPhysics[physics].half[shape][o]
}
