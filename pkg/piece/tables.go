package piece

// Shapes holds, for every (shape, orientation), the piece's minoes as a
// bitboard with the piece's bounding box at the origin. Indexed first by
// Shape, then by Orientation.
var Shapes = [7][4]uint64{
	{ // I
		0b1111,
		0b1000000000100000000010000000001,
		0b1111,
		0b1000000000100000000010000000001,
	},
	{ // J
		0b10000000111,
		0b1100000000010000000001,
		0b1110000000100,
		0b1000000000100000000011,
	},
	{ // L
		0b1000000000111,
		0b100000000010000000011,
		0b1110000000001,
		0b1100000000100000000010,
	},
	{ // O
		0b110000000011,
		0b110000000011,
		0b110000000011,
		0b110000000011,
	},
	{ // S
		0b1100000000011,
		0b100000000110000000010,
		0b1100000000011,
		0b100000000110000000010,
	},
	{ // T
		0b100000000111,
		0b100000000110000000001,
		0b1110000000010,
		0b1000000000110000000010,
	},
	{ // Z
		0b110000000110,
		0b1000000000110000000001,
		0b110000000110,
		0b1000000000110000000001,
	},
}

// MaxCols holds, for every (shape, orientation), the rightmost in-bounds
// column: one column further right would extend the piece past the wall.
var MaxCols = [7][4]int8{
	{6, 9, 6, 9}, // I
	{7, 8, 7, 8}, // J
	{7, 8, 7, 8}, // L
	{8, 8, 8, 8}, // O
	{7, 8, 7, 8}, // S
	{7, 8, 7, 8}, // T
	{7, 8, 7, 8}, // Z
}

// Offset is a kick displacement, measured the same way as a Piece's
// (Col, Row): relative to the bounding box origin, not a visual pivot.
type Offset struct {
	Col, Row int8
}

// quarterKicksJLSTZ is the SRS quarter-rotation kick table shared by J, L,
// S, T, and Z, since those shapes share a bounding box. Indexed by the
// orientation the piece rotates from (for CW) or to (for CCW).
var quarterKicksJLSTZ = [4][5]Offset{
	{{1, -1}, {0, -1}, {0, 0}, {1, -3}, {0, -3}},
	{{-1, 0}, {0, 0}, {0, -1}, {-1, 2}, {0, 2}},
	{{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{{0, 1}, {-1, 1}, {-1, 0}, {0, 3}, {-1, 3}},
}

// quarterKicksI is the SRS quarter-rotation kick table for the I piece.
var quarterKicksI = [4][5]Offset{
	{{2, -2}, {0, -2}, {3, -2}, {0, -3}, {3, 0}},
	{{-2, 1}, {-3, 1}, {0, 1}, {-3, 3}, {0, 0}},
	{{1, -1}, {3, -1}, {0, -1}, {3, 0}, {0, -3}},
	{{-1, 2}, {0, 2}, {-3, 2}, {0, 0}, {-3, 3}},
}

// quarterKicksITetrio is the SRS+ (TETRIO) quarter-rotation kick table for
// the I piece, which trades SRS's asymmetric wall kicks for a more
// intuitive set centred on the piece's bounding box.
var quarterKicksITetrio = [4][5]Offset{
	{{1, -1}, {0, -1}, {1, 0}, {0, -2}, {1, -2}},
	{{-1, 0}, {0, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{{0, 0}, {1, 0}, {0, 1}, {1, -2}, {0, -2}},
	{{0, 1}, {-1, 1}, {0, 0}, {-1, 3}, {0, 3}},
}

// quarterKicksO is the degenerate quarter-rotation table for O: since the
// O piece has fourfold symmetry it never needs to move to rotate.
var quarterKicksO = [4][5]Offset{
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
}

// QuarterKickOffsets returns the ordered kick offsets tried when rotating
// the given shape a quarter turn from the given starting orientation under
// the given physics. Exported so the vectorized placement engine can build
// its own PVec-level kick tables from the same source data used here.
func QuarterKickOffsets(physics Physics, shape Shape, from Orientation) []Offset {
	return quarterKicks(physics, shape, from)
}

// HalfKickOffsets returns the ordered kick offsets tried when rotating the
// given shape a half turn from the given starting orientation under the
// given physics (empty for SRS, which has no half rotation).
func HalfKickOffsets(physics Physics, shape Shape, from Orientation) []Offset {
	return halfKicks(physics, shape, from)
}

func quarterKicks(physics Physics, shape Shape, from Orientation) []Offset {
	switch shape {
	case I:
		if physics == Tetrio {
			return quarterKicksITetrio[from][:]
		}
		return quarterKicksI[from][:]
	case O:
		return quarterKicksO[from][:]
	default:
		return quarterKicksJLSTZ[from][:]
	}
}

// halfKicksJstrisJLSTZ is the two-offset half-rotation table Jstris adds on
// top of SRS for the asymmetric-bounding-box pieces.
var halfKicksJstrisJLSTZ = [4][2]Offset{
	{{0, 0}, {0, 1}},
	{{0, 0}, {-1, 0}},
	{{0, 0}, {0, -1}},
	{{0, 0}, {1, 0}},
}

var halfKicksJstrisI = [4][2]Offset{
	{{0, 0}, {0, 1}},
	{{0, 0}, {-1, 0}},
	{{0, 0}, {0, -1}},
	{{0, 0}, {1, 0}},
}

// halfKicksTetrioJLSTZ is the six-offset half-rotation table TETRIO adds on
// top of SRS+ for the asymmetric-bounding-box pieces.
var halfKicksTetrioJLSTZ = [4][6]Offset{
	{{0, 0}, {0, 1}, {1, 0}, {-1, 0}, {1, 1}, {-1, 1}},
	{{0, 0}, {-1, 0}, {0, 1}, {0, -1}, {-1, 1}, {-1, -1}},
	{{0, 0}, {0, -1}, {-1, 0}, {1, 0}, {-1, -1}, {1, -1}},
	{{0, 0}, {1, 0}, {0, -1}, {0, 1}, {1, -1}, {1, 1}},
}

var halfKicksTetrioI = halfKicksTetrioJLSTZ

var halfKicksEmpty = [4][0]Offset{}
var halfKicksO2 = [4][2]Offset{{{0, 0}, {0, 0}}, {{0, 0}, {0, 0}}, {{0, 0}, {0, 0}}, {{0, 0}, {0, 0}}}
var halfKicksO6 = [4][6]Offset{
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
}

func halfKicks(physics Physics, shape Shape, from Orientation) []Offset {
	switch physics {
	case SRS:
		return halfKicksEmpty[from][:]
	case Jstris:
		if shape == O {
			return halfKicksO2[from][:]
		}
		if shape == I {
			return halfKicksJstrisI[from][:]
		}
		return halfKicksJstrisJLSTZ[from][:]
	default: // Tetrio
		if shape == O {
			return halfKicksO6[from][:]
		}
		if shape == I {
			return halfKicksTetrioI[from][:]
		}
		return halfKicksTetrioJLSTZ[from][:]
	}
}
