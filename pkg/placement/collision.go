package placement

import (
	"github.com/herohde/pc4l/pkg/piece"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// Collision holds precomputed per-(shape, orientation) data used to test
// viable and placeable positions: four mino shifts, a row mask that clears
// positions whose piece would cross the right wall, and a shift amount that
// clears positions whose piece would peek above the playable field.
type Collision struct {
	shifts         [4]uint
	mask           uint64
	placeableShift uint
}

// MakeCollision derives a Collision from four mino coordinates (col, row),
// given for a piece at bounding-box origin (0, 0).
func MakeCollision(minoes [4][2]uint8) Collision {
	shifts := [4]uint{}
	var rowMask uint64 = ^uint64(0)
	var maxRow uint8
	for i, m := range minoes {
		shifts[i] = uint(m[0]) + uint(m[1])*10
		rowMask &= FULL10 >> m[0]
		maxRow = mathx.Max(maxRow, m[1])
	}
	return Collision{
		shifts:         shifts,
		mask:           replicateRow(rowMask),
		placeableShift: 24 + 10*uint(maxRow),
	}
}

// Viable returns every position where, if the piece were teleported there,
// none of its minoes would overlap a filled board cell.
func (c Collision) Viable(b uint64) PVec {
	collisions := b>>c.shifts[0] | b>>c.shifts[1] | b>>c.shifts[2] | b>>c.shifts[3]
	return PVec(^collisions & c.mask)
}

// Placeable cuts a reachable set down to positions that rest on something
// (the position directly below is not reachable) and stay within the
// bottom four rows.
func (c Collision) Placeable(reachable PVec) PVec {
	grounded := uint64(reachable) &^ (uint64(reachable) << 10)
	return PVec(grounded << c.placeableShift >> c.placeableShift)
}

// Kicks holds precomputed per-kick-offset rotation amounts and wraparound
// masks for one (shape, orientation, direction) rotation. Because a kick
// may move a piece up or down, offsets are applied as bit rotations rather
// than shifts: rotating a row up is rotate-left by 10, down is rotate-left
// by 54; the inverse direction is always the matching rotate-right.
type Kicks struct {
	rotates []uint8
	masks   []uint64
}

// MakeKicks derives a Kicks table from a list of (col, row) kick offsets.
func MakeKicks(offsets []piece.Offset) Kicks {
	rotates := make([]uint8, len(offsets))
	masks := make([]uint64, len(offsets))
	for i, o := range offsets {
		rowMask := shiftLeftSigned(FULL10, o.Col) & FULL10
		boardMask := shiftLeftSigned(replicateRow(rowMask), o.Row*10) & FULL60
		signedShift := int(o.Col) + int(o.Row)*10
		rotates[i] = uint8(((signedShift % 64) + 64) % 64)
		masks[i] = boardMask
	}
	return Kicks{rotates: rotates, masks: masks}
}

func rotl64(x uint64, k uint8) uint64 {
	k &= 63
	return (x << k) | (x >> (64 - k))
}

func rotr64(x uint64, k uint8) uint64 {
	k &= 63
	return (x >> k) | (x << (64 - k))
}

// KickCW performs every kick in this table, in order, from the reachable
// positions of the initial orientation towards the viable positions of the
// clockwise target orientation. Because every kick is applied regardless of
// whether an earlier one already succeeded, successful kicks are removed
// from the "from" set before trying the next offset, so later offsets never
// re-kick positions a prior offset already placed.
func (k Kicks) KickCW(start PVec, targetViable PVec) PVec {
	from := uint64(start)
	var to uint64
	mask := uint64(targetViable)

	for i := range k.rotates {
		kicked := rotl64(from, k.rotates[i]) & k.masks[i] & mask
		from ^= rotr64(kicked, k.rotates[i])
		to |= kicked
	}
	return PVec(to)
}

// KickCCW is KickCW's mirror: self is indexed by the *final* orientation,
// and offsets are subtracted rather than added, so the rotation is undone
// with a rotate-right before masking.
func (k Kicks) KickCCW(start PVec, targetViable PVec) PVec {
	from := uint64(start)
	var to uint64
	mask := uint64(targetViable)

	for i := range k.rotates {
		kicked := rotr64(from&k.masks[i], k.rotates[i]) & mask
		from ^= rotl64(kicked, k.rotates[i])
		to |= kicked
	}
	return PVec(to)
}
