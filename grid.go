package vane

import (
	"fmt"
	"math"
)

// Size3 holds the integer extents of a flow field grid.
// A size with any zero dimension is valid and describes an empty grid.
type Size3 struct {
	X, Y, Z uint32
}

// Count returns the number of texels in a grid of this size. The count
// must fit in int; Count panics on extents large enough to overflow it,
// which lie far beyond any allocatable grid.
func (s Size3) Count() int {
	n := uint64(s.X) * uint64(s.Y)
	if s.Z != 0 && n > math.MaxInt/uint64(s.Z) {
		panic(fmt.Sprintf("vane: grid size %v overflows texel count", s))
	}
	return int(n * uint64(s.Z))
}

// IsEmpty returns true if any dimension is zero.
func (s Size3) IsEmpty() bool {
	return s.X == 0 || s.Y == 0 || s.Z == 0
}

// Center returns the grid center in grid units.
func (s Size3) Center() Vec3 {
	return Vec3{
		X: float32(s.X) / 2,
		Y: float32(s.Y) / 2,
		Z: float32(s.Z) / 2,
	}
}

// Coord addresses a single texel within a flow field grid.
// A coordinate is in range when c.X < size.X, c.Y < size.Y and c.Z < size.Z.
type Coord struct {
	X, Y, Z uint32
}

// index maps a grid coordinate to a flat texel index using the canonical
// row-major layout: x varies fastest, then y, then z. This matches the
// bytes-per-row / rows-per-image layout the render package uploads, so a
// texel's flat position and its GPU sampling position always agree.
func (s Size3) index(c Coord) int {
	if c.X >= s.X || c.Y >= s.Y || c.Z >= s.Z {
		panic(fmt.Sprintf("vane: coordinate %v out of range for grid size %v", c, s))
	}
	return int(c.X) + int(s.X)*(int(c.Y)+int(s.Y)*int(c.Z))
}
