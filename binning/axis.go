// Package binning describes how a cylindrical or disc-shaped detector
// layer is cut into a grid of bins, and maps 3D positions to integer bin
// indices. An Axis bins one local coordinate (azimuth, radius, z, ...);
// a Scheme is an ordered stack of up to three axes plus an optional
// rigid transform applied to positions before binning.
package binning

import (
	"math"

	"github.com/banshee-data/trackgeom/geom"
)

// Boundary selects how an axis treats values outside its range.
type Boundary int

const (
	// Open clamps out-of-range values to the first or last bin.
	Open Boundary = iota
	// Closed wraps across the boundary, modulo the bin count. Used for
	// full azimuthal coverage where the first and last bin are adjacent.
	Closed
)

// Coord names the local coordinate an axis bins, derived from a 3D
// position. CoordR doubles as the anchor-position policy handed to
// surfaces: "give me your radial reference point".
type Coord int

const (
	CoordX Coord = iota
	CoordY
	CoordZ
	CoordR   // transverse radius, hypot(x, y)
	CoordPhi // azimuth, atan2(y, x), in (-pi, pi]
)

// Axis is one binning dimension: Bins equal-width bins covering
// [Min, Max) with the given boundary policy.
//
// Axis performs no validation; a zero bin count or an inverted range is
// rejected by the array builders before an Axis is ever constructed.
type Axis struct {
	Bins     int
	Min, Max float64
	Boundary Boundary
	Coord    Coord
}

// Width returns the width of a single bin.
func (a Axis) Width() float64 {
	return (a.Max - a.Min) / float64(a.Bins)
}

// Center returns a representative coordinate for the bin's interior, the
// midpoint of its sub-range. It is used as a proxy position for distance
// computations during grid completion.
func (a Axis) Center(bin int) float64 {
	return a.Min + (float64(bin)+0.5)*a.Width()
}

// Index maps a local coordinate value to a bin index. Closed axes wrap
// modulo the bin count; open axes clamp to [0, Bins-1]. A single-bin
// axis is a pass-through: every value lands in bin 0.
func (a Axis) Index(value float64) int {
	if a.Bins <= 1 {
		return 0
	}
	bin := int(math.Floor((value - a.Min) / a.Width()))
	if a.Boundary == Closed {
		bin %= a.Bins
		if bin < 0 {
			bin += a.Bins
		}
		return bin
	}
	if bin < 0 {
		return 0
	}
	if bin >= a.Bins {
		return a.Bins - 1
	}
	return bin
}

// Coordinate derives this axis's local coordinate from a 3D position.
func (a Axis) Coordinate(p geom.Vec) float64 {
	switch a.Coord {
	case CoordPhi:
		return math.Atan2(p.Y, p.X)
	case CoordR:
		return math.Hypot(p.X, p.Y)
	case CoordZ:
		return p.Z
	case CoordY:
		return p.Y
	default:
		return p.X
	}
}
