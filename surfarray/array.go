package surfarray

import (
	"github.com/banshee-data/trackgeom/binning"
	"github.com/banshee-data/trackgeom/geom"
)

// Array bundles a populated grid with the scheme that indexes it. It is
// created once by a Creator and then treated as read-only.
type Array struct {
	scheme   *binning.Scheme
	grid     *Grid
	surfaces []Surface
}

// ObjectAt returns the surface occupying the bin triple, or (nil, false)
// for an empty cell.
func (a *Array) ObjectAt(t [3]int) (Surface, bool) {
	id := a.grid.At(t)
	if id == NoSurface {
		return nil, false
	}
	return a.surfaces[id], true
}

// SurfaceAt returns the handle occupying the bin triple (NoSurface if empty).
func (a *Array) SurfaceAt(t [3]int) SurfaceID { return a.grid.At(t) }

// BinTriple classifies a 3D position into this array's grid.
func (a *Array) BinTriple(p geom.Vec) [3]int { return a.scheme.BinTriple(p) }

// Shape returns the grid dimensions.
func (a *Array) Shape() [3]int { return a.grid.Shape() }

// Surface resolves a handle to the caller's surface.
func (a *Array) Surface(id SurfaceID) Surface { return a.surfaces[id] }

// Scheme returns the binning scheme of the array.
func (a *Array) Scheme() *binning.Scheme { return a.scheme }

// Cluster returns the handles of the 3x3(x3) bin neighbourhood centred
// on the triple, the centre cell included. Closed axes wrap across their
// boundary; open axes clamp, contributing no cells beyond the edge. On
// axes with fewer than three bins, wrapped indices that coincide are
// visited only once. Empty cells appear as NoSurface.
func (a *Array) Cluster(center [3]int) []SurfaceID {
	shape := a.grid.Shape()

	var steps [3][]int
	for ax := 0; ax < 3; ax++ {
		n := shape[ax]
		closed := ax < a.scheme.NAxes() && a.scheme.Axis(ax).Boundary == binning.Closed
		for d := -1; d <= 1; d++ {
			i := center[ax] + d
			if closed {
				i = ((i % n) + n) % n
			} else if i < 0 || i >= n {
				continue
			}
			if !containsInt(steps[ax], i) {
				steps[ax] = append(steps[ax], i)
			}
		}
	}

	cluster := make([]SurfaceID, 0, len(steps[0])*len(steps[1])*len(steps[2]))
	for _, i2 := range steps[2] {
		for _, i1 := range steps[1] {
			for _, i0 := range steps[0] {
				cluster = append(cluster, a.grid.At([3]int{i0, i1, i2}))
			}
		}
	}
	return cluster
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
