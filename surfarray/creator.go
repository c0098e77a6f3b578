package surfarray

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/trackgeom/binning"
	"github.com/banshee-data/trackgeom/geom"
	"github.com/banshee-data/trackgeom/internal/monitoring"
)

// CreatorConfig controls the optional construction passes.
type CreatorConfig struct {
	// SkipCompletion leaves empty bins empty instead of filling them
	// with their nearest surface. Mainly for inspecting raw placement.
	SkipCompletion bool
	// SkipNeighbours disables detector-element neighbour registration.
	SkipNeighbours bool
}

// DefaultCreatorConfig returns the standard configuration: both passes on.
func DefaultCreatorConfig() CreatorConfig { return CreatorConfig{} }

// Creator builds surface arrays for cylindrical and disc layers. The
// element store receives the neighbour relations of the surfaces'
// detector elements; it may be nil when neighbour registration is
// skipped or no surface carries an element.
type Creator struct {
	cfg   CreatorConfig
	store *ElementStore
}

// NewCreator returns a Creator writing neighbour relations into store.
func NewCreator(cfg CreatorConfig, store *ElementStore) *Creator {
	return &Creator{cfg: cfg, store: store}
}

// OnCylinder builds a surface array on a cylinder of the given radius,
// binned in phi (closed, wrapping) times z (open, clamping). trf may be
// nil. The surfaces must outlive the array; construction is
// all-or-nothing and never returns a partial array.
func (c *Creator) OnCylinder(surfaces []Surface, radius, minPhi, maxPhi, halfZ float64, binsPhi, binsZ int, trf *geom.Transform) (*Array, error) {
	switch {
	case len(surfaces) == 0:
		return nil, fmt.Errorf("cylinder array needs at least one surface")
	case radius <= 0:
		return nil, fmt.Errorf("cylinder radius must be positive, got %v", radius)
	case minPhi >= maxPhi:
		return nil, fmt.Errorf("inverted phi range [%v, %v]", minPhi, maxPhi)
	case halfZ <= 0:
		return nil, fmt.Errorf("cylinder half-length must be positive, got %v", halfZ)
	case binsPhi < 1 || binsZ < 1:
		return nil, fmt.Errorf("bin counts must be at least 1, got phi=%d z=%d", binsPhi, binsZ)
	}
	monitoring.Logf("surfarray: creating array on cylinder, grid phi x z = %d x %d", binsPhi, binsZ)

	scheme := binning.NewScheme(trf,
		binning.Axis{Bins: binsPhi, Min: minPhi, Max: maxPhi, Boundary: binning.Closed, Coord: binning.CoordPhi},
		binning.Axis{Bins: binsZ, Min: -halfZ, Max: halfZ, Boundary: binning.Open, Coord: binning.CoordZ},
	)
	grid := NewGrid(scheme.Shape())

	// Representative 3D point per bin, on the cylinder at the bin centre.
	phiAxis, zAxis := scheme.Axis(0), scheme.Axis(1)
	centers := make([]geom.Vec, grid.Len())
	for iz := 0; iz < binsZ; iz++ {
		z := zAxis.Center(iz)
		for iphi := 0; iphi < binsPhi; iphi++ {
			phi := phiAxis.Center(iphi)
			centers[iz*binsPhi+iphi] = geom.Vec{X: radius * math.Cos(phi), Y: radius * math.Sin(phi), Z: z}
		}
	}

	populate(scheme, grid, surfaces)
	return c.finish(scheme, grid, centers, surfaces)
}

// OnDisc builds a surface array on a disc layer, binned in r (open, or a
// single pass-through bin when binsR is 1) times phi (closed). The disc
// has no z extent of its own, so the z used for bin-centre positions is
// the mean anchor z of the input surfaces; classification ignores z.
func (c *Creator) OnDisc(surfaces []Surface, minR, maxR, minPhi, maxPhi float64, binsR, binsPhi int, trf *geom.Transform) (*Array, error) {
	switch {
	case len(surfaces) == 0:
		return nil, fmt.Errorf("disc array needs at least one surface")
	case minR < 0 || minR >= maxR:
		return nil, fmt.Errorf("invalid radial range [%v, %v]", minR, maxR)
	case minPhi >= maxPhi:
		return nil, fmt.Errorf("inverted phi range [%v, %v]", minPhi, maxPhi)
	case binsR < 1 || binsPhi < 1:
		return nil, fmt.Errorf("bin counts must be at least 1, got r=%d phi=%d", binsR, binsPhi)
	}
	monitoring.Logf("surfarray: creating array on disc, grid r x phi = %d x %d", binsR, binsPhi)

	scheme := binning.NewScheme(trf,
		binning.Axis{Bins: binsR, Min: minR, Max: maxR, Boundary: binning.Open, Coord: binning.CoordR},
		binning.Axis{Bins: binsPhi, Min: minPhi, Max: maxPhi, Boundary: binning.Closed, Coord: binning.CoordPhi},
	)
	grid := NewGrid(scheme.Shape())

	populate(scheme, grid, surfaces)

	// Shared z for all bin-centre positions: mean of the anchor z values.
	zs := make([]float64, len(surfaces))
	for i, sf := range surfaces {
		zs[i] = sf.AnchorPosition(binning.CoordR).Z
	}
	z := stat.Mean(zs, nil)
	monitoring.Logf("surfarray: disc z position estimated as %v", z)

	rAxis, phiAxis := scheme.Axis(0), scheme.Axis(1)
	centers := make([]geom.Vec, grid.Len())
	for iphi := 0; iphi < binsPhi; iphi++ {
		phi := phiAxis.Center(iphi)
		for ir := 0; ir < binsR; ir++ {
			r := rAxis.Center(ir)
			centers[iphi*binsR+ir] = geom.Vec{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
		}
	}

	return c.finish(scheme, grid, centers, surfaces)
}

// populate classifies every surface by its radial anchor position and
// stores its handle. Two surfaces landing in the same bin are not
// diagnosed: the later one silently overwrites the earlier.
func populate(scheme *binning.Scheme, grid *Grid, surfaces []Surface) {
	for i, sf := range surfaces {
		triple := scheme.BinTriple(sf.AnchorPosition(binning.CoordR))
		grid.Set(triple, SurfaceID(i))
	}
}

func (c *Creator) finish(scheme *binning.Scheme, grid *Grid, centers []geom.Vec, surfaces []Surface) (*Array, error) {
	if !c.cfg.SkipCompletion {
		completeBinning(centers, surfaces, grid)
	}
	arr := &Array{
		scheme:   scheme,
		grid:     grid,
		surfaces: append([]Surface(nil), surfaces...),
	}
	if !c.cfg.SkipNeighbours && c.store != nil {
		registerNeighbourhood(arr, c.store)
	}
	return arr, nil
}

// completeBinning assigns every bin the surface nearest to its
// representative position, so that no cell is left empty. The scan does
// not skip already-filled bins: a previous assignment is overwritten
// whenever a geometrically closer surface exists, so the pass is not
// idempotent. Equal distances resolve to the first surface in input
// order. Brute force, O(bins x surfaces).
//
// When the bin count equals the surface count the pass assumes a perfect
// one-to-one placement and returns immediately. That assumption is not
// verified: a bin collision paired with an empty bin yields the same
// counts and is wrongly treated as fully populated. Kept as-is; see
// DESIGN.md before changing, since a filled-cell count would alter
// observable behaviour.
func completeBinning(centers []geom.Vec, surfaces []Surface, grid *Grid) {
	nBins, nSurfaces := grid.Len(), len(surfaces)
	if nBins == nSurfaces {
		monitoring.Verbosef("surfarray: completion skipped, no empty bins expected")
		return
	}
	monitoring.Verbosef("surfarray: completing %d bins from %d surfaces", nBins, nSurfaces)

	anchors := make([]r3.Vec, nSurfaces)
	for i, sf := range surfaces {
		anchors[i] = sf.AnchorPosition(binning.CoordR)
	}

	for cell, pos := range centers {
		best, minPath := NoSurface, math.MaxFloat64
		for i := range anchors {
			if d := r3.Norm(r3.Sub(pos, anchors[i])); d < minPath {
				best, minPath = SurfaceID(i), d
			}
		}
		grid.cells[cell] = best
	}
	monitoring.Logf("surfarray: completion filled %d bins", nBins)
}

// registerNeighbourhood writes, for every occupied bin whose surface has
// a detector element, the distinct elements of the surrounding bin
// cluster into the store. The traversal runs axis 2, then axis 1, then
// axis 0 (z-major/phi-minor on a cylinder, phi-major/r-minor on a disc);
// if one surface occupies several bins the later registration replaces
// the earlier one.
func registerNeighbourhood(arr *Array, store *ElementStore) {
	monitoring.Logf("surfarray: registering neighbours on the detector elements")
	shape := arr.Shape()
	linked := 0
	for i2 := 0; i2 < shape[2]; i2++ {
		for i1 := 0; i1 < shape[1]; i1++ {
			for i0 := 0; i0 < shape[0]; i0++ {
				center := [3]int{i0, i1, i2}
				id := arr.grid.At(center)
				if id == NoSurface {
					continue
				}
				owner := arr.surfaces[id].ElementID()
				if owner == NoElement {
					continue
				}
				var neighbours []ElementID
				seen := make(map[ElementID]struct{})
				for _, nid := range arr.Cluster(center) {
					if nid == NoSurface || nid == id {
						continue
					}
					elem := arr.surfaces[nid].ElementID()
					if elem == NoElement || elem == owner {
						continue
					}
					if _, dup := seen[elem]; dup {
						continue
					}
					seen[elem] = struct{}{}
					neighbours = append(neighbours, elem)
					linked++
				}
				store.SetNeighbours(owner, neighbours)
			}
		}
	}
	monitoring.Logf("surfarray: neighbours set for this layer: %d", linked)
}
