package surfarray

import (
	"github.com/banshee-data/trackgeom/binning"
	"github.com/banshee-data/trackgeom/geom"
)

// SurfaceID is a stable handle for a surface: its position in the slice
// handed to the builder. NoSurface marks an empty grid cell.
type SurfaceID int32

// NoSurface is the empty-cell sentinel.
const NoSurface SurfaceID = -1

// ElementID is a stable handle for a detector element, assigned by the
// caller. Surfaces without a readout element report NoElement.
type ElementID int32

// NoElement marks a surface with no associated detector element.
const NoElement ElementID = -1

// Surface is one flat or curved sensor boundary. Implementations are
// owned by the caller and must stay valid for the array's lifetime.
type Surface interface {
	// AnchorPosition returns the representative 3D point used to
	// classify the surface into a bin, for the given anchoring policy
	// (the builders ask for the radial reference, binning.CoordR).
	AnchorPosition(policy binning.Coord) geom.Vec

	// ElementID returns the handle of the backing detector element, or
	// NoElement for a purely geometric surface.
	ElementID() ElementID
}

// ElementStore holds the neighbour relations of detector elements as
// sets of element handles. The neighbour pass writes each element's set
// exactly once per occupied bin (a replace, not an accumulate); after
// construction the store is read-only.
type ElementStore struct {
	neighbours map[ElementID][]ElementID
}

// NewElementStore returns an empty store.
func NewElementStore() *ElementStore {
	return &ElementStore{neighbours: make(map[ElementID][]ElementID)}
}

// SetNeighbours replaces the neighbour set of id.
func (s *ElementStore) SetNeighbours(id ElementID, neighbours []ElementID) {
	s.neighbours[id] = neighbours
}

// Neighbours returns the registered neighbour set of id, nil if none.
func (s *ElementStore) Neighbours(id ElementID) []ElementID {
	return s.neighbours[id]
}

// Len returns the number of elements with a registered neighbour set.
func (s *ElementStore) Len() int { return len(s.neighbours) }
