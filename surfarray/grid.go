package surfarray

// Grid is a dense 3D container of surface handles. The shape is fixed at
// construction; axis 0 varies fastest in the flat cell slice, matching
// the axis order of the scheme that produced the bin triples.
type Grid struct {
	shape [3]int
	cells []SurfaceID
}

// NewGrid returns a grid of the given shape with every cell empty.
func NewGrid(shape [3]int) *Grid {
	g := &Grid{
		shape: shape,
		cells: make([]SurfaceID, shape[0]*shape[1]*shape[2]),
	}
	for i := range g.cells {
		g.cells[i] = NoSurface
	}
	return g
}

func (g *Grid) idx(t [3]int) int {
	return (t[2]*g.shape[1]+t[1])*g.shape[0] + t[0]
}

// At returns the handle stored at the bin triple.
func (g *Grid) At(t [3]int) SurfaceID { return g.cells[g.idx(t)] }

// Set stores a handle at the bin triple, overwriting any previous one.
func (g *Grid) Set(t [3]int, id SurfaceID) { g.cells[g.idx(t)] = id }

// Shape returns the grid dimensions.
func (g *Grid) Shape() [3]int { return g.shape }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Filled returns the number of non-empty cells.
func (g *Grid) Filled() int {
	n := 0
	for _, id := range g.cells {
		if id != NoSurface {
			n++
		}
	}
	return n
}
