package surfarray

import "testing"

func TestNewGrid(t *testing.T) {
	t.Parallel()

	g := NewGrid([3]int{4, 3, 1})
	if g.Len() != 12 {
		t.Fatalf("expected 12 cells, got %d", g.Len())
	}
	if g.Filled() != 0 {
		t.Errorf("new grid should be empty, %d cells filled", g.Filled())
	}
	for i2 := 0; i2 < 1; i2++ {
		for i1 := 0; i1 < 3; i1++ {
			for i0 := 0; i0 < 4; i0++ {
				if id := g.At([3]int{i0, i1, i2}); id != NoSurface {
					t.Errorf("cell (%d,%d,%d) not empty: %d", i0, i1, i2, id)
				}
			}
		}
	}
}

func TestGridSetAt(t *testing.T) {
	t.Parallel()

	g := NewGrid([3]int{4, 3, 2})
	g.Set([3]int{1, 2, 1}, 7)
	if got := g.At([3]int{1, 2, 1}); got != 7 {
		t.Errorf("expected handle 7, got %d", got)
	}
	if g.Filled() != 1 {
		t.Errorf("expected 1 filled cell, got %d", g.Filled())
	}

	// later write overwrites
	g.Set([3]int{1, 2, 1}, 9)
	if got := g.At([3]int{1, 2, 1}); got != 9 {
		t.Errorf("expected overwrite to 9, got %d", got)
	}
	if g.Filled() != 1 {
		t.Errorf("overwrite changed the filled count: %d", g.Filled())
	}
}

func TestGridAxisZeroFastest(t *testing.T) {
	t.Parallel()

	// Neighbouring axis-0 indices must be adjacent in the flat slice.
	g := NewGrid([3]int{5, 2, 1})
	a := g.idx([3]int{0, 0, 0})
	b := g.idx([3]int{1, 0, 0})
	c := g.idx([3]int{0, 1, 0})
	if b-a != 1 {
		t.Errorf("axis 0 stride = %d, want 1", b-a)
	}
	if c-a != 5 {
		t.Errorf("axis 1 stride = %d, want 5", c-a)
	}
}
