package pixify

// Grid is a fixed-size, row-major 2D array.
type Grid[T any] struct {
	w, h  int
	cells []T
}

// NewGrid allocates a w×h grid filled with fill.
func NewGrid[T any](w, h int, fill T) *Grid[T] {
	w, h = max(w, 0), max(h, 0)
	g := &Grid[T]{w: w, h: h, cells: make([]T, w*h)}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

func (g *Grid[T]) Width() int  { return g.w }
func (g *Grid[T]) Height() int { return g.h }

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y). Out-of-bounds reads return the zero value and false.
func (g *Grid[T]) At(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[y*g.w+x], true
}

// Set writes the cell at (x, y). Out-of-bounds writes are dropped.
func (g *Grid[T]) Set(x, y int, v T) {
	if g.InBounds(x, y) {
		g.cells[y*g.w+x] = v
	}
}

// GridEqual reports whether both grids have the same size and cells.
func GridEqual[T comparable](a, b *Grid[T]) bool {
	if a.w != b.w || a.h != b.h {
		return false
	}
	for i := range a.cells {
		if a.cells[i] != b.cells[i] {
			return false
		}
	}
	return true
}
