package engine

import "fmt"

// Grid is a square matrix of cells stored in row-major order: index = row*n + col.
// It enforces bounds but no other invariant; callers keep the board legal.
type Grid struct {
	n     int
	cells []Cell
}

// NewGrid creates an n×n grid with every cell empty.
func NewGrid(n int) *Grid {
	return &Grid{
		n:     n,
		cells: make([]Cell, n*n),
	}
}

// GridFromRows builds a grid from rows of cells. Every row must have len(rows) cells.
func GridFromRows(rows [][]Cell) (*Grid, error) {
	g := NewGrid(len(rows))
	for r, row := range rows {
		if len(row) != g.n {
			return nil, fmt.Errorf("engine: row %d has %d cells, want %d", r, len(row), g.n)
		}
		copy(g.cells[r*g.n:(r+1)*g.n], row)
	}
	return g, nil
}

// Size returns the grid dimension N.
func (g *Grid) Size() int {
	return g.n
}

// InBounds returns true if the coordinate is inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.n && c.Col >= 0 && c.Col < g.n
}

func (g *Grid) index(c Coord) int {
	return c.Row*g.n + c.Col
}

// Get returns the cell at c.
func (g *Grid) Get(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Empty(), fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.n, g.n)
	}
	return g.cells[g.index(c)], nil
}

// Set replaces the cell at c.
func (g *Grid) Set(c Coord, cell Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.n, g.n)
	}
	g.cells[g.index(c)] = cell
	return nil
}

// Swap exchanges the contents of two cells. Nothing moves if either is out of bounds.
func (g *Grid) Swap(a, b Coord) error {
	if !g.InBounds(a) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, a, g.n, g.n)
	}
	if !g.InBounds(b) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, b, g.n, g.n)
	}
	ia, ib := g.index(a), g.index(b)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
	return nil
}

// at is the unchecked accessor used by the engine's own loops.
func (g *Grid) at(row, col int) Cell {
	return g.cells[row*g.n+col]
}

func (g *Grid) put(row, col int, cell Cell) {
	g.cells[row*g.n+col] = cell
}

// Fill sets every cell to the value returned by f.
func (g *Grid) Fill(f func(c Coord) Cell) {
	for row := range g.n {
		for col := range g.n {
			g.put(row, col, f(At(row, col)))
		}
	}
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.IsEmpty() {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{n: g.n, cells: cells}
}

// Equal returns true if two grids have the same size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.n != other.n {
		return false
	}
	for i, cell := range g.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}
