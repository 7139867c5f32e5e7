package engine

// ApplyGravity drops tiles into empty cells and refills the grid.
// Each column is processed bottom to top: an empty cell takes the nearest
// non-empty tile above it, and when none remains it is filled with spawn().
// After one call the grid has no empty cells.
func ApplyGravity(g *Grid, spawn func() Cell) {
	for col := range g.n {
		for row := g.n - 1; row >= 0; row-- {
			if !g.at(row, col).IsEmpty() {
				continue
			}
			for above := row - 1; above >= 0; above-- {
				if cell := g.at(above, col); !cell.IsEmpty() {
					g.put(row, col, cell)
					g.put(above, col, Empty())
					break
				}
			}
			if g.at(row, col).IsEmpty() {
				g.put(row, col, spawn())
			}
		}
	}
}
