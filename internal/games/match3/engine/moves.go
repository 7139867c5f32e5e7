package engine

import "math/rand"

// Move is a pick sequence that makes progress: either swap A with B, or
// activate the special at A.
type Move struct {
	A, B     Coord
	Activate bool
}

// FindMove returns the first productive move in row-major order. Swaps are
// preferred over activations so hints point at ordinary play first.
func FindMove(g *Grid) (Move, bool) {
	var special *Coord
	for row := range g.n {
		for col := range g.n {
			a := At(row, col)
			if g.at(row, col).IsSpecial() && special == nil {
				special = &a
			}
			for _, b := range []Coord{At(row, col+1), At(row+1, col)} {
				if !g.InBounds(b) {
					continue
				}
				if swapMakesRun(g, a, b) {
					return Move{A: a, B: b}, true
				}
			}
		}
	}
	if special != nil {
		return Move{A: *special, Activate: true}, true
	}
	return Move{}, false
}

// HasMove reports whether any productive move exists.
func HasMove(g *Grid) bool {
	_, ok := FindMove(g)
	return ok
}

// swapMakesRun tries a swap in place and undoes it. Specials cannot be swapped
// because picking one activates it.
func swapMakesRun(g *Grid, a, b Coord) bool {
	ca, cb := g.at(a.Row, a.Col), g.at(b.Row, b.Col)
	if ca == cb || !ca.IsNormal() || !cb.IsNormal() {
		return false
	}
	g.put(a.Row, a.Col, cb)
	g.put(b.Row, b.Col, ca)
	ok := createsRun(g, a) || createsRun(g, b)
	g.put(a.Row, a.Col, ca)
	g.put(b.Row, b.Col, cb)
	return ok
}

// fillClean assigns a color to every cell that keep rejects (or every cell
// when keep is nil) so that no new run of MinRun forms with the cells to the
// left or above. Needs at least MinRun colors.
func fillClean(g *Grid, rng *rand.Rand, colors int, keep func(Cell) bool) {
	allowed := make([]Color, 0, colors)
	for row := range g.n {
		for col := range g.n {
			if keep != nil && keep(g.at(row, col)) {
				continue
			}
			allowed = allowed[:0]
			for i := range colors {
				candidate := Normal(Color(i))
				if col >= 2 && g.at(row, col-1).Matches(candidate) && g.at(row, col-2).Matches(candidate) {
					continue
				}
				if row >= 2 && g.at(row-1, col).Matches(candidate) && g.at(row-2, col).Matches(candidate) {
					continue
				}
				allowed = append(allowed, Color(i))
			}
			g.put(row, col, Normal(allowed[rng.Intn(len(allowed))]))
		}
	}
}

// shuffleAttempts bounds the permutations tried before the board is refilled.
const shuffleAttempts = 100

// Shuffle rearranges the normal tiles so the board has no match and at least
// one move. Specials stay in place. If no permutation works the normal tiles
// are redrawn from the palette instead. The score is unchanged.
func (e *Engine) Shuffle() {
	var slots []Coord
	var tiles []Cell
	for row := range e.grid.n {
		for col := range e.grid.n {
			if cell := e.grid.at(row, col); cell.IsNormal() {
				slots = append(slots, At(row, col))
				tiles = append(tiles, cell)
			}
		}
	}
	e.hasSelection = false

	for range shuffleAttempts {
		e.rng.Shuffle(len(tiles), func(i, j int) {
			tiles[i], tiles[j] = tiles[j], tiles[i]
		})
		for i, c := range slots {
			e.grid.put(c.Row, c.Col, tiles[i])
		}
		if !HasMatch(e.grid) && HasMove(e.grid) {
			return
		}
	}

	for range shuffleAttempts {
		fillClean(e.grid, e.rng, e.opts.Colors, Cell.IsSpecial)
		if HasMove(e.grid) {
			return
		}
	}
}

// Hint returns a productive move on the current board.
func (e *Engine) Hint() (Move, bool) {
	return FindMove(e.grid)
}

// HasMove reports whether the current board has a productive move.
func (e *Engine) HasMove() bool {
	return HasMove(e.grid)
}
