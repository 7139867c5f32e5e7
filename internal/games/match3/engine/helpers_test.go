package engine

import (
	"math/rand"
	"testing"
)

// baseGrid returns an n×n board where no two neighbors share a color:
// cell (r, c) has color (r + 2c) mod 5.
func baseGrid(n int) *Grid {
	g := NewGrid(n)
	g.Fill(func(c Coord) Cell {
		return Normal(Color((c.Row + 2*c.Col) % 5))
	})
	return g
}

// mustParse parses a board or fails the test.
func mustParse(t *testing.T, text string) *Grid {
	t.Helper()
	g, err := ParseGrid(text)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	return g
}

// mustSet sets a cell or fails the test.
func mustSet(t *testing.T, g *Grid, c Coord, cell Cell) {
	t.Helper()
	if err := g.Set(c, cell); err != nil {
		t.Fatalf("Set(%v) failed: %v", c, err)
	}
}

// mustGet reads a cell or fails the test.
func mustGet(t *testing.T, g *Grid, c Coord) Cell {
	t.Helper()
	cell, err := g.Get(c)
	if err != nil {
		t.Fatalf("Get(%v) failed: %v", c, err)
	}
	return cell
}

// fixedSpawn always returns the same tile.
func fixedSpawn(cell Cell) func() Cell {
	return func() Cell { return cell }
}

// randomGrid fills an n×n board with independent tiles, including specials.
func randomGrid(rng *rand.Rand, n, colors int) *Grid {
	g := NewGrid(n)
	g.Fill(func(Coord) Cell {
		if rng.Intn(20) == 0 {
			return Special(SpecialKind(1 + rng.Intn(3)))
		}
		return Normal(Color(rng.Intn(colors)))
	})
	return g
}

// newTestEngine wraps a grid with default options.
func newTestEngine(t *testing.T, g *Grid, seed int64) *Engine {
	t.Helper()
	opts := DefaultOptions()
	opts.Seed = seed
	e, err := NewWithGrid(g, opts)
	if err != nil {
		t.Fatalf("NewWithGrid failed: %v", err)
	}
	return e
}

// assertStable fails if the grid has empties or matches.
func assertStable(t *testing.T, g *Grid) {
	t.Helper()
	if n := g.EmptyCount(); n != 0 {
		t.Errorf("expected no empty cells, got %d\n%s", n, g)
	}
	if m := FindMatches(g); len(m) != 0 {
		t.Errorf("expected stable board, got %d matches\n%s", len(m), g)
	}
}
