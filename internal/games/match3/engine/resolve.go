package engine

import "fmt"

// Score values.
const (
	PointsPerTile   = 10
	PointsClearer   = 50
	PointsBomb      = 100
	bombBlastRadius = 1
)

// Clear empties every matched cell and returns the score earned:
// PointsPerTile for each coordinate of each match. Special tiles are never
// cleared by a match; only activation removes them.
func Clear(g *Grid, matches []Match) int {
	score := 0
	for _, m := range matches {
		score += m.Len() * PointsPerTile
		for _, c := range m.Coords {
			if g.at(c.Row, c.Col).IsSpecial() {
				continue
			}
			g.put(c.Row, c.Col, Empty())
		}
	}
	return score
}

// Activate applies a special tile's effect centered at c and returns its bonus.
// Cells in the blast become empty, including other specials, whose effects do
// not fire. The bonus does not depend on how many cells were already empty.
func Activate(g *Grid, c Coord, kind SpecialKind) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: activate at %v", ErrOutOfBounds, c)
	}

	switch kind {
	case HorizontalClearer:
		for col := range g.n {
			g.put(c.Row, col, Empty())
		}
		return PointsClearer, nil

	case VerticalClearer:
		for row := range g.n {
			g.put(row, c.Col, Empty())
		}
		return PointsClearer, nil

	case Bomb:
		for dr := -bombBlastRadius; dr <= bombBlastRadius; dr++ {
			for dc := -bombBlastRadius; dc <= bombBlastRadius; dc++ {
				target := At(c.Row+dr, c.Col+dc)
				if g.InBounds(target) {
					g.put(target.Row, target.Col, Empty())
				}
			}
		}
		return PointsBomb, nil
	}

	return 0, nil
}
