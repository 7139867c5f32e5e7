package engine

// MinRun is the shortest run of identical tiles that counts as a match.
const MinRun = 3

// Orientation tells whether a match lies along a row or a column.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Match is a maximal run of at least MinRun identical tiles.
// Coords are ordered left to right or top to bottom.
type Match struct {
	Orientation Orientation
	Coords      []Coord
}

// Len returns the number of tiles in the match.
func (m Match) Len() int {
	return len(m.Coords)
}

// First returns the match's first coordinate, where promotions land.
func (m Match) First() Coord {
	return m.Coords[0]
}

// SameRow reports whether every coordinate shares the first coordinate's row.
func (m Match) SameRow() bool {
	for _, c := range m.Coords {
		if c.Row != m.Coords[0].Row {
			return false
		}
	}
	return true
}

// FindMatches scans rows left to right, then columns top to bottom, and returns
// every run of MinRun or more matching tiles. Horizontal and vertical matches are
// reported independently, so one tile can appear in two matches.
func FindMatches(g *Grid) []Match {
	var matches []Match

	for row := range g.n {
		start := 0
		for col := 1; col < g.n; col++ {
			if g.at(row, col).Matches(g.at(row, start)) {
				continue
			}
			if col-start >= MinRun {
				matches = append(matches, rowRun(row, start, col))
			}
			start = col
		}
		if g.n-start >= MinRun {
			matches = append(matches, rowRun(row, start, g.n))
		}
	}

	for col := range g.n {
		start := 0
		for row := 1; row < g.n; row++ {
			if g.at(row, col).Matches(g.at(start, col)) {
				continue
			}
			if row-start >= MinRun {
				matches = append(matches, colRun(col, start, row))
			}
			start = row
		}
		if g.n-start >= MinRun {
			matches = append(matches, colRun(col, start, g.n))
		}
	}

	return matches
}

// rowRun builds a horizontal match covering columns [from, to).
func rowRun(row, from, to int) Match {
	coords := make([]Coord, 0, to-from)
	for col := from; col < to; col++ {
		coords = append(coords, At(row, col))
	}
	return Match{Orientation: Horizontal, Coords: coords}
}

// colRun builds a vertical match covering rows [from, to).
func colRun(col, from, to int) Match {
	coords := make([]Coord, 0, to-from)
	for row := from; row < to; row++ {
		coords = append(coords, At(row, col))
	}
	return Match{Orientation: Vertical, Coords: coords}
}

// HasMatch reports whether the grid contains any match.
func HasMatch(g *Grid) bool {
	return len(FindMatches(g)) > 0
}

// createsRun reports whether the tile at c is part of a run of MinRun or more
// along its row or column. Cheaper than FindMatches for a single cell.
func createsRun(g *Grid, c Coord) bool {
	cell := g.at(c.Row, c.Col)
	if !cell.IsNormal() {
		return false
	}

	count := 1
	for col := c.Col - 1; col >= 0 && g.at(c.Row, col).Matches(cell); col-- {
		count++
	}
	for col := c.Col + 1; col < g.n && g.at(c.Row, col).Matches(cell); col++ {
		count++
	}
	if count >= MinRun {
		return true
	}

	count = 1
	for row := c.Row - 1; row >= 0 && g.at(row, c.Col).Matches(cell); row-- {
		count++
	}
	for row := c.Row + 1; row < g.n && g.at(row, c.Col).Matches(cell); row++ {
		count++
	}
	return count >= MinRun
}
