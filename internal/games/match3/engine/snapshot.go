package engine

import (
	"fmt"
	"strings"
)

// Symbol returns a single-character code for the cell:
// R G B Y O P for colors, '-' '|' '*' for specials and '.' for empty.
func (c Cell) Symbol() byte {
	switch c.Kind {
	case KindNormal:
		if int(c.Color) < len(colorSymbols) {
			return colorSymbols[c.Color]
		}
		return '?'
	case KindSpecial:
		switch c.Special {
		case HorizontalClearer:
			return '-'
		case VerticalClearer:
			return '|'
		case Bomb:
			return '*'
		}
	}
	return '.'
}

const colorSymbols = "RGBYOP"

// CellFromSymbol is the inverse of Cell.Symbol.
func CellFromSymbol(b byte) (Cell, bool) {
	if i := strings.IndexByte(colorSymbols, b); i >= 0 {
		return Normal(Color(i)), true
	}
	switch b {
	case '-':
		return Special(HorizontalClearer), true
	case '|':
		return Special(VerticalClearer), true
	case '*':
		return Special(Bomb), true
	case '.':
		return Empty(), true
	}
	return Empty(), false
}

// String renders the grid one row per line using cell symbols.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n*g.n + g.n)
	for row := range g.n {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range g.n {
			sb.WriteByte(g.at(row, col).Symbol())
		}
	}
	return sb.String()
}

// ParseGrid builds a grid from the Grid.String() form. Blank lines and
// surrounding whitespace are ignored; the board must be square.
func ParseGrid(text string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	rows := make([][]Cell, len(lines))
	for r, line := range lines {
		rows[r] = make([]Cell, len(line))
		for col := range len(line) {
			cell, ok := CellFromSymbol(line[col])
			if !ok {
				return nil, fmt.Errorf("engine: unknown symbol %q at row %d col %d", line[col], r, col)
			}
			rows[r][col] = cell
		}
	}
	return GridFromRows(rows)
}

// Snapshot captures the full engine state for determinism testing and replay.
type Snapshot struct {
	Size         int
	Seed         int64
	Score        int
	Selected     Coord
	HasSelection bool
	Board        string // Grid.String() form
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Size:         e.opts.Size,
		Seed:         e.opts.Seed,
		Score:        e.score,
		Selected:     e.selected,
		HasSelection: e.hasSelection,
		Board:        e.grid.String(),
	}
}
