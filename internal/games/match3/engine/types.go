// Package engine provides the match-3 resolution engine: grid, match detection,
// special tile promotion, clearing, gravity and the turn state machine.
// This package is UI-agnostic and deterministic for a given seed.
package engine

import "fmt"

// Color is a palette index for a normal tile.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorOrange
	ColorPurple
)

// MaxColors is the largest palette a game may use.
const MaxColors = 6

// DefaultColors is the palette size used when none is configured.
const DefaultColors = 5

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// SpecialKind identifies a special tile's effect.
type SpecialKind uint8

const (
	SpecialNone SpecialKind = iota
	HorizontalClearer
	VerticalClearer
	Bomb
)

// String returns the special kind name.
func (k SpecialKind) String() string {
	switch k {
	case HorizontalClearer:
		return "horizontal_clearer"
	case VerticalClearer:
		return "vertical_clearer"
	case Bomb:
		return "bomb"
	default:
		return "none"
	}
}

// CellKind tags the variant held by a Cell.
type CellKind uint8

const (
	KindEmpty CellKind = iota
	KindNormal
	KindSpecial
)

// Cell is one grid position. Use Empty, Normal and Special to build cells so
// that unused fields stay zero and == compares by value.
type Cell struct {
	Kind    CellKind
	Color   Color       // Valid only when Kind is KindNormal
	Special SpecialKind // Valid only when Kind is KindSpecial
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{Kind: KindEmpty}
}

// Normal returns a colored tile.
func Normal(c Color) Cell {
	return Cell{Kind: KindNormal, Color: c}
}

// Special returns a special tile of the given kind.
func Special(k SpecialKind) Cell {
	return Cell{Kind: KindSpecial, Special: k}
}

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// IsNormal reports whether the cell holds a colored tile.
func (c Cell) IsNormal() bool { return c.Kind == KindNormal }

// IsSpecial reports whether the cell holds a special tile.
func (c Cell) IsSpecial() bool { return c.Kind == KindSpecial }

// Matches reports whether two cells can be part of the same run.
// Only normal tiles of the same color match; empties and specials never do.
func (c Cell) Matches(other Cell) bool {
	return c.Kind == KindNormal && other.Kind == KindNormal && c.Color == other.Color
}

// String returns a short human-readable form of the cell.
func (c Cell) String() string {
	switch c.Kind {
	case KindNormal:
		return c.Color.String()
	case KindSpecial:
		return c.Special.String()
	default:
		return "empty"
	}
}

// Coord addresses a grid cell. Row 0 is the top row.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Adjacent reports whether two coordinates are 4-neighbors.
func (c Coord) Adjacent(other Coord) bool {
	return c.Manhattan(other) == 1
}
