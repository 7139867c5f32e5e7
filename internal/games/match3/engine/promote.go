package engine

// Promotion records a special tile created from a match.
type Promotion struct {
	At   Coord
	Kind SpecialKind
}

// PromotionFor returns the special kind a match spawns, or SpecialNone.
//
// The length-5 rule checks that all coordinates share a row, so a straight
// horizontal five yields a VerticalClearer and a vertical five falls through
// to Bomb.
func PromotionFor(m Match) SpecialKind {
	switch n := m.Len(); {
	case n == 4:
		return HorizontalClearer
	case n == 5 && m.SameRow():
		return VerticalClearer
	case n >= 5:
		return Bomb
	default:
		return SpecialNone
	}
}

// Promote places special tiles for each match at the match's first coordinate.
// Matches are evaluated independently; a later match may overwrite an earlier
// promotion at the same coordinate. Promoted cells survive the following Clear
// because Clear never removes specials.
func Promote(g *Grid, matches []Match) []Promotion {
	var promoted []Promotion
	for _, m := range matches {
		kind := PromotionFor(m)
		if kind == SpecialNone {
			continue
		}
		first := m.First()
		g.put(first.Row, first.Col, Special(kind))
		promoted = append(promoted, Promotion{At: first, Kind: kind})
	}
	return promoted
}
