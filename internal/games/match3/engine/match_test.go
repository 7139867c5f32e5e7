package engine

import (
	"math/rand"
	"testing"
)

func TestFindMatchesNone(t *testing.T) {
	if m := FindMatches(baseGrid(8)); len(m) != 0 {
		t.Errorf("base grid should have no matches, got %d", len(m))
	}
}

func TestFindMatchesRowOfFour(t *testing.T) {
	g := baseGrid(8)
	for col := range 4 {
		mustSet(t, g, At(3, col), Normal(ColorRed))
	}
	mustSet(t, g, At(3, 4), Normal(ColorBlue))

	matches := FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d\n%s", len(matches), g)
	}

	m := matches[0]
	if m.Orientation != Horizontal {
		t.Errorf("expected horizontal match, got %v", m.Orientation)
	}
	if m.Len() != 4 {
		t.Fatalf("expected length 4, got %d", m.Len())
	}
	for i, c := range m.Coords {
		if c != At(3, i) {
			t.Errorf("coord %d = %v, expected %v", i, c, At(3, i))
		}
	}
}

func TestFindMatchesTrailingRuns(t *testing.T) {
	g := mustParse(t, `
		RGBYOO
		GBYORO
		BYOGRO
		YOBRGB
		OBRGBR
		BRGBRG
	`)
	// Column run at the top of col 5.
	matches := FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	m := matches[0]
	if m.Orientation != Vertical || m.Len() != 3 || m.First() != At(0, 5) {
		t.Errorf("unexpected match %+v", m)
	}

	g = mustParse(t, `
		RGBYOG
		GBYORO
		BYOGRB
		YOBRGB
		OBRGBR
		BRGGGG
	`)
	matches = FindMatches(g)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	m = matches[0]
	if m.Orientation != Horizontal || m.Len() != 4 || m.First() != At(5, 2) {
		t.Errorf("unexpected match %+v", m)
	}
}

func TestFindMatchesCross(t *testing.T) {
	// An L shape shares its corner tile between a row and a column match.
	g := mustParse(t, `
		RGBYO
		RBYOG
		RRRGB
		GYOBR
		BOGRY
	`)
	matches := FindMatches(g)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Orientation != Horizontal || matches[1].Orientation != Vertical {
		t.Errorf("rows must be reported before columns: %+v", matches)
	}

	shared := 0
	for _, a := range matches[0].Coords {
		for _, b := range matches[1].Coords {
			if a == b {
				shared++
			}
		}
	}
	if shared != 1 {
		t.Errorf("expected one shared tile, got %d", shared)
	}
}

func TestFindMatchesIgnoresSpecialsAndEmpty(t *testing.T) {
	g := mustParse(t, `
		---GB
		***BG
		|||GB
		...BG
		GBGBG
	`)
	if m := FindMatches(g); len(m) != 0 {
		t.Errorf("specials and empties must not match, got %+v", m)
	}
}

func TestFindMatchesMaximal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for range 200 {
		g := randomGrid(rng, 8, 4)
		for _, m := range FindMatches(g) {
			if m.Len() < MinRun {
				t.Fatalf("match shorter than %d: %+v", MinRun, m)
			}
			first := mustGet(t, g, m.Coords[0])
			for _, c := range m.Coords {
				if !mustGet(t, g, c).Matches(first) {
					t.Fatalf("match contains differing tile at %v\n%s", c, g)
				}
			}

			dr, dc := 0, 1
			if m.Orientation == Vertical {
				dr, dc = 1, 0
			}
			head := m.Coords[0]
			tail := m.Coords[m.Len()-1]
			before := At(head.Row-dr, head.Col-dc)
			after := At(tail.Row+dr, tail.Col+dc)
			if g.InBounds(before) && mustGet(t, g, before).Matches(first) {
				t.Fatalf("match %+v extends backward\n%s", m, g)
			}
			if g.InBounds(after) && mustGet(t, g, after).Matches(first) {
				t.Fatalf("match %+v extends forward\n%s", m, g)
			}
		}
	}
}

func TestCreatesRunAgreesWithFindMatches(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 100 {
		g := randomGrid(rng, 6, 3)
		inMatch := make(map[Coord]bool)
		for _, m := range FindMatches(g) {
			for _, c := range m.Coords {
				inMatch[c] = true
			}
		}
		for row := range 6 {
			for col := range 6 {
				c := At(row, col)
				if createsRun(g, c) != inMatch[c] {
					t.Fatalf("createsRun(%v) = %v, FindMatches says %v\n%s", c, createsRun(g, c), inMatch[c], g)
				}
			}
		}
	}
}
