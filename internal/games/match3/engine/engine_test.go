package engine

import (
	"errors"
	"testing"
)

func TestNewValidatesOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"too small", Options{Size: 2, Colors: 5}},
		{"too large", Options{Size: 17, Colors: 5}},
		{"too few colors", Options{Size: 8, Colors: 2}},
		{"too many colors", Options{Size: 8, Colors: 7}},
		{"bad seeding", Options{Size: 8, Colors: 5, Seeding: "chaos"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.opts); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("New() error = %v, expected ErrInvalidOptions", err)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	e, err := New(Options{Size: 8, Colors: 5})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if e.Options().Seeding != SeedClean {
		t.Errorf("default seeding = %q, expected clean", e.Options().Seeding)
	}
	if e.Options().MaxCascade != DefaultMaxCascade {
		t.Errorf("default max cascade = %d, expected %d", e.Options().MaxCascade, DefaultMaxCascade)
	}
	if e.Score() != 0 {
		t.Errorf("new game score = %d, expected 0", e.Score())
	}
	if _, ok := e.Selection(); ok {
		t.Error("new game should have no selection")
	}
}

func TestCleanSeedingHasNoMatches(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		for _, colors := range []int{3, 5, 6} {
			opts := DefaultOptions()
			opts.Seed = seed
			opts.Colors = colors
			e, err := New(opts)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			assertStable(t, e.Grid())
		}
	}
}

func TestRandomSeedingStabilizesOnTick(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		opts := DefaultOptions()
		opts.Seed = seed
		opts.Seeding = SeedRandom
		e, err := New(opts)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		cascade, err := e.Tick()
		if err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
		if cascade.ScoreDelta != e.Score() {
			t.Errorf("cascade score %d != engine score %d", cascade.ScoreDelta, e.Score())
		}
		assertStable(t, e.Grid())
	}
}

func TestTickOnStableBoardIsNoop(t *testing.T) {
	e := newTestEngine(t, baseGrid(8), 1)
	before := e.Grid()

	cascade, err := e.Tick()
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if cascade.Rounds != 0 || e.Score() != 0 {
		t.Errorf("stable board tick did work: %+v score=%d", cascade, e.Score())
	}
	if !e.Grid().Equal(before) {
		t.Error("stable board tick changed the grid")
	}
}

func TestSameSeedSameGame(t *testing.T) {
	play := func() Snapshot {
		opts := DefaultOptions()
		opts.Seed = 99
		e, err := New(opts)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		for range 20 {
			move, ok := e.Hint()
			if !ok {
				e.Shuffle()
				continue
			}
			if _, err := e.PickTile(move.A); err != nil {
				t.Fatalf("PickTile failed: %v", err)
			}
			if !move.Activate {
				if _, err := e.PickTile(move.B); err != nil {
					t.Fatalf("PickTile failed: %v", err)
				}
			}
		}
		return e.Snapshot()
	}

	a, b := play(), play()
	if a != b {
		t.Errorf("same seed produced different games:\n%+v\n%+v", a, b)
	}
}

func TestPickOutOfBoundsIsNoop(t *testing.T) {
	e := newTestEngine(t, baseGrid(8), 1)
	if _, err := e.PickTile(At(0, 0)); err != nil {
		t.Fatalf("PickTile failed: %v", err)
	}
	before := e.Snapshot()

	for _, c := range []Coord{At(-1, 0), At(0, 8), At(8, 8)} {
		if _, err := e.PickTile(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("PickTile(%v) error = %v, expected ErrOutOfBounds", c, err)
		}
	}
	if e.Snapshot() != before {
		t.Error("out-of-bounds pick changed engine state")
	}
}

func TestPickSelectAndReselect(t *testing.T) {
	e := newTestEngine(t, baseGrid(8), 1)

	res, err := e.PickTile(At(2, 2))
	if err != nil {
		t.Fatalf("PickTile failed: %v", err)
	}
	if res.Outcome != OutcomeSelected {
		t.Errorf("first pick outcome = %v, expected selected", res.Outcome)
	}
	if sel, ok := e.Selection(); !ok || sel != At(2, 2) {
		t.Errorf("selection = %v,%v expected (2,2)", sel, ok)
	}

	res, err = e.PickTile(At(5, 5))
	if err != nil {
		t.Fatalf("PickTile failed: %v", err)
	}
	if res.Outcome != OutcomeReselected || res.From != At(2, 2) {
		t.Errorf("non-adjacent pick = %+v, expected reselect from (2,2)", res)
	}
	if sel, ok := e.Selection(); !ok || sel != At(5, 5) {
		t.Errorf("selection = %v,%v expected (5,5)", sel, ok)
	}

	// Picking the selected tile again is not adjacent: it stays selected.
	res, err = e.PickTile(At(5, 5))
	if err != nil {
		t.Fatalf("PickTile failed: %v", err)
	}
	if res.Outcome != OutcomeReselected {
		t.Errorf("same tile pick outcome = %v, expected reselected", res.Outcome)
	}
}

func TestSwapBackWhenNoMatch(t *testing.T) {
	e := newTestEngine(t, baseGrid(8), 1)
	before := e.Grid()

	if _, err := e.PickTile(At(0, 0)); err != nil {
		t.Fatalf("PickTile failed: %v", err)
	}
	res, err := e.PickTile(At(0, 1))
	if err != nil {
		t.Fatalf("PickTile failed: %v", err)
	}

	if res.Outcome != OutcomeSwapRejected {
		t.Errorf("outcome = %v, expected swap_rejected", res.Outcome)
	}
	if res.Consumed() {
		t.Error("rejected swap must not consume a move")
	}
	if !e.Grid().Equal(before) {
		t.Errorf("grid changed after rejected swap:\n%s", e.Grid())
	}
	if _, ok := e.Selection(); ok {
		t.Error("selection should clear after a swap attempt")
	}
	if e.Score() != 0 {
		t.Errorf("score = %d, expected 0", e.Score())
	}
}

func TestSwapResolves(t *testing.T) {
	g := baseGrid(8)
	// Row 0 reads R R O ...; (1,2) holds R, so swapping (0,2) and (1,2) completes R R R.
	mustSet(t, g, At(0, 1), Normal(ColorRed))
	e := newTestEngine(t, g, 3)

	if _, err := e.PickTile(At(0, 2)); err != nil {
		t.Fatalf("PickTile failed: %v", err)
	}
	res, err := e.PickTile(At(1, 2))
	if err != nil {
		t.Fatalf("PickTile failed: %v", err)
	}

	if res.Outcome != OutcomeSwapped {
		t.Fatalf("outcome = %v, expected swapped", res.Outcome)
	}
	if !res.Consumed() {
		t.Error("successful swap should consume a move")
	}
	if res.Cascade.Rounds < 1 || res.Cascade.Matches < 1 {
		t.Errorf("expected at least one resolved match, got %+v", res.Cascade)
	}
	if e.Score() < 30 {
		t.Errorf("score = %d, expected at least 30", e.Score())
	}
	if res.ScoreDelta != e.Score() {
		t.Errorf("ScoreDelta = %d, engine score = %d", res.ScoreDelta, e.Score())
	}
	if _, ok := e.Selection(); ok {
		t.Error("selection should clear after a swap")
	}
	assertStable(t, e.Grid())
}

func TestPickSpecialActivates(t *testing.T) {
	g := baseGrid(8)
	mustSet(t, g, At(4, 4), Special(Bomb))
	e := newTestEngine(t, g, 5)

	if _, err := e.PickTile(At(0, 0)); err != nil {
		t.Fatalf("PickTile failed: %v", err)
	}
	res, err := e.PickTile(At(4, 4))
	if err != nil {
		t.Fatalf("PickTile failed: %v", err)
	}

	if res.Outcome != OutcomeActivated || res.Activated != Bomb {
		t.Fatalf("result = %+v, expected bomb activation", res)
	}
	if e.Score() < 100 {
		t.Errorf("score = %d, expected at least 100", e.Score())
	}
	if res.ScoreDelta != e.Score() {
		t.Errorf("ScoreDelta = %d, engine score = %d", res.ScoreDelta, e.Score())
	}
	if sel, ok := e.Selection(); !ok || sel != At(0, 0) {
		t.Errorf("activation must keep the selection, got %v,%v", sel, ok)
	}
	assertStable(t, e.Grid())
}

func TestPickAdjacentSpecialActivatesInsteadOfSwap(t *testing.T) {
	g := baseGrid(8)
	mustSet(t, g, At(0, 1), Special(HorizontalClearer))
	e := newTestEngine(t, g, 5)

	if _, err := e.PickTile(At(0, 0)); err != nil {
		t.Fatalf("PickTile failed: %v", err)
	}
	res, err := e.PickTile(At(0, 1))
	if err != nil {
		t.Fatalf("PickTile failed: %v", err)
	}
	if res.Outcome != OutcomeActivated || res.Activated != HorizontalClearer {
		t.Errorf("result = %+v, expected horizontal clearer activation", res)
	}
}

// cascadeGrid has a vertical R R R in column 0 whose collapse drops a G
// next to the G G at the bottom row, forcing a second round.
func cascadeGrid(t *testing.T) *Grid {
	g := baseGrid(8)
	mustSet(t, g, At(4, 0), Normal(ColorGreen))
	mustSet(t, g, At(5, 0), Normal(ColorRed))
	mustSet(t, g, At(6, 0), Normal(ColorRed))
	mustSet(t, g, At(7, 0), Normal(ColorRed))
	mustSet(t, g, At(7, 1), Normal(ColorGreen))
	mustSet(t, g, At(7, 2), Normal(ColorGreen))
	return g
}

func TestCascadeLimit(t *testing.T) {
	g := cascadeGrid(t)
	if m := FindMatches(g); len(m) != 1 {
		t.Fatalf("setup: expected 1 match, got %d\n%s", len(m), g)
	}

	opts := DefaultOptions()
	opts.MaxCascade = 1
	e, err := NewWithGrid(g, opts)
	if err != nil {
		t.Fatalf("NewWithGrid failed: %v", err)
	}

	cascade, err := e.Tick()
	if !errors.Is(err, ErrCascadeLimit) {
		t.Fatalf("Tick error = %v, expected ErrCascadeLimit", err)
	}
	if cascade.Rounds != 1 || e.Score() != 30 {
		t.Errorf("cascade = %+v score = %d, expected 1 round and 30 points", cascade, e.Score())
	}
	if e.Grid().EmptyCount() != 0 {
		t.Error("board must stay fully populated after hitting the cap")
	}

	// The next tick continues where the capped one stopped.
	if _, err := e.Tick(); err != nil && !errors.Is(err, ErrCascadeLimit) {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Score() < 60 {
		t.Errorf("score = %d, expected the second round to resolve", e.Score())
	}
}

func TestCascadeChains(t *testing.T) {
	e := newTestEngine(t, cascadeGrid(t), 11)

	cascade, err := e.Tick()
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if cascade.Rounds < 2 {
		t.Errorf("expected a chained cascade, got %d rounds", cascade.Rounds)
	}
	if e.Score() < 60 {
		t.Errorf("score = %d, expected at least 60", e.Score())
	}
	assertStable(t, e.Grid())
}

func TestResetStartsNewSession(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 4
	e, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	move, ok := e.Hint()
	if !ok {
		t.Skip("seeded board has no move")
	}
	e.PickTile(move.A) //nolint:errcheck // in bounds
	e.Reset(8)

	if e.Score() != 0 {
		t.Errorf("score after reset = %d", e.Score())
	}
	if _, ok := e.Selection(); ok {
		t.Error("selection should clear on reset")
	}
	if e.Snapshot().Seed != 8 {
		t.Errorf("seed = %d, expected 8", e.Snapshot().Seed)
	}
	assertStable(t, e.Grid())
}
