package match3

import (
	"testing"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

func newTestEngine(t *testing.T, board string) *engine.Engine {
	t.Helper()
	grid, err := engine.ParseGrid(board)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	eng, err := engine.NewWithGrid(grid, EngineOptions(config.DefaultMatch3Config(), 5))
	if err != nil {
		t.Fatalf("NewWithGrid failed: %v", err)
	}
	return eng
}

func TestAutoplaySwap(t *testing.T) {
	eng := newTestEngine(t, swapBoard)

	st := Autoplay(eng, 1, nil)
	if st.Moves != 1 || st.Swaps != 1 || st.Activations != 0 {
		t.Errorf("stats = %+v, expected one swap", st)
	}
	if st.Score < 30 || st.Score != eng.Score() {
		t.Errorf("score = %d, engine says %d", st.Score, eng.Score())
	}
	if st.BestChain < 1 || st.Cascades < st.BestChain {
		t.Errorf("chain accounting off: %+v", st)
	}
}

func TestAutoplayActivatesSpecial(t *testing.T) {
	eng := newTestEngine(t, `
		RGB
		G*R
		BRG
	`)

	var events []core.Event
	st := Autoplay(eng, 1, func(e core.Event) { events = append(events, e) })
	if st.Moves != 1 || st.Activations != 1 {
		t.Fatalf("stats = %+v, expected one activation", st)
	}
	if st.Score < 100 {
		t.Errorf("score = %d, expected at least the bomb bonus", st.Score)
	}
	for _, e := range events {
		if e.Kind == core.EventWarning {
			t.Errorf("unexpected warning: %+v", e)
		}
	}
}

func TestAutoplayZeroMoves(t *testing.T) {
	eng := newTestEngine(t, swapBoard)
	before := eng.Grid().String()

	st := Autoplay(eng, 0, nil)
	if st.Moves != 0 || st.Score != 0 {
		t.Errorf("stats = %+v, expected nothing played", st)
	}
	if eng.Grid().String() != before {
		t.Error("a stable board must not change without moves")
	}
}

func TestAutoplayDeterministic(t *testing.T) {
	run := func() (AutoplayStats, string) {
		cfg := config.DefaultMatch3Config()
		eng, err := engine.New(EngineOptions(cfg, 99))
		if err != nil {
			t.Fatalf("engine.New failed: %v", err)
		}
		st := Autoplay(eng, 25, nil)
		return st, eng.Grid().String()
	}

	st1, board1 := run()
	st2, board2 := run()
	if st1 != st2 || board1 != board2 {
		t.Errorf("same seed diverged:\n%+v\n%s\n%+v\n%s", st1, board1, st2, board2)
	}
	if st1.Moves+st1.Shuffles == 0 {
		t.Errorf("nothing happened: %+v", st1)
	}
}
