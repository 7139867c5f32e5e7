package match3

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// AutoplayStats summarizes a headless run.
type AutoplayStats struct {
	Moves       int // Productive picks played
	Swaps       int
	Activations int
	Shuffles    int
	Cascades    int // Resolving rounds across the run
	BestChain   int // Most rounds triggered by one move
	Score       int
	Stuck       bool // Stopped because no move existed even after a shuffle
}

// Autoplay plays up to maxMoves moves on eng using the hint strategy.
// Every move is followed by a resolving tick, the same order the
// interactive game uses. Noteworthy happenings go to emit, which may be nil.
func Autoplay(eng *engine.Engine, maxMoves int, emit func(core.Event)) AutoplayStats {
	if emit == nil {
		emit = func(core.Event) {}
	}
	var st AutoplayStats

	settle := func(c engine.Cascade, err error) {
		st.Cascades += c.Rounds
		for _, p := range c.Promotions {
			emit(core.Event{Kind: core.EventInfo, Message: fmt.Sprintf("%s created at %v", specialName(p.Kind), p.At)})
		}
		if errors.Is(err, engine.ErrCascadeLimit) {
			emit(core.Event{Kind: core.EventWarning, Message: "cascade limit reached", Err: err})
		}
	}

	// Classic boards may start with runs on them.
	settle(eng.Tick())

	for st.Moves < maxMoves {
		move, ok := eng.Hint()
		if !ok {
			eng.Shuffle()
			st.Shuffles++
			emit(core.Event{Kind: core.EventInfo, Message: "board shuffled"})
			if !eng.HasMove() {
				st.Stuck = true
				break
			}
			continue
		}

		res, err := playMove(eng, move)
		if !res.Consumed() {
			emit(core.Event{Kind: core.EventWarning, Message: fmt.Sprintf("hint %+v made no progress", move), Err: err})
			break
		}
		st.Moves++
		if move.Activate {
			st.Activations++
		} else {
			st.Swaps++
		}
		st.BestChain = core.Max(st.BestChain, res.Cascade.Rounds)
		settle(res.Cascade, err)
		settle(eng.Tick())
	}

	st.Score = eng.Score()
	return st
}

// playMove issues the picks for move from an idle selection.
func playMove(eng *engine.Engine, move engine.Move) (engine.PickResult, error) {
	eng.ClearSelection()
	res, err := eng.PickTile(move.A)
	if move.Activate || err != nil {
		return res, err
	}
	return eng.PickTile(move.B)
}
