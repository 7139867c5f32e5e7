package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the host-level game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Moves     int
	MovesLeft int // -1 when unlimited
	Cursor    engine.Coord
	State     GameStateType
	Engine    engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Moves:     g.moves,
		MovesLeft: g.MovesLeft(),
		Cursor:    g.cursor,
		State:     state,
		Engine:    g.eng.Snapshot(),
	}
}
