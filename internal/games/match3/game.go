// Package match3 hosts the match-3 engine as a registry game: it maps cursor
// and pointer input to picks, runs the resolving phase every tick, enforces
// the move budget and draws the board.
package match3

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeStandard starts from a clean board and counts moves.
	ModeStandard Mode = "standard"

	// ModeClassic seeds tiles independently and never runs out of moves.
	ModeClassic Mode = "classic"
)

// Game implements registry.Game for match-3.
type Game struct {
	mode Mode
	cfg  config.Match3Config
	eng  *engine.Engine
	tick uint64

	cursor    engine.Coord
	hint      engine.Move
	hintShown bool
	status    string

	moves     int
	cascades  int
	bestChain int

	// Screen dimensions
	screenW int
	screenH int

	gameOver   bool
	paused     bool
	tooSmall   bool
	checkStuck bool // Board changed since the last HasMove check

	difficulty config.DifficultyPreset
	pending    []core.Event // Emitted on the next Step
}

// Package-level variables for config
var (
	configPath        string
	defaultDifficulty config.DifficultyPreset
)

// SetConfigPath sets a YAML file that overrides the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset applied on top of the loaded config
// for games created afterwards.
func SetDifficultyPreset(p config.DifficultyPreset) {
	defaultDifficulty = p
}

// New creates a standard mode game.
func New() *Game {
	return &Game{mode: ModeStandard, difficulty: defaultDifficulty}
}

// NewClassic creates a classic mode game.
func NewClassic() *Game {
	return &Game{mode: ModeClassic, difficulty: defaultDifficulty}
}

// SetDifficulty overrides the preset for this game. It applies on the next Reset.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.difficulty = p
}

func init() {
	registry.Register("match3", func() registry.Game {
		return New()
	})
	registry.Register("match3_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "match3_classic"
	}
	return "match3"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Match-3 Classic"
	}
	return "Match-3"
}

// Reset loads configuration and starts a new board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	mc, events := LoadConfig(g.mode, g.difficulty)
	g.cfg = mc

	eng, err := engine.New(EngineOptions(mc, cfg.Seed))
	if err != nil {
		events = append(events, core.Event{Kind: core.EventWarning, Message: "invalid board options, using defaults", Err: err})
		opts := engine.DefaultOptions()
		opts.Seed = cfg.Seed
		eng, _ = engine.New(opts) //nolint:errcheck // defaults are valid
	}

	g.start(eng, cfg)
	g.pending = events
}

// start resets per-game state around eng.
func (g *Game) start(eng *engine.Engine, cfg core.RuntimeConfig) {
	g.eng = eng
	g.tick = 0
	g.cursor = engine.At(0, 0)
	g.hintShown = false
	g.status = ""
	g.moves = 0
	g.cascades = 0
	g.bestChain = 0
	g.gameOver = false
	g.paused = false
	g.checkStuck = true
	g.pending = nil
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board and HUD.
func (g *Game) checkScreenSize() {
	l := g.layout()
	minW := core.Max(l.box.W, minHUDWidth)
	minH := l.box.Bottom() + legendHeight
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick: input first, then one resolving pass.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	events := g.pending
	g.pending = nil

	if g.tooSmall {
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State(), Events: events}
	}

	g.moveCursor(in)

	if in.Has(core.ActionHint) {
		g.showHint()
	}

	l := g.layout()
	for _, p := range in.Clicks {
		if c, ok := l.hit(p); ok {
			g.cursor = c
			events = g.pick(c, events)
		}
	}
	if in.Has(core.ActionSelect) {
		events = g.pick(g.cursor, events)
	}

	cascade, err := g.eng.Tick()
	events = g.collect(cascade, err, events)

	if g.checkStuck && err == nil && !g.gameOver {
		events = g.resolveStuck(events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// moveCursor applies directional actions, clamped to the board.
func (g *Game) moveCursor(in core.InputFrame) {
	last := g.eng.Size() - 1
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, last)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, last)
}

// pick forwards one pick to the engine and updates counters and status.
func (g *Game) pick(c engine.Coord, events []core.Event) []core.Event {
	res, err := g.eng.PickTile(c)
	if errors.Is(err, engine.ErrOutOfBounds) {
		return events
	}

	switch res.Outcome {
	case engine.OutcomeSelected, engine.OutcomeReselected:
		g.status = "Pick a neighbour to swap"
	case engine.OutcomeSwapRejected:
		g.status = "No match"
	case engine.OutcomeSwapped:
		g.status = gainText("", res)
	case engine.OutcomeActivated:
		g.status = gainText(specialName(res.Activated)+"!", res)
	}

	if res.Consumed() {
		g.moves++
		g.hintShown = false
		g.bestChain = core.Max(g.bestChain, res.Cascade.Rounds)
		if limit := g.cfg.Rules.MoveLimit; limit > 0 && g.moves >= limit {
			g.gameOver = true
			g.status = "Out of moves"
		}
	}

	return g.collect(res.Cascade, err, events)
}

// collect folds a resolving pass into the session counters and turns
// engine diagnostics into events.
func (g *Game) collect(c engine.Cascade, err error, events []core.Event) []core.Event {
	if c.Rounds > 0 {
		g.cascades += c.Rounds
		g.checkStuck = true
	}
	for _, p := range c.Promotions {
		events = append(events, core.Event{
			Kind:    core.EventInfo,
			Message: fmt.Sprintf("%s created at %v", specialName(p.Kind), p.At),
		})
	}
	if errors.Is(err, engine.ErrCascadeLimit) {
		events = append(events, core.Event{Kind: core.EventWarning, Message: "cascade limit reached", Err: err})
	}
	return events
}

// resolveStuck reshuffles a board with no productive move. If even the
// shuffle finds nothing the game ends.
func (g *Game) resolveStuck(events []core.Event) []core.Event {
	g.checkStuck = false
	if g.eng.HasMove() {
		return events
	}

	g.eng.Shuffle()
	g.hintShown = false
	g.status = "No moves left, board shuffled"
	events = append(events, core.Event{Kind: core.EventInfo, Message: "board shuffled"})

	if !g.eng.HasMove() {
		g.gameOver = true
		g.status = "No moves left"
	}
	return events
}

// showHint looks up a productive move for the current board.
func (g *Game) showHint() {
	g.hint, g.hintShown = g.eng.Hint()
	switch {
	case !g.hintShown:
		g.status = "No moves available"
	case g.hint.Activate:
		g.status = fmt.Sprintf("Try the special at %v", g.hint.A)
	default:
		g.status = fmt.Sprintf("Try swapping %v and %v", g.hint.A, g.hint.B)
	}
}

// gainText formats the score line for a productive pick.
func gainText(prefix string, res engine.PickResult) string {
	text := fmt.Sprintf("+%d", res.ScoreDelta)
	if res.Cascade.Rounds > 1 {
		text = fmt.Sprintf("Chain x%d! %s", res.Cascade.Rounds, text)
	}
	if prefix != "" {
		text = prefix + " " + text
	}
	return text
}

// specialName returns the player-facing special tile name.
func specialName(k engine.SpecialKind) string {
	switch k {
	case engine.HorizontalClearer:
		return "Row blast"
	case engine.VerticalClearer:
		return "Column blast"
	case engine.Bomb:
		return "Bomb"
	default:
		return "Special"
	}
}

// MovesLeft returns the remaining move budget, or -1 when unlimited.
func (g *Game) MovesLeft() int {
	limit := g.cfg.Rules.MoveLimit
	if limit <= 0 {
		return -1
	}
	return core.Max(limit-g.moves, 0)
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Moves:     g.moves,
		Cascades:  g.cascades,
		BestChain: g.bestChain,
		GameOver:  g.gameOver,
		Paused:    g.paused || g.tooSmall,
	}
	if g.eng != nil {
		st.Score = g.eng.Score()
	}
	return st
}
