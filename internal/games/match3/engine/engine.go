package engine

import (
	"fmt"
	"math/rand"
)

// SeedMode controls how the initial board is populated.
type SeedMode string

const (
	// SeedClean fills the board so that no run of MinRun exists at start.
	SeedClean SeedMode = "clean"

	// SeedRandom picks every tile independently. The first Tick may clear
	// tiles before the player does anything.
	SeedRandom SeedMode = "random"
)

// Board size limits.
const (
	MinSize     = 3
	MaxSize     = 16
	DefaultSize = 8
)

// DefaultMaxCascade is the resolving loop round cap used when none is set.
const DefaultMaxCascade = 64

// Options configures a new game.
type Options struct {
	Size       int      // Board dimension N
	Colors     int      // Palette size, from MinRun to MaxColors
	Seed       int64    // RNG seed for board fill and refills
	Seeding    SeedMode // Initial board policy
	MaxCascade int      // Resolving rounds per call before ErrCascadeLimit; <= 0 uses DefaultMaxCascade
}

// DefaultOptions returns an 8x8, five color, clean board configuration.
func DefaultOptions() Options {
	return Options{
		Size:       DefaultSize,
		Colors:     DefaultColors,
		Seeding:    SeedClean,
		MaxCascade: DefaultMaxCascade,
	}
}

// validate checks options and fills defaults.
func (o *Options) validate() error {
	if o.Size < MinSize || o.Size > MaxSize {
		return fmt.Errorf("%w: size %d not in [%d, %d]", ErrInvalidOptions, o.Size, MinSize, MaxSize)
	}
	if o.Colors < MinRun || o.Colors > MaxColors {
		return fmt.Errorf("%w: colors %d not in [%d, %d]", ErrInvalidOptions, o.Colors, MinRun, MaxColors)
	}
	switch o.Seeding {
	case "":
		o.Seeding = SeedClean
	case SeedClean, SeedRandom:
	default:
		return fmt.Errorf("%w: unknown seeding %q", ErrInvalidOptions, o.Seeding)
	}
	if o.MaxCascade <= 0 {
		o.MaxCascade = DefaultMaxCascade
	}
	return nil
}

// Cascade summarizes one run of the resolving loop.
type Cascade struct {
	Rounds     int         // Clear/gravity rounds performed
	Matches    int         // Matches resolved across all rounds
	Cleared    int         // Tiles emptied by matches
	Promotions []Promotion // Special tiles created
	ScoreDelta int         // Score earned by matches
}

// add folds another cascade into c.
func (c *Cascade) add(other Cascade) {
	c.Rounds += other.Rounds
	c.Matches += other.Matches
	c.Cleared += other.Cleared
	c.Promotions = append(c.Promotions, other.Promotions...)
	c.ScoreDelta += other.ScoreDelta
}

// PickOutcome describes what a pick did.
type PickOutcome uint8

const (
	OutcomeSelected     PickOutcome = iota // Idle -> Selected
	OutcomeReselected                      // Selected -> Selected(new), not adjacent
	OutcomeSwapped                         // Adjacent swap produced a match
	OutcomeSwapRejected                    // Adjacent swap produced nothing and was undone
	OutcomeActivated                       // A special tile fired
)

// String returns the outcome name.
func (o PickOutcome) String() string {
	switch o {
	case OutcomeSelected:
		return "selected"
	case OutcomeReselected:
		return "reselected"
	case OutcomeSwapped:
		return "swapped"
	case OutcomeSwapRejected:
		return "swap_rejected"
	case OutcomeActivated:
		return "activated"
	default:
		return "unknown"
	}
}

// PickResult reports the effect of PickTile.
type PickResult struct {
	Outcome    PickOutcome
	From       Coord       // Previously selected tile for swap outcomes
	To         Coord       // The picked tile
	Activated  SpecialKind // Set for OutcomeActivated
	ScoreDelta int         // Activation bonus plus cascade score
	Cascade    Cascade
}

// Consumed reports whether the pick changed the board.
func (r PickResult) Consumed() bool {
	return r.Outcome == OutcomeSwapped || r.Outcome == OutcomeActivated
}

// Engine owns one game session: the grid, the score, the selection and the RNG.
// It is not safe for concurrent use.
type Engine struct {
	opts Options
	rng  *rand.Rand
	grid *Grid

	score        int
	selected     Coord
	hasSelection bool
}

// New creates a game with a freshly seeded board and zero score.
func New(opts Options) (*Engine, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	e := &Engine{opts: opts}
	e.Reset(opts.Seed)
	return e, nil
}

// NewWithGrid creates a game around an existing grid. The grid is used as is,
// including any matches it already contains. Options.Size is taken from the grid.
func NewWithGrid(g *Grid, opts Options) (*Engine, error) {
	opts.Size = g.Size()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Engine{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
		grid: g,
	}, nil
}

// Reset starts a new session on the same options with the given seed.
func (e *Engine) Reset(seed int64) {
	e.opts.Seed = seed
	e.rng = rand.New(rand.NewSource(seed))
	e.grid = NewGrid(e.opts.Size)
	e.score = 0
	e.hasSelection = false

	if e.opts.Seeding == SeedRandom {
		e.grid.Fill(func(Coord) Cell { return e.spawn() })
		return
	}
	fillClean(e.grid, e.rng, e.opts.Colors, nil)
}

// spawn returns a random normal tile from the palette.
func (e *Engine) spawn() Cell {
	return Normal(Color(e.rng.Intn(e.opts.Colors)))
}

// PickTile applies the single player intent.
//
//   - A special tile fires, its cell empties, gravity and resolving run. Any
//     existing selection is kept.
//   - With nothing selected the tile becomes selected.
//   - With an adjacent tile selected the two swap; if no match results the
//     swap is undone. The selection clears either way.
//   - With a non-adjacent tile selected the selection moves to the new tile.
//
// Out-of-bounds coordinates return ErrOutOfBounds and change nothing.
func (e *Engine) PickTile(c Coord) (PickResult, error) {
	cell, err := e.grid.Get(c)
	if err != nil {
		return PickResult{}, err
	}

	if cell.IsSpecial() {
		return e.activate(c, cell.Special)
	}

	if !e.hasSelection {
		e.selected = c
		e.hasSelection = true
		return PickResult{Outcome: OutcomeSelected, To: c}, nil
	}

	prev := e.selected
	if !prev.Adjacent(c) {
		e.selected = c
		return PickResult{Outcome: OutcomeReselected, From: prev, To: c}, nil
	}

	e.hasSelection = false
	result := PickResult{From: prev, To: c}
	if err := e.grid.Swap(prev, c); err != nil {
		return PickResult{}, err
	}
	if !HasMatch(e.grid) {
		if err := e.grid.Swap(prev, c); err != nil {
			return PickResult{}, err
		}
		result.Outcome = OutcomeSwapRejected
		return result, nil
	}

	result.Outcome = OutcomeSwapped
	result.Cascade, err = e.resolve()
	result.ScoreDelta = result.Cascade.ScoreDelta
	return result, err
}

// activate fires the special at c and resolves the aftermath.
func (e *Engine) activate(c Coord, kind SpecialKind) (PickResult, error) {
	bonus, err := Activate(e.grid, c, kind)
	if err != nil {
		return PickResult{}, err
	}
	e.score += bonus
	e.grid.put(c.Row, c.Col, Empty())
	ApplyGravity(e.grid, e.spawn)

	result := PickResult{
		Outcome:   OutcomeActivated,
		To:        c,
		Activated: kind,
	}
	result.Cascade, err = e.resolve()
	result.ScoreDelta = bonus + result.Cascade.ScoreDelta
	return result, err
}

// Tick runs the resolving phase once. Hosts call it every frame whether or not
// the player did anything.
func (e *Engine) Tick() (Cascade, error) {
	return e.resolve()
}

// resolve repeats match, promote, clear and gravity until the board is stable
// or the round cap is hit.
func (e *Engine) resolve() (Cascade, error) {
	var total Cascade
	for round := 0; ; round++ {
		matches := FindMatches(e.grid)
		if len(matches) == 0 {
			return total, nil
		}
		if round >= e.opts.MaxCascade {
			return total, fmt.Errorf("%w: %d rounds, %d matches pending", ErrCascadeLimit, round, len(matches))
		}

		step := Cascade{Rounds: 1, Matches: len(matches)}
		step.Promotions = Promote(e.grid, matches)
		before := e.grid.EmptyCount()
		step.ScoreDelta = Clear(e.grid, matches)
		step.Cleared = e.grid.EmptyCount() - before
		e.score += step.ScoreDelta
		ApplyGravity(e.grid, e.spawn)

		total.add(step)
	}
}

// CellAt returns the cell at c.
func (e *Engine) CellAt(c Coord) (Cell, error) {
	return e.grid.Get(c)
}

// Score returns the accumulated score.
func (e *Engine) Score() int {
	return e.score
}

// Selection returns the selected coordinate, if any.
func (e *Engine) Selection() (Coord, bool) {
	return e.selected, e.hasSelection
}

// ClearSelection drops the current selection.
func (e *Engine) ClearSelection() {
	e.hasSelection = false
}

// Size returns the board dimension.
func (e *Engine) Size() int {
	return e.opts.Size
}

// Options returns the options the engine runs with.
func (e *Engine) Options() Options {
	return e.opts
}

// Grid returns a copy of the board.
func (e *Engine) Grid() *Grid {
	return e.grid.Clone()
}
