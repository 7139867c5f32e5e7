package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var (
	flagSimMoves int
	flagSimBoard string
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Autoplay a board without a terminal UI",
	Long: `Play a board headlessly by always taking the hinted move, then print
the final board and statistics. The same seed always gives the same result.

A starting board can be loaded from a text file, one row per line:
  RGBYOP       - tile colors
  -            - row clearer
  |            - column clearer
  *            - bomb
  .            - empty

Examples:
  match3 sim --seed 42
  match3 sim match3_classic --moves 200 --seed 7
  match3 sim --board ./board.txt --moves 10 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimMoves, "moves", 0, "Moves to play (0 = the mode's move limit, or 50 if unlimited)")
	simCmd.Flags().StringVar(&flagSimBoard, "board", "", "Path to a starting board")
}

func runSim(_ *cobra.Command, args []string) error {
	gameID := defaultMode
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'match3 list' to see available modes", gameID)
	}
	if err := applyGameFlags(); err != nil {
		return err
	}
	preset, _ := config.ParsePreset(flagDifficulty) //nolint:errcheck // validated by applyGameFlags

	mode := match3.ModeStandard
	if gameID == "match3_classic" {
		mode = match3.ModeClassic
	}
	cfg, events := match3.LoadConfig(mode, preset)
	logEvent := func(e core.Event) {
		if e.Kind == core.EventWarning {
			log.Warn(e.Message, "err", e.Err)
			return
		}
		log.Debug(e.Message)
	}
	for _, e := range events {
		logEvent(e)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eng, err := newSimEngine(cfg, seed)
	if err != nil {
		return err
	}

	moves := flagSimMoves
	if moves <= 0 {
		moves = cfg.Rules.MoveLimit
	}
	if moves <= 0 {
		moves = 50
	}

	log.Info("simulating", "mode", gameID, "seed", seed, "size", eng.Size(), "moves", moves)
	start := time.Now()
	st := match3.Autoplay(eng, moves, logEvent)
	log.Info("simulation finished", "elapsed", time.Since(start).Round(time.Microsecond))

	fmt.Println(eng.Grid().String())
	fmt.Println()
	fmt.Printf("Seed:        %d\n", seed)
	fmt.Printf("Score:       %d\n", st.Score)
	fmt.Printf("Moves:       %d (%d swaps, %d specials)\n", st.Moves, st.Swaps, st.Activations)
	fmt.Printf("Cascades:    %d (best chain %d)\n", st.Cascades, st.BestChain)
	fmt.Printf("Shuffles:    %d\n", st.Shuffles)
	if st.Stuck {
		fmt.Println("Stopped:     no moves left after shuffling")
	}
	return nil
}

// newSimEngine builds the engine from --board when given, otherwise from cfg.
func newSimEngine(cfg config.Match3Config, seed int64) (*engine.Engine, error) {
	opts := match3.EngineOptions(cfg, seed)
	if flagSimBoard == "" {
		return engine.New(opts)
	}

	data, err := os.ReadFile(flagSimBoard)
	if err != nil {
		return nil, fmt.Errorf("reading board: %w", err)
	}
	grid, err := engine.ParseGrid(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing board %s: %w", flagSimBoard, err)
	}
	return engine.NewWithGrid(grid, opts)
}
