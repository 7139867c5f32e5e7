package match3

import (
	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/engine"
)

// LoadConfig resolves the configuration for a mode and difficulty preset.
// A broken config file falls back to the defaults and is reported as a
// warning event.
func LoadConfig(mode Mode, preset config.DifficultyPreset) (config.Match3Config, []core.Event) {
	var events []core.Event

	cfg, err := config.LoadMatch3(configPath)
	if err != nil {
		events = append(events, core.Event{Kind: core.EventWarning, Message: "config not loaded, using defaults", Err: err})
		cfg = config.DefaultMatch3Config()
	}
	config.ApplyMatch3Preset(&cfg, preset)

	if mode == ModeClassic {
		cfg.Board.InitialBoard = config.InitialBoardRandom
		cfg.Rules.MoveLimit = 0
	}
	return cfg, events
}

// EngineOptions converts a game configuration to engine options.
func EngineOptions(cfg config.Match3Config, seed int64) engine.Options {
	seeding := engine.SeedClean
	if cfg.Board.InitialBoard == config.InitialBoardRandom {
		seeding = engine.SeedRandom
	}
	return engine.Options{
		Size:       cfg.Board.Size,
		Colors:     cfg.Board.Colors,
		Seed:       seed,
		Seeding:    seeding,
		MaxCascade: cfg.Rules.MaxCascade,
	}
}
