// Package config provides YAML-based game configuration loading and
// difficulty presets for the match-3 game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration is out of range.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Initial board policies accepted in board.initial_board.
const (
	InitialBoardClean  = "clean"
	InitialBoardRandom = "random"
)

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the board shape and palette.
type BoardConfig struct {
	Size         int    `yaml:"size"`
	Colors       int    `yaml:"colors"`
	InitialBoard string `yaml:"initial_board"` // "clean" or "random"
}

// RulesConfig defines per-game limits.
type RulesConfig struct {
	MoveLimit  int `yaml:"move_limit"`  // 0 = unlimited
	MaxCascade int `yaml:"max_cascade"` // Resolving rounds per move
}

// DisplayConfig defines how the board is drawn.
type DisplayConfig struct {
	CellWidth int `yaml:"cell_width"` // Terminal columns per tile
}

// Validate checks that every field is in its allowed range.
func (c Match3Config) Validate() error {
	switch {
	case c.Board.Size < 3 || c.Board.Size > 16:
		return fmt.Errorf("%w: board.size %d not in [3, 16]", ErrInvalidConfig, c.Board.Size)
	case c.Board.Colors < 3 || c.Board.Colors > 6:
		return fmt.Errorf("%w: board.colors %d not in [3, 6]", ErrInvalidConfig, c.Board.Colors)
	case c.Board.InitialBoard != InitialBoardClean && c.Board.InitialBoard != InitialBoardRandom:
		return fmt.Errorf("%w: board.initial_board %q", ErrInvalidConfig, c.Board.InitialBoard)
	case c.Rules.MoveLimit < 0:
		return fmt.Errorf("%w: rules.move_limit %d is negative", ErrInvalidConfig, c.Rules.MoveLimit)
	case c.Rules.MaxCascade < 0:
		return fmt.Errorf("%w: rules.max_cascade %d is negative", ErrInvalidConfig, c.Rules.MaxCascade)
	case c.Display.CellWidth < 2 || c.Display.CellWidth > 4:
		return fmt.Errorf("%w: display.cell_width %d not in [2, 4]", ErrInvalidConfig, c.Display.CellWidth)
	}
	return nil
}
