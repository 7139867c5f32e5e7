package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyZen    DifficultyPreset = "zen"
)

// presetRules holds what a preset overrides. Zero fields keep the loaded value.
type presetRules struct {
	colors    int
	moveLimit int
	unlimited bool
}

var presets = map[DifficultyPreset]presetRules{
	DifficultyEasy:   {colors: 4, moveLimit: 40},
	DifficultyNormal: {colors: 5, moveLimit: 30},
	DifficultyHard:   {colors: 6, moveLimit: 20},
	DifficultyZen:    {unlimited: true},
}

// Presets returns the preset names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyZen}
}

// ParsePreset converts a flag value to a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return "", nil
	}
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or zen)", ErrInvalidConfig, s)
	}
	return p, nil
}

// ApplyMatch3Preset modifies the config based on a difficulty preset.
// Unknown or empty presets leave the config unchanged.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	rules, ok := presets[preset]
	if !ok {
		return
	}
	if rules.colors > 0 {
		cfg.Board.Colors = rules.colors
	}
	switch {
	case rules.unlimited:
		cfg.Rules.MoveLimit = 0
	case rules.moveLimit > 0:
		cfg.Rules.MoveLimit = rules.moveLimit
	}
}
