package config

import (
	_ "embed"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the default match-3 configuration.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Size:         8,
			Colors:       5,
			InitialBoard: InitialBoardClean,
		},
		Rules: RulesConfig{
			MoveLimit:  30,
			MaxCascade: 64,
		},
		Display: DisplayConfig{
			CellWidth: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultMatch3YAML
}
