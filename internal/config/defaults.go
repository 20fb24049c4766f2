package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in configuration. It is used when
// the embedded YAML cannot be parsed.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Endless: BoardConfig{Size: 4, RandomTiles: 2},
		BlackHole: BoardConfig{
			Size:        5,
			HazardRows:  []int{2},
			RandomTiles: 2,
		},
		Campaign: []LevelConfig{
			{Name: "Warm-up", Target: 128, Board: BoardConfig{Size: 4, RandomTiles: 2}},
			{Name: "First Contact", Target: 256, Board: BoardConfig{Size: 4, HazardRows: []int{1}, RandomTiles: 2}},
			{Name: "Event Horizon", Target: 512, Board: BoardConfig{Size: 5, HazardRows: []int{2}, RandomTiles: 2}},
		},
		Animation: AnimationConfig{
			SlideTicks:      8,
			PopTicks:        6,
			ShakeTicks:      10,
			LevelClearTicks: 120,
		},
	}
}
