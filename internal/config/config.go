// Package config provides YAML-based game configuration loading and
// difficulty presets for the 2048 modes.
package config

import "github.com/vovakirdan/plus2048/internal/games/t2048/engine"

// T2048Config contains all configuration for the 2048 modes.
type T2048Config struct {
	Endless   BoardConfig     `yaml:"endless"`
	BlackHole BoardConfig     `yaml:"blackhole"`
	Campaign  []LevelConfig   `yaml:"campaign"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoardConfig describes the board a session starts with.
type BoardConfig struct {
	Size        int          `yaml:"size"`
	HazardRows  []int        `yaml:"hazard_rows"`
	StartTiles  []CellConfig `yaml:"start_tiles"`
	RandomTiles int          `yaml:"random_tiles"`
}

// CellConfig is a board coordinate in YAML.
type CellConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// LevelConfig is one campaign level: a fresh board and a tile to reach.
type LevelConfig struct {
	Name   string      `yaml:"name"`
	Target int         `yaml:"target"`
	Board  BoardConfig `yaml:"board"`
}

// AnimationConfig sets animation lengths in ticks.
type AnimationConfig struct {
	SlideTicks      int `yaml:"slide_ticks"`
	PopTicks        int `yaml:"pop_ticks"`
	ShakeTicks      int `yaml:"shake_ticks"`
	LevelClearTicks int `yaml:"level_clear_ticks"`
}

// Rules converts the board config to engine rules.
func (b BoardConfig) Rules() engine.Rules {
	rules := engine.Rules{
		Size:        b.Size,
		HazardRows:  append([]int(nil), b.HazardRows...),
		RandomTiles: b.RandomTiles,
	}
	for _, c := range b.StartTiles {
		rules.StartTiles = append(rules.StartTiles, engine.P(c.Row, c.Col))
	}
	return rules
}
