// Package t2048 implements 2048 with black holes on top of the engine
// package: campaign, endless and black-hole modes, animation and rendering.
package t2048

import "github.com/vovakirdan/plus2048/internal/config"

// Level defines a campaign level: a fresh board and a target tile.
type Level struct {
	ID     int
	Name   string
	Target int
	Board  config.BoardConfig
}

// Hazards returns the number of black holes on the level's board.
func (l Level) Hazards() int {
	return len(l.Board.HazardRows)
}

// levelsFrom builds the campaign from a config.
func levelsFrom(cfg config.T2048Config) []Level {
	levels := make([]Level, len(cfg.Campaign))
	for i, lc := range cfg.Campaign {
		levels[i] = Level{
			ID:     i + 1,
			Name:   lc.Name,
			Target: lc.Target,
			Board:  lc.Board,
		}
	}
	return levels
}

// Levels returns the campaign under the current config and preset.
func Levels() []Level {
	return levelsFrom(currentConfig())
}

// LevelsFor returns the campaign under the current config with preset
// applied in place of the package preset.
func LevelsFor(preset config.DifficultyPreset) []Level {
	return levelsFrom(configWith(preset))
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels())
}

// GetLevel returns the level at the given index (0-based), or nil.
func GetLevel(index int) *Level {
	levels := Levels()
	if index < 0 || index >= len(levels) {
		return nil
	}
	return &levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	levels := Levels()
	names := make([]string, len(levels))
	for i, lvl := range levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelTargets returns the targets of all levels.
func LevelTargets() []int {
	levels := Levels()
	targets := make([]int, len(levels))
	for i, lvl := range levels {
		targets[i] = lvl.Target
	}
	return targets
}
