package config

import (
	"fmt"
	"slices"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Presets, p) {
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
	return p, nil
}

// ApplyT2048Preset modifies the config based on a difficulty preset.
//
//   - easy removes every black hole.
//   - normal keeps the config as loaded.
//   - hard adds a black hole row to each board that already has black holes.
//   - fixed plays every campaign level on the first level's board; only the
//     targets rise.
func ApplyT2048Preset(cfg *T2048Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.BlackHole.HazardRows = nil
		for i := range cfg.Campaign {
			cfg.Campaign[i].Board.HazardRows = nil
		}
	case DifficultyHard:
		cfg.BlackHole = harder(cfg.BlackHole)
		for i := range cfg.Campaign {
			cfg.Campaign[i].Board = harder(cfg.Campaign[i].Board)
		}
	case DifficultyFixed:
		if len(cfg.Campaign) == 0 {
			return
		}
		first := cfg.Campaign[0].Board
		for i := range cfg.Campaign {
			cfg.Campaign[i].Board = cloneBoard(first)
		}
	}
}

// harder adds one hazard row to a board that has hazards, picking the row
// farthest from the existing ones. Boards without hazards, or with no row
// left to use, are returned as is.
func harder(b BoardConfig) BoardConfig {
	b = cloneBoard(b)
	if len(b.HazardRows) == 0 || len(b.HazardRows) >= b.Size {
		return b
	}
	best, bestGap := -1, -1
	for row := range b.Size {
		if slices.Contains(b.HazardRows, row) || startTilesInRow(b, row) == b.Size {
			continue
		}
		gap := b.Size
		for _, h := range b.HazardRows {
			gap = min(gap, abs(row-h))
		}
		if gap > bestGap {
			best, bestGap = row, gap
		}
	}
	if best < 0 {
		return b
	}
	b.HazardRows = append(b.HazardRows, best)
	slices.Sort(b.HazardRows)
	if cells := b.Size*b.Size - len(b.HazardRows); len(b.StartTiles)+b.RandomTiles > cells {
		b.RandomTiles = cells - len(b.StartTiles)
	}
	return b
}

func startTilesInRow(b BoardConfig, row int) int {
	n := 0
	for _, c := range b.StartTiles {
		if c.Row == row {
			n++
		}
	}
	return n
}

func cloneBoard(b BoardConfig) BoardConfig {
	b.HazardRows = slices.Clone(b.HazardRows)
	b.StartTiles = slices.Clone(b.StartTiles)
	return b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
