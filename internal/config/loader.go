package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("config: invalid")

const t2048File = "t2048.yaml"

// LoadT2048 loads the 2048 configuration.
// Search order: customPath -> ~/.plus2048/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error. Other locations
// are skipped silently when missing or broken. The chosen config is
// validated before it is returned.
func LoadT2048(customPath string) (T2048Config, error) {
	cfg, err := readT2048(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readT2048(customPath string) (T2048Config, error) {
	var cfg T2048Config

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(t2048File), filepath.Join("configs", t2048File)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var found T2048Config
		if err := yaml.Unmarshal(data, &found); err == nil {
			return found, nil
		}
	}

	if err := yaml.Unmarshal(defaultT2048YAML, &cfg); err != nil {
		return DefaultT2048Config(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".plus2048", "configs", filename)
}

// Validate checks every board against the engine rules and every campaign
// target.
func (c T2048Config) Validate() error {
	if err := c.Endless.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: endless: %w", ErrInvalidConfig, err)
	}
	if err := c.BlackHole.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: blackhole: %w", ErrInvalidConfig, err)
	}
	if len(c.Campaign) == 0 {
		return fmt.Errorf("%w: campaign has no levels", ErrInvalidConfig)
	}
	for i, lvl := range c.Campaign {
		if lvl.Target < 4 || lvl.Target&(lvl.Target-1) != 0 {
			return fmt.Errorf("%w: level %d target %d is not a power of two above 2", ErrInvalidConfig, i+1, lvl.Target)
		}
		if err := lvl.Board.Rules().Validate(); err != nil {
			return fmt.Errorf("%w: level %d: %w", ErrInvalidConfig, i+1, err)
		}
	}
	a := c.Animation
	if a.SlideTicks < 0 || a.PopTicks < 0 || a.ShakeTicks < 0 || a.LevelClearTicks < 0 {
		return fmt.Errorf("%w: negative animation length", ErrInvalidConfig)
	}
	return nil
}
