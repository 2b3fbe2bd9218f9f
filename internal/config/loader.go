package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFrotz loads the frotz configuration.
// Search order: customPath -> ~/.frotz/configs/frotz.{yaml,toml} ->
// ./configs/frotz.{yaml,toml} -> embedded default -> hardcoded default.
// Values missing from a file keep their defaults.
func LoadFrotz(customPath string) (FrotzConfig, error) {
	cfg := DefaultFrotzConfig()

	// Embedded defaults first, so partial files only override what they set
	if err := yaml.Unmarshal(defaultFrotzYAML, &cfg); err != nil {
		cfg = DefaultFrotzConfig()
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(data, customPath, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return finish(cfg), nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := cfg
		if err := decode(data, path, &candidate); err == nil {
			return finish(candidate), nil
		}
	}
	return finish(cfg), nil
}

func searchPaths() []string {
	var paths []string
	for _, name := range []string{"frotz.yaml", "frotz.toml"} {
		if p := userConfigPath(name); p != "" {
			paths = append(paths, p)
		}
	}
	return append(paths,
		filepath.Join("configs", "frotz.yaml"),
		filepath.Join("configs", "frotz.toml"),
	)
}

// decode picks the format from the file extension; anything that is not
// .toml is read as YAML.
func decode(data []byte, path string, cfg *FrotzConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// finish applies the pace preset and repairs values that would stall the game.
func finish(cfg FrotzConfig) FrotzConfig {
	if cfg.Timing.Pace != "" {
		ApplyPace(&cfg, Pace(cfg.Timing.Pace))
	}
	def := DefaultFrotzConfig()
	if cfg.Timing.TickRate <= 0 {
		cfg.Timing.TickRate = def.Timing.TickRate
	}
	if cfg.Timing.StepEvery <= 0 {
		cfg.Timing.StepEvery = 1
	}
	if cfg.Gameplay.PulseLifetime <= 0 {
		cfg.Gameplay.PulseLifetime = def.Gameplay.PulseLifetime
	}
	if cfg.Gameplay.MaxSettleTicks <= 0 {
		cfg.Gameplay.MaxSettleTicks = def.Gameplay.MaxSettleTicks
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".frotz", "configs", filename)
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
