package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "lanehop.yaml"

// ValidationError describes a config value that cannot be simulated.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Load loads the game configuration.
// Search order: customPath -> ~/.lanehop/configs/lanehop.yaml -> ./configs/lanehop.yaml -> embedded default
//
// A custom path that cannot be read, parsed or validated is an error. Files in
// the implicit locations are skipped when broken.
func Load(customPath string) (GameConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", FileName)); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := loadBytes(defaultYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultConfig(), nil
	}
	return cfg, nil
}

// loadFile reads and parses one YAML file on top of the defaults, so a file
// that only overrides a few keys still yields a complete config.
func loadFile(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := loadBytes(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func loadBytes(data []byte) (GameConfig, error) {
	cfg := DefaultConfig()
	err := yaml.Unmarshal(data, &cfg)
	return cfg, err
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lanehop", "configs", filename)
}

// Validate checks the values the simulation depends on.
func (c GameConfig) Validate() error {
	switch {
	case c.Lanes.Count < 1:
		return ValidationError{"lanes.count", "must be at least 1"}
	case c.World.Width <= 0 || c.World.Height <= 0:
		return ValidationError{"world", "width and height must be positive"}
	case c.Character.Radius <= 0 || c.Enemies.Radius <= 0:
		return ValidationError{"radius", "character and enemy radius must be positive"}
	case c.Character.X < 0 || c.Character.X > c.World.Width:
		return ValidationError{"character.x", "must lie inside the world"}
	case c.Enemies.Speed <= 0:
		return ValidationError{"enemies.speed", "must be positive"}
	case c.Enemies.Variants < 1:
		return ValidationError{"enemies.variants", "must be at least 1"}
	case c.Spawn.MinDelay < 0 || c.Spawn.MaxDelay < c.Spawn.MinDelay:
		return ValidationError{"spawn", "need 0 <= min_delay <= max_delay"}
	case c.Spawn.InitialDelay < 0:
		return ValidationError{"spawn.initial_delay", "must not be negative"}
	case c.Audio.EvadeCueChance < 0 || c.Audio.EvadeCueChance > 1:
		return ValidationError{"audio.evade_cue_chance", "must be within [0, 1]"}
	}
	return nil
}

// Marshal renders the config as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot marshal: %w", err)
	}
	return data, nil
}
