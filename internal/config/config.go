// Package config provides YAML-based game configuration loading and
// difficulty management for lanehop.
package config

// GameConfig contains all tunable parameters of the simulation and its
// collaborators. World units are arbitrary; the renderer scales them.
type GameConfig struct {
	Lanes      LanesConfig      `yaml:"lanes"`
	World      WorldConfig      `yaml:"world"`
	Character  CharacterConfig  `yaml:"character"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio"`
}

// LanesConfig defines the lane grid.
type LanesConfig struct {
	Count int `yaml:"count"`
}

// WorldConfig defines the playfield size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CharacterConfig defines the player character.
type CharacterConfig struct {
	X         float64 `yaml:"x"`          // Fixed horizontal position
	Radius    float64 `yaml:"radius"`     // Collision radius
	StartLane int     `yaml:"start_lane"` // Lane on every reset
	SpinRate  float64 `yaml:"spin_rate"`  // Radians per second once the game is over
}

// EnemiesConfig defines enemy bodies.
type EnemiesConfig struct {
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`    // Base leftward speed, world units per second
	Variants int     `yaml:"variants"` // Number of cosmetic kinds
}

// SpawnConfig defines the spawn schedule, in seconds.
type SpawnConfig struct {
	MinDelay     float64 `yaml:"min_delay"`
	MaxDelay     float64 `yaml:"max_delay"`
	InitialDelay float64 `yaml:"initial_delay"`
}

// AudioConfig defines the sound player. It never affects the simulation.
type AudioConfig struct {
	Enabled        bool    `yaml:"enabled"`
	Volume         float64 `yaml:"volume"`           // 0.0 - 1.0
	EvadeCueChance float64 `yaml:"evade_cue_chance"` // Probability of the secondary evade chime
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed factor at max difficulty
	DelayReduction  float64 `yaml:"delay_reduction"`  // Fraction of spawn delay removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset keeps the loaded values.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
