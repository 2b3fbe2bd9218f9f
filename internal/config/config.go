// Package config provides YAML and TOML configuration loading for frotz.
package config

// FrotzConfig contains all configuration for the puzzle game and its tools.
type FrotzConfig struct {
	Gameplay GameplayConfig `yaml:"gameplay" toml:"gameplay"`
	Timing   TimingConfig   `yaml:"timing" toml:"timing"`
	Levels   LevelsConfig   `yaml:"levels" toml:"levels"`
	Storage  StorageConfig  `yaml:"storage" toml:"storage"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
	Server   ServerConfig   `yaml:"server" toml:"server"`
}

// GameplayConfig defines simulation parameters.
type GameplayConfig struct {
	PulseLifetime  int `yaml:"pulse_lifetime" toml:"pulse_lifetime"`     // Ticks before a pulse fizzles
	MaxSettleTicks int `yaml:"max_settle_ticks" toml:"max_settle_ticks"` // Cap on ticks run after one command
}

// TimingConfig defines how fast the platform drives the simulation.
type TimingConfig struct {
	TickRate  int    `yaml:"tick_rate" toml:"tick_rate"`   // Frames per second
	StepEvery int    `yaml:"step_every" toml:"step_every"` // Frames per simulation tick
	Pace      string `yaml:"pace" toml:"pace"`             // Optional preset overriding step_every
}

// LevelsConfig defines where puzzles come from.
type LevelsConfig struct {
	Dir   string `yaml:"dir" toml:"dir"`     // Extra level directory; empty uses only the built-in campaign
	Start string `yaml:"start" toml:"start"` // Level ID or name to start with
}

// StorageConfig defines the local database.
type StorageConfig struct {
	DBPath string `yaml:"db_path" toml:"db_path"`
}

// LoggingConfig defines log output.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"` // debug, info, warn, error
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Host        string `yaml:"host" toml:"host"`
	Port        int    `yaml:"port" toml:"port"`
	HostKeyPath string `yaml:"host_key_path" toml:"host_key_path"`
}
