package config

import (
	_ "embed"
)

//go:embed defaults/frotz.yaml
var defaultFrotzYAML []byte

// DefaultFrotzConfig returns the hardcoded default configuration.
func DefaultFrotzConfig() FrotzConfig {
	return FrotzConfig{
		Gameplay: GameplayConfig{
			PulseLifetime:  16,
			MaxSettleTicks: 256,
		},
		Timing: TimingConfig{
			TickRate:  60,
			StepEvery: 6,
		},
		Storage: StorageConfig{
			DBPath: "~/.frotz/frotz.db",
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        23234,
			HostKeyPath: ".ssh/frotz_ed25519",
		},
	}
}
