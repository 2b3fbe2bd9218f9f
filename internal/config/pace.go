package config

// Pace is a named animation speed for the settling simulation.
type Pace string

const (
	PaceRelaxed Pace = "relaxed"
	PaceNormal  Pace = "normal"
	PaceBrisk   Pace = "brisk"
	PaceInstant Pace = "instant" // One simulation tick per frame
)

// StepEveryForPace returns the frames per simulation tick for a preset,
// or 0 for an unknown preset.
func StepEveryForPace(p Pace) int {
	switch p {
	case PaceRelaxed:
		return 12
	case PaceNormal:
		return 6
	case PaceBrisk:
		return 2
	case PaceInstant:
		return 1
	default:
		return 0
	}
}

// ApplyPace modifies the config based on a pace preset. Unknown presets
// leave it unchanged.
func ApplyPace(cfg *FrotzConfig, p Pace) {
	n := StepEveryForPace(p)
	if n == 0 {
		return
	}
	cfg.Timing.Pace = string(p)
	cfg.Timing.StepEvery = n
}
