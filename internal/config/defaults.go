package config

import (
	_ "embed"
)

//go:embed defaults/teapot.yaml
var defaultTeapotYAML []byte

// DefaultTeapotConfig returns the default gameplay configuration.
// Mirrors defaults/teapot.yaml; used as the last-resort fallback.
func DefaultTeapotConfig() TeapotConfig {
	return TeapotConfig{
		Playfield: PlayfieldConfig{
			Width:  96,
			Height: 28,
			Scroll: 0.5,
		},
		Timing: TimingConfig{
			FastTickRate:     30,
			SlowTickRate:     10,
			MusicSwitchDelay: 90,
		},
		Player: PlayerConfig{
			Speed:       1.0,
			InitialAmmo: 5,
			StartX:      44,
			StartY:      12,
		},
		Knife: KnifeConfig{
			ThrowSpeedX:  2.5,
			DeflectVYMax: 0.8,
		},
		Spawn: SpawnConfig{
			BroccoliPeriod: 120,
			SidewalkPeriod: 150,
			RoadLinePeriod: 45,
			OnionPeriod:    200,
			OnionScoreGate: 5000,
			KnifePeriod:    180,
		},
		Scoring: ScoringConfig{
			Lamb:        1000,
			KnifePickup: 100,
		},
	}
}
