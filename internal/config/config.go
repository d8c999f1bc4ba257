// Package config provides YAML-based gameplay configuration loading for the
// teapot arcade.
package config

// TeapotConfig contains all gameplay tuning for Carnivorous Teapot.
type TeapotConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Timing    TimingConfig    `yaml:"timing"`
	Player    PlayerConfig    `yaml:"player"`
	Knife     KnifeConfig     `yaml:"knife"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// PlayfieldConfig defines the fixed logical playfield rectangle.
// All entity positions and off-screen pruning are relative to it,
// independent of the physical terminal size.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Scroll float64 `yaml:"scroll"` // Road scroll speed in cells per tick
}

// TimingConfig defines tick rates per phase and delayed hooks.
type TimingConfig struct {
	FastTickRate     int `yaml:"fast_tick_rate"`     // Running phase
	SlowTickRate     int `yaml:"slow_tick_rate"`     // Attract and GameOver phases
	MusicSwitchDelay int `yaml:"music_switch_delay"` // Ticks after game over before the music cue switches
}

// PlayerConfig defines the player-controlled teapot.
type PlayerConfig struct {
	Speed       float64 `yaml:"speed"`        // Cells per tick per held direction
	InitialAmmo int     `yaml:"initial_ammo"` // Knives at run start
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
}

// KnifeConfig defines projectile motion.
type KnifeConfig struct {
	ThrowSpeedX  float64 `yaml:"throw_speed_x"`  // Horizontal velocity of a thrown knife
	DeflectVYMax float64 `yaml:"deflect_vy_max"` // Bound for randomized vertical deflection
}

// SpawnConfig defines the per-tick spawn rule periods (in ticks) and gates.
type SpawnConfig struct {
	BroccoliPeriod int `yaml:"broccoli_period"`
	SidewalkPeriod int `yaml:"sidewalk_period"`
	RoadLinePeriod int `yaml:"roadline_period"`
	OnionPeriod    int `yaml:"onion_period"`
	OnionScoreGate int `yaml:"onion_score_gate"` // Onions spawn only once score reaches this
	KnifePeriod    int `yaml:"knife_period"`     // Grounded knife pickups
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	Lamb        int `yaml:"lamb"`
	KnifePickup int `yaml:"knife_pickup"`
}
