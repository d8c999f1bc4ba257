package teapot

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/jfuerth/carnivorous-teapot/internal/assets"
	"github.com/jfuerth/carnivorous-teapot/internal/config"
	"github.com/jfuerth/carnivorous-teapot/internal/core"
)

// Phase is the top-level game phase. Transitions are validated; anything
// outside Attract->Running->GameOver->Attract is rejected and logged.
type Phase int

const (
	// PhaseAttract is the title screen loop.
	PhaseAttract Phase = iota
	// PhaseRunning is live gameplay.
	PhaseRunning
	// PhaseGameOver shows the defeat screen until the player returns to
	// the title.
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAttract:
		return "attract"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// CueSink plays named audio cues. The audio package's Player satisfies it;
// the game holds only this interface so the simulation stays silent and
// testable by default.
type CueSink interface {
	// Play starts the named cue and returns a handle, or 0 if the cue
	// could not start.
	Play(name string) int
	// Stop silences the cue with the given handle.
	Stop(id int)
	// StopAll silences everything. Called on every phase transition.
	StopAll()
}

// NopCueSink discards all cues.
type NopCueSink struct{}

// Play does nothing and returns 0.
func (NopCueSink) Play(string) int { return 0 }

// Stop does nothing.
func (NopCueSink) Stop(int) {}

// StopAll does nothing.
func (NopCueSink) StopAll() {}

// ScoreStore persists the high score. The storage package's
// HighScoreKeeper satisfies it.
type ScoreStore interface {
	// Load returns the best score so far, 0 when none is recorded.
	Load() int
	// Save records a new best score.
	Save(score int) error
}

// nopScores keeps the high score in memory only.
type nopScores struct{ best int }

func (s *nopScores) Load() int        { return s.best }
func (s *nopScores) Save(v int) error { s.best = v; return nil }

// spawnTimers are the countdowns driving periodic spawns during a run.
// Each decrements once per tick and resets to its configured period when
// it fires.
type spawnTimers struct {
	broccoli int
	sidewalk int
	roadLine int
	onion    int
	knife    int
}

// state is the full simulation state for one phase. It is rebuilt from
// scratch on every phase entry; passes receive it by reference and are
// the only code that mutates it mid-phase.
type state struct {
	phase    Phase
	tickRate int

	score     int
	ammo      int
	highScore int
	highSaved bool

	background *EntityList
	foreground *EntityList
	player     *Entity
	// wave is the current lamb. When it is evicted the spawn rule brings
	// in the next one at the field edge.
	wave *Entity

	timers        spawnTimers
	gameOverTicks int

	// defeated is set when the player is hit mid-tick; the transition to
	// PhaseGameOver applies at the start of the next tick.
	defeated bool
	// startRequested latches a start press while assets are still
	// decoding; the loading gate polls readiness each tick until it can
	// enter PhaseRunning.
	startRequested bool

	input core.InputFrame

	rng    *rand.Rand
	cfg    *config.TeapotConfig
	lib    *assets.Library
	sink   CueSink
	logger *log.Logger
}

// newState builds an empty state sharing the game's collaborators.
func newState(cfg *config.TeapotConfig, lib *assets.Library, sink CueSink, rng *rand.Rand, logger *log.Logger) *state {
	return &state{
		background: &EntityList{},
		foreground: &EntityList{},
		cfg:        cfg,
		lib:        lib,
		sink:       sink,
		rng:        rng,
		logger:     logger,
	}
}

// freshTimers resets every spawn countdown to its configured period.
func freshTimers(cfg *config.TeapotConfig) spawnTimers {
	return spawnTimers{
		broccoli: cfg.Spawn.BroccoliPeriod,
		sidewalk: cfg.Spawn.SidewalkPeriod,
		roadLine: cfg.Spawn.RoadLinePeriod,
		onion:    cfg.Spawn.OnionPeriod,
		knife:    cfg.Spawn.KnifePeriod,
	}
}
