package teapot

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jfuerth/carnivorous-teapot/internal/assets"
	"github.com/jfuerth/carnivorous-teapot/internal/config"
	"github.com/jfuerth/carnivorous-teapot/internal/core"
	"github.com/jfuerth/carnivorous-teapot/internal/registry"
)

func init() {
	registry.Register("teapot", func() registry.Game {
		return New()
	})
}

// Game drives the teapot simulation through the registry.Game interface.
// It owns the phase machine; everything inside a phase lives in the state
// struct and is rebuilt on phase entry.
type Game struct {
	cfg    config.TeapotConfig
	rt     core.RuntimeConfig
	lib    *assets.Library
	sink   CueSink
	scores ScoreStore
	logger *log.Logger
	rng    *rand.Rand
	st     *state
}

// New creates a game with default config, silent audio, and in-memory
// scores. Sheet decoding starts in the background immediately; the
// attract screen's loading gate covers the window until it finishes.
func New() *Game {
	g := &Game{
		cfg:    config.DefaultTeapotConfig(),
		sink:   NopCueSink{},
		scores: &nopScores{},
		logger: log.New(io.Discard),
	}
	if lib, err := assets.NewLibrary(); err == nil {
		g.lib = lib
		lib.Start()
	}
	return g
}

// SetConfig replaces the gameplay tuning. Call before Reset.
func (g *Game) SetConfig(cfg config.TeapotConfig) {
	g.cfg = cfg
}

// SetCueSink wires the audio output. Call before Reset.
func (g *Game) SetCueSink(s CueSink) {
	if s != nil {
		g.sink = s
	}
}

// SetScoreStore wires high-score persistence. Call before Reset.
func (g *Game) SetScoreStore(s ScoreStore) {
	if s != nil {
		g.scores = s
	}
}

// SetLogger replaces the default discard logger. Call before Reset.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// ID implements registry.Game.
func (g *Game) ID() string { return "teapot" }

// Title implements registry.Game.
func (g *Game) Title() string { return "Carnivorous Teapot" }

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	if g.st == nil {
		return PhaseAttract
	}
	return g.st.phase
}

// Reset implements registry.Game: it reseeds the RNG and drops into the
// attract phase with the persisted high score loaded.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))

	g.sink.StopAll()
	g.st = newState(&g.cfg, g.lib, g.sink, g.rng, g.logger)
	g.st.highScore = g.scores.Load()
	g.enterAttract()
}

// fastRate is the gameplay tick rate; the platform's --fps override wins
// over the config file.
func (g *Game) fastRate() int {
	if g.rt.TickRate > 0 {
		return g.rt.TickRate
	}
	return g.cfg.Timing.FastTickRate
}

func (g *Game) slowRate() int {
	return g.cfg.Timing.SlowTickRate
}

// validNext is the only transition allowed out of each phase.
var validNext = map[Phase]Phase{
	PhaseAttract:  PhaseRunning,
	PhaseRunning:  PhaseGameOver,
	PhaseGameOver: PhaseAttract,
}

// transition validates and applies a phase change. All live cues stop on
// every transition; each enter function starts its own.
func (g *Game) transition(to Phase) error {
	from := g.st.phase
	if validNext[from] != to {
		g.logger.Error("rejected phase transition", "from", from, "to", to)
		return fmt.Errorf("teapot: invalid transition %s -> %s", from, to)
	}

	g.sink.StopAll()
	switch to {
	case PhaseAttract:
		g.enterAttract()
	case PhaseRunning:
		g.enterRunning()
	case PhaseGameOver:
		g.enterGameOver()
	}
	return nil
}

func (g *Game) enterAttract() {
	st := g.st
	st.phase = PhaseAttract
	st.tickRate = g.slowRate()
	st.background.Clear()
	st.foreground.Clear()
	st.player = nil
	st.wave = nil
	st.defeated = false
	st.startRequested = false
	st.score = 0
	st.ammo = 0
	st.timers = freshTimers(&g.cfg)
	st.gameOverTicks = 0

	prepopulateStreet(st)
	st.foreground.Add(newOverlay(st, KindTitleOverlay, 3))
	st.foreground.Add(newOverlay(st, KindPromptOverlay, 16))
	st.foreground.Add(newOverlay(st, KindCreditsOverlay, st.cfg.Playfield.Height-6))

	st.sink.Play("music_title")
	g.logger.Debug("entered attract", "high_score", st.highScore)
}

func (g *Game) enterRunning() {
	st := g.st
	st.phase = PhaseRunning
	st.tickRate = g.fastRate()
	st.background.Clear()
	st.foreground.Clear()
	st.wave = nil
	st.defeated = false
	st.highSaved = false
	st.score = 0
	st.ammo = g.cfg.Player.InitialAmmo
	st.timers = freshTimers(&g.cfg)
	st.gameOverTicks = 0

	prepopulateStreet(st)
	st.player = newPlayerEntity(st)
	st.foreground.Add(st.player)

	st.sink.Play("music_game")
	g.logger.Info("run started", "seed", g.rt.Seed, "ammo", st.ammo)
}

func (g *Game) enterGameOver() {
	st := g.st
	st.phase = PhaseGameOver
	st.tickRate = g.slowRate()
	st.gameOverTicks = 0

	st.foreground.Add(newOverlay(st, KindGameOverOverlay, 8))
	st.sink.Play("defeat")

	if st.score > st.highScore && !st.highSaved {
		st.highSaved = true
		st.highScore = st.score
		if err := g.scores.Save(st.score); err != nil {
			g.logger.Warn("cannot save high score", "score", st.score, "error", err)
		}
		st.foreground.Add(newOverlay(st, KindHighScoreOverlay, 15))
	}

	g.logger.Info("run ended", "score", st.score, "high_score", st.highScore)
}

// newOverlay builds a static centered overlay at the given Y. Overlays
// recenter themselves each tick so a sheet that decodes late still lands
// in the middle.
func newOverlay(st *state, k Kind, y float64) *Entity {
	e := newEntity(k, st.lib, 0, y, "idle")
	if w, _ := e.Size(); w > 0 {
		e.X = (st.cfg.Playfield.Width - float64(w)) / 2
	} else {
		e.X = st.cfg.Playfield.Width / 2
	}
	return e
}

// Step implements registry.Game: one fixed simulation tick. Deferred
// phase changes (a defeat signaled last tick, a latched start press)
// apply at the top, before any pass runs.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	st := g.st
	st.input = in

	if st.defeated && st.phase == PhaseRunning {
		g.transition(PhaseGameOver)
	}

	switch st.phase {
	case PhaseAttract:
		sceneryPass(st)
		if in.Has(core.ActionStart) {
			st.startRequested = true
		}
		// Loading gate: a start press holds until every sheet has
		// decoded, polled once per tick.
		if st.startRequested && g.lib != nil && g.lib.AllReady(requiredSheets...) {
			g.transition(PhaseRunning)
		}

	case PhaseRunning:
		spawnPass(st)

	case PhaseGameOver:
		sceneryPass(st)
		st.gameOverTicks++
		if st.gameOverTicks == g.cfg.Timing.MusicSwitchDelay {
			st.sink.Play("music_dirge")
		}
		if in.Has(core.ActionStart) {
			g.transition(PhaseAttract)
		}
	}

	movePass(st)
	if st.phase == PhaseRunning {
		interactPass(st)
	}
	animatePass(st)
	st.foreground.SortByDepth()

	return core.StepResult{State: g.State()}
}

// State implements registry.Game.
func (g *Game) State() core.GameState {
	if g.st == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.st.score,
		Ammo:     g.st.ammo,
		GameOver: g.st.phase == PhaseGameOver,
		Running:  g.st.phase == PhaseRunning,
		TickRate: g.st.tickRate,
	}
}
