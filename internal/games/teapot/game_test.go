package teapot

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/jfuerth/carnivorous-teapot/internal/config"
	"github.com/jfuerth/carnivorous-teapot/internal/core"
)

// memScores is an in-memory ScoreStore that counts saves.
type memScores struct {
	best  int
	saves int
}

func (m *memScores) Load() int { return m.best }

func (m *memScores) Save(v int) error {
	m.best = v
	m.saves++
	return nil
}

func newTestGame(t *testing.T) (*Game, *recordSink, *memScores) {
	t.Helper()
	sink := &recordSink{}
	scores := &memScores{}
	g := &Game{
		cfg:    config.DefaultTeapotConfig(),
		lib:    loadedLibrary(t),
		sink:   sink,
		scores: scores,
		logger: log.New(io.Discard),
	}
	g.Reset(core.RuntimeConfig{ScreenW: 96, ScreenH: 28, Seed: 1})
	return g, sink, scores
}

func press(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(a)
	return f
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func TestResetEntersAttract(t *testing.T) {
	g, sink, _ := newTestGame(t)

	if g.Phase() != PhaseAttract {
		t.Fatalf("phase = %v after Reset, expected attract", g.Phase())
	}
	for _, k := range []Kind{KindTitleOverlay, KindPromptOverlay, KindCreditsOverlay} {
		if countKind(g.st.foreground, k) != 1 {
			t.Errorf("%v count = %d, expected 1", k, countKind(g.st.foreground, k))
		}
	}
	if sink.count("music_title") != 1 {
		t.Errorf("title music played %d times, expected 1", sink.count("music_title"))
	}

	st := g.State()
	if st.Running || st.GameOver {
		t.Error("attract reported as running or game over")
	}
	if st.TickRate != g.cfg.Timing.SlowTickRate {
		t.Errorf("attract tick rate = %d, expected %d", st.TickRate, g.cfg.Timing.SlowTickRate)
	}
}

func TestStartBeginsFreshRun(t *testing.T) {
	g, sink, _ := newTestGame(t)

	g.Step(press(core.ActionStart))

	if g.Phase() != PhaseRunning {
		t.Fatalf("phase = %v after start, expected running", g.Phase())
	}
	st := g.State()
	if st.Score != 0 {
		t.Errorf("score = %d at run start, expected 0", st.Score)
	}
	if st.Ammo != g.cfg.Player.InitialAmmo {
		t.Errorf("ammo = %d at run start, expected %d", st.Ammo, g.cfg.Player.InitialAmmo)
	}
	if st.TickRate != g.cfg.Timing.FastTickRate {
		t.Errorf("running tick rate = %d, expected %d", st.TickRate, g.cfg.Timing.FastTickRate)
	}
	if g.st.player == nil || countKind(g.st.foreground, KindPlayer) != 1 {
		t.Error("run started without exactly one player")
	}
	if countKind(g.st.foreground, KindTitleOverlay) != 0 {
		t.Error("attract overlays leaked into the run")
	}
	if sink.count("music_game") != 1 {
		t.Errorf("game music played %d times, expected 1", sink.count("music_game"))
	}
}

func TestLoadingGateHoldsStart(t *testing.T) {
	sink := &recordSink{}
	g := &Game{
		cfg:    config.DefaultTeapotConfig(),
		lib:    unloadedLibrary(t),
		sink:   sink,
		scores: &memScores{},
		logger: log.New(io.Discard),
	}
	g.Reset(core.RuntimeConfig{Seed: 1})

	g.Step(press(core.ActionStart))
	if g.Phase() != PhaseAttract {
		t.Fatal("run started before assets decoded")
	}
	if !g.st.startRequested {
		t.Fatal("start press was not latched")
	}

	g.lib.Load()
	g.Step(idle())
	if g.Phase() != PhaseRunning {
		t.Error("latched start did not fire once assets were ready")
	}
}

func TestDefeatAppliesAtNextTickStart(t *testing.T) {
	g, sink, _ := newTestGame(t)
	g.Step(press(core.ActionStart))

	b := newBroccoli(g.st)
	b.X, b.Y = g.st.player.X, g.st.player.Y
	b.VX = 0
	g.st.foreground.Add(b)

	res := g.Step(idle())
	if res.State.GameOver {
		t.Fatal("game over reported on the tick of the hit")
	}
	if !g.st.defeated {
		t.Fatal("hit did not flag the player as defeated")
	}
	if g.st.player.AnimationName() != "defeated" {
		t.Errorf("player animation = %q, expected defeated", g.st.player.AnimationName())
	}

	res = g.Step(idle())
	if !res.State.GameOver {
		t.Fatal("game over missing on the following tick")
	}
	if res.State.TickRate != g.cfg.Timing.SlowTickRate {
		t.Errorf("game-over tick rate = %d, expected %d", res.State.TickRate, g.cfg.Timing.SlowTickRate)
	}
	if countKind(g.st.foreground, KindGameOverOverlay) != 1 {
		t.Error("game-over overlay missing")
	}
	if sink.count("defeat") != 1 {
		t.Errorf("defeat cue played %d times, expected 1", sink.count("defeat"))
	}
}

func TestHighScoreSavedExactlyOnce(t *testing.T) {
	g, _, scores := newTestGame(t)
	scores.best = 500
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.Step(press(core.ActionStart))

	g.st.score = 1500
	g.st.defeated = true
	g.Step(idle())

	if scores.saves != 1 {
		t.Fatalf("saves = %d, expected exactly 1", scores.saves)
	}
	if scores.best != 1500 {
		t.Errorf("saved score = %d, expected 1500", scores.best)
	}
	if countKind(g.st.foreground, KindHighScoreOverlay) != 1 {
		t.Error("high-score overlay missing")
	}

	for i := 0; i < 10; i++ {
		g.Step(idle())
	}
	if scores.saves != 1 {
		t.Errorf("saves = %d after lingering on game over, expected 1", scores.saves)
	}
	if countKind(g.st.foreground, KindHighScoreOverlay) != 1 {
		t.Error("high-score overlay duplicated")
	}
}

func TestNoCelebrationBelowHighScore(t *testing.T) {
	g, _, scores := newTestGame(t)
	scores.best = 5000
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.Step(press(core.ActionStart))

	g.st.score = 100
	g.st.defeated = true
	g.Step(idle())

	if scores.saves != 0 {
		t.Errorf("saves = %d for a losing score, expected 0", scores.saves)
	}
	if countKind(g.st.foreground, KindHighScoreOverlay) != 0 {
		t.Error("high-score overlay shown for a losing score")
	}
}

func TestGameOverReturnsToAttract(t *testing.T) {
	g, sink, _ := newTestGame(t)
	g.Step(press(core.ActionStart))
	g.st.defeated = true
	g.Step(idle())

	g.Step(press(core.ActionStart))

	if g.Phase() != PhaseAttract {
		t.Fatalf("phase = %v, expected attract", g.Phase())
	}
	if countKind(g.st.foreground, KindTitleOverlay) != 1 {
		t.Error("title overlay missing back on attract")
	}
	if g.State().Score != 0 {
		t.Error("score survived the return to attract")
	}
	if sink.count("music_title") != 2 {
		t.Errorf("title music played %d times, expected 2", sink.count("music_title"))
	}
}

func TestStreetPersistsOutsideRunning(t *testing.T) {
	g, _, _ := newTestGame(t)

	// Long enough for every prepopulated piece to scroll off the field;
	// the scenery timers must keep the street fed on the title screen.
	for i := 0; i < 600; i++ {
		g.Step(idle())
	}
	if countKind(g.st.background, KindRoadLine) == 0 {
		t.Error("road lines ran out on the title screen")
	}
	if countKind(g.st.background, KindSidewalk) == 0 {
		t.Error("sidewalk ran out on the title screen")
	}

	// Same on a lingering game-over screen.
	g.Step(press(core.ActionStart))
	g.st.defeated = true
	g.Step(idle())
	for i := 0; i < 600; i++ {
		g.Step(idle())
	}
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected game over", g.Phase())
	}
	if countKind(g.st.background, KindRoadLine) == 0 {
		t.Error("road lines ran out on the game-over screen")
	}
	if countKind(g.st.background, KindSidewalk) == 0 {
		t.Error("sidewalk ran out on the game-over screen")
	}
}

func TestDirgeStartsAfterDelay(t *testing.T) {
	g, sink, _ := newTestGame(t)
	g.Step(press(core.ActionStart))
	g.st.defeated = true
	g.Step(idle()) // transition tick counts as the first game-over tick

	for i := 0; i < g.cfg.Timing.MusicSwitchDelay-2; i++ {
		g.Step(idle())
	}
	if sink.count("music_dirge") != 0 {
		t.Fatal("dirge started before the switch delay")
	}

	g.Step(idle())
	if sink.count("music_dirge") != 1 {
		t.Fatal("dirge missing after the switch delay")
	}

	for i := 0; i < 10; i++ {
		g.Step(idle())
	}
	if sink.count("music_dirge") != 1 {
		t.Error("dirge restarted on later ticks")
	}
}

func TestInvalidTransitionsRejected(t *testing.T) {
	g, _, _ := newTestGame(t)

	if err := g.transition(PhaseGameOver); err == nil {
		t.Error("attract -> game over was accepted")
	}
	if err := g.transition(PhaseAttract); err == nil {
		t.Error("attract -> attract was accepted")
	}
	if g.Phase() != PhaseAttract {
		t.Errorf("phase = %v after rejected transitions, expected attract", g.Phase())
	}
}

func TestFireSpawnsKnifeAndSpendsAmmo(t *testing.T) {
	g, sink, _ := newTestGame(t)
	g.Step(press(core.ActionStart))
	startAmmo := g.st.ammo

	g.Step(press(core.ActionFire))

	if g.st.ammo != startAmmo-1 {
		t.Errorf("ammo = %d after firing, expected %d", g.st.ammo, startAmmo-1)
	}
	if sink.count("fire") != 1 {
		t.Errorf("fire cue played %d times, expected 1", sink.count("fire"))
	}

	var knife *Entity
	g.st.foreground.Each(func(e *Entity) {
		if e.Kind == KindKnife {
			knife = e
		}
	})
	if knife == nil {
		t.Fatal("no knife on the field after firing")
	}
	if knife.Motion != MotionThrown {
		t.Error("fired knife is not in flight")
	}
	if knife.X <= g.st.player.X {
		t.Error("fired knife did not start ahead of the player")
	}
	if g.st.defeated {
		t.Error("player defeated by their own freshly thrown knife")
	}
}

func TestFireWithEmptyHand(t *testing.T) {
	g, sink, _ := newTestGame(t)
	g.Step(press(core.ActionStart))
	g.st.ammo = 0

	g.Step(press(core.ActionFire))

	if countKind(g.st.foreground, KindKnife) != 0 {
		t.Error("knife thrown with empty hand")
	}
	if sink.count("fire") != 0 {
		t.Error("fire cue played with empty hand")
	}
}

func TestPlayerMovementClampsToPlayfield(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Step(press(core.ActionStart))
	// Silence the periodic spawns so nothing can run the player over
	// while we hold a direction for hundreds of ticks.
	g.cfg.Spawn = config.SpawnConfig{}

	for i := 0; i < 200; i++ {
		g.Step(press(core.ActionLeft))
	}
	if g.st.player.X != 0 {
		t.Errorf("player X = %f after holding left, expected clamp at 0", g.st.player.X)
	}

	for i := 0; i < 300; i++ {
		g.Step(press(core.ActionRight))
	}
	w, _ := g.st.player.Size()
	if want := g.cfg.Playfield.Width - float64(w); g.st.player.X != want {
		t.Errorf("player X = %f after holding right, expected clamp at %f", g.st.player.X, want)
	}
}

func TestRenderShowsHUD(t *testing.T) {
	g, _, _ := newTestGame(t)
	scr := core.NewScreen(96, 28)

	g.Render(scr)
	if !strings.Contains(scr.Row(0), "HIGH") {
		t.Error("attract HUD missing the high score")
	}

	g.Step(press(core.ActionStart))
	g.Render(scr)
	if !strings.Contains(scr.Row(0), "SCORE") {
		t.Error("running HUD missing the score")
	}
	if !strings.Contains(scr.Row(0), "KNIVES") {
		t.Error("running HUD missing the ammo count")
	}
}
