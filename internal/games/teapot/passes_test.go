package teapot

import "testing"

func countKind(l *EntityList, k Kind) int {
	n := 0
	l.Each(func(e *Entity) {
		if e.Kind == k {
			n++
		}
	})
	return n
}

func TestMovePassMovesFinishedEntityExactlyOnce(t *testing.T) {
	st := newTestState(t, NopCueSink{})

	b := newBroccoli(st)
	b.X = -offscreenMargin + 1 // one step from pruning
	b.VX = -10
	st.foreground.Add(b)
	before := b.X

	movePass(st)

	if got := countKind(st.foreground, KindBroccoli); got != 0 {
		t.Fatalf("finished broccoli still on the field (%d)", got)
	}
	if b.X != before+b.VX {
		t.Errorf("evicted entity moved to %f, expected exactly one step to %f", b.X, before+b.VX)
	}
}

func TestMovePassSplicesSpawns(t *testing.T) {
	st := newTestState(t, NopCueSink{})

	spawnPass(st) // wave rule queues the first lamb
	if countKind(st.foreground, KindLamb) != 0 {
		t.Fatal("spawned lamb visible before the splice")
	}

	movePass(st)
	if countKind(st.foreground, KindLamb) != 1 {
		t.Fatal("spawned lamb missing after the splice")
	}
}

func TestWaveRespawnsAfterEviction(t *testing.T) {
	st := newTestState(t, NopCueSink{})

	spawnPass(st)
	movePass(st)
	first := st.wave
	if first == nil {
		t.Fatal("no wave lamb after first spawn")
	}

	// Only one lamb at a time: further spawn passes add nothing.
	spawnPass(st)
	movePass(st)
	if countKind(st.foreground, KindLamb) != 1 {
		t.Fatal("second lamb spawned while the first was still around")
	}

	// Push the lamb off the field; eviction clears the wave slot.
	first.X = -100
	movePass(st)
	if st.wave != nil {
		t.Fatal("wave slot still set after the lamb left")
	}

	spawnPass(st)
	movePass(st)
	if st.wave == nil || st.wave == first {
		t.Error("next wave lamb did not spawn")
	}
}

func TestSpawnTimersFireOnPeriod(t *testing.T) {
	st := newTestState(t, NopCueSink{})

	for i := 0; i < st.cfg.Spawn.BroccoliPeriod; i++ {
		spawnPass(st)
	}
	st.foreground.Splice()
	st.background.Splice()

	if countKind(st.foreground, KindBroccoli) != 1 {
		t.Errorf("broccoli count = %d after one period, expected 1",
			countKind(st.foreground, KindBroccoli))
	}
	// Knife period is longer, so nothing yet.
	if countKind(st.foreground, KindKnife) != 0 {
		t.Error("grounded knife spawned before its period elapsed")
	}
}

func TestOnionGatedByScore(t *testing.T) {
	st := newTestState(t, NopCueSink{})

	for i := 0; i < st.cfg.Spawn.OnionPeriod; i++ {
		spawnPass(st)
	}
	st.foreground.Splice()
	if countKind(st.foreground, KindOnion) != 0 {
		t.Fatal("onion spawned below the score gate")
	}

	st.score = st.cfg.Spawn.OnionScoreGate
	for i := 0; i < st.cfg.Spawn.OnionPeriod; i++ {
		spawnPass(st)
	}
	st.foreground.Splice()
	if countKind(st.foreground, KindOnion) != 1 {
		t.Errorf("onion count = %d past the score gate, expected 1",
			countKind(st.foreground, KindOnion))
	}
}

func TestInteractPassEvictsPickedUpKnife(t *testing.T) {
	st := newTestState(t, NopCueSink{})
	st.ammo = 0
	p := placePlayer(st)

	knife := newGroundedKnife(st)
	knife.X, knife.Y = p.X, p.Y
	st.foreground.Add(knife)

	interactPass(st)

	if st.ammo != 1 {
		t.Fatalf("ammo = %d, expected 1 after the pickup", st.ammo)
	}
	// The pickup finishes the knife; it must leave the field this tick,
	// not linger until the next movement pass.
	if countKind(st.foreground, KindKnife) != 0 {
		t.Error("picked-up knife still on the field after the pass")
	}
	if countKind(st.foreground, KindPlayer) != 1 {
		t.Error("player evicted alongside the knife")
	}
}

func TestInteractPassBoundExcludesMidPassSpawns(t *testing.T) {
	st := newTestState(t, NopCueSink{})
	st.ammo = 1
	p := placePlayer(st)

	lamb := newLamb(st)
	lamb.X, lamb.Y = p.X, p.Y
	st.foreground.Add(lamb)

	// Something queued before the pass must not take part in it.
	pending := newBroccoli(st)
	pending.X, pending.Y = p.X, p.Y
	st.foreground.Spawn(pending)

	interactPass(st)

	if st.defeated {
		t.Error("pending hazard interacted before its splice")
	}
	if lamb.Alive {
		t.Error("live pair skipped during the pass")
	}
	// The pass splices at the end, so the hazard is live next tick.
	if countKind(st.foreground, KindBroccoli) != 1 {
		t.Error("pending hazard missing after the pass splice")
	}
}
