package teapot

import (
	"math"

	"github.com/jfuerth/carnivorous-teapot/internal/core"
)

// Move advances the entity by one tick. It reads the shared state (input,
// config, rng) but mutates only this entity, except for the player's
// knife throw which defers a spawn to the foreground pending buffer.
func (e *Entity) Move(st *state) {
	switch e.Kind {
	case KindPlayer:
		e.movePlayer(st)
	case KindLamb:
		e.X += e.VX
		e.Y += e.VY
	case KindKnife:
		if e.Motion == MotionThrown {
			e.X += e.VX
			e.Y += e.VY
		} else {
			e.X -= st.cfg.Playfield.Scroll
		}
	case KindBroccoli:
		e.X += e.VX
	case KindOnion:
		e.X += e.VX
		e.bob += onionBobRate
		e.Y = e.baseY + onionBobAmplitude*math.Sin(e.bob)
	case KindRoadLine, KindSidewalk:
		e.X -= st.cfg.Playfield.Scroll
	default:
		// Overlays hold position but recenter once their sheet has
		// decoded, since a late decode can leave them placed blind.
		if w, _ := e.Size(); w > 0 {
			e.X = (st.cfg.Playfield.Width - float64(w)) / 2
		}
	}
}

// movePlayer applies held directions, clamps to the playfield, and
// handles the fire action. A defeated player no longer responds.
func (e *Entity) movePlayer(st *state) {
	if st.phase != PhaseRunning || st.defeated {
		return
	}

	speed := st.cfg.Player.Speed
	if st.input.Has(core.ActionUp) {
		e.Y -= speed
	}
	if st.input.Has(core.ActionDown) {
		e.Y += speed
	}
	if st.input.Has(core.ActionLeft) {
		e.X -= speed
	}
	if st.input.Has(core.ActionRight) {
		e.X += speed
	}
	e.ClampToPlayfield(st.cfg.Playfield.Width, st.cfg.Playfield.Height)

	if st.input.Has(core.ActionFire) && st.ammo > 0 {
		st.ammo--
		st.foreground.Spawn(newThrownKnife(st, e))
		st.sink.Play("fire")
		if st.ammo == 0 {
			e.SetAnimation("walk")
		}
	}
}

// FinishedIn reports whether the entity should be evicted after this
// tick's movement. The player is clamped and never finishes; overlays
// finish only when explicitly removed.
func (e *Entity) FinishedIn(st *state) bool {
	if e.removed {
		return true
	}
	switch e.Kind {
	case KindPlayer,
		KindTitleOverlay, KindPromptOverlay, KindCreditsOverlay,
		KindGameOverOverlay, KindHighScoreOverlay:
		return false
	default:
		return e.offscreen(st.cfg.Playfield.Width, st.cfg.Playfield.Height)
	}
}
