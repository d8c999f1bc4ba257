package teapot

import (
	"github.com/jfuerth/carnivorous-teapot/internal/assets"
	"github.com/jfuerth/carnivorous-teapot/internal/core"
)

// Entity is one simulated object on the playfield. Position is the
// top-left corner in playfield-logical units; the sheet gives the visual
// size. Kind-specific fields are only meaningful for their kind.
type Entity struct {
	Kind Kind

	X, Y   float64
	VX, VY float64

	// hit is the collision rectangle relative to (X, Y). Entities with a
	// nil hit never participate in interactions (scenery, overlays).
	hit *core.RectF

	sheet     *assets.Sheet
	anim      Animation
	animName  string
	stepIdx   int
	stepTicks int
	frame     int

	// Motion is the flight sub-state of a knife.
	Motion MotionState
	// Alive distinguishes a walking lamb from an eaten one.
	Alive bool

	// baseY and bob drive the onion's sine weave around its spawn lane.
	baseY float64
	bob   float64

	// removed forces eviction on the next movement pass regardless of
	// position, used for consumed pickups and dismissed overlays.
	removed bool
}

// newEntity creates an entity of the given kind at (x, y), bound to its
// sprite sheet and starting animation.
func newEntity(k Kind, lib *assets.Library, x, y float64, animName string) *Entity {
	e := &Entity{Kind: k, X: x, Y: y, baseY: y}
	if lib != nil {
		e.sheet = lib.Sheet(k.sheetName())
	}
	e.SetAnimation(animName)
	return e
}

// SetAnimation switches to the named animation and resets the frame clock.
// Re-setting the current animation is a no-op so callers can assert the
// desired animation every tick without stalling the cycle.
func (e *Entity) SetAnimation(name string) {
	if name == e.animName {
		return
	}
	e.anim = animFor(e.Kind, name)
	e.animName = name
	e.stepIdx = 0
	e.stepTicks = 0
	if len(e.anim) > 0 {
		e.frame = e.anim[0].Frame
	} else {
		e.frame = 0
	}
}

// AnimationName returns the name of the current animation.
func (e *Entity) AnimationName() string {
	return e.animName
}

// AdvanceFrame returns the frame to show for the current tick and advances
// the animation clock by one tick. While the sheet is not ready it returns
// no frame and the clock does not advance; a sprite whose art has not
// decoded yet simply shows nothing.
func (e *Entity) AdvanceFrame() (assets.Frame, bool) {
	if e.sheet == nil || !e.sheet.Ready() {
		return nil, false
	}
	if len(e.anim) == 0 {
		e.frame = 0
		return e.sheet.Frame(0)
	}

	step := e.anim[e.stepIdx]
	e.frame = step.Frame
	f, ok := e.sheet.Frame(step.Frame)

	e.stepTicks++
	if e.stepTicks >= step.Duration {
		e.stepTicks = 0
		e.stepIdx = (e.stepIdx + 1) % len(e.anim)
	}
	return f, ok
}

// CurrentFrame returns the frame chosen by the last AdvanceFrame call
// without advancing the clock. Render uses this so drawing twice in one
// tick cannot speed animations up.
func (e *Entity) CurrentFrame() (assets.Frame, bool) {
	if e.sheet == nil {
		return nil, false
	}
	return e.sheet.Frame(e.frame)
}

// Size returns the entity's visual dimensions in cells, or zeros while
// the sheet is not ready.
func (e *Entity) Size() (w, h int) {
	if e.sheet == nil {
		return 0, 0
	}
	return e.sheet.Size()
}

// HitRect returns the entity's collision rectangle in playfield
// coordinates. The second return is false for entities that never collide.
func (e *Entity) HitRect() (core.RectF, bool) {
	if e.hit == nil {
		return core.RectF{}, false
	}
	return e.hit.Offset(e.X, e.Y), true
}

// Intersects reports whether both entities have hit rectangles and they
// currently overlap.
func (e *Entity) Intersects(other *Entity) bool {
	a, ok := e.HitRect()
	if !ok {
		return false
	}
	b, ok := other.HitRect()
	if !ok {
		return false
	}
	return a.Intersects(b)
}

// ClampToPlayfield keeps the entity fully inside the playfield. While the
// sheet is not ready the visual size is unknown and clamping is a no-op.
func (e *Entity) ClampToPlayfield(width, height float64) {
	w, h := e.Size()
	if w == 0 || h == 0 {
		return
	}
	e.X = core.ClampF(e.X, 0, width-float64(w))
	e.Y = core.ClampF(e.Y, 0, height-float64(h))
}

// offscreenMargin is how far past the playfield edge an entity may drift
// before it counts as gone. Generous enough that a sprite is fully hidden
// before it is pruned.
const offscreenMargin = 6

// offscreen reports whether the entity is entirely outside the playfield,
// with margin.
func (e *Entity) offscreen(width, height float64) bool {
	w, h := e.Size()
	return e.X+float64(w) < -offscreenMargin ||
		e.X > width+offscreenMargin ||
		e.Y+float64(h) < -offscreenMargin ||
		e.Y > height+offscreenMargin
}

// hitFromSheet builds a hit rectangle matching the sheet's frame size,
// shrunk by inset on every side. Returns nil while the sheet is not ready,
// which leaves the entity inert until its art exists.
func hitFromSheet(s *assets.Sheet, inset float64) *core.RectF {
	if s == nil {
		return nil
	}
	w, h := s.Size()
	if w == 0 || h == 0 {
		return nil
	}
	r := core.NewRectF(inset, inset, float64(w)-2*inset, float64(h)-2*inset)
	if r.W <= 0 || r.H <= 0 {
		return nil
	}
	return &r
}
