package teapot

// Tuning that is structural rather than gameplay balance, so it stays out
// of the YAML config.
const (
	// sidewalkBand is the height of the walkway strip at the top and
	// bottom of the playfield; the road is everything between.
	sidewalkBand = 4

	lambWalkSpeed = 0.35

	onionBobRate      = 0.18
	onionBobAmplitude = 1.5
)

// roadBand returns the Y range on which an entity of height h can travel
// without leaving the road.
func (st *state) roadBand(h int) (minY, maxY float64) {
	minY = sidewalkBand
	maxY = st.cfg.Playfield.Height - sidewalkBand - float64(h)
	if maxY < minY {
		maxY = minY
	}
	return minY, maxY
}

// randRoadY picks a random road Y for an entity of height h.
func (st *state) randRoadY(h int) float64 {
	minY, maxY := st.roadBand(h)
	return minY + st.rng.Float64()*(maxY-minY)
}

func newPlayerEntity(st *state) *Entity {
	e := newEntity(KindPlayer, st.lib, st.cfg.Player.StartX, st.cfg.Player.StartY, "ready")
	if st.ammo == 0 {
		e.SetAnimation("walk")
	}
	e.hit = hitFromSheet(e.sheet, 0.5)
	return e
}

func newLamb(st *state) *Entity {
	e := newEntity(KindLamb, st.lib, st.cfg.Playfield.Width, 0, "walk")
	_, h := e.Size()
	e.Y = st.randRoadY(h)
	e.VX = -lambWalkSpeed
	e.Alive = true
	e.hit = hitFromSheet(e.sheet, 0)
	return e
}

// newThrownKnife spawns a knife just past the player's right edge so a
// freshly thrown blade never overlaps its thrower.
func newThrownKnife(st *state, p *Entity) *Entity {
	pw, ph := p.Size()
	e := newEntity(KindKnife, st.lib, p.X+float64(pw)+1, p.Y, "spin")
	_, kh := e.Size()
	e.Y = p.Y + float64(ph-kh)/2
	e.VX = st.cfg.Knife.ThrowSpeedX
	e.Motion = MotionThrown
	e.hit = hitFromSheet(e.sheet, 0)
	return e
}

func newGroundedKnife(st *state) *Entity {
	e := newEntity(KindKnife, st.lib, st.cfg.Playfield.Width, 0, "grounded")
	_, h := e.Size()
	e.Y = st.randRoadY(h)
	e.Motion = MotionGrounded
	e.hit = hitFromSheet(e.sheet, 0)
	return e
}

func newBroccoli(st *state) *Entity {
	e := newEntity(KindBroccoli, st.lib, st.cfg.Playfield.Width, 0, "fly")
	_, h := e.Size()
	e.Y = st.randRoadY(h)
	e.VX = -(st.cfg.Playfield.Scroll + 0.3 + st.rng.Float64()*0.5)
	e.hit = hitFromSheet(e.sheet, 0)
	return e
}

func newOnion(st *state) *Entity {
	e := newEntity(KindOnion, st.lib, st.cfg.Playfield.Width, 0, "fly")
	_, h := e.Size()
	e.Y = st.randRoadY(h + int(2*onionBobAmplitude))
	e.baseY = e.Y
	e.VX = -(st.cfg.Playfield.Scroll + 0.6 + st.rng.Float64()*0.6)
	e.hit = hitFromSheet(e.sheet, 0)
	return e
}

func newRoadLine(st *state, x, y float64) *Entity {
	return newEntity(KindRoadLine, st.lib, x, y, "idle")
}

func newSidewalk(st *state, x, y float64) *Entity {
	return newEntity(KindSidewalk, st.lib, x, y, "idle")
}

// laneDividerYs returns the Y positions of the road's lane divider lines.
func (st *state) laneDividerYs() []float64 {
	top := float64(sidewalkBand)
	bottom := st.cfg.Playfield.Height - sidewalkBand
	span := bottom - top
	return []float64{top + span/3, top + 2*span/3}
}

// prepopulateStreet fills the background so the street looks continuous
// from the first frame instead of scrolling in from an empty field.
func prepopulateStreet(st *state) {
	pf := st.cfg.Playfield

	lineSpacing := float64(st.cfg.Spawn.RoadLinePeriod) * pf.Scroll
	if lineSpacing < 4 {
		lineSpacing = 4
	}
	for _, y := range st.laneDividerYs() {
		for x := 0.0; x < pf.Width; x += lineSpacing {
			st.background.Add(newRoadLine(st, x, y))
		}
	}

	for x := 0.0; x < pf.Width; x += 30 {
		st.background.Add(newSidewalk(st, x, 1))
		st.background.Add(newSidewalk(st, x, pf.Height-sidewalkBand+1))
	}
}

// tickTimer decrements a spawn countdown; when it fires, the countdown
// resets to its period.
func tickTimer(t *int, period int) bool {
	if period <= 0 {
		return false
	}
	*t--
	if *t <= 0 {
		*t = period
		return true
	}
	return false
}

// spawnPass runs the per-tick spawn rules while a run is live. All spawns
// go through the pending buffer and enter the lists at the next splice.
func spawnPass(st *state) {
	// The lamb wave is edge-triggered: the moment the current lamb is
	// gone (eaten and scrolled off, or walked off uneaten), the next one
	// enters at the field edge.
	if st.wave == nil {
		lamb := newLamb(st)
		st.wave = lamb
		st.foreground.Spawn(lamb)
	}

	if tickTimer(&st.timers.broccoli, st.cfg.Spawn.BroccoliPeriod) {
		st.foreground.Spawn(newBroccoli(st))
	}

	if tickTimer(&st.timers.onion, st.cfg.Spawn.OnionPeriod) && st.score >= st.cfg.Spawn.OnionScoreGate {
		st.foreground.Spawn(newOnion(st))
	}

	if tickTimer(&st.timers.knife, st.cfg.Spawn.KnifePeriod) {
		st.foreground.Spawn(newGroundedKnife(st))
	}

	sceneryPass(st)
}

// sceneryPass feeds the scrolling street. The street moves in every
// phase, so unlike the gameplay spawn rules these two timers run on the
// attract and game-over screens too.
func sceneryPass(st *state) {
	if tickTimer(&st.timers.roadLine, st.cfg.Spawn.RoadLinePeriod) {
		for _, y := range st.laneDividerYs() {
			st.background.Spawn(newRoadLine(st, st.cfg.Playfield.Width, y))
		}
	}

	if tickTimer(&st.timers.sidewalk, st.cfg.Spawn.SidewalkPeriod) {
		st.background.Spawn(newSidewalk(st, st.cfg.Playfield.Width, 1))
		st.background.Spawn(newSidewalk(st, st.cfg.Playfield.Width, st.cfg.Playfield.Height-sidewalkBand+1))
	}
}
