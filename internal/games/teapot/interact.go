package teapot

// interact applies the effect of the ordered pair (a, b). Every pair of
// live entities is offered both ways each tick; effects are keyed on a's
// kind so each rule runs once. Pairs with no rule, including an entity
// against itself, fall through untouched. Kind guards make self-pairs
// harmless without any index bookkeeping in the pass.
func interact(a, b *Entity, st *state) {
	switch a.Kind {
	case KindPlayer:
		playerInteract(a, b, st)
	case KindKnife:
		knifeInteract(a, b, st)
	}
	// Knife-on-knife deliberately has no rule: overlapping knives pass
	// through each other.
}

func playerInteract(p, b *Entity, st *state) {
	if st.defeated || !p.Intersects(b) {
		return
	}

	switch b.Kind {
	case KindBroccoli, KindOnion:
		defeatPlayer(p, st)

	case KindLamb:
		// Eating a lamb spends a knife. With an empty hand the teapot
		// can only watch it walk by.
		if !b.Alive || st.ammo < 1 {
			return
		}
		b.Alive = false
		b.SetAnimation("dead")
		b.VX = -st.cfg.Playfield.Scroll
		b.VY = 0
		st.ammo--
		st.score += st.cfg.Scoring.Lamb
		st.sink.Play("chomp")
		if st.ammo == 0 {
			p.SetAnimation("walk")
		}

	case KindKnife:
		if b.Motion == MotionGrounded {
			// Pick it up: relocate the knife off the field so the
			// normal pruning sweep collects it.
			b.X = -1000
			b.removed = true
			st.ammo++
			st.score += st.cfg.Scoring.KnifePickup
			st.sink.Play("pickup")
			if st.ammo == 1 {
				p.SetAnimation("ready")
			}
		} else {
			// A deflected knife coming back is as lethal as a
			// vegetable.
			defeatPlayer(p, st)
		}
	}
}

func knifeInteract(k, b *Entity, st *state) {
	if k.Motion != MotionThrown || !k.Intersects(b) {
		return
	}

	switch b.Kind {
	case KindBroccoli, KindOnion:
		// The blade glances off and drops to the road.
		k.Motion = MotionGrounded
		k.SetAnimation("grounded")
		k.VX = 0
		k.VY = 0
		st.sink.Play("clang")

	case KindLamb:
		if !b.Alive {
			return
		}
		b.Alive = false
		b.SetAnimation("dead")
		b.VX = -st.cfg.Playfield.Scroll
		b.VY = 0
		st.score += st.cfg.Scoring.Lamb
		st.sink.Play("chomp")
		// The knife ricochets back with a random vertical deflection.
		k.VX = -k.VX
		k.VY = (st.rng.Float64()*2 - 1) * st.cfg.Knife.DeflectVYMax
	}
}

// defeatPlayer marks the player hit. The transition to the game-over
// phase takes effect at the start of the next tick.
func defeatPlayer(p *Entity, st *state) {
	if st.defeated {
		return
	}
	st.defeated = true
	p.SetAnimation("defeated")
}
