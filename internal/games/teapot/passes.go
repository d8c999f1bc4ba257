package teapot

// movePass walks each list from the highest index down, moving every
// entity once and evicting the finished ones. The reverse walk means an
// eviction never skips a neighbor; spawns deferred during the walk are
// spliced in afterwards and first move on the next tick.
func movePass(st *state) {
	for _, l := range []*EntityList{st.background, st.foreground} {
		for i := l.Len() - 1; i >= 0; i-- {
			e := l.At(i)
			e.Move(st)
			if e.FinishedIn(st) {
				evict(st, l, i)
			}
		}
		l.Splice()
	}
}

// evict removes the entity at index i, clearing the wave slot when the
// current lamb is the one leaving.
func evict(st *state, l *EntityList, i int) {
	if l.At(i) == st.wave {
		st.wave = nil
	}
	l.RemoveAt(i)
}

// interactPass offers every ordered pair of foreground entities to the
// effect table; an entity finished by its own scan (a picked-up knife) is
// evicted right after it, the same tick. Spawns deferred mid-pass wait in
// the pending buffer until the final splice and first pair on the next
// tick. Mutations are visible to later pairs within the same pass; a lamb
// eaten early in the pass cannot be eaten again by a knife arriving later
// in it.
func interactPass(st *state) {
	for i := st.foreground.Len() - 1; i >= 0; i-- {
		a := st.foreground.At(i)
		for j := 0; j < st.foreground.Len(); j++ {
			interact(a, st.foreground.At(j), st)
		}
		if a.FinishedIn(st) {
			evict(st, st.foreground, i)
		}
	}
	// A pickup finishes a knife that may already have had its own scan;
	// sweep so nothing finished outlives the pass.
	for i := st.foreground.Len() - 1; i >= 0; i-- {
		if st.foreground.At(i).FinishedIn(st) {
			evict(st, st.foreground, i)
		}
	}
	st.foreground.Splice()
}

// animatePass advances every entity's animation clock by one tick.
func animatePass(st *state) {
	st.background.Each(func(e *Entity) { e.AdvanceFrame() })
	st.foreground.Each(func(e *Entity) { e.AdvanceFrame() })
}
