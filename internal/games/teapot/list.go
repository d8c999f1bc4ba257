package teapot

import "sort"

// EntityList is an ordered entity collection with a side buffer for
// entities spawned while a pass is iterating. Spawns never mutate the
// live slice mid-walk; they land in pending and become visible only after
// Splice, so a pass sees a stable bound.
type EntityList struct {
	items   []*Entity
	pending []*Entity
}

// Add appends an entity immediately. Only safe outside of a pass, e.g.
// while building a fresh phase.
func (l *EntityList) Add(e *Entity) {
	l.items = append(l.items, e)
}

// Spawn defers an entity to the pending buffer. It joins the list on the
// next Splice and is first processed by the following pass.
func (l *EntityList) Spawn(e *Entity) {
	l.pending = append(l.pending, e)
}

// Splice appends all pending entities in spawn order and clears the
// buffer.
func (l *EntityList) Splice() {
	if len(l.pending) == 0 {
		return
	}
	l.items = append(l.items, l.pending...)
	l.pending = l.pending[:0]
}

// Len returns the number of live entities. Pending entities do not count.
func (l *EntityList) Len() int {
	return len(l.items)
}

// At returns the live entity at index i.
func (l *EntityList) At(i int) *Entity {
	return l.items[i]
}

// RemoveAt evicts the entity at index i, preserving order. Passes walk
// indices high to low so eviction never skips an element.
func (l *EntityList) RemoveAt(i int) {
	l.items = append(l.items[:i], l.items[i+1:]...)
}

// Clear drops all entities, live and pending.
func (l *EntityList) Clear() {
	l.items = l.items[:0]
	l.pending = l.pending[:0]
}

// Each calls fn for every live entity in order.
func (l *EntityList) Each(fn func(*Entity)) {
	for _, e := range l.items {
		fn(e)
	}
}

// SortByDepth stable-sorts by the bottom edge, ascending. Entities lower
// on the playfield draw later and therefore in front; ties keep insertion
// order so equal-depth sprites never flicker past each other.
func (l *EntityList) SortByDepth() {
	sort.SliceStable(l.items, func(i, j int) bool {
		a, b := l.items[i], l.items[j]
		_, ah := a.Size()
		_, bh := b.Size()
		return a.Y+float64(ah) < b.Y+float64(bh)
	})
}
