package teapot

import "testing"

func TestSpawnDeferredUntilSplice(t *testing.T) {
	l := &EntityList{}
	l.Add(&Entity{Kind: KindLamb})

	l.Spawn(&Entity{Kind: KindBroccoli})
	if l.Len() != 1 {
		t.Fatalf("Len = %d after Spawn, pending entity leaked into the list", l.Len())
	}

	l.Splice()
	if l.Len() != 2 {
		t.Fatalf("Len = %d after Splice, expected 2", l.Len())
	}
	if l.At(1).Kind != KindBroccoli {
		t.Error("spliced entity not appended in spawn order")
	}
}

func TestRemoveAtPreservesOrder(t *testing.T) {
	l := &EntityList{}
	kinds := []Kind{KindPlayer, KindLamb, KindBroccoli, KindOnion}
	for _, k := range kinds {
		l.Add(&Entity{Kind: k})
	}

	l.RemoveAt(1)
	want := []Kind{KindPlayer, KindBroccoli, KindOnion}
	for i, k := range want {
		if l.At(i).Kind != k {
			t.Fatalf("At(%d) = %v, expected %v", i, l.At(i).Kind, k)
		}
	}
}

func TestReverseWalkEvictionSkipsNothing(t *testing.T) {
	l := &EntityList{}
	for i := 0; i < 5; i++ {
		l.Add(&Entity{Kind: KindBroccoli, X: float64(i)})
	}

	// Evict every other entity while walking high to low, the way the
	// movement pass does.
	for i := l.Len() - 1; i >= 0; i-- {
		if int(l.At(i).X)%2 == 0 {
			l.RemoveAt(i)
		}
	}

	if l.Len() != 2 {
		t.Fatalf("Len = %d, expected 2", l.Len())
	}
	if l.At(0).X != 1 || l.At(1).X != 3 {
		t.Errorf("survivors at X %f, %f, expected 1, 3", l.At(0).X, l.At(1).X)
	}
}

func TestSortByDepthIsStable(t *testing.T) {
	lib := loadedLibrary(t)
	l := &EntityList{}

	// Two lambs at the same depth plus one further up the field.
	first := newEntity(KindLamb, lib, 0, 10, "walk")
	second := newEntity(KindLamb, lib, 20, 10, "walk")
	upper := newEntity(KindLamb, lib, 40, 2, "walk")
	l.Add(first)
	l.Add(second)
	l.Add(upper)

	l.SortByDepth()

	if l.At(0) != upper {
		t.Error("entity higher on the field should draw first")
	}
	if l.At(1) != first || l.At(2) != second {
		t.Error("equal-depth entities did not keep insertion order")
	}
}

func TestClearDropsPending(t *testing.T) {
	l := &EntityList{}
	l.Add(&Entity{})
	l.Spawn(&Entity{})

	l.Clear()
	l.Splice()
	if l.Len() != 0 {
		t.Errorf("Len = %d after Clear, expected 0", l.Len())
	}
}
