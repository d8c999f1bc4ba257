package assets

import (
	"testing"
)

// requiredSheets are the sheets the game expects to exist.
var requiredSheets = []string{
	"teapot", "lamb", "broccoli", "onion", "knife",
	"roadline", "sidewalk",
	"title", "prompt", "credits", "gameover", "highscore",
}

func TestLibraryLoadsAllSheets(t *testing.T) {
	lib, err := NewLibrary()
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}

	// Before decoding nothing is ready.
	if lib.AllReady(requiredSheets...) {
		t.Error("sheets should not be ready before Load")
	}

	lib.Load()

	if !lib.AllReady(requiredSheets...) {
		for _, name := range requiredSheets {
			s := lib.Sheet(name)
			if s == nil {
				t.Errorf("missing sheet %q", name)
			} else if !s.Ready() {
				t.Errorf("sheet %q failed to decode", name)
			}
		}
		t.Fatal("not all required sheets decoded")
	}
}

func TestSheetDimensionsRectangular(t *testing.T) {
	lib, err := NewLibrary()
	if err != nil {
		t.Fatal(err)
	}
	lib.Load()

	for _, name := range requiredSheets {
		s := lib.Sheet(name)
		w, h := s.Size()
		if w <= 0 || h <= 0 {
			t.Errorf("sheet %q has degenerate size %dx%d", name, w, h)
			continue
		}
		for i := 0; i < s.FrameCount(); i++ {
			f, ok := s.Frame(i)
			if !ok {
				t.Errorf("sheet %q frame %d not available", name, i)
				continue
			}
			if len(f) != h {
				t.Errorf("sheet %q frame %d height %d, expected %d", name, i, len(f), h)
			}
			for ri, row := range f {
				if len([]rune(row)) != w {
					t.Errorf("sheet %q frame %d row %d width %d, expected %d",
						name, i, ri, len([]rune(row)), w)
				}
			}
		}
	}
}

func TestFrameNotReady(t *testing.T) {
	lib, err := NewLibrary()
	if err != nil {
		t.Fatal(err)
	}

	s := lib.Sheet("teapot")
	if s == nil {
		t.Fatal("teapot sheet missing")
	}

	if _, ok := s.Frame(0); ok {
		t.Error("Frame should report not-ready before decoding")
	}
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("Size before decode = %dx%d, expected 0x0", w, h)
	}
}

func TestFrameOutOfRange(t *testing.T) {
	lib, err := NewLibrary()
	if err != nil {
		t.Fatal(err)
	}
	lib.Load()

	s := lib.Sheet("teapot")
	if _, ok := s.Frame(-1); ok {
		t.Error("negative frame index should not resolve")
	}
	if _, ok := s.Frame(s.FrameCount()); ok {
		t.Error("past-the-end frame index should not resolve")
	}
}

func TestUnknownSheet(t *testing.T) {
	lib, err := NewLibrary()
	if err != nil {
		t.Fatal(err)
	}
	if lib.Sheet("zeppelin") != nil {
		t.Error("unknown sheet should be nil")
	}
	if lib.AllReady("zeppelin") {
		t.Error("AllReady should be false for unknown sheets")
	}
}

func TestTeapotFrameLayout(t *testing.T) {
	// The game assumes this frame layout; pin it.
	lib, err := NewLibrary()
	if err != nil {
		t.Fatal(err)
	}
	lib.Load()

	if got := lib.Sheet("teapot").FrameCount(); got != 6 {
		t.Errorf("teapot frames = %d, expected 6 (walk 0-1, ready 2-3, defeated 4-5)", got)
	}
	if got := lib.Sheet("lamb").FrameCount(); got != 3 {
		t.Errorf("lamb frames = %d, expected 3 (walk 0-1, dead 2)", got)
	}
	if got := lib.Sheet("knife").FrameCount(); got != 3 {
		t.Errorf("knife frames = %d, expected 3 (spin 0-1, grounded 2)", got)
	}
}
