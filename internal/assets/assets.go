// Package assets provides the sprite-sheet library for the teapot arcade.
// Sheets are ASCII-art frame sets embedded in the binary; decoding happens
// on a background goroutine so the simulation must tolerate a sheet that is
// not ready yet (it reads the Ready flag and skips the frame, never faults).
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"sync"
	"sync/atomic"
)

//go:embed sheets/*.txt
var sheetFS embed.FS

// Frame is one sprite frame: rows of equal rune width.
type Frame []string

// Sheet is an immutable, frame-indexed sprite set shared read-only across
// all entities of a kind.
type Sheet struct {
	name   string
	ready  atomic.Bool
	frames []Frame
	width  int
	height int
}

// Name returns the sheet identifier.
func (s *Sheet) Name() string {
	return s.name
}

// Ready reports whether the sheet has finished decoding.
func (s *Sheet) Ready() bool {
	return s.ready.Load()
}

// Size returns the natural frame dimensions in cells.
// Returns zeros while the sheet is not ready.
func (s *Sheet) Size() (w, h int) {
	if !s.Ready() {
		return 0, 0
	}
	return s.width, s.height
}

// FrameCount returns the number of frames, or 0 while not ready.
func (s *Sheet) FrameCount() int {
	if !s.Ready() {
		return 0
	}
	return len(s.frames)
}

// Frame returns the frame at the given index.
// The second return is false while the sheet is not ready or the index is
// out of range; callers treat that as "no frame this tick".
func (s *Sheet) Frame(i int) (Frame, bool) {
	if !s.Ready() || i < 0 || i >= len(s.frames) {
		return nil, false
	}
	return s.frames[i], true
}

// Library holds every sheet, keyed by identifier (the embedded file's base
// name without extension).
type Library struct {
	mu     sync.RWMutex
	sheets map[string]*Sheet
}

// NewLibrary creates a library with one undecoded Sheet per embedded file.
// Call Start (async) or Load (blocking) to decode.
func NewLibrary() (*Library, error) {
	entries, err := fs.Glob(sheetFS, "sheets/*.txt")
	if err != nil {
		return nil, fmt.Errorf("assets: cannot list sheets: %w", err)
	}

	lib := &Library{sheets: make(map[string]*Sheet, len(entries))}
	for _, path := range entries {
		name := strings.TrimSuffix(strings.TrimPrefix(path, "sheets/"), ".txt")
		lib.sheets[name] = &Sheet{name: name}
	}
	return lib, nil
}

// Start decodes all sheets on a background goroutine.
func (l *Library) Start() {
	go l.Load()
}

// Load decodes all sheets, blocking until done. Sheets flip to ready
// one by one as they decode.
func (l *Library) Load() {
	l.mu.RLock()
	sheets := make([]*Sheet, 0, len(l.sheets))
	for _, s := range l.sheets {
		sheets = append(sheets, s)
	}
	l.mu.RUnlock()

	for _, s := range sheets {
		// A malformed embedded sheet stays not-ready forever; the game
		// renders nothing for it rather than failing.
		if err := s.decode(); err != nil {
			continue
		}
		s.ready.Store(true)
	}
}

// Sheet returns the sheet with the given name, or nil if unknown.
func (l *Library) Sheet(name string) *Sheet {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sheets[name]
}

// AllReady reports whether every named sheet exists and has decoded.
// This is the readiness barrier the game polls before leaving its
// loading gate.
func (l *Library) AllReady(names ...string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, name := range names {
		s, ok := l.sheets[name]
		if !ok || !s.Ready() {
			return false
		}
	}
	return true
}

// decode parses the embedded file into frames. Frames are separated by a
// line containing only "---"; all rows are padded to the widest row.
func (s *Sheet) decode() error {
	data, err := sheetFS.ReadFile("sheets/" + s.name + ".txt")
	if err != nil {
		return fmt.Errorf("assets: cannot read sheet %q: %w", s.name, err)
	}

	text := strings.TrimRight(string(data), "\n")
	var frames []Frame
	var rows []string
	width, height := 0, 0

	flush := func() {
		if len(rows) == 0 {
			return
		}
		frames = append(frames, Frame(rows))
		if len(rows) > height {
			height = len(rows)
		}
		rows = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "---" {
			flush()
			continue
		}
		if w := len([]rune(line)); w > width {
			width = w
		}
		rows = append(rows, line)
	}
	flush()

	if len(frames) == 0 || width == 0 {
		return fmt.Errorf("assets: sheet %q has no frames", s.name)
	}

	// Pad every row to the sheet width so hit math stays rectangular.
	for fi, f := range frames {
		for ri, row := range f {
			if pad := width - len([]rune(row)); pad > 0 {
				frames[fi][ri] = row + strings.Repeat(" ", pad)
			}
		}
		// Pad short frames to full height too.
		for len(frames[fi]) < height {
			frames[fi] = append(frames[fi], strings.Repeat(" ", width))
		}
	}

	s.frames = frames
	s.width = width
	s.height = height
	return nil
}
