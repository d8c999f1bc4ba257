// Package audio implements the game's cue sink on top of gopxl/beep.
// All cues are synthesized streamers; there are no sample files to decode.
// Every failure degrades to silence: an uninitialized speaker or an unknown
// cue name is logged and treated as a no-op, never a fault.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player is the beep-backed cue sink. Play returns a handle (0 when the cue
// could not be started) that can later be passed to Stop; StopAll silences
// everything, which the phase machine does on every transition.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	live        map[int]*beep.Ctrl
	nextID      int
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates an uninitialized player. Until Init succeeds every
// call is a silent no-op, so headless environments just work.
func NewPlayer(logger *log.Logger) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		live:   make(map[int]*beep.Ctrl),
		logger: logger,
	}
}

// Init opens the speaker and attaches the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*80)); err != nil {
		if p.logger != nil {
			p.logger.Warn("audio disabled", "error", err)
		}
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts the named cue and returns its handle, or 0 when the cue is
// unknown or audio is unavailable.
func (p *Player) Play(name string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return 0
	}

	streamer := cueStreamer(name)
	if streamer == nil {
		if p.logger != nil {
			p.logger.Warn("unknown audio cue", "cue", name)
		}
		return 0
	}

	ctrl := &beep.Ctrl{Streamer: streamer}
	p.nextID++
	id := p.nextID
	p.live[id] = ctrl

	speaker.Lock()
	p.mixer.Add(ctrl)
	speaker.Unlock()

	return id
}

// Stop silences the cue with the given handle. Unknown or zero handles
// are ignored.
func (p *Player) Stop(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ctrl, ok := p.live[id]; ok {
		speaker.Lock()
		ctrl.Paused = true
		speaker.Unlock()
		delete(p.live, id)
	}
}

// StopAll silences every live cue.
func (p *Player) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	for id, ctrl := range p.live {
		ctrl.Paused = true
		delete(p.live, id)
	}
	speaker.Unlock()
}

// Close tears the player down. beep exposes no speaker close, so this
// just silences and detaches everything.
func (p *Player) Close() {
	p.StopAll()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
		p.initialized = false
	}
}

// cueStreamer maps a symbolic cue name to its synthesized streamer.
// Returns nil for unknown names.
func cueStreamer(name string) beep.Streamer {
	switch name {
	case "fire":
		return blip(900, 400, time.Millisecond*120)
	case "pickup":
		return blip(500, 1000, time.Millisecond*150)
	case "clang":
		return clang(time.Millisecond * 180)
	case "chomp":
		return blip(300, 80, time.Millisecond*220)
	case "defeat":
		return blip(600, 60, time.Millisecond*700)
	case "music_title":
		return wobble(110, 180, time.Second*3)
	case "music_game":
		return wobble(150, 330, time.Second*2)
	case "music_dirge":
		return wobble(70, 100, time.Second*5)
	default:
		return nil
	}
}
