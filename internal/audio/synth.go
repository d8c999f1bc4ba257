package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// blipGenerator sweeps a sine from startFreq to endFreq over the duration
// with a linear fade-out. Short blips make up most of the game's cues.
type blipGenerator struct {
	startFreq float64
	endFreq   float64
	duration  int
	pos       int
	phase     float64
}

func blip(startFreq, endFreq float64, d time.Duration) beep.Streamer {
	return &blipGenerator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  sampleRate.N(d),
	}
}

func (g *blipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}

		progress := float64(g.pos) / float64(g.duration)
		freq := g.startFreq + (g.endFreq-g.startFreq)*progress
		amplitude := 0.25 * (1 - progress)

		sample := amplitude * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(sampleRate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *blipGenerator) Err() error { return nil }

// clangGenerator mixes decaying noise with a metallic overtone, used when
// a thrown knife hits a vegetable.
type clangGenerator struct {
	duration int
	pos      int
	phase    float64
}

func clang(d time.Duration) beep.Streamer {
	return &clangGenerator{duration: sampleRate.N(d)}
}

func (g *clangGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}

		progress := float64(g.pos) / float64(g.duration)
		decay := math.Pow(1-progress, 2)

		noise := (rand.Float64()*2 - 1) * 0.12
		ring := 0.18 * math.Sin(2*math.Pi*g.phase)
		sample := (noise + ring) * decay

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += 1320 / float64(sampleRate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *clangGenerator) Err() error { return nil }

// wobbleGenerator is a slow sine sweep between two frequencies, repeating
// forever as background music. It never drains on its own; the player
// silences it through its Ctrl handle.
type wobbleGenerator struct {
	lowFreq  float64
	highFreq float64
	cycle    int
	pos      int
	phase    float64
}

func wobble(lowFreq, highFreq float64, cycle time.Duration) beep.Streamer {
	return &wobbleGenerator{
		lowFreq:  lowFreq,
		highFreq: highFreq,
		cycle:    sampleRate.N(cycle),
	}
}

func (g *wobbleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		cyclePos := float64(g.pos%g.cycle) / float64(g.cycle)
		freq := g.lowFreq + (g.highFreq-g.lowFreq)*0.5*(1+math.Sin(2*math.Pi*cyclePos))
		amplitude := 0.08

		sample := amplitude * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(sampleRate)
		g.phase -= math.Floor(g.phase)
		g.pos = (g.pos + 1) % g.cycle
	}
	return len(samples), true
}

func (g *wobbleGenerator) Err() error { return nil }
