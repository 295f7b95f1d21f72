// Package sound plays the short chime heard when the snake eats.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeLength   = 120 * time.Millisecond
	chimeBaseFreq = 660.0
)

// Player mixes chimes onto the speaker. A Player that was never initialized
// stays silent, so games without audio can still call it.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a silent player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Eat plays a chime whose pitch rises with the snake's size.
func (p *Player) Eat(size int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(Chime(size))
	speaker.Unlock()
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

// Chime returns the streamer for one eat chime.
func Chime(size int) beep.Streamer {
	freq := chimeBaseFreq * math.Pow(2, float64(size%12)/12)
	return beep.Take(sampleRate.N(chimeLength), &chimeGenerator{sr: sampleRate, freq: freq})
}

// chimeGenerator is a sine with a fast attack and an exponential decay.
type chimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func (g *chimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		attack := math.Min(t/0.005, 1.0)
		decay := math.Exp(-t * 30)
		sample := 0.25 * attack * decay * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chimeGenerator) Err() error {
	return nil
}
