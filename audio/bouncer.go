// Package audio plays a short blip whenever a ball hits the floor.
// Audio is optional: when the speaker cannot be opened every call is a no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lelandbatey/bouncing-block/palette"
)

const (
	sampleRate = beep.SampleRate(48000)

	blipDuration = 90 * time.Millisecond
	blipVolume   = 0.12

	// DefaultPerFrame caps blips started between two NextFrame calls
	DefaultPerFrame = 3
)

// Bouncer turns bounce events into blips
type Bouncer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	palette     *palette.Palette
	initialized bool
	perFrame    int
	budget      int
	played      int
	dropped     int
}

// NewBouncer creates a bouncer that pitches blips by palette index
func NewBouncer(p *palette.Palette) *Bouncer {
	return &Bouncer{
		mixer:    &beep.Mixer{},
		palette:  p,
		perFrame: DefaultPerFrame,
		budget:   DefaultPerFrame,
	}
}

// Initialize opens the speaker and starts the mixer
func (b *Bouncer) Initialize() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Bounce plays the blip for color if the per-frame budget allows
// Safe to call from the frame loop; never blocks on the audio device
func (b *Bouncer) Bounce(color string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized || !b.take() {
		return false
	}

	index := -1
	if b.palette != nil {
		if _, i, ok := b.palette.Lookup(color); ok {
			index = i
		}
	}
	blip := NewBlipGenerator(sampleRate, PitchFor(index), blipDuration, blipVolume)

	speaker.Lock()
	b.mixer.Add(blip)
	speaker.Unlock()
	b.played++
	return true
}

// NextFrame refills the per-frame budget
func (b *Bouncer) NextFrame() {
	b.mu.Lock()
	b.budget = b.perFrame
	b.mu.Unlock()
}

// SetPerFrame changes the per-frame limit; values below 1 mute the bouncer
func (b *Bouncer) SetPerFrame(n int) {
	if n < 0 {
		n = 0
	}
	b.mu.Lock()
	b.perFrame = n
	if b.budget > n {
		b.budget = n
	}
	b.mu.Unlock()
}

// Counts returns blips played and bounces dropped by the rate limit
func (b *Bouncer) Counts() (played, dropped int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.played, b.dropped
}

// Cleanup silences the mixer
func (b *Bouncer) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}

// take consumes one unit of budget; caller holds mu
func (b *Bouncer) take() bool {
	if b.budget <= 0 {
		b.dropped++
		return false
	}
	b.budget--
	return true
}
