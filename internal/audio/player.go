package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the speaker rate used for every clip.
const SampleRate = beep.SampleRate(44100)

// Player mixes clips into the system speaker.
// Until Init succeeds every call is a no-op, so a machine without an audio
// device still runs the game silently.
type Player struct {
	mu     sync.Mutex
	volume float64
	mixer  *beep.Mixer
	ready  bool
}

// NewPlayer creates a player at the given volume (0..1).
func NewPlayer(volume float64) *Player {
	return &Player{
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker. Calling it again after success is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// PlayAudio starts clip and returns immediately. Unknown clips are ignored.
func (p *Player) PlayAudio(clip string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	s, ok := Build(clip, SampleRate, p.volume)
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops every sound and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.ready = false
}
