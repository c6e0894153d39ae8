// Package audio sounds Morse code through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/morse-invader/internal/config"
)

// Player sounds text as Morse code without blocking the caller.
type Player interface {
	// Play starts sounding text, cutting off anything still playing.
	Play(text string)
	// Stop silences the current sequence.
	Stop()
	// Close releases the output device.
	Close() error
}

// Nop is a Player that stays silent. It is used when audio is disabled,
// the device is missing, or the session is remote.
type Nop struct{}

func (Nop) Play(string)  {}
func (Nop) Stop()        {}
func (Nop) Close() error { return nil }

// speakerOnce guards speaker.Init, which may only run once per process.
var (
	speakerOnce sync.Once
	speakerErr  error
	speakerRate beep.SampleRate
)

// SpeakerPlayer plays through the default output device.
type SpeakerPlayer struct {
	mu      sync.Mutex
	cfg     config.AudioConfig
	mixer   *beep.Mixer
	current *beep.Ctrl

	// lock and unlock guard the mixer against the device goroutine.
	lock   func()
	unlock func()
}

func newMixerPlayer(cfg config.AudioConfig, mixer *beep.Mixer, lock, unlock func()) *SpeakerPlayer {
	return &SpeakerPlayer{
		cfg:    cfg,
		mixer:  mixer,
		lock:   lock,
		unlock: unlock,
	}
}

// NewSpeakerPlayer opens the output device at cfg's sample rate.
func NewSpeakerPlayer(cfg config.AudioConfig) (*SpeakerPlayer, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	speakerOnce.Do(func() {
		// Initialize speaker with sample rate and buffer size
		speakerErr = speaker.Init(rate, rate.N(100*time.Millisecond))
		speakerRate = rate
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", speakerErr)
	}
	// The device keeps its first rate; render at that rate.
	cfg.SampleRate = int(speakerRate)

	p := newMixerPlayer(cfg, &beep.Mixer{}, speaker.Lock, speaker.Unlock)
	speaker.Play(p.mixer)
	return p, nil
}

// Play starts text, replacing the sequence in flight.
func (p *SpeakerPlayer) Play(text string) {
	s := NewMorseStreamer(text, p.cfg)
	if s == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	if p.current != nil {
		// A Ctrl with no streamer reports drained and the mixer drops it
		p.current.Streamer = nil
	}
	p.current = &beep.Ctrl{Streamer: s}
	p.mixer.Add(p.current)
	p.unlock()
}

// Stop cuts off the current sequence.
func (p *SpeakerPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	if p.current != nil {
		p.current.Streamer = nil
		p.current = nil
	}
	p.unlock()
}

// Close stops playback and detaches the mixer. The device itself stays
// open for the life of the process.
func (p *SpeakerPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lock()
	p.current = nil
	p.mixer.Clear()
	p.unlock()
	return nil
}

// New returns a speaker player when cfg enables audio, and Nop otherwise.
// A device error is returned alongside a usable Nop.
func New(cfg config.AudioConfig) (Player, error) {
	if !cfg.Enabled {
		return Nop{}, nil
	}
	p, err := NewSpeakerPlayer(cfg)
	if err != nil {
		return Nop{}, err
	}
	return p, nil
}
