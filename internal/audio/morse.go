package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/morse-invader/internal/config"
	"github.com/vovakirdan/morse-invader/internal/morse"
)

// Tone shaping applied to every element.
const (
	attack  = 5 * time.Millisecond
	release = 5 * time.Millisecond
)

// Segment is one stretch of a Morse sound: a tone or a silence.
type Segment struct {
	Tone     bool
	Duration time.Duration
}

// Timeline lays out text as tones and silences. A dot lasts one dit and a
// dash three. Every element is followed by a dit of silence and every
// character by two more. Runes with no code, spaces included, are four dits
// of silence. Adjacent silences are merged.
func Timeline(text string, dit time.Duration) []Segment {
	var out []Segment
	silence := func(d time.Duration) {
		if n := len(out); n > 0 && !out[n-1].Tone {
			out[n-1].Duration += d
			return
		}
		out = append(out, Segment{Duration: d})
	}

	for _, r := range text {
		code, ok := morse.CodeFor(r)
		if !ok {
			silence(4 * dit)
			continue
		}
		for _, sym := range code {
			d := dit
			if sym == morse.Dash {
				d = 3 * dit
			}
			out = append(out, Segment{Tone: true, Duration: d})
			silence(dit)
		}
		silence(2 * dit)
	}
	return out
}

// Duration returns how long text takes to sound.
func Duration(text string, dit time.Duration) time.Duration {
	var total time.Duration
	for _, s := range Timeline(text, dit) {
		total += s.Duration
	}
	return total
}

// Dit returns the configured dit length.
func Dit(cfg config.AudioConfig) time.Duration {
	return time.Duration(cfg.DitMS) * time.Millisecond
}

// NewMorseStreamer renders text as a finite beep stream at cfg's tone and volume.
// It returns nil when text has nothing to sound.
func NewMorseStreamer(text string, cfg config.AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	segments := Timeline(text, Dit(cfg))
	if len(segments) == 0 {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(segments))
	for _, s := range segments {
		if s.Tone {
			tone := newTone(cfg.Frequency, s.Duration, rate)
			parts = append(parts, newEnvelope(tone, s.Duration, attack, release, rate))
		} else {
			parts = append(parts, beep.Silence(rate.N(s.Duration)))
		}
	}
	return newVolume(beep.Seq(parts...), cfg.Volume)
}
