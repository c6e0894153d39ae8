package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

func newTestPlayer() (*SpeakerPlayer, *beep.Mixer, *int) {
	mixer := &beep.Mixer{}
	locks := 0
	p := newMixerPlayer(testAudioConfig(), mixer, func() { locks++ }, func() {})
	return p, mixer, &locks
}

// pull streams n samples from the mixer the way the device would.
func pull(m *beep.Mixer, n int) [][2]float64 {
	buf := make([][2]float64, n)
	m.Stream(buf)
	return buf
}

func TestPlayReplacesSequenceInFlight(t *testing.T) {
	p, mixer, locks := newTestPlayer()

	p.Play("T")
	first := p.current
	pull(mixer, 512)
	if mixer.Len() != 1 {
		t.Fatalf("mixer holds %d streamers, expected 1", mixer.Len())
	}

	p.Play("E")
	if first.Streamer != nil {
		t.Error("the replaced sequence should be detached")
	}
	if p.current == first || p.current.Streamer == nil {
		t.Fatal("the new sequence should be current")
	}

	pull(mixer, 512)
	if mixer.Len() != 1 {
		t.Errorf("mixer holds %d streamers after the swap, expected only the new one", mixer.Len())
	}
	if *locks != 2 {
		t.Errorf("mixer was locked %d times, expected once per Play", *locks)
	}

	// "E" lasts 3200 samples at 8kHz; the replaced "T" would run to 4800
	var tail float64
	for _, s := range pull(mixer, 3200) {
		tail += s[0] * s[0]
	}
	for _, s := range pull(mixer, 1600) {
		if s[0] != 0 {
			t.Fatal("the replaced sequence is still sounding")
		}
	}
	if tail == 0 {
		t.Error("the new sequence never sounded")
	}
	if mixer.Len() != 0 {
		t.Errorf("mixer holds %d streamers after the sequence ended", mixer.Len())
	}
}

func TestStopAndClose(t *testing.T) {
	p, mixer, _ := newTestPlayer()

	p.Play("S")
	p.Stop()
	if p.current != nil {
		t.Error("Stop should drop the current sequence")
	}
	pull(mixer, 512)
	if mixer.Len() != 0 {
		t.Errorf("mixer holds %d streamers after Stop", mixer.Len())
	}

	p.Play("")
	if mixer.Len() != 0 || p.current != nil {
		t.Error("empty text should not start a sequence")
	}

	p.Play("O")
	if err := p.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if mixer.Len() != 0 || p.current != nil {
		t.Error("Close should clear the mixer")
	}
}
