package audio

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/morse-invader/internal/config"
)

const dit = 100 * time.Millisecond

func TestTimeline(t *testing.T) {
	tests := []struct {
		text     string
		expected []Segment
	}{
		{"E", []Segment{{true, dit}, {false, 3 * dit}}},
		{"t", []Segment{{true, 3 * dit}, {false, 3 * dit}}},
		{"A", []Segment{{true, dit}, {false, dit}, {true, 3 * dit}, {false, 3 * dit}}},
		{" ", []Segment{{false, 4 * dit}}},
		{"E E", []Segment{{true, dit}, {false, 7 * dit}, {true, dit}, {false, 3 * dit}}},
		{"", nil},
	}

	for _, tt := range tests {
		got := Timeline(tt.text, dit)
		if len(got) != len(tt.expected) {
			t.Errorf("Timeline(%q) = %v, expected %v", tt.text, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("Timeline(%q)[%d] = %v, expected %v", tt.text, i, got[i], tt.expected[i])
			}
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		text     string
		expected time.Duration
	}{
		{"E", 4 * dit},
		{"T", 6 * dit},
		{"0", 22 * dit},
		{"SOS", (8 + 14 + 8) * dit},
		{"#", 4 * dit},
	}
	for _, tt := range tests {
		if got := Duration(tt.text, dit); got != tt.expected {
			t.Errorf("Duration(%q) = %v, expected %v", tt.text, got, tt.expected)
		}
	}
}

func testAudioConfig() config.AudioConfig {
	return config.AudioConfig{
		Enabled:    true,
		DitMS:      100,
		Frequency:  700,
		SampleRate: 8000,
		Volume:     1.0,
	}
}

// drain reads a streamer to the end and returns every left-channel sample.
func drain(t *testing.T, cfg config.AudioConfig, text string) []float64 {
	t.Helper()
	s := NewMorseStreamer(text, cfg)
	if s == nil {
		t.Fatalf("NewMorseStreamer(%q) returned nil", text)
	}

	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			out = append(out, buf[j][0])
		}
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never drained")
	return nil
}

func TestMorseStreamerLength(t *testing.T) {
	cfg := testAudioConfig()
	samples := drain(t, cfg, "E")

	// 400ms at 8kHz
	if len(samples) != 3200 {
		t.Fatalf("got %d samples, expected 3200", len(samples))
	}

	var toneEnergy, silenceEnergy float64
	for i, v := range samples {
		if i < 800 {
			toneEnergy += math.Abs(v)
		} else {
			silenceEnergy += math.Abs(v)
		}
	}
	if toneEnergy == 0 {
		t.Error("expected a tone during the first dit")
	}
	if silenceEnergy != 0 {
		t.Errorf("expected silence after the tone, energy %v", silenceEnergy)
	}
	if samples[0] != 0 {
		t.Errorf("attack should start from zero, got %v", samples[0])
	}
}

func TestMorseStreamerVolume(t *testing.T) {
	cfg := testAudioConfig()
	peak := func(vol float64) float64 {
		cfg.Volume = vol
		var m float64
		for _, v := range drain(t, cfg, "T") {
			m = math.Max(m, math.Abs(v))
		}
		return m
	}

	full := peak(1.0)
	half := peak(0.5)
	if full > 1.0+1e-9 || full < 0.9 {
		t.Errorf("full volume peak = %v", full)
	}
	if math.Abs(half-full/2) > 1e-6 {
		t.Errorf("half volume peak = %v, expected %v", half, full/2)
	}
	if peak(0) != 0 {
		t.Error("zero volume should be silent")
	}
}

func TestMorseStreamerToneFrequency(t *testing.T) {
	cfg := testAudioConfig()
	cfg.Frequency = 500
	samples := drain(t, cfg, "T")

	// 300ms of 500Hz holds 150 cycles, two sign changes each
	var crossings int
	for i := 1; i < 2400; i++ {
		if (samples[i-1] < 0) != (samples[i] < 0) {
			crossings++
		}
	}
	if crossings < 296 || crossings > 302 {
		t.Errorf("got %d sign changes, expected about 300", crossings)
	}
}

func TestMorseStreamerUnplayableFrequency(t *testing.T) {
	cfg := testAudioConfig()
	cfg.Frequency = float64(cfg.SampleRate)
	samples := drain(t, cfg, "E")

	if len(samples) != 3200 {
		t.Fatalf("got %d samples, expected the timing to hold", len(samples))
	}
	for i, v := range samples {
		if v != 0 {
			t.Fatalf("sample %d = %v, expected silence", i, v)
		}
	}
}

func TestMorseStreamerEmpty(t *testing.T) {
	if s := NewMorseStreamer("", testAudioConfig()); s != nil {
		t.Error("empty text should give no streamer")
	}
}

func TestNewDisabledIsNop(t *testing.T) {
	cfg := testAudioConfig()
	cfg.Enabled = false
	p, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(Nop); !ok {
		t.Errorf("New with audio disabled = %T, expected Nop", p)
	}
	p.Play("SOS")
	p.Stop()
	if err := p.Close(); err != nil {
		t.Error(err)
	}
}

func TestDit(t *testing.T) {
	if got := Dit(config.AudioConfig{DitMS: 60}); got != 60*time.Millisecond {
		t.Errorf("Dit = %v", got)
	}
}
