package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to the end and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("clip never ended")
	return nil
}

func TestBuildClips(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		clip     string
		duration time.Duration
	}{
		{ClipPluck, PluckDuration},
		{ClipExplosion, ExplosionDuration},
		{ClipCollect, CollectDuration},
	}

	for _, tc := range tests {
		t.Run(tc.clip, func(t *testing.T) {
			s, ok := Build(tc.clip, rate, 1)
			if !ok {
				t.Fatalf("Build(%q) reported unknown clip", tc.clip)
			}

			samples := drain(t, s)
			if want := rate.N(tc.duration); len(samples) != want {
				t.Errorf("clip length = %d samples, expected %d", len(samples), want)
			}

			loud := false
			for i, smp := range samples {
				for _, v := range smp {
					if math.IsNaN(v) || v < -1 || v > 1 {
						t.Fatalf("sample %d = %v, expected within [-1, 1]", i, v)
					}
					if math.Abs(v) > 0.01 {
						loud = true
					}
				}
			}
			if !loud {
				t.Error("clip is silent at full volume")
			}
			if err := s.Err(); err != nil {
				t.Errorf("Err() = %v, expected nil", err)
			}
		})
	}
}

func TestBuildUnknownClip(t *testing.T) {
	if _, ok := Build("laser", SampleRate, 1); ok {
		t.Error("Build(laser) = ok, expected unknown clip")
	}
}

func TestBuildMuted(t *testing.T) {
	s, ok := Build(ClipExplosion, SampleRate, 0)
	if !ok {
		t.Fatal("Build(explosion) reported unknown clip")
	}
	for i, smp := range drain(t, s) {
		if smp[0] != 0 || smp[1] != 0 {
			t.Fatalf("sample %d = %v at volume 0, expected silence", i, smp)
		}
	}
}

func TestExplosionIsDeterministic(t *testing.T) {
	a, _ := Build(ClipExplosion, SampleRate, 1)
	b, _ := Build(ClipExplosion, SampleRate, 1)
	sa, sb := drain(t, a), drain(t, b)
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("sample %d differs between builds: %v vs %v", i, sa[i], sb[i])
		}
	}
}

// TestPlayerWithoutSpeaker verifies the player is a silent no-op before Init
func TestPlayerWithoutSpeaker(t *testing.T) {
	p := NewPlayer(0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("PlayAudio panicked without a speaker: %v", r)
		}
	}()

	p.PlayAudio(ClipPluck)
	p.PlayAudio("unknown")
	if p.ready {
		t.Error("player ready before Init")
	}
	p.Close()
}
