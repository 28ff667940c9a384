package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/hillrider/internal/rider"
)

const testRate = beep.SampleRate(8000)

// drain streams s until it ends or limit samples have been produced.
func drain(s beep.Streamer, limit int) (total int, peak float64, ended bool) {
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak, true
		}
	}
	return total, peak, false
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveNoise} {
		total, peak, ended := drain(NewOscillator(440, 100*time.Millisecond, wave, testRate), 1<<20)
		if !ended {
			t.Errorf("wave %d should end", wave)
		}
		if total != testRate.N(100*time.Millisecond) {
			t.Errorf("wave %d produced %d samples, expected %d", wave, total, testRate.N(100*time.Millisecond))
		}
		if peak == 0 || peak > 1 {
			t.Errorf("wave %d peak = %v, expected within (0, 1]", wave, peak)
		}
	}
}

func TestBasslineNeverEnds(t *testing.T) {
	limit := testRate.N(10 * time.Second)
	total, peak, ended := drain(NewBassline(testRate), limit)
	if ended || total < limit {
		t.Errorf("bass line ended after %d samples", total)
	}
	if peak == 0 {
		t.Error("bass line should be audible")
	}
}

func TestFaderFadesToSilence(t *testing.T) {
	f := newFader(NewBassline(testRate))
	if _, peak, _ := drain(f, 1000); peak == 0 {
		t.Fatal("unfaded music should be audible")
	}

	f.FadeOut(testRate.N(time.Second))
	total, _, ended := drain(f, testRate.N(5*time.Second))
	if !ended {
		t.Fatal("faded music should end")
	}
	if !f.Silent() {
		t.Error("Silent() should report the finished fade")
	}
	// The ramp spans the fade length, rounded up to one buffer.
	if total < testRate.N(time.Second) || total > testRate.N(time.Second)+512 {
		t.Errorf("fade lasted %d samples, expected about %d", total, testRate.N(time.Second))
	}
}

func TestFaderImmediate(t *testing.T) {
	f := newFader(NewBassline(testRate))
	f.FadeOut(0)

	n, ok := f.Stream(make([][2]float64, 16))
	if n != 0 || ok {
		t.Errorf("Stream() after FadeOut(0) = %d, %v; expected 0, false", n, ok)
	}
}

func TestDecayFallsOff(t *testing.T) {
	d := NewDecay(NewOscillator(0, time.Second, WaveNoise, testRate), 0, 8, testRate)

	buf := make([][2]float64, testRate.N(100*time.Millisecond))
	d.Stream(buf)
	var early float64
	for _, s := range buf {
		early = math.Max(early, math.Abs(s[0]))
	}

	// Skip to the tail
	for i := 0; i < 8; i++ {
		d.Stream(buf)
	}
	var late float64
	for _, s := range buf {
		late = math.Max(late, math.Abs(s[0]))
	}

	if late >= early/10 {
		t.Errorf("tail peak %v should be far below onset peak %v", late, early)
	}
}

func TestEffect(t *testing.T) {
	crash := Effect(rider.SoundCrash, testRate)
	if crash == nil {
		t.Fatalf("Effect(%q) = nil", rider.SoundCrash)
	}
	total, peak, ended := drain(crash, 1<<20)
	if !ended || total == 0 || peak == 0 {
		t.Errorf("crash effect: %d samples, peak %v, ended %v", total, peak, ended)
	}

	if Effect("jump.wav", testRate) != nil {
		t.Error("unknown cue should have no effect")
	}
}

func TestNopSink(t *testing.T) {
	var s Sink = Nop{}
	s.Play([]string{rider.SoundCrash}, []string{rider.MusicPlay})
	s.Pause(true)
	s.Close()
}

func TestMusicTrackPause(t *testing.T) {
	m := newMusicTrack(testRate)

	m.ctrl.Paused = true
	total, peak, ended := drain(m.ctrl, 2000)
	if ended || total < 2000 {
		t.Fatalf("paused track ended after %d samples", total)
	}
	if peak != 0 {
		t.Errorf("paused track peak = %v, expected silence", peak)
	}

	m.ctrl.Paused = false
	if _, peak, _ := drain(m.ctrl, 2000); peak == 0 {
		t.Error("resumed track should be audible")
	}
}

func TestMusicTrackStopWhilePaused(t *testing.T) {
	m := newMusicTrack(testRate)
	m.ctrl.Paused = true

	m.stop(testRate.N(100 * time.Millisecond))
	if m.ctrl.Paused {
		t.Error("stop should resume the track so the fade can run")
	}

	_, _, ended := drain(m.ctrl, testRate.N(time.Second))
	if !ended {
		t.Error("stopped track should end so the mixer drops it")
	}
}
