package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// oscillator produces a fixed-length tone or noise burst.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a tone of the given frequency and duration.
// Noise ignores freq.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:   freq,
		length: rate.N(d),
		wave:   wave,
		rate:   rate,
		noise:  rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			v = o.noise.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay shapes a stream with a short linear attack and an exponential tail.
type decay struct {
	streamer beep.Streamer
	position int
	attack   int
	rate     float64 // Tail steepness per second
	sr       beep.SampleRate
}

// NewDecay wraps s with a percussive envelope.
func NewDecay(s beep.Streamer, attack time.Duration, steepness float64, rate beep.SampleRate) beep.Streamer {
	return &decay{
		streamer: s,
		attack:   rate.N(attack),
		rate:     steepness,
		sr:       rate,
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := math.Exp(-d.rate * float64(d.position) / float64(d.sr))
		if d.position < d.attack {
			gain *= float64(d.position) / float64(d.attack)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// bassline is an endless eighth-note riff over a root-fifth-octave pattern.
type bassline struct {
	sr       beep.SampleRate
	position int
	step     int // Samples per note
	phase    float64
}

var riff = []float64{55, 55, 82.41, 55, 110, 55, 82.41, 73.42}

// NewBassline creates the ride music. It never ends on its own.
func NewBassline(rate beep.SampleRate) beep.Streamer {
	return &bassline{
		sr:   rate,
		step: rate.N(time.Minute / 140 / 2),
	}
}

func (b *bassline) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := (b.position / b.step) % len(riff)
		inNote := float64(b.position%b.step) / float64(b.step)

		// Pluck: loud onset, quick falloff within each note
		env := math.Exp(-4 * inNote)
		v := env * (0.6*math.Sin(2*math.Pi*b.phase) + 0.25*math.Sin(4*math.Pi*b.phase))

		samples[i][0] = v
		samples[i][1] = v

		b.phase += riff[note] / float64(b.sr)
		b.phase -= math.Floor(b.phase)
		b.position++
	}
	return len(samples), true
}

func (b *bassline) Err() error { return nil }

// fader scales a stream by a gain that can be ramped to zero. Once faded
// out it reports the end of the stream so the mixer drops it.
type fader struct {
	streamer beep.Streamer
	gain     float64
	step     float64 // Gain removed per sample while fading
}

func newFader(s beep.Streamer) *fader {
	return &fader{streamer: s, gain: 1}
}

// FadeOut ramps the gain from its current value to zero over n samples.
func (f *fader) FadeOut(n int) {
	if n <= 0 {
		f.gain = 0
		return
	}
	f.step = f.gain / float64(n)
}

// Silent reports whether the fade has finished.
func (f *fader) Silent() bool { return f.gain <= 0 }

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	if f.Silent() {
		return 0, false
	}
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
		if f.step > 0 {
			f.gain = math.Max(0, f.gain-f.step)
		}
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }

// newVolume scales s by a linear volume; 0 or below is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

const crashLength = 700 * time.Millisecond

// NewCrash synthesizes the wipeout: a noise burst over a falling thud.
func NewCrash(rate beep.SampleRate) beep.Streamer {
	noise := NewDecay(NewOscillator(0, crashLength, WaveNoise, rate), 5*time.Millisecond, 6, rate)
	thud := NewDecay(NewOscillator(48, crashLength, WaveSine, rate), 2*time.Millisecond, 4, rate)

	return beep.Take(rate.N(crashLength), beep.Mix(
		newVolume(noise, 0.45),
		newVolume(thud, 0.7),
	))
}
