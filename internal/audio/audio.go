// Package audio turns the simulation's sound and music cues into
// synthesized audio through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/hillrider/internal/rider"
)

const (
	sampleRate = beep.SampleRate(44100)
	fadeLength = 1500 * time.Millisecond
)

// Sink consumes the audio cues raised during one tick.
type Sink interface {
	Play(sounds, musics []string)
	// Pause holds or resumes the music in place.
	Pause(paused bool)
	Close()
}

// Nop discards every cue. Used with --mute, over SSH, and when no audio
// device is available.
type Nop struct{}

// Play ignores the cues.
func (Nop) Play(sounds, musics []string) {}

// Pause does nothing.
func (Nop) Pause(paused bool) {}

// Close does nothing.
func (Nop) Close() {}

// Speaker plays cues on the local sound device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *musicTrack
	paused bool
	logger *log.Logger
}

// musicTrack is the looping music behind a pause switch and a fader.
type musicTrack struct {
	ctrl  *beep.Ctrl
	fader *fader
}

func newMusicTrack(rate beep.SampleRate) *musicTrack {
	f := newFader(newVolume(NewBassline(rate), 0.5))
	return &musicTrack{
		ctrl:  &beep.Ctrl{Streamer: f},
		fader: f,
	}
}

// stop fades the track out over n samples. A paused track resumes so the
// fade can run and the mixer can drop it.
func (m *musicTrack) stop(n int) {
	m.ctrl.Paused = false
	m.fader.FadeOut(n)
}

// NewSpeaker initializes the speaker. The device can only be opened once
// per process.
func NewSpeaker(logger *log.Logger) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	s := &Speaker{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Open returns a speaker sink, or Nop when muted or when the device fails.
func Open(mute bool, logger *log.Logger) Sink {
	if mute {
		return Nop{}
	}
	s, err := NewSpeaker(logger)
	if err != nil {
		logger.Warn("continuing without sound", "err", err)
		return Nop{}
	}
	return s
}

// Play handles music cues first so a crash tick fades the music before the
// wipeout sound starts.
func (s *Speaker) Play(sounds, musics []string) {
	if len(sounds) == 0 && len(musics) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()

	for _, m := range musics {
		switch m {
		case rider.MusicPlay:
			s.startMusic()
		case rider.MusicFadeout:
			if s.music != nil {
				s.music.stop(sampleRate.N(fadeLength))
				s.music = nil
			}
		default:
			s.logger.Warn("unknown music cue", "cue", m)
		}
	}

	for _, name := range sounds {
		fx := Effect(name, sampleRate)
		if fx == nil {
			s.logger.Warn("unknown sound cue", "cue", name)
			continue
		}
		s.mixer.Add(fx)
	}
}

// startMusic replaces any playing music with a fresh bass line.
// Callers hold the speaker lock.
func (s *Speaker) startMusic() {
	if s.music != nil {
		s.music.stop(0)
	}
	s.music = newMusicTrack(sampleRate)
	s.music.ctrl.Paused = s.paused
	s.mixer.Add(s.music.ctrl)
}

// Pause holds the music while the ride is paused.
func (s *Speaker) Pause(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()

	s.paused = paused
	if s.music != nil {
		s.music.ctrl.Paused = paused
	}
}

// Close silences everything still playing.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	speaker.Lock()
	s.mixer.Clear()
	s.music = nil
	s.paused = false
	speaker.Unlock()
}

// Effect returns a one-shot streamer for a sound cue, or nil if the cue is
// unknown.
func Effect(name string, rate beep.SampleRate) beep.Streamer {
	switch name {
	case rider.SoundCrash:
		return NewCrash(rate)
	default:
		return nil
	}
}
