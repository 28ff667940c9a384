package rider

// Event keys emitted by the simulation. Shells map them to actual audio.
const (
	SoundCrash   = "crash.wav"
	MusicPlay    = "play"
	MusicFadeout = "fadeout"
)

// Events holds the outbound requests queued during Update.
// Shells drain them exactly once per tick.
type Events struct {
	Sounds []string
	Musics []string
}

// Empty reports whether no events are queued.
func (e Events) Empty() bool {
	return len(e.Sounds) == 0 && len(e.Musics) == 0
}

func (e *Events) sound(key string) {
	e.Sounds = append(e.Sounds, key)
}

func (e *Events) music(key string) {
	e.Musics = append(e.Musics, key)
}
