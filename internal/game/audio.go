package game

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/pfelipm/neon-maze/internal/engine"
)

const sampleRate = 44100

type SoundData struct {
	raw []byte
}

// AudioManager plays the event sounds. A manager without a context is
// silent but safe to call.
type AudioManager struct {
	ctx        *audio.Context
	waka       *SoundData
	dot        *SoundData
	powerUp    *SoundData
	ghostEaten *SoundData
	death      *SoundData
	ready      *SoundData
	goChord    *SoundData

	tilesMoved int
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

// getAudioContext returns the shared context, or nil when audio is off.
// ebiten allows a single audio context per process.
func getAudioContext(enabled bool) *audio.Context {
	if !enabled {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// NewAudioManager loads WAV overrides from soundsDir and synthesizes
// anything missing.
func NewAudioManager(soundsDir string, enabled bool) *AudioManager {
	if soundsDir == "" {
		soundsDir = "assets/sounds"
	}
	return &AudioManager{
		ctx:        getAudioContext(enabled),
		waka:       loadOr(soundsDir, "waka.wav", synthSweepWAV(sampleRate, 100, 200, 400, 0.2)),
		dot:        loadOr(soundsDir, "dot.wav", synthSweepWAV(sampleRate, 100, 800, 1200, 0.2)),
		powerUp:    loadOr(soundsDir, "power.wav", synthSweepWAV(sampleRate, 500, 200, 800, 0.35)),
		ghostEaten: loadOr(soundsDir, "ghost.wav", synthSweepWAV(sampleRate, 300, 1200, 3000, 0.3)),
		death:      loadOr(soundsDir, "death.wav", synthSweepWAV(sampleRate, 1500, 300, 10, 0.4)),
		ready:      loadOr(soundsDir, "ready.wav", synthBeepWAV(sampleRate, 500, 440)),
		goChord:    loadOr(soundsDir, "go.wav", synthChordWAV(sampleRate, 600, 880, 1108.73, 1318.51)),
	}
}

func loadOr(dir, file string, fallback []byte) *SoundData {
	b, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil || len(b) == 0 {
		return &SoundData{raw: fallback}
	}
	return &SoundData{raw: b}
}

// Enabled reports whether sounds reach the speakers.
func (am *AudioManager) Enabled() bool {
	return am != nil && am.ctx != nil
}

func (am *AudioManager) play(sd *SoundData) {
	if am == nil || am.ctx == nil || sd == nil || len(sd.raw) == 0 {
		return
	}
	// Fresh decoder per play so sounds can overlap
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(sd.raw))
	if err != nil {
		return
	}
	p, err := audio.NewPlayer(am.ctx, stream)
	if err != nil {
		return
	}
	p.Play()
}

// soundFor maps a gameplay event to its sound. Tile moves are handled
// separately because they are throttled.
func (am *AudioManager) soundFor(ev engine.Event) *SoundData {
	switch ev.Kind {
	case engine.EventAteDot:
		return am.dot
	case engine.EventAtePower, engine.EventAteItem, engine.EventPowerUp:
		return am.powerUp
	case engine.EventAteGhost:
		return am.ghostEaten
	case engine.EventDied:
		return am.death
	case engine.EventMovedTile, engine.EventItemSpawned:
		return nil
	default:
		return nil
	}
}

// HandleEvent plays the sound for ev. The waka plays on every other tile.
func (am *AudioManager) HandleEvent(ev engine.Event) {
	if am == nil {
		return
	}
	if ev.Kind == engine.EventMovedTile {
		am.tilesMoved++
		if am.tilesMoved%2 == 1 {
			am.play(am.waka)
		}
		return
	}
	am.play(am.soundFor(ev))
}

func (am *AudioManager) PlayReady() { am.play(am.ready) }
func (am *AudioManager) PlayGo()    { am.play(am.goChord) }

// synthBeepWAV is a constant-pitch sweep.
func synthBeepWAV(sampleRate int, durationMs int, freq float64) []byte {
	return synthSweepWAV(sampleRate, durationMs, freq, freq, 0.25)
}

// synthSweepWAV glides linearly from one frequency to another and fades
// out over the duration.
func synthSweepWAV(sampleRate int, durationMs int, fromHz, toHz, amp float64) []byte {
	n := numSamples(sampleRate, durationMs)
	samples := make([]float64, n)
	phase := 0.0
	for i := range samples {
		t := float64(i) / float64(n)
		freq := fromHz + (toHz-fromHz)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)
		samples[i] = math.Sin(phase) * amp * (1 - t)
	}
	return encodeWAV(sampleRate, samples)
}

// synthChordWAV mixes equal-weight sines with an exponential decay.
func synthChordWAV(sampleRate int, durationMs int, freqs ...float64) []byte {
	n := numSamples(sampleRate, durationMs)
	samples := make([]float64, n)
	amp := 0.3 / float64(max(len(freqs), 1))
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-6 * float64(i) / float64(n))
		for _, f := range freqs {
			samples[i] += math.Sin(2*math.Pi*f*t) * amp * env
		}
	}
	return encodeWAV(sampleRate, samples)
}

func numSamples(sampleRate, durationMs int) int {
	return int(float64(sampleRate) * float64(durationMs) / 1000.0)
}

// wavHeader is the canonical 44-byte header of a PCM mono 16-bit file.
type wavHeader struct {
	Riff          [4]byte
	ChunkSize     uint32
	Wave          [4]byte
	Fmt           [4]byte
	FmtSize       uint32
	Format        uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Data          [4]byte
	DataSize      uint32
}

// encodeWAV wraps samples in [-1,1] as 16-bit PCM mono.
func encodeWAV(sampleRate int, samples []float64) []byte {
	pcm := make([]int16, len(samples))
	for i, s := range samples {
		pcm[i] = int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16)
	}
	dataSize := uint32(len(pcm) * 2)
	h := wavHeader{
		Riff:          [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Wave:          [4]byte{'W', 'A', 'V', 'E'},
		Fmt:           [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		Format:        1,
		Channels:      1,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * 2),
		BlockAlign:    2,
		BitsPerSample: 16,
		Data:          [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}
	var buf bytes.Buffer
	buf.Grow(44 + int(dataSize))
	// Writes to a bytes.Buffer cannot fail.
	_ = binary.Write(&buf, binary.LittleEndian, h)
	_ = binary.Write(&buf, binary.LittleEndian, pcm)
	return buf.Bytes()
}
