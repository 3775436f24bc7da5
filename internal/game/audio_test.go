package game

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/pfelipm/neon-maze/internal/engine"
)

// This test ensures the audio manager initializes and can be called even if
// no sound files exist, without panicking.
func TestAudioManagerNoAssets(t *testing.T) {
	am := NewAudioManager("/nonexistent/path", false)
	if am.Enabled() {
		t.Fatal("audio should be off")
	}
	for k := engine.EventAteDot; k <= engine.EventItemSpawned; k++ {
		am.HandleEvent(engine.Event{Kind: k})
	}
	am.PlayReady()
	am.PlayGo()

	var nilManager *AudioManager
	nilManager.HandleEvent(engine.Event{Kind: engine.EventDied})
}

func TestSoundForEvents(t *testing.T) {
	am := NewAudioManager("", false)
	tests := []struct {
		kind engine.EventKind
		want *SoundData
	}{
		{engine.EventAteDot, am.dot},
		{engine.EventAtePower, am.powerUp},
		{engine.EventAteItem, am.powerUp},
		{engine.EventPowerUp, am.powerUp},
		{engine.EventAteGhost, am.ghostEaten},
		{engine.EventDied, am.death},
		{engine.EventItemSpawned, nil},
	}
	for _, tt := range tests {
		if got := am.soundFor(engine.Event{Kind: tt.kind}); got != tt.want {
			t.Errorf("%v: wrong sound", tt.kind)
		}
	}
}

func TestWakaCountsTiles(t *testing.T) {
	am := NewAudioManager("", false)
	for i := 0; i < 3; i++ {
		am.HandleEvent(engine.Event{Kind: engine.EventMovedTile})
	}
	if am.tilesMoved != 3 {
		t.Fatalf("tilesMoved = %d", am.tilesMoved)
	}
}

func TestSoundFileOverride(t *testing.T) {
	dir := t.TempDir()
	custom := synthBeepWAV(sampleRate, 10, 1000)
	if err := os.WriteFile(filepath.Join(dir, "dot.wav"), custom, 0o644); err != nil {
		t.Fatal(err)
	}
	am := NewAudioManager(dir, false)
	if string(am.dot.raw) != string(custom) {
		t.Fatal("dot.wav override not loaded")
	}
}

func TestSynthWAVHeader(t *testing.T) {
	tests := []struct {
		name string
		wav  []byte
		ms   int
	}{
		{"beep", synthBeepWAV(sampleRate, 100, 440), 100},
		{"sweep", synthSweepWAV(sampleRate, 250, 300, 10, 0.4), 250},
		{"chord", synthChordWAV(sampleRate, 600, 880, 1108.73, 1318.51), 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.wav
			if string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" || string(b[36:40]) != "data" {
				t.Fatal("bad chunk ids")
			}
			wantData := numSamples(sampleRate, tt.ms) * 2
			if got := int(binary.LittleEndian.Uint32(b[40:44])); got != wantData {
				t.Fatalf("data size = %d, want %d", got, wantData)
			}
			if len(b) != 44+wantData {
				t.Fatalf("len = %d", len(b))
			}
			if got := binary.LittleEndian.Uint32(b[24:28]); got != sampleRate {
				t.Fatalf("sample rate = %d", got)
			}
		})
	}
}
