package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Clip names.
const (
	ClipBGM      = "music/bgm"
	ClipTick     = "sfx/tick"
	ClipSting    = "sfx/sting"
	ClipMenuMove = "sfx/menu_move"
)

var ErrUnknownClip = errors.New("unknown audio clip")

// BGM is the battle loop: 16th notes at 104 BPM.
var (
	BGMTempo = 104.0
	BGMNotes = []string{
		"C3", "", "E3", "G3", "C3", "", "E3", "G3",
		"A2", "", "C3", "E3", "A2", "", "C3", "E3",
		"F2", "", "A2", "C3", "F2", "", "A2", "C3",
		"G2", "", "B2", "D3", "G2", "B2", "D3", "G2",
	}
	BGMVoice = Voice{
		Duty:   0.5,
		Env:    Envelope{Attack: 0.01, Decay: 0.08, Sustain: 0.1, Release: 0.2},
		GainDB: -16,
	}
	TickVoice = Voice{
		Duty:   0.5,
		Env:    Envelope{Attack: 0.001, Decay: 0.03, Sustain: 0, Release: 0.05},
		GainDB: -22,
	}
	StingVoice = Voice{
		Duty:   0.5,
		Env:    Envelope{Attack: 0.005, Decay: 0.05, Sustain: 0.4, Release: 0.15},
		GainDB: -14,
	}
	StingNotes = []string{"C4", "E4", "G4", "C5"}
)

// clipWAV renders a named clip as a WAV file.
func clipWAV(name string, rate int) ([]byte, error) {
	sixteenth := 60 / BGMTempo / 4

	var pcm []byte
	var err error
	switch name {
	case ClipBGM:
		pcm, err = RenderSequence(rate, BGMTempo, 0.25, BGMNotes, BGMVoice)
	case ClipTick:
		pcm, err = RenderNotes(rate, sixteenth, []string{"C5"}, TickVoice)
	case ClipSting:
		pcm, err = RenderNotes(rate, 0.07, StingNotes, StingVoice)
	case ClipMenuMove:
		pcm, err = RenderNotes(rate, 0.04, []string{"G4"}, TickVoice)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownClip, name)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", name, err)
	}
	return EncodeWAV(rate, pcm), nil
}

// AudioLoader handles loading and caching of audio clips
type AudioLoader struct {
	sfxCache map[string][]byte // decoded PCM per clip
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

func (l *AudioLoader) decode(name string) (*wav.Stream, error) {
	data, err := clipWAV(name, l.context.SampleRate())
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav %s: %w", name, err)
	}
	return stream, nil
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(name string) error {
	if _, ok := l.sfxCache[name]; ok {
		return nil
	}
	stream, err := l.decode(name)
	if err != nil {
		return err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to read decoded audio %s: %w", name, err)
	}
	l.sfxCache[name] = decoded
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(name string) (*audio.Player, error) {
	if err := l.PreloadSFX(name); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[name]))
}

// LoadMusic returns a looping player for a music clip.
func (l *AudioLoader) LoadMusic(name string) (*audio.Player, error) {
	stream, err := l.decode(name)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}
