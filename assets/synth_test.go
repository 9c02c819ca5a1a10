package assets

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteFrequency(t *testing.T) {
	tests := []struct {
		note string
		want float64
	}{
		{"A4", 440},
		{"A2", 110},
		{"C5", 523.2511},
		{"C3", 130.8128},
		{"C#4", 277.1826},
		{"Bb3", 233.0819},
	}
	for _, tt := range tests {
		t.Run(tt.note, func(t *testing.T) {
			got, err := NoteFrequency(tt.note)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}

	for _, bad := range []string{"", "H2", "C", "Cx"} {
		_, err := NoteFrequency(bad)
		assert.Error(t, err, bad)
	}
}

func TestEnvelopeLevel(t *testing.T) {
	e := Envelope{Attack: 0.1, Decay: 0.1, Sustain: 0.5, Release: 0.2}

	assert.InDelta(t, 0.5, e.level(0.05, 1), 1e-9)
	assert.InDelta(t, 1.0, e.level(0.1, 1), 1e-9)
	assert.InDelta(t, 0.75, e.level(0.15, 1), 1e-9)
	assert.InDelta(t, 0.5, e.level(0.5, 1), 1e-9)
	assert.InDelta(t, 0.25, e.level(1.1, 1), 1e-9)
	assert.Zero(t, e.level(1.3, 1))
}

func TestRenderSequenceLength(t *testing.T) {
	pcm, err := RenderSequence(44100, 120, 0.25, []string{"C3", "", "E3", "G3"}, BGMVoice)
	require.NoError(t, err)
	// four 16ths at 120 BPM is half a second; four bytes per frame
	assert.Len(t, pcm, 22050*4)

	_, err = RenderSequence(44100, 120, 0.25, []string{"Q9"}, BGMVoice)
	assert.Error(t, err)
}

func TestEncodeWAVHeader(t *testing.T) {
	pcm := make([]byte, 400)
	wav := EncodeWAV(48000, pcm)

	require.Len(t, wav, 444)
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, uint32(436), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(wav[22:24]))
	assert.Equal(t, uint32(48000), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, "data", string(wav[36:40]))
	assert.Equal(t, uint32(400), binary.LittleEndian.Uint32(wav[40:44]))
}

func TestClipsRender(t *testing.T) {
	for _, name := range []string{ClipBGM, ClipTick, ClipSting, ClipMenuMove} {
		data, err := clipWAV(name, 44100)
		require.NoError(t, err, name)
		assert.Greater(t, len(data), 44, name)
	}
	_, err := clipWAV("sfx/nope", 44100)
	assert.ErrorIs(t, err, ErrUnknownClip)
}
