package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
)

// Envelope is a linear ADSR envelope in seconds. Sustain is a level.
type Envelope struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// level returns the envelope amplitude t seconds after note-on for a note
// held for gate seconds.
func (e Envelope) level(t, gate float64) float64 {
	held := func(t float64) float64 {
		switch {
		case t < e.Attack:
			return t / e.Attack
		case t < e.Attack+e.Decay:
			return 1 - (1-e.Sustain)*(t-e.Attack)/e.Decay
		default:
			return e.Sustain
		}
	}
	if t < gate {
		return held(t)
	}
	if e.Release <= 0 || t >= gate+e.Release {
		return 0
	}
	return held(gate) * (1 - (t-gate)/e.Release)
}

// Voice is a pulse oscillator with an envelope. Duty 0.5 is a square wave.
type Voice struct {
	Duty   float64
	Env    Envelope
	GainDB float64
}

func (v Voice) gain() float64 {
	return math.Pow(10, v.GainDB/20)
}

var semitones = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// NoteFrequency converts scientific pitch notation ("A4", "C#3", "Bb2") to Hz.
func NoteFrequency(note string) (float64, error) {
	if len(note) < 2 {
		return 0, fmt.Errorf("invalid note %q", note)
	}
	st, ok := semitones[note[0]]
	if !ok {
		return 0, fmt.Errorf("invalid note %q", note)
	}
	rest := note[1:]
	switch rest[0] {
	case '#':
		st++
		rest = rest[1:]
	case 'b':
		st--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid octave in note %q: %w", note, err)
	}
	midi := (octave+1)*12 + st
	return 440 * math.Pow(2, float64(midi-69)/12), nil
}

// mixer accumulates mono samples. When loop is set, tails past the end wrap
// around so the buffer loops without a click.
type mixer struct {
	rate int
	buf  []float64
	loop bool
}

func newMixer(rate int, seconds float64, loop bool) *mixer {
	return &mixer{rate: rate, buf: make([]float64, int(math.Round(seconds*float64(rate)))), loop: loop}
}

func (m *mixer) note(start, gate, freq float64, v Voice) {
	g := v.gain()
	first := int(math.Round(start * float64(m.rate)))
	total := int(math.Ceil((gate + v.Env.Release) * float64(m.rate)))
	for i := 0; i < total; i++ {
		idx := first + i
		if idx >= len(m.buf) {
			if !m.loop {
				return
			}
			idx %= len(m.buf)
		}
		t := float64(i) / float64(m.rate)
		phase := math.Mod(t*freq, 1)
		s := -1.0
		if phase < v.Duty {
			s = 1.0
		}
		m.buf[idx] += s * v.Env.level(t, gate) * g
	}
}

// pcm encodes the buffer as 16-bit little-endian stereo.
func (m *mixer) pcm() []byte {
	out := make([]byte, len(m.buf)*4)
	for i, s := range m.buf {
		s = math.Max(-1, math.Min(1, s))
		v := uint16(int16(s * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], v)
		binary.LittleEndian.PutUint16(out[i*4+2:], v)
	}
	return out
}

// RenderSequence renders one loop of a step sequence. Each step lasts
// stepBeats beats; empty strings are rests.
func RenderSequence(rate int, bpm, stepBeats float64, notes []string, v Voice) ([]byte, error) {
	step := 60 / bpm * stepBeats
	m := newMixer(rate, step*float64(len(notes)), true)
	for i, n := range notes {
		if n == "" {
			continue
		}
		f, err := NoteFrequency(n)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		m.note(float64(i)*step, step, f, v)
	}
	return m.pcm(), nil
}

// RenderNotes renders notes one after another, each held for gate seconds,
// with the final release tail included.
func RenderNotes(rate int, gate float64, notes []string, v Voice) ([]byte, error) {
	m := newMixer(rate, gate*float64(len(notes))+v.Env.Release, false)
	for i, n := range notes {
		f, err := NoteFrequency(n)
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", i, err)
		}
		m.note(float64(i)*gate, gate, f, v)
	}
	return m.pcm(), nil
}

// EncodeWAV wraps 16-bit stereo PCM in a RIFF/WAVE container.
func EncodeWAV(rate int, pcm []byte) []byte {
	const (
		channels      = 2
		bitsPerSample = 16
	)
	var b bytes.Buffer
	w := func(v any) { _ = binary.Write(&b, binary.LittleEndian, v) }

	b.WriteString("RIFF")
	w(uint32(36 + len(pcm)))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	w(uint32(16))
	w(uint16(1))
	w(uint16(channels))
	w(uint32(rate))
	w(uint32(rate * channels * bitsPerSample / 8))
	w(uint16(channels * bitsPerSample / 8))
	w(uint16(bitsPerSample))
	b.WriteString("data")
	w(uint32(len(pcm)))
	b.Write(pcm)
	return b.Bytes()
}
