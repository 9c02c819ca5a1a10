package core

import "log"

// Audio is the sound collaborator. Implementations must make StartMusic and
// StopMusic idempotent. Errors are logged and never block a transition.
type Audio interface {
	StartMusic() error
	StopMusic() error
	PlayTick() error
	PlaySting() error
}

// MusicFader is optionally implemented by an Audio. Endings and game over
// fade the music through it; without it they stop the music outright.
type MusicFader interface {
	FadeOutMusic() error
}

// NopAudio is a silent Audio.
type NopAudio struct{}

func (NopAudio) StartMusic() error { return nil }
func (NopAudio) StopMusic() error  { return nil }
func (NopAudio) PlayTick() error   { return nil }
func (NopAudio) PlaySting() error  { return nil }

// cue calls one audio method, logging errors and recovering panics so sound
// problems cannot interrupt the state machine.
func (e *Engine) cue(name string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: audio %s panicked: %v", name, r)
		}
	}()
	if err := fn(); err != nil {
		log.Printf("Warning: audio %s: %v", name, err)
	}
}

func (e *Engine) fadeMusic() error {
	if f, ok := e.audio.(MusicFader); ok {
		return f.FadeOutMusic()
	}
	return e.audio.StopMusic()
}
