package systems

import (
	"fmt"
	"sync"

	"github.com/automoto/supertale/assets"
	"github.com/automoto/supertale/components"
	cfg "github.com/automoto/supertale/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalFade         musicFade
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders all sound effects at startup so the first tick
// doesn't stall the typewriter.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, name := range cfg.Sound.SFXClips {
		_ = globalAudioLoader.PreloadSFX(name)
	}
}

// UpdateAudio processes pending SFX and manages music fades
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if globalFade.active() {
		volume, done := globalFade.step()
		if globalMusicPlayer != nil {
			globalMusicPlayer.SetVolume(volume)
			if done {
				_ = globalMusicPlayer.Close()
				globalMusicPlayer = nil
				globalMusicKey = ""
			}
		}
	}

	entry, ok := components.Audio.First(e.World)
	if ok {
		audioData := components.Audio.Get(entry)
		for _, soundID := range audioData.PendingSFX {
			_ = playSFX(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

func playSFX(soundID cfg.SoundID) error {
	if globalSFXVolume <= 0 {
		return nil
	}

	name, ok := cfg.Sound.SFXClips[soundID]
	if !ok {
		return fmt.Errorf("no clip for sound %d", soundID)
	}

	player, err := globalAudioLoader.LoadSFX(name)
	if err != nil {
		return err
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
	return nil
}

// PlayMusic starts looping the named clip. Asking for the clip that is
// already playing does nothing.
func PlayMusic(name string) error {
	initGlobalAudio()

	if globalMusicKey == name && !globalFade.active() {
		return nil
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}

	player, err := globalAudioLoader.LoadMusic(name)
	if err != nil {
		return err
	}

	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = name
	globalFade = musicFade{}
	return nil
}

// musicFade lowers the music volume linearly over a number of frames.
type musicFade struct {
	remaining int
	frames    int
	start     float64
}

func newMusicFade(frames int, start float64) musicFade {
	return musicFade{remaining: frames, frames: frames, start: start}
}

func (f *musicFade) active() bool {
	return f.remaining > 0
}

// step advances one frame and returns the volume to use. done is true on
// the frame the fade reaches silence.
func (f *musicFade) step() (volume float64, done bool) {
	if f.remaining <= 0 {
		return 0, false
	}
	f.remaining--
	if f.frames > 0 {
		volume = f.start * float64(f.remaining) / float64(f.frames)
	}
	return volume, f.remaining == 0
}

// FadeOutMusic starts a music fade out transition. With no fade configured
// the music stops at once.
func FadeOutMusic() error {
	if globalMusicPlayer == nil || globalFade.active() {
		return nil
	}
	if cfg.Audio.MusicFadeDuration <= 0 {
		return StopMusic()
	}
	globalFade = newMusicFade(cfg.Audio.MusicFadeDuration, globalMusicVolume)
	return nil
}

// StopMusic immediately stops the current music
func StopMusic() error {
	var err error
	if globalMusicPlayer != nil {
		err = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
	globalFade = musicFade{}
	return err
}

// PlaySFX queues a sound effect to be played on the next UpdateAudio
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:     globalAudioContext,
			MusicVolume: globalMusicVolume,
			SFXVolume:   globalSFXVolume,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// BattleAudio plays the engine's cues through the global audio state. Sound
// effects go through the bound scene's queue so they play in UpdateAudio;
// with no scene bound they play at once.
type BattleAudio struct {
	ecs *ecs.ECS
}

func NewBattleAudio() *BattleAudio {
	return &BattleAudio{}
}

// Bind routes sound effects into the given scene's queue.
func (a *BattleAudio) Bind(e *ecs.ECS) {
	a.ecs = e
}

func (a *BattleAudio) StartMusic() error {
	return PlayMusic(cfg.Sound.BattleMusic)
}

func (a *BattleAudio) StopMusic() error {
	return StopMusic()
}

// FadeOutMusic lets the battle theme die away under an ending.
func (a *BattleAudio) FadeOutMusic() error {
	return FadeOutMusic()
}

func (a *BattleAudio) PlayTick() error {
	return a.sfx(cfg.SoundTick)
}

func (a *BattleAudio) PlaySting() error {
	return a.sfx(cfg.SoundSting)
}

func (a *BattleAudio) sfx(id cfg.SoundID) error {
	if a.ecs != nil {
		PlaySFX(a.ecs, id)
		return nil
	}
	initGlobalAudio()
	return playSFX(id)
}
