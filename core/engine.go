// Package core is the headless battle simulation: player movement, hazards,
// attack patterns, collisions, damage, dialogue and the phase machine. It
// never draws and never blocks. The host calls Update once per display frame
// with a monotonic timestamp and reads a Snapshot to render.
package core

import (
	"log"
	"math/rand"
	"time"

	"github.com/automoto/supertale/shared/simconfig"
)

// Engine owns one game session and everything that mutates it. It is not
// safe for concurrent use; drive it from a single goroutine.
type Engine struct {
	tun    simconfig.Tunables
	script *simconfig.Script
	next   *simconfig.Script
	audio  Audio
	rng    *rand.Rand
	hooks  []PhaseHook

	session *Session
	phase   simconfig.Phase
	scope   *scope
	gen     uint64
	now     time.Duration

	queue       []intent
	dispatching bool

	held          MoveSet
	tw            typewriter
	patternTimers []timerID
	secondTimer   timerID
}

// PhaseHook observes phase transitions. It runs once the phase has changed
// and before the new phase's entry actions.
type PhaseHook func(from, to simconfig.Phase)

type Option func(*Engine)

// WithAudio sets the audio collaborator. The default is silent.
func WithAudio(a Audio) Option {
	return func(e *Engine) {
		if a != nil {
			e.audio = a
		}
	}
}

// WithRand sets the random source used for spawns.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithTunables overrides the default tunables.
func WithTunables(t simconfig.Tunables) Option {
	return func(e *Engine) {
		e.tun = t
	}
}

// WithPhaseHook registers an observer for phase transitions.
func WithPhaseHook(h PhaseHook) Option {
	return func(e *Engine) {
		e.hooks = append(e.hooks, h)
	}
}

// New creates an engine in the Preload phase. A nil script selects the
// embedded default.
func New(script *simconfig.Script, opts ...Option) *Engine {
	if script == nil {
		script = simconfig.DefaultScript()
	}
	e := &Engine{
		tun:    simconfig.Default(),
		script: script,
		audio:  NopAudio{},
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		phase:  simconfig.PhasePreload,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.session = newSession(e.tun, e.script)
	e.scope = e.openScope(e.phase)
	return e
}

// Start leaves Preload and begins the opening dialogue.
func (e *Engine) Start() {
	e.enqueue(intent{kind: intentStart})
	e.dispatch()
}

// Reset discards the session and returns to Preload from any phase.
func (e *Engine) Reset() {
	e.enqueue(intent{kind: intentReset})
	e.dispatch()
}

// SelectCommand submits a Command Selection choice by label. It is ignored
// outside Command Selection.
func (e *Engine) SelectCommand(label string) {
	cmd, ok := simconfig.ParseCommand(label)
	if !ok {
		log.Printf("Ignoring unknown command %q", label)
		return
	}
	if e.phase != simconfig.PhaseCommandSelection {
		log.Printf("Ignoring command %q in phase %s", cmd, e.phase)
		return
	}
	e.enqueue(intent{kind: intentCommand, command: cmd})
	e.dispatch()
}

// SetHeld replaces the set of held movement keys.
func (e *Engine) SetHeld(m MoveSet) {
	e.held = m
}

// SetScript installs a script for the next session. The running session
// keeps its script.
func (e *Engine) SetScript(s *simconfig.Script) {
	if s == nil {
		return
	}
	e.next = s
	log.Printf("Battle script updated; applies on next start or reset")
}

// Update advances the clock to now, fires due timers in order and runs the
// frame loop if it is registered. Timestamps earlier than the last one are
// treated as the last one.
func (e *Engine) Update(now time.Duration) {
	if now < e.now {
		now = e.now
	}
	e.now = now
	e.session.refreshInvincibility(now)

	for {
		sc := e.scope
		t := sc.next(now)
		if t == nil {
			break
		}
		sc.fired(t, now, e.tun.FrameSanityLimit)
		e.enqueue(t.in)
		e.dispatch()
	}

	if e.scope.frame.active {
		e.frame(now)
		e.dispatch()
	}
}

func (e *Engine) Phase() simconfig.Phase { return e.phase }

func (e *Engine) Now() time.Duration { return e.now }

func (e *Engine) Tunables() simconfig.Tunables { return e.tun }

func (e *Engine) Script() *simconfig.Script { return e.script }

// FrameLoopActive reports whether the frame loop is currently scheduled.
func (e *Engine) FrameLoopActive() bool {
	return e.scope.frame.active
}

// PendingTimers is the number of live timers in the current phase scope.
func (e *Engine) PendingTimers() int {
	return e.scope.pending()
}

func (e *Engine) openScope(owner simconfig.Phase) *scope {
	e.gen++
	return newScope(e.gen, owner)
}

// freshSession replaces the session, adopting a pending script first.
func (e *Engine) freshSession() {
	if e.next != nil {
		e.script = e.next
		e.next = nil
	}
	e.session = newSession(e.tun, e.script)
	e.tw = typewriter{}
	e.patternTimers = nil
	e.queue = e.queue[:0]
}

func (e *Engine) handleStart() {
	if e.phase != simconfig.PhasePreload {
		log.Printf("Ignoring start in phase %s", e.phase)
		return
	}
	e.freshSession()
	e.enter(simconfig.PhaseDialogue)
}

func (e *Engine) handleReset() {
	log.Println("Resetting game...")
	e.freshSession()
	e.held = 0
	e.enter(simconfig.PhasePreload)
}
