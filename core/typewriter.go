package core

import (
	"log"

	"github.com/automoto/supertale/shared/simconfig"
)

// dialogueRun describes one typewriter sequence. owner is the phase that
// launched it. When hasThen is set the sequence ends by entering then;
// otherwise the owner's default follow-up runs. override lets the sequence
// run outside a dialogue phase, which the ending dialogue needs.
type dialogueRun struct {
	lines    []string
	owner    simconfig.Phase
	then     simconfig.Phase
	hasThen  bool
	override bool
}

type typewriter struct {
	run       dialogueRun
	active    bool
	line      int
	text      []rune
	char      int
	charTimer timerID
}

// startDialogue (re)starts the typewriter with a new line set.
func (e *Engine) startDialogue(run dialogueRun) {
	if e.tw.active {
		e.scope.cancel(e.tw.charTimer)
	}
	e.tw = typewriter{run: run, active: true}
	e.session.lineCursor = 0
	e.session.displayed = ""
	e.session.showDialogue = true
	e.typeNextLine()
}

func (e *Engine) dialogueLive() bool {
	if !e.tw.active {
		return false
	}
	if e.tw.run.override {
		return e.phase == e.tw.run.owner
	}
	return e.phase == e.tw.run.owner && e.phase.IsDialogue()
}

func (e *Engine) typeNextLine() {
	if !e.dialogueLive() {
		log.Printf("Ignoring dialogue advance in phase %s", e.phase)
		return
	}
	tw := &e.tw
	if tw.line >= len(tw.run.lines) {
		e.finishDialogue()
		return
	}

	tw.text = []rune(tw.run.lines[tw.line])
	tw.char = 0
	tw.line++
	e.session.lineCursor = tw.line
	e.session.displayed = ""
	e.session.showDialogue = true
	tw.charTimer = e.scope.every(e.now, e.tun.TypewriterInterval, intent{kind: intentTypeChar})
}

func (e *Engine) typeChar() {
	if !e.dialogueLive() {
		log.Printf("Ignoring dialogue tick in phase %s", e.phase)
		return
	}
	tw := &e.tw
	if tw.char < len(tw.text) {
		tw.char++
		e.session.displayed = string(tw.text[:tw.char])
		e.cue("playTick", e.audio.PlayTick)
		return
	}
	e.scope.cancel(tw.charTimer)
	e.scope.after(e.now, e.tun.LinePause, intent{kind: intentNextLine})
}

func (e *Engine) finishDialogue() {
	run := e.tw.run
	e.tw.active = false

	if run.hasThen {
		e.enter(run.then)
		return
	}
	switch run.owner {
	case simconfig.PhaseDialogue:
		x, y := e.tun.PlayerStart()
		e.session.movePlayerTo(x, y)
		e.enter(simconfig.PhaseBattle)
	case simconfig.PhaseIntermission:
		e.resumeAfterIntermission()
	default:
		e.toCommandSelection("dialogue finished with no follow-up")
	}
}

// resumeAfterIntermission returns to the battle at the stored pattern, or
// ends the segment when there is nothing left to resume or no time left.
func (e *Engine) resumeAfterIntermission() {
	s := e.session
	switch {
	case s.battleRemaining <= 0:
		e.toCommandSelection("battle time ran out during the intermission")
	case !s.hasPending:
		e.toCommandSelection("intermission finished with no next pattern")
	case s.pendingIndex >= len(e.script.Patterns):
		e.toCommandSelection("intermission points past the last pattern")
	default:
		e.enter(simconfig.PhaseBattle)
	}
}
