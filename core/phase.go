package core

import (
	"log"

	"github.com/automoto/supertale/shared/simconfig"
)

// enter tears down the outgoing phase's scope, opens a fresh one and runs the
// entry actions of next. It must be the last thing its caller does.
func (e *Engine) enter(next simconfig.Phase) {
	prev := e.phase
	e.scope.release()
	e.patternTimers = nil
	e.tw.active = false

	e.phase = next
	e.scope = e.openScope(next)
	log.Printf("Phase %s -> %s", prev, next)

	for _, h := range e.hooks {
		h(prev, next)
	}

	switch next {
	case simconfig.PhasePreload:
		e.cue("stopMusic", e.audio.StopMusic)
	case simconfig.PhaseDialogue:
		e.cue("startMusic", e.audio.StartMusic)
		e.scope.registerFrame()
		e.startDialogue(dialogueRun{
			lines: e.script.Opening,
			owner: simconfig.PhaseDialogue,
		})
	case simconfig.PhaseBattle:
		e.session.showDialogue = false
		e.scope.registerFrame()
		e.beginBattle()
	case simconfig.PhaseIntermission:
		e.scope.registerFrame()
		e.startDialogue(dialogueRun{
			lines: e.script.Intermission,
			owner: simconfig.PhaseIntermission,
		})
	case simconfig.PhaseCommandSelection:
		e.session.clearHazards(false)
		e.session.showDialogue = false
		e.cue("startMusic", e.audio.StartMusic)
	case simconfig.PhaseEndingA, simconfig.PhaseEndingB, simconfig.PhaseGameOver:
		e.cue("fadeMusic", e.fadeMusic)
	}
}

// toCommandSelection is the safe forward fallback for an inconsistent
// script: every hazard goes and the battle segment ends.
func (e *Engine) toCommandSelection(reason string) {
	log.Printf("Warning: %s; moving to command selection", reason)
	e.session.clearHazards(false)
	e.enter(simconfig.PhaseCommandSelection)
}

func (e *Engine) handleCommand(cmd simconfig.Command) {
	if e.phase != simconfig.PhaseCommandSelection {
		log.Printf("Ignoring command %q in phase %s", cmd, e.phase)
		return
	}
	if e.session.commandChosen {
		log.Printf("Ignoring command %q; a command was already chosen", cmd)
		return
	}

	switch cmd {
	case simconfig.CommandFight:
		e.session.commandChosen = true
		e.sting()
		e.enter(simconfig.PhaseEndingA)
	case simconfig.CommandSpare:
		e.session.commandChosen = true
		e.sting()
		e.scope.after(e.now, e.tun.StingDelay, intent{kind: intentEndingDialogue})
	default:
		// act and item are intentionally inert
		log.Printf("Command %q has no effect", cmd)
	}
}

func (e *Engine) sting() {
	e.session.stings++
	e.cue("playSting", e.audio.PlaySting)
}

func (e *Engine) beginEndingDialogue() {
	if e.phase != simconfig.PhaseCommandSelection {
		return
	}
	e.startDialogue(dialogueRun{
		lines:    e.script.Endings.Spare.Lines,
		owner:    simconfig.PhaseCommandSelection,
		then:     simconfig.PhaseEndingB,
		hasThen:  true,
		override: true,
	})
}
