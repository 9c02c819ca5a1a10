package core

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/supertale/shared/simconfig"
)

// beginBattle runs on Battle entry. It starts at the pattern stored by the
// intermission, or at the first pattern. The second counters resume where
// the intermission paused them.
func (e *Engine) beginBattle() {
	s := e.session
	if len(e.script.Patterns) == 0 {
		e.toCommandSelection("no attack patterns defined")
		return
	}

	start := 0
	if s.hasPending {
		start = s.pendingIndex
		s.hasPending = false
	}

	first := time.Second
	if s.secondCarry > 0 {
		first = s.secondCarry
		s.secondCarry = 0
	}
	e.scope.arm(e.now, first, time.Second, intent{kind: intentAttackSecond})
	e.secondTimer = e.scope.arm(e.now, first, time.Second, intent{kind: intentBattleSecond})
	e.armPattern(start)
}

// armPattern makes pattern i current, arming its duration timer and exactly
// one spawn mechanism.
func (e *Engine) armPattern(i int) {
	p, ok := e.script.Pattern(i)
	if !ok {
		e.toCommandSelection(fmt.Sprintf("no attack pattern at index %d", i))
		return
	}

	for _, id := range e.patternTimers {
		e.scope.cancel(id)
	}
	e.patternTimers = e.patternTimers[:0]

	s := e.session
	s.patternIndex = i
	s.attackTimer = p.DisplaySeconds()
	s.clearPersistent()

	log.Printf("Attack pattern %d: %s", i, p)
	e.patternTimers = append(e.patternTimers,
		e.scope.after(e.now, p.Duration(), intent{kind: intentPatternExpired}))

	if p.Kind.Cadenced() {
		e.patternTimers = append(e.patternTimers,
			e.scope.every(e.now, e.tun.SpawnInterval, intent{kind: intentSpawn}))
		return
	}
	e.spawn(p.Kind)
}

func (e *Engine) patternExpired() {
	if e.phase != simconfig.PhaseBattle {
		return
	}
	s := e.session
	cur := s.patternIndex
	next := cur + 1

	if e.script.IsFinale(cur) {
		s.clearHazards(true)
		s.secondCarry = e.scope.dueIn(e.secondTimer, e.now)
		s.hasPending = next < len(e.script.Patterns)
		if s.hasPending {
			s.pendingIndex = next
		}
		e.enter(simconfig.PhaseIntermission)
		return
	}

	if next >= len(e.script.Patterns) {
		log.Println("Last attack pattern finished")
		s.clearHazards(false)
		e.enter(simconfig.PhaseCommandSelection)
		return
	}
	e.armPattern(next)
}

func (e *Engine) spawnTick() {
	if e.phase != simconfig.PhaseBattle {
		return
	}
	p, ok := e.script.Pattern(e.session.patternIndex)
	if !ok {
		e.toCommandSelection(fmt.Sprintf("spawn tick with no pattern at index %d", e.session.patternIndex))
		return
	}
	e.spawn(p.Kind)
}

func (e *Engine) attackSecond() {
	if e.phase != simconfig.PhaseBattle {
		return
	}
	if e.session.attackTimer > 0 {
		e.session.attackTimer--
	}
}

// battleSecond counts down the overall battle. Running out ends the segment
// no matter how many patterns remain.
func (e *Engine) battleSecond() {
	if e.phase != simconfig.PhaseBattle {
		return
	}
	s := e.session
	s.battleRemaining--
	if s.battleRemaining <= 0 {
		s.battleRemaining = 0
		log.Println("Battle time is up")
		s.clearHazards(false)
		e.enter(simconfig.PhaseCommandSelection)
	}
}
