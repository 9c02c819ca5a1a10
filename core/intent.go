package core

import (
	"log"

	"github.com/automoto/supertale/shared/simconfig"
)

type intentKind int

const (
	intentStart intentKind = iota
	intentReset
	intentCommand
	intentDamage
	intentSpawn
	intentPatternExpired
	intentAttackSecond
	intentBattleSecond
	intentTypeChar
	intentNextLine
	intentEndingDialogue
)

var intentNames = [...]string{
	intentStart:          "start",
	intentReset:          "reset",
	intentCommand:        "command",
	intentDamage:         "damage",
	intentSpawn:          "spawn",
	intentPatternExpired: "pattern-expired",
	intentAttackSecond:   "attack-second",
	intentBattleSecond:   "battle-second",
	intentTypeChar:       "type-char",
	intentNextLine:       "next-line",
	intentEndingDialogue: "ending-dialogue",
}

func (k intentKind) String() string {
	if int(k) < len(intentNames) {
		return intentNames[k]
	}
	return "unknown"
}

// intent is a request to mutate the session. Timers, the frame loop and the
// host API only ever enqueue intents; dispatch applies them one at a time.
// gen is the generation of the scope that produced the intent, or zero for
// host requests that are valid in any phase.
type intent struct {
	kind    intentKind
	gen     uint64
	amount  int
	command simconfig.Command
}

func (e *Engine) enqueue(in intent) {
	e.queue = append(e.queue, in)
}

// dispatch drains the queue in order. Intents enqueued while an intent is
// being applied run after it, never inside it.
func (e *Engine) dispatch() {
	if e.dispatching {
		return
	}
	e.dispatching = true
	defer func() { e.dispatching = false }()

	for len(e.queue) > 0 {
		in := e.queue[0]
		e.queue = e.queue[1:]
		if in.gen != 0 && in.gen != e.scope.gen {
			log.Printf("Dropping stale %s intent (scope %d, current %d)", in.kind, in.gen, e.scope.gen)
			continue
		}
		e.apply(in)
	}
}

func (e *Engine) apply(in intent) {
	switch in.kind {
	case intentStart:
		e.handleStart()
	case intentReset:
		e.handleReset()
	case intentCommand:
		e.handleCommand(in.command)
	case intentDamage:
		e.applyDamage(in.amount)
	case intentSpawn:
		e.spawnTick()
	case intentPatternExpired:
		e.patternExpired()
	case intentAttackSecond:
		e.attackSecond()
	case intentBattleSecond:
		e.battleSecond()
	case intentTypeChar:
		e.typeChar()
	case intentNextLine:
		e.typeNextLine()
	case intentEndingDialogue:
		e.beginEndingDialogue()
	default:
		log.Printf("Warning: unhandled intent %d", in.kind)
	}
}
