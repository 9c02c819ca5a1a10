package main

import (
	"fmt"
	"io"
	"time"

	"github.com/automoto/supertale/core"
	"github.com/automoto/supertale/shared/simconfig"
)

type transition struct {
	At       time.Duration
	From, To simconfig.Phase
}

type hit struct {
	At     time.Duration
	Health int
}

// recorder plays one session: it steers the player with a bot, answers
// Command Selection and keeps what the report needs.
type recorder struct {
	engine *core.Engine
	bot    Bot
	choice string

	timeline []transition
	hits     []hit
	health   int
	last     core.Snapshot
}

func newRecorder(bot Bot, choice string) *recorder {
	return &recorder{bot: bot, choice: choice, health: -1}
}

// hook is registered with core.WithPhaseHook.
func (r *recorder) hook(from, to simconfig.Phase) {
	var at time.Duration
	if r.engine != nil {
		at = r.engine.Now()
	}
	r.timeline = append(r.timeline, transition{At: at, From: from, To: to})
}

// observe runs after each engine update. It returns false once the session
// can make no further progress.
func (r *recorder) observe(now time.Duration) bool {
	snap := r.engine.Snapshot()
	r.last = snap

	if r.health >= 0 && snap.Health < r.health {
		r.hits = append(r.hits, hit{At: now, Health: snap.Health})
	}
	r.health = snap.Health

	switch {
	case snap.Phase.IsEnding(), snap.Phase == simconfig.PhaseGameOver:
		return false
	case snap.Phase == simconfig.PhaseCommandSelection && snap.CommandsEnabled:
		if r.choice == "none" {
			return false
		}
		r.engine.SelectCommand(r.choice)
	}

	r.engine.SetHeld(r.bot.Keys(snap))
	return true
}

func (r *recorder) report(w io.Writer, elapsed time.Duration) {
	fmt.Fprintln(w, "phase timeline:")
	for _, t := range r.timeline {
		fmt.Fprintf(w, "  %8s  %s -> %s\n", t.At.Round(time.Millisecond), t.From, t.To)
	}
	fmt.Fprintf(w, "hits taken: %d\n", len(r.hits))
	for _, h := range r.hits {
		fmt.Fprintf(w, "  %8s  health %d\n", h.At.Round(time.Millisecond), h.Health)
	}
	fmt.Fprintf(w, "final health: %d/%d\n", r.last.Health, r.last.MaxHealth)
	fmt.Fprintf(w, "final phase: %s\n", r.last.Phase)
	fmt.Fprintf(w, "simulated: %s\n", elapsed.Round(time.Millisecond))
}
