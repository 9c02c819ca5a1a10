package core

import (
	"time"

	"github.com/automoto/supertale/shared/simconfig"
)

type timerID uint64

type timer struct {
	id     timerID
	due    time.Duration
	period time.Duration // zero for one-shot timers
	in     intent
}

type frameLoop struct {
	active bool
	primed bool
	last   time.Duration
}

// scope is the set of timers and the frame-loop registration owned by one
// phase visit. Releasing it drops everything at once; intents stamped with a
// released scope's generation are discarded by the dispatcher.
type scope struct {
	gen      uint64
	owner    simconfig.Phase
	timers   []*timer
	nextID   timerID
	frame    frameLoop
	released bool
}

func newScope(gen uint64, owner simconfig.Phase) *scope {
	return &scope{gen: gen, owner: owner}
}

func (s *scope) arm(now, delay, period time.Duration, in intent) timerID {
	if s.released {
		return 0
	}
	s.nextID++
	in.gen = s.gen
	s.timers = append(s.timers, &timer{
		id:     s.nextID,
		due:    now + delay,
		period: period,
		in:     in,
	})
	return s.nextID
}

// after arms a one-shot timer.
func (s *scope) after(now, delay time.Duration, in intent) timerID {
	return s.arm(now, delay, 0, in)
}

// every arms a periodic timer whose first firing is one period from now.
func (s *scope) every(now, period time.Duration, in intent) timerID {
	return s.arm(now, period, period, in)
}

// dueIn reports how long until timer id fires next, or zero when it is not
// armed in this scope.
func (s *scope) dueIn(id timerID, now time.Duration) time.Duration {
	for _, t := range s.timers {
		if t.id == id && t.due > now {
			return t.due - now
		}
	}
	return 0
}

func (s *scope) cancel(id timerID) {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return
		}
	}
}

// next returns the earliest timer due at or before now. Ties go to the timer
// armed first.
func (s *scope) next(now time.Duration) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.due > now {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

// fired reschedules a periodic timer or drops a one-shot one. A periodic
// timer that has fallen more than maxLag behind realigns to now instead of
// replaying the backlog.
func (s *scope) fired(t *timer, now, maxLag time.Duration) {
	if t.period <= 0 {
		s.cancel(t.id)
		return
	}
	t.due += t.period
	if now-t.due > maxLag {
		t.due = now + t.period
	}
}

// registerFrame schedules the frame loop. Registering twice is a no-op.
func (s *scope) registerFrame() {
	if s.released || s.frame.active {
		return
	}
	s.frame = frameLoop{active: true}
}

func (s *scope) cancelFrame() {
	s.frame = frameLoop{}
}

func (s *scope) release() {
	s.timers = nil
	s.frame = frameLoop{}
	s.released = true
}

func (s *scope) pending() int {
	return len(s.timers)
}
