package core

import (
	"time"

	"github.com/automoto/supertale/core/factory"
	"github.com/automoto/supertale/shared/gamemath"
	"github.com/automoto/supertale/shared/simcomponents"
	"github.com/automoto/supertale/shared/simconfig"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Session is the mutable state of one game. It is created fresh on start and
// on reset and is never reused across a reset.
type Session struct {
	world  donburi.World
	space  *resolv.Space
	player *donburi.Entry

	// hazards is kept in spawn order; collision resolution walks it in order.
	hazards []donburi.Entity
	nextID  uint64

	patternIndex    int
	attackTimer     int
	battleRemaining int
	pendingIndex    int
	hasPending      bool

	// secondCarry is the unfinished part of the battle second when an
	// intermission interrupted it.
	secondCarry time.Duration

	lineCursor   int
	displayed    string
	showDialogue bool

	nextLiftLeft  bool
	commandChosen bool
	stings        int
}

func newSession(t simconfig.Tunables, script *simconfig.Script) *Session {
	world := donburi.NewWorld()
	space := factory.CreateSpace(t.ArenaWidth, t.ArenaHeight)

	x, y := t.PlayerStart()
	player := factory.CreatePlayer(world, space, gamemath.Rect{X: x, Y: y, W: t.PlayerSize, H: t.PlayerSize}, t.MaxHealth)

	s := &Session{
		world:           world,
		space:           space,
		player:          player,
		battleRemaining: t.BattleDurationSecs,
		nextLiftLeft:    true,
	}
	if p, ok := script.Pattern(0); ok {
		s.attackTimer = p.DisplaySeconds()
	}
	return s
}

func (s *Session) playerObject() *simcomponents.ObjectData {
	return simcomponents.Object.Get(s.player)
}

func (s *Session) playerRect() gamemath.Rect {
	return s.playerObject().Rect()
}

func (s *Session) health() *simcomponents.HealthData {
	return simcomponents.Health.Get(s.player)
}

func (s *Session) playerState() *simcomponents.PlayerData {
	return simcomponents.Player.Get(s.player)
}

// invincible reports whether the invincibility window covers now.
func (s *Session) invincible(now time.Duration) bool {
	return s.playerState().Invincible && now < s.playerState().InvincibleUntil
}

// refreshInvincibility clears the flag once the window has passed.
func (s *Session) refreshInvincibility(now time.Duration) {
	p := s.playerState()
	if p.Invincible && now >= p.InvincibleUntil {
		p.Invincible = false
	}
}

// grantInvincibility starts a full window from now, replacing any window in
// progress.
func (s *Session) grantInvincibility(now, d time.Duration) {
	p := s.playerState()
	p.Invincible = true
	p.InvincibleUntil = now + d
}

func (s *Session) movePlayerTo(x, y float64) {
	obj := s.playerObject()
	obj.X = x
	obj.Y = y
	obj.Update()
}

func (s *Session) newHazardID() uint64 {
	s.nextID++
	return s.nextID
}

func (s *Session) addHazard(entry *donburi.Entry) {
	s.hazards = append(s.hazards, entry.Entity())
}

func (s *Session) hazardEntries(fn func(*donburi.Entry, *simcomponents.HazardData)) {
	for _, entity := range s.hazards {
		if !s.world.Valid(entity) {
			continue
		}
		entry := s.world.Entry(entity)
		fn(entry, simcomponents.Hazard.Get(entry))
	}
}

// sweep destroys every doomed hazard, preserving the order of the rest.
func (s *Session) sweep() {
	kept := s.hazards[:0]
	for _, entity := range s.hazards {
		if !s.world.Valid(entity) {
			continue
		}
		if simcomponents.Hazard.Get(s.world.Entry(entity)).Doomed {
			factory.Destroy(s.world, s.space, entity)
			continue
		}
		kept = append(kept, entity)
	}
	s.hazards = kept
}

// clearHazards removes hazards. When keepPersistent is set the bouncing logo
// survives.
func (s *Session) clearHazards(keepPersistent bool) {
	s.hazardEntries(func(_ *donburi.Entry, h *simcomponents.HazardData) {
		if keepPersistent && h.Kind.Persistent() {
			return
		}
		h.Doomed = true
	})
	s.sweep()
}

// clearPersistent removes only persistent hazards.
func (s *Session) clearPersistent() {
	s.hazardEntries(func(_ *donburi.Entry, h *simcomponents.HazardData) {
		if h.Kind.Persistent() {
			h.Doomed = true
		}
	})
	s.sweep()
}

func (s *Session) hazardCount() int {
	return len(s.hazards)
}
