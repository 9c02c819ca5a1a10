package core

import (
	"image/color"
	"time"

	"github.com/automoto/supertale/shared/gamemath"
	"github.com/automoto/supertale/shared/simcomponents"
	"github.com/automoto/supertale/shared/simconfig"
	"github.com/yohamta/donburi"
)

// HazardView is a read-only copy of one hazard for drawing.
type HazardView struct {
	ID    uint64
	Kind  simcomponents.HazardKind
	Rect  gamemath.Rect
	Color color.RGBA
}

// Snapshot is everything a renderer needs for one frame. It shares no memory
// with the engine.
type Snapshot struct {
	Phase  simconfig.Phase
	Now    time.Duration
	ArenaW float64
	ArenaH float64

	Player     gamemath.Rect
	Invincible bool
	Health     int
	MaxHealth  int

	Hazards []HazardView

	PatternName     string
	PatternIndex    int
	AttackTimer     int
	BattleRemaining int

	Dialogue        string
	DialogueVisible bool
	CommandsEnabled bool
	Stings          int

	EndingTitle string
	EndingText  string
}

func (e *Engine) Snapshot() Snapshot {
	s := e.session
	hp := s.health()
	snap := Snapshot{
		Phase:           e.phase,
		Now:             e.now,
		ArenaW:          e.tun.ArenaWidth,
		ArenaH:          e.tun.ArenaHeight,
		Player:          s.playerRect(),
		Invincible:      s.invincible(e.now),
		Health:          hp.Current,
		MaxHealth:       hp.Max,
		PatternIndex:    s.patternIndex,
		AttackTimer:     s.attackTimer,
		BattleRemaining: s.battleRemaining,
		Dialogue:        s.displayed,
		DialogueVisible: s.showDialogue,
		CommandsEnabled: e.phase == simconfig.PhaseCommandSelection && !s.commandChosen,
		Stings:          s.stings,
	}
	if p, ok := e.script.Pattern(s.patternIndex); ok {
		snap.PatternName = p.Name
	}

	snap.Hazards = make([]HazardView, 0, s.hazardCount())
	s.hazardEntries(func(entry *donburi.Entry, h *simcomponents.HazardData) {
		if h.Doomed {
			return
		}
		snap.Hazards = append(snap.Hazards, HazardView{
			ID:    h.ID,
			Kind:  h.Kind,
			Rect:  simcomponents.Object.Get(entry).Rect(),
			Color: h.Color,
		})
	})

	switch e.phase {
	case simconfig.PhaseEndingA:
		snap.EndingTitle = e.script.Endings.Fight.Title
		snap.EndingText = e.script.Endings.Fight.Text
	case simconfig.PhaseEndingB:
		snap.EndingTitle = e.script.Endings.Spare.Title
		snap.EndingText = e.script.Endings.Spare.Text
	}
	return snap
}
