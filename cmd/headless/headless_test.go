package main

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/supertale/core"
	"github.com/automoto/supertale/shared/gamemath"
	"github.com/automoto/supertale/shared/simcomponents"
	"github.com/automoto/supertale/shared/simconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyScript() *simconfig.Script {
	return &simconfig.Script{
		IntermissionAfter: simconfig.NoIntermission,
		Endings: simconfig.Endings{
			Fight: simconfig.Ending{Title: "ENDING A", Text: "fight"},
			Spare: simconfig.Ending{Title: "ENDING B", Text: "spare"},
		},
	}
}

func play(t *testing.T, script *simconfig.Script, bot Bot, choice string, limit time.Duration) (*recorder, time.Duration) {
	t.Helper()
	rec := newRecorder(bot, choice)
	engine := core.New(script,
		core.WithRand(rand.New(rand.NewSource(7))),
		core.WithPhaseHook(rec.hook),
	)
	rec.engine = engine
	engine.Start()
	elapsed := core.Simulate(engine, 60, limit, rec.observe)
	return rec, elapsed
}

func TestNewBot(t *testing.T) {
	for _, name := range []string{"idle", "sweep", "dodge"} {
		b, err := newBot(name, 150)
		require.NoError(t, err, name)
		assert.NotNil(t, b)
	}
	_, err := newBot("telepath", 150)
	assert.Error(t, err)
}

func TestFightChoiceReachesEndingA(t *testing.T) {
	rec, elapsed := play(t, emptyScript(), idleBot{}, "fight", time.Minute)

	assert.Equal(t, simconfig.PhaseEndingA, rec.last.Phase)
	assert.Less(t, elapsed, time.Second)
	require.NotEmpty(t, rec.timeline)
	assert.Equal(t, simconfig.PhasePreload, rec.timeline[0].From)
	assert.Equal(t, simconfig.PhaseEndingA, rec.timeline[len(rec.timeline)-1].To)
}

func TestNoChoiceStopsAtCommandSelection(t *testing.T) {
	rec, _ := play(t, emptyScript(), idleBot{}, "none", time.Minute)
	assert.Equal(t, simconfig.PhaseCommandSelection, rec.last.Phase)
}

func TestHitsMatchHealthLost(t *testing.T) {
	rec, _ := play(t, nil, idleBot{}, "spare", 3*time.Minute)

	final := rec.last
	assert.Contains(t, []simconfig.Phase{simconfig.PhaseEndingB, simconfig.PhaseGameOver}, final.Phase)
	damage := simconfig.Default().DamageAmount
	assert.Equal(t, (final.MaxHealth-final.Health)/damage, len(rec.hits))
}

func TestDodgeStepsOutOfABone(t *testing.T) {
	bot := &dodgeBot{speed: 150, lookahead: 150 * time.Millisecond}
	snap := core.Snapshot{
		ArenaW: 200,
		ArenaH: 150,
		Player: gamemath.Rect{X: 90, Y: 65, W: 20, H: 20},
		Hazards: []core.HazardView{{
			ID:   1,
			Kind: simcomponents.KindBone,
			Rect: gamemath.Rect{X: 80, Y: 60, W: 40, H: 10},
		}},
	}

	keys := bot.Keys(snap)
	moved := bot.project(snap, keys, bot.lookahead.Seconds())
	assert.False(t, gamemath.Overlaps(moved, snap.Hazards[0].Rect))
}

func TestReport(t *testing.T) {
	rec, elapsed := play(t, emptyScript(), idleBot{}, "fight", time.Minute)

	var buf bytes.Buffer
	rec.report(&buf, elapsed)
	out := buf.String()
	assert.Contains(t, out, "phase timeline:")
	assert.Contains(t, out, "Preload -> Dialogue")
	assert.Contains(t, out, "final phase: EndingA")
	assert.Contains(t, out, "hits taken: 0")
}
