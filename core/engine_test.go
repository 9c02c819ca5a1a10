package core

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/automoto/supertale/shared/simconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAudio struct {
	starts, stops, ticks, stings int

	err         error
	panicOnTick bool
}

func (a *recordingAudio) StartMusic() error { a.starts++; return a.err }
func (a *recordingAudio) StopMusic() error  { a.stops++; return a.err }
func (a *recordingAudio) PlaySting() error  { a.stings++; return a.err }
func (a *recordingAudio) PlayTick() error {
	a.ticks++
	if a.panicOnTick {
		panic("speaker on fire")
	}
	return a.err
}

type fadingAudio struct {
	recordingAudio
	fades int
}

func (a *fadingAudio) FadeOutMusic() error { a.fades++; return a.err }

// quietTunables never spawns gaster warnings, so a gaster pattern is a
// battle with no hazards.
func quietTunables() simconfig.Tunables {
	t := simconfig.Default()
	t.GasterChance = 0
	return t
}

func quiet(ms int) simconfig.AttackPattern {
	return simconfig.AttackPattern{Name: "Quiet", DurationMS: ms, Kind: simconfig.PatternGasterBlaster}
}

func testScript(patterns ...simconfig.AttackPattern) *simconfig.Script {
	return &simconfig.Script{
		Patterns:          patterns,
		IntermissionAfter: simconfig.NoIntermission,
		Endings: simconfig.Endings{
			Fight: simconfig.Ending{Title: "ENDING A", Text: "fight"},
			Spare: simconfig.Ending{Title: "ENDING B", Text: "spare", Lines: []string{"ok"}},
		},
	}
}

func newTestEngine(t *testing.T, script *simconfig.Script, opts ...Option) (*Engine, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	base := []Option{
		WithAudio(audio),
		WithRand(rand.New(rand.NewSource(1))),
		WithTunables(quietTunables()),
	}
	return New(script, append(base, opts...)...), audio
}

func advance(e *Engine, d time.Duration) {
	Simulate(e, 60, d, nil)
}

// runUntil advances until the engine reaches phase or limit passes.
func runUntil(e *Engine, phase simconfig.Phase, limit time.Duration) bool {
	Simulate(e, 60, limit, func(time.Duration) bool {
		return e.Phase() != phase
	})
	return e.Phase() == phase
}

func TestNewEngineStartsInPreload(t *testing.T) {
	e, _ := newTestEngine(t, testScript(quiet(1000)))

	assert.Equal(t, simconfig.PhasePreload, e.Phase())
	assert.False(t, e.FrameLoopActive())
	assert.Zero(t, e.PendingTimers())

	snap := e.Snapshot()
	assert.Equal(t, 100, snap.Health)
	assert.Equal(t, 100, snap.MaxHealth)
	assert.Empty(t, snap.Hazards)
}

func TestOpeningDialogueTypesEveryCharacter(t *testing.T) {
	script := testScript(quiet(5000))
	script.Opening = []string{"ab", "cd", "ef"}
	e, audio := newTestEngine(t, script)

	e.Start()
	require.Equal(t, simconfig.PhaseDialogue, e.Phase())
	assert.True(t, e.FrameLoopActive())
	assert.Equal(t, 1, audio.starts)

	last := 0
	sawFull := false
	Simulate(e, 60, 5*time.Second, func(time.Duration) bool {
		assert.GreaterOrEqual(t, e.session.lineCursor, last)
		last = e.session.lineCursor
		if e.Snapshot().Dialogue == "ef" {
			sawFull = true
		}
		return e.Phase() == simconfig.PhaseDialogue
	})

	assert.Equal(t, simconfig.PhaseBattle, e.Phase())
	assert.Equal(t, 6, audio.ticks)
	assert.True(t, sawFull)
	assert.False(t, e.Snapshot().DialogueVisible)

	x, y := e.Tunables().PlayerStart()
	assert.Equal(t, x, e.Snapshot().Player.X)
	assert.Equal(t, y, e.Snapshot().Player.Y)
}

func TestPlayerMovesDuringDialogue(t *testing.T) {
	script := testScript(quiet(5000))
	script.Opening = []string{"a long line of dialogue"}
	e, _ := newTestEngine(t, script)

	e.Start()
	e.SetHeld(MoveLeft)
	x0 := e.Snapshot().Player.X
	advance(e, 200*time.Millisecond)

	require.Equal(t, simconfig.PhaseDialogue, e.Phase())
	assert.Less(t, e.Snapshot().Player.X, x0)
}

func TestStartIsIgnoredOutsidePreload(t *testing.T) {
	e, _ := newTestEngine(t, testScript(quiet(5000)))

	e.Start()
	require.Equal(t, simconfig.PhaseBattle, e.Phase())
	advance(e, 100*time.Millisecond)
	e.Start()
	assert.Equal(t, simconfig.PhaseBattle, e.Phase())
}

func TestBattleDurationEndsTheSegment(t *testing.T) {
	tun := quietTunables()
	tun.BattleDurationSecs = 2
	e, _ := newTestEngine(t, testScript(quiet(10000)), WithTunables(tun))

	e.Start()
	require.Equal(t, simconfig.PhaseBattle, e.Phase())

	advance(e, 1050*time.Millisecond)
	assert.Equal(t, 1, e.Snapshot().BattleRemaining)
	assert.Equal(t, 9, e.Snapshot().AttackTimer)

	require.True(t, runUntil(e, simconfig.PhaseCommandSelection, 2*time.Second))
	snap := e.Snapshot()
	assert.Zero(t, snap.BattleRemaining)
	assert.Empty(t, snap.Hazards)
	assert.True(t, snap.CommandsEnabled)
	assert.False(t, e.FrameLoopActive())
	assert.Zero(t, e.PendingTimers())
}

func TestPatternsRunInOrderThenCommandSelection(t *testing.T) {
	e, _ := newTestEngine(t, testScript(quiet(1000), quiet(1500)))
	e.script.Patterns[1].Name = "Second"

	var names []string
	e.Start()
	Simulate(e, 60, 5*time.Second, func(time.Duration) bool {
		snap := e.Snapshot()
		if snap.Phase == simconfig.PhaseBattle &&
			(len(names) == 0 || names[len(names)-1] != snap.PatternName) {
			names = append(names, snap.PatternName)
		}
		return snap.Phase == simconfig.PhaseBattle
	})

	assert.Equal(t, []string{"Quiet", "Second"}, names)
	assert.Equal(t, simconfig.PhaseCommandSelection, e.Phase())
	assert.InDelta(t, 2500*time.Millisecond, e.Now(), float64(50*time.Millisecond))
}

func TestEmptyPatternListSkipsToCommandSelection(t *testing.T) {
	e, _ := newTestEngine(t, testScript())

	e.Start()
	assert.Equal(t, simconfig.PhaseCommandSelection, e.Phase())
	assert.Zero(t, e.PendingTimers())
}

func TestIntermissionResumesAtNextPattern(t *testing.T) {
	script := testScript(
		simconfig.AttackPattern{Name: "Logo", DurationMS: 500, Kind: simconfig.PatternDVDLogo},
		quiet(5000),
	)
	script.IntermissionAfter = 0
	script.Intermission = []string{"x"}
	e, _ := newTestEngine(t, script)

	e.Start()
	require.Len(t, e.Snapshot().Hazards, 1)

	require.True(t, runUntil(e, simconfig.PhaseIntermission, time.Second))
	snap := e.Snapshot()
	require.Len(t, snap.Hazards, 1, "the logo survives into the intermission")
	logoAt := snap.Hazards[0].Rect
	assert.True(t, snap.DialogueVisible)

	advance(e, 200*time.Millisecond)
	assert.NotEqual(t, logoAt, e.Snapshot().Hazards[0].Rect, "hazards keep moving")

	require.True(t, runUntil(e, simconfig.PhaseBattle, 2*time.Second))
	snap = e.Snapshot()
	assert.Equal(t, 1, snap.PatternIndex)
	assert.Empty(t, snap.Hazards, "the logo goes when the next pattern arms")
}

func TestIntermissionKeepsBattleSecondPhase(t *testing.T) {
	script := testScript(quiet(1500), quiet(10000))
	script.IntermissionAfter = 0
	script.Intermission = []string{"x"}
	e, _ := newTestEngine(t, script)

	e.Start()
	require.True(t, runUntil(e, simconfig.PhaseIntermission, 2*time.Second))
	require.Equal(t, 59, e.Snapshot().BattleRemaining)

	require.True(t, runUntil(e, simconfig.PhaseBattle, 5*time.Second))
	require.Equal(t, 59, e.Snapshot().BattleRemaining)
	require.Equal(t, 10, e.Snapshot().AttackTimer)

	// About half a second of the interrupted second was left.
	advance(e, 400*time.Millisecond)
	assert.Equal(t, 59, e.Snapshot().BattleRemaining)
	advance(e, 200*time.Millisecond)
	assert.Equal(t, 58, e.Snapshot().BattleRemaining)
	assert.Equal(t, 9, e.Snapshot().AttackTimer)

	// Then whole seconds again.
	advance(e, 800*time.Millisecond)
	assert.Equal(t, 58, e.Snapshot().BattleRemaining)
	advance(e, 150*time.Millisecond)
	assert.Equal(t, 57, e.Snapshot().BattleRemaining)
}

func TestFinaleOnLastPatternEndsInCommandSelection(t *testing.T) {
	script := testScript(quiet(500))
	script.IntermissionAfter = 0
	script.Intermission = []string{"x"}
	e, _ := newTestEngine(t, script)

	e.Start()
	require.True(t, runUntil(e, simconfig.PhaseIntermission, time.Second))
	assert.True(t, runUntil(e, simconfig.PhaseCommandSelection, 2*time.Second))
}

func toCommands(t *testing.T) (*Engine, *recordingAudio) {
	t.Helper()
	e, audio := newTestEngine(t, testScript(quiet(500)))
	e.Start()
	require.True(t, runUntil(e, simconfig.PhaseCommandSelection, time.Second))
	return e, audio
}

func TestFightEndsImmediately(t *testing.T) {
	e, audio := toCommands(t)

	e.SelectCommand("FIGHT")
	assert.Equal(t, simconfig.PhaseEndingA, e.Phase())
	assert.Equal(t, 1, audio.stings)
	assert.Equal(t, "ENDING A", e.Snapshot().EndingTitle)

	e.SelectCommand("MERCY")
	assert.Equal(t, simconfig.PhaseEndingA, e.Phase())
	assert.Equal(t, 1, audio.stings)
}

func TestEndingFadesMusicAndResetCutsIt(t *testing.T) {
	audio := &fadingAudio{}
	e, _ := newTestEngine(t, testScript(quiet(500)), WithAudio(audio))
	e.Start()
	require.True(t, runUntil(e, simconfig.PhaseCommandSelection, time.Second))

	e.SelectCommand("FIGHT")
	require.Equal(t, simconfig.PhaseEndingA, e.Phase())
	assert.Equal(t, 1, audio.fades)
	assert.Zero(t, audio.stops)

	e.Reset()
	assert.Equal(t, 1, audio.fades)
	assert.Equal(t, 1, audio.stops)
}

func TestEndingStopsMusicWithoutFader(t *testing.T) {
	e, audio := toCommands(t)

	e.SelectCommand("FIGHT")
	assert.Equal(t, 1, audio.stops)
}

func TestSparePlaysEndingDialogue(t *testing.T) {
	e, audio := toCommands(t)

	e.SelectCommand("MERCY")
	assert.Equal(t, simconfig.PhaseCommandSelection, e.Phase())
	assert.Equal(t, 1, audio.stings)
	assert.False(t, e.Snapshot().CommandsEnabled)

	e.SelectCommand("FIGHT")
	assert.Equal(t, simconfig.PhaseCommandSelection, e.Phase(), "only the first choice counts")

	advance(e, 700*time.Millisecond)
	assert.True(t, e.Snapshot().DialogueVisible)

	require.True(t, runUntil(e, simconfig.PhaseEndingB, 2*time.Second))
	assert.Equal(t, "ENDING B", e.Snapshot().EndingTitle)
	assert.Equal(t, "spare", e.Snapshot().EndingText)
}

func TestActAndItemAreInert(t *testing.T) {
	e, audio := toCommands(t)

	e.SelectCommand("ACT")
	e.SelectCommand("ITEM")
	e.SelectCommand("nonsense")
	assert.Equal(t, simconfig.PhaseCommandSelection, e.Phase())
	assert.Zero(t, audio.stings)
	assert.True(t, e.Snapshot().CommandsEnabled)

	e.SelectCommand("FIGHT")
	assert.Equal(t, simconfig.PhaseEndingA, e.Phase())
}

func TestCommandsIgnoredOutsideCommandSelection(t *testing.T) {
	e, audio := newTestEngine(t, testScript(quiet(5000)))

	e.SelectCommand("FIGHT")
	assert.Equal(t, simconfig.PhasePreload, e.Phase())

	e.Start()
	e.SelectCommand("FIGHT")
	e.SelectCommand("MERCY")
	assert.Equal(t, simconfig.PhaseBattle, e.Phase())
	assert.Zero(t, audio.stings)
}

func TestResetFromAnyPhase(t *testing.T) {
	script := testScript(simconfig.AttackPattern{Name: "Logo", DurationMS: 5000, Kind: simconfig.PatternDVDLogo})
	e, audio := newTestEngine(t, script)

	e.Start()
	e.SetHeld(MoveUp)
	advance(e, 500*time.Millisecond)
	e.session.health().Current = 40
	require.NotEmpty(t, e.Snapshot().Hazards)

	check := func() {
		t.Helper()
		snap := e.Snapshot()
		assert.Equal(t, simconfig.PhasePreload, snap.Phase)
		assert.Empty(t, snap.Hazards)
		assert.Equal(t, 100, snap.Health)
		assert.Equal(t, 60, snap.BattleRemaining)
		assert.False(t, snap.DialogueVisible)
		assert.False(t, e.FrameLoopActive())
		assert.Zero(t, e.PendingTimers())
	}

	e.Reset()
	check()
	stops := audio.stops
	e.Reset()
	check()
	assert.Equal(t, stops+1, audio.stops)

	advance(e, 2*time.Second)
	check()

	e.Start()
	assert.Equal(t, simconfig.PhaseBattle, e.Phase())
	y0 := e.Snapshot().Player.Y
	advance(e, 100*time.Millisecond)
	assert.Equal(t, y0, e.Snapshot().Player.Y, "held keys do not survive a reset")
}

func TestResetCancelsPendingEndingDialogue(t *testing.T) {
	e, _ := toCommands(t)

	e.SelectCommand("spare")
	e.Reset()
	advance(e, 3*time.Second)
	assert.Equal(t, simconfig.PhasePreload, e.Phase())
	assert.False(t, e.Snapshot().DialogueVisible)
}

func TestSetScriptAppliesToNextSession(t *testing.T) {
	e, _ := newTestEngine(t, testScript(quiet(5000)))
	next := testScript(quiet(1000), quiet(1000))

	e.Start()
	e.SetScript(next)
	assert.NotSame(t, next, e.Script())

	e.Reset()
	e.Start()
	assert.Same(t, next, e.Script())
}

func TestAudioFailuresDoNotBlockTransitions(t *testing.T) {
	script := testScript(quiet(500))
	script.Opening = []string{"hi"}
	e, audio := newTestEngine(t, script)
	audio.err = errors.New("no device")
	audio.panicOnTick = true

	e.Start()
	require.True(t, runUntil(e, simconfig.PhaseBattle, 3*time.Second))
	assert.Equal(t, 2, audio.ticks)
	require.True(t, runUntil(e, simconfig.PhaseCommandSelection, time.Second))

	e.SelectCommand("FIGHT")
	assert.Equal(t, simconfig.PhaseEndingA, e.Phase())
}

func TestPhaseHookSeesEveryTransition(t *testing.T) {
	var seen []simconfig.Phase
	hook := func(_, to simconfig.Phase) { seen = append(seen, to) }
	e, _ := newTestEngine(t, testScript(quiet(500)), WithPhaseHook(hook))

	e.Start()
	runUntil(e, simconfig.PhaseCommandSelection, time.Second)
	e.SelectCommand("FIGHT")

	assert.Equal(t, []simconfig.Phase{
		simconfig.PhaseDialogue,
		simconfig.PhaseBattle,
		simconfig.PhaseCommandSelection,
		simconfig.PhaseEndingA,
	}, seen)
}

func TestTimestampsNeverGoBackwards(t *testing.T) {
	e, _ := newTestEngine(t, testScript(quiet(5000)))

	e.Start()
	advance(e, time.Second)
	now := e.Now()
	e.Update(now - 500*time.Millisecond)
	assert.Equal(t, now, e.Now())
}
