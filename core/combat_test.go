package core

import (
	"testing"
	"time"

	"github.com/automoto/supertale/core/factory"
	"github.com/automoto/supertale/shared/gamemath"
	"github.com/automoto/supertale/shared/simcomponents"
	"github.com/automoto/supertale/shared/simconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = time.Second / 60

func quietBattle(t *testing.T) *Engine {
	t.Helper()
	e, _ := newTestEngine(t, testScript(quiet(60000)))
	e.Start()
	require.Equal(t, simconfig.PhaseBattle, e.Phase())
	return e
}

func addBone(e *Engine, r gamemath.Rect) {
	s := e.session
	s.addHazard(factory.CreateBone(s.world, s.space, s.newHazardID(), r, simcomponents.AxisX, 0, false))
}

func kinds(snap Snapshot) []simcomponents.HazardKind {
	var out []simcomponents.HazardKind
	for _, h := range snap.Hazards {
		out = append(out, h.Kind)
	}
	return out
}

func TestCollides(t *testing.T) {
	player := gamemath.Rect{X: 10, Y: 10, W: 20, H: 20}
	over := gamemath.Rect{X: 25, Y: 25, W: 10, H: 10}
	touching := gamemath.Rect{X: 30, Y: 10, W: 10, H: 10}

	assert.True(t, Collides(simcomponents.KindBone, over, player))
	assert.True(t, Collides(simcomponents.KindBeam, over, player))
	assert.False(t, Collides(simcomponents.KindWarning, over, player))
	assert.False(t, Collides(simcomponents.KindBone, touching, player))
}

func TestSubUnitOverlapAcrossCellEdgeHits(t *testing.T) {
	e := quietBattle(t)
	e.session.movePlayerTo(80.5, 50)
	bone := gamemath.Rect{X: 100.2, Y: 55, W: 10, H: 5}
	require.True(t, gamemath.Overlaps(bone, e.session.playerRect()))

	addBone(e, bone)
	assert.True(t, e.resolveCollision())
}

func TestSubUnitOverlapAboveCellEdgeHits(t *testing.T) {
	e := quietBattle(t)
	e.session.movePlayerTo(50, 60)
	bone := gamemath.Rect{X: 55, Y: 50.3, W: 5, H: 9.8}
	require.True(t, gamemath.Overlaps(bone, e.session.playerRect()))

	addBone(e, bone)
	assert.True(t, e.resolveCollision())
}

func TestAdjacentBoneAcrossCellEdgeMisses(t *testing.T) {
	e := quietBattle(t)
	e.session.movePlayerTo(80, 50)
	addBone(e, gamemath.Rect{X: 100, Y: 55, W: 10, H: 5})

	assert.False(t, e.resolveCollision())
}

func TestBoneHitDamagesAndIsConsumed(t *testing.T) {
	e := quietBattle(t)
	addBone(e, e.session.playerRect())

	e.Update(e.Now() + step)
	snap := e.Snapshot()
	assert.Equal(t, 95, snap.Health)
	assert.True(t, snap.Invincible)
	assert.Empty(t, snap.Hazards)
}

func TestOneHitPerTick(t *testing.T) {
	e := quietBattle(t)
	addBone(e, e.session.playerRect())
	addBone(e, e.session.playerRect())

	e.Update(e.Now() + step)
	snap := e.Snapshot()
	assert.Equal(t, 95, snap.Health)
	require.Len(t, snap.Hazards, 1)
	assert.Equal(t, uint64(2), snap.Hazards[0].ID, "the earliest spawned hazard takes the hit")

	// Invincible: the second bone passes through.
	e.Update(e.Now() + step)
	assert.Equal(t, 95, e.Snapshot().Health)
	assert.Len(t, e.Snapshot().Hazards, 1)
}

func TestInvincibilityWindow(t *testing.T) {
	e := quietBattle(t)

	e.applyDamage(5)
	e.applyDamage(5)
	assert.Equal(t, 95, e.Snapshot().Health)

	advance(e, 550*time.Millisecond)
	e.applyDamage(5)
	assert.Equal(t, 95, e.Snapshot().Health)

	advance(e, 100*time.Millisecond)
	assert.False(t, e.Snapshot().Invincible)
	e.applyDamage(5)
	assert.Equal(t, 90, e.Snapshot().Health)
}

func TestDamageIgnoredOutsideCombat(t *testing.T) {
	e, _ := toCommands(t)

	e.applyDamage(5)
	assert.Equal(t, 100, e.Snapshot().Health)
}

func TestZeroHealthIsGameOver(t *testing.T) {
	e, audio := newTestEngine(t, testScript(quiet(60000)))
	e.Start()
	e.session.health().Current = 3

	e.applyDamage(5)
	snap := e.Snapshot()
	assert.Equal(t, simconfig.PhaseGameOver, snap.Phase)
	assert.Zero(t, snap.Health)
	assert.False(t, e.FrameLoopActive())
	assert.Zero(t, e.PendingTimers())
	assert.Equal(t, 1, audio.stops)

	e.applyDamage(5)
	assert.Zero(t, e.Snapshot().Health)
}

func TestLogoIsNotConsumed(t *testing.T) {
	e := quietBattle(t)
	s := e.session
	s.addHazard(factory.CreateLogo(s.world, s.space, s.newHazardID(), s.playerRect(), 0, 0, factory.BoneColor))

	e.Update(e.Now() + step)
	assert.Equal(t, 95, e.Snapshot().Health)
	assert.Equal(t, []simcomponents.HazardKind{simcomponents.KindLogo}, kinds(e.Snapshot()))
}

func TestWarningBecomesBeam(t *testing.T) {
	e := quietBattle(t)
	s := e.session
	t0 := e.Now()
	warn := gamemath.Rect{X: 0, Y: 10, W: 200, H: 30}
	s.addHazard(factory.CreateWarning(s.world, s.space, s.newHazardID(), warn, simcomponents.AxisX, 100*time.Millisecond))

	e.Update(t0 + step)
	assert.Equal(t, 100, e.Snapshot().Health, "warnings never collide")

	advance(e, 100*time.Millisecond)
	snap := e.Snapshot()
	require.Equal(t, []simcomponents.HazardKind{simcomponents.KindBeam}, kinds(snap))
	beam := snap.Hazards[0].Rect
	assert.Equal(t, 0.0, beam.X)
	assert.Equal(t, 200.0, beam.W)
	assert.Equal(t, 10.0, beam.Y)
	assert.Equal(t, 30.0, beam.H)

	advance(e, 300*time.Millisecond)
	assert.Empty(t, e.Snapshot().Hazards)
}

func TestVerticalWarningSpansArenaHeight(t *testing.T) {
	e := quietBattle(t)
	got := e.beamFor(gamemath.Rect{X: 50, Y: 0, W: 30, H: 150}, simcomponents.AxisY)
	assert.Equal(t, gamemath.Rect{X: 50, Y: 0, W: 30, H: 150}, got)
}

func TestLogoStaysInsideArena(t *testing.T) {
	e, _ := newTestEngine(t, testScript(
		simconfig.AttackPattern{Name: "Logo", DurationMS: 6000, Kind: simconfig.PatternDVDLogo},
	))
	e.Start()

	Simulate(e, 60, 5*time.Second, func(time.Duration) bool {
		snap := e.Snapshot()
		for _, h := range snap.Hazards {
			if h.Kind != simcomponents.KindLogo {
				continue
			}
			assert.GreaterOrEqual(t, h.Rect.Left(), 0.0)
			assert.GreaterOrEqual(t, h.Rect.Top(), 0.0)
			assert.LessOrEqual(t, h.Rect.Right(), snap.ArenaW)
			assert.LessOrEqual(t, h.Rect.Bottom(), snap.ArenaH)
		}
		return snap.Phase == simconfig.PhaseBattle
	})
	assert.Len(t, e.Snapshot().Hazards, 1)
}

func TestBonesAreCulledOffscreen(t *testing.T) {
	e := quietBattle(t)
	addBone(e, gamemath.Rect{X: -120, Y: 0, W: 60, H: 10})

	e.Update(e.Now() + step)
	assert.Empty(t, e.Snapshot().Hazards)
}

func TestHorizontalBonesTravelAcross(t *testing.T) {
	e, _ := newTestEngine(t, testScript(
		simconfig.AttackPattern{Name: "Bones", DurationMS: 3000, Kind: simconfig.PatternHorizontalBones},
	))
	e.Start()
	e.session.grantInvincibility(0, time.Hour)

	advance(e, 350*time.Millisecond)
	snap := e.Snapshot()
	require.Equal(t, []simcomponents.HazardKind{simcomponents.KindBone}, kinds(snap))
	assert.Equal(t, 60.0, snap.Hazards[0].Rect.W)

	advance(e, 2*time.Second)
	assert.NotEmpty(t, e.Snapshot().Hazards)
	assert.LessOrEqual(t, len(e.Snapshot().Hazards), 5, "bones leave the arena and are culled")
}

func TestLiftsAlternateSides(t *testing.T) {
	e, _ := newTestEngine(t, testScript(
		simconfig.AttackPattern{Name: "Lifts", DurationMS: 8000, Kind: simconfig.PatternSplitLifts},
	))
	e.Start()

	advance(e, 610*time.Millisecond)
	snap := e.Snapshot()
	require.Len(t, snap.Hazards, 2)
	left, right := snap.Hazards[0].Rect, snap.Hazards[1].Rect
	assert.Equal(t, 0.0, left.X)
	assert.Less(t, left.Y, snap.ArenaH, "left lift rises")
	assert.Equal(t, snap.ArenaW-e.Tunables().LiftWidth, right.X)
	assert.Greater(t, right.Y, -e.Tunables().LiftHeight, "right lift descends")
}

func TestMovementIsClampedToArena(t *testing.T) {
	e := quietBattle(t)
	e.SetHeld(MoveRight | MoveDown)

	advance(e, 3*time.Second)
	p := e.Snapshot().Player
	assert.Equal(t, 180.0, p.X)
	assert.Equal(t, 130.0, p.Y)

	e.SetHeld(MoveLeft | MoveRight)
	advance(e, 100*time.Millisecond)
	assert.Equal(t, 180.0, e.Snapshot().Player.X, "opposing keys cancel")
}

func TestLargeFrameGapIsSkipped(t *testing.T) {
	e := quietBattle(t)
	e.SetHeld(MoveRight)
	advance(e, 100*time.Millisecond)
	x := e.Snapshot().Player.X

	e.Update(e.Now() + 500*time.Millisecond)
	assert.Equal(t, x, e.Snapshot().Player.X)

	e.Update(e.Now() + 20*time.Millisecond)
	assert.InDelta(t, x+3, e.Snapshot().Player.X, 1e-9)
}

func TestStaleIntentIsDropped(t *testing.T) {
	e := quietBattle(t)

	e.enqueue(intent{kind: intentDamage, gen: e.scope.gen - 1, amount: 50})
	e.dispatch()
	assert.Equal(t, 100, e.Snapshot().Health)

	e.enqueue(intent{kind: intentDamage, gen: e.scope.gen, amount: 50})
	e.dispatch()
	assert.Equal(t, 50, e.Snapshot().Health)
}

func TestNoTimersLeakAcrossPhases(t *testing.T) {
	e, _ := newTestEngine(t, testScript(
		simconfig.AttackPattern{Name: "Bones", DurationMS: 1000, Kind: simconfig.PatternVerticalBones},
	))
	e.Start()
	// attack second, battle second, pattern expiry, spawn cadence
	assert.Equal(t, 4, e.PendingTimers())

	require.True(t, runUntil(e, simconfig.PhaseCommandSelection, 2*time.Second))
	assert.Zero(t, e.PendingTimers())
	assert.False(t, e.FrameLoopActive())
	assert.Empty(t, e.Snapshot().Hazards)
}
