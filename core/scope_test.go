package core

import (
	"testing"
	"time"

	"github.com/automoto/supertale/shared/simconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeFiresInDueOrderWithTiesByArmOrder(t *testing.T) {
	s := newScope(7, simconfig.PhaseBattle)
	s.after(0, 200*time.Millisecond, intent{kind: intentSpawn})
	s.after(0, 100*time.Millisecond, intent{kind: intentAttackSecond})
	s.after(0, 100*time.Millisecond, intent{kind: intentBattleSecond})

	var got []intentKind
	for tm := s.next(time.Second); tm != nil; tm = s.next(time.Second) {
		assert.Equal(t, uint64(7), tm.in.gen)
		got = append(got, tm.in.kind)
		s.fired(tm, time.Second, time.Hour)
	}
	assert.Equal(t, []intentKind{intentAttackSecond, intentBattleSecond, intentSpawn}, got)
	assert.Zero(t, s.pending())
}

func TestPeriodicTimerRealignsWhenFarBehind(t *testing.T) {
	s := newScope(1, simconfig.PhaseBattle)
	s.every(0, 100*time.Millisecond, intent{kind: intentSpawn})

	tm := s.next(150 * time.Millisecond)
	require.NotNil(t, tm)
	s.fired(tm, 150*time.Millisecond, 100*time.Millisecond)
	assert.Equal(t, 200*time.Millisecond, tm.due)

	tm = s.next(time.Second)
	require.NotNil(t, tm)
	s.fired(tm, time.Second, 100*time.Millisecond)
	assert.Equal(t, 1100*time.Millisecond, tm.due)
}

func TestReleasedScopeRefusesWork(t *testing.T) {
	s := newScope(1, simconfig.PhaseDialogue)
	s.registerFrame()
	s.every(0, time.Second, intent{kind: intentTypeChar})
	s.release()

	assert.Zero(t, s.pending())
	assert.False(t, s.frame.active)
	assert.Zero(t, s.after(0, time.Second, intent{kind: intentNextLine}))
	s.registerFrame()
	assert.False(t, s.frame.active)
}

func TestRegisterFrameTwiceKeepsPriming(t *testing.T) {
	s := newScope(1, simconfig.PhaseBattle)
	s.registerFrame()
	s.frame.primed = true
	s.frame.last = time.Second
	s.registerFrame()

	assert.True(t, s.frame.primed)
	assert.Equal(t, time.Second, s.frame.last)
}
