package simconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		label string
		want  Command
		ok    bool
	}{
		{"fight", CommandFight, true},
		{"  FIGHT ", CommandFight, true},
		{"たたかう", CommandFight, true},
		{"こうどう", CommandAct, true},
		{"item", CommandItem, true},
		{"Mercy", CommandSpare, true},
		{"let go", CommandSpare, true},
		{"みのがす", CommandSpare, true},
		{"run", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseCommand(tt.label)
		assert.Equal(t, tt.ok, ok, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}
}

func TestPhaseHelpers(t *testing.T) {
	assert.True(t, PhaseBattle.RunsFrameLoop())
	assert.True(t, PhaseIntermission.RunsFrameLoop())
	assert.False(t, PhaseCommandSelection.RunsFrameLoop())
	assert.False(t, PhaseGameOver.RunsFrameLoop())
	assert.True(t, PhaseIntermission.IsDialogue())
	assert.False(t, PhaseBattle.IsDialogue())
	assert.True(t, PhaseEndingB.IsEnding())
	assert.Equal(t, "IntermissionDialogue", PhaseIntermission.String())
	assert.Equal(t, "Unknown", Phase(99).String())
}
