package simconfig

// Phase is the top-level game state.
type Phase int

const (
	PhasePreload Phase = iota
	PhaseDialogue
	PhaseBattle
	PhaseIntermission
	PhaseCommandSelection
	PhaseEndingA
	PhaseEndingB
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhasePreload:          "Preload",
	PhaseDialogue:         "Dialogue",
	PhaseBattle:           "Battle",
	PhaseIntermission:     "IntermissionDialogue",
	PhaseCommandSelection: "CommandSelection",
	PhaseEndingA:          "EndingA",
	PhaseEndingB:          "EndingB",
	PhaseGameOver:         "GameOver",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "Unknown"
}

// IsDialogue reports whether the phase runs the typewriter by default.
func (p Phase) IsDialogue() bool {
	return p == PhaseDialogue || p == PhaseIntermission
}

// RunsFrameLoop reports whether the combat loop is scheduled in this phase.
func (p Phase) RunsFrameLoop() bool {
	return p == PhaseDialogue || p == PhaseBattle || p == PhaseIntermission
}

// IsEnding reports whether the phase is one of the two endings.
func (p Phase) IsEnding() bool {
	return p == PhaseEndingA || p == PhaseEndingB
}
