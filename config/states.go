package config

import "github.com/automoto/supertale/shared/simconfig"

// Type aliases so client code can use config.Phase etc.
type Phase = simconfig.Phase
type Command = simconfig.Command

// Re-export phase constants.
const (
	PhasePreload          = simconfig.PhasePreload
	PhaseDialogue         = simconfig.PhaseDialogue
	PhaseBattle           = simconfig.PhaseBattle
	PhaseIntermission     = simconfig.PhaseIntermission
	PhaseCommandSelection = simconfig.PhaseCommandSelection
	PhaseEndingA          = simconfig.PhaseEndingA
	PhaseEndingB          = simconfig.PhaseEndingB
	PhaseGameOver         = simconfig.PhaseGameOver
)

// Commands in menu order.
var Commands = simconfig.Commands
