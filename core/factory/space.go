package factory

import (
	"github.com/solarlune/resolv"
)

// SpaceCellSize is the broad-phase cell size in arena units.
const SpaceCellSize = 10

// CreateSpace builds the broad-phase space covering the arena. Objects that
// leave the arena keep their coordinates but occupy no cells.
func CreateSpace(arenaW, arenaH float64) *resolv.Space {
	return resolv.NewSpace(int(arenaW), int(arenaH), SpaceCellSize, SpaceCellSize)
}
