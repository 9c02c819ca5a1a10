package simcomponents

import (
	"time"

	"github.com/yohamta/donburi"
)

// PlayerData tracks the invincibility window. InvincibleUntil is a session
// clock timestamp.
type PlayerData struct {
	Invincible      bool
	InvincibleUntil time.Duration
}

type HealthData struct {
	Current int
	Max     int
}

var (
	Player = donburi.NewComponentType[PlayerData]()
	Health = donburi.NewComponentType[HealthData]()
)
