package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Bone       = donburi.NewTag().SetName("Bone")
	RisingBone = donburi.NewTag().SetName("RisingBone")
	Logo       = donburi.NewTag().SetName("Logo")
	Warning    = donburi.NewTag().SetName("Warning")
	Beam       = donburi.NewTag().SetName("Beam")
	Platform   = donburi.NewTag().SetName("Platform")
)

// Resolv tags for the broad-phase space
const (
	ResolvPlayer = "player"
	ResolvHazard = "hazard"
	ResolvInert  = "inert"
)
