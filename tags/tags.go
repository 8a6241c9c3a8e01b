package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Wall           = donburi.NewTag().SetName("Wall")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Trigger        = donburi.NewTag().SetName("Trigger")
	Checkpoint     = donburi.NewTag().SetName("Checkpoint")
	Hazard         = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for physics collision
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvCanMantle  = "can_mantle"
	ResolvTrigger    = "trigger"
	ResolvCheckpoint = "checkpoint"
	ResolvHazard     = "hazard"
	ResolvProbe      = "probe"
)
