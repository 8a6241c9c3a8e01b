package components

import (
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CheckpointData struct {
	Name      string
	Spawn     gm.Vec3 // Respawn position, body centre
	Activated bool
	Occupied  bool
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()

// HazardData marks a volume that hurts on entry.
type HazardData struct {
	Name     string
	Occupied bool
}

var Hazard = donburi.NewComponentType[HazardData]()
