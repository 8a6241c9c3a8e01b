package components

import (
	"github.com/automoto/trianglejam/shared/leveldata"
	"github.com/yohamta/donburi"
)

// TriggerData is a camera transition volume.
type TriggerData struct {
	leveldata.CameraTrigger
	Occupied bool // Player overlapped it last frame
	Running  bool // A transition started by this trigger is in progress
}

var Trigger = donburi.NewComponentType[TriggerData]()
