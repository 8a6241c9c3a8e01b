package components

import (
	"github.com/automoto/trianglejam/levelflow"
	"github.com/automoto/trianglejam/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Memory       *levelflow.Memory
	// PendingLoad names the level to load at the end of the frame.
	PendingLoad string
}

var Level = donburi.NewComponentType[LevelData]()
