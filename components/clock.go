package components

import (
	"github.com/automoto/trianglejam/timer"
	"github.com/yohamta/donburi"
)

// ClockData owns the level's clock and one-shot timers.
type ClockData struct {
	*timer.Queue
}

var Clock = donburi.NewComponentType[ClockData]()
