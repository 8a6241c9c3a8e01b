package components

import "github.com/yohamta/donburi"

// HUDData mirrors the character's health for drawing.
type HUDData struct {
	Health     int
	Max        int
	DeathTicks int // Frames left on the death message
	Dirty      bool
}

var HUD = donburi.NewComponentType[HUDData]()
