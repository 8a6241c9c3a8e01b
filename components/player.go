package components

import (
	"github.com/automoto/trianglejam/character"
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	*character.Character
}

var Character = donburi.NewComponentType[CharacterData]()

// PlayerController owns the view rotation. Triggers switch its input off
// while a transition runs.
type PlayerController struct {
	Rotation     gm.Rotator
	InputEnabled bool
	MinPitch     float64
	MaxPitch     float64
}

func NewPlayerController(yaw, minPitch, maxPitch float64) *PlayerController {
	return &PlayerController{
		Rotation:     gm.Rotator{Yaw: yaw},
		InputEnabled: true,
		MinPitch:     minPitch,
		MaxPitch:     maxPitch,
	}
}

func (c *PlayerController) ControlRotation() gm.Rotator {
	return c.Rotation
}

func (c *PlayerController) AddYawInput(v float64) {
	c.Rotation.Yaw = gm.NormalizeAngle(c.Rotation.Yaw + v)
}

func (c *PlayerController) AddPitchInput(v float64) {
	c.Rotation.Pitch = gm.Clamp(c.Rotation.Pitch+v, c.MinPitch, c.MaxPitch)
}

type ControllerData struct {
	*PlayerController
}

var Controller = donburi.NewComponentType[ControllerData]()
