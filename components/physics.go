package components

import (
	"github.com/automoto/trianglejam/physics"
	"github.com/yohamta/donburi"
)

// SpaceData holds the level's physics world.
type SpaceData struct {
	*physics.World
}

var Space = donburi.NewComponentType[SpaceData]()

type SurfaceData struct {
	*physics.Surface
}

var Surface = donburi.NewComponentType[SurfaceData]()

type BodyData struct {
	*physics.Body
}

var Body = donburi.NewComponentType[BodyData]()
