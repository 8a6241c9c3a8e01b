package components

import (
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformData drives a moving platform between Origin and Origin+Offset.
type PlatformData struct {
	Origin    gm.Vec3
	Offset    gm.Vec3
	Duration  float64
	Pause     float64
	Tween     *gween.Tween
	Outbound  bool
	PauseLeft float64
}

var Platform = donburi.NewComponentType[PlatformData]()
