package components

import (
	"github.com/automoto/trianglejam/assets/animations"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	*animations.Player
}

var Animation = donburi.NewComponentType[AnimationData]()
