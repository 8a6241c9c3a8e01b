package systems

import (
	"github.com/automoto/trianglejam/components"
	"github.com/automoto/trianglejam/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer routes input to the character, then runs its per-frame
// checks. It must run before UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	c := components.Character.Get(playerEntry)
	ctrl := components.Controller.Get(playerEntry)

	if ctrl.InputEnabled {
		c.Route(BuildIntent(components.Input.Get(playerEntry)))
	}
	c.Tick()
}
