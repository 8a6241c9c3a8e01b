package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every body in the level.
func UpdatePhysics(ecs *ecs.ECS) {
	if world := getPhysicsWorld(ecs.World); world != nil {
		world.Step(deltaTime())
	}
}
