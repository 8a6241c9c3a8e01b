package factory

import (
	"github.com/automoto/trianglejam/archetypes"
	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	"github.com/automoto/trianglejam/physics"
	"github.com/automoto/trianglejam/timer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, &components.SpaceData{World: physics.NewWorld(width, height, cfg.Physics)})
	return space
}

// CreateClock creates the level clock. Every timer of the level runs on it.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.Set(clock, &components.ClockData{Queue: timer.NewQueue()})
	return clock
}

func mustWorld(ecs *ecs.ECS) *physics.World {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		panic("factory: create the space first")
	}
	return components.Space.Get(spaceEntry).World
}
