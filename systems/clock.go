package systems

import (
	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	"github.com/automoto/trianglejam/physics"
	"github.com/automoto/trianglejam/timer"
	"github.com/automoto/trianglejam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// deltaTime is the fixed step of one game tick, in seconds.
func deltaTime() float64 {
	return 1 / float64(cfg.C.TPS)
}

// UpdateClock advances level time and fires due timers. It runs after
// physics so timers see this tick's positions.
func UpdateClock(ecs *ecs.ECS) {
	if clock := getClock(ecs.World); clock != nil {
		clock.Advance(deltaTime())
	}
}

func getClock(w donburi.World) *timer.Queue {
	entry, ok := components.Clock.First(w)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry).Queue
}

func getPhysicsWorld(w donburi.World) *physics.World {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry).World
}

func getLevel(w donburi.World) *components.LevelData {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// overlappingPlayer returns the owners of every tagged volume the player's
// body overlaps.
func overlappingPlayer(w donburi.World, tag string) (map[donburi.Entity]bool, bool) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return nil, false
	}
	world := getPhysicsWorld(w)
	if world == nil {
		return nil, false
	}
	inside := make(map[donburi.Entity]bool)
	for _, s := range world.Overlapping(components.Body.Get(playerEntry).Box(), tag) {
		if owner, ok := s.Owner.(donburi.Entity); ok {
			inside[owner] = true
		}
	}
	return inside, true
}
