package systems

import (
	"github.com/automoto/trianglejam/components"
	"github.com/automoto/trianglejam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCheckpoints moves the player's soft respawn point to each checkpoint
// they walk into. Activation is published once per checkpoint.
func UpdateCheckpoints(ecs *ecs.ECS) {
	inside, ok := overlappingPlayer(ecs.World, tags.ResolvCheckpoint)
	if !ok {
		return
	}
	playerEntry, _ := tags.Player.First(ecs.World)
	c := components.Character.Get(playerEntry)

	components.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		cp := components.Checkpoint.Get(e)
		now := inside[e.Entity()]
		if now && !cp.Occupied && !c.RespawnPending() {
			c.UpdateCheckpoint(cp.Spawn)
			if !cp.Activated {
				cp.Activated = true
				levelName := ""
				if level := getLevel(ecs.World); level != nil && level.CurrentLevel != nil {
					levelName = level.CurrentLevel.Name
				}
				components.CheckpointReached.Publish(ecs.World, components.CheckpointReachedEvent{
					Level: levelName,
					Name:  cp.Name,
					Spawn: cp.Spawn,
				})
			}
		}
		cp.Occupied = now
	})
}

// UpdateHazards deals one point of damage each time the player enters a
// hazard volume, at most once per tick.
func UpdateHazards(ecs *ecs.ECS) {
	inside, ok := overlappingPlayer(ecs.World, tags.ResolvHazard)
	if !ok {
		return
	}
	playerEntry, _ := tags.Player.First(ecs.World)
	c := components.Character.Get(playerEntry)

	hurt := false
	components.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		h := components.Hazard.Get(e)
		now := inside[e.Entity()]
		if now && !h.Occupied && !hurt {
			c.TakeDamage()
			hurt = true
		}
		h.Occupied = now
	})
}
