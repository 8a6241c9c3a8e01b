package systems

import (
	"github.com/automoto/trianglejam/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// RegisterEvents subscribes the HUD and persistence handlers to w. Call it
// once per world, before the first update.
func RegisterEvents(w donburi.World) {
	components.HealthChanged.Subscribe(w, onHealthChanged)
	components.PlayerDied.Subscribe(w, onPlayerDied)
	components.CheckpointReached.Subscribe(w, onCheckpointReached)
}

// UpdateEvents delivers everything published this tick.
func UpdateEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
