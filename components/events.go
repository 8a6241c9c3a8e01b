package components

import (
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/yohamta/donburi/features/events"
)

// HealthChangedEvent is published whenever the character's health changes.
type HealthChangedEvent struct {
	Health int
	Max    int
}

type PlayerDiedEvent struct{}

// CheckpointReachedEvent is published the first time a checkpoint is touched.
type CheckpointReachedEvent struct {
	Level string
	Name  string
	Spawn gm.Vec3
}

var (
	HealthChanged     = events.NewEventType[HealthChangedEvent]()
	PlayerDied        = events.NewEventType[PlayerDiedEvent]()
	CheckpointReached = events.NewEventType[CheckpointReachedEvent]()
)
