package factory

import (
	"github.com/automoto/trianglejam/archetypes"
	"github.com/automoto/trianglejam/components"
	cfg "github.com/automoto/trianglejam/config"
	gm "github.com/automoto/trianglejam/shared/gamemath"
	"github.com/automoto/trianglejam/shared/leveldata"
	"github.com/automoto/trianglejam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates a checkpoint volume. The respawn point stands on
// the volume's floor, centred on it.
func CreateCheckpoint(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	surface := mustWorld(ecs).AddSurface(r.Box(), tags.ResolvCheckpoint)
	surface.Owner = checkpoint.Entity()
	components.Surface.Set(checkpoint, &components.SurfaceData{Surface: surface})

	c := r.Box().Center()
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		Name:  r.Name,
		Spawn: BodyCentre(gm.V(c.X, c.Y, r.Z)),
	})
	return checkpoint
}

// BodyCentre turns a feet position into the player body's centre.
func BodyCentre(feet gm.Vec3) gm.Vec3 {
	return feet.Add(gm.V(0, 0, cfg.Player.CapsuleHalfHeight+spawnClearance))
}

const spawnClearance = 1
